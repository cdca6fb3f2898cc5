package core

import "testing"

func TestDefaultBindings(t *testing.T) {
	b := DefaultBindings()

	tests := []struct {
		name     string
		key      string
		action   Action
		expected bool
	}{
		{"terminal left arrow", "left", ActionLeft, true},
		{"terminal right arrow", "right", ActionRight, true},
		{"browser left arrow", "ArrowLeft", ActionLeft, true},
		{"browser right arrow", "ArrowRight", ActionRight, true},
		{"a alternate", "a", ActionLeft, true},
		{"d alternate", "d", ActionRight, true},
		{"unbound letter", "x", ActionNone, false},
		{"unbound arrow", "up", ActionNone, false},
		{"empty identifier", "", ActionNone, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			action, ok := b.Lookup(tc.key)
			if ok != tc.expected {
				t.Errorf("Lookup(%q) ok = %v, expected %v", tc.key, ok, tc.expected)
			}
			if action != tc.action {
				t.Errorf("Lookup(%q) = %v, expected %v", tc.key, action, tc.action)
			}
		})
	}
}

func TestInputStateHeld(t *testing.T) {
	s := NewInputState()

	if s.Held(ActionLeft) {
		t.Error("fresh state should hold nothing")
	}

	s.Set(ActionLeft, true)
	if !s.Held(ActionLeft) {
		t.Error("ActionLeft should be held after press")
	}
	if s.Held(ActionRight) {
		t.Error("ActionRight should not be held")
	}

	// Both directions can be held at once; the paddle update arbitrates.
	s.Set(ActionRight, true)
	if !s.Held(ActionLeft) || !s.Held(ActionRight) {
		t.Error("both actions should be held")
	}

	s.Set(ActionLeft, false)
	if s.Held(ActionLeft) {
		t.Error("ActionLeft should be released")
	}
	if !s.Held(ActionRight) {
		t.Error("ActionRight should still be held")
	}

	// Releasing an action that is not held is a no-op.
	s.Set(ActionLeft, false)
	if s.Held(ActionLeft) {
		t.Error("double release should stay released")
	}
}

func TestInputStateClear(t *testing.T) {
	s := NewInputState()
	s.Set(ActionLeft, true)
	s.Set(ActionRight, true)

	s.Clear()

	if s.Held(ActionLeft) || s.Held(ActionRight) {
		t.Error("Clear should release all actions")
	}
}

func TestInputStateZeroValue(t *testing.T) {
	// The zero value must be usable: Set allocates lazily, Held reads safely.
	var s InputState
	if s.Held(ActionLeft) {
		t.Error("zero-value state should hold nothing")
	}
	s.Set(ActionRight, true)
	if !s.Held(ActionRight) {
		t.Error("Set on zero-value state should work")
	}
}

func TestActionString(t *testing.T) {
	names := map[Action]string{
		ActionNone:  "None",
		ActionLeft:  "Left",
		ActionRight: "Right",
		Action(42):  "Unknown",
	}
	for a, want := range names {
		if got := a.String(); got != want {
			t.Errorf("Action(%d).String() = %q, expected %q", a, got, want)
		}
	}
}
