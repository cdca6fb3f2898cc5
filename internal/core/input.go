package core

// Action represents a semantic game action, abstracted from physical key
// presses. The paddle works with high-level intents rather than raw input.
type Action int

const (
	ActionNone  Action = iota
	ActionLeft         // move the paddle left while held
	ActionRight        // move the paddle right while held
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// InputState tracks which actions are currently held. It is mutated by
// key press/release events as the host delivers them and read once per
// frame by the paddle update. All mutation and reads happen on the same
// logical goroutine, so no locking is involved.
type InputState struct {
	held map[Action]bool
}

// NewInputState creates an empty input state.
func NewInputState() InputState {
	return InputState{
		held: make(map[Action]bool),
	}
}

// Set records whether an action is currently held.
func (s *InputState) Set(a Action, held bool) {
	if s.held == nil {
		s.held = make(map[Action]bool)
	}
	if held {
		s.held[a] = true
		return
	}
	delete(s.held, a)
}

// Held returns true if the given action is currently held.
func (s InputState) Held(a Action) bool {
	if s.held == nil {
		return false
	}
	return s.held[a]
}

// Clear releases all actions.
func (s *InputState) Clear() {
	for k := range s.held {
		delete(s.held, k)
	}
}

// Bindings maps host key identifiers to actions. Identifiers are whatever
// the host reports for a key ("left" from a terminal, "ArrowLeft" from a
// browser); identifiers without a binding are ignored.
type Bindings map[string]Action

// DefaultBindings returns the standard key layout: the arrow keys under
// both terminal and browser naming, plus a/d alternates.
func DefaultBindings() Bindings {
	return Bindings{
		"left":       ActionLeft,
		"right":      ActionRight,
		"a":          ActionLeft,
		"d":          ActionRight,
		"ArrowLeft":  ActionLeft,
		"ArrowRight": ActionRight,
	}
}

// Lookup resolves a key identifier to its action.
// Returns ActionNone and false for unbound identifiers.
func (b Bindings) Lookup(key string) (Action, bool) {
	a, ok := b[key]
	if !ok || a == ActionNone {
		return ActionNone, false
	}
	return a, true
}
