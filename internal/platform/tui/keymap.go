package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
)

// keyHoldWindow is how long a key counts as held after its last press.
// Terminal autorepeat refreshes the window, so holding a key keeps the
// paddle moving while a single tap gives a short nudge.
const keyHoldWindow = 150 * time.Millisecond

// GameKeyMap defines the key bindings for the game screen.
type GameKeyMap struct {
	Left  key.Binding
	Right key.Binding
	Pause key.Binding
	Quit  key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Pause, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right},
		{k.Pause, k.Quit},
	}
}

// DefaultGameKeyMap returns default key bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("left/a", "move left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("right/d", "move right"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// holdTracker synthesizes key releases. Terminals report presses but never
// releases, so a key counts as held until its window lapses without an
// autorepeat refreshing it.
type holdTracker struct {
	window time.Duration
	held   map[string]time.Time
}

func newHoldTracker(window time.Duration) *holdTracker {
	return &holdTracker{
		window: window,
		held:   make(map[string]time.Time),
	}
}

// Press records a press (or autorepeat) of key at time now.
func (t *holdTracker) Press(key string, now time.Time) {
	t.held[key] = now.Add(t.window)
}

// Expired returns the keys whose hold window has lapsed and forgets them.
func (t *holdTracker) Expired(now time.Time) []string {
	var released []string
	for key, deadline := range t.held {
		if now.After(deadline) {
			released = append(released, key)
			delete(t.held, key)
		}
	}
	return released
}

// Flush releases every held key immediately.
func (t *holdTracker) Flush() []string {
	released := make([]string, 0, len(t.held))
	for key := range t.held {
		released = append(released, key)
		delete(t.held, key)
	}
	return released
}
