// Package tui renders the breakout game in a terminal with Bubble Tea.
// It owns the frame loop, key handling, and the projection of world
// coordinates onto terminal cells.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a frame. It carries the wall-clock time the
// tick fired so the model can derive real frame deltas.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the
// specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
