package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-breakout/internal/breakout"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// footerRows is how many terminal rows the status bar takes below the
// playfield.
const footerRows = 1

var (
	statusStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// Model is the Bubble Tea model driving a breakout session.
type Model struct {
	game     *breakout.Game
	screen   *core.Screen
	canvas   *Canvas
	keys     GameKeyMap
	help     help.Model
	holds    *holdTracker
	lastTick time.Time
	fps      int
	paused   bool
	quitting bool
}

// NewModel creates a model for the given game sized to a terminal of
// width x height cells.
func NewModel(game *breakout.Game, fps, width, height int) Model {
	worldW, worldH := game.Size()
	screen := core.NewScreen(core.Max(width, 1), core.Max(height-footerRows, 1))

	h := help.New()
	h.ShowAll = false

	return Model{
		game:   game,
		screen: screen,
		canvas: NewCanvas(screen, worldW, worldH),
		keys:   DefaultGameKeyMap(),
		help:   h,
		holds:  newHoldTracker(keyHoldWindow),
		fps:    fps,
	}
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.fps)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Pause):
		m.paused = !m.paused
		// Drop held keys so nothing stays pressed across the pause.
		for _, k := range m.holds.Flush() {
			m.game.KeyEvent(k, false)
		}
		return m, nil

	case key.Matches(msg, m.keys.Left), key.Matches(msg, m.keys.Right):
		if m.paused {
			return m, nil
		}
		k := msg.String()
		m.holds.Press(k, time.Now())
		m.game.KeyEvent(k, true)
		return m, nil
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.screen.Resize(core.Max(msg.Width, 1), core.Max(msg.Height-footerRows, 1))
	m.canvas.Fit()
	m.help.Width = msg.Width
	return m, nil
}

// handleTick advances the simulation by the real time elapsed since the
// previous tick. The first tick runs with a zero delta.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	now := time.Time(msg)

	var delta float64
	if !m.lastTick.IsZero() {
		delta = float64(now.Sub(m.lastTick)) / float64(time.Millisecond)
	}
	m.lastTick = now

	for _, k := range m.holds.Expired(now) {
		m.game.KeyEvent(k, false)
	}

	if !m.paused {
		m.game.Update(delta)
	}

	return m, tickCmd(m.fps)
}

// saveScreenshot saves the current screen to a file.
func (m Model) saveScreenshot() {
	m.game.Draw(m.canvas)

	dir := filepath.Join(os.Getenv("HOME"), ".breakout", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("breakout_%s.txt", timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the playfield plus a one line status bar.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Draw(m.canvas)
	if m.paused {
		m.screen.DrawTextCentered(m.screen.Height()/2, "PAUSED", core.ColorYellow)
	}

	grid := m.game.Grid()
	status := fmt.Sprintf("bricks %d/%d", grid.Alive(), len(grid.Bricks))
	if m.paused {
		status += " [paused]"
	}
	footer := statusStyle.Render(status) + "  " + helpStyle.Render(m.help.View(m.keys))

	return RenderScreen(m.screen) + "\n" + footer
}

// Run starts the Bubble Tea program for a local terminal of the given size.
func Run(game *breakout.Game, fps, width, height int) error {
	p := tea.NewProgram(
		NewModel(game, fps, width, height),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
