package breakout

import (
	"testing"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

func TestNewGridLayout(t *testing.T) {
	cfg := config.DefaultBreakout()
	g := NewGrid(cfg)

	if got := len(g.Bricks); got != 100 {
		t.Fatalf("brick count = %d, expected 100", got)
	}
	if g.Alive() != 100 {
		t.Errorf("all bricks should start alive, got %d", g.Alive())
	}

	// Row-major: the first row fills indexes 0..cols-1.
	first := g.Bricks[0]
	if first.X != 22.5 || first.Y != 62.5 {
		t.Errorf("first brick center = (%v, %v), expected (22.5, 62.5)", first.X, first.Y)
	}
	if first.Width != 40 || first.Height != 20 {
		t.Errorf("brick size = (%v, %v), expected (40, 20)", first.Width, first.Height)
	}

	second := g.Bricks[1]
	if second.X != 67.5 || second.Y != 62.5 {
		t.Errorf("second brick center = (%v, %v), expected (67.5, 62.5)", second.X, second.Y)
	}

	// First brick of the second row sits one cell height lower.
	rowStart := g.Bricks[cfg.Grid.Cols]
	if rowStart.X != 22.5 || rowStart.Y != 87.5 {
		t.Errorf("second row start = (%v, %v), expected (22.5, 87.5)", rowStart.X, rowStart.Y)
	}

	// The last brick's right edge ends at the screen's right margin.
	last := g.Bricks[len(g.Bricks)-1]
	if last.X != 877.5 || last.Y != 162.5 {
		t.Errorf("last brick center = (%v, %v), expected (877.5, 162.5)", last.X, last.Y)
	}
}

func TestGridAt(t *testing.T) {
	g := NewGrid(config.DefaultBreakout())

	brick := g.At(3, 2)
	if brick == nil {
		t.Fatal("At(3, 2) returned nil for an in-range brick")
	}
	if brick != &g.Bricks[2*g.Cols+3] {
		t.Error("At(3, 2) should address bricks row-major")
	}

	outOfRange := []struct {
		name     string
		col, row int
	}{
		{"negative column", -1, 0},
		{"negative row", 0, -1},
		{"column too large", g.Cols, 0},
		{"row too large", 0, g.Rows},
	}
	for _, tc := range outOfRange {
		t.Run(tc.name, func(t *testing.T) {
			if g.At(tc.col, tc.row) != nil {
				t.Errorf("At(%d, %d) should return nil", tc.col, tc.row)
			}
		})
	}
}

func TestGridPaletteCycling(t *testing.T) {
	// Nine rows exercise the palette wrap-around.
	cfg := config.DefaultBreakout()
	cfg.Grid.Rows = 9
	g := NewGrid(cfg)

	expected := []core.Color{
		core.ColorRed,
		core.ColorOrange,
		core.ColorYellow,
		core.ColorGreen,
		core.ColorCyan,
		core.ColorBlue,
		core.ColorMagenta,
		core.ColorRed,
		core.ColorOrange,
	}

	for row, want := range expected {
		brick := g.At(0, row)
		if brick.Color != want {
			t.Errorf("row %d color = %v, expected %v", row, brick.Color, want)
		}
		// The whole row shares one color.
		if end := g.At(g.Cols-1, row); end.Color != want {
			t.Errorf("row %d end color = %v, expected %v", row, end.Color, want)
		}
	}
}

func TestGridAlive(t *testing.T) {
	g := NewGrid(config.DefaultBreakout())

	g.Bricks[0].Alive = false
	g.Bricks[42].Alive = false
	g.Bricks[99].Alive = false

	if got := g.Alive(); got != 97 {
		t.Errorf("Alive() = %d, expected 97", got)
	}
}
