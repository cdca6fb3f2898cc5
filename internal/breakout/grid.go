package breakout

import (
	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// brickPalette is the palette brick rows cycle through.
var brickPalette = [7]core.Color{
	core.ColorRed,
	core.ColorOrange,
	core.ColorYellow,
	core.ColorGreen,
	core.ColorCyan,
	core.ColorBlue,
	core.ColorMagenta,
}

// Grid is the brick wall: a flat row-major sequence of bricks laid out once
// at construction with fixed spacing. The grid is never resized; bricks are
// only individually killed.
type Grid struct {
	Cols   int
	Rows   int
	Bricks []Brick
}

// NewGrid lays out the brick wall described by the configuration. Each
// brick is centered in its grid cell; the whole wall is centered
// horizontally and starts below the top margin. Row colors cycle through
// the palette.
func NewGrid(cfg config.Breakout) *Grid {
	cols, rows := cfg.Grid.Cols, cfg.Grid.Rows
	cellW, cellH := cfg.Grid.CellWidth, cfg.Grid.CellHeight

	g := &Grid{
		Cols:   cols,
		Rows:   rows,
		Bricks: make([]Brick, 0, cols*rows),
	}

	originX := (cfg.Screen.Width - float64(cols)*cellW) / 2
	for row := 0; row < rows; row++ {
		y := cfg.Grid.TopMargin + float64(row)*cellH + cellH/2
		color := brickPalette[row%len(brickPalette)]
		for col := 0; col < cols; col++ {
			x := originX + float64(col)*cellW + cellW/2
			g.Bricks = append(g.Bricks, Brick{
				X:      x,
				Y:      y,
				Width:  cfg.Brick.Width,
				Height: cfg.Brick.Height,
				Color:  color,
				Alive:  true,
			})
		}
	}
	return g
}

// At returns the brick at the given column and row, or nil when out of
// range.
func (g *Grid) At(col, row int) *Brick {
	if col < 0 || col >= g.Cols || row < 0 || row >= g.Rows {
		return nil
	}
	return &g.Bricks[row*g.Cols+col]
}

// Alive returns the number of bricks still standing.
func (g *Grid) Alive() int {
	count := 0
	for i := range g.Bricks {
		if g.Bricks[i].Alive {
			count++
		}
	}
	return count
}
