package tui

import (
	"math"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

const (
	ballGlyph  = '●'
	blockGlyph = '█'
)

// Canvas projects world coordinates onto a terminal cell buffer and
// implements the game's drawing surface. Terminal cells are roughly twice
// as tall as they are wide, so the vertical scale is half the horizontal
// one to keep the playfield proportions.
type Canvas struct {
	screen  *core.Screen
	worldW  float64
	worldH  float64
	scale   float64
	offsetX int
	offsetY int
}

// NewCanvas creates a canvas that letterboxes the given world inside the
// screen buffer.
func NewCanvas(screen *core.Screen, worldW, worldH float64) *Canvas {
	c := &Canvas{screen: screen, worldW: worldW, worldH: worldH}
	c.Fit()
	return c
}

// Fit recomputes the projection. Call it after the screen buffer has been
// resized.
func (c *Canvas) Fit() {
	w := float64(c.screen.Width())
	h := float64(c.screen.Height())
	if w <= 0 || h <= 0 || c.worldW <= 0 || c.worldH <= 0 {
		c.scale = 0
		return
	}
	c.scale = math.Min(w/c.worldW, 2*h/c.worldH)
	c.offsetX = int((w - c.worldW*c.scale) / 2)
	c.offsetY = int((h - c.worldH*c.scale/2) / 2)
}

func (c *Canvas) cellX(x float64) int {
	return c.offsetX + int(math.Round(x*c.scale))
}

func (c *Canvas) cellY(y float64) int {
	return c.offsetY + int(math.Round(y*c.scale/2))
}

// Clear wipes the underlying screen buffer.
func (c *Canvas) Clear() {
	c.screen.Clear()
}

// Circle draws a filled circle centered at world (x, y). Circles too small
// to cover a cell collapse to a single glyph.
func (c *Canvas) Circle(x, y, r float64, col core.Color) {
	if c.scale <= 0 {
		return
	}
	if r*c.scale < 1 {
		c.screen.SetCell(c.cellX(x), c.cellY(y), ballGlyph, col)
		return
	}
	x0, x1 := c.cellX(x-r), c.cellX(x+r)
	y0, y1 := c.cellY(y-r), c.cellY(y+r)
	for gy := y0; gy <= y1; gy++ {
		for gx := x0; gx <= x1; gx++ {
			// Map the cell back to world space and test against the radius.
			dx := float64(gx-c.offsetX)/c.scale - x
			dy := float64(gy-c.offsetY)*2/c.scale - y
			if dx*dx+dy*dy < r*r {
				c.screen.SetCell(gx, gy, ballGlyph, col)
			}
		}
	}
}

// Rectangle draws a filled rectangle centered at world (x, y). Rectangles
// always cover at least one cell so thin paddles and bricks stay visible.
func (c *Canvas) Rectangle(x, y, w, h float64, col core.Color) {
	if c.scale <= 0 {
		return
	}
	x0 := c.cellX(x - w/2)
	y0 := c.cellY(y - h/2)
	cw := core.Max(c.cellX(x+w/2)-x0, 1)
	ch := core.Max(c.cellY(y+h/2)-y0, 1)
	c.screen.FillRect(x0, y0, cw, ch, blockGlyph, col)
}
