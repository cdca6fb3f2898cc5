package breakout

import "github.com/vovakirdan/tui-breakout/internal/core"

// Brick is a static destructible rectangle. A dead brick is neither drawn
// nor collidable; it is never removed from the grid, only flagged.
type Brick struct {
	X      float64    `json:"x"`
	Y      float64    `json:"y"`
	Width  float64    `json:"w"`
	Height float64    `json:"h"`
	Color  core.Color `json:"color"`
	Alive  bool       `json:"alive"`
}

// Box returns the brick's collision shape.
func (b *Brick) Box() core.Box {
	return core.NewBox(b.X, b.Y, b.Width, b.Height)
}

// Draw renders the brick if it is still alive.
func (b *Brick) Draw(s Surface) {
	if !b.Alive {
		return
	}
	s.Rectangle(b.X, b.Y, b.Width, b.Height, b.Color)
}
