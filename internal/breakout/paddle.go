package breakout

import "github.com/vovakirdan/tui-breakout/internal/core"

const paddleColor = core.ColorWhite

// Paddle is the player-controlled rectangle at the bottom of the playfield.
// It moves by direct position deltas, no velocity involved.
type Paddle struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"w"`
	Height float64 `json:"h"`

	// Clamp bounds keeping the full width on screen.
	minX, maxX float64
}

// NewPaddle creates a paddle centered at (x, y), clamped to a screen of the
// given width.
func NewPaddle(x, y, w, h, screenW float64) *Paddle {
	return &Paddle{
		X:      x,
		Y:      y,
		Width:  w,
		Height: h,
		minX:   w / 2,
		maxX:   screenW - w/2,
	}
}

// Update moves the paddle by the frame delta for each held direction, then
// clamps the center so the whole paddle stays within the screen. A paddle
// starting outside the bounds is pulled back in by the same clamp.
func (p *Paddle) Update(delta float64, input core.InputState) {
	if input.Held(core.ActionLeft) {
		p.X -= delta
	}
	if input.Held(core.ActionRight) {
		p.X += delta
	}
	p.X = core.ClampF(p.X, p.minX, p.maxX)
}

// Box returns the paddle's collision shape.
func (p *Paddle) Box() core.Box {
	return core.NewBox(p.X, p.Y, p.Width, p.Height)
}

// Draw renders the paddle.
func (p *Paddle) Draw(s Surface) {
	s.Rectangle(p.X, p.Y, p.Width, p.Height, paddleColor)
}
