package breakout

import "github.com/vovakirdan/tui-breakout/internal/core"

// stepDamping scales velocity by the frame delta into a position change.
// Velocities are tuned against this constant, so it is not configurable.
const stepDamping = 0.3

const ballColor = core.ColorBrightWhite

// Ball is the moving circle. Collision response rewrites its velocity;
// Update only ever advances the position.
type Ball struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Radius float64 `json:"r"`
	VX     float64 `json:"vx"`
	VY     float64 `json:"vy"`
}

// NewBall creates a ball at (x, y) moving with the given velocity.
func NewBall(x, y, radius, vx, vy float64) *Ball {
	return &Ball{X: x, Y: y, Radius: radius, VX: vx, VY: vy}
}

// Update advances the position by velocity scaled with the frame delta.
func (b *Ball) Update(delta float64) {
	b.X += b.VX * delta * stepDamping
	b.Y += b.VY * delta * stepDamping
}

// Flip multiplies the velocity components by the given signs. Callers pass
// ±1 per axis; +1 leaves the axis untouched.
func (b *Ball) Flip(sx, sy float64) {
	b.VX *= sx
	b.VY *= sy
}

// Circle returns the ball's collision shape.
func (b *Ball) Circle() core.Circle {
	return core.Circle{Center: core.Vec2{X: b.X, Y: b.Y}, R: b.Radius}
}

// Draw renders the ball.
func (b *Ball) Draw(s Surface) {
	s.Circle(b.X, b.Y, b.Radius, ballColor)
}
