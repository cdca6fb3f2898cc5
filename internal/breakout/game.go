// Package breakout implements the game itself: the ball, paddle and brick
// entities, the collision response, and the per-frame orchestration. The
// package is platform-free; drivers call Update with the elapsed
// milliseconds and Draw with a Surface, and feed key events through
// KeyEvent.
package breakout

import (
	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// paddleDeflection scales the ball's offset from the paddle center into
// its outgoing horizontal velocity.
const paddleDeflection = 0.01

// Game owns all entities and the input state. It is constructed once and
// handed to a driver; there is no teardown and no state beyond "running".
type Game struct {
	cfg      config.Breakout
	grid     *Grid
	paddle   *Paddle
	ball     *Ball
	input    core.InputState
	bindings core.Bindings
}

// New constructs a game from the given configuration, with the default key
// bindings. The paddle and ball start centered horizontally.
func New(cfg config.Breakout) *Game {
	centerX := cfg.Screen.Width / 2
	return &Game{
		cfg:  cfg,
		grid: NewGrid(cfg),
		paddle: NewPaddle(
			centerX,
			cfg.Screen.Height-cfg.Paddle.BottomMargin,
			cfg.Paddle.Width,
			cfg.Paddle.Height,
			cfg.Screen.Width,
		),
		ball:     NewBall(centerX, cfg.Ball.StartY, cfg.Ball.Radius, cfg.Ball.VelocityX, cfg.Ball.VelocityY),
		input:    core.NewInputState(),
		bindings: core.DefaultBindings(),
	}
}

// KeyEvent feeds one host key event into the input state. Unbound key
// identifiers are ignored.
func (g *Game) KeyEvent(key string, pressed bool) {
	if action, ok := g.bindings.Lookup(key); ok {
		g.input.Set(action, pressed)
	}
}

// Update advances the game by one frame. The sequence is fixed: entity
// movement, then paddle bounce, then the brick sweep, then wall
// corrections. Delta is wall-clock milliseconds since the previous frame.
func (g *Game) Update(delta float64) {
	// Bricks are static. The ball moves first, then the paddle reads the
	// current input state.
	g.ball.Update(delta)
	g.paddle.Update(delta, g.input)

	g.collidePaddle()
	g.collideBricks()
	g.collideWalls()
}

// collidePaddle bounces the ball off the paddle. Any contact region counts:
// the outgoing horizontal velocity is proportional to how far off-center
// the ball struck, and the vertical velocity always points up afterwards.
func (g *Game) collidePaddle() {
	if core.CircleBox(g.ball.Circle(), g.paddle.Box()) == core.RegionNone {
		return
	}
	g.ball.VX = (g.ball.X - g.paddle.X) * paddleDeflection
	g.ball.VY = -core.AbsF(g.ball.VY)
}

// collideBricks sweeps all live bricks. Every brick in contact this frame
// dies, but the ball's velocity flips at most once per axis: the regions of
// all hits accumulate into one combined flip applied after the sweep.
func (g *Game) collideBricks() {
	flipX, flipY := 1.0, 1.0
	for i := range g.grid.Bricks {
		brick := &g.grid.Bricks[i]
		if !brick.Alive {
			continue
		}
		region := core.CircleBox(g.ball.Circle(), brick.Box())
		if region == core.RegionNone {
			continue
		}
		brick.Alive = false
		switch region {
		case core.RegionLeftRight:
			flipX = -1
		case core.RegionTopBottom:
			flipY = -1
		case core.RegionCorner:
			flipX = -1
			flipY = -1
		}
	}
	g.ball.Flip(flipX, flipY)
}

// collideWalls forces the velocity back into the playfield at the side and
// top edges. There is no bottom wall: a missed ball keeps falling and the
// game keeps running.
func (g *Game) collideWalls() {
	if g.ball.X-g.ball.Radius < 0 {
		g.ball.VX = core.AbsF(g.ball.VX)
	}
	if g.ball.X+g.ball.Radius > g.cfg.Screen.Width {
		g.ball.VX = -core.AbsF(g.ball.VX)
	}
	if g.ball.Y-g.ball.Radius < 0 {
		g.ball.VY = core.AbsF(g.ball.VY)
	}
}

// Draw renders one frame in fixed z-order: bricks, then ball, then paddle.
func (g *Game) Draw(s Surface) {
	s.Clear()
	for i := range g.grid.Bricks {
		g.grid.Bricks[i].Draw(s)
	}
	g.ball.Draw(s)
	g.paddle.Draw(s)
}

// Ball returns the ball entity.
func (g *Game) Ball() *Ball {
	return g.ball
}

// Paddle returns the paddle entity.
func (g *Game) Paddle() *Paddle {
	return g.paddle
}

// Grid returns the brick wall.
func (g *Game) Grid() *Grid {
	return g.grid
}

// Size returns the playfield dimensions in world units.
func (g *Game) Size() (w, h float64) {
	return g.cfg.Screen.Width, g.cfg.Screen.Height
}
