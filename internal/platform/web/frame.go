package web

import "github.com/vovakirdan/tui-breakout/internal/breakout"

// Frame is one tick of game state as sent to the client. The client is
// stateless and redraws the whole scene from each frame.
type Frame struct {
	World  WorldSize        `json:"world"`
	Ball   breakout.Ball    `json:"ball"`
	Paddle breakout.Paddle  `json:"paddle"`
	Bricks []breakout.Brick `json:"bricks"`
	Alive  int              `json:"alive"`
}

// WorldSize tells the client how big the playfield is so it can scale its
// canvas.
type WorldSize struct {
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// InputMessage is a key transition reported by the client. Key carries the
// browser key identifier (e.g., "ArrowLeft"); unbound keys are ignored by
// the game.
type InputMessage struct {
	Key     string `json:"key"`
	Pressed bool   `json:"pressed"`
}

// buildFrame captures the state the client needs to draw one frame.
func buildFrame(g *breakout.Game) Frame {
	w, h := g.Size()
	grid := g.Grid()
	return Frame{
		World:  WorldSize{W: w, H: h},
		Ball:   *g.Ball(),
		Paddle: *g.Paddle(),
		Bricks: grid.Bricks,
		Alive:  grid.Alive(),
	}
}
