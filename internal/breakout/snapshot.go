package breakout

import "math"

// snapshotScale converts world units to snapshot integers. A thousandth of
// a world unit is far below anything the update math produces, so two equal
// runs always flatten to identical snapshots.
const snapshotScale = 1000

// Snapshot contains the complete mutable game state, flattened to primitive
// integers for stable comparison.
type Snapshot struct {
	BallX   int64
	BallY   int64
	BallVX  int64
	BallVY  int64
	PaddleX int64

	BricksAlive int

	// Brick liveness flattened in grid order (row*cols + col = index).
	BrickData []int64
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	brickData := make([]int64, len(g.grid.Bricks))
	for i := range g.grid.Bricks {
		if g.grid.Bricks[i].Alive {
			brickData[i] = 1
		}
	}

	return Snapshot{
		BallX:       scaled(g.ball.X),
		BallY:       scaled(g.ball.Y),
		BallVX:      scaled(g.ball.VX),
		BallVY:      scaled(g.ball.VY),
		PaddleX:     scaled(g.paddle.X),
		BricksAlive: g.grid.Alive(),
		BrickData:   brickData,
	}
}

// scaled converts a world-unit value to its snapshot integer.
func scaled(v float64) int64 {
	return int64(math.Round(v * snapshotScale))
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(17)
	h = h*31 + uint64(snap.BallX)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallY)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallVX)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallVY)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PaddleX)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BricksAlive) //#nosec G115 -- hash computation

	for _, v := range snap.BrickData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	return h
}
