package config

import (
	_ "embed"
)

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

// DefaultBreakout returns the reference configuration: a 900x780 playfield
// with a 20x5 brick wall. It mirrors defaults/breakout.yaml and serves as
// the fallback should the embedded file fail to parse.
func DefaultBreakout() Breakout {
	return Breakout{
		Screen: Screen{
			Width:  900,
			Height: 780,
		},
		Grid: Grid{
			Cols:       20,
			Rows:       5,
			CellWidth:  45,
			CellHeight: 25,
			TopMargin:  50,
		},
		Brick: Brick{
			Width:  40,
			Height: 20,
		},
		Paddle: Paddle{
			Width:        90,
			Height:       14,
			BottomMargin: 40,
		},
		Ball: Ball{
			Radius:    10,
			StartY:    500,
			VelocityX: 0.3,
			VelocityY: 1.0,
		},
	}
}
