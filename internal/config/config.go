// Package config provides YAML-based configuration loading for the
// breakout game. All values are in world units, not terminal cells.
package config

import "fmt"

// Breakout contains the construction parameters for a game: the playfield,
// the brick wall layout, and the initial entity geometry. The kinematic
// behavior (step damping, paddle deflection) is fixed in the game code and
// deliberately not configurable.
type Breakout struct {
	Screen Screen `yaml:"screen"`
	Grid   Grid   `yaml:"grid"`
	Brick  Brick  `yaml:"brick"`
	Paddle Paddle `yaml:"paddle"`
	Ball   Ball   `yaml:"ball"`
}

// Screen defines the playfield dimensions in world units.
type Screen struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Grid defines the brick wall layout: the grid dimensions and the cell
// spacing each brick is centered in.
type Grid struct {
	Cols       int     `yaml:"cols"`
	Rows       int     `yaml:"rows"`
	CellWidth  float64 `yaml:"cell_width"`
	CellHeight float64 `yaml:"cell_height"`
	TopMargin  float64 `yaml:"top_margin"`
}

// Brick defines the size of a single brick inside its grid cell.
type Brick struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Paddle defines the paddle geometry. The paddle starts centered
// horizontally, BottomMargin world units above the bottom edge.
type Paddle struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	BottomMargin float64 `yaml:"bottom_margin"`
}

// Ball defines the ball geometry and launch state. The ball starts centered
// horizontally at StartY, moving with the given velocity.
type Ball struct {
	Radius    float64 `yaml:"radius"`
	StartY    float64 `yaml:"start_y"`
	VelocityX float64 `yaml:"velocity_x"`
	VelocityY float64 `yaml:"velocity_y"`
}

// Validate checks the configuration for values the game cannot be
// constructed from.
func (c Breakout) Validate() error {
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		return fmt.Errorf("config: screen dimensions must be positive, got %.0fx%.0f", c.Screen.Width, c.Screen.Height)
	}
	if c.Grid.Cols < 1 || c.Grid.Rows < 1 {
		return fmt.Errorf("config: grid must be at least 1x1, got %dx%d", c.Grid.Cols, c.Grid.Rows)
	}
	if c.Grid.CellWidth <= 0 || c.Grid.CellHeight <= 0 {
		return fmt.Errorf("config: grid cell dimensions must be positive")
	}
	if c.Brick.Width <= 0 || c.Brick.Height <= 0 {
		return fmt.Errorf("config: brick dimensions must be positive")
	}
	if c.Brick.Width > c.Grid.CellWidth || c.Brick.Height > c.Grid.CellHeight {
		return fmt.Errorf("config: brick %.0fx%.0f does not fit the %.0fx%.0f grid cell",
			c.Brick.Width, c.Brick.Height, c.Grid.CellWidth, c.Grid.CellHeight)
	}
	if float64(c.Grid.Cols)*c.Grid.CellWidth > c.Screen.Width {
		return fmt.Errorf("config: %d grid columns do not fit a %.0f-wide screen", c.Grid.Cols, c.Screen.Width)
	}
	if c.Paddle.Width <= 0 || c.Paddle.Height <= 0 {
		return fmt.Errorf("config: paddle dimensions must be positive")
	}
	if c.Paddle.Width > c.Screen.Width {
		return fmt.Errorf("config: paddle wider than the screen")
	}
	if c.Ball.Radius <= 0 {
		return fmt.Errorf("config: ball radius must be positive")
	}
	return nil
}
