// Package core provides fundamental types for the breakout engine.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Vec2 is a scalar pair used for positions and velocities in world units.
type Vec2 struct {
	X, Y float64
}

// Circle is a circle shape in world coordinates, described by its center
// and radius. Used for the ball.
type Circle struct {
	Center Vec2
	R      float64
}

// Box is an axis-aligned rectangle described by its center point and full
// width/height. Used for bricks and the paddle.
type Box struct {
	Center Vec2
	W, H   float64
}

// NewBox creates a box centered at (x, y) with the given dimensions.
func NewBox(x, y, w, h float64) Box {
	return Box{Center: Vec2{X: x, Y: y}, W: w, H: h}
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// AbsF returns the absolute value of a float64.
func AbsF(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
