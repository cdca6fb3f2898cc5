package breakout

import "github.com/vovakirdan/tui-breakout/internal/core"

// Surface is the drawing target entities render onto. Coordinates are
// world units and shapes are addressed by their centers; implementations
// decide how that geometry maps onto their medium.
type Surface interface {
	// Clear erases the whole surface.
	Clear()

	// Circle draws a filled circle centered at (x, y).
	Circle(x, y, r float64, c core.Color)

	// Rectangle draws a filled rectangle centered at (x, y).
	Rectangle(x, y, w, h float64, c core.Color)
}
