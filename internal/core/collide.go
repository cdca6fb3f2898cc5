package core

// Region classifies where a circle struck a box: an edge pair or a corner.
// The zero value means no contact.
type Region uint8

const (
	RegionNone      Region = iota
	RegionTopBottom        // circle center within the box's horizontal span
	RegionLeftRight        // circle center within the box's vertical span
	RegionCorner           // contact within radius of a box corner
)

// String returns a human-readable name for the region.
func (r Region) String() string {
	switch r {
	case RegionNone:
		return "None"
	case RegionTopBottom:
		return "TopBottom"
	case RegionLeftRight:
		return "LeftRight"
	case RegionCorner:
		return "Corner"
	default:
		return "Unknown"
	}
}

// CircleBox tests a circle against an axis-aligned box and classifies the
// contact region. The span tests run before the corner test, and the
// horizontal span is checked first; this ordering is load-bearing for
// corner-adjacent overlaps where both spans apply, so callers get the same
// classification on every edge case.
func CircleBox(c Circle, b Box) Region {
	dx := AbsF(c.Center.X - b.Center.X)
	dy := AbsF(c.Center.Y - b.Center.Y)

	// Bounding reject: centers too far apart on either axis.
	if dx > c.R+b.W/2 || dy > c.R+b.H/2 {
		return RegionNone
	}

	if dx <= b.W/2 {
		return RegionTopBottom
	}
	if dy <= b.H/2 {
		return RegionLeftRight
	}

	// Corner: distance from circle center to the nearest box corner.
	cornerX := dx - b.W/2
	cornerY := dy - b.H/2
	if cornerX*cornerX+cornerY*cornerY <= c.R*c.R {
		return RegionCorner
	}
	return RegionNone
}
