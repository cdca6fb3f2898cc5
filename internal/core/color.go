package core

// Color identifies a foreground color for a screen cell.
// Platforms map these to their own palettes (ANSI-256 styles in the
// terminal, hex strings on a browser canvas).
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorOrange
	ColorYellow
	ColorGreen
	ColorCyan
	ColorBlue
	ColorMagenta
	ColorWhite
	ColorBrightWhite
	ColorGray
)

// String returns a human-readable name for the color.
func (c Color) String() string {
	switch c {
	case ColorDefault:
		return "default"
	case ColorRed:
		return "red"
	case ColorOrange:
		return "orange"
	case ColorYellow:
		return "yellow"
	case ColorGreen:
		return "green"
	case ColorCyan:
		return "cyan"
	case ColorBlue:
		return "blue"
	case ColorMagenta:
		return "magenta"
	case ColorWhite:
		return "white"
	case ColorBrightWhite:
		return "bright white"
	case ColorGray:
		return "gray"
	default:
		return "unknown"
	}
}
