package core

// Color is a terminal colour for a cell's foreground or background.
// The platform layer maps each value to an ANSI 256-colour code.
type Color uint8

// Palette used by the game. ColorDefault leaves the terminal's own colour.
const (
	ColorDefault Color = iota
	ColorBlack
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorNavy
	ColorGray
)

// String returns the colour name, used in screenshots and test failures.
func (c Color) String() string {
	switch c {
	case ColorDefault:
		return "default"
	case ColorBlack:
		return "black"
	case ColorRed:
		return "red"
	case ColorGreen:
		return "green"
	case ColorYellow:
		return "yellow"
	case ColorBlue:
		return "blue"
	case ColorMagenta:
		return "magenta"
	case ColorCyan:
		return "cyan"
	case ColorWhite:
		return "white"
	case ColorNavy:
		return "navy"
	case ColorGray:
		return "gray"
	default:
		return "unknown"
	}
}
