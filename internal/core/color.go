package core

// Color selects the foreground color of a screen cell. The palette is
// the small set the arena renderer actually draws with; the terminal
// code for a value comes from ANSI.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorCyan
	ColorWhite
	ColorGray
	ColorBrightYellow
	ColorBrightCyan
	ColorBrightWhite
)

// ANSI returns the ANSI 256-color code for c, or the empty string for
// the terminal default.
func (c Color) ANSI() string {
	switch c {
	case ColorRed:
		return "1"
	case ColorGreen:
		return "2"
	case ColorCyan:
		return "6"
	case ColorWhite:
		return "7"
	case ColorGray:
		return "245"
	case ColorBrightYellow:
		return "11"
	case ColorBrightCyan:
		return "14"
	case ColorBrightWhite:
		return "15"
	}
	return ""
}
