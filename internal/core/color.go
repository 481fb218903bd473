package core

// Color is a foreground color for a screen cell.
// The platform maps each value to an ANSI 256-color code.
type Color uint8

// Screen colors. The first five mirror the puzzle's network colors so the
// game can hand them over without a lookup table.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorBlue
	ColorYellow
	ColorGray
	ColorDarkGray
	ColorCyan
	ColorMagenta
	ColorWhite
	ColorBrightWhite
)
