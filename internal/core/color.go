package core

// Color represents a foreground color for a screen cell.
// The platform maps each value to an ANSI 256-color code.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// stagePalette cycles through distinct colors so neighbouring stages differ.
var stagePalette = []Color{
	ColorWhite,
	ColorCyan,
	ColorGreen,
	ColorYellow,
	ColorOrange,
	ColorRed,
	ColorMagenta,
	ColorBlue,
	ColorBrightCyan,
	ColorBrightGreen,
	ColorBrightYellow,
	ColorBrightRed,
	ColorBrightMagenta,
	ColorBrightBlue,
	ColorBrightWhite,
}

// StageColor returns the display color of a piece stage.
func StageColor(stage int) Color {
	if stage < 0 {
		return ColorGray
	}
	return stagePalette[stage%len(stagePalette)]
}
