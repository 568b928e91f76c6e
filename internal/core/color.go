package core

// Color represents a foreground color for a screen cell.
// Mapped to ANSI 256-color codes in the platform layer.
type Color uint8

// Predefined colors for world elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)
