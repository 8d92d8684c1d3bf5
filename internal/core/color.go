package core

// Color represents a foreground color for a screen cell.
// Values map to ANSI 256-color codes in the platform layer.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorYellow
	ColorBrightRed
	ColorBrightYellow
	ColorWhite
	ColorGray
)

// Attr is a bitmask of cell display attributes.
type Attr uint8

const (
	AttrBold Attr = 1 << iota
	AttrReverse
)
