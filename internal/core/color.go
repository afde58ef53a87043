package core

// Color represents a foreground color for a screen cell.
// The platform maps each value to an ANSI color.
type Color uint8

// Colors used by the game renderer.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorOrange
	ColorGray
)

// BlockPalette holds one color per cosmetic block variant.
var BlockPalette = []Color{ColorRed, ColorOrange, ColorYellow, ColorGreen, ColorCyan}
