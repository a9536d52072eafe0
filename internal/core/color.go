package core

// Color represents a foreground color for a screen cell.
// Values map to ANSI 256-color codes in the terminal renderer and to RGBA in
// the window renderer.
type Color uint8

// Palette used by the renderers.
const (
	ColorDefault Color = iota
	ColorCyan
	ColorMagenta
	ColorWhite
	ColorGray
	ColorBrightCyan
	ColorBrightMagenta
	ColorBrightWhite
	ColorRed
)

// Game element colours.
const (
	ColorPlayer   = ColorBrightCyan
	ColorObstacle = ColorBrightMagenta
	ColorScore    = ColorBrightWhite
	ColorBorder   = ColorCyan
	ColorOverlay  = ColorWhite
)
