package core

// Color is the foreground color of a screen cell. Values map to ANSI
// palette entries in the terminal renderer; ColorDefault leaves the cell
// in the terminal's own foreground color.
type Color uint8

// The palette covers the drift scene: gray for rock and arena walls, cyan
// for air pods, bright white for the craft hull, warm tones for the
// thruster flame, and the rest for starfield depth bands and HUD states.
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
