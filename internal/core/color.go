package core

// Color represents a foreground color for a screen cell.
// The platform maps each value to an ANSI 256-color code.
type Color uint8

const (
	ColorDefault Color = iota
	ColorYellow
	ColorBrightYellow
	ColorBrightWhite
	ColorGray
	ColorRed
	ColorBoardDark  // rgb(61, 131, 97)
	ColorBoardLight // rgb(30, 201, 139)
)
