package core

import "math/rand"

// Color is a terminal color for a screen cell, mapped to ANSI 256-color
// codes by the platform renderer.
type Color uint8

// Predefined colors. ColorDefault leaves the terminal color unchanged.
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
	ColorDarkGray
	ColorBlack
)

// accentColors are the frame colors a game may pick from at random.
var accentColors = []Color{
	ColorBrightRed,
	ColorBrightGreen,
	ColorBrightYellow,
	ColorBrightBlue,
	ColorBrightMagenta,
	ColorBrightCyan,
	ColorOrange,
}

// AccentColors returns the palette used for random accent hues.
func AccentColors() []Color {
	out := make([]Color, len(accentColors))
	copy(out, accentColors)
	return out
}

// RandomAccent picks an accent color using rng.
func RandomAccent(rng *rand.Rand) Color {
	return accentColors[rng.Intn(len(accentColors))]
}
