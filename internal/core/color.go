package core

import "strings"

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for sprites and backgrounds.
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
	ColorBlack
)

var colorNames = map[string]Color{
	"default":        ColorDefault,
	"red":            ColorRed,
	"green":          ColorGreen,
	"yellow":         ColorYellow,
	"blue":           ColorBlue,
	"magenta":        ColorMagenta,
	"cyan":           ColorCyan,
	"white":          ColorWhite,
	"bright_red":     ColorBrightRed,
	"bright_green":   ColorBrightGreen,
	"bright_yellow":  ColorBrightYellow,
	"bright_blue":    ColorBrightBlue,
	"bright_magenta": ColorBrightMagenta,
	"bright_cyan":    ColorBrightCyan,
	"bright_white":   ColorBrightWhite,
	"orange":         ColorOrange,
	"gray":           ColorGray,
	"black":          ColorBlack,
}

// ParseColor looks up a color by its name ("red", "bright_blue", ...).
// Returns false for unknown names.
func ParseColor(name string) (Color, bool) {
	c, ok := colorNames[strings.ToLower(strings.TrimSpace(name))]
	return c, ok
}

// MaskColor maps a sprite color-mask letter to a color.
// Lowercase letters are normal colors, uppercase letters are bright variants.
func MaskColor(r rune) (Color, bool) {
	switch r {
	case 'r':
		return ColorRed, true
	case 'g':
		return ColorGreen, true
	case 'y':
		return ColorYellow, true
	case 'b':
		return ColorBlue, true
	case 'm':
		return ColorMagenta, true
	case 'c':
		return ColorCyan, true
	case 'w':
		return ColorWhite, true
	case 'k':
		return ColorBlack, true
	case 'R':
		return ColorBrightRed, true
	case 'G':
		return ColorBrightGreen, true
	case 'Y':
		return ColorBrightYellow, true
	case 'B':
		return ColorBrightBlue, true
	case 'M':
		return ColorBrightMagenta, true
	case 'C':
		return ColorBrightCyan, true
	case 'W':
		return ColorBrightWhite, true
	case 'o', 'O':
		return ColorOrange, true
	case 'x', 'X':
		return ColorGray, true
	default:
		return ColorDefault, false
	}
}
