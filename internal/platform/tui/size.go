package tui

import (
	"os"

	"golang.org/x/term"
)

// Fallback canvas size used when the terminal cannot be queried.
const (
	FallbackWidth  = 80
	FallbackHeight = 24
)

// CanvasSize returns the size of the terminal attached to stdout.
// assumed is true when the size is the 80x24 fallback.
func CanvasSize() (width, height int, assumed bool) {
	return canvasSize(int(os.Stdout.Fd()))
}

func canvasSize(fd int) (width, height int, assumed bool) {
	w, h, err := term.GetSize(fd)
	if err != nil || w <= 0 || h <= 0 {
		return FallbackWidth, FallbackHeight, true
	}
	return w, h, false
}
