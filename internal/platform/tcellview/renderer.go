// Package tcellview is the alternative display backend: it drives an
// animation on a tcell screen instead of Bubble Tea.
package tcellview

import (
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-animate/internal/anim"
	"github.com/vovakirdan/tui-animate/internal/core"
	"github.com/vovakirdan/tui-animate/internal/render"
)

// palette maps core.Color to tcell palette indexes.
var palette = map[core.Color]int{
	core.ColorBlack:         0,
	core.ColorRed:           1,
	core.ColorGreen:         2,
	core.ColorYellow:        3,
	core.ColorBlue:          4,
	core.ColorMagenta:       5,
	core.ColorCyan:          6,
	core.ColorWhite:         7,
	core.ColorBrightRed:     9,
	core.ColorBrightGreen:   10,
	core.ColorBrightYellow:  11,
	core.ColorBrightBlue:    12,
	core.ColorBrightMagenta: 13,
	core.ColorBrightCyan:    14,
	core.ColorBrightWhite:   15,
	core.ColorOrange:        208,
	core.ColorGray:          245,
}

// tcellColor converts a core color; ColorDefault keeps the terminal color.
func tcellColor(c core.Color) tcell.Color {
	if n, ok := palette[c]; ok {
		return tcell.PaletteColor(n)
	}
	return tcell.ColorDefault
}

// Style returns the tcell style of a cell.
func Style(c core.Cell) tcell.Style {
	return tcell.StyleDefault.Foreground(tcellColor(c.Fg)).Background(tcellColor(c.Bg))
}

// Blit copies src into dst starting at the top-left corner.
func Blit(dst tcell.Screen, src *core.Screen) {
	for y := 0; y < src.Height(); y++ {
		for x := 0; x < src.Width(); x++ {
			c := src.GetCell(x, y)
			dst.SetContent(x, y, c.Rune, nil, Style(c))
		}
	}
}

// Renderer composes each snapshot and copies it to a tcell screen.
// The caller decides when to Show.
type Renderer struct {
	screen     tcell.Screen
	compositor *render.Compositor
}

// NewRenderer creates a renderer drawing to screen.
func NewRenderer(screen tcell.Screen) *Renderer {
	w, h := screen.Size()
	return &Renderer{screen: screen, compositor: render.NewCompositor(w, h)}
}

// Render implements anim.Renderer.
func (r *Renderer) Render(s anim.Snapshot) {
	r.compositor.Render(s)
	Blit(r.screen, r.compositor.Screen())
}

var _ anim.Renderer = (*Renderer)(nil)
