// Package render composes scheduler snapshots into a core.Screen cell buffer.
// Drivers display the buffer; the compositor never touches the terminal.
package render

import (
	"github.com/vovakirdan/tui-animate/internal/anim"
	"github.com/vovakirdan/tui-animate/internal/core"
	"github.com/vovakirdan/tui-animate/internal/entity"
)

// Compositor draws every snapshot it receives into its screen.
// It implements anim.Renderer.
type Compositor struct {
	screen *core.Screen
	frame  uint64
	drawn  int
}

// NewCompositor creates a compositor with a screen of the given size.
// The screen is resized to the snapshot bounds on every frame.
func NewCompositor(width, height int) *Compositor {
	return &Compositor{screen: core.NewScreen(width, height)}
}

// Render implements anim.Renderer.
func (c *Compositor) Render(s anim.Snapshot) {
	c.frame = s.Frame
	c.drawn = Compose(c.screen, s)
}

// Screen returns the buffer holding the last composed frame.
func (c *Compositor) Screen() *core.Screen {
	return c.screen
}

// Frame returns the number of the last composed frame.
func (c *Compositor) Frame() uint64 {
	return c.frame
}

// Drawn returns how many entities had at least one visible cell in the
// last frame.
func (c *Compositor) Drawn() int {
	return c.drawn
}

// Compose clears screen to the snapshot background and draws the entities
// in snapshot order, so later entities cover earlier ones. Cells outside
// the canvas are clipped. It returns the number of entities that produced
// a visible cell.
func Compose(screen *core.Screen, s anim.Snapshot) int {
	screen.Resize(s.Width, s.Height)
	screen.SetBackground(s.Background)
	screen.Clear()

	drawn := 0
	for _, v := range s.Entities {
		if drawEntity(screen, v, s.Background) {
			drawn++
		}
	}
	return drawn
}

func drawEntity(screen *core.Screen, v entity.View, bg core.Color) bool {
	sprite := v.Sprite()
	pos := v.Pos()
	skip, hasSkip := v.Transparent()

	visible := false
	for y, row := range sprite.Rows {
		sy := pos.Y + y
		if sy < 0 || sy >= screen.Height() {
			continue
		}
		for x, cell := range row {
			sx := pos.X + x
			if sx < 0 || sx >= screen.Width() {
				continue
			}
			if hasSkip && cell.Rune == skip {
				continue
			}
			if cell.Bg == core.ColorDefault {
				cell.Bg = bg
			}
			screen.SetCell(sx, sy, cell)
			visible = true
		}
	}
	return visible
}

var _ anim.Renderer = (*Compositor)(nil)
