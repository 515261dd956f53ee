package entity

import (
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/tui-animate/internal/core"
)

// Sprite is one visual frame of an entity: a grid of colored runes.
// Rows may have different lengths; missing cells are treated as transparent.
type Sprite struct {
	Rows [][]core.Cell
}

// ParseSprite builds a sprite from multi-line art and an optional color mask.
// Mask letters (see core.MaskColor) color the rune at the same row/column;
// any other mask rune, or a missing mask, leaves the default color.
// A single leading newline is stripped so YAML block scalars read naturally.
func ParseSprite(art, mask string, color core.Color) Sprite {
	lines := splitLines(art)
	maskLines := splitLines(mask)

	rows := make([][]core.Cell, len(lines))
	for y, line := range lines {
		var maskRow []rune
		if y < len(maskLines) {
			maskRow = []rune(maskLines[y])
		}
		row := make([]core.Cell, 0, utf8.RuneCountInString(line))
		x := 0
		for _, r := range line {
			fg := color
			if x < len(maskRow) {
				if c, ok := core.MaskColor(maskRow[x]); ok {
					fg = c
				}
			}
			row = append(row, core.Cell{Rune: r, Fg: fg})
			x++
		}
		rows[y] = row
	}
	return Sprite{Rows: rows}
}

// Width returns the length of the longest row.
func (s Sprite) Width() int {
	w := 0
	for _, row := range s.Rows {
		w = max(w, len(row))
	}
	return w
}

// Height returns the number of rows.
func (s Sprite) Height() int {
	return len(s.Rows)
}

// Cell returns the cell at (x, y) relative to the sprite origin.
// ok is false outside the sprite.
func (s Sprite) Cell(x, y int) (core.Cell, bool) {
	if y < 0 || y >= len(s.Rows) || x < 0 || x >= len(s.Rows[y]) {
		return core.Cell{}, false
	}
	return s.Rows[y][x], true
}

func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.TrimPrefix(text, "\n")
	text = strings.TrimSuffix(text, "\n")
	return strings.Split(text, "\n")
}
