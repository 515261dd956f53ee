package render

import "github.com/vovakirdan/tui-animate/internal/core"

// Framed returns a copy of src surrounded by a box outline, with the
// title centered on the top edge when it fits.
func Framed(src *core.Screen, title string) *core.Screen {
	w, h := src.Width()+2, src.Height()+2
	out := core.NewScreen(w, h)
	out.SetBackground(src.Background())
	out.Clear()
	out.DrawBox(core.NewRect(0, 0, w, h))

	if title != "" && len([]rune(title))+2 <= w-2 {
		out.DrawTextCentered(0, " "+title+" ")
	}

	for y := 0; y < src.Height(); y++ {
		for x := 0; x < src.Width(); x++ {
			out.SetCell(x+1, y+1, src.GetCell(x, y))
		}
	}
	return out
}
