package anim

import (
	"github.com/vovakirdan/tui-animate/internal/core"
	"github.com/vovakirdan/tui-animate/internal/entity"
)

// Snapshot is the read-only state handed to the renderer once per frame.
// Entities are ordered by ascending Z, then name: later entries are drawn
// on top of earlier ones.
type Snapshot struct {
	Frame      uint64
	Width      int
	Height     int
	Background core.Color
	Entities   []entity.View
}

// Renderer draws a finished frame. It must not mutate the entities.
type Renderer interface {
	Render(s Snapshot)
}

// RendererFunc adapts a function to the Renderer interface.
type RendererFunc func(s Snapshot)

// Render calls f(s).
func (f RendererFunc) Render(s Snapshot) {
	f(s)
}
