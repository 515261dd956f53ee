// Package behavior provides stock entity behaviors and hooks used by scenes:
// movement, frame cycling, bouncing, keyboard steering, and common
// collision and death handlers.
package behavior

import (
	"github.com/vovakirdan/tui-animate/internal/core"
	"github.com/vovakirdan/tui-animate/internal/entity"
)

// Move shifts the entity by (DX, DY, DZ) once every Every frames.
type Move struct {
	DX, DY, DZ int
	Every      int // 0 or 1 moves every frame
}

// Update implements entity.Behavior.
func (m Move) Update(e *entity.Entity, w entity.World) entity.Result {
	if !due(w.Frame(), m.Every) {
		return entity.Result{}
	}
	var r entity.Result
	p := e.Pos()
	if m.DX != 0 {
		r.X = entity.Int(p.X + m.DX)
	}
	if m.DY != 0 {
		r.Y = entity.Int(p.Y + m.DY)
	}
	if m.DZ != 0 {
		r.Z = entity.Int(p.Z + m.DZ)
	}
	return r
}

// Cycle advances through the sprite frames, wrapping at the end.
type Cycle struct {
	Every int
}

// Update implements entity.Behavior.
func (c Cycle) Update(e *entity.Entity, w entity.World) entity.Result {
	if e.FrameCount() < 2 || !due(w.Frame(), c.Every) {
		return entity.Result{}
	}
	return entity.Result{Frame: entity.Int((e.Frame() + 1) % e.FrameCount())}
}

// Bounce moves the entity and reverses direction at the canvas edges.
// It keeps its velocity between frames, so each entity needs its own Bounce.
type Bounce struct {
	DX, DY int
	Every  int
}

// Update implements entity.Behavior.
func (b *Bounce) Update(e *entity.Entity, w entity.World) entity.Result {
	if !due(w.Frame(), b.Every) {
		return entity.Result{}
	}
	p, size := e.Pos(), e.Size()

	x := p.X + b.DX
	if x < 0 || x+size.Width > w.Width() {
		b.DX = -b.DX
		x = core.Clamp(p.X+b.DX, 0, max(0, w.Width()-size.Width))
	}
	y := p.Y + b.DY
	if y < 0 || y+size.Height > w.Height() {
		b.DY = -b.DY
		y = core.Clamp(p.Y+b.DY, 0, max(0, w.Height()-size.Height))
	}
	return entity.Result{X: entity.Int(x), Y: entity.Int(y)}
}

// Steer moves the entity by Speed cells in the direction of the arrow
// actions reported for the frame.
type Steer struct {
	Speed int
}

// Update implements entity.Behavior.
func (s Steer) Update(e *entity.Entity, w entity.World) entity.Result {
	speed := s.Speed
	if speed == 0 {
		speed = 1
	}
	in := w.Input()
	p := e.Pos()
	var r entity.Result
	switch {
	case in.Has(core.ActionLeft):
		r.X = entity.Int(p.X - speed)
	case in.Has(core.ActionRight):
		r.X = entity.Int(p.X + speed)
	}
	switch {
	case in.Has(core.ActionUp):
		r.Y = entity.Int(p.Y - speed)
	case in.Has(core.ActionDown):
		r.Y = entity.Int(p.Y + speed)
	}
	return r
}

// Chain runs several behaviors in order. Later results override earlier
// ones field by field; each behavior sees the entity before any of the
// chain's changes are applied.
type Chain []entity.Behavior

// Update implements entity.Behavior.
func (c Chain) Update(e *entity.Entity, w entity.World) entity.Result {
	var r entity.Result
	for _, b := range c {
		r = r.Merge(b.Update(e, w))
	}
	return r
}

// due reports whether a periodic action should run on this frame.
func due(frame uint64, every int) bool {
	if every <= 1 {
		return true
	}
	return frame%uint64(every) == 0
}
