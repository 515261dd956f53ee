package entity

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-animate/internal/core"
)

// World is the scheduler state visible to hooks while they run.
// Hooks must not keep a World (or any entity) after returning.
type World interface {
	// Width and Height are the canvas bounds.
	Width() int
	Height() int

	// Frame is the number of the frame being processed, starting at 1.
	Frame() uint64

	// Now is the scheduler clock's current time.
	Now() time.Time

	// Input holds the actions the driver reported for this frame.
	Input() core.InputFrame

	// Rand is the scheduler's seeded random source.
	Rand() *rand.Rand

	// Entity looks up a live entity by name. Siblings may or may not have
	// been updated yet in the current frame.
	Entity(name string) (View, bool)

	// Kill marks a live entity for removal at the end of the frame.
	// Returns false if no such entity exists.
	Kill(name string) bool

	// Spawn inserts a new entity immediately. Its behavior first runs on
	// the next frame. A failure is also added to the frame's report.
	Spawn(e *Entity) error

	// Report adds a non-fatal error to the frame's report.
	Report(err error)
}

// View is read-only access to an entity.
type View interface {
	Name() string
	Pos() core.Point
	Size() core.Extent
	Box() core.Box
	Frame() int
	FrameCount() int
	Sprite() Sprite
	Transparent() (rune, bool)
	Physical() bool
	Dying() bool
}

// Result carries the changes a behavior proposes for its entity.
// A nil field means "unchanged".
type Result struct {
	X, Y, Z *int
	Frame   *int
}

// Empty reports whether the result changes nothing.
func (r Result) Empty() bool {
	return r.X == nil && r.Y == nil && r.Z == nil && r.Frame == nil
}

// Merge overlays the non-nil fields of o onto r.
func (r Result) Merge(o Result) Result {
	if o.X != nil {
		r.X = o.X
	}
	if o.Y != nil {
		r.Y = o.Y
	}
	if o.Z != nil {
		r.Z = o.Z
	}
	if o.Frame != nil {
		r.Frame = o.Frame
	}
	return r
}

// Int returns a pointer to v, for building Result and Offset values.
func Int(v int) *int {
	return &v
}

// Behavior runs once per frame for a live entity.
type Behavior interface {
	Update(e *Entity, w World) Result
}

// BehaviorFunc adapts a function to the Behavior interface.
type BehaviorFunc func(e *Entity, w World) Result

// Update calls f(e, w).
func (f BehaviorFunc) Update(e *Entity, w World) Result {
	return f(e, w)
}

// CollisionHandler runs once per colliding pair for each physical participant.
// It may mutate e or mark entities for death; removal is always deferred.
type CollisionHandler interface {
	Collide(e *Entity, w World, other View)
}

// CollisionFunc adapts a function to the CollisionHandler interface.
type CollisionFunc func(e *Entity, w World, other View)

// Collide calls f(e, w, other).
func (f CollisionFunc) Collide(e *Entity, w World, other View) {
	f(e, w, other)
}

// DeathHandler runs exactly once, after the entity left the scheduler.
type DeathHandler interface {
	Died(e *Entity, w World)
}

// DeathFunc adapts a function to the DeathHandler interface.
type DeathFunc func(e *Entity, w World)

// Died calls f(e, w).
func (f DeathFunc) Died(e *Entity, w World) {
	f(e, w)
}
