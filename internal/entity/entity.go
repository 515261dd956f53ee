// Package entity defines the simulated objects of an animation: their
// geometry, sprite frames, hooks, death conditions and follow relationship.
package entity

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-animate/internal/core"
)

// Offset configures which axes a follower copies from its leader.
// A nil axis is left alone.
type Offset struct {
	X, Y, Z *int
	Frame   *int // Follower frame = leader frame + offset
}

// Empty reports whether no axis is followed.
func (o Offset) Empty() bool {
	return o.X == nil && o.Y == nil && o.Z == nil && o.Frame == nil
}

// Config describes an entity to build with New.
type Config struct {
	Name        string
	Frames      []Sprite
	StartFrame  int
	Pos         core.Point
	Depth       int  // Collision depth along z; 0 means 1
	Transparent rune // Rune skipped when drawing; 0 draws every rune

	Physical bool // Takes part in collision detection
	Wrap     bool // Position wraps around the canvas bounds

	Behavior  Behavior
	OnCollide CollisionHandler
	OnDeath   DeathHandler

	DieOffscreen   bool
	DieAfterFrames int       // Frames to live; 0 disables
	DieAt          time.Time // Wall-clock death; zero disables
	DieWith        string    // Dies when this entity is gone

	Leader string
	Offset Offset
}

// Entity is a single simulated object owned by an animation.
// Width, height and depth are fixed once the entity is built.
type Entity struct {
	name        string
	frames      []Sprite
	current     int
	pos         core.Point
	size        core.Extent
	transparent rune

	physical bool
	wrap     bool

	behavior  Behavior
	onCollide CollisionHandler
	onDeath   DeathHandler

	dieOffscreen bool
	framesLeft   int
	countdown    bool
	dieAt        time.Time
	dieWith      string

	leader string
	offset Offset

	dying bool
}

// New builds an entity from cfg.
func New(cfg Config) (*Entity, error) {
	if cfg.Name == "" {
		return nil, ErrEmptyName
	}
	if len(cfg.Frames) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrNoFrames, cfg.Name)
	}
	if cfg.Depth < 0 {
		return nil, fmt.Errorf("%w: %q has depth %d", ErrNegativeExtent, cfg.Name, cfg.Depth)
	}
	if cfg.DieAfterFrames < 0 {
		return nil, fmt.Errorf("%w: %q has die-after %d frames", ErrNegativeLifetime, cfg.Name, cfg.DieAfterFrames)
	}
	if cfg.StartFrame < 0 || cfg.StartFrame >= len(cfg.Frames) {
		return nil, &FrameError{Entity: cfg.Name, Frame: cfg.StartFrame, Count: len(cfg.Frames)}
	}

	depth := cfg.Depth
	if depth == 0 {
		depth = 1
	}
	var width, height int
	for _, f := range cfg.Frames {
		width = max(width, f.Width())
		height = max(height, f.Height())
	}

	return &Entity{
		name:         cfg.Name,
		frames:       cfg.Frames,
		current:      cfg.StartFrame,
		pos:          cfg.Pos,
		size:         core.Extent{Width: width, Height: height, Depth: depth},
		transparent:  cfg.Transparent,
		physical:     cfg.Physical,
		wrap:         cfg.Wrap,
		behavior:     cfg.Behavior,
		onCollide:    cfg.OnCollide,
		onDeath:      cfg.OnDeath,
		dieOffscreen: cfg.DieOffscreen,
		framesLeft:   cfg.DieAfterFrames,
		countdown:    cfg.DieAfterFrames > 0,
		dieAt:        cfg.DieAt,
		dieWith:      cfg.DieWith,
		leader:       cfg.Leader,
		offset:       cfg.Offset,
	}, nil
}

// Name returns the entity's unique name.
func (e *Entity) Name() string { return e.name }

// Pos returns the current position.
func (e *Entity) Pos() core.Point { return e.pos }

// Size returns the fixed extent.
func (e *Entity) Size() core.Extent { return e.size }

// Box returns the collision box at the current position.
func (e *Entity) Box() core.Box { return core.Box{Pos: e.pos, Size: e.size} }

// Frame returns the current sprite frame index.
func (e *Entity) Frame() int { return e.current }

// FrameCount returns the number of sprite frames.
func (e *Entity) FrameCount() int { return len(e.frames) }

// Sprite returns the current sprite frame.
func (e *Entity) Sprite() Sprite { return e.frames[e.current] }

// Transparent returns the rune that is not drawn, if any.
func (e *Entity) Transparent() (rune, bool) { return e.transparent, e.transparent != 0 }

// Physical reports whether the entity takes part in collision detection.
func (e *Entity) Physical() bool { return e.physical }

// Wrap reports whether the position wraps around the canvas.
func (e *Entity) Wrap() bool { return e.wrap }

// Dying reports whether the entity is marked for removal this frame.
func (e *Entity) Dying() bool { return e.dying }

// Kill marks the entity for removal at the end of the current frame.
func (e *Entity) Kill() { e.dying = true }

// Behavior returns the per-frame behavior, or nil.
func (e *Entity) Behavior() Behavior { return e.behavior }

// CollisionHandler returns the collision handler, or nil.
func (e *Entity) CollisionHandler() CollisionHandler { return e.onCollide }

// DeathHandler returns the death handler, or nil.
func (e *Entity) DeathHandler() DeathHandler { return e.onDeath }

// Leader returns the name of the entity this one follows, if any.
func (e *Entity) Leader() (string, bool) { return e.leader, e.leader != "" }

// Offset returns the per-axis follow offset.
func (e *Entity) Offset() Offset { return e.offset }

// DieWith returns the name of the entity whose absence kills this one.
func (e *Entity) DieWith() (string, bool) { return e.dieWith, e.dieWith != "" }

// FramesLeft returns the remaining frame countdown; ok is false when the
// entity has no countdown.
func (e *Entity) FramesLeft() (n int, ok bool) { return e.framesLeft, e.countdown }

// SetX moves the entity horizontally. With wrap enabled an x outside
// [0, width) is wrapped with Euclidean modulo; otherwise it is stored as is.
func (e *Entity) SetX(x, width int) {
	if e.wrap {
		x = core.Wrap(x, width)
	}
	e.pos.X = x
}

// SetY moves the entity vertically, wrapping like SetX.
func (e *Entity) SetY(y, height int) {
	if e.wrap {
		y = core.Wrap(y, height)
	}
	e.pos.Y = y
}

// SetZ changes the layer. Z has no bound.
func (e *Entity) SetZ(z int) {
	e.pos.Z = z
}

// SetFrame selects a sprite frame. An index outside [0, FrameCount) leaves
// the frame unchanged and returns a *FrameError.
func (e *Entity) SetFrame(frame int) error {
	if frame < 0 || frame >= len(e.frames) {
		return &FrameError{Entity: e.name, Frame: frame, Count: len(e.frames)}
	}
	e.current = frame
	return nil
}

// Apply writes the non-nil fields of r through the setters.
func (e *Entity) Apply(r Result, width, height int) error {
	if r.Empty() {
		return nil
	}
	if r.X != nil {
		e.SetX(*r.X, width)
	}
	if r.Y != nil {
		e.SetY(*r.Y, height)
	}
	if r.Z != nil {
		e.SetZ(*r.Z)
	}
	if r.Frame != nil {
		return e.SetFrame(*r.Frame)
	}
	return nil
}

// Countdown decrements the frame countdown and reports whether it ran out.
// Entities without a countdown never run out.
func (e *Entity) Countdown() bool {
	if !e.countdown {
		return false
	}
	e.framesLeft--
	return e.framesLeft <= 0
}

// Expired reports whether the wall-clock death time has been reached.
func (e *Entity) Expired(now time.Time) bool {
	return !e.dieAt.IsZero() && !now.Before(e.dieAt)
}

// Offscreen reports whether a die-offscreen entity has fully left a canvas
// of the given size.
func (e *Entity) Offscreen(width, height int) bool {
	if !e.dieOffscreen {
		return false
	}
	return e.pos.X >= width ||
		e.pos.Y >= height ||
		e.pos.X < -e.size.Width ||
		e.pos.Y < -e.size.Height
}
