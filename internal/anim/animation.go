// Package anim implements the frame scheduler. An Animation owns every
// entity and advances them one frame per Animate call: behaviors, collision
// resolution, death cleanup, follower propagation, then render dispatch.
package anim

import (
	"fmt"
	"io"
	"math/rand"
	"sort"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-animate/internal/core"
	"github.com/vovakirdan/tui-animate/internal/entity"
)

// Animation is the scheduler state. It is not safe for concurrent use;
// drivers call Animate from a single goroutine.
type Animation struct {
	entities      map[string]*entity.Entity
	physicalCount int

	width       int
	height      int
	assumedSize bool
	bg          core.Color

	trackFramerate   bool
	framerate        int
	framesThisSecond int
	secondStart      time.Time

	frame   uint64
	input   core.InputFrame
	rng     *rand.Rand
	clock   core.Clock
	render  Renderer
	logger  *log.Logger
	reasons map[string]string // death reason per entity, reset every frame
	report  *Report           // report of the running frame, nil between frames
}

// Option configures an Animation.
type Option func(*Animation)

// WithLogger sets the logger. Without it the scheduler logs nothing.
func WithLogger(l *log.Logger) Option {
	return func(a *Animation) {
		if l != nil {
			a.logger = l
		}
	}
}

// WithClock replaces the system clock, mostly for tests.
func WithClock(c core.Clock) Option {
	return func(a *Animation) {
		if c != nil {
			a.clock = c
		}
	}
}

// WithRenderer sets the collaborator that receives every finished frame.
func WithRenderer(r Renderer) Option {
	return func(a *Animation) {
		a.render = r
	}
}

// WithBackground sets the canvas background color.
func WithBackground(bg core.Color) Option {
	return func(a *Animation) {
		a.bg = bg
	}
}

// WithFramerateTracking enables frames-per-second accounting.
func WithFramerateTracking(enabled bool) Option {
	return func(a *Animation) {
		a.trackFramerate = enabled
	}
}

// New creates an empty animation sized from cfg.
func New(cfg core.RuntimeConfig, opts ...Option) *Animation {
	a := &Animation{
		entities:    make(map[string]*entity.Entity),
		width:       cfg.ScreenW,
		height:      cfg.ScreenH,
		assumedSize: cfg.Assumed,
		input:       core.NewInputFrame(),
		rng:         rand.New(rand.NewSource(cfg.Seed)),
		clock:       core.SystemClock{},
		logger:      log.New(io.Discard),
		reasons:     make(map[string]string),
	}
	for _, opt := range opts {
		opt(a)
	}
	a.secondStart = a.clock.Now()
	return a
}

// Add inserts an entity. Names must be unique among live entities.
func (a *Animation) Add(e *entity.Entity) error {
	if e == nil {
		return ErrNilEntity
	}
	if _, exists := a.entities[e.Name()]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateEntity, e.Name())
	}
	a.entities[e.Name()] = e
	if e.Physical() {
		a.physicalCount++
	}
	a.logger.Debug("entity added", "name", e.Name(), "physical", e.Physical())
	return nil
}

// remove deletes a live entity and keeps physicalCount in step.
func (a *Animation) remove(name string) (*entity.Entity, bool) {
	e, ok := a.entities[name]
	if !ok {
		return nil, false
	}
	delete(a.entities, name)
	if e.Physical() {
		a.physicalCount--
	}
	return e, true
}

// Get returns a live entity for mutation outside of Animate.
func (a *Animation) Get(name string) (*entity.Entity, bool) {
	e, ok := a.entities[name]
	return e, ok
}

// Len returns the number of live entities.
func (a *Animation) Len() int {
	return len(a.entities)
}

// PhysicalCount returns the number of live physical entities.
func (a *Animation) PhysicalCount() int {
	return a.physicalCount
}

// Entities returns every live entity in drawing order (Z, then name).
func (a *Animation) Entities() []entity.View {
	views := make([]entity.View, 0, len(a.entities))
	for _, e := range a.entities {
		views = append(views, e)
	}
	sort.Slice(views, func(i, j int) bool {
		zi, zj := views[i].Pos().Z, views[j].Pos().Z
		if zi != zj {
			return zi < zj
		}
		return views[i].Name() < views[j].Name()
	})
	return views
}

// sortedNames returns live entity names in ascending order.
func (a *Animation) sortedNames() []string {
	names := make([]string, 0, len(a.entities))
	for name := range a.entities {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Resize changes the canvas bounds, e.g. after a terminal resize.
func (a *Animation) Resize(width, height int) {
	a.width = width
	a.height = height
	a.assumedSize = false
}

// AssumedSize reports whether the canvas size is a fallback.
func (a *Animation) AssumedSize() bool {
	return a.assumedSize
}

// Background returns the canvas background color.
func (a *Animation) Background() core.Color {
	return a.bg
}

// SetBackground changes the canvas background color.
func (a *Animation) SetBackground(bg core.Color) {
	a.bg = bg
}

// SetTrackFramerate enables or disables frames-per-second accounting.
func (a *Animation) SetTrackFramerate(enabled bool) {
	a.trackFramerate = enabled
}

// Framerate returns the number of frames animated during the last full second.
func (a *Animation) Framerate() int {
	return a.framerate
}

// FramesThisSecond returns frames animated since the current second started.
func (a *Animation) FramesThisSecond() int {
	return a.framesThisSecond
}

// SetInput stores the driver's input for the next frame.
func (a *Animation) SetInput(in core.InputFrame) {
	a.input = in.Clone()
}

// Width returns the canvas width.
func (a *Animation) Width() int { return a.width }

// Height returns the canvas height.
func (a *Animation) Height() int { return a.height }

// Frame returns the number of the current (or last) frame.
func (a *Animation) Frame() uint64 { return a.frame }

// Now returns the scheduler clock's time.
func (a *Animation) Now() time.Time { return a.clock.Now() }

// Input returns the actions reported for the current frame.
func (a *Animation) Input() core.InputFrame { return a.input }

// Rand returns the seeded random source.
func (a *Animation) Rand() *rand.Rand { return a.rng }

// Entity looks up a live entity by name, read-only.
func (a *Animation) Entity(name string) (entity.View, bool) {
	e, ok := a.entities[name]
	if !ok {
		return nil, false
	}
	return e, true
}

// Kill marks a live entity for removal during the next cleanup stage.
func (a *Animation) Kill(name string) bool {
	e, ok := a.entities[name]
	if !ok {
		return false
	}
	a.markDead(e, "killed")
	return true
}

// Spawn inserts an entity while a frame is running. A failed insertion is
// also added to the frame's report.
func (a *Animation) Spawn(e *entity.Entity) error {
	err := a.Add(e)
	if err != nil {
		a.Report(fmt.Errorf("spawn: %w", err))
	}
	return err
}

// Report adds a non-fatal error to the running frame's report. Outside
// Animate the error is only logged.
func (a *Animation) Report(err error) {
	if err == nil {
		return
	}
	if a.report == nil {
		a.logger.Warn("entity error outside a frame", "error", err)
		return
	}
	a.report.Errors = append(a.report.Errors, err)
}

// markDead flags e and remembers the first reason it was given.
func (a *Animation) markDead(e *entity.Entity, reason string) {
	e.Kill()
	if _, ok := a.reasons[e.Name()]; !ok {
		a.reasons[e.Name()] = reason
	}
}

var _ entity.World = (*Animation)(nil)
