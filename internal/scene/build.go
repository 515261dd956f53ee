package scene

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-animate/internal/anim"
	"github.com/vovakirdan/tui-animate/internal/behavior"
	"github.com/vovakirdan/tui-animate/internal/core"
	"github.com/vovakirdan/tui-animate/internal/entity"
)

// Populate implements registry.Scene. It adds every entity of the scene
// to a, placing random coordinates with a's seeded source.
func (s *Scene) Populate(a *anim.Animation) error {
	s.counter.Hits = 0
	if s.file.Background != "" {
		bg, _ := core.ParseColor(s.file.Background)
		a.SetBackground(bg)
	}

	now := a.Now()
	for _, spec := range s.file.Entities {
		for _, name := range spec.names() {
			pos := place(spec.Position, core.Point{}, a.Width(), a.Height(), a.Rand())
			e, err := s.build(spec, name, pos, now)
			if err != nil {
				return fmt.Errorf("scene %s: %w", s.ID(), err)
			}
			if err := a.Add(e); err != nil {
				return fmt.Errorf("scene %s: %w", s.ID(), err)
			}
		}
	}
	return nil
}

// place resolves a start position relative to base.
func place(p PosSpec, base core.Point, width, height int, rng *rand.Rand) core.Point {
	pos := base.Add(core.Point{X: p.X, Y: p.Y, Z: p.Z})
	if p.FromRight {
		pos.X = width - p.X
	}
	if p.FromBottom {
		pos.Y = height - p.Y
	}
	if p.RandomX {
		pos.X = rng.Intn(max(1, width))
	}
	if p.RandomY {
		pos.Y = rng.Intn(max(1, height))
	}
	return pos
}

// build turns a spec into an entity named name at pos.
func (s *Scene) build(spec EntitySpec, name string, pos core.Point, now time.Time) (*entity.Entity, error) {
	color, _ := core.ParseColor(spec.Color)
	frames := make([]entity.Sprite, len(spec.Frames))
	for i, f := range spec.Frames {
		frames[i] = entity.ParseSprite(f.Art, f.Mask, color)
	}

	cfg := entity.Config{
		Name:           name,
		Frames:         frames,
		StartFrame:     spec.StartFrame,
		Pos:            pos,
		Depth:          spec.Depth,
		Physical:       spec.Physical,
		Wrap:           spec.Wrap,
		DieOffscreen:   spec.DieOffscreen,
		DieAfterFrames: spec.DieAfterFrames,
		DieWith:        spec.DieWith,
		Behavior:       s.behaviors(spec.Behaviors),
		OnCollide:      s.collisionHandler(spec.OnCollide),
	}
	for _, r := range spec.Transparent {
		cfg.Transparent = r
		break
	}
	if spec.DieAfter > 0 {
		cfg.DieAt = now.Add(spec.DieAfter)
	}
	if f := spec.Follow; f != nil {
		cfg.Leader = f.Leader
		cfg.Offset = entity.Offset{X: f.X, Y: f.Y, Z: f.Z, Frame: f.Frame}
	}
	if spec.OnDeath != nil {
		cfg.OnDeath = &behavior.Spawn{New: s.factory(spec.OnDeath.Spawn)}
	}
	return entity.New(cfg)
}

// behaviors builds a fresh behavior per entity, since Bounce keeps state.
func (s *Scene) behaviors(specs []BehaviorSpec) entity.Behavior {
	var chain behavior.Chain
	for _, b := range specs {
		switch {
		case b.Move != nil:
			chain = append(chain, behavior.Move{DX: b.Move.DX, DY: b.Move.DY, DZ: b.Move.DZ, Every: b.Move.Every})
		case b.Cycle != nil:
			chain = append(chain, behavior.Cycle{Every: b.Cycle.Every})
		case b.Bounce != nil:
			chain = append(chain, &behavior.Bounce{DX: b.Bounce.DX, DY: b.Bounce.DY, Every: b.Bounce.Every})
		case b.Steer != nil:
			chain = append(chain, behavior.Steer{Speed: b.Steer.Speed})
		case b.Emit != nil:
			chain = append(chain, &behavior.Emitter{New: s.factory(b.Emit.Template), Every: b.Emit.Every})
		}
	}
	switch len(chain) {
	case 0:
		return nil
	case 1:
		return chain[0]
	}
	return chain
}

func (s *Scene) collisionHandler(names []string) entity.CollisionHandler {
	var hs behavior.Collisions
	for _, name := range names {
		switch name {
		case CollideKillSelf:
			hs = append(hs, behavior.KillSelf)
		case CollideKillOther:
			hs = append(hs, behavior.KillOther)
		case CollideCount:
			hs = append(hs, &s.counter)
		}
	}
	switch len(hs) {
	case 0:
		return nil
	case 1:
		return hs[0]
	}
	return hs
}

// factory spawns copies of a template, positioned relative to the entity
// that triggers the spawn.
func (s *Scene) factory(template string) behavior.Factory {
	return func(w entity.World, at entity.View) (*entity.Entity, error) {
		spec, ok := s.file.Templates[template]
		if !ok {
			return nil, fmt.Errorf("%w: unknown template %q", ErrInvalidScene, template)
		}
		pos := place(spec.Position, at.Pos(), w.Width(), w.Height(), w.Rand())
		return s.build(spec, entity.UniqueName(spec.Name), pos, w.Now())
	}
}
