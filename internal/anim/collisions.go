package anim

import (
	"fmt"
	"sort"

	"github.com/vovakirdan/tui-animate/internal/entity"
)

// Pair is an unordered collision between two physical entities, stored
// with A < B so that (A, B) and (B, A) are the same value.
type Pair struct {
	A, B string
}

// NewPair orders two names into a Pair.
func NewPair(x, y string) Pair {
	if y < x {
		x, y = y, x
	}
	return Pair{A: x, B: y}
}

// FindCollisions returns every intersecting pair of physical entities,
// each pair once, sorted. Non-physical entities are ignored.
func FindCollisions(ents []entity.View) []Pair {
	physical := make([]entity.View, 0, len(ents))
	for _, e := range ents {
		if e.Physical() {
			physical = append(physical, e)
		}
	}
	sort.Slice(physical, func(i, j int) bool {
		return physical[i].Name() < physical[j].Name()
	})

	var pairs []Pair
	for i, me := range physical {
		box := me.Box()
		for _, other := range physical[i+1:] {
			if other.Name() == me.Name() {
				continue
			}
			if box.Intersects(other.Box()) {
				pairs = append(pairs, Pair{A: me.Name(), B: other.Name()})
			}
		}
	}
	return pairs
}

// collisionCandidates returns the physical entities that survived stage 1.
func (a *Animation) collisionCandidates() []entity.View {
	out := make([]entity.View, 0, a.physicalCount)
	for _, e := range a.entities {
		if e.Physical() && !e.Dying() {
			out = append(out, e)
		}
	}
	return out
}

// resolveCollisions runs both collision handlers of every pair. Handlers
// may only mark entities for death, so removal waits for cleanup.
func (a *Animation) resolveCollisions(pairs []Pair) error {
	for _, p := range pairs {
		first, ok1 := a.entities[p.A]
		second, ok2 := a.entities[p.B]

		switch {
		case ok1 && ok2:
			if err := a.collide(first, second); err != nil {
				return err
			}
			if err := a.collide(second, first); err != nil {
				return err
			}
		case ok1 || ok2:
			// One side is gone already; nothing to tell the survivor.
			continue
		default:
			a.logger.Error("collision consistency fault", "a", p.A, "b", p.B)
			return fmt.Errorf("%w: %q and %q", ErrCollisionConsistency, p.A, p.B)
		}
	}
	return nil
}

func (a *Animation) collide(e, other *entity.Entity) error {
	h := e.CollisionHandler()
	if h == nil {
		return nil
	}
	return guard(PhaseCollision, e.Name(), func() {
		h.Collide(e, a, other)
	})
}
