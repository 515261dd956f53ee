package behavior

import (
	"fmt"

	"github.com/vovakirdan/tui-animate/internal/entity"
)

// KillSelf is a collision handler that removes its own entity.
var KillSelf = entity.CollisionFunc(func(e *entity.Entity, w entity.World, other entity.View) {
	e.Kill()
})

// KillOther is a collision handler that removes whatever it touched.
var KillOther = entity.CollisionFunc(func(e *entity.Entity, w entity.World, other entity.View) {
	w.Kill(other.Name())
})

// Counter counts collisions. One counter may be shared between entities.
type Counter struct {
	Hits int
}

// Collide implements entity.CollisionHandler.
func (c *Counter) Collide(e *entity.Entity, w entity.World, other entity.View) {
	c.Hits++
}

// Collisions runs several collision handlers in order.
type Collisions []entity.CollisionHandler

// Collide implements entity.CollisionHandler.
func (cs Collisions) Collide(e *entity.Entity, w entity.World, other entity.View) {
	for _, h := range cs {
		h.Collide(e, w, other)
	}
}

// Factory builds a fresh entity, typically from a scene template.
// at is the position of the entity that triggered the spawn.
type Factory func(w entity.World, at entity.View) (*entity.Entity, error)

// Spawn is a death handler that inserts a new entity where the dead one was.
// Failures are counted in Failed and reported to the world.
type Spawn struct {
	New    Factory
	Failed int
}

// Died implements entity.DeathHandler.
func (s *Spawn) Died(e *entity.Entity, w entity.World) {
	if !spawn(s.New, e, w) {
		s.Failed++
	}
}

// Emitter is a behavior that spawns an entity every Every frames. It
// proposes no change for its own entity.
type Emitter struct {
	New    Factory
	Every  int
	Failed int
}

// Update implements entity.Behavior.
func (em *Emitter) Update(e *entity.Entity, w entity.World) entity.Result {
	if em.Every <= 0 || w.Frame()%uint64(em.Every) != 0 {
		return entity.Result{}
	}
	if !spawn(em.New, e, w) {
		em.Failed++
	}
	return entity.Result{}
}

// spawn builds a child at e and inserts it. World.Spawn reports its own
// failures; factory errors are reported here.
func spawn(f Factory, e *entity.Entity, w entity.World) bool {
	child, err := f(w, e)
	if err != nil {
		w.Report(fmt.Errorf("spawn from %q: %w", e.Name(), err))
		return false
	}
	return w.Spawn(child) == nil
}
