package anim

import (
	"errors"
	"sort"
	"time"

	"github.com/vovakirdan/tui-animate/internal/entity"
)

// maxCleanupPasses bounds death cascades within one frame. Entities still
// marked after the last pass are removed on the next frame.
const maxCleanupPasses = 16

// Report describes what happened during one Animate call.
type Report struct {
	Frame      uint64
	Removed    []string
	Collisions []Pair
	// Errors holds non-fatal entity errors (rejected frames, follow cycles).
	Errors []error
}

// Err joins the non-fatal errors, or returns nil if there were none.
func (r Report) Err() error {
	return errors.Join(r.Errors...)
}

// Animate advances every entity by exactly one frame.
//
// The stages run in a fixed order: behaviors, collision resolution, death
// cleanup, follower propagation, render dispatch, frame-rate accounting.
// A non-nil error is fatal for the frame (a panicking callback or a
// corrupted collision set); the remaining stages are skipped.
func (a *Animation) Animate() (Report, error) {
	a.frame++
	clear(a.reasons)
	report := Report{Frame: a.frame}
	a.report = &report
	defer func() { a.report = nil }()

	if err := a.runBehaviors(&report); err != nil {
		a.logger.Error("frame aborted", "frame", a.frame, "error", err)
		return report, err
	}

	if a.physicalCount > 0 {
		report.Collisions = FindCollisions(a.collisionCandidates())
		if err := a.resolveCollisions(report.Collisions); err != nil {
			return report, err
		}
	}

	if err := a.cleanup(&report); err != nil {
		a.logger.Error("frame aborted", "frame", a.frame, "error", err)
		return report, err
	}

	a.moveFollowers(&report)

	if a.render != nil {
		snap := Snapshot{
			Frame:      a.frame,
			Width:      a.width,
			Height:     a.height,
			Background: a.bg,
			Entities:   a.Entities(),
		}
		if err := guard(PhaseRender, "", func() { a.render.Render(snap) }); err != nil {
			a.logger.Error("frame aborted", "frame", a.frame, "error", err)
			return report, err
		}
	}

	if a.trackFramerate {
		a.countFrame()
	}

	for _, err := range report.Errors {
		a.logger.Warn("entity error", "frame", a.frame, "error", err)
	}
	return report, nil
}

// runBehaviors evaluates death conditions and then runs the behavior of
// every surviving entity, in name order.
func (a *Animation) runBehaviors(report *Report) error {
	names := a.sortedNames()
	now := a.clock.Now()

	for _, name := range names {
		e := a.entities[name]
		switch {
		case e.Dying():
			a.markDead(e, "killed")
		case e.Countdown():
			a.markDead(e, "countdown")
		case e.Expired(now):
			a.markDead(e, "expired")
		case e.Offscreen(a.width, a.height):
			a.markDead(e, "offscreen")
		}
	}
	a.propagateDeaths()

	// Kills made by behaviors take effect at cleanup, so the set of
	// behaviors that run is fixed before the first one does.
	alive := make([]*entity.Entity, 0, len(names))
	for _, name := range names {
		if e := a.entities[name]; !e.Dying() {
			alive = append(alive, e)
		}
	}

	for _, e := range alive {
		name := e.Name()
		b := e.Behavior()
		if b == nil {
			continue
		}

		var res entity.Result
		if err := guard(PhaseBehavior, name, func() { res = b.Update(e, a) }); err != nil {
			return err
		}
		if err := e.Apply(res, a.width, a.height); err != nil {
			report.Errors = append(report.Errors, err)
		}
	}
	return nil
}

// propagateDeaths marks every entity whose DieWith target is absent or
// dying, repeating until nothing changes so chains resolve regardless of
// name order.
func (a *Animation) propagateDeaths() {
	for changed := true; changed; {
		changed = false
		for _, e := range a.entities {
			if e.Dying() {
				continue
			}
			target, ok := e.DieWith()
			if !ok {
				continue
			}
			t, live := a.entities[target]
			if !live || t.Dying() {
				a.markDead(e, "die-with "+target)
				changed = true
			}
		}
	}
}

// cleanup removes every dying entity and runs its death handler after the
// removal. Deaths requested by those handlers are handled in the same frame.
func (a *Animation) cleanup(report *Report) error {
	for pass := 0; pass < maxCleanupPasses; pass++ {
		a.propagateDeaths()

		var dead []string
		for name, e := range a.entities {
			if e.Dying() {
				dead = append(dead, name)
			}
		}
		if len(dead) == 0 {
			return nil
		}
		sort.Strings(dead)

		for _, name := range dead {
			e, ok := a.remove(name)
			if !ok {
				continue
			}
			report.Removed = append(report.Removed, name)
			a.logger.Debug("entity removed", "name", name, "reason", a.reasons[name], "frame", a.frame)

			h := e.DeathHandler()
			if h == nil {
				continue
			}
			if err := guard(PhaseDeath, name, func() { h.Died(e, a) }); err != nil {
				return err
			}
		}
	}
	a.logger.Warn("death cascade did not settle", "frame", a.frame, "passes", maxCleanupPasses)
	return nil
}

// countFrame updates the frames-per-second counters.
func (a *Animation) countFrame() {
	a.framesThisSecond++
	now := a.clock.Now()
	if now.Sub(a.secondStart) >= time.Second {
		a.framerate = a.framesThisSecond
		a.framesThisSecond = 0
		a.secondStart = now
	}
}
