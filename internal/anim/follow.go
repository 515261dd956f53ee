package anim

import (
	"fmt"
	"sort"

	"github.com/vovakirdan/tui-animate/internal/entity"
)

// follower is an entity with a live leader and its distance from the root
// of its follow chain.
type follower struct {
	e     *entity.Entity
	depth int
}

// followOrder returns followers sorted so every leader is moved before the
// entities that follow it (by chain depth, then name). Entities whose chain
// loops back to themselves are returned separately.
func (a *Animation) followOrder() (ordered []follower, cyclic []string) {
	for _, name := range a.sortedNames() {
		e := a.entities[name]
		if _, ok := e.Leader(); !ok {
			continue
		}
		depth, loops := a.followDepth(name)
		if loops {
			cyclic = append(cyclic, name)
			continue
		}
		if depth == 0 {
			// Leader is gone: nothing to follow this frame.
			continue
		}
		ordered = append(ordered, follower{e: e, depth: depth})
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].depth < ordered[j].depth
	})
	return ordered, cyclic
}

// followDepth walks the leader chain from name. depth counts live leaders;
// loops is true when the chain comes back to name.
func (a *Animation) followDepth(name string) (depth int, loops bool) {
	seen := map[string]bool{name: true}
	cur := a.entities[name]
	for {
		leader, ok := cur.Leader()
		if !ok {
			return depth, false
		}
		next, live := a.entities[leader]
		if !live {
			return depth, false
		}
		if leader == name {
			return depth, true
		}
		if seen[leader] {
			// Chain enters a loop further up; stop counting there.
			return depth, false
		}
		seen[leader] = true
		depth++
		cur = next
	}
}

// moveFollowers copies each followed axis from the leader's final position.
func (a *Animation) moveFollowers(report *Report) {
	ordered, cyclic := a.followOrder()

	for _, name := range cyclic {
		err := fmt.Errorf("%w: %q", ErrFollowCycle, name)
		report.Errors = append(report.Errors, err)
		a.logger.Debug("follower skipped", "name", name, "error", err)
	}

	for _, f := range ordered {
		off := f.e.Offset()
		if off.Empty() {
			continue
		}
		leaderName, _ := f.e.Leader()
		leader := a.entities[leaderName]
		lp := leader.Pos()

		if off.X != nil {
			f.e.SetX(lp.X+*off.X, a.width)
		}
		if off.Y != nil {
			f.e.SetY(lp.Y+*off.Y, a.height)
		}
		if off.Z != nil {
			f.e.SetZ(lp.Z + *off.Z)
		}
		if off.Frame != nil {
			if err := f.e.SetFrame(leader.Frame() + *off.Frame); err != nil {
				report.Errors = append(report.Errors, err)
				a.logger.Warn("follower frame rejected", "name", f.e.Name(), "error", err)
			}
		}
	}
}
