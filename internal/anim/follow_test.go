package anim

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-animate/internal/core"
	"github.com/vovakirdan/tui-animate/internal/entity"
)

// mover returns a behavior that shifts x by dx every frame.
func mover(dx int) entity.Behavior {
	return entity.BehaviorFunc(func(e *entity.Entity, w entity.World) entity.Result {
		return entity.Result{X: entity.Int(e.Pos().X + dx)}
	})
}

func TestFollowerSingleAxis(t *testing.T) {
	a := New(testConfig())
	mustAdd(t, a, entity.Config{Name: "leader", Pos: core.Point{X: 5, Y: 5}})
	f := mustAdd(t, a, entity.Config{
		Name:   "follower",
		Pos:    core.Point{X: 0, Y: 11, Z: 2},
		Leader: "leader",
		Offset: entity.Offset{X: entity.Int(2)},
	})

	mustAnimate(t, a)

	if f.Pos().X != 7 {
		t.Errorf("Follower x = %d, expected 7", f.Pos().X)
	}
	if f.Pos().Y != 11 || f.Pos().Z != 2 {
		t.Errorf("Unfollowed axes changed: y=%d z=%d", f.Pos().Y, f.Pos().Z)
	}
}

func TestFollowerWithoutAxes(t *testing.T) {
	a := New(testConfig())
	mustAdd(t, a, entity.Config{Name: "leader", Pos: core.Point{X: 5, Y: 5}, Behavior: mover(1)})
	f := mustAdd(t, a, entity.Config{Name: "idler", Pos: core.Point{X: 1, Y: 1}, Leader: "leader"})

	report := mustAnimate(t, a)

	if f.Pos() != (core.Point{X: 1, Y: 1}) {
		t.Errorf("Follower without axes moved to %+v", f.Pos())
	}
	if len(report.Errors) != 0 {
		t.Errorf("Errors = %v, expected none", report.Errors)
	}
}

func TestFollowerUsesLeaderFinalPosition(t *testing.T) {
	a := New(testConfig())
	mustAdd(t, a, entity.Config{Name: "z-leader", Pos: core.Point{X: 5}, Behavior: mover(3)})
	f := mustAdd(t, a, entity.Config{
		Name:   "a-follower",
		Leader: "z-leader",
		Offset: entity.Offset{X: entity.Int(-1), Y: entity.Int(4), Z: entity.Int(1)},
	})

	mustAnimate(t, a)

	want := core.Point{X: 7, Y: 4, Z: 1}
	if f.Pos() != want {
		t.Errorf("Follower Pos() = %+v, expected %+v", f.Pos(), want)
	}
}

func TestFollowChainResolvesInOrder(t *testing.T) {
	a := New(testConfig())
	// The tail sorts first by name, so naive name order would read a stale middle.
	tail := mustAdd(t, a, entity.Config{Name: "a-tail", Leader: "b-middle", Offset: entity.Offset{X: entity.Int(1)}})
	middle := mustAdd(t, a, entity.Config{Name: "b-middle", Leader: "c-head", Offset: entity.Offset{X: entity.Int(1)}})
	mustAdd(t, a, entity.Config{Name: "c-head", Pos: core.Point{X: 10}, Behavior: mover(5)})

	mustAnimate(t, a)

	if middle.Pos().X != 16 {
		t.Errorf("Middle x = %d, expected 16", middle.Pos().X)
	}
	if tail.Pos().X != 17 {
		t.Errorf("Tail x = %d, expected 17", tail.Pos().X)
	}
}

func TestFollowerWraps(t *testing.T) {
	a := New(testConfig())
	mustAdd(t, a, entity.Config{Name: "leader", Pos: core.Point{X: 78}})
	f := mustAdd(t, a, entity.Config{
		Name:   "follower",
		Wrap:   true,
		Leader: "leader",
		Offset: entity.Offset{X: entity.Int(4)},
	})

	mustAnimate(t, a)

	if f.Pos().X != 2 {
		t.Errorf("Wrapped follower x = %d, expected 2", f.Pos().X)
	}
}

func TestFollowerMissingLeader(t *testing.T) {
	a := New(testConfig())
	f := mustAdd(t, a, entity.Config{
		Name:   "follower",
		Pos:    core.Point{X: 3, Y: 4},
		Leader: "nobody",
		Offset: entity.Offset{X: entity.Int(1)},
	})

	report := mustAnimate(t, a)

	if f.Pos() != (core.Point{X: 3, Y: 4}) {
		t.Errorf("Follower without leader moved to %+v", f.Pos())
	}
	if len(report.Errors) != 0 {
		t.Errorf("Missing leader should not be an error, got %v", report.Errors)
	}
}

func TestFollowerLeaderDiesThisFrame(t *testing.T) {
	a := New(testConfig())
	mustAdd(t, a, entity.Config{Name: "leader", Pos: core.Point{X: 40}, DieAfterFrames: 1})
	f := mustAdd(t, a, entity.Config{
		Name:   "follower",
		Leader: "leader",
		Offset: entity.Offset{X: entity.Int(1)},
	})

	mustAnimate(t, a)

	if f.Pos().X != 0 {
		t.Errorf("Follower should not follow a removed leader, x=%d", f.Pos().X)
	}
}

func TestFollowerFrameOffset(t *testing.T) {
	a := New(testConfig())
	frames := []entity.Sprite{block(1, 1), block(1, 1), block(1, 1)}
	mustAdd(t, a, entity.Config{Name: "leader", Frames: frames, StartFrame: 1})
	f := mustAdd(t, a, entity.Config{
		Name:   "follower",
		Frames: frames,
		Leader: "leader",
		Offset: entity.Offset{Frame: entity.Int(1)},
	})
	g := mustAdd(t, a, entity.Config{
		Name:   "overflow",
		Frames: frames,
		Leader: "leader",
		Offset: entity.Offset{Frame: entity.Int(2)},
	})

	report := mustAnimate(t, a)

	if f.Frame() != 2 {
		t.Errorf("Follower frame = %d, expected 2", f.Frame())
	}
	if g.Frame() != 0 {
		t.Errorf("Rejected follower frame should stay 0, got %d", g.Frame())
	}
	if len(report.Errors) != 1 || !errors.Is(report.Errors[0], entity.ErrInvalidFrame) {
		t.Errorf("Errors = %v, expected one ErrInvalidFrame", report.Errors)
	}
}

func TestFollowCycle(t *testing.T) {
	a := New(testConfig())
	one := mustAdd(t, a, entity.Config{Name: "one", Pos: core.Point{X: 1}, Leader: "two", Offset: entity.Offset{X: entity.Int(1)}})
	two := mustAdd(t, a, entity.Config{Name: "two", Pos: core.Point{X: 2}, Leader: "one", Offset: entity.Offset{X: entity.Int(1)}})
	tail := mustAdd(t, a, entity.Config{Name: "tail", Leader: "one", Offset: entity.Offset{X: entity.Int(10)}})

	report := mustAnimate(t, a)

	if one.Pos().X != 1 || two.Pos().X != 2 {
		t.Errorf("Cycle members moved: one=%d two=%d", one.Pos().X, two.Pos().X)
	}
	if tail.Pos().X != 11 {
		t.Errorf("Entity following into a cycle x = %d, expected 11", tail.Pos().X)
	}
	cycles := 0
	for _, err := range report.Errors {
		if errors.Is(err, ErrFollowCycle) {
			cycles++
		}
	}
	if cycles != 2 {
		t.Errorf("Reported %d follow cycles, expected 2", cycles)
	}
}
