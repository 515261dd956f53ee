package anim

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateEntity is returned when an entity name is already live.
	ErrDuplicateEntity = errors.New("anim: duplicate entity")

	// ErrNilEntity is returned when Add is called with nil.
	ErrNilEntity = errors.New("anim: nil entity")

	// ErrCollisionConsistency means both members of a detected collision
	// vanished before resolution. The scheduler state is corrupt.
	ErrCollisionConsistency = errors.New("anim: collision failed, entities not found")

	// ErrFollowCycle is reported for followers whose leader chain loops
	// back to themselves. Their position is left untouched.
	ErrFollowCycle = errors.New("anim: follow cycle")
)

// Phase names the pipeline stage a callback ran in.
type Phase int

const (
	PhaseBehavior Phase = iota
	PhaseCollision
	PhaseDeath
	PhaseRender
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseBehavior:
		return "behavior"
	case PhaseCollision:
		return "collision"
	case PhaseDeath:
		return "death"
	case PhaseRender:
		return "render"
	default:
		return "unknown"
	}
}

// CallbackError reports a callback that panicked. It aborts the frame.
type CallbackError struct {
	Phase  Phase
	Entity string
	Value  any
}

func (e *CallbackError) Error() string {
	if e.Entity == "" {
		return fmt.Sprintf("anim: %s callback panicked: %v", e.Phase, e.Value)
	}
	return fmt.Sprintf("anim: %s callback of %q panicked: %v", e.Phase, e.Entity, e.Value)
}

// Unwrap exposes a panic value that was itself an error.
func (e *CallbackError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// guard runs fn and converts a panic into a *CallbackError.
func guard(phase Phase, name string, fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &CallbackError{Phase: phase, Entity: name, Value: r}
		}
	}()
	fn()
	return nil
}
