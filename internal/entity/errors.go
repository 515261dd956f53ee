package entity

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidFrame is returned when a frame index is outside the sprite sequence.
	ErrInvalidFrame = errors.New("entity: invalid frame")

	// ErrEmptyName is returned when an entity is built without a name.
	ErrEmptyName = errors.New("entity: empty name")

	// ErrNoFrames is returned when an entity is built without any sprite frame.
	ErrNoFrames = errors.New("entity: no frames")

	// ErrNegativeExtent is returned for a negative depth.
	ErrNegativeExtent = errors.New("entity: negative extent")

	// ErrNegativeLifetime is returned for a negative DieAfterFrames.
	ErrNegativeLifetime = errors.New("entity: negative lifetime")
)

// FrameError reports a rejected SetFrame call. It matches ErrInvalidFrame
// with errors.Is.
type FrameError struct {
	Entity string
	Frame  int
	Count  int
}

func (e *FrameError) Error() string {
	return fmt.Sprintf("entity: invalid frame %d for %q (has %d frames)", e.Frame, e.Entity, e.Count)
}

// Is lets errors.Is match the ErrInvalidFrame sentinel.
func (e *FrameError) Is(target error) bool {
	return target == ErrInvalidFrame
}
