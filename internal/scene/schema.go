package scene

import "time"

// File is the YAML structure of a scene file.
type File struct {
	ID          string                `yaml:"id"`
	Title       string                `yaml:"title"`
	Description string                `yaml:"description,omitempty"`
	Background  string                `yaml:"background,omitempty"`
	Templates   map[string]EntitySpec `yaml:"templates,omitempty"`
	Entities    []EntitySpec          `yaml:"entities"`
}

// EntitySpec describes one entity, or Count copies of it.
type EntitySpec struct {
	Name        string      `yaml:"name"`
	Count       int         `yaml:"count,omitempty"` // Copies named name-1..name-N
	Frames      []FrameSpec `yaml:"frames"`
	StartFrame  int         `yaml:"start_frame,omitempty"`
	Color       string      `yaml:"color,omitempty"`
	Transparent string      `yaml:"transparent,omitempty"`
	Position    PosSpec     `yaml:"position,omitempty"`
	Depth       int         `yaml:"depth,omitempty"`
	Physical    bool        `yaml:"physical,omitempty"`
	Wrap        bool        `yaml:"wrap,omitempty"`

	DieOffscreen   bool          `yaml:"die_offscreen,omitempty"`
	DieAfterFrames int           `yaml:"die_after_frames,omitempty"`
	DieAfter       time.Duration `yaml:"die_after,omitempty"`
	DieWith        string        `yaml:"die_with,omitempty"`

	Follow    *FollowSpec    `yaml:"follow,omitempty"`
	Behaviors []BehaviorSpec `yaml:"behaviors,omitempty"`
	OnCollide []string       `yaml:"on_collide,omitempty"`
	OnDeath   *DeathSpec     `yaml:"on_death,omitempty"`
}

// FrameSpec is one sprite frame: art plus an optional color mask.
type FrameSpec struct {
	Art  string `yaml:"art"`
	Mask string `yaml:"mask,omitempty"`
}

// PosSpec is a start position. FromRight and FromBottom measure X and Y
// back from the far canvas edge. RandomX and RandomY pick a coordinate
// inside the canvas from the animation's seeded source.
type PosSpec struct {
	X          int  `yaml:"x"`
	Y          int  `yaml:"y"`
	Z          int  `yaml:"z"`
	FromRight  bool `yaml:"from_right,omitempty"`
	FromBottom bool `yaml:"from_bottom,omitempty"`
	RandomX    bool `yaml:"random_x,omitempty"`
	RandomY    bool `yaml:"random_y,omitempty"`
}

// FollowSpec attaches the entity to a leader. Axes left out are not followed.
type FollowSpec struct {
	Leader string `yaml:"leader"`
	X      *int   `yaml:"x,omitempty"`
	Y      *int   `yaml:"y,omitempty"`
	Z      *int   `yaml:"z,omitempty"`
	Frame  *int   `yaml:"frame,omitempty"`
}

// BehaviorSpec selects exactly one stock behavior.
type BehaviorSpec struct {
	Move   *MoveSpec   `yaml:"move,omitempty"`
	Cycle  *CycleSpec  `yaml:"cycle,omitempty"`
	Bounce *BounceSpec `yaml:"bounce,omitempty"`
	Steer  *SteerSpec  `yaml:"steer,omitempty"`
	Emit   *EmitSpec   `yaml:"emit,omitempty"`
}

type MoveSpec struct {
	DX    int `yaml:"dx"`
	DY    int `yaml:"dy"`
	DZ    int `yaml:"dz"`
	Every int `yaml:"every"`
}

type CycleSpec struct {
	Every int `yaml:"every"`
}

type BounceSpec struct {
	DX    int `yaml:"dx"`
	DY    int `yaml:"dy"`
	Every int `yaml:"every"`
}

type SteerSpec struct {
	Speed int `yaml:"speed"`
}

// EmitSpec spawns a template every Every frames, placed relative to the
// emitting entity by the template's position.
type EmitSpec struct {
	Template string `yaml:"template"`
	Every    int    `yaml:"every"`
}

// DeathSpec spawns a template where the entity died.
type DeathSpec struct {
	Spawn string `yaml:"spawn"`
}

// Collision handler names accepted in on_collide.
const (
	CollideKillSelf  = "kill_self"
	CollideKillOther = "kill_other"
	CollideCount     = "count"
)
