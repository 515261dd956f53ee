// Package scene loads animations described in YAML: sprite frames, start
// positions, death conditions, follow links and stock behaviors. Built-in
// scenes are embedded and registered with the scene registry.
package scene

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-animate/internal/behavior"
	"github.com/vovakirdan/tui-animate/internal/core"
)

// ErrInvalidScene is wrapped by every validation failure.
var ErrInvalidScene = errors.New("scene: invalid scene")

// Scene is a parsed scene file. It implements registry.Scene.
type Scene struct {
	file    File
	data    []byte
	source  string
	counter behavior.Counter
}

// Parse decodes and validates a YAML scene.
func Parse(data []byte) (*Scene, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if f.Title == "" {
		f.Title = f.ID
	}
	for key, tmpl := range f.Templates {
		if tmpl.Name == "" {
			tmpl.Name = key
			f.Templates[key] = tmpl
		}
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &Scene{file: f, data: data}, nil
}

// LoadFile parses a scene file from disk.
func LoadFile(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing file %s: %w", path, err)
	}
	s.source = path
	return s, nil
}

// LoadDir loads every .yaml/.yml file below root, sorted by ID.
// Files that fail to parse are returned in the joined error and skipped.
func LoadDir(root string) ([]*Scene, error) {
	var scenes []*Scene
	var errs []error

	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isSceneFile(path) {
			return nil
		}
		s, err := LoadFile(path)
		if err != nil {
			errs = append(errs, err)
			return nil
		}
		scenes = append(scenes, s)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", root, err)
	}

	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].ID() < scenes[j].ID()
	})
	return scenes, errors.Join(errs...)
}

func isSceneFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// ID implements registry.Scene.
func (s *Scene) ID() string { return s.file.ID }

// Title implements registry.Scene.
func (s *Scene) Title() string { return s.file.Title }

// Description implements registry.Scene.
func (s *Scene) Description() string { return s.file.Description }

// Source returns the file the scene was loaded from, empty for built-ins.
func (s *Scene) Source() string { return s.source }

// Hits returns the collisions counted by "count" handlers since the last
// Populate.
func (s *Scene) Hits() int { return s.counter.Hits }

// Validate checks the whole file and reports every problem found.
func (f File) Validate() error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidScene}, args...)...))
	}

	if f.ID == "" {
		fail("missing id")
	}
	if f.Background != "" {
		if _, ok := core.ParseColor(f.Background); !ok {
			fail("unknown background color %q", f.Background)
		}
	}
	if len(f.Entities) == 0 {
		fail("scene %q has no entities", f.ID)
	}

	names := make(map[string]bool)
	for i, spec := range f.Entities {
		label := spec.Name
		if label == "" {
			label = fmt.Sprintf("entities[%d]", i)
		}
		for _, msg := range f.checkEntity(spec) {
			fail("%s: %s", label, msg)
		}
		for _, name := range spec.names() {
			if names[name] {
				fail("duplicate entity name %q", name)
			}
			names[name] = true
		}
	}

	keys := make([]string, 0, len(f.Templates))
	for key := range f.Templates {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		for _, msg := range f.checkEntity(f.Templates[key]) {
			fail("template %s: %s", key, msg)
		}
	}
	return errors.Join(errs...)
}

// checkEntity returns the problems with one entity or template.
func (f File) checkEntity(spec EntitySpec) []string {
	var msgs []string
	if spec.Name == "" {
		msgs = append(msgs, "missing name")
	}
	if spec.Count < 0 {
		msgs = append(msgs, fmt.Sprintf("negative count %d", spec.Count))
	}
	if len(spec.Frames) == 0 {
		msgs = append(msgs, "no frames")
	}
	if spec.StartFrame < 0 || (len(spec.Frames) > 0 && spec.StartFrame >= len(spec.Frames)) {
		msgs = append(msgs, fmt.Sprintf("start_frame %d out of range", spec.StartFrame))
	}
	if spec.Depth < 0 {
		msgs = append(msgs, fmt.Sprintf("negative depth %d", spec.Depth))
	}
	if spec.Color != "" {
		if _, ok := core.ParseColor(spec.Color); !ok {
			msgs = append(msgs, fmt.Sprintf("unknown color %q", spec.Color))
		}
	}
	if utf8.RuneCountInString(spec.Transparent) > 1 {
		msgs = append(msgs, fmt.Sprintf("transparent must be a single character, got %q", spec.Transparent))
	}
	if spec.DieAfterFrames < 0 || spec.DieAfter < 0 {
		msgs = append(msgs, "negative lifetime")
	}
	if spec.Follow != nil && spec.Follow.Leader == "" {
		msgs = append(msgs, "follow without leader")
	}
	for i, b := range spec.Behaviors {
		if n := b.count(); n != 1 {
			msgs = append(msgs, fmt.Sprintf("behaviors[%d] sets %d behaviors, expected exactly 1", i, n))
		}
		if b.Emit != nil {
			if _, ok := f.Templates[b.Emit.Template]; !ok {
				msgs = append(msgs, fmt.Sprintf("emit: unknown template %q", b.Emit.Template))
			}
			if b.Emit.Every < 1 {
				msgs = append(msgs, "emit: every must be at least 1")
			}
		}
	}
	for _, h := range spec.OnCollide {
		switch h {
		case CollideKillSelf, CollideKillOther, CollideCount:
		default:
			msgs = append(msgs, fmt.Sprintf("unknown collision handler %q", h))
		}
	}
	if spec.OnDeath != nil {
		if _, ok := f.Templates[spec.OnDeath.Spawn]; !ok {
			msgs = append(msgs, fmt.Sprintf("on_death: unknown template %q", spec.OnDeath.Spawn))
		}
	}
	return msgs
}

// names returns the entity names a spec expands to.
func (spec EntitySpec) names() []string {
	if spec.Count <= 1 {
		return []string{spec.Name}
	}
	names := make([]string, spec.Count)
	for i := range names {
		names[i] = fmt.Sprintf("%s-%d", spec.Name, i+1)
	}
	return names
}

func (b BehaviorSpec) count() int {
	n := 0
	for _, set := range []bool{b.Move != nil, b.Cycle != nil, b.Bounce != nil, b.Steer != nil, b.Emit != nil} {
		if set {
			n++
		}
	}
	return n
}

// File returns the parsed scene file.
func (s *Scene) File() File { return s.file }

// EntityCount returns how many entities Populate adds.
func (s *Scene) EntityCount() int {
	n := 0
	for _, spec := range s.file.Entities {
		n += len(spec.names())
	}
	return n
}
