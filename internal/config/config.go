// Package config loads player settings from YAML: frame rate, background,
// logging and the display backend.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-animate/internal/core"
)

// Display backends understood by the player.
const (
	BackendBubbleTea = "bubbletea"
	BackendTcell     = "tcell"
)

// MaxFPS caps the requested frame rate.
const MaxFPS = 240

// ErrInvalidSettings is wrapped by every validation failure.
var ErrInvalidSettings = errors.New("config: invalid settings")

// Settings contains the player configuration.
type Settings struct {
	FPS            int    `yaml:"fps"`
	TrackFramerate bool   `yaml:"track_framerate"`
	Background     string `yaml:"background"` // Color name, see core.ParseColor
	Seed           int64  `yaml:"seed"`       // 0 means seed from the clock
	LogLevel       string `yaml:"log_level"`
	LogFile        string `yaml:"log_file"` // Empty discards logs in interactive mode
	Backend        string `yaml:"backend"`
	SceneDir       string `yaml:"scene_dir"` // Extra *.yaml scenes to register
}

// Validate checks value ranges and names.
func (s Settings) Validate() error {
	if s.FPS < 1 || s.FPS > MaxFPS {
		return fmt.Errorf("%w: fps %d out of range 1..%d", ErrInvalidSettings, s.FPS, MaxFPS)
	}
	if _, ok := core.ParseColor(s.Background); !ok {
		return fmt.Errorf("%w: unknown background color %q", ErrInvalidSettings, s.Background)
	}
	if _, err := log.ParseLevel(s.LogLevel); err != nil {
		return fmt.Errorf("%w: log level %q: %v", ErrInvalidSettings, s.LogLevel, err)
	}
	switch strings.ToLower(s.Backend) {
	case BackendBubbleTea, BackendTcell:
	default:
		return fmt.Errorf("%w: unknown backend %q", ErrInvalidSettings, s.Backend)
	}
	return nil
}

// BackgroundColor returns the parsed background, or the default color for
// an unknown name.
func (s Settings) BackgroundColor() core.Color {
	c, _ := core.ParseColor(s.Background)
	return c
}

// Level returns the parsed log level, or info for an unknown name.
func (s Settings) Level() log.Level {
	lvl, err := log.ParseLevel(s.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}

// Runtime builds the scheduler configuration for a canvas of the given size.
func (s Settings) Runtime(width, height int, assumed bool) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		Assumed:  assumed,
		TickRate: s.FPS,
		Seed:     s.Seed,
	}
}
