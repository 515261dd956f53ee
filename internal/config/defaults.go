package config

import (
	_ "embed"
)

//go:embed defaults/animate.yaml
var defaultSettingsYAML []byte

// DefaultSettings returns the built-in settings used when no file is found.
func DefaultSettings() Settings {
	return Settings{
		FPS:            30,
		TrackFramerate: true,
		Background:     "default",
		Seed:           0,
		LogLevel:       "info",
		Backend:        BackendBubbleTea,
	}
}
