package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-animate/internal/registry"
	"github.com/vovakirdan/tui-animate/internal/scene"
)

// newLogger builds the command logger. Interactive players own the
// terminal, so without a log file their logs are discarded; headless
// commands log to stderr. The returned close function is never nil.
func newLogger(interactive bool) (*log.Logger, func() error, error) {
	var w io.Writer = os.Stderr
	closeFn := func() error { return nil }

	switch {
	case settings.LogFile != "":
		f, err := os.OpenFile(settings.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return nil, closeFn, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closeFn = f.Close
	case interactive:
		w = io.Discard
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "animate",
		Level:           settings.Level(),
	})
	return logger, closeFn, nil
}

// resolveScene returns a registered scene, or loads arg as a scene file
// when it names one.
func resolveScene(arg string) (registry.Scene, error) {
	ext := strings.ToLower(filepath.Ext(arg))
	if ext == ".yaml" || ext == ".yml" {
		return scene.LoadFile(arg)
	}
	if !registry.Exists(arg) {
		return nil, fmt.Errorf("unknown scene %q, run 'animate list' to see available scenes", arg)
	}
	return registry.Create(arg)
}
