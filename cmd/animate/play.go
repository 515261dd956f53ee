package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-animate/internal/config"
	"github.com/vovakirdan/tui-animate/internal/platform/tcellview"
	"github.com/vovakirdan/tui-animate/internal/platform/tui"
)

var (
	flagBackend string
	flagFrames  uint64
	flagProfile string
)

var playCmd = &cobra.Command{
	Use:   "play <scene|file.yaml>",
	Short: "Play a scene",
	Long: `Play a registered scene or a scene file.

Controls:
  Arrows/WASD  - Steer (scenes with a steer behavior)
  P/Esc        - Pause
  N            - Step one frame while paused
  I/Tab        - Inspect entities (bubbletea backend)
  R            - Restart the scene
  ?            - Toggle help
  Q/Ctrl+C     - Quit

Examples:
  animate play aquarium
  animate play convoy --fps 15 --seed 7
  animate play ./my-scene.yaml --backend tcell
  animate play fireworks --frames 300 --profile cpu`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagBackend, "backend", "", "Display backend: bubbletea or tcell (default from settings)")
	playCmd.Flags().Uint64Var(&flagFrames, "frames", 0, "Stop after this many frames (0 = until quit)")
	playCmd.Flags().StringVar(&flagProfile, "profile", "", "Write a cpu or mem profile to the current directory")
}

func runPlay(cmd *cobra.Command, args []string) error {
	sc, err := resolveScene(args[0])
	if err != nil {
		return err
	}

	backend := strings.ToLower(settings.Backend)
	if flagBackend != "" {
		backend = strings.ToLower(flagBackend)
	}

	switch flagProfile {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.Quiet).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.Quiet).Stop()
	default:
		return fmt.Errorf("unknown profile %q, expected cpu or mem", flagProfile)
	}

	logger, closeLog, err := newLogger(true)
	if err != nil {
		return err
	}
	defer closeLog()

	switch backend {
	case config.BackendTcell:
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		return tcellview.Play(ctx, sc, tcellview.Options{
			Settings:  settings,
			Logger:    logger,
			MaxFrames: flagFrames,
		})

	case config.BackendBubbleTea:
		width, height, assumed := tui.CanvasSize()
		return tui.Run(sc, settings.Runtime(width, height, assumed), tui.Options{
			Settings:  settings,
			Logger:    logger,
			MaxFrames: flagFrames,
		})
	}
	return fmt.Errorf("unknown backend %q", backend)
}
