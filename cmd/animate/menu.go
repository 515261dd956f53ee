package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-animate/internal/platform/tui"
	"github.com/vovakirdan/tui-animate/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick scenes from a menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to play a scene.
Quitting a scene returns to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Play scene
  Q/Esc        - Quit

Examples:
  animate menu
  animate menu --fps 60`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(cmd *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(true)
	if err != nil {
		return err
	}
	defer closeLog()

	width, height, assumed := tui.CanvasSize()
	cfg := settings.Runtime(width, height, assumed)

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(cfg)
		if err != nil {
			return err
		}

		// Update config with any size changes
		cfg = menuResult.Config
		if menuResult.Quit {
			return nil
		}

		sc, err := registry.Create(menuResult.SceneID)
		if err != nil {
			return err
		}
		if err := tui.Run(sc, cfg, tui.Options{Settings: settings, Logger: logger}); err != nil {
			return err
		}
	}
}
