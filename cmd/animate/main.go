// animate plays terminal animations described as YAML scenes.
//
// Usage:
//
//	animate list                    - List available scenes
//	animate play <scene|file.yaml>  - Play a scene
//	animate menu                    - Pick scenes interactively
//	animate snapshot <scene>        - Print a frame without a terminal UI
//	animate validate <file.yaml>... - Check scene files
//
// Global flags:
//
//	--fps <rate>        - Frames per second (default from settings: 30)
//	--seed <value>      - RNG seed for reproducible scenes
//	--config <path>     - Settings file (default: ~/.animate/config.yaml)
//	--log-file <path>   - Write logs to a file
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-animate/internal/config"
	"github.com/vovakirdan/tui-animate/internal/scene"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogFile  string
	flagLogLevel string

	// settings is loaded before every command and overridden by flags.
	settings config.Settings
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "animate",
	Short: "Terminal animations from YAML scenes",
	Long: `animate runs entity animations in your terminal: sprites that move,
collide, follow each other and die on schedule.

Available commands:
  list      - Show all available scenes
  play      - Play a scene by ID or from a YAML file
  menu      - Interactive scene picker
  snapshot  - Render a frame as text, no terminal UI needed
  validate  - Check scene files for errors

Examples:
  animate list
  animate play aquarium
  animate play ./my-scene.yaml --backend tcell
  animate snapshot fireworks --frames 20
  animate validate ./scenes/*.yaml`,
	SilenceUsage:      true,
	PersistentPreRunE: loadSettings,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Frames per second (0 = from settings)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = from settings, then time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to settings YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(snapshotCmd)
	rootCmd.AddCommand(validateCmd)
}

// loadSettings reads the settings file, applies flag overrides and
// registers scenes from the configured scene directory.
func loadSettings(cmd *cobra.Command, _ []string) error {
	s, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("fps") {
		s.FPS = flagFPS
	}
	if flags.Changed("seed") {
		s.Seed = flagSeed
	}
	if flags.Changed("log-file") {
		s.LogFile = flagLogFile
	}
	if flags.Changed("log-level") {
		s.LogLevel = flagLogLevel
	}
	if err := s.Validate(); err != nil {
		return err
	}
	settings = s

	if s.SceneDir != "" {
		if _, err := scene.RegisterDir(s.SceneDir); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v\n", err)
		}
	}
	return nil
}
