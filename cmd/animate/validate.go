package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-animate/internal/scene"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file.yaml>...",
	Short: "Check scene files",
	Long: `Parse and validate scene files, reporting every problem found.

Examples:
  animate validate ./scenes/reef.yaml
  animate validate ./scenes/*.yaml`,
	Args: cobra.MinimumNArgs(1),
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	failed := 0

	for _, path := range args {
		s, err := scene.LoadFile(path)
		if err != nil {
			failed++
			fmt.Fprintf(out, "FAIL %s\n", path)
			for _, e := range splitJoined(err) {
				fmt.Fprintf(out, "  %v\n", e)
			}
			continue
		}
		fmt.Fprintf(out, "ok   %s (%s: %d entities, %d templates)\n",
			path, s.ID(), s.EntityCount(), len(s.File().Templates))
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d scene files are invalid", failed, len(args))
	}
	return nil
}

// splitJoined unpacks errors.Join results, one line per problem.
func splitJoined(err error) []error {
	var joined interface{ Unwrap() []error }
	if errors.As(err, &joined) {
		var all []error
		for _, e := range joined.Unwrap() {
			all = append(all, splitJoined(e)...)
		}
		return all
	}
	return []error{err}
}
