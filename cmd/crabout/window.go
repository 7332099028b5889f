package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/crabout/internal/platform/window"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a native window",
	Long: `Start Crabout in a native window sized to the playfield.

Controls:
  Left/A, Right/D  - Slide the paddle (hold)
  Space            - Pause, or restart after game over
  P/Esc            - Pause
  R                - Restart (after game over or win)
  Q                - Quit

Examples:
  crabout window
  crabout window --fps 120`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func runWindow(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // Best-effort close on exit

	rc := runtimeConfig(0, 0)
	game, err := newGame(rc, logger)
	if err != nil {
		return err
	}

	return window.Run(game, rc, logger)
}
