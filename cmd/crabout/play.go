package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/crabout/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start Crabout in the current terminal.

Controls:
  Left/A, Right/D  - Slide the paddle
  Space            - Pause, or restart after game over
  P/Esc            - Pause
  R                - Restart (after game over or win)
  Ctrl+S           - Save a text screenshot
  Q/Ctrl+C         - Quit

Logs are discarded unless --log-file is set, so they do not
corrupt the game screen.

Examples:
  crabout play
  crabout play --difficulty easy
  crabout play --log-file crabout.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // Best-effort close on exit

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rc := runtimeConfig(width, height)
	game, err := newGame(rc, logger)
	if err != nil {
		return err
	}

	return tui.Run(game, rc, logger)
}
