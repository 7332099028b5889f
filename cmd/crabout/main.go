// crabout is a brick breaker for the terminal, a native window or SSH.
//
// Usage:
//
//	crabout play     - Play in the terminal
//	crabout window   - Play in a native window
//	crabout serve    - Start SSH server for remote play
//	crabout config   - Print the effective gameplay config
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible layouts
//	--config <path>       - Custom gameplay config YAML
//	--difficulty <name>   - Difficulty preset: easy, normal, hard
//	--log-level <level>   - debug, info, warn, error
//	--log-file <path>     - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/crabout/internal/config"
	"github.com/vovakirdan/crabout/internal/core"
	"github.com/vovakirdan/crabout/internal/games/breakout"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "crabout",
	Short: "Crabout - break every brick before you run out of balls",
	Long: `Crabout is a brick breaker. Slide the paddle, keep the ball in play
and clear a randomly generated wall of bricks.

Available commands:
  play     - Play in the terminal
  window   - Play in a native window
  serve    - Start SSH server for remote play
  config   - Print the effective gameplay config

Examples:
  crabout play
  crabout play --difficulty hard --seed 42
  crabout window --config ./my-crabout.yaml
  crabout serve --ssh :2222`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", core.BaseTickRate, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom gameplay config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the process logger. Logs go to --log-file when set and to
// fallback otherwise. The returned close func is never nil.
func newLogger(fallback io.Writer) (*log.Logger, func() error, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	out := fallback
	closeFn := func() error { return nil }
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out = f
		closeFn = f.Close
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "crabout",
		Level:           level,
	})
	return logger, closeFn, nil
}

// loadGameConfig loads the gameplay config selected by --config and
// --difficulty.
func loadGameConfig() (config.Config, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.Config{}, err
	}
	return config.LoadWithPreset(flagConfig, preset)
}

// runtimeConfig builds the session parameters from the global flags.
func runtimeConfig(width, height int) core.RuntimeConfig {
	rc := core.DefaultConfig()
	if width > 0 && height > 0 {
		rc.ScreenW = width
		rc.ScreenH = height
	}
	if flagFPS > 0 {
		rc.TickRate = flagFPS
	}
	rc.Seed = flagSeed
	if rc.Seed == 0 {
		rc.Seed = time.Now().UnixNano()
	}
	return rc
}

// newGame loads the config and creates a game seeded from rc.
func newGame(rc core.RuntimeConfig, logger *log.Logger) (*breakout.Game, error) {
	cfg, err := loadGameConfig()
	if err != nil {
		return nil, err
	}
	game, err := breakout.New(cfg, rc.Seed)
	if err != nil {
		return nil, err
	}
	logger.Info("game created",
		"seed", rc.Seed,
		"difficulty", flagDifficulty,
		"lives", cfg.Gameplay.Lives,
	)
	return game, nil
}
