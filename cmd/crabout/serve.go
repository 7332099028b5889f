package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/crabout/internal/games/breakout"
	"github.com/vovakirdan/crabout/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Crabout SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own game. With --seed every session
gets the same layout; otherwise each one is seeded from the clock.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.crabout/host_key

Examples:
  crabout serve                           # Listen on :23234 with auto-generated key
  crabout serve --ssh :2222               # Listen on port 2222
  crabout serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // Best-effort close on exit

	// Fail before listening if the config is unusable
	cfg, err := loadGameConfig()
	if err != nil {
		return err
	}

	factory := func(seed int64) (tui.Game, error) {
		game, err := breakout.New(cfg, seed)
		if err != nil {
			return nil, err
		}
		return game, nil
	}

	srvCfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		TickRate:    flagFPS,
		Seed:        flagSeed,
	}

	server, err := tui.NewSSHServer(srvCfg, factory, logger)
	if err != nil {
		return err
	}

	fmt.Printf("Starting Crabout SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe()
}
