package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/andrewsmnv/polyarena/internal/platform/tui"
)

var (
	flagListenAddr  string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the arena over SSH",
	Long: `Run a wish SSH server so players can join from any terminal.

Every connection gets its own session: start screen, game, shared
leaderboard. Scores from all players land in the database given by
the global --db flag.

The host key is read from --host-key, or generated at
~/.polyarena/host_key on first start.

Examples:
  polyarena serve
  polyarena serve --listen :2222
  polyarena serve --db /srv/polyarena/scores.db

Players connect with:
  ssh <host> -p 23234`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagListenAddr, "listen", ":23234", "Address to listen on (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Host key file (generated if empty)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes")
}

func runServe(_ *cobra.Command, _ []string) {
	cfg := tui.DefaultSSHServerConfig()
	cfg.ListenAddr = flagListenAddr
	cfg.HostKeyPath = flagHostKey
	cfg.DBPath = flagDBPath
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "serve: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("polyarena over ssh at %s (Ctrl+C stops the server)\n", server.Addr())

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "serve: %v\n", err)
		os.Exit(1)
	}
}
