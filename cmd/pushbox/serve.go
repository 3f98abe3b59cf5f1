package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pushbox/internal/games/pushbox/core"
	"github.com/vovakirdan/tui-pushbox/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start SSH server for remote play",
	Long: `Start an SSH server that lets users play Pushbox remotely.

Each SSH connection gets its own puzzle; nothing is shared between sessions.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.pushbox/host_key

Examples:
  pushbox serve                           # Listen on the configured address
  pushbox serve --ssh :2222               # Listen on port 2222
  pushbox serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23235`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (host:port), overrides server.address")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file, overrides server.host_key_path")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", -1, "Idle timeout in minutes, overrides server.idle_timeout_minutes")
}

func runServe(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	if flagSSHAddr != "" {
		cfg.Server.Address = flagSSHAddr
	}
	if flagHostKey != "" {
		cfg.Server.HostKeyPath = flagHostKey
	}
	if flagIdleTimeout >= 0 {
		cfg.Server.IdleTimeoutMinutes = flagIdleTimeout
	}

	logger := newLogger(os.Stderr, cfg, "pushbox-ssh")

	server, err := tui.NewSSHServer(cfg, core.DefaultLayout, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting pushbox SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
