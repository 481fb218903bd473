package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pipes/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the pipes SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own session with the level picker.
Solves are stored per-server under the SSH user name, so all users share
the same scoreboard.

Host key handling:
  - If --host-key (or server.host_key) is set, uses that key file
  - Otherwise, auto-generates a key at ~/.tui-pipes/host_key

Examples:
  pipes serve                           # Listen on :23234 with auto-generated key
  pipes serve --ssh :2222               # Listen on port 2222
  pipes serve --host-key ./my_host_key  # Use specific host key
  pipes serve --db ./solves.db          # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout in minutes before disconnecting")
}

func runServe(cmd *cobra.Command, _ []string) {
	cfg := loadSettings(cmd)
	flags := cmd.Flags()
	if flags.Changed("ssh") {
		cfg.Server.Address = flagSSHAddr
	}
	if flags.Changed("host-key") {
		cfg.Server.HostKeyPath = flagHostKey
	}
	if flags.Changed("idle-timeout") {
		cfg.Server.IdleTimeoutMinutes = flagIdleTimeout
	}

	game := runtimeConfig(cfg)
	srvCfg := tui.SSHServerConfig{
		Address:     cfg.Server.Address,
		HostKeyPath: cfg.Server.HostKeyPath,
		DBPath:      cfg.Storage.DBPath,
		IdleTimeout: cfg.Server.IdleTimeout(),
		Game:        game,
		Logger:      logger.WithPrefix("pipes-ssh"),
	}
	if srvCfg.IdleTimeout <= 0 {
		srvCfg.IdleTimeout = 30 * time.Minute
	}

	server, err := tui.NewSSHServer(srvCfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting pipes SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
