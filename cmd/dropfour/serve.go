package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"dropfour/internal/config"
	"dropfour/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the dropfour SSH server",
	Long: `Start an SSH server that lets users connect and play over SSH.

Each connection gets its own fresh game session. Both players share the
one terminal, same as local hot-seat play. Round results are stored
per-server.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.dropfour/host_key

Examples:
  dropfour serve                           # Listen on :23234 with auto-generated key
  dropfour serve --ssh :2222               # Listen on port 2222
  dropfour serve --host-key ./my_host_key  # Use specific host key
  dropfour serve --db ./rounds.db          # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	conf, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.DBPath = roundsDBPath(conf)
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	cfg.FrameDelay = frameDelay(conf)
	cfg.Theme = tui.Theme{Red: conf.Theme.Red, Yellow: conf.Theme.Yellow}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting dropfour SSH server on %s\n", cfg.Address)
	fmt.Println("Connect with: ssh localhost -p 23234")
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
