package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/star-shooter/internal/platform/tui"
	"github.com/vovakirdan/star-shooter/internal/registry"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the shooter SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own session with a theme picker and its own
game; sessions share nothing.

Host key handling:
  - If --host-key (or server.host_key) is set, uses that key file
  - Otherwise, auto-generates a key at ~/.arcade/host_key

Examples:
  shooter serve                           # Listen on server.address
  shooter serve --ssh :2222               # Listen on port 2222
  shooter serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 2222`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (host:port), overrides server.address")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file, overrides server.host_key")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout in minutes, overrides server.idle_timeout_minutes")
}

func runServe(cmd *cobra.Command, _ []string) error {
	if !registry.Exists(settings.Theme) {
		return fmt.Errorf("unknown theme %q (run 'shooter themes' to see available themes)", settings.Theme)
	}

	cfg := tui.SSHServerConfig{
		Address:      settings.Server.Address,
		HostKeyPath:  settings.Server.HostKey,
		IdleTimeout:  settings.IdleTimeout(),
		TickRate:     settings.TickRate,
		KeyHoldTicks: settings.Terminal.KeyHoldTicks,
		Theme:        settings.Theme,
	}
	flags := cmd.Flags()
	if flags.Changed("ssh") {
		cfg.Address = flagSSHAddr
	}
	if flags.Changed("host-key") {
		cfg.HostKeyPath = flagHostKey
	}
	if flags.Changed("idle-timeout") {
		cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	}

	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck

	server, err := tui.NewSSHServer(cfg, logger)
	if err != nil {
		return err
	}

	fmt.Printf("Starting shooter SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe()
}
