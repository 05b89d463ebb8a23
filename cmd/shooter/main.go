// shooter is an arcade space shooter for the terminal, SSH and the desktop.
//
// Usage:
//
//	shooter play [theme]     - Play in the terminal
//	shooter menu             - Pick a theme interactively, then play
//	shooter window [theme]   - Play in a desktop window
//	shooter serve            - Start SSH server for remote play
//	shooter themes           - List available themes
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--theme <id>          - Default theme
//	--config <path>       - Path to a config YAML
//	--log-level <level>   - debug, info, warn, error
//	--log-file <path>     - Append logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/star-shooter/internal/config"
	"github.com/vovakirdan/star-shooter/internal/registry"
	"github.com/vovakirdan/star-shooter/internal/theme"

	// Import themes to register them
	_ "github.com/vovakirdan/star-shooter/internal/theme/space"
	_ "github.com/vovakirdan/star-shooter/internal/theme/tropical"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagTheme    string
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

// settings is the loaded config with flag overrides applied.
var settings = config.Default()

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "shooter",
	Short: "Star Shooter - an arcade shooter for your terminal",
	Long: `Star Shooter is an arcade space shooter. Slide your craft along the
bottom of the field and shoot down the enemies swaying in from above.

Available commands:
  play     - Play in the terminal
  menu     - Interactive theme picker
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  themes   - Show all available themes

Examples:
  shooter play
  shooter play tropical --fps 30
  shooter menu
  shooter window --theme space
  shooter serve --ssh :2222`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadSettings,
}

func init() {
	// Global persistent flags
	flags := rootCmd.PersistentFlags()
	flags.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	flags.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	flags.StringVar(&flagTheme, "theme", "space", "Default theme")
	flags.StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	flags.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	flags.StringVar(&flagLogFile, "log-file", "", "Append logs to this file")

	// Add subcommands
	rootCmd.AddCommand(themesCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadSettings loads the config file and applies the flags the user set.
func loadSettings(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("fps") {
		cfg.TickRate = flagFPS
	}
	if flags.Changed("seed") {
		cfg.Seed = flagSeed
	}
	if flags.Changed("theme") {
		cfg.Theme = flagTheme
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = flagLogLevel
	}
	if flags.Changed("log-file") {
		cfg.Log.File = flagLogFile
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	settings = cfg
	return nil
}

// newLogger builds the process logger. Logs go to the configured file when
// set, otherwise to console; a nil console discards them.
func newLogger(console io.Writer) (*log.Logger, func() error, error) {
	w := console
	closeFn := func() error { return nil }

	if settings.Log.File != "" {
		f, err := os.OpenFile(settings.Log.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600) //#nosec G304
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closeFn = f.Close
	}
	if w == nil {
		w = io.Discard
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Level:           settings.LogLevel(),
		Prefix:          "shooter",
	})
	return logger, closeFn, nil
}

// resolveTheme creates the theme named by args, or the configured default.
func resolveTheme(args []string) (theme.Theme, error) {
	id := settings.Theme
	if len(args) > 0 {
		id = args[0]
	}
	th, err := registry.Create(id)
	if err != nil {
		return nil, fmt.Errorf("%w (run 'shooter themes' to see available themes)", err)
	}
	return th, nil
}
