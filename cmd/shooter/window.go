package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/star-shooter/internal/platform/window"
)

var flagScale float64

var windowCmd = &cobra.Command{
	Use:   "window [theme]",
	Short: "Play in a desktop window",
	Long: `Open the shooter in a desktop window.

Controls:
  Left/Right   - Move
  Space/Z      - Shoot
  Enter        - Start
  R            - Restart (after game over)
  Esc/Q        - Quit

Examples:
  shooter window
  shooter window tropical --scale 1.5`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().Float64Var(&flagScale, "scale", 1, "Window size relative to the 480x640 field")
}

func runWindow(cmd *cobra.Command, args []string) error {
	th, err := resolveTheme(args)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("scale") {
		settings.Window.Scale = flagScale
		if err := settings.Validate(); err != nil {
			return err
		}
	}

	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck

	return window.Run(window.Options{
		Theme:    th,
		Title:    settings.Window.Title,
		Scale:    settings.Window.Scale,
		TickRate: settings.TickRate,
		Seed:     settings.Seed,
		Logger:   logger,
	})
}
