package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/star-shooter/internal/core"
	"github.com/vovakirdan/star-shooter/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play [theme]",
	Short: "Play in the terminal",
	Long: `Start the shooter in the terminal with the given theme.

Controls:
  Left/Right, A/D   - Move
  Space/Z           - Shoot
  Enter             - Start
  R                 - Restart (after game over)
  Q/Esc/Ctrl+C      - Quit

Terminals only report key presses, so a press keeps its key held for
terminal.key_hold_ticks frames; key repeat keeps it held.

Examples:
  shooter play
  shooter play tropical
  shooter play --seed 42 --fps 30`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	th, err := resolveTheme(args)
	if err != nil {
		return err
	}

	// Logs would draw over the game, so they only go to a file
	logger, closeLog, err := newLogger(nil)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck

	return tui.Run(terminalConfig(), tui.GameOptions{
		Theme:        th,
		KeyHoldTicks: settings.Terminal.KeyHoldTicks,
		Logger:       logger,
	})
}

// terminalConfig returns the runtime config for the controlling terminal.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: settings.TickRate,
		Seed:     settings.Seed,
	}
}
