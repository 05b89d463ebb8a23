package main

import (
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/star-shooter/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a theme interactively, then play",
	Long: `Start the shooter with a theme picker.

Use arrow keys or j/k to navigate, Enter to select a theme.
Esc in a game returns to the picker.

Controls:
  Up/Down/j/k  - Navigate
  Enter/Space  - Select theme
  Q            - Quit

Examples:
  shooter menu
  shooter menu --fps 30`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(nil)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck

	opts := tui.GameOptions{
		KeyHoldTicks: settings.Terminal.KeyHoldTicks,
		Logger:       logger,
	}
	return tui.RunSession(terminalConfig(), opts, uuid.NewString(), settings.Theme)
}
