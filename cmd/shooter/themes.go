package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/star-shooter/internal/registry"
)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List all available themes",
	Long:  `Shows a list of all themes the shooter can be played with.`,
	Run:   runThemes,
}

func runThemes(cmd *cobra.Command, _ []string) {
	themes := registry.List()
	out := cmd.OutOrStdout()

	if len(themes) == 0 {
		fmt.Fprintln(out, "No themes available.")
		return
	}

	fmt.Fprintln(out, "Available themes:")
	fmt.Fprintln(out)

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, th := range themes {
		maxIDLen = max(maxIDLen, len(th.ID))
	}

	fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, th := range themes {
		marker := ""
		if th.ID == settings.Theme {
			marker = " (default)"
		}
		fmt.Fprintf(out, "  %-*s  %s%s\n", maxIDLen, th.ID, th.Title, marker)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'shooter play <id>' to play with a theme.")
}
