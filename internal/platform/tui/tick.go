// Package tui provides the Bubble Tea host for the shooter.
// It handles the terminal frame loop, input mapping, and theme selection.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a simulation frame.
// Model and Gen identify the game model and frame-loop generation that
// scheduled it; frames from a discarded model or a superseded generation
// are dropped.
type TickMsg struct {
	Model uint64
	Gen   uint64
	Time  time.Time
}

// tickCmd returns a Bubble Tea command that sends one tick after interval.
func tickCmd(interval time.Duration, model, gen uint64) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Model: model, Gen: gen, Time: t}
	})
}
