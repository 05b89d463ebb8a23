package core

// Action represents a host-level intent, abstracted from physical key presses.
// Movement and firing go through the engine's held-keys snapshot instead.
type Action int

const (
	ActionNone    Action = iota
	ActionConfirm        // Enter - start a session from the menu
	ActionRestart        // R - restart after game over
	ActionBack           // Esc - leave to the theme picker
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionConfirm:
		return "Confirm"
	case ActionRestart:
		return "Restart"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
