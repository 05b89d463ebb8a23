package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/star-shooter/internal/core"
	"github.com/vovakirdan/star-shooter/internal/shooter"
)

// KeyMap holds the in-game key bindings. It implements help.KeyMap.
type KeyMap struct {
	Left    key.Binding
	Right   key.Binding
	Fire    key.Binding
	Start   key.Binding
	Restart key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// DefaultKeyMap returns the standard bindings: arrows plus a/d and h/l to
// move, space or z to fire.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "right"),
		),
		Fire: key.NewBinding(
			key.WithKeys(" ", "z"),
			key.WithHelp("space/z", "shoot"),
		),
		Start: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "start"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "themes"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns the bindings shown in the one-line footer. Start and
// restart are left out; the chrome line shows them as buttons.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Fire, k.Back, k.Quit}
}

// FullHelp returns the bindings grouped by purpose.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Fire},
		{k.Start, k.Restart},
		{k.Back, k.Quit},
	}
}

// KeyMapper translates Bubble Tea key messages to engine key codes and
// host actions. This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys KeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{keys: DefaultKeyMap()}
}

// Keys returns the bindings, for the help footer.
func (km *KeyMapper) Keys() KeyMap {
	return km.keys
}

// MapKey translates a key message.
// Returns the engine key code the press holds (may be empty) and the host
// action (may be ActionNone).
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (code shooter.Key, action core.Action) {
	switch {
	case key.Matches(msg, km.keys.Quit):
		return "", core.ActionQuit
	case key.Matches(msg, km.keys.Left):
		return shooter.KeyArrowLeft, core.ActionNone
	case key.Matches(msg, km.keys.Right):
		return shooter.KeyArrowRight, core.ActionNone
	case key.Matches(msg, km.keys.Fire):
		if msg.String() == "z" {
			return shooter.KeyZ, core.ActionNone
		}
		return shooter.KeySpace, core.ActionNone
	case key.Matches(msg, km.keys.Start):
		return "", core.ActionConfirm
	case key.Matches(msg, km.keys.Restart):
		return "", core.ActionRestart
	case key.Matches(msg, km.keys.Back):
		return "", core.ActionBack
	}
	return "", core.ActionNone
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	}

	return MenuActionNone
}
