package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/star-shooter/internal/core"
	"github.com/vovakirdan/star-shooter/internal/registry"
)

// MenuItem represents a selectable theme in the menu.
type MenuItem struct {
	ThemeID string
	Title   string
}

// MenuModel is the Bubble Tea model for the theme picker.
type MenuModel struct {
	items     []MenuItem
	cursor    int
	width     int
	height    int
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	renderer  *lipgloss.Renderer
	quitting  bool
	selected  *MenuItem // Set when user selects a theme
}

// NewMenuModel creates a new menu model with the cursor on current.
// A nil renderer uses the process default.
func NewMenuModel(cfg core.RuntimeConfig, current string, r *lipgloss.Renderer) MenuModel {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}

	themes := registry.List()
	items := make([]MenuItem, 0, len(themes))
	cursor := 0
	for i, th := range themes {
		if th.ID == current {
			cursor = i
		}
		items = append(items, MenuItem{
			ThemeID: th.ID,
			Title:   th.Title,
		})
	}

	return MenuModel{
		items:     items,
		cursor:    cursor,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(),
		renderer:  r,
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit // Exit menu to start game
		}
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	titleStyle := m.renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("#32aaff"))
	cursorStyle := m.renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("#00f0fa"))
	dimStyle := m.renderer.NewStyle().Foreground(lipgloss.Color("#8a8a8a"))

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(m.center(titleStyle.Render("  S T A R   S H O O T E R  ")))
	b.WriteString("\n\n")
	b.WriteString(m.center("Select a theme"))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := fmt.Sprintf("  %s", item.Title)
		if i == m.cursor {
			line = cursorStyle.Render(fmt.Sprintf("> %s", item.Title))
		}
		b.WriteString(m.center(line))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.center(dimStyle.Render("Up/Down: Navigate  |  Enter: Select  |  Q: Quit")))
	b.WriteString("\n")

	return b.String()
}

// center centers a possibly styled line within the menu width.
func (m MenuModel) center(s string) string {
	if m.width <= 0 {
		return s
	}
	return m.renderer.PlaceHorizontal(m.width, lipgloss.Center, s)
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	ThemeID string
	Config  core.RuntimeConfig
	Quit    bool
}

// RunMenu runs the theme picker and returns the selection result.
func RunMenu(cfg core.RuntimeConfig, current string) (MenuResult, error) {
	model := NewMenuModel(cfg, current, nil)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{
		Config: m.Config(),
	}

	if m.IsQuitting() || m.Selected() == nil {
		result.Quit = true
		return result, nil
	}

	result.ThemeID = m.Selected().ThemeID
	return result, nil
}
