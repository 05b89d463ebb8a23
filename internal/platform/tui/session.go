package tui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/star-shooter/internal/core"
	"github.com/vovakirdan/star-shooter/internal/registry"
)

// SessionModel manages the full flow: theme picker -> game -> theme picker.
// This is the top-level model used for SSH sessions and the menu command.
type SessionModel struct {
	config    core.RuntimeConfig
	opts      GameOptions // Template for each game; Theme is filled on selection
	sessionID string
	logger    *log.Logger
	lastTheme string
	menu      MenuModel
	gameModel *GameModel
	inGame    bool
	quitting  bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(cfg core.RuntimeConfig, opts GameOptions, sessionID, defaultTheme string) SessionModel {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	logger = logger.With("session", sessionID)
	opts.Logger = logger
	opts.AllowBack = true

	return SessionModel{
		config:    cfg,
		opts:      opts,
		sessionID: sessionID,
		logger:    logger,
		lastTheme: defaultTheme,
		menu:      NewMenuModel(cfg, defaultTheme, opts.Renderer),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	if m.inGame && m.gameModel != nil {
		return m.updateGame(msg)
	}
	return m.updateMenu(msg)
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Stray ticks of a game we left are dropped here
	if _, ok := msg.(TickMsg); ok {
		return m, nil
	}

	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	selected := m.menu.Selected()
	if selected == nil {
		return m, cmd
	}

	// The menu's own tea.Quit on select is dropped; the game takes over
	th, err := registry.Create(selected.ThemeID)
	if err != nil {
		// Shouldn't happen since menu only shows registered themes
		m.logger.Error("cannot create theme", "theme", selected.ThemeID, "error", err)
		m.menu = NewMenuModel(m.config, m.lastTheme, m.opts.Renderer)
		return m, nil
	}

	m.lastTheme = selected.ThemeID
	m.config = m.menu.Config() // Get possibly updated config from resize

	opts := m.opts
	opts.Theme = th
	gameModel := NewGameModel(m.config, opts)
	m.gameModel = &gameModel
	m.inGame = true
	m.logger.Info("theme selected", "theme", th.ID())

	return m, m.gameModel.Init()
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.gameModel.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.gameModel = &gameModel
	}

	// Check if user quit game (back to menu)
	if m.gameModel.BackToMenu() {
		m.inGame = false
		m.gameModel = nil
		m.menu = NewMenuModel(m.config, m.lastTheme, m.opts.Renderer)
		return m, m.menu.Init()
	}

	// Check if user quit entirely
	if m.gameModel.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	if m.inGame && m.gameModel != nil {
		return m.gameModel.View()
	}

	return m.menu.View()
}

// InGame reports whether a game is running.
func (m SessionModel) InGame() bool {
	return m.inGame
}

// RunSession runs the theme picker and games in one program until the user quits.
func RunSession(cfg core.RuntimeConfig, opts GameOptions, sessionID, defaultTheme string) error {
	p := tea.NewProgram(
		NewSessionModel(cfg, opts, sessionID, defaultTheme),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
