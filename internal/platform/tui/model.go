package tui

import (
	"io"
	"strings"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/star-shooter/internal/core"
	"github.com/vovakirdan/star-shooter/internal/shooter"
	"github.com/vovakirdan/star-shooter/internal/theme"
)

// footerLines is the number of rows below the playfield.
const footerLines = 2

// DefaultKeyHoldTicks is used when GameOptions.KeyHoldTicks is not set.
const DefaultKeyHoldTicks = 8

// modelSeq hands out model ids so ticks addressed to a discarded model are
// never mistaken for ticks of its replacement.
var modelSeq atomic.Uint64

// GameOptions holds the per-program settings of a game model.
type GameOptions struct {
	Theme        theme.Theme
	KeyHoldTicks int                // Ticks a key press counts as held
	Logger       *log.Logger        // nil discards
	Renderer     *lipgloss.Renderer // nil uses the process default
	AllowBack    bool               // Esc returns to the theme picker instead of quitting
}

// GameModel is the Bubble Tea model running one shooter engine.
//
// Terminals report key presses but not releases, so a press latches its key
// as held for a number of ticks. Auto-repeat keeps refreshing the latch while
// the key stays down; once presses stop the key is released.
type GameModel struct {
	id         uint64
	engine     *shooter.Engine
	theme      theme.Theme
	screen     *core.Screen
	surface    *TermSurface
	painter    *Painter
	keyMapper  *KeyMapper
	help       help.Model
	held       map[shooter.Key]int // Ticks left before a latched key is released
	holdTicks  int
	config     core.RuntimeConfig
	logger     *log.Logger
	allowBack  bool
	quitting   bool
	backToMenu bool
}

// NewGameModel creates a game model. The engine starts in the menu state.
func NewGameModel(cfg core.RuntimeConfig, opts GameOptions) GameModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	holdTicks := opts.KeyHoldTicks
	if holdTicks <= 0 {
		holdTicks = DefaultKeyHoldTicks
	}

	engine := shooter.New(
		shooter.WithSeed(cfg.Seed),
		shooter.WithVariants(opts.Theme.Variants()...),
		shooter.WithLogger(logger),
	)

	screen := core.NewScreen(max(cfg.ScreenW, 1), max(cfg.ScreenH-footerLines, 1))
	h := help.New()
	h.Width = cfg.ScreenW

	return GameModel{
		id:        modelSeq.Add(1),
		engine:    engine,
		theme:     opts.Theme,
		screen:    screen,
		surface:   NewTermSurface(screen, shooter.FieldWidth, shooter.FieldHeight),
		painter:   NewPainter(opts.Renderer),
		keyMapper: NewKeyMapper(),
		help:      h,
		held:      make(map[shooter.Key]int),
		holdTicks: holdTicks,
		config:    cfg,
		logger:    logger,
		allowBack: opts.AllowBack,
	}
}

// Init does nothing; the frame loop starts with the session.
func (m GameModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	code, action := m.keyMapper.MapKey(msg)

	switch action {
	case core.ActionQuit:
		m.quitting = true
		m.engine.Loop().Stop()
		return m, tea.Quit

	case core.ActionBack:
		m.engine.Loop().Stop()
		if m.allowBack {
			m.backToMenu = true
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit

	case core.ActionConfirm:
		if m.engine.State() != shooter.StatePlaying {
			m.engine.OnStart()
			return m, m.startLoop()
		}
		return m, nil

	case core.ActionRestart:
		if m.engine.State() == shooter.StateGameOver {
			m.engine.OnRestart()
			return m, m.startLoop()
		}
		return m, nil
	}

	if code != "" {
		m.press(code)
	}
	return m, nil
}

// startLoop schedules the first frame of the engine's current generation.
func (m GameModel) startLoop() tea.Cmd {
	m.logger.Info("game started", "theme", m.theme.ID())
	return tickCmd(m.interval(), m.id, m.engine.Loop().Generation())
}

// press latches code as held. Pressing a direction releases the opposite one
// so a quick reversal does not stall the craft until the old latch expires.
func (m GameModel) press(code shooter.Key) {
	switch code {
	case shooter.KeyArrowLeft:
		m.release(shooter.KeyArrowRight)
	case shooter.KeyArrowRight:
		m.release(shooter.KeyArrowLeft)
	}
	m.held[code] = m.holdTicks
	m.engine.OnKeyDown(string(code))
}

func (m GameModel) release(code shooter.Key) {
	if _, ok := m.held[code]; !ok {
		return
	}
	delete(m.held, code)
	m.engine.OnKeyUp(string(code))
}

// expireHeld counts latches down and releases the ones that ran out.
func (m GameModel) expireHeld() {
	for code, left := range m.held {
		if left <= 1 {
			m.release(code)
			continue
		}
		m.held[code] = left - 1
	}
}

// handleResize keeps the session; the engine works in field units.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(max(msg.Width, 1), max(msg.Height-footerLines, 1))
	m.surface.Fit()
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one frame and schedules the next while the loop is live.
func (m GameModel) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if msg.Model != m.id || !m.engine.Loop().Current(msg.Gen) {
		return m, nil
	}

	m.engine.Frame()
	m.expireHeld()

	if !m.engine.Loop().Current(msg.Gen) {
		for code := range m.held {
			m.release(code)
		}
		return m, nil
	}
	return m, tickCmd(m.interval(), m.id, msg.Gen)
}

func (m GameModel) interval() time.Duration {
	return time.Second / time.Duration(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.engine.Render(m.surface, m.theme)
	return m.painter.RenderScreen(m.screen) + "\n" + m.footer()
}

// footer renders the chrome line and the key help line.
func (m GameModel) footer() string {
	r := m.painter.Renderer()
	pal := m.theme.Palette()
	titleStyle := r.NewStyle().Bold(true).Foreground(lipgloss.Color(toCellColor(pal.Title).Hex()))
	buttonStyle := r.NewStyle().Bold(true).Foreground(lipgloss.Color(toCellColor(pal.Accent).Hex()))
	dangerStyle := r.NewStyle().Bold(true).Foreground(lipgloss.Color(toCellColor(pal.Danger).Hex()))

	keys := m.keyMapper.Keys()
	elements := shooter.Chrome(m.engine.State(), m.engine.Score(), m.theme.Title())
	parts := make([]string, 0, len(elements))
	for _, el := range elements {
		switch {
		case el.IsButton():
			binding := keys.Start
			if el.Kind == shooter.ElementRestartButton {
				binding = keys.Restart
			}
			parts = append(parts, buttonStyle.Render("["+binding.Help().Key+"] "+el.Text))
		case el.Kind == shooter.ElementTitle:
			parts = append(parts, titleStyle.Render(el.Text))
		case el.Kind == shooter.ElementGameOverText:
			parts = append(parts, dangerStyle.Render(el.Text))
		default:
			parts = append(parts, el.Text)
		}
	}
	chrome := strings.Join(parts, "   ")

	width := max(m.config.ScreenW, 1)
	return r.PlaceHorizontal(width, lipgloss.Center, chrome) + "\n" +
		r.PlaceHorizontal(width, lipgloss.Center, m.help.View(m.keyMapper.Keys()))
}

// Engine returns the engine driven by this model.
func (m GameModel) Engine() *shooter.Engine {
	return m.engine
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to the theme picker.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run starts a Bubble Tea program playing opts.Theme until the user quits.
func Run(cfg core.RuntimeConfig, opts GameOptions) error {
	model := NewGameModel(cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
