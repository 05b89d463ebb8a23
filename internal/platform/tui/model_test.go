package tui

import (
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/star-shooter/internal/core"
	"github.com/vovakirdan/star-shooter/internal/shooter"
	"github.com/vovakirdan/star-shooter/internal/theme/space"
)

func newTestModel(t *testing.T, opts GameOptions) GameModel {
	t.Helper()
	if opts.Theme == nil {
		opts.Theme = space.New()
	}
	if opts.Renderer == nil {
		opts.Renderer = lipgloss.NewRenderer(io.Discard)
	}
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 26, TickRate: 60, Seed: 1}
	return NewGameModel(cfg, opts)
}

func update(t *testing.T, m GameModel, msg tea.Msg) (GameModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	gm, ok := next.(GameModel)
	if !ok {
		t.Fatalf("Update() returned %T, expected GameModel", next)
	}
	return gm, cmd
}

// startPlaying presses Enter and returns the model with its live generation.
func startPlaying(t *testing.T, m GameModel) (GameModel, uint64) {
	t.Helper()
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("Enter should schedule the first frame")
	}
	if m.Engine().State() != shooter.StatePlaying {
		t.Fatalf("state = %v, expected playing", m.Engine().State())
	}
	return m, m.Engine().Loop().Generation()
}

func tick(t *testing.T, m GameModel, gen uint64) (GameModel, tea.Cmd) {
	t.Helper()
	return update(t, m, TickMsg{Model: m.id, Gen: gen})
}

func TestGameModelStartsInMenu(t *testing.T) {
	m := newTestModel(t, GameOptions{})

	if m.Init() != nil {
		t.Error("Init() should not schedule frames before the session starts")
	}
	if m.Engine().State() != shooter.StateMenu {
		t.Errorf("state = %v, expected menu", m.Engine().State())
	}
	if m.Engine().Loop().Running() {
		t.Error("loop should not run in the menu")
	}
}

func TestGameModelTickAdvancesEngine(t *testing.T) {
	m, gen := startPlaying(t, newTestModel(t, GameOptions{}))

	m, cmd := tick(t, m, gen)
	if cmd == nil {
		t.Error("a live tick should schedule the next frame")
	}
	if got := m.Engine().Ticks(); got != 1 {
		t.Errorf("Ticks() = %d, expected 1", got)
	}
}

func TestGameModelDropsStaleTicks(t *testing.T) {
	m, gen := startPlaying(t, newTestModel(t, GameOptions{}))

	tests := []struct {
		name string
		msg  TickMsg
	}{
		{"old generation", TickMsg{Model: m.id, Gen: gen - 1}},
		{"future generation", TickMsg{Model: m.id, Gen: gen + 1}},
		{"other model", TickMsg{Model: m.id + 1000, Gen: gen}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, cmd := update(t, m, tt.msg)
			if cmd != nil {
				t.Error("stale tick should not schedule a frame")
			}
			if got := next.Engine().Ticks(); got != 0 {
				t.Errorf("Ticks() = %d, expected 0", got)
			}
		})
	}
}

func TestGameModelRestartSupersedesPendingTick(t *testing.T) {
	m, gen := startPlaying(t, newTestModel(t, GameOptions{}))
	m.Engine().SetLives(1)
	p := m.Engine().Player()
	m.Engine().PlaceEnemy(shooter.Enemy{X: p.X, Y: p.Y, R: 20})
	m, _ = tick(t, m, gen)

	m, cmd := update(t, m, runeKey('r'))
	if cmd == nil {
		t.Fatal("restart should schedule a frame")
	}

	// The tick of the finished session arrives late and is ignored.
	m, cmd = tick(t, m, gen)
	if cmd != nil {
		t.Error("tick of the previous session should be ignored")
	}
	if got := m.Engine().Ticks(); got != 0 {
		t.Errorf("Ticks() = %d, expected 0", got)
	}
}

func TestGameModelKeyLatchExpires(t *testing.T) {
	m, gen := startPlaying(t, newTestModel(t, GameOptions{KeyHoldTicks: 3}))

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if !m.Engine().Keys().Held(shooter.KeyArrowLeft) {
		t.Fatal("left should be held after the press")
	}

	for range 5 {
		m, _ = tick(t, m, gen)
	}

	// Three frames of movement, then the latch runs out.
	expected := float64(shooter.FieldWidth/2 - 3*shooter.PlayerSpeed)
	if got := m.Engine().Player().X; got != expected {
		t.Errorf("player X = %v, expected %v", got, expected)
	}
	if m.Engine().Keys().Held(shooter.KeyArrowLeft) {
		t.Error("left should be released after the latch expires")
	}
}

func TestGameModelRepeatRefreshesLatch(t *testing.T) {
	m, gen := startPlaying(t, newTestModel(t, GameOptions{KeyHoldTicks: 2}))

	for range 4 {
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
		m, _ = tick(t, m, gen)
	}

	if !m.Engine().Keys().Held(shooter.KeyArrowRight) {
		t.Error("auto-repeat should keep right held")
	}
	expected := float64(shooter.FieldWidth/2 + 4*shooter.PlayerSpeed)
	if got := m.Engine().Player().X; got != expected {
		t.Errorf("player X = %v, expected %v", got, expected)
	}
}

func TestGameModelReversalReleasesOpposite(t *testing.T) {
	m, _ := startPlaying(t, newTestModel(t, GameOptions{}))

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})

	keys := m.Engine().Keys()
	if keys.Held(shooter.KeyArrowLeft) {
		t.Error("pressing right should release left")
	}
	if !keys.Held(shooter.KeyArrowRight) {
		t.Error("right should be held")
	}
}

func TestGameModelFireKeys(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
		key  shooter.Key
	}{
		{"space", tea.KeyMsg{Type: tea.KeySpace}, shooter.KeySpace},
		{"z", runeKey('z'), shooter.KeyZ},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, gen := startPlaying(t, newTestModel(t, GameOptions{}))

			m, _ = update(t, m, tt.msg)
			m, _ = tick(t, m, gen)

			if !m.Engine().Keys().Held(tt.key) {
				t.Errorf("%s should be held", tt.key)
			}
			if n := len(m.Engine().Bullets()); n != 1 {
				t.Errorf("len(Bullets()) = %d, expected 1", n)
			}
		})
	}
}

func TestGameModelGameOverStopsFrames(t *testing.T) {
	m, gen := startPlaying(t, newTestModel(t, GameOptions{}))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})

	m.Engine().SetLives(1)
	p := m.Engine().Player()
	m.Engine().PlaceEnemy(shooter.Enemy{X: p.X - shooter.PlayerSpeed, Y: p.Y, R: 20})

	m, cmd := tick(t, m, gen)
	if cmd != nil {
		t.Error("no frame should be scheduled after game over")
	}
	if m.Engine().State() != shooter.StateGameOver {
		t.Fatalf("state = %v, expected gameover", m.Engine().State())
	}
	if m.Engine().Keys().Held(shooter.KeyArrowLeft) {
		t.Error("latched keys should be released when the loop stops")
	}

	// Enter also restarts from game over.
	m, cmd = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Error("Enter should start a new session from game over")
	}
	if got := m.Engine().Lives(); got != shooter.StartingLives {
		t.Errorf("Lives() = %d, expected %d", got, shooter.StartingLives)
	}
}

func TestGameModelControlsIgnoredWhilePlaying(t *testing.T) {
	m, gen := startPlaying(t, newTestModel(t, GameOptions{}))
	m, _ = tick(t, m, gen)

	for _, msg := range []tea.KeyMsg{{Type: tea.KeyEnter}, runeKey('r')} {
		var cmd tea.Cmd
		m, cmd = update(t, m, msg)
		if cmd != nil {
			t.Errorf("%q during play should not schedule frames", msg.String())
		}
	}
	for _, k := range []shooter.Key{shooter.KeyArrowLeft, shooter.KeyArrowRight, shooter.KeySpace, shooter.KeyZ} {
		if m.Engine().Keys().Held(k) {
			t.Errorf("%s should not be held after Enter or R", k)
		}
	}
	if got := m.Engine().Loop().Generation(); got != gen {
		t.Errorf("Generation() = %d, expected %d", got, gen)
	}
	if got := m.Engine().Ticks(); got != 1 {
		t.Errorf("Ticks() = %d, expected 1", got)
	}
}

func TestGameModelQuitAndBack(t *testing.T) {
	tests := []struct {
		name         string
		allowBack    bool
		msg          tea.KeyMsg
		expectQuit   bool
		expectToMenu bool
	}{
		{"q quits", false, runeKey('q'), true, false},
		{"ctrl+c quits", true, tea.KeyMsg{Type: tea.KeyCtrlC}, true, false},
		{"esc quits standalone", false, tea.KeyMsg{Type: tea.KeyEsc}, true, false},
		{"esc returns to picker", true, tea.KeyMsg{Type: tea.KeyEsc}, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := startPlaying(t, newTestModel(t, GameOptions{AllowBack: tt.allowBack}))

			m, _ = update(t, m, tt.msg)

			if m.IsQuitting() != tt.expectQuit {
				t.Errorf("IsQuitting() = %v, expected %v", m.IsQuitting(), tt.expectQuit)
			}
			if m.BackToMenu() != tt.expectToMenu {
				t.Errorf("BackToMenu() = %v, expected %v", m.BackToMenu(), tt.expectToMenu)
			}
			if m.Engine().Loop().Running() {
				t.Error("loop should stop when leaving the game")
			}
		})
	}
}

func TestGameModelResizeKeepsSession(t *testing.T) {
	m, gen := startPlaying(t, newTestModel(t, GameOptions{}))
	m, _ = tick(t, m, gen)

	m, cmd := update(t, m, tea.WindowSizeMsg{Width: 120, Height: 42})
	if cmd != nil {
		t.Error("resize should not schedule frames")
	}
	if got := m.Engine().Ticks(); got != 1 {
		t.Errorf("Ticks() = %d, expected 1", got)
	}
	if _, _, cols, rows := m.surface.Viewport(); cols != 60 || rows != 40 {
		t.Errorf("viewport = %dx%d, expected 60x40", cols, rows)
	}
}

func TestGameModelFooterButtons(t *testing.T) {
	m := newTestModel(t, GameOptions{})
	if footer := m.footer(); !strings.Contains(footer, "[enter] Start Game") {
		t.Errorf("menu footer = %q, expected the start button", footer)
	}

	m, gen := startPlaying(t, m)
	if footer := m.footer(); strings.Contains(footer, "[") {
		t.Errorf("playing footer = %q, expected no buttons", footer)
	}

	m.Engine().SetLives(1)
	p := m.Engine().Player()
	m.Engine().PlaceEnemy(shooter.Enemy{X: p.X, Y: p.Y, R: 20})
	m, _ = tick(t, m, gen)
	footer := m.footer()
	if !strings.Contains(footer, "[r] Restart") {
		t.Errorf("game over footer = %q, expected the restart button", footer)
	}
	if strings.Contains(footer, "[enter]") {
		t.Errorf("game over footer = %q, expected no start button", footer)
	}
}

func TestGameModelView(t *testing.T) {
	m := newTestModel(t, GameOptions{})

	view := m.View()
	for _, want := range []string{"SPACE SHOOTER", "Start Game", "quit"} {
		if !strings.Contains(view, want) {
			t.Errorf("menu view missing %q", want)
		}
	}

	m, _ = startPlaying(t, m)
	view = m.View()
	for _, want := range []string{"Score: 0", "Lives: 3"} {
		if !strings.Contains(view, want) {
			t.Errorf("playing view missing %q", want)
		}
	}
	if strings.Contains(view, "Start Game") {
		t.Error("playing view should not show the start button")
	}

	if lines := strings.Count(view, "\n") + 1; lines != 26 {
		t.Errorf("view has %d lines, expected 26", lines)
	}
}
