// Package window provides the desktop host for the shooter, built on ebiten.
// Ebiten reports real key releases, so the held-keys snapshot follows the
// keyboard exactly and no latching is needed.
package window

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/star-shooter/internal/shooter"
	"github.com/vovakirdan/star-shooter/internal/theme"
)

// Keyboard reports the key transitions of the current frame.
type Keyboard interface {
	JustPressed(k ebiten.Key) bool
	JustReleased(k ebiten.Key) bool
}

// ebitenKeyboard reads ebiten's input state.
type ebitenKeyboard struct{}

func (ebitenKeyboard) JustPressed(k ebiten.Key) bool  { return inpututil.IsKeyJustPressed(k) }
func (ebitenKeyboard) JustReleased(k ebiten.Key) bool { return inpututil.IsKeyJustReleased(k) }

// keyCodes maps window keys onto engine key codes.
var keyCodes = map[ebiten.Key]shooter.Key{
	ebiten.KeyArrowLeft:  shooter.KeyArrowLeft,
	ebiten.KeyArrowRight: shooter.KeyArrowRight,
	ebiten.KeySpace:      shooter.KeySpace,
	ebiten.KeyZ:          shooter.KeyZ,
}

// Options configures the window host.
type Options struct {
	Theme    theme.Theme
	Title    string
	Scale    float64 // Window size relative to the field
	TickRate int
	Seed     int64       // 0 uses the current time
	Logger   *log.Logger // nil discards
	Keyboard Keyboard    // nil reads the real keyboard
}

// Game adapts the shooter engine to ebiten.Game.
type Game struct {
	engine   *shooter.Engine
	theme    theme.Theme
	surface  *Surface
	keyboard Keyboard
	logger   *log.Logger
}

var _ ebiten.Game = (*Game)(nil)

// NewGame creates a game in the menu state.
func NewGame(opts Options) *Game {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	kb := opts.Keyboard
	if kb == nil {
		kb = ebitenKeyboard{}
	}

	return &Game{
		engine: shooter.New(
			shooter.WithSeed(seed),
			shooter.WithVariants(opts.Theme.Variants()...),
			shooter.WithLogger(logger),
		),
		theme:    opts.Theme,
		surface:  NewSurface(shooter.FieldWidth, shooter.FieldHeight),
		keyboard: kb,
		logger:   logger,
	}
}

// Update forwards key transitions to the engine and runs one frame while the
// loop is live. Ebiten calls it once per tick.
func (g *Game) Update() error {
	kb := g.keyboard
	for k, code := range keyCodes {
		if kb.JustPressed(k) {
			g.engine.OnKeyDown(string(code))
		}
		if kb.JustReleased(k) {
			g.engine.OnKeyUp(string(code))
		}
	}

	switch {
	case kb.JustPressed(ebiten.KeyEscape), kb.JustPressed(ebiten.KeyQ):
		g.engine.Loop().Stop()
		g.logger.Info("window closed", "score", g.engine.Score())
		return ebiten.Termination
	case kb.JustPressed(ebiten.KeyEnter) && g.engine.State() != shooter.StatePlaying:
		g.engine.OnStart()
		g.logger.Info("game started", "theme", g.theme.ID())
	case kb.JustPressed(ebiten.KeyR) && g.engine.State() == shooter.StateGameOver:
		g.engine.OnRestart()
		g.logger.Info("game started", "theme", g.theme.ID())
	}

	if g.engine.Loop().Running() {
		g.engine.Frame()
	}
	return nil
}

// Draw renders the current frame.
func (g *Game) Draw(screen *ebiten.Image) {
	g.surface.Target(screen)
	g.engine.Render(g.surface, g.theme)
}

// Layout fixes the logical screen to the field; ebiten scales it to the window.
func (g *Game) Layout(_, _ int) (int, int) {
	return shooter.FieldWidth, shooter.FieldHeight
}

// Engine returns the engine driven by this game.
func (g *Game) Engine() *shooter.Engine {
	return g.engine
}

// Run opens the window and blocks until it is closed.
func Run(opts Options) error {
	if opts.Scale <= 0 {
		opts.Scale = 1
	}
	if opts.TickRate > 0 {
		ebiten.SetTPS(opts.TickRate)
	}
	ebiten.SetWindowSize(int(shooter.FieldWidth*opts.Scale), int(shooter.FieldHeight*opts.Scale))
	ebiten.SetWindowTitle(opts.Title)

	if err := ebiten.RunGame(NewGame(opts)); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
