package shooter

import (
	"image/color"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/vovakirdan/star-shooter/internal/gfx"
	"github.com/vovakirdan/star-shooter/internal/gfx/mocks"
	"github.com/vovakirdan/star-shooter/internal/theme"
)

// recordingTheme counts draw calls and paints nothing.
type recordingTheme struct {
	backgrounds int
	players     int
	bullets     int
	enemies     map[theme.Variant]int
}

func newRecordingTheme() *recordingTheme {
	return &recordingTheme{enemies: make(map[theme.Variant]int)}
}

func (r *recordingTheme) ID() string           { return "recording" }
func (r *recordingTheme) Title() string        { return "TEST TITLE" }
func (r *recordingTheme) CallToAction() string { return "Press Enter" }
func (r *recordingTheme) Palette() theme.Palette {
	return theme.Palette{
		Background: color.RGBA{A: 0xff},
		HUD:        color.RGBA{R: 1, A: 0xff},
		Overlay:    color.RGBA{A: 0x80},
		Title:      color.RGBA{R: 2, A: 0xff},
		Text:       color.RGBA{R: 3, A: 0xff},
		Accent:     color.RGBA{R: 4, A: 0xff},
		Danger:     color.RGBA{R: 5, A: 0xff},
	}
}
func (r *recordingTheme) Variants() []theme.Variant  { return []theme.Variant{"a", "b"} }
func (r *recordingTheme) DrawBackground(gfx.Surface) { r.backgrounds++ }
func (r *recordingTheme) DrawPlayer(gfx.Surface, float64, float64, float64, float64) {
	r.players++
}
func (r *recordingTheme) DrawBullet(gfx.Surface, float64, float64, float64) { r.bullets++ }
func (r *recordingTheme) DrawEnemy(_ gfx.Surface, v theme.Variant, _, _, _ float64) {
	r.enemies[v]++
}

// permissive allows any drawing call not pinned by an earlier expectation.
func permissive(s *mocks.MockSurface) {
	s.EXPECT().Size().Return(float64(FieldWidth), float64(FieldHeight)).AnyTimes()
	s.EXPECT().Clear(gomock.Any()).AnyTimes()
	s.EXPECT().FillRect(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	s.EXPECT().FillCircle(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	s.EXPECT().FillTriangle(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	s.EXPECT().Text(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
}

func TestRenderPlayingHUD(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := mocks.NewMockSurface(ctrl)
	th := newRecordingTheme()
	pal := th.Palette()

	e := New(WithSeed(1))
	e.Start()
	e.PlaceBullet(Bullet{X: 10, Y: 10, R: 4})
	e.PlaceBullet(Bullet{X: 20, Y: 10, R: 4})
	e.PlaceEnemy(Enemy{X: 100, Y: 100, R: 20, Variant: "a"})
	e.PlaceEnemy(Enemy{X: 200, Y: 100, R: 20, Variant: "b"})
	e.PlaceEnemy(Enemy{X: 300, Y: 100, R: 20, Variant: "b"})

	gomock.InOrder(
		s.EXPECT().Clear(pal.Background),
		s.EXPECT().Text(float64(16), float64(28), "Score: 0", pal.HUD, gfx.AlignLeft),
		s.EXPECT().Text(float64(FieldWidth-16), float64(28), "Lives: 3", pal.HUD, gfx.AlignRight),
	)

	e.Render(s, th)

	if th.backgrounds != 1 || th.players != 1 || th.bullets != 2 {
		t.Errorf("draw calls: background=%d player=%d bullets=%d, expected 1/1/2",
			th.backgrounds, th.players, th.bullets)
	}
	if th.enemies["a"] != 1 || th.enemies["b"] != 2 {
		t.Errorf("enemy draws by variant = %v, expected a:1 b:2", th.enemies)
	}
}

func TestRenderMenuOverlay(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := mocks.NewMockSurface(ctrl)
	th := newRecordingTheme()
	pal := th.Palette()
	cx := float64(FieldWidth) / 2

	s.EXPECT().FillRect(float64(0), float64(0), float64(FieldWidth), float64(FieldHeight), pal.Overlay)
	s.EXPECT().Text(cx, gomock.Any(), "TEST TITLE", pal.Title, gfx.AlignCenter)
	s.EXPECT().Text(cx, gomock.Any(), HelpMove, pal.Text, gfx.AlignCenter)
	s.EXPECT().Text(cx, gomock.Any(), HelpShoot, pal.Text, gfx.AlignCenter)
	s.EXPECT().Text(cx, gomock.Any(), "Press Enter", pal.Accent, gfx.AlignCenter)
	permissive(s)

	New(WithSeed(1)).Render(s, th)
}

func TestRenderGameOverBanner(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := mocks.NewMockSurface(ctrl)
	th := newRecordingTheme()
	pal := th.Palette()
	cx := float64(FieldWidth) / 2

	e := New(WithSeed(1))
	e.Start()
	e.score = 70
	e.SetLives(1)
	p := e.Player()
	e.PlaceEnemy(Enemy{X: 100, Y: 100, R: 20, Variant: "a"})
	e.PlaceEnemy(Enemy{X: p.X, Y: p.Y, R: 20, Variant: "b"})
	e.Tick(Input{})

	s.EXPECT().FillRect(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Do(func(_, _, _, _ float64, c color.RGBA) {
			if c == pal.Overlay {
				t.Error("game over frame should not be covered by the overlay")
			}
		}).AnyTimes()
	s.EXPECT().Text(cx, gomock.Any(), GameOverMsg, pal.Danger, gfx.AlignCenter)
	s.EXPECT().Text(cx, gomock.Any(), "Score: 70", pal.Text, gfx.AlignCenter)
	s.EXPECT().Text(cx, gomock.Any(), RestartHint, pal.Accent, gfx.AlignCenter)
	s.EXPECT().Text(gomock.Any(), gomock.Any(), "Lives: 0", pal.HUD, gfx.AlignRight)
	permissive(s)

	e.Render(s, th)

	if th.players != 0 {
		t.Errorf("player drawn %d times after game over, expected 0", th.players)
	}
	if th.enemies["a"] != 1 {
		t.Errorf("surviving enemy drawn %d times, expected 1", th.enemies["a"])
	}
}

func TestRenderDoesNotMutate(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := mocks.NewMockSurface(ctrl)
	permissive(s)

	e := New(WithSeed(5))
	e.Start()
	for range 300 {
		e.Tick(Input{Fire: true, Left: true})
	}
	before := e.Snapshot()

	for range 10 {
		e.Render(s, newRecordingTheme())
	}

	after := e.Snapshot()
	if before.Hash() != after.Hash() {
		t.Error("Render changed the session")
	}
}
