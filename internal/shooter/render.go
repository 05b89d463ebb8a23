package shooter

import (
	"fmt"

	"github.com/vovakirdan/star-shooter/internal/gfx"
	"github.com/vovakirdan/star-shooter/internal/theme"
)

// HUD and overlay layout in field units.
const (
	hudMargin   = 16
	hudBaseline = 28
)

// Fixed overlay lines.
const (
	HelpMove    = "Arrow keys: Move"
	HelpShoot   = "Space/Z: Shoot"
	GameOverMsg = "GAME OVER"
	RestartHint = "Press R to Restart"
)

// Render draws the current frame. It reads the session and never mutates it.
func (e *Engine) Render(s gfx.Surface, th theme.Theme) {
	pal := th.Palette()

	s.Clear(pal.Background)
	th.DrawBackground(s)

	if e.state != StateGameOver {
		p := e.player
		th.DrawPlayer(s, p.X, p.Y, p.W, p.H)
	}
	for _, b := range e.bullets {
		th.DrawBullet(s, b.X, b.Y, b.R)
	}
	for _, en := range e.enemies {
		th.DrawEnemy(s, en.Variant, en.X, en.Y, en.R)
	}

	s.Text(hudMargin, hudBaseline, fmt.Sprintf("Score: %d", e.score), pal.HUD, gfx.AlignLeft)
	s.Text(FieldWidth-hudMargin, hudBaseline, fmt.Sprintf("Lives: %d", e.lives), pal.HUD, gfx.AlignRight)

	switch e.state {
	case StateMenu:
		drawMenu(s, th, pal)
	case StateGameOver:
		drawGameOver(s, pal, e.score)
	}
}

func drawMenu(s gfx.Surface, th theme.Theme, pal theme.Palette) {
	cx := float64(FieldWidth) / 2
	s.FillRect(0, 0, FieldWidth, FieldHeight, pal.Overlay)
	s.Text(cx, 260, th.Title(), pal.Title, gfx.AlignCenter)
	s.Text(cx, 320, HelpMove, pal.Text, gfx.AlignCenter)
	s.Text(cx, 352, HelpShoot, pal.Text, gfx.AlignCenter)
	s.Text(cx, 410, th.CallToAction(), pal.Accent, gfx.AlignCenter)
}

// drawGameOver leaves the final frame visible under the banner.
func drawGameOver(s gfx.Surface, pal theme.Palette, score int) {
	cx := float64(FieldWidth) / 2
	s.Text(cx, 280, GameOverMsg, pal.Danger, gfx.AlignCenter)
	s.Text(cx, 330, fmt.Sprintf("Score: %d", score), pal.Text, gfx.AlignCenter)
	s.Text(cx, 390, RestartHint, pal.Accent, gfx.AlignCenter)
}
