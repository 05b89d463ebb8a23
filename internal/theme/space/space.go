// Package space implements the default deep-space skin: a starfield, a blue
// delta-wing craft and red saucers.
package space

import (
	"github.com/vovakirdan/star-shooter/internal/gfx"
	"github.com/vovakirdan/star-shooter/internal/registry"
	"github.com/vovakirdan/star-shooter/internal/theme"
)

// ID is the registry identifier of this theme.
const ID = "space"

// VariantSaucer is the only enemy kind in space.
const VariantSaucer theme.Variant = "saucer"

// Starfield layout
const (
	starCount = 40
	starColor = 0xb3e0ff
)

var (
	shipBody    = gfx.Hex(0x32aaff)
	shipGlow    = gfx.WithAlpha(gfx.Hex(0x00d8ff), 0x40)
	shipCockpit = gfx.Hex(0xe2faff)
	bulletCore  = gfx.Hex(0xfffba7)
	bulletGlow  = gfx.WithAlpha(gfx.Hex(0xffee60), 0x50)
	saucerRim   = gfx.Hex(0xff3264)
	saucerInner = gfx.Hex(0xffbbbb)
	saucerCore  = gfx.Hex(0xffffff)
)

// Theme is the space skin.
type Theme struct {
	width, height float64
}

// New creates the space theme for a field of the standard size.
func New() *Theme {
	return &Theme{width: 480, height: 640}
}

// ID returns the registry identifier.
func (t *Theme) ID() string {
	return ID
}

// Title returns the menu title.
func (t *Theme) Title() string {
	return "SPACE SHOOTER"
}

// CallToAction returns the menu prompt.
func (t *Theme) CallToAction() string {
	return "Press Enter to Play!"
}

// Palette returns the chrome colors.
func (t *Theme) Palette() theme.Palette {
	return theme.Palette{
		Background: gfx.Hex(0x0b0c1f),
		HUD:        gfx.Hex(0xe9f3ff),
		Overlay:    gfx.WithAlpha(gfx.Hex(0x181828), 0xcc),
		Title:      shipBody,
		Text:       gfx.Hex(0xffffff),
		Accent:     gfx.Hex(0x00f0fa),
		Danger:     saucerRim,
	}
}

// Variants returns the single saucer kind.
func (t *Theme) Variants() []theme.Variant {
	return []theme.Variant{VariantSaucer}
}

// DrawBackground scatters a fixed starfield; positions depend only on the index.
func (t *Theme) DrawBackground(s gfx.Surface) {
	w, h := int(t.width), int(t.height)
	for i := range starCount {
		x := float64((i*71)%w + (i%3)*15)
		y := float64((i*53)%h + (i%5)*9)
		r := 1.2 + float64(i%2)
		alpha := uint8(255 * (0.45 + 0.1*float64(i%3)))
		s.FillCircle(x, y, r, gfx.WithAlpha(gfx.Hex(starColor), alpha))
	}
}

// DrawPlayer draws a notched delta wing with a cockpit bubble.
func (t *Theme) DrawPlayer(s gfx.Surface, x, y, w, h float64) {
	noseY := y - h/2 - 6
	tailY := y + h/2
	notchY := y + h/2 - 4

	s.FillCircle(x, y, w/2+4, shipGlow)
	s.FillTriangle(x, noseY, x-w/2, tailY, x, notchY, shipBody)
	s.FillTriangle(x, noseY, x, notchY, x+w/2, tailY, shipBody)
	s.FillCircle(x, y-6, 4, shipCockpit)
}

// DrawBullet draws a glowing pellet.
func (t *Theme) DrawBullet(s gfx.Surface, x, y, r float64) {
	s.FillCircle(x, y, r+3, bulletGlow)
	s.FillCircle(x, y, r, bulletCore)
}

// DrawEnemy draws a saucer with two eyes. Unknown variants fall back to the saucer.
func (t *Theme) DrawEnemy(s gfx.Surface, _ theme.Variant, x, y, r float64) {
	s.FillCircle(x, y, r, saucerRim)
	s.FillCircle(x, y, r*0.6, saucerInner)
	s.FillCircle(x, y, r*0.15, saucerCore)
	s.FillCircle(x-6, y-2, 2, saucerCore)
	s.FillCircle(x+6, y-2, 2, saucerCore)
}

func init() {
	registry.Register(ID, func() theme.Theme {
		return New()
	})
}
