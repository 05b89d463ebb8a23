// Package tropical implements the island skin: a lagoon backdrop with palm
// silhouettes, an outrigger canoe throwing coconuts, and crabs and parrots
// dropping in from above.
package tropical

import (
	"github.com/vovakirdan/star-shooter/internal/gfx"
	"github.com/vovakirdan/star-shooter/internal/registry"
	"github.com/vovakirdan/star-shooter/internal/theme"
)

// ID is the registry identifier of this theme.
const ID = "tropical"

// Enemy kinds, picked with equal odds by the spawner.
const (
	VariantCrab   theme.Variant = "crab"
	VariantParrot theme.Variant = "parrot"
)

var (
	lagoonBands = []uint32{0x0a3d62, 0x0c4a75, 0x0f5a87, 0x13719c, 0x1a8bb0}
	sand        = gfx.Hex(0xf4d58d)
	palmTrunk   = gfx.Hex(0x5b3a1e)
	palmLeaf    = gfx.Hex(0x1e6b3a)
	canoeHull   = gfx.Hex(0xa0522d)
	canoeTrim   = gfx.Hex(0xffd166)
	coconut     = gfx.Hex(0x8b5a2b)
	crabShell   = gfx.Hex(0xff6b35)
	crabClaw    = gfx.Hex(0xd94814)
	parrotBody  = gfx.Hex(0x2ec45f)
	parrotWing  = gfx.Hex(0x1f8fff)
	parrotBeak  = gfx.Hex(0xffd23f)
	eyeWhite    = gfx.Hex(0xffffff)
)

// Theme is the tropical skin.
type Theme struct {
	width, height float64
}

// New creates the tropical theme for a field of the standard size.
func New() *Theme {
	return &Theme{width: 480, height: 640}
}

// ID returns the registry identifier.
func (t *Theme) ID() string {
	return ID
}

// Title returns the menu title.
func (t *Theme) Title() string {
	return "TROPICAL SHOOTER"
}

// CallToAction returns the menu prompt.
func (t *Theme) CallToAction() string {
	return "Press Enter to Hit the Beach!"
}

// Palette returns the chrome colors.
func (t *Theme) Palette() theme.Palette {
	return theme.Palette{
		Background: gfx.Hex(lagoonBands[0]),
		HUD:        gfx.Hex(0xfff4d6),
		Overlay:    gfx.WithAlpha(gfx.Hex(0x073047), 0xcc),
		Title:      canoeTrim,
		Text:       gfx.Hex(0xffffff),
		Accent:     sand,
		Danger:     crabShell,
	}
}

// Variants returns the crab and parrot kinds.
func (t *Theme) Variants() []theme.Variant {
	return []theme.Variant{VariantCrab, VariantParrot}
}

// DrawBackground paints horizontal lagoon bands, a beach strip and two palms.
func (t *Theme) DrawBackground(s gfx.Surface) {
	bandH := t.height / float64(len(lagoonBands))
	for i, c := range lagoonBands {
		s.FillRect(0, float64(i)*bandH, t.width, bandH, gfx.Hex(c))
	}
	s.FillRect(0, t.height-24, t.width, 24, sand)

	t.drawPalm(s, 36, t.height-24)
	t.drawPalm(s, t.width-36, t.height-24)
}

func (t *Theme) drawPalm(s gfx.Surface, x, groundY float64) {
	topY := groundY - 140
	s.FillRect(x-4, topY, 8, groundY-topY, palmTrunk)
	s.FillTriangle(x, topY, x-46, topY+22, x-10, topY+8, palmLeaf)
	s.FillTriangle(x, topY, x+46, topY+22, x+10, topY+8, palmLeaf)
	s.FillTriangle(x, topY-4, x-26, topY-30, x+4, topY+6, palmLeaf)
	s.FillTriangle(x, topY-4, x+26, topY-30, x-4, topY+6, palmLeaf)
	s.FillCircle(x-5, topY+6, 4, coconut)
	s.FillCircle(x+5, topY+6, 4, coconut)
}

// DrawPlayer draws an outrigger canoe seen from behind with a trim stripe.
func (t *Theme) DrawPlayer(s gfx.Surface, x, y, w, h float64) {
	top := y - h/2
	s.FillRect(x-w/2+4, top+4, w-8, h-8, canoeHull)
	s.FillTriangle(x-w/2, top+4, x-w/2+4, top+4, x-w/2+4, y+h/2-4, canoeHull)
	s.FillTriangle(x+w/2, top+4, x+w/2-4, top+4, x+w/2-4, y+h/2-4, canoeHull)
	s.FillRect(x-w/2+4, top+4, w-8, 3, canoeTrim)
	s.FillTriangle(x, top-6, x-4, top+4, x+4, top+4, canoeTrim)
}

// DrawBullet draws a coconut.
func (t *Theme) DrawBullet(s gfx.Surface, x, y, r float64) {
	s.FillCircle(x, y, r, coconut)
}

// DrawEnemy draws a crab or a parrot; unknown variants are drawn as crabs.
func (t *Theme) DrawEnemy(s gfx.Surface, v theme.Variant, x, y, r float64) {
	if v == VariantParrot {
		t.drawParrot(s, x, y, r)
		return
	}
	t.drawCrab(s, x, y, r)
}

func (t *Theme) drawCrab(s gfx.Surface, x, y, r float64) {
	s.FillCircle(x-r, y-r*0.4, r*0.35, crabClaw)
	s.FillCircle(x+r, y-r*0.4, r*0.35, crabClaw)
	s.FillCircle(x, y, r, crabShell)
	s.FillCircle(x-5, y-r*0.5, 2.5, eyeWhite)
	s.FillCircle(x+5, y-r*0.5, 2.5, eyeWhite)
}

func (t *Theme) drawParrot(s gfx.Surface, x, y, r float64) {
	s.FillTriangle(x-r, y, x-r*1.6, y-r*0.6, x-r*0.4, y-r*0.3, parrotWing)
	s.FillTriangle(x+r, y, x+r*1.6, y-r*0.6, x+r*0.4, y-r*0.3, parrotWing)
	s.FillCircle(x, y, r, parrotBody)
	s.FillTriangle(x-4, y+r*0.4, x+4, y+r*0.4, x, y+r*0.4+8, parrotBeak)
	s.FillCircle(x-5, y-2, 2, eyeWhite)
	s.FillCircle(x+5, y-2, 2, eyeWhite)
}

func init() {
	registry.Register(ID, func() theme.Theme {
		return New()
	})
}
