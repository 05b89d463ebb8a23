// Package theme defines the visual skin the shooter is rendered with.
// A theme never influences the simulation beyond naming the enemy variants
// the spawner tags new enemies with.
package theme

import (
	"image/color"

	"github.com/vovakirdan/star-shooter/internal/gfx"
)

// Variant tags an enemy with the theme-specific kind used for drawing.
type Variant string

// VariantDefault is used when a theme declares no variants.
const VariantDefault Variant = "default"

// Palette holds the colors the engine uses for its own chrome.
type Palette struct {
	Background color.RGBA // Field clear color
	HUD        color.RGBA // Score and lives text
	Overlay    color.RGBA // Translucent menu/game over panel
	Title      color.RGBA // Menu title
	Text       color.RGBA // Menu body text
	Accent     color.RGBA // Call to action
	Danger     color.RGBA // GAME OVER banner
}

// Theme is a bundle of rendering behavior parameterizing the shared engine.
type Theme interface {
	// ID returns the unique identifier used by the registry and CLI.
	ID() string

	// Title returns the game title shown on the menu overlay.
	Title() string

	// CallToAction returns the menu prompt telling the player how to start.
	CallToAction() string

	// Palette returns the chrome colors.
	Palette() Palette

	// Variants lists the enemy kinds this theme can draw.
	Variants() []Variant

	// DrawBackground paints the static backdrop over the cleared surface.
	DrawBackground(s gfx.Surface)

	// DrawPlayer draws the craft centered on (x, y) with the given extents.
	DrawPlayer(s gfx.Surface, x, y, w, h float64)

	// DrawBullet draws one projectile.
	DrawBullet(s gfx.Surface, x, y, r float64)

	// DrawEnemy draws one enemy of the given variant.
	DrawEnemy(s gfx.Surface, v Variant, x, y, r float64)
}
