// Package gfx defines the drawing surface the shooter renders onto.
// Coordinates are logical field units (480x640); each host projects them onto
// its own output (terminal cells, window pixels).
package gfx

//go:generate go tool mockgen -destination=./mocks/surface_mock.go -package=mocks . Surface

import "image/color"

// Align controls horizontal text anchoring.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Surface is the abstract canvas a frame is drawn onto.
//
// Fills with alpha below 255 are overlays: hosts may blend them or, where
// blending is impossible (terminal cells), blank what lies underneath.
type Surface interface {
	// Size returns the logical size of the surface.
	Size() (w, h float64)

	// Clear fills the whole surface with c.
	Clear(c color.RGBA)

	// FillRect fills an axis-aligned rectangle with top-left corner (x, y).
	FillRect(x, y, w, h float64, c color.RGBA)

	// FillCircle fills a circle centered on (cx, cy).
	FillCircle(cx, cy, r float64, c color.RGBA)

	// FillTriangle fills the triangle with the given vertices.
	FillTriangle(x1, y1, x2, y2, x3, y3 float64, c color.RGBA)

	// Text draws a single line of text with its baseline at y.
	Text(x, y float64, s string, c color.RGBA, align Align)
}

// Hex builds an opaque color from a 0xRRGGBB literal.
func Hex(rgb uint32) color.RGBA {
	return color.RGBA{R: uint8(rgb >> 16), G: uint8(rgb >> 8), B: uint8(rgb), A: 0xff}
}

// WithAlpha returns c with its alpha replaced.
func WithAlpha(c color.RGBA, a uint8) color.RGBA {
	c.A = a
	return c
}
