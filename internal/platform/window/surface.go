package window

import (
	"image"
	"image/color"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/star-shooter/internal/gfx"
)

// Debug font metrics in pixels, before scaling.
const (
	glyphW     = 6
	glyphH     = 16
	glyphAsc   = 12 // Baseline offset from the top of a glyph
	textScale  = 2
	scratchLen = 80 // Longest line the scratch image holds
)

// Surface draws onto an ebiten image sized to the logical field, so field
// units map one to one onto pixels; ebiten scales the result to the window.
type Surface struct {
	dst     *ebiten.Image
	w, h    float64
	white   *ebiten.Image
	scratch *ebiten.Image
}

var _ gfx.Surface = (*Surface)(nil)

// NewSurface creates a surface for a w x h field. Target sets the image
// drawn on each frame.
func NewSurface(w, h float64) *Surface {
	return &Surface{w: w, h: h}
}

// Target points the surface at the frame's screen image.
func (s *Surface) Target(dst *ebiten.Image) {
	s.dst = dst
}

// Size returns the logical field size.
func (s *Surface) Size() (w, h float64) {
	return s.w, s.h
}

// Clear fills the whole image.
func (s *Surface) Clear(c color.RGBA) {
	s.dst.Fill(straight(c))
}

// FillRect fills a rectangle, blending translucent colors.
func (s *Surface) FillRect(x, y, w, h float64, c color.RGBA) {
	if w <= 0 || h <= 0 {
		return
	}
	vector.DrawFilledRect(s.dst, float32(x), float32(y), float32(w), float32(h), straight(c), true)
}

// FillCircle fills a circle.
func (s *Surface) FillCircle(cx, cy, r float64, c color.RGBA) {
	if r <= 0 {
		return
	}
	vector.DrawFilledCircle(s.dst, float32(cx), float32(cy), float32(r), straight(c), true)
}

// FillTriangle fills a triangle with a single textured draw call.
func (s *Surface) FillTriangle(x1, y1, x2, y2, x3, y3 float64, c color.RGBA) {
	r, g, b, a := channels(c)
	vs := []ebiten.Vertex{
		{DstX: float32(x1), DstY: float32(y1), SrcX: 1, SrcY: 1, ColorR: r, ColorG: g, ColorB: b, ColorA: a},
		{DstX: float32(x2), DstY: float32(y2), SrcX: 1, SrcY: 1, ColorR: r, ColorG: g, ColorB: b, ColorA: a},
		{DstX: float32(x3), DstY: float32(y3), SrcX: 1, SrcY: 1, ColorR: r, ColorG: g, ColorB: b, ColorA: a},
	}
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	s.dst.DrawTriangles(vs, []uint16{0, 1, 2}, s.whitePixel(), op)
}

// Text draws s with the debug font, tinted with c and scaled up.
// The debug font only prints white, so the line is rendered into a scratch
// image first and tinted when copied.
func (s *Surface) Text(x, y float64, str string, c color.RGBA, align gfx.Align) {
	n := min(utf8.RuneCountInString(str), scratchLen)
	if n == 0 {
		return
	}
	if s.scratch == nil {
		s.scratch = ebiten.NewImage(scratchLen*glyphW, glyphH)
	}
	s.scratch.Clear()
	ebitenutil.DebugPrintAt(s.scratch, str, 0, 0)

	width := float64(n * glyphW * textScale)
	left := x
	switch align {
	case gfx.AlignCenter:
		left -= width / 2
	case gfx.AlignRight:
		left -= width
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(textScale, textScale)
	op.GeoM.Translate(left, y-glyphAsc*textScale)
	op.ColorScale.ScaleWithColor(straight(c))
	line := s.scratch.SubImage(image.Rect(0, 0, n*glyphW, glyphH)).(*ebiten.Image)
	s.dst.DrawImage(line, op)
}

// whitePixel returns a 1x1 white source region at (1, 1) for DrawTriangles.
func (s *Surface) whitePixel() *ebiten.Image {
	if s.white == nil {
		s.white = ebiten.NewImage(3, 3)
		s.white.Fill(color.White)
	}
	return s.white.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}

// straight converts a field color to ebiten's non-premultiplied form.
// Field colors carry straight alpha in a color.RGBA, which image/color
// would otherwise read as premultiplied.
func straight(c color.RGBA) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// channels returns c as straight-alpha vertex color components.
func channels(c color.RGBA) (r, g, b, a float32) {
	return float32(c.R) / 0xff, float32(c.G) / 0xff, float32(c.B) / 0xff, float32(c.A) / 0xff
}
