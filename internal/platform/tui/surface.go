package tui

import (
	"image/color"
	"math"
	"unicode/utf8"

	"github.com/vovakirdan/star-shooter/internal/core"
	"github.com/vovakirdan/star-shooter/internal/gfx"
)

// Glyphs used to approximate shapes on the cell grid.
const (
	GlyphFill  = '█'
	GlyphBlip  = '•' // Shape smaller than a cell, radius >= 3
	GlyphSpeck = '·' // Anything smaller
)

// cellAspect is the height of a terminal cell relative to its width.
const cellAspect = 2.0

// Alpha thresholds
const (
	alphaVisible = 0x60 // Fills below this are glow effects and are skipped
	alphaOpaque  = 0xff // Fills below this (and visible) blank the cells
)

// TermSurface projects the logical field onto a cell-grid viewport.
// The viewport keeps the field's aspect ratio and is centered on the screen.
type TermSurface struct {
	screen         *core.Screen
	fieldW, fieldH float64
	x0, y0         int // Top-left cell of the viewport
	cols, rows     int
	cellW, cellH   float64 // Logical units covered by one cell
}

// NewTermSurface creates a surface drawing a fieldW x fieldH field onto screen.
func NewTermSurface(screen *core.Screen, fieldW, fieldH float64) *TermSurface {
	t := &TermSurface{screen: screen, fieldW: fieldW, fieldH: fieldH}
	t.Fit()
	return t
}

// Fit recomputes the viewport after the screen was resized.
func (t *TermSurface) Fit() {
	w, h := t.screen.Width(), t.screen.Height()
	ratio := cellAspect * t.fieldW / t.fieldH // Columns per row

	rows := h
	cols := int(math.Round(float64(rows) * ratio))
	if cols > w {
		cols = w
		rows = min(int(math.Round(float64(cols)/ratio)), h)
	}
	t.cols, t.rows = max(cols, 1), max(rows, 1)
	t.x0 = max((w-t.cols)/2, 0)
	t.y0 = max((h-t.rows)/2, 0)
	t.cellW = t.fieldW / float64(t.cols)
	t.cellH = t.fieldH / float64(t.rows)
}

// Viewport returns the top-left cell and size of the drawing area.
func (t *TermSurface) Viewport() (x, y, cols, rows int) {
	return t.x0, t.y0, t.cols, t.rows
}

// Size returns the logical field size.
func (t *TermSurface) Size() (w, h float64) {
	return t.fieldW, t.fieldH
}

// Clear blanks the screen. Cells carry foreground colors only, so the
// background color is left to the terminal.
func (t *TermSurface) Clear(color.RGBA) {
	t.screen.Clear()
}

// FillRect fills every cell whose center lies inside the rectangle.
// Translucent fills blank the cells instead, which is how overlays read on
// a terminal.
func (t *TermSurface) FillRect(x, y, w, h float64, c color.RGBA) {
	if c.A < alphaVisible || w <= 0 || h <= 0 {
		return
	}
	glyph, col := rune(GlyphFill), toCellColor(c)
	if c.A < alphaOpaque {
		glyph, col = ' ', core.ColorDefault
	}

	painted := t.eachCell(x, y, x+w, y+h, func(cx, cy float64) bool {
		return cx >= x && cx < x+w && cy >= y && cy < y+h
	}, glyph, col)
	if !painted && c.A == alphaOpaque {
		t.plot(x+w/2, y+h/2, glyph, col)
	}
}

// FillCircle fills cells whose centers lie within r; a circle too small to
// cover a cell center leaves a single dot.
func (t *TermSurface) FillCircle(cx, cy, r float64, c color.RGBA) {
	if c.A < alphaVisible || r <= 0 {
		return
	}
	col := toCellColor(c)
	painted := t.eachCell(cx-r, cy-r, cx+r, cy+r, func(px, py float64) bool {
		return core.DistSq(px, py, cx, cy) <= r*r
	}, GlyphFill, col)
	if painted {
		return
	}
	glyph := rune(GlyphSpeck)
	if r >= 3 {
		glyph = GlyphBlip
	}
	t.plot(cx, cy, glyph, col)
}

// FillTriangle fills cells whose centers lie inside the triangle.
func (t *TermSurface) FillTriangle(x1, y1, x2, y2, x3, y3 float64, c color.RGBA) {
	if c.A < alphaVisible {
		return
	}
	col := toCellColor(c)
	minX, maxX := math.Min(x1, math.Min(x2, x3)), math.Max(x1, math.Max(x2, x3))
	minY, maxY := math.Min(y1, math.Min(y2, y3)), math.Max(y1, math.Max(y2, y3))

	painted := t.eachCell(minX, minY, maxX, maxY, func(px, py float64) bool {
		d1 := edge(px, py, x1, y1, x2, y2)
		d2 := edge(px, py, x2, y2, x3, y3)
		d3 := edge(px, py, x3, y3, x1, y1)
		hasNeg := d1 < 0 || d2 < 0 || d3 < 0
		hasPos := d1 > 0 || d2 > 0 || d3 > 0
		return !(hasNeg && hasPos)
	}, GlyphFill, col)
	if !painted {
		t.plot((x1+x2+x3)/3, (y1+y2+y3)/3, GlyphFill, col)
	}
}

// Text writes s on the row containing its baseline.
func (t *TermSurface) Text(x, y float64, s string, c color.RGBA, align gfx.Align) {
	if c.A < alphaVisible {
		return
	}
	col := toCellColor(c)
	row := int(math.Floor(y / t.cellH))
	start := int(math.Floor(x / t.cellW))
	n := utf8.RuneCountInString(s)
	switch align {
	case gfx.AlignCenter:
		start -= n / 2
	case gfx.AlignRight:
		start -= n
	}

	if row < 0 || row >= t.rows {
		return
	}
	runes := []rune(s)
	if start < 0 {
		runes = runes[min(-start, len(runes)):]
		start = 0
	}
	if over := start + len(runes) - t.cols; over > 0 {
		runes = runes[:max(len(runes)-over, 0)]
	}
	t.screen.DrawTextColored(t.x0+start, t.y0+row, string(runes), col)
}

// eachCell paints cells in the logical bounding box whose centers satisfy
// inside. It reports whether any cell was painted.
func (t *TermSurface) eachCell(minX, minY, maxX, maxY float64, inside func(cx, cy float64) bool, glyph rune, col core.Color) bool {
	c0 := max(int(math.Floor(minX/t.cellW)), 0)
	c1 := min(int(math.Ceil(maxX/t.cellW)), t.cols-1)
	r0 := max(int(math.Floor(minY/t.cellH)), 0)
	r1 := min(int(math.Ceil(maxY/t.cellH)), t.rows-1)

	painted := false
	for row := r0; row <= r1; row++ {
		cy := (float64(row) + 0.5) * t.cellH
		for c := c0; c <= c1; c++ {
			cx := (float64(c) + 0.5) * t.cellW
			if inside(cx, cy) {
				t.set(c, row, glyph, col)
				painted = true
			}
		}
	}
	return painted
}

// plot paints the cell containing the logical point.
func (t *TermSurface) plot(x, y float64, glyph rune, col core.Color) {
	t.set(int(math.Floor(x/t.cellW)), int(math.Floor(y/t.cellH)), glyph, col)
}

// set writes a viewport cell; cells outside the viewport are ignored.
func (t *TermSurface) set(col, row int, r rune, c core.Color) {
	if col < 0 || row < 0 || col >= t.cols || row >= t.rows {
		return
	}
	t.screen.SetColored(t.x0+col, t.y0+row, r, c)
}

// edge returns the signed area of (px, py) against the edge a->b.
func edge(px, py, ax, ay, bx, by float64) float64 {
	return (px-bx)*(ay-by) - (ax-bx)*(py-by)
}

func toCellColor(c color.RGBA) core.Color {
	return core.RGB(c.R, c.G, c.B)
}
