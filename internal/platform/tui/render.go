package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/star-shooter/internal/core"
)

// Painter turns Screen buffers into styled strings for one output.
// Styles are built lazily per color; a Painter belongs to a single program.
type Painter struct {
	renderer *lipgloss.Renderer
	styles   map[core.Color]lipgloss.Style
}

// NewPainter creates a painter for r. A nil renderer uses the process default.
// SSH sessions pass their per-session renderer so colors match the client.
func NewPainter(r *lipgloss.Renderer) *Painter {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return &Painter{
		renderer: r,
		styles:   make(map[core.Color]lipgloss.Style),
	}
}

// Renderer returns the lipgloss renderer styles are created with.
func (p *Painter) Renderer() *lipgloss.Renderer {
	return p.renderer
}

// Style returns the foreground style for c.
func (p *Painter) Style(c core.Color) lipgloss.Style {
	if style, ok := p.styles[c]; ok {
		return style
	}
	style := p.renderer.NewStyle()
	if !c.IsDefault() {
		style = style.Foreground(lipgloss.Color(c.Hex()))
	}
	p.styles[c] = style
	return style
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func (p *Painter) RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			// Collect consecutive cells with same color
			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if startColor.IsDefault() {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(p.Style(startColor).Render(run.String()))
		}
	}
	return sb.String()
}
