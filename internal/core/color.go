package core

import "fmt"

// Color is a packed 24-bit foreground color for a screen cell.
// The zero value is ColorDefault (terminal default foreground).
type Color uint32

// colorSet marks a color as explicitly chosen, so black is distinct from default.
const colorSet = 1 << 24

// ColorDefault leaves the terminal foreground untouched.
const ColorDefault Color = 0

// Predefined colors for HUD and overlay text.
var (
	ColorWhite  = RGB(0xff, 0xff, 0xff)
	ColorGray   = RGB(0x8a, 0x8a, 0x8a)
	ColorRed    = RGB(0xff, 0x32, 0x64)
	ColorYellow = RGB(0xff, 0xfb, 0xa7)
	ColorCyan   = RGB(0x00, 0xf0, 0xfa)
)

// RGB builds a color from its components.
func RGB(r, g, b uint8) Color {
	return Color(colorSet | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// IsDefault reports whether c is the terminal default color.
func (c Color) IsDefault() bool {
	return c&colorSet == 0
}

// Components returns the red, green and blue channels.
func (c Color) Components() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// Hex returns the color as "#rrggbb", or "" for ColorDefault.
func (c Color) Hex() string {
	if c.IsDefault() {
		return ""
	}
	r, g, b := c.Components()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}
