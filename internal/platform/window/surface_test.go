package window

import (
	"image/color"
	"testing"
)

func TestStraightKeepsChannels(t *testing.T) {
	tests := []struct {
		in       color.RGBA
		expected color.NRGBA
	}{
		{color.RGBA{R: 0x18, G: 0x18, B: 0x28, A: 0xcc}, color.NRGBA{R: 0x18, G: 0x18, B: 0x28, A: 0xcc}},
		{color.RGBA{R: 0xff, A: 0xff}, color.NRGBA{R: 0xff, A: 0xff}},
		{color.RGBA{}, color.NRGBA{}},
	}

	for _, tt := range tests {
		if got := straight(tt.in); got != tt.expected {
			t.Errorf("straight(%v) = %v, expected %v", tt.in, got, tt.expected)
		}
	}
}

func TestChannels(t *testing.T) {
	r, g, b, a := channels(color.RGBA{R: 0xff, G: 0x00, B: 0x33, A: 0x66})

	if r != 1 || g != 0 || b != 0.2 || a != 0.4 {
		t.Errorf("channels() = (%v, %v, %v, %v), expected (1, 0, 0.2, 0.4)", r, g, b, a)
	}
}

func TestSurfaceSize(t *testing.T) {
	s := NewSurface(480, 640)

	if w, h := s.Size(); w != 480 || h != 640 {
		t.Errorf("Size() = (%v, %v), expected (480, 640)", w, h)
	}
}
