// Package core provides fundamental types and utilities for the shooter.
// It contains no external dependencies (especially no Bubble Tea or Ebiten)
// to keep simulation logic pure and testable.
package core

import "math"

// DistSq returns the squared distance between two points.
func DistSq(ax, ay, bx, by float64) float64 {
	dx := ax - bx
	dy := ay - by
	return dx*dx + dy*dy
}

// CirclesOverlap reports whether two circles overlap.
// Touching circles (distance == ar+br) do not overlap.
func CirclesOverlap(ax, ay, ar, bx, by, br float64) bool {
	sum := ar + br
	return DistSq(ax, ay, bx, by) < sum*sum
}

// WithinBox reports whether point b lies strictly inside the box of the given
// half extents centered on a. Both axes are tested independently.
func WithinBox(ax, ay, bx, by, halfW, halfH float64) bool {
	return math.Abs(ax-bx) < halfW && math.Abs(ay-by) < halfH
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
