package render

import (
	"math"

	"github.com/philipparndt/gotriangle/pkg/geometry"
)

// Dashes splits the segment from a to b into the visible pieces of a dash
// pattern, for surfaces without native dashed lines. Lengths are in the same
// units as the points. An empty or non-positive pattern yields the whole
// segment.
func Dashes(a, b geometry.Point, pattern []float64) [][2]geometry.Point {
	length := a.DistanceFrom(b)
	if length == 0 {
		return nil
	}

	total := 0.0
	for _, d := range pattern {
		if d <= 0 {
			return [][2]geometry.Point{{a, b}}
		}
		total += d
	}
	if total == 0 {
		return [][2]geometry.Point{{a, b}}
	}

	dir := b.Minus(a).Times(1 / length)
	var pieces [][2]geometry.Point
	pos := 0.0
	for i := 0; pos < length; i++ {
		d := pattern[i%len(pattern)]
		if i%2 == 0 {
			end := math.Min(pos+d, length)
			pieces = append(pieces, [2]geometry.Point{a.Plus(dir.Times(pos)), a.Plus(dir.Times(end))})
		}
		pos += d
	}
	return pieces
}
