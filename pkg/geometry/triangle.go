package geometry

import (
	"math"

	"github.com/jbeda/geom"
)

// Conventional vertex labels, indexed by vertex position
var VertexLabels = [3]string{"A", "B", "C"}

// Triangle is an ordered triple of labeled vertices. Index 0, 1 and 2 map to
// A, B and C.
type Triangle [3]LabeledPoint

// NewTriangle creates a triangle with the conventional labels A, B and C
func NewTriangle(a, b, c Point) Triangle {
	return Triangle{
		{Point: a, Label: VertexLabels[0]},
		{Point: b, Label: VertexLabels[1]},
		{Point: c, Label: VertexLabels[2]},
	}
}

// DefaultTriangle returns the triangle used when no initial vertices are given
func DefaultTriangle() Triangle {
	return NewTriangle(
		NewPoint(200, 60),
		NewPoint(80, 280),
		NewPoint(320, 280),
	)
}

// Points returns the bare vertex positions
func (t Triangle) Points() [3]Point {
	return [3]Point{t[0].Point, t[1].Point, t[2].Point}
}

// WithVertex returns a copy of the triangle with vertex i moved to p. The
// label of the vertex is kept.
func (t Triangle) WithVertex(i int, p Point) Triangle {
	t[i].Point = p
	return t
}

// Others returns the indices of the two vertices other than i, in cyclic order
func Others(i int) (int, int) {
	return (i + 1) % 3, (i + 2) % 3
}

// Bounds returns the axis-aligned bounding box of the vertices
func (t Triangle) Bounds() geom.Rect {
	r := geom.Rect{Min: t[0].Point, Max: t[0].Point}
	r.ExpandToContainCoord(t[1].Point)
	r.ExpandToContainCoord(t[2].Point)
	return r
}

// SideLengths returns the lengths of the sides opposite A, B and C
func SideLengths(t Triangle) [3]float64 {
	return [3]float64{
		Distance(t[1].Point, t[2].Point),
		Distance(t[2].Point, t[0].Point),
		Distance(t[0].Point, t[1].Point),
	}
}

// Perimeter returns the sum of the side lengths
func Perimeter(t Triangle) float64 {
	sides := SideLengths(t)
	return sides[0] + sides[1] + sides[2]
}

// Semiperimeter returns half the perimeter
func Semiperimeter(t Triangle) float64 {
	return Perimeter(t) / 2
}

// SignedArea returns the shoelace area. It is positive when A, B, C wind
// counterclockwise in a y-up frame.
func SignedArea(t Triangle) float64 {
	ab := t[1].Point.Minus(t[0].Point)
	ac := t[2].Point.Minus(t[0].Point)
	return cross(ab, ac) / 2
}

// Area returns the unsigned area
func Area(t Triangle) float64 {
	return math.Abs(SignedArea(t))
}

// Centroid returns the arithmetic mean of the three vertices. It is always
// defined.
func Centroid(t Triangle) Point {
	return Point{
		X: (t[0].X + t[1].X + t[2].X) / 3.0,
		Y: (t[0].Y + t[1].Y + t[2].Y) / 3.0,
	}
}

// Angles returns the interior angles at A, B and C in radians. The angle at
// a vertex that coincides with a neighbour is reported as 0.
func Angles(t Triangle) [3]float64 {
	var angles [3]float64
	for i := range t {
		j, k := Others(i)
		u := t[j].Point.Minus(t[i].Point)
		v := t[k].Point.Minus(t[i].Point)
		if u.Magnitude() == 0 || v.Magnitude() == 0 {
			continue
		}
		angles[i] = math.Atan2(math.Abs(cross(u, v)), dot(u, v))
	}
	return angles
}
