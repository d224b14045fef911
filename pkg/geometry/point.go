package geometry

import (
	"fmt"
	"math"

	"github.com/jbeda/geom"
)

// Point is a position or a vector in the figure's local coordinate space
type Point = geom.Coord

// LabeledPoint is a vertex or derived point together with its display label
type LabeledPoint struct {
	Point
	Label string
}

// NewPoint creates a new point
func NewPoint(x, y float64) Point {
	return Point{X: x, Y: y}
}

// NewLabeledPoint creates a new labeled point
func NewLabeledPoint(x, y float64, label string) LabeledPoint {
	return LabeledPoint{Point: Point{X: x, Y: y}, Label: label}
}

// String formats the point with its label
func (p LabeledPoint) String() string {
	if p.Label == "" {
		return FormatPoint(p.Point)
	}
	return fmt.Sprintf("%s%s", p.Label, FormatPoint(p.Point))
}

// FormatPoint formats a point as (x, y) with two decimals
func FormatPoint(p Point) string {
	return fmt.Sprintf("(%.2f, %.2f)", p.X, p.Y)
}

// Midpoint returns the arithmetic mean of two points
func Midpoint(p1, p2 Point) Point {
	return Point{X: (p1.X + p2.X) / 2, Y: (p1.Y + p2.Y) / 2}
}

// Distance returns the Euclidean distance between two points
func Distance(p1, p2 Point) float64 {
	return length(p1.Minus(p2))
}

// length is the vector's magnitude without overflowing in the squares
func length(v Point) float64 {
	return math.Hypot(v.X, v.Y)
}

// dot returns the dot product of two vectors
func dot(a, b Point) float64 {
	return a.X*b.X + a.Y*b.Y
}

// cross returns the z component of the cross product of two vectors
func cross(a, b Point) float64 {
	return a.X*b.Y - a.Y*b.X
}

// perpendicular rotates v by 90 degrees counterclockwise
func perpendicular(v Point) Point {
	return Point{X: -v.Y, Y: v.X}
}

// normalize returns a unit vector in the same direction, or false when the
// vector is too short to have one
func normalize(v Point, eps float64) (Point, bool) {
	l := length(v)
	if l <= eps || math.IsInf(l, 0) {
		return Point{}, false
	}
	return v.Times(1.0 / l), true
}

// IsFinite reports whether both coordinates are neither NaN nor infinite
func IsFinite(p Point) bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}
