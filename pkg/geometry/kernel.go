package geometry

import "math"

const (
	// DefaultEpsilon is the relative tolerance below which a triangle counts
	// as collinear. It is compared against twice the area divided by the
	// square of the longest side, so it does not depend on the triangle's
	// scale.
	DefaultEpsilon = 1e-9

	// DefaultBisectorExtent is how far a drawn perpendicular bisector
	// extends on each side of its midpoint, as a fraction of the side length
	DefaultBisectorExtent = 0.6
)

// Kernel computes derived points and measures of a triangle.
//
// Every method is a pure function of its arguments. Computations that would
// divide by a (near) zero denominator on a degenerate triangle fall back to
// a finite value instead of failing:
//
//   - circumcenter and orthocenter fall back to the centroid
//   - the circumradius falls back to the largest centroid-to-vertex distance
//   - the incenter falls back to the centroid, the inradius to 0
//   - altitude feet and bisector endpoints fall back to points on the
//     opposite side
//
// Use Degenerate to find out whether a fallback is in effect.
type Kernel struct {
	// Epsilon is the degeneracy tolerance, see DefaultEpsilon
	Epsilon float64
	// BisectorExtent is the drawn half-length of perpendicular bisectors
	// relative to the side length
	BisectorExtent float64
}

// DefaultKernel is used by the package-level functions
var DefaultKernel = NewKernel(DefaultEpsilon)

// NewKernel creates a kernel with the given degeneracy tolerance
func NewKernel(epsilon float64) Kernel {
	if epsilon < 0 || math.IsNaN(epsilon) {
		epsilon = DefaultEpsilon
	}
	return Kernel{Epsilon: epsilon, BisectorExtent: DefaultBisectorExtent}
}

// longestSide returns the length of the longest side
func longestSide(t Triangle) float64 {
	sides := SideLengths(t)
	return math.Max(sides[0], math.Max(sides[1], sides[2]))
}

// scaled returns B-A and C-A divided by the longest side. Products of the
// scaled vectors stay finite for any finite triangle.
func scaled(t Triangle) (b, c Point, scale float64) {
	scale = longestSide(t)
	b = t[1].Point.Minus(t[0].Point).Times(1 / scale)
	c = t[2].Point.Minus(t[0].Point).Times(1 / scale)
	return b, c, scale
}

// Degenerate reports whether the triangle is collinear or has coincident
// vertices within the kernel's tolerance. Triangles too large to measure in
// float64 count as degenerate.
func (k Kernel) Degenerate(t Triangle) bool {
	longest := longestSide(t)
	if longest == 0 || math.IsInf(longest, 0) || math.IsNaN(longest) {
		return true
	}
	b, c, _ := scaled(t)
	// NaN fails the comparison and so counts as degenerate
	return !(math.Abs(cross(b, c)) > k.Epsilon)
}

// Circumcenter returns the intersection of the perpendicular bisectors.
//
// Uses the 3-point determinant formula relative to A, on vectors scaled by
// the longest side:
//
//	D  = 2(bx·cy - by·cx)
//	ux = (cy(bx²+by²) - by(cx²+cy²)) / D
//	uy = (bx(cx²+cy²) - cx(bx²+by²)) / D
func (k Kernel) Circumcenter(t Triangle) Point {
	if k.Degenerate(t) {
		return Centroid(t)
	}

	b, c, scale := scaled(t)

	d := 2.0 * cross(b, c)
	bsq := dot(b, b)
	csq := dot(c, c)

	ux := (c.Y*bsq - b.Y*csq) / d
	uy := (b.X*csq - c.X*bsq) / d

	center := t[0].Point.Plus(Point{X: ux, Y: uy}.Times(scale))
	if !IsFinite(center) {
		// A sliver near the float64 limit puts the center out of range
		return Centroid(t)
	}
	return center
}

// Circumradius returns the distance from the circumcenter to the vertices
func (k Kernel) Circumradius(t Triangle) float64 {
	if k.Degenerate(t) {
		center := Centroid(t)
		radius := 0.0
		for _, v := range t {
			radius = math.Max(radius, Distance(center, v.Point))
		}
		return radius
	}
	return Distance(k.Circumcenter(t), t[0].Point)
}

// Incenter returns the average of the vertices weighted by the lengths of
// the opposite sides. A collinear triangle has no inscribed circle, so it
// gets the centroid like the other centers.
func (k Kernel) Incenter(t Triangle) Point {
	sides := SideLengths(t)
	perimeter := sides[0] + sides[1] + sides[2]
	if perimeter <= k.Epsilon || k.Degenerate(t) {
		return Centroid(t)
	}

	var sum Point
	for i, v := range t {
		sum = sum.Plus(v.Point.Times(sides[i] / perimeter))
	}
	return sum
}

// Inradius returns area divided by semiperimeter
func (k Kernel) Inradius(t Triangle) float64 {
	if k.Degenerate(t) {
		return 0
	}
	b, c, scale := scaled(t)
	// area / semiperimeter with both divided by scale²
	return scale * math.Abs(cross(b, c)) / (Perimeter(t) / scale)
}

// Orthocenter returns the intersection of the altitudes, computed with the
// Euler line relation H = A + B + C - 2·O
func (k Kernel) Orthocenter(t Triangle) Point {
	o := k.Circumcenter(t)
	sum := t[0].Point.Plus(t[1].Point).Plus(t[2].Point)
	return sum.Minus(o.Times(2))
}

// Package-level shortcuts using DefaultKernel

// Degenerate reports whether t is collinear, see Kernel.Degenerate
func Degenerate(t Triangle) bool { return DefaultKernel.Degenerate(t) }

// Circumcenter see Kernel.Circumcenter
func Circumcenter(t Triangle) Point { return DefaultKernel.Circumcenter(t) }

// Circumradius see Kernel.Circumradius
func Circumradius(t Triangle) float64 { return DefaultKernel.Circumradius(t) }

// Incenter see Kernel.Incenter
func Incenter(t Triangle) Point { return DefaultKernel.Incenter(t) }

// Inradius see Kernel.Inradius
func Inradius(t Triangle) float64 { return DefaultKernel.Inradius(t) }

// Orthocenter see Kernel.Orthocenter
func Orthocenter(t Triangle) Point { return DefaultKernel.Orthocenter(t) }
