package geometry

import "math"

// Segment is a derived line segment such as a median or an altitude
type Segment struct {
	Start Point
	End   Point
}

// Length returns the segment's length
func (s Segment) Length() float64 {
	return Distance(s.Start, s.End)
}

// Midpoint returns the middle of the segment
func (s Segment) Midpoint() Point {
	return Midpoint(s.Start, s.End)
}

// AltitudeFoot returns the orthogonal projection of the given vertex onto
// the line through the other two vertices. The foot may lie outside the
// opposite side for obtuse triangles. When the opposite side is shorter
// than Epsilon times the longest side the foot is that side's start point.
func (k Kernel) AltitudeFoot(t Triangle, vertex int) Point {
	j, l := Others(vertex)
	p := t[j].Point
	longest := longestSide(t)
	if longest == 0 || math.IsInf(longest, 0) {
		return p
	}

	// Relative to the longest side, so the products cannot overflow
	side := t[l].Point.Minus(p).Times(1 / longest)
	lengthSq := dot(side, side)
	if lengthSq <= k.Epsilon*k.Epsilon {
		return p
	}

	s := dot(t[vertex].Point.Minus(p).Times(1/longest), side) / lengthSq
	return p.Plus(t[l].Point.Minus(p).Times(s))
}

// BisectorEndpoint returns where the internal bisector of the angle at the
// given vertex meets the opposite side.
//
// The direction is the sum of the unit vectors towards the two other
// vertices; the ray is intersected with the opposite side's line. When
// either step is numerically degenerate the midpoint of the opposite side is
// returned.
func (k Kernel) BisectorEndpoint(t Triangle, vertex int) Point {
	j, l := Others(vertex)
	v := t[vertex].Point
	p, q := t[j].Point, t[l].Point
	fallback := Midpoint(p, q)

	u1, ok1 := normalize(p.Minus(v), k.Epsilon)
	u2, ok2 := normalize(q.Minus(v), k.Epsilon)
	if !ok1 || !ok2 {
		return fallback
	}
	direction, ok := normalize(u1.Plus(u2), k.Epsilon)
	if !ok {
		return fallback
	}

	// Solve v + s·direction = p + r·side for s
	side := q.Minus(p)
	denominator := cross(direction, side)
	if math.Abs(denominator) <= k.Epsilon*length(side) {
		return fallback
	}
	s := cross(p.Minus(v), side) / denominator
	end := v.Plus(direction.Times(s))
	if !IsFinite(end) {
		return fallback
	}
	return end
}

// PerpendicularBisector returns a segment perpendicular to the side opposite
// the given vertex, through that side's midpoint. It extends BisectorExtent
// times the side length in both directions; the extent is a drawing choice.
// A zero length side yields a zero length segment at its midpoint.
func (k Kernel) PerpendicularBisector(t Triangle, side int) Segment {
	j, l := Others(side)
	p, q := t[j].Point, t[l].Point
	mid := Midpoint(p, q)

	edge := q.Minus(p)
	normal, ok := normalize(perpendicular(edge), k.Epsilon)
	if !ok {
		return Segment{Start: mid, End: mid}
	}

	half := normal.Times(k.extent() * length(edge))
	return Segment{Start: mid.Minus(half), End: mid.Plus(half)}
}

func (k Kernel) extent() float64 {
	if k.BisectorExtent <= 0 {
		return DefaultBisectorExtent
	}
	return k.BisectorExtent
}

// Median returns the segment from the vertex to the midpoint of the
// opposite side
func (k Kernel) Median(t Triangle, vertex int) Segment {
	j, l := Others(vertex)
	return Segment{Start: t[vertex].Point, End: Midpoint(t[j].Point, t[l].Point)}
}

// Altitude returns the segment from the vertex to its altitude foot
func (k Kernel) Altitude(t Triangle, vertex int) Segment {
	return Segment{Start: t[vertex].Point, End: k.AltitudeFoot(t, vertex)}
}

// Bisector returns the segment from the vertex to its bisector endpoint
func (k Kernel) Bisector(t Triangle, vertex int) Segment {
	return Segment{Start: t[vertex].Point, End: k.BisectorEndpoint(t, vertex)}
}

// EulerLine returns the segment from the orthocenter to the circumcenter,
// which passes through the centroid. There is no Euler line for degenerate
// or equilateral triangles, where the three centers coincide.
func (k Kernel) EulerLine(t Triangle) (Segment, bool) {
	if k.Degenerate(t) {
		return Segment{}, false
	}
	h := k.Orthocenter(t)
	o := k.Circumcenter(t)
	if Distance(h, o) <= k.Epsilon*longestSide(t) {
		return Segment{}, false
	}
	return Segment{Start: h, End: o}, true
}

// AltitudeFoot see Kernel.AltitudeFoot
func AltitudeFoot(t Triangle, vertex int) Point { return DefaultKernel.AltitudeFoot(t, vertex) }

// BisectorEndpoint see Kernel.BisectorEndpoint
func BisectorEndpoint(t Triangle, vertex int) Point {
	return DefaultKernel.BisectorEndpoint(t, vertex)
}

// PerpendicularBisector see Kernel.PerpendicularBisector
func PerpendicularBisector(t Triangle, side int) Segment {
	return DefaultKernel.PerpendicularBisector(t, side)
}
