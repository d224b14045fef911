package geometry

// Circle is a circle in local coordinates
type Circle struct {
	Center Point
	Radius float64
}

// Contains reports whether p lies inside or on the circle, with tolerance
func (c Circle) Contains(p Point, tolerance float64) bool {
	return Distance(c.Center, p) <= c.Radius+tolerance
}

// Circumcircle returns the circumscribed circle. For a degenerate triangle
// it is centered at the centroid and still passes through (or encloses)
// every vertex.
func (k Kernel) Circumcircle(t Triangle) Circle {
	return Circle{Center: k.Circumcenter(t), Radius: k.Circumradius(t)}
}

// Incircle returns the inscribed circle. For a degenerate triangle it has
// radius 0.
func (k Kernel) Incircle(t Triangle) Circle {
	return Circle{Center: k.Incenter(t), Radius: k.Inradius(t)}
}

// Circumcircle see Kernel.Circumcircle
func Circumcircle(t Triangle) Circle { return DefaultKernel.Circumcircle(t) }

// Incircle see Kernel.Incircle
func Incircle(t Triangle) Circle { return DefaultKernel.Incircle(t) }
