// Package viewport derives the view region that shows a triangle together
// with its visible constructions, and maps between screen and local
// coordinates.
package viewport

import (
	"fmt"
	"math"

	"github.com/jbeda/geom"
	"github.com/philipparndt/gotriangle/pkg/geometry"
)

// DefaultPadding is the margin added around the visible geometry, in local
// units
const DefaultPadding = 40.0

// minExtent keeps the region from collapsing when all vertices coincide and
// there is no padding
const minExtent = 1.0

// Region is the window onto the figure's local coordinate space
type Region struct {
	MinX, MinY    float64
	Width, Height float64
}

// MaxX returns the right edge
func (r Region) MaxX() float64 { return r.MinX + r.Width }

// MaxY returns the bottom edge
func (r Region) MaxY() float64 { return r.MinY + r.Height }

// Center returns the middle of the region
func (r Region) Center() geometry.Point {
	return geometry.NewPoint(r.MinX+r.Width/2, r.MinY+r.Height/2)
}

// Rect returns the region as a rectangle
func (r Region) Rect() geom.Rect {
	return geom.Rect{
		Min: geom.Coord{X: r.MinX, Y: r.MinY},
		Max: geom.Coord{X: r.MaxX(), Y: r.MaxY()},
	}
}

// Contains reports whether p lies inside the region, with tolerance
func (r Region) Contains(p geometry.Point, tolerance float64) bool {
	return p.X >= r.MinX-tolerance && p.X <= r.MaxX()+tolerance &&
		p.Y >= r.MinY-tolerance && p.Y <= r.MaxY()+tolerance
}

// ContainsCircle reports whether the whole circle lies inside the region
func (r Region) ContainsCircle(c geometry.Circle, tolerance float64) bool {
	return c.Center.X-c.Radius >= r.MinX-tolerance && c.Center.X+c.Radius <= r.MaxX()+tolerance &&
		c.Center.Y-c.Radius >= r.MinY-tolerance && c.Center.Y+c.Radius <= r.MaxY()+tolerance
}

// ViewBox formats the region as an SVG viewBox attribute value
func (r Region) ViewBox() string {
	return fmt.Sprintf("%g %g %g %g", r.MinX, r.MinY, r.Width, r.Height)
}

// Visibility describes which geometry beyond the vertices must be in view
type Visibility struct {
	// Circumcircle extends the region by the circumscribed circle. The
	// inscribed circle never needs to: it lies within the triangle.
	Circumcircle bool
	Incircle     bool

	// Extra holds further points that must be visible, such as altitude
	// feet outside an obtuse triangle or the ends of perpendicular bisectors
	Extra []geometry.Point

	// Decorations are fixed-size shapes drawn around visible points, such
	// as vertex handles. They must fit in the padded region; when the
	// padding is too small for them the region grows just enough.
	Decorations []geometry.Circle
}

// Calculator computes view regions
type Calculator struct {
	Padding float64
	Kernel  geometry.Kernel
}

// NewCalculator creates a calculator with the given padding and kernel
func NewCalculator(padding float64, kernel geometry.Kernel) Calculator {
	if padding < 0 || math.IsNaN(padding) {
		padding = DefaultPadding
	}
	return Calculator{Padding: padding, Kernel: kernel}
}

// DefaultCalculator returns a calculator with default padding
func DefaultCalculator() Calculator {
	return NewCalculator(DefaultPadding, geometry.DefaultKernel)
}

// Compute returns the bounding box of the vertices, extended by the visible
// circles and extra points, plus padding on all sides. It must run whenever
// the triangle or the visibility changes.
func (c Calculator) Compute(t geometry.Triangle, vis Visibility) Region {
	bounds := t.Bounds()

	if vis.Circumcircle {
		circle := c.Kernel.Circumcircle(t)
		bounds.ExpandToContainRect(geom.Rect{
			Min: circle.Center.Minus(geom.Coord{X: circle.Radius, Y: circle.Radius}),
			Max: circle.Center.Plus(geom.Coord{X: circle.Radius, Y: circle.Radius}),
		})
	}

	for _, p := range vis.Extra {
		if geometry.IsFinite(p) {
			bounds.ExpandToContainCoord(p)
		}
	}

	region := Region{
		MinX:   bounds.Min.X - c.Padding,
		MinY:   bounds.Min.Y - c.Padding,
		Width:  bounds.Max.X - bounds.Min.X + 2*c.Padding,
		Height: bounds.Max.Y - bounds.Min.Y + 2*c.Padding,
	}

	for _, d := range vis.Decorations {
		if geometry.IsFinite(d.Center) && d.Radius > 0 {
			region = region.expandTo(d)
		}
	}

	if region.Width < minExtent {
		region.MinX -= (minExtent - region.Width) / 2
		region.Width = minExtent
	}
	if region.Height < minExtent {
		region.MinY -= (minExtent - region.Height) / 2
		region.Height = minExtent
	}
	return region
}

// expandTo grows the region to contain the circle
func (r Region) expandTo(c geometry.Circle) Region {
	minX := math.Min(r.MinX, c.Center.X-c.Radius)
	minY := math.Min(r.MinY, c.Center.Y-c.Radius)
	maxX := math.Max(r.MaxX(), c.Center.X+c.Radius)
	maxY := math.Max(r.MaxY(), c.Center.Y+c.Radius)
	return Region{MinX: minX, MinY: minY, Width: maxX - minX, Height: maxY - minY}
}
