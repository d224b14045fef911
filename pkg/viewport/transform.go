package viewport

import (
	"errors"
	"math"

	"github.com/philipparndt/gotriangle/pkg/geometry"
)

// ErrSingular is returned when inverting a transform that collapses the plane
var ErrSingular = errors.New("transform is not invertible")

// Affine is a 2D affine transform stored as a 2x3 matrix in row-major order:
//
//	| A  B  C |
//	| D  E  F |
//
// which maps
//
//	x' = A*x + B*y + C
//	y' = D*x + E*y + F
type Affine struct {
	A, B, C float64
	D, E, F float64
}

// Identity returns the transform that maps every point onto itself
func Identity() Affine {
	return Affine{A: 1, E: 1}
}

// Translate returns a translation by (x, y)
func Translate(x, y float64) Affine {
	return Affine{A: 1, C: x, E: 1, F: y}
}

// Scale returns a scaling about the origin
func Scale(sx, sy float64) Affine {
	return Affine{A: sx, E: sy}
}

// Multiply returns m·other: the result applies other first, then m
func (m Affine) Multiply(other Affine) Affine {
	return Affine{
		A: m.A*other.A + m.B*other.D,
		B: m.A*other.B + m.B*other.E,
		C: m.A*other.C + m.B*other.F + m.C,
		D: m.D*other.A + m.E*other.D,
		E: m.D*other.B + m.E*other.E,
		F: m.D*other.C + m.E*other.F + m.F,
	}
}

// Apply transforms a point
func (m Affine) Apply(p geometry.Point) geometry.Point {
	return geometry.Point{
		X: m.A*p.X + m.B*p.Y + m.C,
		Y: m.D*p.X + m.E*p.Y + m.F,
	}
}

// ApplyDistance transforms a length, assuming a uniform scale
func (m Affine) ApplyDistance(d float64) float64 {
	return d * math.Sqrt(math.Abs(m.Determinant()))
}

// Determinant returns the area scale factor of the transform
func (m Affine) Determinant() float64 {
	return m.A*m.E - m.B*m.D
}

// Invert returns the inverse transform
func (m Affine) Invert() (Affine, error) {
	det := m.Determinant()
	if math.Abs(det) < 1e-12 || math.IsNaN(det) {
		return Affine{}, ErrSingular
	}

	inv := 1.0 / det
	return Affine{
		A: m.E * inv,
		B: -m.B * inv,
		C: (m.B*m.F - m.C*m.E) * inv,
		D: -m.D * inv,
		E: m.A * inv,
		F: (m.C*m.D - m.A*m.F) * inv,
	}, nil
}

// Fit returns the local-to-screen transform that shows region on a screen of
// the given size. Like an SVG viewBox with preserveAspectRatio="xMidYMid
// meet", the region is scaled uniformly to fit and centered along the axis
// with room to spare.
func Fit(region Region, screenWidth, screenHeight float64) Affine {
	if screenWidth <= 0 || screenHeight <= 0 || region.Width <= 0 || region.Height <= 0 {
		return Translate(-region.MinX, -region.MinY)
	}

	scale := math.Min(screenWidth/region.Width, screenHeight/region.Height)
	offsetX := (screenWidth - region.Width*scale) / 2
	offsetY := (screenHeight - region.Height*scale) / 2

	return Translate(offsetX, offsetY).
		Multiply(Scale(scale, scale)).
		Multiply(Translate(-region.MinX, -region.MinY))
}

// ScreenMapping converts between screen space (pointer events, pixels) and
// the figure's local space
type ScreenMapping struct {
	toScreen Affine
	toLocal  Affine
}

// NewScreenMapping creates a mapping from a local-to-screen transform. A
// singular transform yields the identity mapping.
func NewScreenMapping(toScreen Affine) ScreenMapping {
	toLocal, err := toScreen.Invert()
	if err != nil {
		return ScreenMapping{toScreen: Identity(), toLocal: Identity()}
	}
	return ScreenMapping{toScreen: toScreen, toLocal: toLocal}
}

// IdentityMapping returns a mapping where screen and local space coincide
func IdentityMapping() ScreenMapping {
	return ScreenMapping{toScreen: Identity(), toLocal: Identity()}
}

// FitMapping returns the mapping for a region shown on a screen of the given
// size
func FitMapping(region Region, screenWidth, screenHeight float64) ScreenMapping {
	return NewScreenMapping(Fit(region, screenWidth, screenHeight))
}

// ScreenToLocal converts screen coordinates to local coordinates
func (m ScreenMapping) ScreenToLocal(p geometry.Point) geometry.Point {
	return m.toLocal.Apply(p)
}

// LocalToScreen converts local coordinates to screen coordinates
func (m ScreenMapping) LocalToScreen(p geometry.Point) geometry.Point {
	return m.toScreen.Apply(p)
}

// LocalDistance converts a screen distance to a local one
func (m ScreenMapping) LocalDistance(d float64) float64 {
	return m.toLocal.ApplyDistance(d)
}

// ScreenDistance converts a local distance to a screen one
func (m ScreenMapping) ScreenDistance(d float64) float64 {
	return m.toScreen.ApplyDistance(d)
}

// ToScreen returns the local-to-screen transform
func (m ScreenMapping) ToScreen() Affine {
	return m.toScreen
}
