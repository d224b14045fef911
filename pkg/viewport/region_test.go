package viewport

import (
	"testing"

	"github.com/philipparndt/gotriangle/pkg/geometry"
	"github.com/stretchr/testify/assert"
)

func TestComputeVerticesOnly(t *testing.T) {
	region := DefaultCalculator().Compute(geometry.DefaultTriangle(), Visibility{})

	assert.Equal(t, Region{MinX: 40, MinY: 20, Width: 320, Height: 300}, region)
}

func TestComputeWithCircumcircle(t *testing.T) {
	tri := geometry.DefaultTriangle()
	region := DefaultCalculator().Compute(tri, Visibility{Circumcircle: true})

	circle := geometry.Circumcircle(tri)
	assert.True(t, region.ContainsCircle(circle, 1e-9))
	assert.InDelta(t, circle.Center.X-circle.Radius-DefaultPadding, region.MinX, 1e-9)
	assert.InDelta(t, circle.Center.X+circle.Radius+DefaultPadding, region.MaxX(), 1e-9)
	// The apex A is the topmost point of the circle
	assert.InDelta(t, 60-DefaultPadding, region.MinY, 1e-9)
}

func TestComputeIncircleDoesNotExtend(t *testing.T) {
	tri := geometry.DefaultTriangle()
	calc := DefaultCalculator()

	assert.Equal(t, calc.Compute(tri, Visibility{}), calc.Compute(tri, Visibility{Incircle: true}))
}

func TestComputeExtraPoints(t *testing.T) {
	tri := geometry.DefaultTriangle()
	far := geometry.NewPoint(1000, -500)
	region := DefaultCalculator().Compute(tri, Visibility{Extra: []geometry.Point{far}})

	assert.True(t, region.Contains(far, 0))
	assert.InDelta(t, 1000+DefaultPadding, region.MaxX(), 1e-9)
	assert.InDelta(t, -500-DefaultPadding, region.MinY, 1e-9)
}

func TestComputeTracksTriangle(t *testing.T) {
	calc := DefaultCalculator()
	tri := geometry.DefaultTriangle()
	before := calc.Compute(tri, Visibility{})

	moved := tri.WithVertex(0, geometry.NewPoint(600, -100))
	after := calc.Compute(moved, Visibility{})

	assert.NotEqual(t, before, after)
	for _, v := range moved {
		assert.True(t, after.Contains(v.Point, 0))
	}
}

func TestComputeCoincidentVertices(t *testing.T) {
	tri := geometry.NewTriangle(geometry.NewPoint(5, 5), geometry.NewPoint(5, 5), geometry.NewPoint(5, 5))

	region := NewCalculator(0, geometry.DefaultKernel).Compute(tri, Visibility{Circumcircle: true})
	assert.Greater(t, region.Width, 0.0)
	assert.Greater(t, region.Height, 0.0)
	assert.True(t, region.Contains(geometry.NewPoint(5, 5), 0))
}

func TestComputeDegenerateCircumcircle(t *testing.T) {
	tri := geometry.DefaultTriangle().WithVertex(0, geometry.NewPoint(200, 280))
	region := DefaultCalculator().Compute(tri, Visibility{Circumcircle: true})

	assert.True(t, region.ContainsCircle(geometry.Circumcircle(tri), 1e-9))
}

func TestNewCalculatorRejectsNegativePadding(t *testing.T) {
	assert.Equal(t, DefaultPadding, NewCalculator(-5, geometry.DefaultKernel).Padding)
}

func TestViewBox(t *testing.T) {
	region := Region{MinX: 40, MinY: 20, Width: 320, Height: 300.5}

	assert.Equal(t, "40 20 320 300.5", region.ViewBox())
}

func TestComputeGrowsForDecorations(t *testing.T) {
	tri := geometry.DefaultTriangle()
	calc := NewCalculator(1, geometry.DefaultKernel)
	handle := geometry.Circle{Center: tri[0].Point, Radius: 10}
	halo := geometry.Circle{Center: geometry.NewPoint(80, 280), Radius: 22}

	region := calc.Compute(tri, Visibility{Decorations: []geometry.Circle{handle, halo}})

	assert.True(t, region.ContainsCircle(handle, 1e-9))
	assert.True(t, region.ContainsCircle(halo, 1e-9))
	assert.InDelta(t, 50.0, region.MinY, 1e-9)
	assert.InDelta(t, 58.0, region.MinX, 1e-9)
	// The right side only needs the padding
	assert.InDelta(t, 321.0, region.MaxX(), 1e-9)
}

func TestComputeDecorationsWithinPadding(t *testing.T) {
	tri := geometry.DefaultTriangle()
	calc := DefaultCalculator()
	small := []geometry.Circle{{Center: tri[1].Point, Radius: DefaultPadding / 2}}

	assert.Equal(t, calc.Compute(tri, Visibility{}), calc.Compute(tri, Visibility{Decorations: small}))
}
