package scene

import (
	"testing"

	"github.com/philipparndt/gotriangle/pkg/geometry"
	"github.com/philipparndt/gotriangle/pkg/viewport"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allOptions() Options {
	return Options{
		ShowMedians:                true,
		ShowAltitudes:              true,
		ShowBisectors:              true,
		ShowPerpendicularBisectors: true,
		ShowCircumcircle:           true,
		ShowIncircle:               true,
		ShowGrid:                   true,
		ShowEulerLine:              true,
		ShowLabels:                 true,
		Highlight:                  Orthocenter,
		GridStep:                   DefaultGridStep,
	}
}

// optionsFromMask enumerates every combination of the boolean flags
func optionsFromMask(mask int, highlight NotablePoint) Options {
	flag := func(bit int) bool { return mask&(1<<bit) != 0 }
	return Options{
		ShowMedians:                flag(0),
		ShowAltitudes:              flag(1),
		ShowBisectors:              flag(2),
		ShowPerpendicularBisectors: flag(3),
		ShowCircumcircle:           flag(4),
		ShowIncircle:               flag(5),
		ShowGrid:                   flag(6),
		ShowEulerLine:              flag(7),
		ShowLabels:                 flag(8),
		Highlight:                  highlight,
		GridStep:                   DefaultGridStep,
	}
}

func compose(t geometry.Triangle, opts Options) Scene {
	kernel := geometry.DefaultKernel
	c := NewComposer(kernel)
	derived := kernel.Derive(t)
	region := viewport.DefaultCalculator().Compute(t, c.Visibility(t, derived, opts))
	return c.Compose(t, derived, opts, region)
}

func TestComposeLayerOrder(t *testing.T) {
	sc := compose(geometry.DefaultTriangle(), allOptions())

	require.NotEmpty(t, sc.Primitives)
	for i := 1; i < len(sc.Primitives); i++ {
		assert.LessOrEqual(t, sc.Primitives[i-1].Layer, sc.Primitives[i].Layer,
			"primitive %d (%s) drawn before %d (%s)", i-1, sc.Primitives[i-1].Layer, i, sc.Primitives[i].Layer)
	}

	// Handles sit above everything but labels
	last := sc.Primitives[len(sc.Primitives)-1]
	assert.Equal(t, LayerLabels, last.Layer)
}

func TestComposeDefaultOptions(t *testing.T) {
	sc := compose(geometry.DefaultTriangle(), DefaultOptions())

	assert.Len(t, sc.Layer(LayerTriangle), 1)
	assert.Len(t, sc.Handles(), 3)
	assert.Len(t, sc.Layer(LayerLabels), 3)
	assert.Empty(t, sc.Layer(LayerHighlight))
	assert.Empty(t, sc.Layer(LayerGrid))
	assert.Empty(t, sc.Layer(LayerMedians))
}

func TestComposeHandlesCarryVertexIndex(t *testing.T) {
	tri := geometry.DefaultTriangle()
	sc := compose(tri, DefaultOptions())

	for i, h := range sc.Handles() {
		assert.Equal(t, i, h.Vertex)
		assert.Equal(t, tri[i].Label, h.Text)
		assert.Equal(t, tri[i].Point, h.Points[0])
		assert.Equal(t, DefaultHandleRadius, h.Radius)
	}
}

func TestComposeConstructionCounts(t *testing.T) {
	sc := compose(geometry.DefaultTriangle(), allOptions())

	assert.Len(t, sc.Layer(LayerMedians), 3)
	assert.Len(t, sc.Layer(LayerBisectors), 3)
	assert.Len(t, sc.Layer(LayerPerpendicularBisectors), 3)
	// Three altitudes plus three right-angle markers
	assert.Len(t, sc.Layer(LayerAltitudes), 6)
	assert.Len(t, sc.Layer(LayerCircumcircle), 1)
	assert.Len(t, sc.Layer(LayerIncircle), 1)
	assert.Len(t, sc.Layer(LayerHighlight), 2)
	// The default triangle is isosceles, not equilateral
	assert.Len(t, sc.Layer(LayerEulerLine), 1)
}

func TestComposeRightAngleMarkers(t *testing.T) {
	tri := geometry.DefaultTriangle()
	sc := compose(tri, Options{ShowAltitudes: true})

	for _, p := range sc.Layer(LayerAltitudes) {
		if p.Kind != KindRightAngle {
			continue
		}
		require.Len(t, p.Points, 3)
		foot := geometry.AltitudeFoot(tri, p.Vertex)
		first := p.Points[0].Minus(foot)
		last := p.Points[2].Minus(foot)
		// The marker legs are perpendicular
		assert.InDelta(t, 0, first.X*last.X+first.Y*last.Y, 1e-6)
	}
}

func TestComposeHighlight(t *testing.T) {
	tri := geometry.DefaultTriangle()
	derived := geometry.Derive(tri)

	for _, np := range []NotablePoint{Centroid, Orthocenter, Incenter, Circumcenter} {
		opts := DefaultOptions()
		opts.Highlight = np
		sc := compose(tri, opts)

		highlight := sc.Layer(LayerHighlight)
		require.Len(t, highlight, 2, np.String())
		assert.Equal(t, KindHalo, highlight[0].Kind)
		assert.Equal(t, KindMarker, highlight[1].Kind)

		expected, ok := np.Select(derived)
		require.True(t, ok)
		assert.Equal(t, expected.Point, highlight[1].Points[0])
		assert.Equal(t, expected.Label, highlight[1].Text)
	}
}

func TestComposeDegenerateDropsHighlight(t *testing.T) {
	tri := geometry.DefaultTriangle().WithVertex(0, geometry.NewPoint(200, 280))

	for _, np := range []NotablePoint{Orthocenter, Incenter, Circumcenter} {
		opts := allOptions()
		opts.Highlight = np
		sc := compose(tri, opts)

		assert.Empty(t, sc.Layer(LayerHighlight), np.String())
		assert.Empty(t, sc.Layer(LayerEulerLine))
		assert.Empty(t, sc.Layer(LayerIncircle))
		assert.Len(t, sc.Handles(), 3)
	}

	opts := DefaultOptions()
	opts.Highlight = Centroid
	assert.Len(t, compose(tri, opts).Layer(LayerHighlight), 2)
}

func TestComposeEquilateralHasNoEulerLine(t *testing.T) {
	tri := geometry.NewTriangle(
		geometry.NewPoint(0, 0),
		geometry.NewPoint(100, 0),
		geometry.NewPoint(50, 86.60254037844386),
	)
	opts := DefaultOptions()
	opts.ShowEulerLine = true

	assert.Empty(t, compose(tri, opts).Layer(LayerEulerLine))
}

func TestComposeGridAligned(t *testing.T) {
	sc := compose(geometry.DefaultTriangle(), Options{ShowGrid: true, GridStep: 20})

	lines := sc.Layer(LayerGrid)
	require.NotEmpty(t, lines)
	for _, l := range lines {
		require.Len(t, l.Points, 2)
		if l.Points[0].X == l.Points[1].X {
			assert.InDelta(t, 0, mod(l.Points[0].X, 20), 1e-9)
		} else {
			assert.InDelta(t, 0, mod(l.Points[0].Y, 20), 1e-9)
		}
		assert.True(t, sc.Region.Contains(l.Points[0], 1e-9))
		assert.True(t, sc.Region.Contains(l.Points[1], 1e-9))
	}
}

func TestComposeGridIsBounded(t *testing.T) {
	c := NewComposer(geometry.DefaultKernel)
	region := viewport.Region{MinX: 0, MinY: 0, Width: 1e6, Height: 10}

	lines := c.grid(region, 1)
	assert.LessOrEqual(t, len(lines), 2*(maxGridLines+1)+11)
}

func mod(v, step float64) float64 {
	r := v - step*float64(int(v/step))
	if r < 0 {
		r += step
	}
	if step-r < 1e-9 {
		return 0
	}
	return r
}

func assertInside(t *testing.T, region viewport.Region, p Primitive) {
	t.Helper()
	switch p.Kind {
	case KindCircle:
		assert.True(t, region.ContainsCircle(geometry.Circle{Center: p.Points[0], Radius: p.Radius}, 1e-6),
			"%s circle leaves the region", p.Layer)
	default:
		for _, pt := range p.Points {
			assert.True(t, region.Contains(pt, 1e-6), "%s %s at %s leaves the region", p.Layer, p.Kind, geometry.FormatPoint(pt))
		}
	}
}

func TestComposeStaysInsideRegion(t *testing.T) {
	triangles := []geometry.Triangle{
		geometry.DefaultTriangle(),
		// Obtuse: altitude feet and the orthocenter lie outside
		geometry.NewTriangle(geometry.NewPoint(0, 0), geometry.NewPoint(300, 0), geometry.NewPoint(20, 40)),
		// Right angle at B
		geometry.NewTriangle(geometry.NewPoint(0, 0), geometry.NewPoint(0, 100), geometry.NewPoint(150, 100)),
		// Collinear
		geometry.DefaultTriangle().WithVertex(0, geometry.NewPoint(200, 280)),
	}

	for _, tri := range triangles {
		for mask := 0; mask < 1<<9; mask++ {
			for _, np := range NotablePoints {
				sc := compose(tri, optionsFromMask(mask, np))
				for _, p := range sc.Primitives {
					assertInside(t, sc.Region, p)
				}
			}
		}
	}
}

func TestComposeIsDeterministic(t *testing.T) {
	tri := geometry.DefaultTriangle()

	assert.Equal(t, compose(tri, allOptions()), compose(tri, allOptions()))
}

func TestComposeKeepsDecorationsInside(t *testing.T) {
	kernel := geometry.DefaultKernel
	c := NewComposer(kernel)
	calc := viewport.NewCalculator(1, kernel)
	tri := geometry.NewTriangle(geometry.NewPoint(0, 0), geometry.NewPoint(300, 0), geometry.NewPoint(150, 200))

	for _, np := range NotablePoints {
		opts := DefaultOptions()
		opts.Highlight = np
		derived := kernel.Derive(tri)
		region := calc.Compute(tri, c.Visibility(tri, derived, opts))
		sc := c.Compose(tri, derived, opts, region)

		for _, p := range sc.Primitives {
			var reach float64
			switch p.Kind {
			case KindHandle:
				reach = p.Radius * HoverScale
			case KindHalo:
				reach = p.Radius * DefaultHaloPulse
			default:
				continue
			}
			circle := geometry.Circle{Center: p.Points[0], Radius: reach}
			assert.True(t, region.ContainsCircle(circle, 1e-9), "%s %s clipped", np, p.Kind)
		}
	}
}
