package scene

import (
	"math"

	"github.com/philipparndt/gotriangle/pkg/geometry"
	"github.com/philipparndt/gotriangle/pkg/viewport"
)

// Sizes of the fixed decorations, in local units
const (
	DefaultHandleRadius = 8.0
	DefaultMarkerRadius = 5.0
	DefaultHaloRadius   = 14.0
	DefaultLabelOffset  = 18.0
	DefaultRightAngle   = 10.0

	// DefaultHaloPulse is the halo's largest radius relative to HaloRadius
	// while it pulses
	DefaultHaloPulse = 1.6
	// HoverScale enlarges the handle under the pointer
	HoverScale = 1.25

	// maxGridLines bounds the grid per axis; the step doubles until it fits
	maxGridLines = 200
)

// Composer turns a triangle and its derived points into a Scene
type Composer struct {
	Kernel       geometry.Kernel
	HandleRadius float64
	MarkerRadius float64
	HaloRadius   float64
	HaloPulse    float64
	LabelOffset  float64
	RightAngle   float64
}

// NewComposer creates a composer with default decoration sizes
func NewComposer(kernel geometry.Kernel) Composer {
	return Composer{
		Kernel:       kernel,
		HandleRadius: DefaultHandleRadius,
		MarkerRadius: DefaultMarkerRadius,
		HaloRadius:   DefaultHaloRadius,
		HaloPulse:    DefaultHaloPulse,
		LabelOffset:  DefaultLabelOffset,
		RightAngle:   DefaultRightAngle,
	}
}

// Visibility returns what the viewport has to contain for the given options:
// the circumcircle flag, every construction endpoint that can leave the
// vertices' bounding box and the handle and halo decorations at their
// largest size.
func (c Composer) Visibility(t geometry.Triangle, derived geometry.DerivedPointSet, opts Options) viewport.Visibility {
	vis := viewport.Visibility{
		Circumcircle: opts.ShowCircumcircle,
		Incircle:     opts.ShowIncircle,
	}

	for i, v := range t {
		vis.Decorations = append(vis.Decorations, geometry.Circle{Center: v.Point, Radius: c.HandleRadius * HoverScale})
		if opts.ShowAltitudes {
			vis.Extra = append(vis.Extra, c.Kernel.AltitudeFoot(t, i))
		}
		if opts.ShowPerpendicularBisectors {
			seg := c.Kernel.PerpendicularBisector(t, i)
			vis.Extra = append(vis.Extra, seg.Start, seg.End)
		}
		if opts.ShowLabels {
			vis.Extra = append(vis.Extra, c.labelPosition(t, i))
		}
	}

	if opts.ShowEulerLine {
		if seg, ok := c.Kernel.EulerLine(t); ok {
			vis.Extra = append(vis.Extra, seg.Start, seg.End)
		}
	}

	if p, ok := opts.Highlight.Select(derived); ok {
		vis.Extra = append(vis.Extra, p.Point)
		vis.Decorations = append(vis.Decorations, geometry.Circle{Center: p.Point, Radius: c.HaloRadius * math.Max(1, c.HaloPulse)})
		if opts.ShowLabels {
			vis.Extra = append(vis.Extra, c.highlightLabelPosition(p.Point))
		}
	}
	return vis
}

func (c Composer) highlightLabelPosition(p geometry.Point) geometry.Point {
	return p.Plus(geometry.NewPoint(c.HaloRadius, -c.HaloRadius))
}

// Compose returns the primitives back to front: grid, circumscribed circle,
// inscribed circle, perpendicular bisectors, medians, altitudes with their
// right-angle markers, angle bisectors, Euler line, triangle body,
// highlighted point, vertex handles, labels.
func (c Composer) Compose(t geometry.Triangle, derived geometry.DerivedPointSet, opts Options, region viewport.Region) Scene {
	sc := Scene{
		Triangle: t,
		Derived:  derived,
		Options:  opts,
		Region:   region,
	}

	if opts.ShowGrid {
		sc.Primitives = append(sc.Primitives, c.grid(region, opts.GridStep)...)
	}

	if opts.ShowCircumcircle {
		sc.Primitives = append(sc.Primitives, Primitive{
			Kind:   KindCircle,
			Layer:  LayerCircumcircle,
			Points: []geometry.Point{derived.Circumcenter.Point},
			Radius: derived.Circumradius,
			Vertex: -1,
		})
	}

	if opts.ShowIncircle && derived.Inradius > 0 {
		sc.Primitives = append(sc.Primitives, Primitive{
			Kind:   KindCircle,
			Layer:  LayerIncircle,
			Points: []geometry.Point{derived.Incenter.Point},
			Radius: derived.Inradius,
			Vertex: -1,
		})
	}

	if opts.ShowPerpendicularBisectors {
		for i := range t {
			sc.Primitives = append(sc.Primitives, segment(LayerPerpendicularBisectors, c.Kernel.PerpendicularBisector(t, i)))
		}
	}

	if opts.ShowMedians {
		for i := range t {
			sc.Primitives = append(sc.Primitives, segment(LayerMedians, c.Kernel.Median(t, i)))
		}
	}

	if opts.ShowAltitudes {
		for i := range t {
			altitude := c.Kernel.Altitude(t, i)
			sc.Primitives = append(sc.Primitives, segment(LayerAltitudes, altitude))
			if marker, ok := c.rightAngle(t, i, altitude); ok {
				sc.Primitives = append(sc.Primitives, marker)
			}
		}
	}

	if opts.ShowBisectors {
		for i := range t {
			sc.Primitives = append(sc.Primitives, segment(LayerBisectors, c.Kernel.Bisector(t, i)))
		}
	}

	if opts.ShowEulerLine {
		if seg, ok := c.Kernel.EulerLine(t); ok {
			sc.Primitives = append(sc.Primitives, segment(LayerEulerLine, seg))
		}
	}

	points := t.Points()
	sc.Primitives = append(sc.Primitives, Primitive{
		Kind:   KindPolygon,
		Layer:  LayerTriangle,
		Points: points[:],
		Vertex: -1,
	})

	highlight, hasHighlight := opts.Highlight.Select(derived)
	if hasHighlight {
		sc.Primitives = append(sc.Primitives,
			Primitive{
				Kind:   KindHalo,
				Layer:  LayerHighlight,
				Points: []geometry.Point{highlight.Point},
				Radius: c.HaloRadius,
				Text:   highlight.Label,
				Vertex: -1,
			},
			Primitive{
				Kind:   KindMarker,
				Layer:  LayerHighlight,
				Points: []geometry.Point{highlight.Point},
				Radius: c.MarkerRadius,
				Text:   highlight.Label,
				Vertex: -1,
			},
		)
	}

	for i, v := range t {
		sc.Primitives = append(sc.Primitives, Primitive{
			Kind:   KindHandle,
			Layer:  LayerVertices,
			Points: []geometry.Point{v.Point},
			Radius: c.HandleRadius,
			Text:   v.Label,
			Vertex: i,
		})
	}

	if opts.ShowLabels {
		for i, v := range t {
			sc.Primitives = append(sc.Primitives, Primitive{
				Kind:   KindLabel,
				Layer:  LayerLabels,
				Points: []geometry.Point{c.labelPosition(t, i)},
				Text:   v.Label,
				Vertex: i,
			})
		}
		if hasHighlight {
			sc.Primitives = append(sc.Primitives, Primitive{
				Kind:   KindLabel,
				Layer:  LayerLabels,
				Points: []geometry.Point{c.highlightLabelPosition(highlight.Point)},
				Text:   highlight.Label,
				Vertex: -1,
			})
		}
	}

	return sc
}

func segment(layer Layer, s geometry.Segment) Primitive {
	return Primitive{
		Kind:   KindSegment,
		Layer:  layer,
		Points: []geometry.Point{s.Start, s.End},
		Vertex: -1,
	}
}

// labelPosition places a vertex label outside the triangle, away from the
// centroid. Vertices on top of the centroid get their label above.
func (c Composer) labelPosition(t geometry.Triangle, vertex int) geometry.Point {
	v := t[vertex].Point
	away := v.Minus(geometry.Centroid(t))
	length := away.Magnitude()
	if length <= c.Kernel.Epsilon {
		return v.Plus(geometry.NewPoint(0, -c.LabelOffset))
	}
	return v.Plus(away.Times(c.LabelOffset / length))
}

// rightAngle returns the square marker at an altitude's foot. The marker
// follows the opposite side towards its farther end so it stays on the
// side even when the foot is close to one end.
func (c Composer) rightAngle(t geometry.Triangle, vertex int, altitude geometry.Segment) (Primitive, bool) {
	foot := altitude.End
	up := altitude.Start.Minus(foot)
	height := up.Magnitude()
	if height <= c.Kernel.Epsilon {
		return Primitive{}, false
	}

	j, l := geometry.Others(vertex)
	toward := t[j].Point
	if geometry.Distance(foot, t[l].Point) > geometry.Distance(foot, toward) {
		toward = t[l].Point
	}
	along := toward.Minus(foot)
	reach := along.Magnitude()
	if reach <= c.Kernel.Epsilon {
		return Primitive{}, false
	}

	size := math.Min(c.RightAngle, math.Min(height, reach)/2)
	u := up.Times(size / height)
	w := along.Times(size / reach)

	return Primitive{
		Kind:  KindRightAngle,
		Layer: LayerAltitudes,
		Points: []geometry.Point{
			foot.Plus(w),
			foot.Plus(w).Plus(u),
			foot.Plus(u),
		},
		Vertex: vertex,
	}, true
}

// grid returns lines at multiples of step covering the region
func (c Composer) grid(region viewport.Region, step float64) []Primitive {
	if step <= 0 || math.IsNaN(step) {
		step = DefaultGridStep
	}
	for region.Width/step > maxGridLines || region.Height/step > maxGridLines {
		step *= 2
	}

	var lines []Primitive
	for x := math.Ceil(region.MinX/step) * step; x <= region.MaxX(); x += step {
		lines = append(lines, Primitive{
			Kind:   KindGridLine,
			Layer:  LayerGrid,
			Points: []geometry.Point{geometry.NewPoint(x, region.MinY), geometry.NewPoint(x, region.MaxY())},
			Vertex: -1,
		})
	}
	for y := math.Ceil(region.MinY/step) * step; y <= region.MaxY(); y += step {
		lines = append(lines, Primitive{
			Kind:   KindGridLine,
			Layer:  LayerGrid,
			Points: []geometry.Point{geometry.NewPoint(region.MinX, y), geometry.NewPoint(region.MaxX(), y)},
			Vertex: -1,
		})
	}
	return lines
}
