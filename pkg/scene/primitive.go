// Package scene sequences kernel outputs into an ordered list of drawable
// primitives. It performs no geometry of its own beyond placing markers and
// labels.
package scene

import (
	"github.com/philipparndt/gotriangle/pkg/geometry"
	"github.com/philipparndt/gotriangle/pkg/viewport"
)

// Kind tells a renderer how to draw a primitive
type Kind int

const (
	// KindGridLine is a background grid line, Points holds both ends
	KindGridLine Kind = iota
	// KindCircle is an outlined circle around Points[0]
	KindCircle
	// KindSegment is a line segment, Points holds both ends
	KindSegment
	// KindRightAngle is an open polyline marking a right angle
	KindRightAngle
	// KindPolygon is the filled and stroked triangle body
	KindPolygon
	// KindHalo is the pulsing halo behind the highlighted point
	KindHalo
	// KindMarker is a filled dot
	KindMarker
	// KindHandle is a draggable vertex handle
	KindHandle
	// KindLabel is text anchored at Points[0]
	KindLabel
)

func (k Kind) String() string {
	switch k {
	case KindGridLine:
		return "grid-line"
	case KindCircle:
		return "circle"
	case KindSegment:
		return "segment"
	case KindRightAngle:
		return "right-angle"
	case KindPolygon:
		return "polygon"
	case KindHalo:
		return "halo"
	case KindMarker:
		return "marker"
	case KindHandle:
		return "handle"
	case KindLabel:
		return "label"
	}
	return "unknown"
}

// Layer is the z-order slot of a primitive, back to front
type Layer int

const (
	LayerGrid Layer = iota
	LayerCircumcircle
	LayerIncircle
	LayerPerpendicularBisectors
	LayerMedians
	LayerAltitudes
	LayerBisectors
	LayerEulerLine
	LayerTriangle
	LayerHighlight
	LayerVertices
	LayerLabels
)

var layerNames = [...]string{
	"grid",
	"circumcircle",
	"incircle",
	"perpendicular-bisectors",
	"medians",
	"altitudes",
	"bisectors",
	"euler-line",
	"triangle",
	"highlight",
	"vertices",
	"labels",
}

func (l Layer) String() string {
	if l >= 0 && int(l) < len(layerNames) {
		return layerNames[l]
	}
	return "unknown"
}

// Primitive is one drawable element of the scene, in local coordinates
type Primitive struct {
	Kind   Kind
	Layer  Layer
	Points []geometry.Point
	Radius float64
	Text   string
	// Vertex is the triangle vertex a handle or label belongs to, -1 if none
	Vertex int
}

// Scene is the composed figure
type Scene struct {
	Triangle   geometry.Triangle
	Derived    geometry.DerivedPointSet
	Options    Options
	Region     viewport.Region
	Primitives []Primitive
}

// Layer returns the primitives of one layer, in drawing order
func (s Scene) Layer(layer Layer) []Primitive {
	var result []Primitive
	for _, p := range s.Primitives {
		if p.Layer == layer {
			result = append(result, p)
		}
	}
	return result
}

// Handles returns the vertex handles, which are always hit-testable
func (s Scene) Handles() []Primitive {
	return s.Layer(LayerVertices)
}
