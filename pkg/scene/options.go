package scene

import (
	"fmt"
	"strings"

	"github.com/philipparndt/gotriangle/pkg/geometry"
)

// NotablePoint selects one of the derived points
type NotablePoint int

const (
	None NotablePoint = iota
	Centroid
	Orthocenter
	Incenter
	Circumcenter
)

var notableNames = map[NotablePoint]string{
	None:         "none",
	Centroid:     "centroid",
	Orthocenter:  "orthocenter",
	Incenter:     "incenter",
	Circumcenter: "circumcenter",
}

// Aliases accepted by ParseNotablePoint, including the Spanish names used by
// the lesson material
var notableAliases = map[string]NotablePoint{
	"":             None,
	"none":         None,
	"centroid":     Centroid,
	"centroide":    Centroid,
	"g":            Centroid,
	"orthocenter":  Orthocenter,
	"ortocentro":   Orthocenter,
	"h":            Orthocenter,
	"incenter":     Incenter,
	"incentro":     Incenter,
	"i":            Incenter,
	"circumcenter": Circumcenter,
	"circuncentro": Circumcenter,
	"o":            Circumcenter,
}

func (p NotablePoint) String() string {
	if name, ok := notableNames[p]; ok {
		return name
	}
	return fmt.Sprintf("NotablePoint(%d)", int(p))
}

// ParseNotablePoint parses a notable point name
func ParseNotablePoint(s string) (NotablePoint, error) {
	if p, ok := notableAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return p, nil
	}
	return None, fmt.Errorf("unknown notable point %q", s)
}

// MarshalText implements encoding.TextMarshaler
func (p NotablePoint) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (p *NotablePoint) UnmarshalText(text []byte) error {
	parsed, err := ParseNotablePoint(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// Select returns the chosen derived point. It reports false for None and
// for points that only hold a fallback value because the triangle is
// degenerate.
func (p NotablePoint) Select(derived geometry.DerivedPointSet) (geometry.LabeledPoint, bool) {
	switch p {
	case Centroid:
		return derived.Centroid, true
	case Orthocenter:
		return derived.Orthocenter, !derived.Degenerate
	case Incenter:
		return derived.Incenter, !derived.Degenerate
	case Circumcenter:
		return derived.Circumcenter, !derived.Degenerate
	}
	return geometry.LabeledPoint{}, false
}

// NotablePoints lists the selectable points in display order
var NotablePoints = []NotablePoint{None, Centroid, Orthocenter, Incenter, Circumcenter}

// Options toggles the visual layers. No combination is invalid.
type Options struct {
	ShowMedians                bool
	ShowAltitudes              bool
	ShowBisectors              bool
	ShowPerpendicularBisectors bool
	ShowCircumcircle           bool
	ShowIncircle               bool
	ShowGrid                   bool
	ShowEulerLine              bool
	ShowLabels                 bool

	// Highlight selects the notable point drawn with a pulsing halo
	Highlight NotablePoint

	// GridStep is the spacing of the background grid in local units
	GridStep float64
}

// DefaultGridStep is the background grid spacing
const DefaultGridStep = 20.0

// DefaultOptions returns options with labels on and every other layer off
func DefaultOptions() Options {
	return Options{ShowLabels: true, GridStep: DefaultGridStep}
}
