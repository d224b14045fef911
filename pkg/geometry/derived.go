package geometry

// Labels of the derived points
const (
	CentroidLabel     = "G"
	IncenterLabel     = "I"
	CircumcenterLabel = "O"
	OrthocenterLabel  = "H"
)

// DerivedPointSet holds the notable points of one triangle. It is recomputed
// from scratch for every triangle and never updated in place.
type DerivedPointSet struct {
	Centroid     LabeledPoint
	Incenter     LabeledPoint
	Circumcenter LabeledPoint
	Orthocenter  LabeledPoint

	Circumradius float64
	Inradius     float64

	// Degenerate is set when the triangle is collinear and the incenter,
	// circumcenter and orthocenter hold fallback values
	Degenerate bool
}

// Derive computes all notable points of the triangle
func (k Kernel) Derive(t Triangle) DerivedPointSet {
	centroid := Centroid(t)
	circumcenter := k.Circumcenter(t)
	return DerivedPointSet{
		Centroid:     LabeledPoint{Point: centroid, Label: CentroidLabel},
		Incenter:     LabeledPoint{Point: k.Incenter(t), Label: IncenterLabel},
		Circumcenter: LabeledPoint{Point: circumcenter, Label: CircumcenterLabel},
		Orthocenter:  LabeledPoint{Point: k.Orthocenter(t), Label: OrthocenterLabel},
		Circumradius: k.Circumradius(t),
		Inradius:     k.Inradius(t),
		Degenerate:   k.Degenerate(t),
	}
}

// Derive see Kernel.Derive
func Derive(t Triangle) DerivedPointSet { return DefaultKernel.Derive(t) }
