package geometry

import "math"

// SideClass classifies a triangle by its side lengths
type SideClass int

const (
	Scalene SideClass = iota
	Isosceles
	Equilateral
)

func (c SideClass) String() string {
	switch c {
	case Isosceles:
		return "isosceles"
	case Equilateral:
		return "equilateral"
	default:
		return "scalene"
	}
}

// AngleClass classifies a triangle by its largest angle
type AngleClass int

const (
	Acute AngleClass = iota
	Right
	Obtuse
)

func (c AngleClass) String() string {
	switch c {
	case Right:
		return "right"
	case Obtuse:
		return "obtuse"
	default:
		return "acute"
	}
}

// ClassTolerance is the relative tolerance used when comparing side lengths
// and angles during classification. It is much coarser than the degeneracy
// epsilon since dragged vertices rarely land on exact values.
const ClassTolerance = 1e-3

// Classification describes the shape of a triangle
type Classification struct {
	Sides      SideClass
	Angles     AngleClass
	Degenerate bool
}

func (c Classification) String() string {
	if c.Degenerate {
		return "degenerate"
	}
	return c.Angles.String() + " " + c.Sides.String()
}

// Classify classifies the triangle by sides and angles
func (k Kernel) Classify(t Triangle) Classification {
	if k.Degenerate(t) {
		return Classification{Degenerate: true}
	}

	sides := SideLengths(t)
	longest := longestSide(t)
	same := func(a, b float64) bool {
		return math.Abs(a-b) <= ClassTolerance*longest
	}

	result := Classification{Sides: Scalene}
	switch {
	case same(sides[0], sides[1]) && same(sides[1], sides[2]):
		result.Sides = Equilateral
	case same(sides[0], sides[1]) || same(sides[1], sides[2]) || same(sides[0], sides[2]):
		result.Sides = Isosceles
	}

	angles := Angles(t)
	largest := math.Max(angles[0], math.Max(angles[1], angles[2]))
	switch {
	case math.Abs(largest-math.Pi/2) <= ClassTolerance:
		result.Angles = Right
	case largest > math.Pi/2:
		result.Angles = Obtuse
	default:
		result.Angles = Acute
	}
	return result
}

// Classify see Kernel.Classify
func Classify(t Triangle) Classification { return DefaultKernel.Classify(t) }
