package geometry

import (
	"math"
	"testing"
)

func rightTriangle() Triangle {
	// Right angle at A, legs 3 and 4
	return NewTriangle(
		NewPoint(0, 0),
		NewPoint(3, 0),
		NewPoint(0, 4),
	)
}

func TestTriangleArea(t *testing.T) {
	area := Area(rightTriangle())
	expected := 6.0 // (3 * 4) / 2 = 6

	if math.Abs(area-expected) > 1e-10 {
		t.Errorf("Area failed: expected %v, got %v", expected, area)
	}
}

func TestTriangleSignedArea(t *testing.T) {
	tri := rightTriangle()
	if SignedArea(tri) <= 0 {
		t.Errorf("SignedArea failed: expected positive for counterclockwise, got %v", SignedArea(tri))
	}

	tri[1], tri[2] = tri[2], tri[1]
	if SignedArea(tri) >= 0 {
		t.Errorf("SignedArea failed: expected negative for clockwise, got %v", SignedArea(tri))
	}
}

func TestTriangleSideLengths(t *testing.T) {
	lengths := SideLengths(rightTriangle())

	// a = |BC| = 5, b = |CA| = 4, c = |AB| = 3
	expected := [3]float64{5, 4, 3}
	for i := range lengths {
		if math.Abs(lengths[i]-expected[i]) > 1e-10 {
			t.Errorf("Side %d length failed: expected %v, got %v", i, expected[i], lengths[i])
		}
	}
}

func TestTrianglePerimeter(t *testing.T) {
	perimeter := Perimeter(rightTriangle())
	expected := 12.0 // 3 + 4 + 5 = 12

	if math.Abs(perimeter-expected) > 1e-10 {
		t.Errorf("Perimeter failed: expected %v, got %v", expected, perimeter)
	}
	if math.Abs(Semiperimeter(rightTriangle())-6) > 1e-10 {
		t.Errorf("Semiperimeter failed: expected 6, got %v", Semiperimeter(rightTriangle()))
	}
}

func TestTriangleCentroid(t *testing.T) {
	tri := NewTriangle(
		NewPoint(0, 0),
		NewPoint(3, 0),
		NewPoint(0, 3),
	)

	center := Centroid(tri)
	expected := NewPoint(1, 1)

	if center != expected {
		t.Errorf("Centroid failed: expected %v, got %v", expected, center)
	}
}

func TestTriangleAngles(t *testing.T) {
	angles := Angles(rightTriangle())

	if math.Abs(angles[0]-math.Pi/2) > 1e-10 {
		t.Errorf("Angle at A failed: expected pi/2, got %v", angles[0])
	}
	sum := angles[0] + angles[1] + angles[2]
	if math.Abs(sum-math.Pi) > 1e-10 {
		t.Errorf("Angle sum failed: expected pi, got %v", sum)
	}
}

func TestTriangleWithVertexKeepsLabel(t *testing.T) {
	tri := DefaultTriangle()
	moved := tri.WithVertex(1, NewPoint(50, 50))

	if moved[1].Label != "B" {
		t.Errorf("WithVertex changed label: got %q", moved[1].Label)
	}
	if moved[1].Point != NewPoint(50, 50) {
		t.Errorf("WithVertex failed: got %v", moved[1].Point)
	}
	if tri[1].Point != NewPoint(80, 280) {
		t.Errorf("WithVertex mutated the original: got %v", tri[1].Point)
	}
}

func TestTriangleBounds(t *testing.T) {
	bounds := DefaultTriangle().Bounds()

	if bounds.Min != NewPoint(80, 60) || bounds.Max != NewPoint(320, 280) {
		t.Errorf("Bounds failed: got %v", bounds)
	}
}
