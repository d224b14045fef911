package geometry

import (
	"math"
	"testing"
)

func TestMidpoint(t *testing.T) {
	result := Midpoint(NewPoint(1, 2), NewPoint(5, 8))

	expected := NewPoint(3, 5)
	if result != expected {
		t.Errorf("Midpoint failed: expected %v, got %v", expected, result)
	}
}

func TestDistance(t *testing.T) {
	distance := Distance(NewPoint(0, 0), NewPoint(3, 4))

	expected := 5.0
	if math.Abs(distance-expected) > 1e-10 {
		t.Errorf("Distance failed: expected %v, got %v", expected, distance)
	}
}

func TestNormalize(t *testing.T) {
	normalized, ok := normalize(NewPoint(3, 4), DefaultEpsilon)
	if !ok {
		t.Fatal("Normalize failed: expected a direction")
	}

	if math.Abs(normalized.Magnitude()-1.0) > 1e-10 {
		t.Errorf("Normalize failed: expected length 1, got %v", normalized.Magnitude())
	}
}

func TestNormalizeZero(t *testing.T) {
	if _, ok := normalize(NewPoint(0, 0), DefaultEpsilon); ok {
		t.Error("Normalize of zero vector should fail")
	}
}

func TestCrossAndDot(t *testing.T) {
	if c := cross(NewPoint(1, 0), NewPoint(0, 1)); c != 1 {
		t.Errorf("Cross failed: expected 1, got %v", c)
	}
	if d := dot(NewPoint(1, 2), NewPoint(3, 4)); d != 11 {
		t.Errorf("Dot failed: expected 11, got %v", d)
	}
}

func TestLabeledPointString(t *testing.T) {
	p := NewLabeledPoint(1, 2.5, "A")

	expected := "A(1.00, 2.50)"
	if p.String() != expected {
		t.Errorf("String failed: expected %q, got %q", expected, p.String())
	}
}

func TestIsFinite(t *testing.T) {
	if !IsFinite(NewPoint(1, 2)) {
		t.Error("expected finite point")
	}
	if IsFinite(NewPoint(math.NaN(), 0)) {
		t.Error("NaN should not be finite")
	}
	if IsFinite(NewPoint(0, math.Inf(-1))) {
		t.Error("Inf should not be finite")
	}
}
