package scene

import (
	"testing"

	"github.com/philipparndt/gotriangle/pkg/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNotablePoint(t *testing.T) {
	tests := []struct {
		input    string
		expected NotablePoint
	}{
		{"", None},
		{"none", None},
		{"centroid", Centroid},
		{"Centroide", Centroid},
		{" G ", Centroid},
		{"orthocenter", Orthocenter},
		{"ortocentro", Orthocenter},
		{"incenter", Incenter},
		{"INCENTRO", Incenter},
		{"circumcenter", Circumcenter},
		{"circuncentro", Circumcenter},
		{"o", Circumcenter},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			p, err := ParseNotablePoint(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, p)
		})
	}
}

func TestParseNotablePointUnknown(t *testing.T) {
	_, err := ParseNotablePoint("barycenter")

	assert.EqualError(t, err, `unknown notable point "barycenter"`)
}

func TestNotablePointTextRoundTrip(t *testing.T) {
	for _, p := range NotablePoints {
		text, err := p.MarshalText()
		require.NoError(t, err)

		var parsed NotablePoint
		require.NoError(t, parsed.UnmarshalText(text))
		assert.Equal(t, p, parsed)
	}
}

func TestNotablePointString(t *testing.T) {
	assert.Equal(t, "orthocenter", Orthocenter.String())
	assert.Equal(t, "NotablePoint(42)", NotablePoint(42).String())
}

func TestSelect(t *testing.T) {
	derived := geometry.Derive(geometry.DefaultTriangle())

	_, ok := None.Select(derived)
	assert.False(t, ok)

	p, ok := Circumcenter.Select(derived)
	assert.True(t, ok)
	assert.Equal(t, derived.Circumcenter, p)
	assert.Equal(t, "O", p.Label)
}

func TestSelectDegenerate(t *testing.T) {
	derived := geometry.Derive(geometry.NewTriangle(
		geometry.NewPoint(0, 0), geometry.NewPoint(1, 1), geometry.NewPoint(2, 2),
	))
	require.True(t, derived.Degenerate)

	_, ok := Centroid.Select(derived)
	assert.True(t, ok)
	for _, p := range []NotablePoint{Orthocenter, Incenter, Circumcenter} {
		_, ok := p.Select(derived)
		assert.False(t, ok, p.String())
	}
}

func TestLayerString(t *testing.T) {
	assert.Equal(t, "grid", LayerGrid.String())
	assert.Equal(t, "labels", LayerLabels.String())
	assert.Equal(t, "unknown", Layer(99).String())
	assert.Equal(t, "right-angle", KindRightAngle.String())
}
