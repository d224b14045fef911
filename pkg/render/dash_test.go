package render

import (
	"testing"

	"github.com/philipparndt/gotriangle/pkg/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashes(t *testing.T) {
	a := geometry.NewPoint(0, 0)
	b := geometry.NewPoint(25, 0)

	pieces := Dashes(a, b, []float64{6, 4})

	require.Len(t, pieces, 3)
	assert.Equal(t, [2]geometry.Point{geometry.NewPoint(0, 0), geometry.NewPoint(6, 0)}, pieces[0])
	assert.Equal(t, [2]geometry.Point{geometry.NewPoint(10, 0), geometry.NewPoint(16, 0)}, pieces[1])
	assert.Equal(t, [2]geometry.Point{geometry.NewPoint(20, 0), geometry.NewPoint(25, 0)}, pieces[2], "last dash is clipped")
}

func TestDashesOddPattern(t *testing.T) {
	pieces := Dashes(geometry.NewPoint(0, 0), geometry.NewPoint(0, 8), []float64{2})

	require.Len(t, pieces, 2)
	assert.Equal(t, geometry.NewPoint(0, 4), pieces[1][0])
	assert.Equal(t, geometry.NewPoint(0, 6), pieces[1][1])
}

func TestDashesSolid(t *testing.T) {
	a := geometry.NewPoint(1, 1)
	b := geometry.NewPoint(4, 5)

	assert.Equal(t, [][2]geometry.Point{{a, b}}, Dashes(a, b, nil))
	assert.Equal(t, [][2]geometry.Point{{a, b}}, Dashes(a, b, []float64{3, 0}))
	assert.Empty(t, Dashes(a, a, []float64{3, 2}))
}

func TestHaloAt(t *testing.T) {
	style := DefaultStyle()

	scale, fade := style.HaloAt(0)
	assert.Equal(t, 1.0, scale)
	assert.Equal(t, 1.0, fade)

	scale, fade = style.HaloAt(1)
	assert.InDelta(t, style.HaloPulse, scale, 1e-9)
	assert.InDelta(t, 0.2, fade, 1e-9)

	scale, _ = style.HaloAt(2)
	assert.InDelta(t, style.HaloPulse, scale, 1e-9, "phase is clamped")

	style.HaloPulse = 1
	scale, fade = style.HaloAt(0.5)
	assert.Equal(t, 1.0, scale)
	assert.Equal(t, 1.0, fade)
}
