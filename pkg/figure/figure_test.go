package figure

import (
	"testing"

	"github.com/philipparndt/gotriangle/internal/interaction"
	"github.com/philipparndt/gotriangle/pkg/geometry"
	"github.com/philipparndt/gotriangle/pkg/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaults(t *testing.T) {
	f := New(Config{})

	assert.Equal(t, geometry.DefaultTriangle(), f.Triangle())
	assert.InDelta(t, 200.0, f.Derived().Centroid.X, 1e-9)
	assert.InDelta(t, 206.6666666, f.Derived().Centroid.Y, 1e-6)
	assert.Equal(t, 40.0, f.Region().MinX)
	assert.Equal(t, scene.DefaultGridStep, f.Options().GridStep)
	assert.False(t, f.Controller().Draggable())
	assert.Len(t, f.Scene().Handles(), 3)
}

func TestNewSeedTriangle(t *testing.T) {
	tri := geometry.NewTriangle(geometry.NewPoint(0, 0), geometry.NewPoint(100, 0), geometry.NewPoint(0, 100))
	f := New(Config{Vertices: &tri, Padding: 10})

	assert.Equal(t, tri, f.Triangle())
	assert.Equal(t, -10.0, f.Region().MinX)
	assert.Equal(t, 120.0, f.Region().Width)
}

// dragTo drags a vertex of a sized figure to a local position
func dragTo(f *Figure, vertex int, to geometry.Point) {
	m := f.Mapping()
	from := m.LocalToScreen(f.Triangle()[vertex].Point)
	target := m.LocalToScreen(to)

	c := f.Controller()
	c.PointerDown(interaction.PointerEvent{X: from.X, Y: from.Y})
	c.PointerMove(interaction.PointerEvent{X: target.X, Y: target.Y})
	c.PointerUp(interaction.PointerEvent{})
}

func TestDragRecomputesBeforeNotifying(t *testing.T) {
	var notified []geometry.Triangle
	var centroids []geometry.Point

	var f *Figure
	f = New(Config{
		Draggable: true,
		OnVerticesChange: func(tri geometry.Triangle) {
			notified = append(notified, tri)
			centroids = append(centroids, f.Derived().Centroid.Point)
		},
	})
	f.Resize(800, 600)

	dragTo(f, 1, geometry.NewPoint(50, 50))

	require.Len(t, notified, 1)
	b := notified[0][1]
	assert.InDelta(t, 50.0, b.X, 1e-9)
	assert.InDelta(t, 50.0, b.Y, 1e-9)
	assert.Equal(t, "B", b.Label)

	expected := geometry.Centroid(notified[0])
	assert.InDelta(t, expected.X, centroids[0].X, 1e-9)
	assert.InDelta(t, expected.Y, centroids[0].Y, 1e-9)
	assert.True(t, f.Region().Contains(b.Point, 0))
}

func TestDragIntoDegenerate(t *testing.T) {
	opts := scene.DefaultOptions()
	opts.ShowCircumcircle = true
	opts.ShowIncircle = true
	opts.Highlight = scene.Circumcenter

	f := New(Config{Draggable: true, Options: opts})
	f.Resize(400, 400)

	dragTo(f, 0, geometry.NewPoint(200, 280))

	require.True(t, f.Derived().Degenerate)
	assert.True(t, geometry.IsFinite(f.Derived().Circumcenter.Point))
	assert.True(t, geometry.IsFinite(f.Derived().Incenter.Point))
	assert.Empty(t, f.Scene().Layer(scene.LayerHighlight))
	assert.Equal(t, "degenerate", f.Classification().String())
}

func TestSetOptionsRecomputes(t *testing.T) {
	var notified int
	f := New(Config{OnVerticesChange: func(geometry.Triangle) { notified++ }})
	before := f.Region()

	opts := f.Options()
	opts.ShowCircumcircle = true
	opts.GridStep = 0
	f.SetOptions(opts)

	assert.NotEqual(t, before, f.Region())
	assert.Len(t, f.Scene().Layer(scene.LayerCircumcircle), 1)
	assert.Equal(t, scene.DefaultGridStep, f.Options().GridStep)
	assert.Zero(t, notified)
}

func TestSetVertexNotifiesAllObservers(t *testing.T) {
	var calls []string
	f := New(Config{OnVerticesChange: func(geometry.Triangle) { calls = append(calls, "config") }})
	f.OnVerticesChange(func(geometry.Triangle) { calls = append(calls, "added") })

	require.NoError(t, f.SetVertex(0, geometry.NewPoint(0, 0)))

	assert.Equal(t, []string{"config", "added"}, calls)
	assert.Equal(t, geometry.NewPoint(0, 0), f.Triangle()[0].Point)
	assert.Equal(t, geometry.NewPoint(0, 0), f.Scene().Handles()[0].Points[0])
}

func TestResizeUpdatesMapping(t *testing.T) {
	f := New(Config{})
	p := geometry.NewPoint(40, 20)

	// Unsized figures map local onto screen directly
	assert.Equal(t, p, f.Mapping().LocalToScreen(p))

	f.Resize(640, 600)
	screen := f.Mapping().LocalToScreen(p)
	assert.InDelta(t, 0.0, screen.X, 1e-9)
	assert.InDelta(t, 0.0, screen.Y, 1e-9)

	w, h := f.Size()
	assert.Equal(t, 640.0, w)
	assert.Equal(t, 600.0, h)
}

func TestNotDraggableIgnoresPointer(t *testing.T) {
	var notified int
	f := New(Config{OnVerticesChange: func(geometry.Triangle) { notified++ }})
	f.Resize(800, 600)

	dragTo(f, 0, geometry.NewPoint(0, 0))

	assert.Zero(t, notified)
	assert.Equal(t, geometry.DefaultTriangle(), f.Triangle())

	f.SetDraggable(true)
	dragTo(f, 0, geometry.NewPoint(0, 0))
	assert.Equal(t, 1, notified)
}

func TestConfigTuning(t *testing.T) {
	f := New(Config{Epsilon: 1e-3, HandleRadius: 30, BisectorExtent: 1})

	assert.Equal(t, 1e-3, f.Kernel().Epsilon)
	assert.Equal(t, 1.0, f.Kernel().BisectorExtent)
	assert.Equal(t, 30.0, f.Controller().HandleRadius)
}

func TestNotableAt(t *testing.T) {
	// Unsized, so screen coordinates are local coordinates
	f := New(Config{})
	d := f.Derived()

	g := d.Centroid.Point
	assert.Equal(t, scene.Centroid, f.NotableAt(g.X, g.Y, 5), "closest point wins")

	h := d.Orthocenter.Point
	assert.Equal(t, scene.Orthocenter, f.NotableAt(h.X, h.Y+2, 3))
	assert.Equal(t, scene.None, f.NotableAt(0, 0, 10))
}

func TestNotableAtDegenerate(t *testing.T) {
	tri := geometry.NewTriangle(geometry.NewPoint(0, 0), geometry.NewPoint(50, 0), geometry.NewPoint(100, 0))
	f := New(Config{Vertices: &tri})

	g := f.Derived().Centroid.Point
	assert.Equal(t, scene.Centroid, f.NotableAt(g.X, g.Y, 1000))
}

func TestToggleHighlight(t *testing.T) {
	var notified int
	f := New(Config{OnVerticesChange: func(geometry.Triangle) { notified++ }})

	f.ToggleHighlight(scene.Incenter)
	assert.Equal(t, scene.Incenter, f.Options().Highlight)
	assert.Len(t, f.Scene().Layer(scene.LayerHighlight), 2)

	f.ToggleHighlight(scene.Orthocenter)
	assert.Equal(t, scene.Orthocenter, f.Options().Highlight)

	f.ToggleHighlight(scene.Orthocenter)
	assert.Equal(t, scene.None, f.Options().Highlight)
	assert.Empty(t, f.Scene().Layer(scene.LayerHighlight))
	assert.Zero(t, notified)
}
