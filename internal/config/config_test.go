package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/philipparndt/gotriangle/pkg/figure"
	"github.com/philipparndt/gotriangle/pkg/geometry"
	"github.com/philipparndt/gotriangle/pkg/scene"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
vertices:
  - {x: 10, y: 20, label: P}
  - {x: 110, y: 20}
  - {x: 60, y: 90, label: R}
show:
  medians: true
  circumscribedCircle: true
highlight: centroide
draggable: false
viewport: {padding: 15}
geometry: {epsilon: 1e-6}
interaction: {handleRadius: 20}
render: {width: 320, height: 240}
`

func TestDefault(t *testing.T) {
	cfg := Default()

	require.NoError(t, cfg.Validate())
	assert.True(t, cfg.Draggable)
	assert.True(t, cfg.Show.Labels)
	assert.Equal(t, geometry.DefaultTriangle(), cfg.Triangle())
	assert.Equal(t, scene.None, cfg.Options().Highlight)
}

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte(sample))
	require.NoError(t, err)

	tri := cfg.Triangle()
	assert.Equal(t, geometry.NewLabeledPoint(10, 20, "P"), tri[0])
	assert.Equal(t, geometry.NewLabeledPoint(110, 20, "B"), tri[1])
	assert.Equal(t, "R", tri[2].Label)

	opts := cfg.Options()
	assert.True(t, opts.ShowMedians)
	assert.True(t, opts.ShowCircumcircle)
	assert.False(t, opts.ShowAltitudes)
	// Unset values keep their defaults
	assert.True(t, opts.ShowLabels)
	assert.Equal(t, scene.DefaultGridStep, opts.GridStep)
	assert.Equal(t, geometry.DefaultBisectorExtent, cfg.Geometry.BisectorExtent)

	assert.Equal(t, scene.Centroid, opts.Highlight)
	assert.False(t, cfg.Draggable)
	assert.Equal(t, 15.0, cfg.Viewport.Padding)
	assert.Equal(t, 1e-6, cfg.Geometry.Epsilon)
	assert.Equal(t, Render{Width: 320, Height: 240}, cfg.Render)
}

func TestParseEmpty(t *testing.T) {
	cfg, err := Parse(nil)
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
}

func TestParseSyntaxError(t *testing.T) {
	_, err := Parse([]byte("vertices: [\n"))

	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalid)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"two vertices", func(c *Config) { c.Vertices = []Vertex{{X: 0}, {X: 1}} }},
		{"unknown highlight", func(c *Config) { c.Highlight = "barycenter" }},
		{"zero padding", func(c *Config) { c.Viewport.Padding = 0 }},
		{"negative epsilon", func(c *Config) { c.Geometry.Epsilon = -1 }},
		{"zero bisector extent", func(c *Config) { c.Geometry.BisectorExtent = 0 }},
		{"zero handle radius", func(c *Config) { c.Interaction.HandleRadius = 0 }},
		{"zero grid step", func(c *Config) { c.Viewport.GridStep = 0 }},
		{"zero width", func(c *Config) { c.Render.Width = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(&cfg)

			assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
		})
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	_, err := Parse([]byte("highlight: barycenter\n"))

	assert.ErrorIs(t, err, ErrInvalid)
	assert.Contains(t, err.Error(), `unknown notable point "barycenter"`)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "triangle.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "P", cfg.Triangle()[0].Label)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))

	require.Error(t, err)
	assert.True(t, os.IsNotExist(errors.Cause(err)))
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.SetTriangle(geometry.NewTriangle(geometry.NewPoint(1, 2), geometry.NewPoint(3, 4), geometry.NewPoint(5, 7)))
	cfg.Highlight = "orthocenter"

	data, err := cfg.Marshal()
	require.NoError(t, err)

	parsed, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, cfg, parsed)
}

func TestFigure(t *testing.T) {
	cfg, err := Parse([]byte(sample))
	require.NoError(t, err)

	f := figure.New(cfg.Figure())

	assert.Equal(t, cfg.Triangle(), f.Triangle())
	assert.False(t, f.Controller().Draggable())
	assert.Equal(t, 20.0, f.Controller().HandleRadius)
	assert.Equal(t, 1e-6, f.Kernel().Epsilon)
	assert.Len(t, f.Scene().Layer(scene.LayerMedians), 3)
	assert.Len(t, f.Scene().Layer(scene.LayerHighlight), 2)
}

func TestParseVertices(t *testing.T) {
	vertices, err := ParseVertices("200,60; 80,280 ;C=320,280")
	require.NoError(t, err)

	assert.Equal(t, []Vertex{
		{X: 200, Y: 60},
		{X: 80, Y: 280},
		{X: 320, Y: 280, Label: "C"},
	}, vertices)
}

func TestParseVerticesInvalid(t *testing.T) {
	for _, input := range []string{
		"",
		"1,2;3,4",
		"1,2;3,4;5",
		"1,2;3,x;5,6",
		"1,2;3,4;NaN,6",
	} {
		_, err := ParseVertices(input)
		assert.ErrorIs(t, err, ErrInvalid, input)
	}
}
