// Package config loads figure settings from YAML files and command line
// values.
package config

import (
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/philipparndt/gotriangle/internal/interaction"
	"github.com/philipparndt/gotriangle/pkg/figure"
	"github.com/philipparndt/gotriangle/pkg/geometry"
	"github.com/philipparndt/gotriangle/pkg/scene"
	"github.com/philipparndt/gotriangle/pkg/viewport"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation error
var ErrInvalid = errors.New("invalid configuration")

// Vertex is one triangle corner
type Vertex struct {
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	Label string  `yaml:"label,omitempty"`
}

// Show toggles the visual layers
type Show struct {
	Medians                bool `yaml:"medians"`
	Altitudes              bool `yaml:"altitudes"`
	Bisectors              bool `yaml:"bisectors"`
	PerpendicularBisectors bool `yaml:"perpendicularBisectors"`
	CircumscribedCircle    bool `yaml:"circumscribedCircle"`
	InscribedCircle        bool `yaml:"inscribedCircle"`
	Grid                   bool `yaml:"grid"`
	EulerLine              bool `yaml:"eulerLine"`
	Labels                 bool `yaml:"labels"`
}

type Viewport struct {
	Padding  float64 `yaml:"padding"`
	GridStep float64 `yaml:"gridStep"`
}

type Geometry struct {
	Epsilon        float64 `yaml:"epsilon"`
	BisectorExtent float64 `yaml:"bisectorExtent"`
}

type Interaction struct {
	HandleRadius float64 `yaml:"handleRadius"`
}

type Render struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Config is the file format
type Config struct {
	// Vertices holds exactly three vertices, or none for the default triangle
	Vertices    []Vertex    `yaml:"vertices,omitempty"`
	Show        Show        `yaml:"show"`
	Highlight   string      `yaml:"highlight"`
	Draggable   bool        `yaml:"draggable"`
	Viewport    Viewport    `yaml:"viewport"`
	Geometry    Geometry    `yaml:"geometry"`
	Interaction Interaction `yaml:"interaction"`
	Render      Render      `yaml:"render"`
}

// Default returns the configuration used when no file is given
func Default() Config {
	return Config{
		Show:        Show{Labels: true},
		Highlight:   scene.None.String(),
		Draggable:   true,
		Viewport:    Viewport{Padding: viewport.DefaultPadding, GridStep: scene.DefaultGridStep},
		Geometry:    Geometry{Epsilon: geometry.DefaultEpsilon, BisectorExtent: geometry.DefaultBisectorExtent},
		Interaction: Interaction{HandleRadius: interaction.DefaultHandleRadius},
		Render:      Render{Width: 800, Height: 600},
	}
}

// Load reads and validates a configuration file. Values missing from the
// file keep their defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "failed to read config %s", path)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, errors.Wrapf(err, "failed to load config %s", path)
	}
	return cfg, nil
}

// Parse decodes and validates YAML on top of the defaults
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrap(err, "failed to parse yaml")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Marshal encodes the configuration as YAML
func (c Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode yaml")
	}
	return data, nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Validate checks the values that the figure cannot fall back from
func (c Config) Validate() error {
	if len(c.Vertices) != 0 && len(c.Vertices) != 3 {
		return errors.Wrapf(ErrInvalid, "expected 3 vertices, got %d", len(c.Vertices))
	}
	for i, v := range c.Vertices {
		if !finite(v.X) || !finite(v.Y) {
			return errors.Wrapf(ErrInvalid, "vertex %d has non-finite coordinates", i)
		}
	}

	if _, err := scene.ParseNotablePoint(c.Highlight); err != nil {
		return errors.Wrap(ErrInvalid, err.Error())
	}

	switch {
	case c.Viewport.Padding <= 0 || !finite(c.Viewport.Padding):
		return errors.Wrapf(ErrInvalid, "viewport.padding must be positive, got %g", c.Viewport.Padding)
	case c.Viewport.GridStep <= 0 || !finite(c.Viewport.GridStep):
		return errors.Wrapf(ErrInvalid, "viewport.gridStep must be positive, got %g", c.Viewport.GridStep)
	case c.Geometry.Epsilon <= 0 || !finite(c.Geometry.Epsilon):
		return errors.Wrapf(ErrInvalid, "geometry.epsilon must be positive, got %g", c.Geometry.Epsilon)
	case c.Geometry.BisectorExtent <= 0 || !finite(c.Geometry.BisectorExtent):
		return errors.Wrapf(ErrInvalid, "geometry.bisectorExtent must be positive, got %g", c.Geometry.BisectorExtent)
	case c.Interaction.HandleRadius <= 0 || !finite(c.Interaction.HandleRadius):
		return errors.Wrapf(ErrInvalid, "interaction.handleRadius must be positive, got %g", c.Interaction.HandleRadius)
	case c.Render.Width <= 0 || c.Render.Height <= 0:
		return errors.Wrapf(ErrInvalid, "render size must be positive, got %dx%d", c.Render.Width, c.Render.Height)
	}
	return nil
}

// Triangle returns the configured triangle, or the default one. Vertices
// without a label are named A, B and C.
func (c Config) Triangle() geometry.Triangle {
	if len(c.Vertices) != 3 {
		return geometry.DefaultTriangle()
	}

	var t geometry.Triangle
	for i, v := range c.Vertices {
		label := v.Label
		if label == "" {
			label = geometry.VertexLabels[i]
		}
		t[i] = geometry.NewLabeledPoint(v.X, v.Y, label)
	}
	return t
}

// SetTriangle stores a triangle as the configured vertices
func (c *Config) SetTriangle(t geometry.Triangle) {
	c.Vertices = make([]Vertex, len(t))
	for i, v := range t {
		c.Vertices[i] = Vertex{X: v.X, Y: v.Y, Label: v.Label}
	}
}

// Options returns the scene options
func (c Config) Options() scene.Options {
	highlight, _ := scene.ParseNotablePoint(c.Highlight)
	return scene.Options{
		ShowMedians:                c.Show.Medians,
		ShowAltitudes:              c.Show.Altitudes,
		ShowBisectors:              c.Show.Bisectors,
		ShowPerpendicularBisectors: c.Show.PerpendicularBisectors,
		ShowCircumcircle:           c.Show.CircumscribedCircle,
		ShowIncircle:               c.Show.InscribedCircle,
		ShowGrid:                   c.Show.Grid,
		ShowEulerLine:              c.Show.EulerLine,
		ShowLabels:                 c.Show.Labels,
		Highlight:                  highlight,
		GridStep:                   c.Viewport.GridStep,
	}
}

// Figure returns the figure configuration
func (c Config) Figure() figure.Config {
	t := c.Triangle()
	return figure.Config{
		Vertices:       &t,
		Options:        c.Options(),
		Draggable:      c.Draggable,
		Padding:        c.Viewport.Padding,
		Epsilon:        c.Geometry.Epsilon,
		HandleRadius:   c.Interaction.HandleRadius,
		BisectorExtent: c.Geometry.BisectorExtent,
	}
}

// ParseVertices parses "x,y;x,y;x,y", as given on the command line. A vertex
// may carry a label: "A=200,60".
func ParseVertices(s string) ([]Vertex, error) {
	parts := strings.Split(s, ";")
	if len(parts) != 3 {
		return nil, errors.Wrapf(ErrInvalid, "expected 3 vertices separated by ';', got %q", s)
	}

	vertices := make([]Vertex, 0, 3)
	for _, part := range parts {
		v, err := ParseVertex(part)
		if err != nil {
			return nil, err
		}
		vertices = append(vertices, v)
	}
	return vertices, nil
}

// ParseVertex parses "x,y" or "label=x,y"
func ParseVertex(s string) (Vertex, error) {
	var v Vertex
	s = strings.TrimSpace(s)
	if label, rest, ok := strings.Cut(s, "="); ok {
		v.Label = strings.TrimSpace(label)
		s = rest
	}

	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return Vertex{}, errors.Wrapf(ErrInvalid, "expected x,y, got %q", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return Vertex{}, errors.Wrapf(ErrInvalid, "invalid x %q", xs)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return Vertex{}, errors.Wrapf(ErrInvalid, "invalid y %q", ys)
	}
	if !finite(x) || !finite(y) {
		return Vertex{}, errors.Wrapf(ErrInvalid, "non-finite coordinates %q", s)
	}
	v.X, v.Y = x, y
	return v, nil
}
