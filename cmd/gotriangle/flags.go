package main

import (
	"github.com/philipparndt/gotriangle/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// figureFlags are the figure settings shared by several commands. Flags
// given on the command line override the config file.
type figureFlags struct {
	configPath string
	vertices   string
	highlight  string
	draggable  bool
	padding    float64
	epsilon    float64

	medians                bool
	altitudes              bool
	bisectors              bool
	perpendicularBisectors bool
	circumcircle           bool
	incircle               bool
	grid                   bool
	eulerLine              bool
	labels                 bool
	all                    bool
}

func addFigureFlags(cmd *cobra.Command, f *figureFlags) {
	flags := cmd.Flags()
	flags.StringVarP(&f.configPath, "config", "c", "", "YAML figure configuration")
	flags.StringVar(&f.vertices, "vertices", "", `Vertices as "x,y;x,y;x,y", optionally labeled "A=x,y"`)
	flags.StringVar(&f.highlight, "highlight", "", "Notable point to highlight: centroid, orthocenter, incenter, circumcenter or none")
	flags.BoolVar(&f.draggable, "draggable", true, "Allow dragging vertices")
	flags.Float64Var(&f.padding, "padding", 0, "Padding around the visible geometry")
	flags.Float64Var(&f.epsilon, "epsilon", 0, "Relative tolerance below which a triangle counts as collinear")

	flags.BoolVar(&f.medians, "medians", false, "Show the medians")
	flags.BoolVar(&f.altitudes, "altitudes", false, "Show the altitudes")
	flags.BoolVar(&f.bisectors, "bisectors", false, "Show the angle bisectors")
	flags.BoolVar(&f.perpendicularBisectors, "perpendicular-bisectors", false, "Show the perpendicular bisectors")
	flags.BoolVar(&f.circumcircle, "circumcircle", false, "Show the circumscribed circle")
	flags.BoolVar(&f.incircle, "incircle", false, "Show the inscribed circle")
	flags.BoolVar(&f.grid, "grid", false, "Show the background grid")
	flags.BoolVar(&f.eulerLine, "euler-line", false, "Show the Euler line")
	flags.BoolVar(&f.labels, "labels", true, "Show labels")
	flags.BoolVar(&f.all, "all", false, "Show every construction")
}

// load reads the config file, if any, and applies the flags that were set
func (f *figureFlags) load(flags *pflag.FlagSet) (config.Config, error) {
	cfg := config.Default()
	if f.configPath != "" {
		loaded, err := config.Load(f.configPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}

	if flags.Changed("vertices") {
		vertices, err := config.ParseVertices(f.vertices)
		if err != nil {
			return config.Config{}, err
		}
		cfg.Vertices = vertices
	}
	if flags.Changed("highlight") {
		cfg.Highlight = f.highlight
	}
	if flags.Changed("draggable") {
		cfg.Draggable = f.draggable
	}
	if flags.Changed("padding") {
		cfg.Viewport.Padding = f.padding
	}
	if flags.Changed("epsilon") {
		cfg.Geometry.Epsilon = f.epsilon
	}

	toggles := []struct {
		name  string
		value bool
		field *bool
	}{
		{"medians", f.medians, &cfg.Show.Medians},
		{"altitudes", f.altitudes, &cfg.Show.Altitudes},
		{"bisectors", f.bisectors, &cfg.Show.Bisectors},
		{"perpendicular-bisectors", f.perpendicularBisectors, &cfg.Show.PerpendicularBisectors},
		{"circumcircle", f.circumcircle, &cfg.Show.CircumscribedCircle},
		{"incircle", f.incircle, &cfg.Show.InscribedCircle},
		{"grid", f.grid, &cfg.Show.Grid},
		{"euler-line", f.eulerLine, &cfg.Show.EulerLine},
		{"labels", f.labels, &cfg.Show.Labels},
	}
	for _, toggle := range toggles {
		if f.all && toggle.name != "labels" {
			*toggle.field = true
		}
		if flags.Changed(toggle.name) {
			*toggle.field = toggle.value
		}
	}

	return cfg, cfg.Validate()
}
