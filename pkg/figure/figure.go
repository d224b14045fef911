// Package figure wires the kernel, viewport, composer and interaction
// controller into one interactive triangle.
//
// Every vertex change runs the whole pipeline synchronously: derive the
// notable points, compute the view region, compose the scene, refresh the
// screen mapping, then notify observers. Nothing derived is ever updated in
// place. A Figure is not safe for concurrent use.
package figure

import (
	"math"

	"github.com/philipparndt/gotriangle/internal/interaction"
	"github.com/philipparndt/gotriangle/pkg/geometry"
	"github.com/philipparndt/gotriangle/pkg/scene"
	"github.com/philipparndt/gotriangle/pkg/viewport"
)

// Config configures a figure. The zero value shows the default triangle
// without any construction and without dragging.
type Config struct {
	// Vertices seeds the triangle, nil selects the default triangle
	Vertices *geometry.Triangle
	Options  scene.Options

	Draggable bool

	// Padding around the visible geometry in local units, 0 selects the
	// default
	Padding float64
	// Epsilon is the degeneracy tolerance, 0 selects the default
	Epsilon float64
	// HandleRadius is the vertex hit radius in local units, 0 selects the
	// default
	HandleRadius float64
	// BisectorExtent is the drawn half-length of perpendicular bisectors
	// relative to their side, 0 selects the default
	BisectorExtent float64

	// OnVerticesChange is called after every vertex change
	OnVerticesChange func(geometry.Triangle)
}

// Figure is an interactive triangle
type Figure struct {
	kernel     geometry.Kernel
	calculator viewport.Calculator
	composer   scene.Composer
	controller *interaction.Controller

	options scene.Options
	derived geometry.DerivedPointSet
	region  viewport.Region
	scene   scene.Scene

	screenWidth, screenHeight float64

	observers []func(geometry.Triangle)
}

// New creates a figure
func New(cfg Config) *Figure {
	tri := geometry.DefaultTriangle()
	if cfg.Vertices != nil {
		tri = *cfg.Vertices
	}

	kernel := geometry.DefaultKernel
	if cfg.Epsilon > 0 {
		kernel = geometry.NewKernel(cfg.Epsilon)
	}
	if cfg.BisectorExtent > 0 {
		kernel.BisectorExtent = cfg.BisectorExtent
	}

	padding := viewport.DefaultPadding
	if cfg.Padding > 0 {
		padding = cfg.Padding
	}

	options := cfg.Options
	if options.GridStep <= 0 {
		options.GridStep = scene.DefaultGridStep
	}

	f := &Figure{
		kernel:     kernel,
		calculator: viewport.NewCalculator(padding, kernel),
		composer:   scene.NewComposer(kernel),
		controller: interaction.NewController(tri, cfg.Draggable),
		options:    options,
	}
	if cfg.HandleRadius > 0 {
		f.controller.HandleRadius = cfg.HandleRadius
	}

	f.controller.Observe(f.verticesChanged)
	f.OnVerticesChange(cfg.OnVerticesChange)

	f.recompute()
	return f
}

// OnVerticesChange registers an observer for vertex changes. It runs after
// the figure has been recomputed.
func (f *Figure) OnVerticesChange(fn func(geometry.Triangle)) {
	if fn != nil {
		f.observers = append(f.observers, fn)
	}
}

func (f *Figure) verticesChanged(t geometry.Triangle) {
	f.recompute()
	for _, fn := range f.observers {
		fn(t)
	}
}

func (f *Figure) recompute() {
	t := f.controller.Triangle()
	f.derived = f.kernel.Derive(t)
	f.region = f.calculator.Compute(t, f.composer.Visibility(t, f.derived, f.options))
	f.scene = f.composer.Compose(t, f.derived, f.options, f.region)
	f.refreshTransform()
}

func (f *Figure) refreshTransform() {
	if f.screenWidth <= 0 || f.screenHeight <= 0 {
		// Unsized: local coordinates are screen coordinates
		f.controller.SetTransform(viewport.Identity())
		return
	}
	f.controller.SetTransform(viewport.Fit(f.region, f.screenWidth, f.screenHeight))
}

// Resize sets the size of the surface the figure is shown on
func (f *Figure) Resize(width, height float64) {
	f.screenWidth = width
	f.screenHeight = height
	f.refreshTransform()
}

// Size returns the surface size
func (f *Figure) Size() (float64, float64) {
	return f.screenWidth, f.screenHeight
}

// Options returns the visibility options
func (f *Figure) Options() scene.Options {
	return f.options
}

// SetOptions replaces the visibility options and recomputes the figure.
// Observers are not notified: the vertices did not change.
func (f *Figure) SetOptions(opts scene.Options) {
	if opts.GridStep <= 0 {
		opts.GridStep = scene.DefaultGridStep
	}
	f.options = opts
	f.recompute()
}

// SetDraggable enables or disables dragging
func (f *Figure) SetDraggable(draggable bool) {
	f.controller.SetDraggable(draggable)
}

// SetTriangle replaces the triangle and notifies observers
func (f *Figure) SetTriangle(t geometry.Triangle) {
	f.controller.SetTriangle(t)
}

// SetVertex moves one vertex and notifies observers
func (f *Figure) SetVertex(i int, p geometry.Point) error {
	return f.controller.SetVertex(i, p)
}

// NotableAt returns the notable point drawn within radius pixels of a
// screen position, the closest one if several are. Points left undefined by
// a degenerate triangle are never hit.
func (f *Figure) NotableAt(x, y, radius float64) scene.NotablePoint {
	screen := geometry.NewPoint(x, y)
	mapping := f.Mapping()

	best := scene.None
	bestDist := math.Inf(1)
	for _, np := range scene.NotablePoints {
		p, ok := np.Select(f.derived)
		if !ok {
			continue
		}
		dist := mapping.LocalToScreen(p.Point).DistanceFrom(screen)
		if dist <= radius && dist < bestDist {
			best, bestDist = np, dist
		}
	}
	return best
}

// ToggleHighlight highlights a notable point, or clears the highlight when
// that point is already highlighted
func (f *Figure) ToggleHighlight(p scene.NotablePoint) {
	opts := f.options
	if opts.Highlight == p {
		opts.Highlight = scene.None
	} else {
		opts.Highlight = p
	}
	f.SetOptions(opts)
}

// Triangle returns the current triangle
func (f *Figure) Triangle() geometry.Triangle {
	return f.controller.Triangle()
}

// Derived returns the notable points of the current triangle
func (f *Figure) Derived() geometry.DerivedPointSet {
	return f.derived
}

// Classification classifies the current triangle
func (f *Figure) Classification() geometry.Classification {
	return f.kernel.Classify(f.controller.Triangle())
}

// Kernel returns the kernel the figure computes with
func (f *Figure) Kernel() geometry.Kernel {
	return f.kernel
}

// Region returns the current view region
func (f *Figure) Region() viewport.Region {
	return f.region
}

// Scene returns the current composed scene
func (f *Figure) Scene() scene.Scene {
	return f.scene
}

// Mapping returns the current screen mapping
func (f *Figure) Mapping() viewport.ScreenMapping {
	return f.controller.Mapping()
}

// Controller returns the interaction controller. Frontends feed pointer
// events into it.
func (f *Figure) Controller() *interaction.Controller {
	return f.controller
}
