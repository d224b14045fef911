// Package render draws a composed scene as SVG or as a raster image.
package render

import (
	"fmt"
	"image/color"
	"math"

	"github.com/philipparndt/gotriangle/pkg/scene"
)

// Stroke is how one layer is drawn
type Stroke struct {
	Color color.RGBA
	Width float64
	// Dash is the dash pattern, empty for solid lines
	Dash []float64
}

// Style is the palette and stroke widths shared by all renderers
type Style struct {
	Background   color.RGBA
	TriangleFill color.RGBA
	HandleFill   color.RGBA
	HaloFill     color.RGBA
	LabelColor   color.RGBA

	// Strokes per layer. Layers without an entry use Default.
	Strokes map[scene.Layer]Stroke
	Default Stroke

	FontSize float64
	// HaloPulse is the halo's largest radius relative to its resting radius
	HaloPulse float64
	// HaloPeriod is the duration of one pulse in seconds
	HaloPeriod float64
}

// DefaultStyle returns the standard palette
func DefaultStyle() Style {
	return Style{
		Background:   color.RGBA{255, 255, 255, 255},
		TriangleFill: color.RGBA{66, 133, 244, 40},
		HandleFill:   color.RGBA{255, 255, 255, 255},
		HaloFill:     color.RGBA{255, 152, 0, 90},
		LabelColor:   color.RGBA{33, 33, 33, 255},
		Strokes: map[scene.Layer]Stroke{
			scene.LayerGrid:                   {Color: color.RGBA{224, 224, 224, 255}, Width: 0.5},
			scene.LayerCircumcircle:           {Color: color.RGBA{156, 39, 176, 255}, Width: 1.5},
			scene.LayerIncircle:               {Color: color.RGBA{0, 150, 136, 255}, Width: 1.5},
			scene.LayerPerpendicularBisectors: {Color: color.RGBA{121, 85, 72, 255}, Width: 1, Dash: []float64{6, 4}},
			scene.LayerMedians:                {Color: color.RGBA{76, 175, 80, 255}, Width: 1.5},
			scene.LayerAltitudes:              {Color: color.RGBA{244, 67, 54, 255}, Width: 1.5},
			scene.LayerBisectors:              {Color: color.RGBA{255, 193, 7, 255}, Width: 1.5},
			scene.LayerEulerLine:              {Color: color.RGBA{96, 125, 139, 255}, Width: 1.5, Dash: []float64{2, 3}},
			scene.LayerTriangle:               {Color: color.RGBA{25, 118, 210, 255}, Width: 2},
			scene.LayerHighlight:              {Color: color.RGBA{230, 81, 0, 255}, Width: 1.5},
			scene.LayerVertices:               {Color: color.RGBA{25, 118, 210, 255}, Width: 2},
		},
		Default:    Stroke{Color: color.RGBA{0, 0, 0, 255}, Width: 1},
		FontSize:   14,
		HaloPulse:  scene.DefaultHaloPulse,
		HaloPeriod: 1.6,
	}
}

// Stroke returns the stroke of a layer
func (s Style) Stroke(layer scene.Layer) Stroke {
	if stroke, ok := s.Strokes[layer]; ok {
		return stroke
	}
	return s.Default
}

// hex formats a color as #rrggbb, dropping alpha
func hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// opacity returns the alpha channel as a fraction
func opacity(c color.RGBA) float64 {
	return float64(c.A) / 255
}

// HaloAt returns the halo's radius scale and opacity fade at a phase of its
// pulse, 0 at rest and approaching 1 at the end of a period. The halo grows
// to HaloPulse times its radius while fading out.
func (s Style) HaloAt(phase float64) (scale, fade float64) {
	if s.HaloPulse <= 1 {
		return 1, 1
	}
	phase = math.Max(0, math.Min(1, phase))
	return 1 + (s.HaloPulse-1)*phase, 1 - 0.8*phase
}
