package render

import (
	"bytes"
	"fmt"
	"image/color"
	"io"
	"strings"

	svg "github.com/ajstarks/svgo/float"
	"github.com/philipparndt/gotriangle/pkg/scene"
	"github.com/pkg/errors"
)

// Size is the output size in pixels. A zero size uses the region's size.
type Size struct {
	Width, Height float64
}

func (s Size) orRegion(sc scene.Scene) Size {
	if s.Width <= 0 || s.Height <= 0 {
		return Size{Width: sc.Region.Width, Height: sc.Region.Height}
	}
	return s
}

// SVG writes the scene as a scalable vector image. The viewBox is the
// scene's region and each layer becomes a group, in drawing order.
func SVG(w io.Writer, sc scene.Scene, size Size, style Style) error {
	size = size.orRegion(sc)
	r := sc.Region

	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Startview(size.Width, size.Height, r.MinX, r.MinY, r.Width, r.Height)
	canvas.Rect(r.MinX, r.MinY, r.Width, r.Height, fmt.Sprintf(`fill="%s"`, hex(style.Background)))

	open := false
	var current scene.Layer
	for _, p := range sc.Primitives {
		if !open || p.Layer != current {
			if open {
				canvas.Gend()
			}
			canvas.Group(fmt.Sprintf(`id="%s"`, p.Layer), layerStyle(style, p.Layer))
			current = p.Layer
			open = true
		}
		drawSVG(canvas, p, style)
	}
	if open {
		canvas.Gend()
	}
	canvas.End()

	if _, err := w.Write(buf.Bytes()); err != nil {
		return errors.Wrap(err, "failed to write svg")
	}
	return nil
}

// layerStyle returns the group attributes shared by a layer's primitives
func layerStyle(style Style, layer scene.Layer) string {
	stroke := style.Stroke(layer)
	attrs := fmt.Sprintf(`stroke="%s" stroke-width="%g" fill="none"`, hex(stroke.Color), stroke.Width)
	if stroke.Color.A < 255 {
		attrs += fmt.Sprintf(` stroke-opacity="%.3f"`, opacity(stroke.Color))
	}
	if len(stroke.Dash) > 0 {
		dash := make([]string, len(stroke.Dash))
		for i, d := range stroke.Dash {
			dash[i] = fmt.Sprintf("%g", d)
		}
		attrs += fmt.Sprintf(` stroke-dasharray="%s"`, strings.Join(dash, " "))
	}
	return attrs
}

func fill(c color.RGBA) string {
	return fmt.Sprintf(`fill="%s" fill-opacity="%.3f"`, hex(c), opacity(c))
}

func drawSVG(canvas *svg.SVG, p scene.Primitive, style Style) {
	switch p.Kind {
	case scene.KindGridLine, scene.KindSegment:
		canvas.Line(p.Points[0].X, p.Points[0].Y, p.Points[1].X, p.Points[1].Y)

	case scene.KindCircle:
		c := p.Points[0]
		canvas.Circle(c.X, c.Y, p.Radius)

	case scene.KindRightAngle:
		xs, ys := coords(p)
		canvas.Polyline(xs, ys)

	case scene.KindPolygon:
		xs, ys := coords(p)
		canvas.Polygon(xs, ys, fill(style.TriangleFill), `stroke-linejoin="round"`)

	case scene.KindHalo:
		c := p.Points[0]
		period := style.HaloPeriod
		peak := p.Radius * style.HaloPulse
		// svgo has no element with child animations, so the halo is written
		// directly
		fmt.Fprintf(canvas.Writer,
			`<circle cx="%g" cy="%g" r="%g" stroke="none" %s>`+
				`<animate attributeName="r" values="%g;%g;%g" dur="%gs" repeatCount="indefinite"/>`+
				`<animate attributeName="opacity" values="1;0.2;1" dur="%gs" repeatCount="indefinite"/>`+
				"</circle>\n",
			c.X, c.Y, p.Radius, fill(style.HaloFill),
			p.Radius, peak, p.Radius, period,
			period)

	case scene.KindMarker:
		c := p.Points[0]
		stroke := style.Stroke(p.Layer)
		canvas.Circle(c.X, c.Y, p.Radius, fill(stroke.Color), `stroke="none"`)

	case scene.KindHandle:
		c := p.Points[0]
		canvas.Circle(c.X, c.Y, p.Radius, fill(style.HandleFill),
			fmt.Sprintf(`data-vertex="%d"`, p.Vertex), `cursor="move"`)

	case scene.KindLabel:
		c := p.Points[0]
		canvas.Text(c.X, c.Y, p.Text,
			fill(style.LabelColor), `stroke="none"`,
			fmt.Sprintf(`font-size="%g"`, style.FontSize),
			`font-family="sans-serif"`, `text-anchor="middle"`, `dominant-baseline="central"`)
	}
}

func coords(p scene.Primitive) ([]float64, []float64) {
	xs := make([]float64, len(p.Points))
	ys := make([]float64, len(p.Points))
	for i, pt := range p.Points {
		xs[i] = pt.X
		ys[i] = pt.Y
	}
	return xs, ys
}
