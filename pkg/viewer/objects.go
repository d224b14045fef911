package viewer

import (
	"image"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"github.com/philipparndt/gotriangle/pkg/geometry"
	"github.com/philipparndt/gotriangle/pkg/render"
	"github.com/philipparndt/gotriangle/pkg/scene"
	"github.com/philipparndt/gotriangle/pkg/viewport"
)

// nrgba converts a style color, which carries straight alpha
func nrgba(c color.RGBA) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

func pos(p geometry.Point) fyne.Position {
	return fyne.NewPos(float32(p.X), float32(p.Y))
}

// place sizes a circle object to radius r around center
func place(c *canvas.Circle, center fyne.Position, r float32) {
	c.Resize(fyne.NewSize(2*r, 2*r))
	c.Move(fyne.NewPos(center.X-r, center.Y-r))
}

func newLine(a, b geometry.Point, stroke render.Stroke) []fyne.CanvasObject {
	pieces := [][2]geometry.Point{{a, b}}
	if len(stroke.Dash) > 0 {
		pieces = render.Dashes(a, b, stroke.Dash)
	}

	objects := make([]fyne.CanvasObject, 0, len(pieces))
	for _, piece := range pieces {
		line := canvas.NewLine(nrgba(stroke.Color))
		line.StrokeWidth = float32(stroke.Width)
		line.Position1 = pos(piece[0])
		line.Position2 = pos(piece[1])
		objects = append(objects, line)
	}
	return objects
}

func toScreen(mapping viewport.ScreenMapping, points []geometry.Point) []geometry.Point {
	screen := make([]geometry.Point, len(points))
	for i, p := range points {
		screen[i] = mapping.LocalToScreen(p)
	}
	return screen
}

// buildObjects converts the figure's scene into canvas objects, back to
// front
func (w *FigureWidget) buildObjects() []fyne.CanvasObject {
	sc := w.figure.Scene()
	mapping := w.figure.Mapping()

	w.halo = nil
	var objects []fyne.CanvasObject
	for _, p := range sc.Primitives {
		objects = append(objects, w.objectsFor(mapping, p)...)
	}

	if w.halo != nil {
		w.startHalo()
	} else {
		w.stopHalo()
	}
	return objects
}

func (w *FigureWidget) objectsFor(mapping viewport.ScreenMapping, p scene.Primitive) []fyne.CanvasObject {
	style := w.style
	stroke := style.Stroke(p.Layer)

	switch p.Kind {
	case scene.KindGridLine, scene.KindSegment, scene.KindRightAngle:
		screen := toScreen(mapping, p.Points)
		var objects []fyne.CanvasObject
		for i := 1; i < len(screen); i++ {
			objects = append(objects, newLine(screen[i-1], screen[i], stroke)...)
		}
		return objects

	case scene.KindCircle:
		c := canvas.NewCircle(color.Transparent)
		c.StrokeColor = nrgba(stroke.Color)
		c.StrokeWidth = float32(stroke.Width)
		place(c, pos(mapping.LocalToScreen(p.Points[0])), float32(mapping.ScreenDistance(p.Radius)))
		return []fyne.CanvasObject{c}

	case scene.KindPolygon:
		screen := toScreen(mapping, p.Points)
		objects := []fyne.CanvasObject{w.triangleFill(screen)}
		for i := range screen {
			objects = append(objects, newLine(screen[i], screen[(i+1)%len(screen)], stroke)...)
		}
		return objects

	case scene.KindHalo:
		w.haloCenter = pos(mapping.LocalToScreen(p.Points[0]))
		w.haloRadius = float32(mapping.ScreenDistance(p.Radius))
		w.halo = canvas.NewCircle(nrgba(style.HaloFill))
		place(w.halo, w.haloCenter, w.haloRadius)
		return []fyne.CanvasObject{w.halo}

	case scene.KindMarker:
		c := canvas.NewCircle(nrgba(stroke.Color))
		place(c, pos(mapping.LocalToScreen(p.Points[0])), float32(mapping.ScreenDistance(p.Radius)))
		return []fyne.CanvasObject{c}

	case scene.KindHandle:
		r := float32(mapping.ScreenDistance(p.Radius))
		if p.Vertex == w.hovered {
			r *= scene.HoverScale
		}
		c := canvas.NewCircle(nrgba(style.HandleFill))
		c.StrokeColor = nrgba(stroke.Color)
		c.StrokeWidth = float32(stroke.Width)
		place(c, pos(mapping.LocalToScreen(p.Points[0])), r)
		return []fyne.CanvasObject{c}

	case scene.KindLabel:
		text := canvas.NewText(p.Text, nrgba(style.LabelColor))
		text.TextSize = float32(style.FontSize)
		size := text.MinSize()
		center := pos(mapping.LocalToScreen(p.Points[0]))
		text.Resize(size)
		text.Move(fyne.NewPos(center.X-size.Width/2, center.Y-size.Height/2))
		return []fyne.CanvasObject{text}
	}
	return nil
}

// triangleFill rasterizes the triangle body at the output's pixel density
func (w *FigureWidget) triangleFill(screen []geometry.Point) fyne.CanvasObject {
	width := w.size.Width
	fill := nrgba(w.style.TriangleFill)

	raster := canvas.NewRaster(func(pw, ph int) image.Image {
		img := image.NewRGBA(image.Rect(0, 0, pw, ph))
		if len(screen) != 3 {
			return img
		}
		scale := 1.0
		if width > 0 {
			scale = float64(pw) / float64(width)
		}
		fillTriangle(img, screen[0].Times(scale), screen[1].Times(scale), screen[2].Times(scale), fill)
		return img
	})
	raster.Resize(w.size)
	raster.Move(fyne.NewPos(0, 0))
	return raster
}
