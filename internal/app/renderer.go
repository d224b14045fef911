package app

import (
	"image/color"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/gotriangle/pkg/geometry"
	"github.com/philipparndt/gotriangle/pkg/render"
	"github.com/philipparndt/gotriangle/pkg/scene"
	"github.com/philipparndt/gotriangle/pkg/viewport"
)

// circleSegments is the tessellation of circles and rings
const circleSegments = 72

// viewerStyle is the default palette on the dark window background
func viewerStyle() render.Style {
	style := render.DefaultStyle()
	style.Background = color.RGBA{15, 18, 25, 255}
	style.TriangleFill = color.RGBA{66, 133, 244, 60}
	style.HandleFill = color.RGBA{30, 34, 44, 255}
	style.LabelColor = color.RGBA{235, 235, 235, 255}
	style.FontSize = 18

	grid := style.Stroke(scene.LayerGrid)
	grid.Color = color.RGBA{40, 45, 56, 255}
	grid.Width = 1
	style.Strokes[scene.LayerGrid] = grid

	for _, layer := range []scene.Layer{scene.LayerTriangle, scene.LayerVertices} {
		s := style.Stroke(layer)
		s.Color = color.RGBA{100, 181, 246, 255}
		style.Strokes[layer] = s
	}
	return style
}

func rlColor(c color.RGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}

func vec(p geometry.Point) rl.Vector2 {
	return rl.Vector2{X: float32(p.X), Y: float32(p.Y)}
}

// drawScene draws the composed primitives in order
func (app *App) drawScene() {
	f := app.Figure.figure
	mapping := f.Mapping()
	style := app.View.style

	for _, p := range f.Scene().Primitives {
		app.drawPrimitive(mapping, p, style)
	}
}

func (app *App) drawPrimitive(mapping viewport.ScreenMapping, p scene.Primitive, style render.Style) {
	stroke := style.Stroke(p.Layer)
	width := float32(stroke.Width)
	col := rlColor(stroke.Color)

	switch p.Kind {
	case scene.KindGridLine, scene.KindSegment, scene.KindRightAngle:
		screen := toScreen(mapping, p.Points)
		for i := 1; i < len(screen); i++ {
			drawLine(screen[i-1], screen[i], width, stroke.Dash, col)
		}

	case scene.KindCircle:
		c := vec(mapping.LocalToScreen(p.Points[0]))
		r := float32(mapping.ScreenDistance(p.Radius))
		rl.DrawRing(c, r-width/2, r+width/2, 0, 360, circleSegments, col)

	case scene.KindPolygon:
		screen := toScreen(mapping, p.Points)
		if len(screen) == 3 {
			a, b, c := counterClockwise(screen[0], screen[1], screen[2])
			rl.DrawTriangle(vec(a), vec(b), vec(c), rlColor(style.TriangleFill))
		}
		for i := range screen {
			drawLine(screen[i], screen[(i+1)%len(screen)], width, stroke.Dash, col)
		}

	case scene.KindHalo:
		c := vec(mapping.LocalToScreen(p.Points[0]))
		scale, fade := haloPhase(rl.GetTime(), style)
		r := float32(mapping.ScreenDistance(p.Radius) * scale)
		halo := style.HaloFill
		halo.A = uint8(float64(halo.A) * fade)
		rl.DrawCircleV(c, r, rlColor(halo))

	case scene.KindMarker:
		c := vec(mapping.LocalToScreen(p.Points[0]))
		rl.DrawCircleV(c, float32(mapping.ScreenDistance(p.Radius)), col)

	case scene.KindHandle:
		c := vec(mapping.LocalToScreen(p.Points[0]))
		r := float32(mapping.ScreenDistance(p.Radius))
		if p.Vertex == app.Interaction.hoveredVertex {
			r *= scene.HoverScale
		}
		rl.DrawCircleV(c, r, rlColor(style.HandleFill))
		rl.DrawRing(c, r-width/2, r+width/2, 0, 360, circleSegments, col)

	case scene.KindLabel:
		c := vec(mapping.LocalToScreen(p.Points[0]))
		app.drawTextCentered(p.Text, c, float32(style.FontSize), rlColor(style.LabelColor))
	}
}

func toScreen(mapping viewport.ScreenMapping, points []geometry.Point) []geometry.Point {
	screen := make([]geometry.Point, len(points))
	for i, p := range points {
		screen[i] = mapping.LocalToScreen(p)
	}
	return screen
}

// counterClockwise orders the corners the way raylib fills them. Screen y
// grows downwards, so the on-screen counter-clockwise turn has a negative
// cross product.
func counterClockwise(a, b, c geometry.Point) (geometry.Point, geometry.Point, geometry.Point) {
	cross := (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
	if cross > 0 {
		return a, c, b
	}
	return a, b, c
}

// drawLine draws a solid or dashed line in screen space
func drawLine(a, b geometry.Point, width float32, dash []float64, col rl.Color) {
	if len(dash) == 0 {
		rl.DrawLineEx(vec(a), vec(b), width, col)
		return
	}
	for _, piece := range render.Dashes(a, b, dash) {
		rl.DrawLineEx(vec(piece[0]), vec(piece[1]), width, col)
	}
}

// haloPhase returns the halo's radius scale and alpha fade at time t
func haloPhase(t float64, style render.Style) (float64, float64) {
	if style.HaloPeriod <= 0 {
		return 1, 1
	}
	return style.HaloAt(math.Mod(t, style.HaloPeriod) / style.HaloPeriod)
}

func (app *App) drawTextCentered(text string, center rl.Vector2, size float32, col rl.Color) {
	if !app.UI.hasFont {
		w := rl.MeasureText(text, int32(size))
		rl.DrawText(text, int32(center.X)-w/2, int32(center.Y-size/2), int32(size), col)
		return
	}
	measured := rl.MeasureTextEx(app.UI.font, text, size, 1)
	pos := rl.Vector2{X: center.X - measured.X/2, Y: center.Y - measured.Y/2}
	rl.DrawTextEx(app.UI.font, text, pos, size, 1, col)
}
