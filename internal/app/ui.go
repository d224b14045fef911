package app

import (
	"fmt"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/gotriangle/pkg/geometry"
	"github.com/philipparndt/gotriangle/pkg/scene"
	"github.com/philipparndt/gotriangle/version"
)

// InfoLabel is a boxed text label in screen space
type InfoLabel struct {
	Text      string
	ScreenPos rl.Vector2
	Color     rl.Color
}

// drawInfoLabel renders the label centered above its position and returns its
// bounding rectangle
func (app *App) drawInfoLabel(l InfoLabel, fontSize, padding float32) rl.Rectangle {
	textSize := app.measureText(l.Text, fontSize)

	rect := rl.Rectangle{
		X:      l.ScreenPos.X - textSize.X/2 - padding,
		Y:      l.ScreenPos.Y - textSize.Y - 2*padding,
		Width:  textSize.X + 2*padding,
		Height: textSize.Y + 2*padding,
	}

	rl.DrawRectangleRec(rect, rl.NewColor(20, 20, 20, 220))
	rl.DrawRectangleLinesEx(rect, 2, l.Color)
	app.drawText(l.Text, rl.Vector2{X: rect.X + padding, Y: rect.Y + padding}, fontSize, l.Color)

	return rect
}

func (app *App) measureText(text string, size float32) rl.Vector2 {
	if !app.UI.hasFont {
		return rl.Vector2{X: float32(rl.MeasureText(text, int32(size))), Y: size}
	}
	return rl.MeasureTextEx(app.UI.font, text, size, 1)
}

func (app *App) drawText(text string, pos rl.Vector2, size float32, col rl.Color) {
	if !app.UI.hasFont {
		rl.DrawText(text, int32(pos.X), int32(pos.Y), int32(size), col)
		return
	}
	rl.DrawTextEx(app.UI.font, text, pos, size, 1, col)
}

// drawUI draws the user interface
func (app *App) drawUI() {
	f := app.Figure.figure
	y := float32(10)
	lineHeight := float32(20)
	fontSize16 := float32(16)
	fontSize14 := float32(14)
	fontSize12 := float32(12)

	screenWidth := float32(rl.GetScreenWidth())
	screenHeight := float32(rl.GetScreenHeight())

	// Hovered or dragged vertex coordinates
	vertex := app.Interaction.hoveredVertex
	if active, ok := f.Controller().Active(); ok {
		vertex = active
	}
	if vertex >= 0 {
		v := f.Triangle()[vertex]
		pos := vec(f.Mapping().LocalToScreen(v.Point))
		pos.Y -= 16
		app.drawInfoLabel(InfoLabel{Text: v.String(), ScreenPos: pos, Color: rl.Yellow}, fontSize14, 6)
	}

	// Reload error (top-right corner)
	if msg := app.FileWatch.lastError; msg != "" {
		text := "Reload failed: " + msg
		textSize := app.measureText(text, fontSize14)
		boxX := screenWidth - textSize.X - 40
		rl.DrawRectangle(int32(boxX), 20, int32(textSize.X+20), int32(textSize.Y+20), rl.NewColor(0, 0, 0, 180))
		rl.DrawRectangleLines(int32(boxX), 20, int32(textSize.X+20), int32(textSize.Y+20), rl.Red)
		app.drawText(text, rl.Vector2{X: boxX + 10, Y: 30}, fontSize14, rl.Red)
	}

	if app.View.showInfo {
		y = app.drawInfo(y, lineHeight, fontSize16, fontSize14)
	}
	if app.View.showHelp {
		app.drawHelp(y, lineHeight, fontSize16, fontSize14)
	}

	// Version and FPS in bottom-left corner
	bottomY := screenHeight - 30
	versionText := fmt.Sprintf("v%s", version.GetVersion())
	app.drawText(versionText, rl.Vector2{X: 10, Y: bottomY}, fontSize12, rl.Gray)

	status := fmt.Sprintf("FPS: %d", rl.GetFPS())
	if app.Figure.changes > 0 {
		status += fmt.Sprintf(" | %d change(s)", app.Figure.changes)
	}
	versionWidth := app.measureText(versionText, fontSize12).X
	app.drawText(status, rl.Vector2{X: 10 + versionWidth + 15, Y: bottomY}, fontSize12, rl.Lime)
}

func (app *App) drawInfo(y, lineHeight, titleSize, textSize float32) float32 {
	f := app.Figure.figure
	t := f.Triangle()
	d := f.Derived()

	// === TRIANGLE ===
	app.drawText("Triangle:", rl.Vector2{X: 10, Y: y}, titleSize, rl.Yellow)
	y += lineHeight
	for _, v := range t {
		app.drawText("  "+v.String(), rl.Vector2{X: 10, Y: y}, textSize, rl.White)
		y += lineHeight
	}
	app.drawText(fmt.Sprintf("  Shape: %s", f.Classification()), rl.Vector2{X: 10, Y: y}, textSize, rl.NewColor(100, 200, 255, 255))
	y += lineHeight
	app.drawText(fmt.Sprintf("  Area: %.1f | Perimeter: %.1f", geometry.Area(t), geometry.Perimeter(t)), rl.Vector2{X: 10, Y: y}, textSize, rl.White)
	y += lineHeight

	angles := geometry.Angles(t)
	app.drawText(fmt.Sprintf("  Angles: %.1f° %.1f° %.1f°", degrees(angles[0]), degrees(angles[1]), degrees(angles[2])),
		rl.Vector2{X: 10, Y: y}, textSize, rl.White)
	y += lineHeight * 2

	// === NOTABLE POINTS ===
	app.drawText("Notable points:", rl.Vector2{X: 10, Y: y}, titleSize, rl.Yellow)
	y += lineHeight
	highlight := f.Options().Highlight
	for _, np := range scene.NotablePoints[1:] {
		p, ok := np.Select(d)
		if np == scene.Centroid {
			p, ok = d.Centroid, true
		}
		text := fmt.Sprintf("  %s %s", np, geometry.FormatPoint(p.Point))
		col := rl.White
		switch {
		case !ok:
			text = fmt.Sprintf("  %s undefined", np)
			col = rl.Gray
		case np == highlight:
			col = rl.Orange
		}
		app.drawText(text, rl.Vector2{X: 10, Y: y}, textSize, col)
		y += lineHeight
	}
	if d.Degenerate {
		app.drawText("  Degenerate: points are collinear", rl.Vector2{X: 10, Y: y}, textSize, rl.Red)
		y += lineHeight
	}
	return y + lineHeight
}

func (app *App) drawHelp(y, lineHeight, titleSize, textSize float32) {
	f := app.Figure.figure
	opts := f.Options()

	// === SHOW ===
	app.drawText("Show:", rl.Vector2{X: 10, Y: y}, titleSize, rl.Yellow)
	y += lineHeight
	for _, t := range toggles {
		col := rl.LightGray
		if *t.field(&opts) {
			col = rl.Green
		}
		app.drawText("  "+t.label, rl.Vector2{X: 10, Y: y}, textSize, col)
		y += lineHeight
	}
	app.drawText(fmt.Sprintf("  H: Highlight (%s)", opts.Highlight), rl.Vector2{X: 10, Y: y}, textSize, rl.Orange)
	y += lineHeight * 2

	// === INTERACT ===
	app.drawText("Interact:", rl.Vector2{X: 10, Y: y}, titleSize, rl.Yellow)
	y += lineHeight
	dragText, dragColor := "  D: Dragging off", rl.LightGray
	if f.Controller().Draggable() {
		dragText, dragColor = "  D: Dragging on", rl.Green
	}
	app.drawText(dragText, rl.Vector2{X: 10, Y: y}, textSize, dragColor)
	y += lineHeight
	lines := []string{
		"  Left Drag: Move vertex",
		"  Click point: Highlight it",
		"  ESC: Cancel drag | R: Reset",
		"  Tab: Info | F1: Help",
	}
	for _, line := range lines {
		app.drawText(line, rl.Vector2{X: 10, Y: y}, textSize, rl.LightGray)
		y += lineHeight
	}
}

func degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}
