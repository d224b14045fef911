package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/gotriangle/internal/interaction"
	"github.com/philipparndt/gotriangle/pkg/geometry"
	"github.com/philipparndt/gotriangle/pkg/scene"
)

// clickTolerance is how far the mouse may travel, in pixels, for a press
// and release to still count as a click
const clickTolerance = 3

// toggle is a keyboard shortcut for one construction
type toggle struct {
	key   int32
	label string
	field func(*scene.Options) *bool
}

var toggles = []toggle{
	{rl.KeyM, "M: Medians", func(o *scene.Options) *bool { return &o.ShowMedians }},
	{rl.KeyA, "A: Altitudes", func(o *scene.Options) *bool { return &o.ShowAltitudes }},
	{rl.KeyB, "B: Bisectors", func(o *scene.Options) *bool { return &o.ShowBisectors }},
	{rl.KeyP, "P: Perpendicular bisectors", func(o *scene.Options) *bool { return &o.ShowPerpendicularBisectors }},
	{rl.KeyC, "C: Circumcircle", func(o *scene.Options) *bool { return &o.ShowCircumcircle }},
	{rl.KeyI, "I: Incircle", func(o *scene.Options) *bool { return &o.ShowIncircle }},
	{rl.KeyE, "E: Euler line", func(o *scene.Options) *bool { return &o.ShowEulerLine }},
	{rl.KeyG, "G: Grid", func(o *scene.Options) *bool { return &o.ShowGrid }},
	{rl.KeyL, "L: Labels", func(o *scene.Options) *bool { return &o.ShowLabels }},
}

// handleInput processes user input
func (app *App) handleInput() {
	app.handleKeys()
	app.handleMouse()
}

func (app *App) handleKeys() {
	f := app.Figure.figure
	ctrlPressed := rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl)

	if rl.IsKeyPressed(rl.KeyEscape) {
		f.Controller().Cancel()
	}
	if rl.IsKeyPressed(rl.KeyF1) {
		app.View.showHelp = !app.View.showHelp
	}
	if rl.IsKeyPressed(rl.KeyTab) {
		app.View.showInfo = !app.View.showInfo
	}
	if ctrlPressed {
		return
	}

	opts := f.Options()
	changed := false
	for _, t := range toggles {
		if rl.IsKeyPressed(t.key) {
			field := t.field(&opts)
			*field = !*field
			changed = true
		}
	}
	if rl.IsKeyPressed(rl.KeyH) {
		opts.Highlight = nextHighlight(opts.Highlight)
		changed = true
	}
	if changed {
		f.SetOptions(opts)
	}

	if rl.IsKeyPressed(rl.KeyD) {
		f.SetDraggable(!f.Controller().Draggable())
	}
	if rl.IsKeyPressed(rl.KeyR) {
		f.SetTriangle(geometry.DefaultTriangle())
	}
}

// handleMouse feeds the mouse into the interaction controller
func (app *App) handleMouse() {
	c := app.Figure.figure.Controller()
	pos := rl.GetMousePosition()
	ev := interaction.PointerEvent{Pointer: interaction.MousePointer, X: float64(pos.X), Y: float64(pos.Y)}

	onScreen := rl.IsCursorOnScreen() && rl.IsWindowFocused()
	if !onScreen {
		if app.Interaction.mouseOnScreen {
			c.PointerLeave(ev)
		}
		app.Interaction.mouseOnScreen = false
		app.Interaction.hoveredVertex = -1
		return
	}
	app.Interaction.mouseOnScreen = true

	// Track mouse down for click vs drag detection
	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		app.Interaction.mouseDownPos = pos
		app.Interaction.mouseMoved = false
		c.PointerDown(ev)
	}

	if rl.IsMouseButtonDown(rl.MouseLeftButton) {
		if rl.Vector2Distance(pos, app.Interaction.mouseDownPos) > clickTolerance {
			app.Interaction.mouseMoved = true
		}
		if pos != app.Interaction.lastMousePos {
			c.PointerMove(ev)
		}
	}

	if rl.IsMouseButtonReleased(rl.MouseLeftButton) {
		_, dragging := c.Active()
		c.PointerUp(ev)
		if !app.Interaction.mouseMoved && !dragging {
			app.selectNotablePoint(ev)
		}
	}

	app.Interaction.lastMousePos = pos
	app.Interaction.hoveredVertex = c.Hover(ev)

	switch {
	case app.Interaction.hoveredVertex >= 0:
		rl.SetMouseCursor(rl.MouseCursorPointingHand)
	default:
		rl.SetMouseCursor(rl.MouseCursorDefault)
	}
}

// selectNotablePoint highlights the notable point under a click, or clears
// the highlight when the click hits the highlighted point
func (app *App) selectNotablePoint(ev interaction.PointerEvent) {
	f := app.Figure.figure
	if hit := f.NotableAt(ev.X, ev.Y, scene.DefaultHaloRadius); hit != scene.None {
		f.ToggleHighlight(hit)
	}
}

// nextHighlight cycles none, centroid, orthocenter, incenter, circumcenter
func nextHighlight(p scene.NotablePoint) scene.NotablePoint {
	return (p + 1) % (scene.Circumcenter + 1)
}
