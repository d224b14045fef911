// Package viewer shows a figure as an interactive fyne widget.
package viewer

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	"github.com/philipparndt/gotriangle/internal/interaction"
	"github.com/philipparndt/gotriangle/pkg/figure"
	"github.com/philipparndt/gotriangle/pkg/geometry"
	"github.com/philipparndt/gotriangle/pkg/render"
	"github.com/philipparndt/gotriangle/pkg/scene"
)

// FigureWidget draws a figure and feeds mouse input into its interaction
// controller
type FigureWidget struct {
	widget.BaseWidget

	figure *figure.Figure
	style  render.Style

	objects []fyne.CanvasObject
	size    fyne.Size

	halo       *canvas.Circle
	haloCenter fyne.Position
	haloRadius float32
	haloAnim   *fyne.Animation

	dragging bool
	hovered  int

	onChange func()
}

var (
	_ fyne.Draggable     = (*FigureWidget)(nil)
	_ fyne.Tappable      = (*FigureWidget)(nil)
	_ desktop.Hoverable  = (*FigureWidget)(nil)
	_ desktop.Cursorable = (*FigureWidget)(nil)
)

// NewFigureWidget creates a widget showing the figure
func NewFigureWidget(f *figure.Figure, style render.Style) *FigureWidget {
	w := &FigureWidget{
		style:   style,
		hovered: -1,
	}
	w.ExtendBaseWidget(w)
	w.attach(f)
	return w
}

func (w *FigureWidget) attach(f *figure.Figure) {
	w.figure = f
	f.OnVerticesChange(func(geometry.Triangle) {
		w.Update()
	})
}

// Figure returns the figure shown
func (w *FigureWidget) Figure() *figure.Figure {
	return w.figure
}

// SetFigure replaces the figure, for example after the configuration was
// reloaded
func (w *FigureWidget) SetFigure(f *figure.Figure) {
	w.dragging = false
	w.hovered = -1
	w.attach(f)
	w.Update()
}

// SetOnChange sets the callback run after the figure changed on screen
func (w *FigureWidget) SetOnChange(callback func()) {
	w.onChange = callback
}

// Update redraws the widget from the figure's current scene. Call it after
// changing the figure's options.
func (w *FigureWidget) Update() {
	w.Render(w.size.Width, w.size.Height)
	if w.onChange != nil {
		w.onChange()
	}
}

// Render lays the figure out for the given size and rebuilds the objects
func (w *FigureWidget) Render(width, height float32) {
	w.size = fyne.NewSize(width, height)
	w.figure.Resize(float64(width), float64(height))
	w.objects = w.buildObjects()
	w.Refresh()
}

// CreateRenderer creates the renderer for the widget
func (w *FigureWidget) CreateRenderer() fyne.WidgetRenderer {
	return &figureWidgetRenderer{widget: w}
}

func pointer(pos fyne.Position) interaction.PointerEvent {
	return interaction.PointerEvent{
		Pointer: interaction.MousePointer,
		X:       float64(pos.X),
		Y:       float64(pos.Y),
	}
}

// Dragged moves the vertex under the drag. Fyne reports a drag only once
// the pointer has moved, so the press is replayed at the drag origin.
func (w *FigureWidget) Dragged(event *fyne.DragEvent) {
	c := w.figure.Controller()
	if !w.dragging {
		w.dragging = true
		origin := fyne.NewPos(event.Position.X-event.Dragged.DX, event.Position.Y-event.Dragged.DY)
		c.PointerDown(pointer(origin))
	}
	c.PointerMove(pointer(event.Position))
}

// DragEnd releases the vertex
func (w *FigureWidget) DragEnd() {
	w.dragging = false
	w.figure.Controller().PointerUp(interaction.PointerEvent{Pointer: interaction.MousePointer})
}

// Tapped highlights the notable point under the tap, or clears the
// highlight when the tap hits the highlighted point
func (w *FigureWidget) Tapped(event *fyne.PointEvent) {
	hit := w.figure.NotableAt(float64(event.Position.X), float64(event.Position.Y), scene.DefaultHaloRadius)
	if hit == scene.None {
		return
	}
	w.figure.ToggleHighlight(hit)
	w.Update()
}

// MouseIn tracks the hovered vertex
func (w *FigureWidget) MouseIn(event *desktop.MouseEvent) {
	w.hover(event.Position)
}

// MouseMoved tracks the hovered vertex
func (w *FigureWidget) MouseMoved(event *desktop.MouseEvent) {
	w.hover(event.Position)
}

// MouseOut ends any drag, the pointer left the widget
func (w *FigureWidget) MouseOut() {
	w.figure.Controller().PointerLeave(interaction.PointerEvent{Pointer: interaction.MousePointer})
	w.setHovered(-1)
}

func (w *FigureWidget) hover(pos fyne.Position) {
	w.setHovered(w.figure.Controller().Hover(pointer(pos)))
}

func (w *FigureWidget) setHovered(vertex int) {
	if vertex == w.hovered {
		return
	}
	w.hovered = vertex
	w.objects = w.buildObjects()
	w.Refresh()
}

// Hovered returns the vertex under the pointer, -1 if none
func (w *FigureWidget) Hovered() int {
	return w.hovered
}

// Cursor shows a pointer over draggable vertices
func (w *FigureWidget) Cursor() desktop.Cursor {
	if w.hovered >= 0 {
		return desktop.PointerCursor
	}
	return desktop.DefaultCursor
}

// startHalo pulses the halo circle until the highlight goes away
func (w *FigureWidget) startHalo() {
	if w.haloAnim != nil || w.style.HaloPeriod <= 0 {
		return
	}
	period := time.Duration(w.style.HaloPeriod * float64(time.Second))
	w.haloAnim = fyne.NewAnimation(period, w.tickHalo)
	w.haloAnim.Curve = fyne.AnimationLinear
	w.haloAnim.RepeatCount = fyne.AnimationRepeatForever
	w.haloAnim.Start()
}

func (w *FigureWidget) stopHalo() {
	if w.haloAnim != nil {
		w.haloAnim.Stop()
		w.haloAnim = nil
	}
}

func (w *FigureWidget) tickHalo(progress float32) {
	if w.halo == nil {
		return
	}
	scale, fade := w.style.HaloAt(float64(progress))
	fill := nrgba(w.style.HaloFill)
	fill.A = uint8(float64(fill.A) * fade)
	w.halo.FillColor = fill
	place(w.halo, w.haloCenter, w.haloRadius*float32(scale))
	canvas.Refresh(w.halo)
}

// figureWidgetRenderer implements fyne.WidgetRenderer
type figureWidgetRenderer struct {
	widget  *FigureWidget
	objects []fyne.CanvasObject
}

func (r *figureWidgetRenderer) Layout(size fyne.Size) {
	if size != r.widget.size {
		r.widget.Render(size.Width, size.Height)
	}
}

func (r *figureWidgetRenderer) MinSize() fyne.Size {
	return fyne.NewSize(400, 400)
}

func (r *figureWidgetRenderer) Refresh() {
	r.objects = r.widget.objects
	canvas.Refresh(r.widget)
}

func (r *figureWidgetRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *figureWidgetRenderer) Destroy() {
	r.widget.stopHalo()
}
