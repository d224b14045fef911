// Package interaction turns pointer input into vertex moves.
//
// A Controller owns the triangle. It hit-tests vertex handles, runs one drag
// session at a time and notifies observers after every vertex change. Pointer
// coordinates arrive in screen space and are mapped into the figure's local
// space with the current screen mapping.
package interaction

import (
	"errors"
	"fmt"
	"math"

	"github.com/philipparndt/gotriangle/pkg/geometry"
	"github.com/philipparndt/gotriangle/pkg/viewport"
)

// DefaultHandleRadius is the hit radius of a vertex handle in local units
const DefaultHandleRadius = 12.0

// ErrVertexIndex is returned for a vertex index outside 0..2
var ErrVertexIndex = errors.New("vertex index out of range")

// PointerID identifies a pointer: the mouse or one touch contact
type PointerID int

// MousePointer is the id frontends use for the mouse
const MousePointer PointerID = 0

// StaleAfter is the number of downs from other pointers, with no event from
// the captured pointer in between, after which the session counts as lost
const StaleAfter = 3

// PointerEvent is a pointer position in screen space
type PointerEvent struct {
	Pointer PointerID
	X, Y    float64
}

func (e PointerEvent) point() geometry.Point {
	return geometry.NewPoint(e.X, e.Y)
}

func (e PointerEvent) finite() bool {
	return !math.IsNaN(e.X) && !math.IsNaN(e.Y) && !math.IsInf(e.X, 0) && !math.IsInf(e.Y, 0)
}

// Observer receives the full triangle after each vertex change
type Observer func(geometry.Triangle)

// session is the captured drag
type session struct {
	pointer PointerID
	vertex  int
	// ignored counts downs from other pointers since the captured pointer
	// was last heard from
	ignored int
}

// Controller is the drag state machine. It is not safe for concurrent use;
// frontends call it from their UI goroutine.
type Controller struct {
	// HandleRadius is the hit radius of the handles in local units
	HandleRadius float64

	triangle  geometry.Triangle
	mapping   viewport.ScreenMapping
	draggable bool
	active    *session
	observers []Observer
}

// NewController creates a controller for the triangle with an identity
// screen mapping
func NewController(t geometry.Triangle, draggable bool) *Controller {
	return &Controller{
		HandleRadius: DefaultHandleRadius,
		triangle:     t,
		mapping:      viewport.IdentityMapping(),
		draggable:    draggable,
	}
}

// Observe registers an observer. Observers run synchronously in registration
// order.
func (c *Controller) Observe(fn Observer) {
	if fn != nil {
		c.observers = append(c.observers, fn)
	}
}

// Triangle returns the current triangle
func (c *Controller) Triangle() geometry.Triangle {
	return c.triangle
}

// Mapping returns the current screen mapping
func (c *Controller) Mapping() viewport.ScreenMapping {
	return c.mapping
}

// SetTransform replaces the local-to-screen transform used to map pointer
// events. A singular transform maps as identity.
func (c *Controller) SetTransform(toScreen viewport.Affine) {
	c.mapping = viewport.NewScreenMapping(toScreen)
}

// Draggable reports whether pointer input can move vertices
func (c *Controller) Draggable() bool {
	return c.draggable
}

// SetDraggable enables or disables dragging. Disabling ends a live session.
func (c *Controller) SetDraggable(draggable bool) {
	c.draggable = draggable
	if !draggable {
		c.active = nil
	}
}

// Active returns the vertex being dragged
func (c *Controller) Active() (int, bool) {
	if c.active == nil {
		return -1, false
	}
	return c.active.vertex, true
}

// HitTest returns the vertex whose handle contains the event, or -1. When
// handles overlap the nearest one wins, ties go to the lower index.
func (c *Controller) HitTest(ev PointerEvent) int {
	if !ev.finite() {
		return -1
	}
	local := c.mapping.ScreenToLocal(ev.point())

	hit := -1
	best := math.Inf(1)
	for i, v := range c.triangle {
		d := geometry.Distance(local, v.Point)
		if d <= c.radius() && d < best {
			hit = i
			best = d
		}
	}
	return hit
}

func (c *Controller) radius() float64 {
	if c.HandleRadius <= 0 || math.IsNaN(c.HandleRadius) {
		return DefaultHandleRadius
	}
	return c.HandleRadius
}

// Hover returns the handle under an idle pointer for hover feedback, or -1.
// Nothing is hoverable while dragging is disabled.
func (c *Controller) Hover(ev PointerEvent) int {
	if !c.draggable {
		return -1
	}
	if c.active != nil {
		return c.active.vertex
	}
	return c.HitTest(ev)
}

// PointerDown starts a drag session when the event hits a handle. A down
// from the pointer that already holds a session means its up was lost: the
// stale session is dropped and a fresh one may start. A down from any other
// pointer while a session is live is ignored, unless StaleAfter such downs
// arrived while the captured pointer stayed silent. Then the captured
// pointer's up or leave was lost too and the new down starts over.
func (c *Controller) PointerDown(ev PointerEvent) bool {
	if c.active != nil {
		if c.active.pointer != ev.Pointer {
			c.active.ignored++
			if c.active.ignored < StaleAfter {
				return false
			}
		}
		c.active = nil
	}
	if !c.draggable {
		return false
	}

	vertex := c.HitTest(ev)
	if vertex < 0 {
		return false
	}
	c.active = &session{pointer: ev.Pointer, vertex: vertex}
	return true
}

// PointerMove moves the active vertex to the event's local position. Only
// the captured pointer moves it, wherever it is on the screen.
func (c *Controller) PointerMove(ev PointerEvent) bool {
	if c.active == nil || c.active.pointer != ev.Pointer {
		return false
	}
	c.active.ignored = 0
	if !ev.finite() {
		return false
	}

	local := c.mapping.ScreenToLocal(ev.point())
	if local == c.triangle[c.active.vertex].Point {
		return false
	}
	c.commit(c.triangle.WithVertex(c.active.vertex, local))
	return true
}

// PointerUp ends the session of the event's pointer
func (c *Controller) PointerUp(ev PointerEvent) bool {
	return c.release(ev.Pointer)
}

// PointerLeave ends the session of the event's pointer when it leaves the
// surface
func (c *Controller) PointerLeave(ev PointerEvent) bool {
	return c.release(ev.Pointer)
}

func (c *Controller) release(pointer PointerID) bool {
	if c.active == nil || c.active.pointer != pointer {
		return false
	}
	c.active = nil
	return true
}

// Cancel ends any live session, for example when the window loses focus
func (c *Controller) Cancel() {
	c.active = nil
}

// SetVertex moves one vertex programmatically, keeping its label
func (c *Controller) SetVertex(i int, p geometry.Point) error {
	if i < 0 || i >= len(c.triangle) {
		return fmt.Errorf("%w: %d", ErrVertexIndex, i)
	}
	c.commit(c.triangle.WithVertex(i, p))
	return nil
}

// SetTriangle replaces the whole triangle
func (c *Controller) SetTriangle(t geometry.Triangle) {
	c.commit(t)
}

func (c *Controller) commit(t geometry.Triangle) {
	c.triangle = t
	for _, fn := range c.observers {
		fn(t)
	}
}
