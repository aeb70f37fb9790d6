package editor

import (
	"image"

	"floor-planner/internal/floorplan"
	"floor-planner/pkg/geometry"
)

// Editor is the composition root of the core. It owns the camera, the
// current tool, the drag session (via the controller), and the working
// element collection; it wires pointer events into the controller and
// reports completed mutations upward through callbacks.
//
// The Editor is single-threaded by construction: pointer events and
// renders arrive one at a time from the UI event loop, and nothing inside
// the core blocks or spawns work.
type Editor struct {
	grid     floorplan.Dimensions
	elements floorplan.Elements

	// allPickups optionally replaces elements.PickupPoints for rendering
	// and hit-testing, so the collaborator can show pickups that are not
	// part of the editable collection.
	allPickups []floorplan.PickupPoint
	selected   floorplan.IDSet

	graph     *floorplan.Graph
	showGraph bool

	camera     Camera
	tool       Tool
	controller Controller
	container  geometry.Size
	readOnly   bool

	onElementsChanged func(floorplan.Elements)
	onPickupToggled   func(string)
}

// New creates an editor for a grid of the given dimensions.
func New(grid floorplan.Dimensions) *Editor {
	return &Editor{
		grid:   grid,
		camera: NewCamera(),
		tool:   ToolSelect,
	}
}

// SetElements replaces the working element collection.
func (e *Editor) SetElements(elems floorplan.Elements) {
	e.elements = elems.Clone()
}

// Elements returns a snapshot of the working element collection.
func (e *Editor) Elements() floorplan.Elements {
	return e.elements.Clone()
}

// SetAllPickups sets the optional full pickup list used for rendering and
// pickup selection. Pass nil to fall back to the element collection.
func (e *Editor) SetAllPickups(pickups []floorplan.PickupPoint) {
	e.allPickups = pickups
}

// SetSelectedPickups sets the selected-pickup-id set. Selection is
// collaborator state; the editor only renders the distinction.
func (e *Editor) SetSelectedPickups(ids floorplan.IDSet) {
	e.selected = ids
}

// SetGraph sets the optional navigation graph overlay.
func (e *Editor) SetGraph(g *floorplan.Graph, show bool) {
	e.graph = g
	e.showGraph = show && g != nil
}

// SetReadOnly toggles read-only mode. When set, every pointer gesture
// pans; no mutation path is reachable.
func (e *Editor) SetReadOnly(readOnly bool) {
	e.readOnly = readOnly
}

// ReadOnly reports whether the editor is in read-only mode.
func (e *Editor) ReadOnly() bool {
	return e.readOnly
}

// SetTool selects the active tool. An in-flight session keeps the tool it
// started with.
func (e *Editor) SetTool(tool Tool) {
	e.tool = tool
}

// Tool returns the active tool.
func (e *Editor) Tool() Tool {
	return e.tool
}

// Camera returns the current camera.
func (e *Editor) Camera() Camera {
	return e.camera
}

// SetZoom seeds or adjusts the zoom level, clamped to the supported range.
func (e *Editor) SetZoom(zoom float64) {
	e.camera.SetZoom(zoom)
}

// ZoomIn increases zoom by one step.
func (e *Editor) ZoomIn() {
	e.camera.ZoomIn()
}

// ZoomOut decreases zoom by one step.
func (e *Editor) ZoomOut() {
	e.camera.ZoomOut()
}

// Resize records the container size pointer coordinates arrive in.
func (e *Editor) Resize(size geometry.Size) {
	e.container = size
}

// Session returns the active drag session, or nil.
func (e *Editor) Session() *DragSession {
	return e.controller.Session()
}

// OnElementsChanged registers the element-change callback. It receives a
// complete element collection snapshot after every committed mutation,
// never a delta.
func (e *Editor) OnElementsChanged(cb func(floorplan.Elements)) {
	e.onElementsChanged = cb
}

// OnPickupToggled registers the pickup-toggle callback, fired with a
// single pickup id when pickup selection resolves a hit.
func (e *Editor) OnPickupToggled(cb func(string)) {
	e.onPickupToggled = cb
}

// mapper builds the coordinate mapper for the current camera and container.
func (e *Editor) mapper() Mapper {
	return Mapper{Container: e.container, Grid: e.grid, Camera: e.camera}
}

// pickups resolves the pickup list used for rendering and hit-testing.
func (e *Editor) pickups() []floorplan.PickupPoint {
	if e.allPickups != nil {
		return e.allPickups
	}
	return e.elements.PickupPoints
}

// PointerDown handles a pointer press at canvas coordinates.
func (e *Editor) PointerDown(pos geometry.Point2D) {
	m := e.mapper()
	if !m.Ready() {
		return
	}
	out := e.controller.PointerDown(pos, e.tool, e.readOnly, m, e.elements, e.pickups())
	e.apply(out)
}

// PointerMove handles pointer motion at canvas coordinates.
func (e *Editor) PointerMove(pos geometry.Point2D) {
	m := e.mapper()
	if !m.Ready() {
		return
	}
	e.apply(e.controller.PointerMove(pos, m, e.elements))
}

// PointerUp handles a pointer release, committing any drag session.
func (e *Editor) PointerUp() {
	if !e.mapper().Ready() {
		return
	}
	e.apply(e.controller.PointerUp(e.elements))
}

// PointerLeave discards any in-flight pan or drag session without
// committing; it is equivalent to PointerUp for session termination.
func (e *Editor) PointerLeave() {
	e.apply(e.controller.PointerLeave())
}

// apply folds a controller outcome into the editor state and fires
// callbacks for completed intents.
func (e *Editor) apply(out Outcome) {
	if out.PanBy != (geometry.Point2D{}) {
		e.camera.PanBy(out.PanBy.X, out.PanBy.Y)
	}
	if out.Elements != nil {
		e.elements = *out.Elements
		if e.onElementsChanged != nil {
			e.onElementsChanged(e.elements.Clone())
		}
	}
	if out.ToggledPickup != "" && e.onPickupToggled != nil {
		e.onPickupToggled(out.ToggledPickup)
	}
}

// Render draws the current state into an RGBA image of the given pixel
// size. The pass is deterministic and side-effect free; invoking it
// redundantly is only a performance concern.
func (e *Editor) Render(w, h int) *image.RGBA {
	frame := Frame{
		Mapper:    Mapper{Container: geometry.Size{Width: float64(w), Height: float64(h)}, Grid: e.grid, Camera: e.camera},
		Elements:  e.elements,
		Pickups:   e.pickups(),
		Selected:  e.selected,
		Graph:     e.graph,
		ShowGraph: e.showGraph,
		Session:   e.controller.Session(),
	}
	return frame.Render(w, h)
}
