package editor

import (
	"math"

	"floor-planner/internal/floorplan"
	"floor-planner/pkg/geometry"
)

// pickupHitFactor scales the hit threshold for pickup selection relative
// to the smaller cell dimension.
const pickupHitFactor = 0.3

// State identifies the controller's interaction state.
type State int

const (
	StateIdle State = iota
	StatePanning
	StateDragging
)

// DragSession is the transient state between pointer-down and pointer-up
// while a placement or erase gesture is in progress. It is nil outside
// StateDragging and is discarded whole, never partially committed.
type DragSession struct {
	Tool    Tool
	Anchor  geometry.PointInt
	Current geometry.PointInt
	Valid   bool
}

// ShelfRect returns the rectangle a shelf commit would occupy: the min
// corner of anchor/current with the drag extents as size. A drag that
// stays on the anchor cell has zero extent on both axes.
func (s DragSession) ShelfRect() geometry.RectInt {
	x1, x2 := s.Anchor.X, s.Current.X
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	y1, y2 := s.Anchor.Y, s.Current.Y
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	return geometry.RectInt{X: x1, Y: y1, Width: x2 - x1, Height: y2 - y1}
}

// CellSpan returns the inclusive cell rectangle covered by the drag, used
// by erase commits and the drag preview.
func (s DragSession) CellSpan() geometry.RectInt {
	return geometry.SpanningRect(s.Anchor, s.Current)
}

// Outcome reports what a pointer event produced. Zero-valued fields mean
// "nothing of that kind happened".
type Outcome struct {
	// PanBy is a camera pan delta in pixels.
	PanBy geometry.Point2D
	// Elements is non-nil when a commit mutated the collection.
	Elements *floorplan.Elements
	// ToggledPickup carries a pickup id when pickup selection resolved a hit.
	ToggledPickup string
	// Redraw is set when visible state changed without a mutation.
	Redraw bool
}

// Controller is the tool state machine. It consumes pointer events and
// produces pan deltas, drag-session updates, and completed mutations. It
// holds no camera or element state of its own; the Editor passes those in
// with each event.
type Controller struct {
	state       State
	session     *DragSession
	lastPointer geometry.Point2D
}

// State returns the current interaction state.
func (c *Controller) State() State {
	return c.state
}

// Session returns the active drag session, or nil outside a drag.
func (c *Controller) Session() *DragSession {
	return c.session
}

// PointerDown starts a pan, opens a drag session, or resolves a pickup
// toggle, depending on the tool. Read-only mode forces the pan path for
// every tool.
func (c *Controller) PointerDown(pos geometry.Point2D, tool Tool, readOnly bool, m Mapper, elems floorplan.Elements, pickups []floorplan.PickupPoint) Outcome {
	if c.state != StateIdle {
		return Outcome{}
	}

	if tool == ToolSelect || readOnly {
		c.state = StatePanning
		c.lastPointer = pos
		return Outcome{}
	}

	if tool == ToolPickupSelect {
		// Immediate action, no session.
		if id, ok := nearestPickup(pos, pickups, m); ok {
			return Outcome{ToggledPickup: id}
		}
		return Outcome{}
	}

	if !tool.Drags() {
		return Outcome{}
	}

	cell := m.CanvasToGrid(pos)
	if !m.Grid.Contains(cell) {
		return Outcome{}
	}

	c.state = StateDragging
	c.session = &DragSession{Tool: tool, Anchor: cell, Current: cell}
	c.session.Valid = sessionValid(*c.session, elems)
	return Outcome{Redraw: true}
}

// PointerMove pans the camera or advances the drag session. Cells outside
// the grid bounds are ignored; the session retains its last valid cell.
func (c *Controller) PointerMove(pos geometry.Point2D, m Mapper, elems floorplan.Elements) Outcome {
	switch c.state {
	case StatePanning:
		delta := pos.Sub(c.lastPointer)
		c.lastPointer = pos
		return Outcome{PanBy: delta, Redraw: true}

	case StateDragging:
		cell := m.CanvasToGrid(pos)
		if !m.Grid.Contains(cell) {
			return Outcome{}
		}
		if cell == c.session.Current {
			return Outcome{}
		}
		c.session.Current = cell
		c.session.Valid = sessionValid(*c.session, elems)
		return Outcome{Redraw: true}
	}
	return Outcome{}
}

// PointerUp ends a pan or commits the drag session. Invalid sessions are
// silently discarded; the only observable effect is that no element
// mutation is reported.
func (c *Controller) PointerUp(elems floorplan.Elements) Outcome {
	switch c.state {
	case StatePanning:
		c.state = StateIdle
		return Outcome{}

	case StateDragging:
		session := *c.session
		c.reset()
		if next, ok := commit(session, elems); ok {
			return Outcome{Elements: &next, Redraw: true}
		}
		return Outcome{Redraw: true}
	}
	return Outcome{}
}

// PointerLeave terminates any pan or drag without committing. The session
// never straddles an interaction boundary.
func (c *Controller) PointerLeave() Outcome {
	switch c.state {
	case StatePanning:
		c.state = StateIdle
		return Outcome{}
	case StateDragging:
		c.reset()
		return Outcome{Redraw: true}
	}
	return Outcome{}
}

func (c *Controller) reset() {
	c.state = StateIdle
	c.session = nil
}

// sessionValid recomputes the live validity flag for the session.
func sessionValid(s DragSession, elems floorplan.Elements) bool {
	switch s.Tool {
	case ToolShelf:
		r := s.ShelfRect()
		if r.Width == 0 || r.Height == 0 {
			return false
		}
		return elems.RectFree(r.ToFloat())
	case ToolDropoff, ToolRobotStation:
		return elems.PointFree(s.Current.ToFloat())
	case ToolErase:
		return true
	}
	return false
}

// commit applies a completed drag session to the element collection.
// It returns the updated collection and whether anything changed.
func commit(s DragSession, elems floorplan.Elements) (floorplan.Elements, bool) {
	switch s.Tool {
	case ToolShelf:
		r := s.ShelfRect()
		if r.Width == 0 || r.Height == 0 || !elems.RectFree(r.ToFloat()) {
			return elems, false
		}
		next := elems.Clone()
		next.Shelves = append(next.Shelves, floorplan.Shelf{
			ID:   elems.NextShelfID(),
			Pos:  geometry.PointInt{X: r.X, Y: r.Y},
			Size: geometry.SizeInt{Width: r.Width, Height: r.Height},
		})
		return next, true

	case ToolDropoff:
		if !elems.PointFree(s.Current.ToFloat()) {
			return elems, false
		}
		next := elems.Clone()
		next.Dropoffs = append(next.Dropoffs, floorplan.Dropoff{
			ID:  elems.NextDropoffID(),
			Pos: cellCenter(s.Current),
		})
		return next, true

	case ToolRobotStation:
		if !elems.PointFree(s.Current.ToFloat()) {
			return elems, false
		}
		next := elems.Clone()
		next.RobotStations = append(next.RobotStations, floorplan.RobotStation{
			ID:  elems.NextStationID(),
			Pos: cellCenter(s.Current),
		})
		return next, true

	case ToolErase:
		return erase(s, elems), true
	}
	return elems, false
}

// erase removes every shelf whose footprint intersects the dragged cell
// span and every dropoff or robot station whose point lies inside the
// inclusive anchor/current bound box. Pickups, navigation points, and
// homed robot counts are cleared unconditionally.
func erase(s DragSession, elems floorplan.Elements) floorplan.Elements {
	span := s.CellSpan().ToFloat()
	box := geometry.Rect{
		X:      math.Min(float64(s.Anchor.X), float64(s.Current.X)),
		Y:      math.Min(float64(s.Anchor.Y), float64(s.Current.Y)),
		Width:  math.Abs(float64(s.Current.X - s.Anchor.X)),
		Height: math.Abs(float64(s.Current.Y - s.Anchor.Y)),
	}

	next := floorplan.Elements{}
	for _, shelf := range elems.Shelves {
		if !shelf.Rect().Intersects(span) {
			next.Shelves = append(next.Shelves, shelf)
		}
	}
	for _, d := range elems.Dropoffs {
		if !box.ContainsClosed(d.Pos) {
			next.Dropoffs = append(next.Dropoffs, d)
		}
	}
	for _, r := range elems.RobotStations {
		if !box.ContainsClosed(r.Pos) {
			r.Robots = 0
			next.RobotStations = append(next.RobotStations, r)
		}
	}
	return next
}

// cellCenter returns the center of a grid cell.
func cellCenter(cell geometry.PointInt) geometry.Point2D {
	return geometry.Point2D{X: float64(cell.X) + 0.5, Y: float64(cell.Y) + 0.5}
}

// nearestPickup finds the pickup closest to the pointer within the hit
// threshold, measured as Euclidean distance in canvas space.
func nearestPickup(pos geometry.Point2D, pickups []floorplan.PickupPoint, m Mapper) (string, bool) {
	cell := m.CellSize()
	threshold := pickupHitFactor * math.Min(cell.Width, cell.Height)

	best := ""
	bestDist := math.Inf(1)
	for _, p := range pickups {
		d := m.GridToCanvas(p.Pos).Distance(pos)
		if d <= threshold && d < bestDist {
			best = p.ID
			bestDist = d
		}
	}
	return best, best != ""
}
