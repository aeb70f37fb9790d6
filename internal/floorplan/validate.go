package floorplan

import (
	"floor-planner/pkg/geometry"
)

// PointFree reports whether the grid point lies outside every shelf
// footprint. Called on each pointer move during a drag, so it stays a
// plain linear scan with no allocation.
func (e Elements) PointFree(p geometry.Point2D) bool {
	for _, s := range e.Shelves {
		if s.Rect().Contains(p) {
			return false
		}
	}
	return true
}

// RectFree reports whether the half-open rectangle overlaps no shelf.
func (e Elements) RectFree(r geometry.Rect) bool {
	for _, s := range e.Shelves {
		if s.Rect().Intersects(r) {
			return false
		}
	}
	return true
}
