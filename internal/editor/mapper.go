package editor

import (
	"math"

	"floor-planner/internal/floorplan"
	"floor-planner/pkg/geometry"
)

// Mapper converts between canvas pixel coordinates and grid coordinates.
// It is a pure value parameterized by the container size, the grid
// dimensions, and the camera; a fresh Mapper is built for every pointer
// event and render pass.
type Mapper struct {
	Container geometry.Size
	Grid      floorplan.Dimensions
	Camera    Camera
}

// Ready reports whether the mapper has a usable container and grid.
// Until both exist, pointer handling and rendering are no-ops.
func (m Mapper) Ready() bool {
	return m.Container.Width > 0 && m.Container.Height > 0 &&
		m.Grid.Width > 0 && m.Grid.Height > 0
}

// CellSize returns the on-screen cell size in pixels, computed per axis as
// max(containerExtent/gridExtent, minCellPx) scaled by the current zoom.
func (m Mapper) CellSize() geometry.Size {
	return geometry.Size{
		Width:  math.Max(m.Container.Width/float64(m.Grid.Width), minCellPx) * m.Camera.Zoom,
		Height: math.Max(m.Container.Height/float64(m.Grid.Height), minCellPx) * m.Camera.Zoom,
	}
}

// origin is the canvas position of grid point (0,0): the pan offset plus
// the offset that centers the grid extent in the container.
func (m Mapper) origin() geometry.Point2D {
	cell := m.CellSize()
	return geometry.Point2D{
		X: m.Camera.Pan.X + (m.Container.Width-float64(m.Grid.Width)*cell.Width)/2,
		Y: m.Camera.Pan.Y + (m.Container.Height-float64(m.Grid.Height)*cell.Height)/2,
	}
}

// CanvasToGrid maps a canvas pixel position to the grid cell underneath it.
// The result may lie outside the grid bounds; callers bounds-check before
// using it as an anchor.
func (m Mapper) CanvasToGrid(p geometry.Point2D) geometry.PointInt {
	cell := m.CellSize()
	o := m.origin()
	return geometry.PointInt{
		X: int(math.Floor((p.X - o.X) / cell.Width)),
		Y: int(math.Floor((p.Y - o.Y) / cell.Height)),
	}
}

// GridToCanvas maps fractional grid coordinates to canvas pixels. It is the
// exact inverse of CanvasToGrid up to floor truncation.
func (m Mapper) GridToCanvas(g geometry.Point2D) geometry.Point2D {
	cell := m.CellSize()
	o := m.origin()
	return geometry.Point2D{
		X: o.X + g.X*cell.Width,
		Y: o.Y + g.Y*cell.Height,
	}
}
