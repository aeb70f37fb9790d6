package editor

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"floor-planner/internal/floorplan"
	"floor-planner/pkg/geometry"
)

func testMapper() Mapper {
	return Mapper{
		Container: geometry.Size{Width: 500, Height: 500},
		Grid:      floorplan.Dimensions{Width: 20, Height: 20},
		Camera:    NewCamera(),
	}
}

func TestCellSize(t *testing.T) {
	m := testMapper()

	// 500px / 20 cells = 25px per axis at zoom 1.
	cell := m.CellSize()
	assert.Equal(t, 25.0, cell.Width)
	assert.Equal(t, 25.0, cell.Height)

	// The minimum cell edge wins on oversized grids.
	m.Grid = floorplan.Dimensions{Width: 100, Height: 100}
	cell = m.CellSize()
	assert.Equal(t, 25.0, cell.Width, "5px raw cells clamp to the 25px minimum")

	// Zoom scales the result.
	m = testMapper()
	m.Camera.Zoom = 2.0
	cell = m.CellSize()
	assert.Equal(t, 50.0, cell.Width)
}

func TestCanvasToGrid(t *testing.T) {
	m := testMapper()

	tests := []struct {
		name string
		px   geometry.Point2D
		want geometry.PointInt
	}{
		{"origin", geometry.Point2D{X: 0, Y: 0}, geometry.PointInt{X: 0, Y: 0}},
		{"cell interior", geometry.Point2D{X: 62, Y: 112}, geometry.PointInt{X: 2, Y: 4}},
		{"cell boundary", geometry.Point2D{X: 50, Y: 50}, geometry.PointInt{X: 2, Y: 2}},
		{"negative", geometry.Point2D{X: -10, Y: -1}, geometry.PointInt{X: -1, Y: -1}},
		{"past the grid", geometry.Point2D{X: 510, Y: 499}, geometry.PointInt{X: 20, Y: 19}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, m.CanvasToGrid(tt.px))
		})
	}
}

func TestCanvasToGridRespectsPan(t *testing.T) {
	m := testMapper()
	m.Camera.PanBy(50, -25)

	// Hit-testing happens post-pan-adjustment: the cell under a pointer
	// shifts opposite the pan.
	got := m.CanvasToGrid(geometry.Point2D{X: 62, Y: 112})
	assert.Equal(t, geometry.PointInt{X: 0, Y: 5}, got)
}

func TestRoundTripWithinOneCell(t *testing.T) {
	m := testMapper()
	m.Camera.PanBy(37, -13)
	m.Camera.SetZoom(1.3)
	cell := m.CellSize()

	points := []geometry.Point2D{
		{X: 0, Y: 0},
		{X: 13.7, Y: 488.2},
		{X: 250, Y: 250.5},
		{X: -40, Y: 600},
	}
	for _, p := range points {
		back := m.GridToCanvas(m.CanvasToGrid(p).ToFloat())
		require.LessOrEqual(t, math.Abs(back.X-p.X), cell.Width, "x drift for %v", p)
		require.LessOrEqual(t, math.Abs(back.Y-p.Y), cell.Height, "y drift for %v", p)
	}
}

func TestGridToCanvasIsExactInverse(t *testing.T) {
	m := testMapper()
	m.Camera.PanBy(-12, 90)

	// Mapping a cell center back through CanvasToGrid recovers the cell.
	for _, cell := range []geometry.PointInt{{X: 0, Y: 0}, {X: 7, Y: 3}, {X: 19, Y: 19}} {
		center := geometry.Point2D{X: float64(cell.X) + 0.5, Y: float64(cell.Y) + 0.5}
		assert.Equal(t, cell, m.CanvasToGrid(m.GridToCanvas(center)))
	}
}

func TestMapperReady(t *testing.T) {
	m := testMapper()
	assert.True(t, m.Ready())

	m.Container = geometry.Size{}
	assert.False(t, m.Ready())

	m = testMapper()
	m.Grid = floorplan.Dimensions{}
	assert.False(t, m.Ready())
}
