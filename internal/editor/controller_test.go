package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"floor-planner/internal/floorplan"
	"floor-planner/pkg/geometry"
)

// testEditor returns an editor on a 20x20 grid in a 500x500 container,
// which yields 25px cells at zoom 1.
func testEditor() *Editor {
	ed := New(floorplan.Dimensions{Width: 20, Height: 20})
	ed.Resize(geometry.Size{Width: 500, Height: 500})
	return ed
}

// cellCenterPx returns the canvas position of a cell's center at 25px cells.
func cellCenterPx(x, y int) geometry.Point2D {
	return geometry.Point2D{X: float64(x)*25 + 12.5, Y: float64(y)*25 + 12.5}
}

func TestShelfDragCommits(t *testing.T) {
	ed := testEditor()
	ed.SetTool(ToolShelf)

	var got *floorplan.Elements
	ed.OnElementsChanged(func(e floorplan.Elements) { got = &e })

	ed.PointerDown(cellCenterPx(2, 2))
	require.NotNil(t, ed.Session())
	ed.PointerMove(cellCenterPx(5, 4))
	assert.True(t, ed.Session().Valid)
	ed.PointerUp()

	require.NotNil(t, got, "commit must fire the element-change callback")
	require.Len(t, got.Shelves, 1)
	shelf := got.Shelves[0]
	assert.Equal(t, "S1", shelf.ID)
	assert.Equal(t, geometry.PointInt{X: 2, Y: 2}, shelf.Pos)
	assert.Equal(t, geometry.SizeInt{Width: 3, Height: 2}, shelf.Size)
	assert.Nil(t, ed.Session(), "session is discarded on commit")
}

func TestOverlappingShelfDragCommitsNothing(t *testing.T) {
	ed := testEditor()
	ed.SetElements(floorplan.Elements{Shelves: []floorplan.Shelf{
		{ID: "S1", Pos: geometry.PointInt{X: 2, Y: 2}, Size: geometry.SizeInt{Width: 3, Height: 2}},
	}})
	ed.SetTool(ToolShelf)

	fired := false
	ed.OnElementsChanged(func(floorplan.Elements) { fired = true })

	ed.PointerDown(cellCenterPx(3, 3))
	assert.False(t, ed.Session().Valid)
	ed.PointerMove(cellCenterPx(4, 4))
	assert.False(t, ed.Session().Valid, "validity stays false throughout the drag")
	ed.PointerUp()

	assert.False(t, fired)
	assert.Len(t, ed.Elements().Shelves, 1)
}

func TestZeroExtentDragNeverCreatesShelf(t *testing.T) {
	ed := testEditor()
	ed.SetTool(ToolShelf)

	fired := false
	ed.OnElementsChanged(func(floorplan.Elements) { fired = true })

	ed.PointerDown(cellCenterPx(7, 7))
	assert.False(t, ed.Session().Valid, "anchor == current has zero extent")
	ed.PointerUp()

	assert.False(t, fired)
	assert.Empty(t, ed.Elements().Shelves)
}

func TestShelvesNeverOverlapAfterAnyDragSequence(t *testing.T) {
	ed := testEditor()
	ed.SetTool(ToolShelf)

	drags := []struct{ ax, ay, cx, cy int }{
		{0, 0, 3, 3},
		{2, 2, 5, 5}, // overlaps the first, must be rejected
		{4, 0, 6, 2},
		{2, 1, 3, 6}, // overlaps the first, must be rejected
		{10, 10, 15, 12},
		{14, 11, 16, 14}, // overlaps the previous, must be rejected
	}
	for _, d := range drags {
		ed.PointerDown(cellCenterPx(d.ax, d.ay))
		ed.PointerMove(cellCenterPx(d.cx, d.cy))
		ed.PointerUp()
	}

	shelves := ed.Elements().Shelves
	require.Len(t, shelves, 3)
	for i := range shelves {
		for j := i + 1; j < len(shelves); j++ {
			assert.False(t, shelves[i].Rect().Intersects(shelves[j].Rect()),
				"%s and %s overlap", shelves[i].ID, shelves[j].ID)
		}
	}
}

func TestDropoffCommitSnapsToCellCenter(t *testing.T) {
	ed := testEditor()
	ed.SetTool(ToolDropoff)

	var got *floorplan.Elements
	ed.OnElementsChanged(func(e floorplan.Elements) { got = &e })

	ed.PointerDown(cellCenterPx(10, 10))
	ed.PointerUp()

	require.NotNil(t, got)
	require.Len(t, got.Dropoffs, 1)
	assert.Equal(t, "D1", got.Dropoffs[0].ID)
	assert.Equal(t, geometry.Point2D{X: 10.5, Y: 10.5}, got.Dropoffs[0].Pos)
}

func TestPointEntityRejectedInsideShelf(t *testing.T) {
	ed := testEditor()
	ed.SetElements(floorplan.Elements{Shelves: []floorplan.Shelf{
		{ID: "S1", Pos: geometry.PointInt{X: 2, Y: 2}, Size: geometry.SizeInt{Width: 3, Height: 2}},
	}})
	ed.SetTool(ToolRobotStation)

	fired := false
	ed.OnElementsChanged(func(floorplan.Elements) { fired = true })

	ed.PointerDown(cellCenterPx(3, 3))
	assert.False(t, ed.Session().Valid)
	ed.PointerUp()

	assert.False(t, fired)
	assert.Empty(t, ed.Elements().RobotStations)
}

func TestEraseSemantics(t *testing.T) {
	ed := testEditor()
	ed.SetElements(floorplan.Elements{
		Shelves: []floorplan.Shelf{
			{ID: "S1", Pos: geometry.PointInt{X: 0, Y: 0}, Size: geometry.SizeInt{Width: 2, Height: 2}},
			{ID: "S2", Pos: geometry.PointInt{X: 5, Y: 5}, Size: geometry.SizeInt{Width: 1, Height: 1}},
		},
		PickupPoints: []floorplan.PickupPoint{
			{ID: "P1", Pos: geometry.Point2D{X: 9.5, Y: 9.5}},
		},
		NavigationPoints: []floorplan.NavigationPoint{
			{Pos: geometry.Point2D{X: 12.5, Y: 12.5}},
		},
	})
	ed.SetTool(ToolErase)

	ed.PointerDown(cellCenterPx(0, 0))
	assert.True(t, ed.Session().Valid, "erase drags are always valid")
	ed.PointerMove(cellCenterPx(2, 2))
	ed.PointerUp()

	elems := ed.Elements()
	require.Len(t, elems.Shelves, 1, "only the shelf intersecting the erase box is removed")
	assert.Equal(t, "S2", elems.Shelves[0].ID)
	assert.Empty(t, elems.PickupPoints, "pickups are cleared on any erase commit")
	assert.Empty(t, elems.NavigationPoints, "navigation points are cleared on any erase commit")
}

func TestErasePointEntities(t *testing.T) {
	ed := testEditor()
	ed.SetElements(floorplan.Elements{
		Dropoffs: []floorplan.Dropoff{
			{ID: "D1", Pos: geometry.Point2D{X: 5.5, Y: 5.5}},
			{ID: "D2", Pos: geometry.Point2D{X: 10, Y: 10}},
		},
	})
	ed.SetTool(ToolErase)

	ed.PointerDown(cellCenterPx(5, 5))
	ed.PointerMove(cellCenterPx(6, 6))
	ed.PointerUp()

	elems := ed.Elements()
	require.Len(t, elems.Dropoffs, 1)
	assert.Equal(t, "D2", elems.Dropoffs[0].ID, "points outside the inclusive bound box survive")
}

func TestPickupSelectTogglesNearestWithinThreshold(t *testing.T) {
	ed := testEditor()
	ed.SetElements(floorplan.Elements{PickupPoints: []floorplan.PickupPoint{
		{ID: "P1", Pos: geometry.Point2D{X: 4, Y: 4}},
		{ID: "P2", Pos: geometry.Point2D{X: 8, Y: 8}},
	}})
	ed.SetTool(ToolPickupSelect)

	var toggled []string
	ed.OnPickupToggled(func(id string) { toggled = append(toggled, id) })

	// (4,4) maps to canvas (100,100); threshold is 0.3*25 = 7.5px.
	ed.PointerDown(geometry.Point2D{X: 103, Y: 102})
	ed.PointerUp()
	require.Equal(t, []string{"P1"}, toggled)

	// A click near (6,6) is beyond the threshold of both pickups.
	ed.PointerDown(geometry.Point2D{X: 150, Y: 150})
	ed.PointerUp()
	assert.Equal(t, []string{"P1"}, toggled)

	assert.Nil(t, ed.Session(), "pickup selection never opens a session")
}

func TestSelectToolPans(t *testing.T) {
	ed := testEditor()
	ed.SetTool(ToolSelect)

	ed.PointerDown(geometry.Point2D{X: 100, Y: 100})
	ed.PointerMove(geometry.Point2D{X: 120, Y: 130})
	ed.PointerMove(geometry.Point2D{X: 125, Y: 130})
	ed.PointerUp()

	assert.Equal(t, 25.0, ed.Camera().Pan.X)
	assert.Equal(t, 30.0, ed.Camera().Pan.Y)
	assert.Nil(t, ed.Session())
}

func TestReadOnlyForcesPanForEveryTool(t *testing.T) {
	ed := testEditor()
	ed.SetReadOnly(true)
	ed.SetTool(ToolShelf)

	fired := false
	ed.OnElementsChanged(func(floorplan.Elements) { fired = true })

	ed.PointerDown(cellCenterPx(2, 2))
	assert.Nil(t, ed.Session(), "read-only pointer-down pans instead of dragging")
	ed.PointerMove(cellCenterPx(5, 4))
	ed.PointerUp()

	assert.False(t, fired)
	assert.Empty(t, ed.Elements().Shelves)
	assert.NotEqual(t, geometry.Point2D{}, ed.Camera().Pan)
}

func TestPointerLeaveDiscardsSession(t *testing.T) {
	ed := testEditor()
	ed.SetTool(ToolShelf)

	fired := false
	ed.OnElementsChanged(func(floorplan.Elements) { fired = true })

	ed.PointerDown(cellCenterPx(2, 2))
	ed.PointerMove(cellCenterPx(5, 4))
	ed.PointerLeave()

	assert.Nil(t, ed.Session())
	assert.False(t, fired)
	assert.Empty(t, ed.Elements().Shelves)

	// The editor is back in a clean state for the next gesture.
	ed.PointerDown(cellCenterPx(10, 10))
	require.NotNil(t, ed.Session())
	assert.Equal(t, geometry.PointInt{X: 10, Y: 10}, ed.Session().Anchor)
}

func TestOutOfBoundsAnchorIgnored(t *testing.T) {
	ed := testEditor()
	ed.SetTool(ToolShelf)

	ed.PointerDown(geometry.Point2D{X: 600, Y: 600})
	assert.Nil(t, ed.Session())
}

func TestDragRetainsLastCellWhenPointerExitsGrid(t *testing.T) {
	ed := testEditor()
	ed.SetTool(ToolShelf)

	ed.PointerDown(cellCenterPx(2, 2))
	ed.PointerMove(cellCenterPx(5, 4))
	ed.PointerMove(geometry.Point2D{X: 800, Y: 800})
	assert.Equal(t, geometry.PointInt{X: 5, Y: 4}, ed.Session().Current)
}

func TestGeneratedIDsFollowCount(t *testing.T) {
	ed := testEditor()
	ed.SetTool(ToolShelf)

	place := func(ax, ay, cx, cy int) {
		ed.PointerDown(cellCenterPx(ax, ay))
		ed.PointerMove(cellCenterPx(cx, cy))
		ed.PointerUp()
	}
	place(0, 0, 2, 2)
	place(5, 5, 7, 7)

	shelves := ed.Elements().Shelves
	require.Len(t, shelves, 2)
	assert.Equal(t, "S1", shelves[0].ID)
	assert.Equal(t, "S2", shelves[1].ID)
}

func TestNotReadyEditorIgnoresPointerEvents(t *testing.T) {
	ed := New(floorplan.Dimensions{Width: 20, Height: 20})
	ed.SetTool(ToolShelf)

	ed.PointerDown(cellCenterPx(2, 2))
	assert.Nil(t, ed.Session(), "no container yet, everything is a no-op")
}
