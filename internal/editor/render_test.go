package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"floor-planner/internal/floorplan"
	"floor-planner/pkg/geometry"
)

func testFrame() Frame {
	elems := floorplan.Elements{
		Shelves: []floorplan.Shelf{
			{ID: "S1", Pos: geometry.PointInt{X: 2, Y: 2}, Size: geometry.SizeInt{Width: 3, Height: 2}},
		},
		Dropoffs: []floorplan.Dropoff{
			{ID: "D1", Pos: geometry.Point2D{X: 10.5, Y: 10.5}},
		},
		RobotStations: []floorplan.RobotStation{
			{ID: "R1", Pos: geometry.Point2D{X: 15.5, Y: 15.5}, Robots: 2},
		},
		PickupPoints: []floorplan.PickupPoint{
			{ID: "P1", Pos: geometry.Point2D{X: 7.5, Y: 7.5}},
			{ID: "P2", Pos: geometry.Point2D{X: 8.5, Y: 8.5}},
		},
		NavigationPoints: []floorplan.NavigationPoint{
			{Pos: geometry.Point2D{X: 12.5, Y: 3.5}},
		},
	}

	g := floorplan.NewGraph()
	g.AddNode("a", 1.5, 1.5)
	g.AddNode("b", 6.5, 1.5)
	_ = g.AddEdge("a", "b", 5)

	return Frame{
		Mapper:    testMapper(),
		Elements:  elems,
		Pickups:   elems.PickupPoints,
		Selected:  floorplan.NewIDSet("P1"),
		Graph:     g,
		ShowGraph: true,
	}
}

func TestRenderIsDeterministic(t *testing.T) {
	f := testFrame()
	f.Session = &DragSession{
		Tool:    ToolShelf,
		Anchor:  geometry.PointInt{X: 12, Y: 12},
		Current: geometry.PointInt{X: 15, Y: 14},
		Valid:   true,
	}

	a := f.Render(500, 500)
	b := f.Render(500, 500)
	require.Equal(t, a.Pix, b.Pix, "two renders of the same frame must be pixel-identical")
}

func TestRenderNotReadyProducesBackground(t *testing.T) {
	f := Frame{}
	out := f.Render(100, 100)
	assert.Equal(t, backgroundColor, out.RGBAAt(10, 10))
	assert.Equal(t, backgroundColor, out.RGBAAt(90, 90))
}

func TestRenderShelfFill(t *testing.T) {
	f := testFrame()
	out := f.Render(500, 500)

	// A pixel just inside the shelf's top-left corner (cell (2,2) at 25px
	// cells) carries the shelf fill; the label sits at the center.
	assert.Equal(t, shelfFillColor, out.RGBAAt(2*25+3, 2*25+3))

	// Outside any entity the floor shows through.
	assert.Equal(t, backgroundColor, out.RGBAAt(490, 10))
}

func TestRenderPickupSelectionColors(t *testing.T) {
	f := testFrame()
	out := f.Render(500, 500)

	// P1 at (7.5,7.5) is selected, P2 at (8.5,8.5) is not.
	p1, p2 := 7.5*25, 8.5*25
	assert.Equal(t, pickupSelectedColor, out.RGBAAt(int(p1), int(p1)))
	assert.Equal(t, pickupUnselectedColor, out.RGBAAt(int(p2), int(p2)))
}

func TestRenderInvalidPreviewTint(t *testing.T) {
	f := testFrame()
	f.Session = &DragSession{
		Tool:    ToolShelf,
		Anchor:  geometry.PointInt{X: 12, Y: 12},
		Current: geometry.PointInt{X: 13, Y: 13},
		Valid:   false,
	}
	out := f.Render(500, 500)

	// The invalid preview blends red over the covered cells.
	px := out.RGBAAt(12*25+3, 12*25+3)
	assert.NotEqual(t, backgroundColor, px)
	assert.Greater(t, px.R, px.G, "invalid preview tint is red-leaning")
}

func TestRenderGraphOverlayToggle(t *testing.T) {
	f := testFrame()

	withGraph := f.Render(500, 500)
	f.ShowGraph = false
	withoutGraph := f.Render(500, 500)

	assert.NotEqual(t, withGraph.Pix, withoutGraph.Pix)

	// Edge midpoint between nodes a(1.5,1.5) and b(6.5,1.5).
	my := 1.5 * 25
	assert.Equal(t, graphEdgeColor, withGraph.RGBAAt(int(3.0*25), int(my)))
}
