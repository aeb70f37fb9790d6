package app

import (
	"floor-planner/internal/floorplan"
	"floor-planner/pkg/geometry"
)

// DemoEnvironment returns a small sample warehouse used when the planner
// starts without an environment from a backend.
func DemoEnvironment() (floorplan.Dimensions, floorplan.Elements, *floorplan.Graph) {
	grid := floorplan.Dimensions{Width: 24, Height: 16}

	elems := floorplan.Elements{
		Shelves: []floorplan.Shelf{
			{ID: "S1", Pos: geometry.PointInt{X: 3, Y: 2}, Size: geometry.SizeInt{Width: 4, Height: 2}},
			{ID: "S2", Pos: geometry.PointInt{X: 3, Y: 6}, Size: geometry.SizeInt{Width: 4, Height: 2}},
			{ID: "S3", Pos: geometry.PointInt{X: 10, Y: 2}, Size: geometry.SizeInt{Width: 4, Height: 2}},
			{ID: "S4", Pos: geometry.PointInt{X: 10, Y: 6}, Size: geometry.SizeInt{Width: 4, Height: 2}},
		},
		Dropoffs: []floorplan.Dropoff{
			{ID: "D1", Pos: geometry.Point2D{X: 20.5, Y: 3.5}},
			{ID: "D2", Pos: geometry.Point2D{X: 20.5, Y: 6.5}},
		},
		RobotStations: []floorplan.RobotStation{
			{ID: "R1", Pos: geometry.Point2D{X: 1.5, Y: 12.5}, Robots: 3},
			{ID: "R2", Pos: geometry.Point2D{X: 4.5, Y: 12.5}, Robots: 2},
		},
		PickupPoints: []floorplan.PickupPoint{
			{ID: "P1", Pos: geometry.Point2D{X: 7.5, Y: 2.5}},
			{ID: "P2", Pos: geometry.Point2D{X: 7.5, Y: 6.5}},
			{ID: "P3", Pos: geometry.Point2D{X: 14.5, Y: 2.5}},
			{ID: "P4", Pos: geometry.Point2D{X: 14.5, Y: 6.5}},
		},
		NavigationPoints: []floorplan.NavigationPoint{
			{Pos: geometry.Point2D{X: 8.5, Y: 10.5}},
			{Pos: geometry.Point2D{X: 12.5, Y: 10.5}},
			{Pos: geometry.Point2D{X: 16.5, Y: 10.5}},
		},
	}

	graph := floorplan.NewGraph()
	graph.AddNode("n1", 1.5, 12.5)
	graph.AddNode("n2", 8.5, 10.5)
	graph.AddNode("n3", 12.5, 10.5)
	graph.AddNode("n4", 20.5, 3.5)
	_ = graph.AddEdge("n1", "n2", 7.2)
	_ = graph.AddEdge("n2", "n3", 4.0)
	_ = graph.AddEdge("n3", "n4", 10.6)

	return grid, elems, graph
}
