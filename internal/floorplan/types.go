// Package floorplan defines the warehouse floor-plan data model: the grid,
// the element collection placed on it, and the placement validity rules.
package floorplan

import (
	"fmt"

	"floor-planner/pkg/geometry"
)

// Dimensions is the grid size in cells. It is immutable for the lifetime
// of an editing session and supplied by the collaborator that owns the
// environment.
type Dimensions struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Contains reports whether the cell lies inside the grid.
func (d Dimensions) Contains(cell geometry.PointInt) bool {
	return cell.X >= 0 && cell.X < d.Width && cell.Y >= 0 && cell.Y < d.Height
}

// Shelf is a storage shelf occupying the half-open cell rectangle
// [Pos, Pos+Size).
type Shelf struct {
	ID   string            `json:"id"`
	Pos  geometry.PointInt `json:"position"`
	Size geometry.SizeInt  `json:"size"`
}

// Rect returns the shelf footprint in grid units.
func (s Shelf) Rect() geometry.Rect {
	return geometry.Rect{
		X:      float64(s.Pos.X),
		Y:      float64(s.Pos.Y),
		Width:  float64(s.Size.Width),
		Height: float64(s.Size.Height),
	}
}

// Dropoff is a point entity where goods are dropped off. Positions may sit
// on cell centers (integer + 0.5).
type Dropoff struct {
	ID  string           `json:"id"`
	Pos geometry.Point2D `json:"position"`
}

// RobotStation is a charging/idle station for robots. Robots counts the
// robots currently homed at the station; it only affects the render label.
type RobotStation struct {
	ID     string           `json:"id"`
	Pos    geometry.Point2D `json:"position"`
	Robots int              `json:"robots,omitempty"`
}

// PickupPoint is a point entity robots pick goods up from. Whether a pickup
// is selected is collaborator state, carried separately as a set of ids.
type PickupPoint struct {
	ID  string           `json:"id"`
	Pos geometry.Point2D `json:"position"`
}

// NavigationPoint is a decorative waypoint. It carries no id and is never
// hit-tested.
type NavigationPoint struct {
	Pos geometry.Point2D `json:"position"`
}

// IDSet is the normalized set-of-ids form used for pickup selection at the
// interface boundary. Collaborators with a legacy single-id value convert
// it before handing it over.
type IDSet map[string]struct{}

// NewIDSet builds a set from the given ids.
func NewIDSet(ids ...string) IDSet {
	s := make(IDSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Has reports membership; a nil set contains nothing.
func (s IDSet) Has(id string) bool {
	_, ok := s[id]
	return ok
}

// Elements is the full collection of entities placed on the grid. Change
// notifications always carry a complete Elements snapshot, never a delta.
type Elements struct {
	Shelves          []Shelf           `json:"shelves"`
	Dropoffs         []Dropoff         `json:"dropoffs"`
	RobotStations    []RobotStation    `json:"robotStations"`
	PickupPoints     []PickupPoint     `json:"pickupPoints"`
	NavigationPoints []NavigationPoint `json:"navigationPoints,omitempty"`
}

// Clone returns a deep copy of the collection.
func (e Elements) Clone() Elements {
	out := Elements{}
	if e.Shelves != nil {
		out.Shelves = append([]Shelf(nil), e.Shelves...)
	}
	if e.Dropoffs != nil {
		out.Dropoffs = append([]Dropoff(nil), e.Dropoffs...)
	}
	if e.RobotStations != nil {
		out.RobotStations = append([]RobotStation(nil), e.RobotStations...)
	}
	if e.PickupPoints != nil {
		out.PickupPoints = append([]PickupPoint(nil), e.PickupPoints...)
	}
	if e.NavigationPoints != nil {
		out.NavigationPoints = append([]NavigationPoint(nil), e.NavigationPoints...)
	}
	return out
}

// NextShelfID generates the id for a shelf appended to the collection.
func (e Elements) NextShelfID() string {
	return fmt.Sprintf("S%d", len(e.Shelves)+1)
}

// NextDropoffID generates the id for a drop-off appended to the collection.
func (e Elements) NextDropoffID() string {
	return fmt.Sprintf("D%d", len(e.Dropoffs)+1)
}

// NextStationID generates the id for a robot station appended to the collection.
func (e Elements) NextStationID() string {
	return fmt.Sprintf("R%d", len(e.RobotStations)+1)
}
