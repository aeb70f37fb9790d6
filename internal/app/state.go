// Package app provides application state and events for the floor planner.
package app

import (
	"sync"

	"github.com/charmbracelet/log"

	"floor-planner/internal/floorplan"
)

// EventType identifies different application events.
type EventType int

const (
	EventElementsChanged EventType = iota
	EventPickupSelectionChanged
	EventGraphChanged
	EventModified
)

// EventListener is called when an event occurs.
type EventListener func(data interface{})

// State holds the application state: the environment being edited, the
// pickup selection, the optional navigation graph, and the modified flag.
// The editor reports mutations into it through callbacks, and UI panels
// listen for its events.
type State struct {
	mu sync.RWMutex

	// Environment
	Grid     floorplan.Dimensions
	Elements floorplan.Elements

	// Pickup selection (a set of ids; legacy single-id inputs are
	// normalized before they reach here)
	SelectedPickups floorplan.IDSet

	// Optional navigation graph overlay
	Graph     *floorplan.Graph
	ShowGraph bool

	Modified bool

	logger    *log.Logger
	listeners map[EventType][]EventListener
}

// NewState creates application state around an environment.
func NewState(logger *log.Logger, grid floorplan.Dimensions, elems floorplan.Elements) *State {
	return &State{
		Grid:            grid,
		Elements:        elems,
		SelectedPickups: floorplan.NewIDSet(),
		logger:          logger,
		listeners:       make(map[EventType][]EventListener),
	}
}

// Logger returns the application logger.
func (s *State) Logger() *log.Logger {
	return s.logger
}

// On registers an event listener for the specified event type.
func (s *State) On(event EventType, listener EventListener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners[event] = append(s.listeners[event], listener)
}

// Emit triggers all listeners for the specified event type.
func (s *State) Emit(event EventType, data interface{}) {
	s.mu.RLock()
	listeners := s.listeners[event]
	s.mu.RUnlock()

	for _, listener := range listeners {
		listener(data)
	}
}

// SetElements replaces the environment's element collection. Wired to the
// editor's element-change callback; the snapshot is complete, never a delta.
func (s *State) SetElements(elems floorplan.Elements) {
	s.mu.Lock()
	s.Elements = elems
	s.Modified = true
	s.mu.Unlock()

	s.logger.Debug("elements changed",
		"shelves", len(elems.Shelves),
		"dropoffs", len(elems.Dropoffs),
		"stations", len(elems.RobotStations),
		"pickups", len(elems.PickupPoints))

	s.Emit(EventElementsChanged, elems)
	s.Emit(EventModified, true)
}

// TogglePickup flips a pickup id in the selection set. Wired to the
// editor's pickup-toggle callback.
func (s *State) TogglePickup(id string) {
	s.mu.Lock()
	if s.SelectedPickups.Has(id) {
		delete(s.SelectedPickups, id)
	} else {
		s.SelectedPickups[id] = struct{}{}
	}
	selected := s.SelectedPickups.Has(id)
	s.mu.Unlock()

	s.logger.Debug("pickup toggled", "id", id, "selected", selected)
	s.Emit(EventPickupSelectionChanged, id)
}

// SetGraph installs or replaces the navigation graph overlay.
func (s *State) SetGraph(g *floorplan.Graph, show bool) {
	s.mu.Lock()
	s.Graph = g
	s.ShowGraph = show
	s.mu.Unlock()
	s.Emit(EventGraphChanged, g)
}

// SetModified marks or clears the modified flag.
func (s *State) SetModified(modified bool) {
	s.mu.Lock()
	s.Modified = modified
	s.mu.Unlock()
	s.Emit(EventModified, modified)
}
