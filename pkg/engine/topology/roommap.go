package topology

import (
	"sync"

	"roomgraph/pkg/engine/world"
)

// RoomMap holds the topology of the currently loaded grid. Load replaces
// it wholesale; a failed load leaves the previous topology in place.
type RoomMap struct {
	mu    sync.RWMutex
	opts  []Option
	grid  Occupancy
	graph *Graph
}

// NewRoomMap creates an empty room map. opts apply to every load.
func NewRoomMap(opts ...Option) *RoomMap {
	return &RoomMap{opts: opts}
}

// Load extracts grid and installs the result
func (m *RoomMap) Load(grid Occupancy) error {
	g, err := Extract(grid, m.opts...)
	if err != nil {
		return err
	}

	m.mu.Lock()
	m.grid = grid
	m.graph = g
	m.mu.Unlock()
	return nil
}

// Reload re-extracts the last loaded grid, picking up any edits made to it
func (m *RoomMap) Reload() error {
	m.mu.RLock()
	grid := m.grid
	m.mu.RUnlock()
	if grid == nil {
		return ErrNotLoaded
	}
	return m.Load(grid)
}

// Reset discards the loaded topology
func (m *RoomMap) Reset() {
	m.mu.Lock()
	m.grid = nil
	m.graph = nil
	m.mu.Unlock()
}

// Graph returns the installed graph, or nil before the first load
func (m *RoomMap) Graph() *Graph {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.graph
}

func (m *RoomMap) loaded() (*Graph, error) {
	g := m.Graph()
	if g == nil {
		return nil, ErrNotLoaded
	}
	return g, nil
}

// LocationID returns the room containing loc
func (m *RoomMap) LocationID(loc world.Location) (RoomID, error) {
	g, err := m.loaded()
	if err != nil {
		return NoRoom, err
	}
	return g.LocationRoomID(loc)
}

// RoomBarrierList returns the clockwise boundary of a room
func (m *RoomMap) RoomBarrierList(id RoomID) ([]Barrier, error) {
	g, err := m.loaded()
	if err != nil {
		return nil, err
	}
	return g.RoomBarriers(id)
}

// GatewayDestinationList returns the rooms joined by a gateway barrier
func (m *RoomMap) GatewayDestinationList(id BarrierID) ([]RoomID, error) {
	g, err := m.loaded()
	if err != nil {
		return nil, err
	}
	return g.GatewayDestinations(id)
}
