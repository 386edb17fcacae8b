package topology

import (
	"fmt"

	"roomgraph/pkg/engine/world"
)

// Graph is the result of one extraction. It is immutable once returned
// and safe for concurrent readers.
type Graph struct {
	rows, cols int

	cellRooms []RoomID
	rooms     []roomRecord
	openRooms int

	walls     []Barrier
	gateways  []Barrier
	adjacency [][]RoomID

	tags map[tagKey]barrierRef
}

// Rows returns the height of the extracted grid
func (g *Graph) Rows() int { return g.rows }

// Cols returns the width of the extracted grid
func (g *Graph) Cols() int { return g.cols }

// RoomCount returns the number of rooms, pseudo-rooms included
func (g *Graph) RoomCount() int { return len(g.rooms) }

// OpenRoomCount returns the number of rooms found by the flood fill
func (g *Graph) OpenRoomCount() int { return g.openRooms }

// GatewayRoomCount returns the number of promoted gateways
func (g *Graph) GatewayRoomCount() int { return len(g.rooms) - g.openRooms }

// WallCount returns the number of wall barriers
func (g *Graph) WallCount() int { return len(g.walls) }

// GatewayCount returns the number of gateway barriers
func (g *Graph) GatewayCount() int { return len(g.gateways) }

// RoomIDs returns every room id in ascending order
func (g *Graph) RoomIDs() []RoomID {
	ids := make([]RoomID, len(g.rooms))
	for i := range g.rooms {
		ids[i] = RoomID(i + 1)
	}
	return ids
}

func (g *Graph) room(id RoomID) (*roomRecord, error) {
	if id < 1 || int(id) > len(g.rooms) {
		return nil, fmt.Errorf("%w: %d", ErrRoomNotFound, id)
	}
	return &g.rooms[id-1], nil
}

// IsGatewayRoom reports whether id is a promoted gateway
func (g *Graph) IsGatewayRoom(id RoomID) bool {
	r, err := g.room(id)
	return err == nil && r.gateway
}

// RoomSeed returns the cell the room was discovered from
func (g *Graph) RoomSeed(id RoomID) (world.Location, error) {
	r, err := g.room(id)
	if err != nil {
		return world.Location{}, err
	}
	return r.seed, nil
}

// RoomArea returns the number of cells carrying id
func (g *Graph) RoomArea(id RoomID) (int, error) {
	r, err := g.room(id)
	if err != nil {
		return 0, err
	}
	return r.cells, nil
}

// RoomBarriers returns a copy of the room's clockwise boundary
func (g *Graph) RoomBarriers(id RoomID) ([]Barrier, error) {
	r, err := g.room(id)
	if err != nil {
		return nil, err
	}
	out := make([]Barrier, len(r.boundary))
	copy(out, r.boundary)
	return out, nil
}

// GatewayDestinations returns a copy of the rooms a gateway barrier
// joins: {owner, far side, pseudo-room} for barriers found by walking
// a room, {pseudo-room, far side} for the sides of a promoted gateway.
func (g *Graph) GatewayDestinations(id BarrierID) ([]RoomID, error) {
	if id < 1 || int(id) > len(g.adjacency) {
		return nil, fmt.Errorf("%w: %d", ErrGatewayNotFound, id)
	}
	out := make([]RoomID, len(g.adjacency[id-1]))
	copy(out, g.adjacency[id-1])
	return out, nil
}

// Barrier looks up a barrier by kind and id
func (g *Graph) Barrier(kind BarrierKind, id BarrierID) (Barrier, error) {
	arena := g.walls
	if kind == GatewayBarrier {
		arena = g.gateways
	}
	if id < 1 || int(id) > len(arena) {
		return Barrier{}, fmt.Errorf("%w: %s #%d", ErrBarrierNotFound, kind, id)
	}
	return arena[id-1], nil
}

// LocationRoomID returns the room containing loc
func (g *Graph) LocationRoomID(loc world.Location) (RoomID, error) {
	if loc.Row < 0 || loc.Col < 0 || loc.Row >= g.rows || loc.Col >= g.cols {
		return NoRoom, fmt.Errorf("%w: %s", ErrOutOfBounds, loc)
	}
	id := g.cellRooms[loc.Row*g.cols+loc.Col]
	if id == NoRoom {
		return NoRoom, fmt.Errorf("%w: %s", ErrNoRoom, loc)
	}
	return id, nil
}

// BarrierAt returns the barrier a room sees on the given side of a
// boundary cell. facing is the side of the room the cell lies on.
func (g *Graph) BarrierAt(loc world.Location, facing world.Direction) (Barrier, error) {
	ref, ok := g.tags[tagKey{loc: loc, facing: facing}]
	if !ok {
		return Barrier{}, fmt.Errorf("%w: %s facing %s", ErrBarrierNotFound, loc, facing)
	}
	return g.Barrier(ref.kind, ref.id)
}
