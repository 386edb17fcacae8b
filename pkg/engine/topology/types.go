package topology

import (
	"fmt"

	"roomgraph/pkg/engine/world"
)

// RoomID identifies a room. Ids start at 1; 0 means "no room".
type RoomID int

// NoRoom is the zero RoomID
const NoRoom RoomID = 0

// BarrierID identifies a barrier within its kind. Wall and gateway ids
// are counted independently, so a barrier is named by (Kind, ID).
type BarrierID int

// BarrierKind is the occupancy kind shared by every cell of a barrier
type BarrierKind int

// Barrier kinds
const (
	WallBarrier BarrierKind = iota + 1
	GatewayBarrier
)

// String returns the string representation of a barrier kind
func (k BarrierKind) String() string {
	switch k {
	case WallBarrier:
		return "Wall"
	case GatewayBarrier:
		return "Gateway"
	default:
		return "Unknown"
	}
}

func barrierKindOf(kind world.CellKind) (BarrierKind, bool) {
	switch kind {
	case world.Wall:
		return WallBarrier, true
	case world.Gateway:
		return GatewayBarrier, true
	default:
		return 0, false
	}
}

// Point is a fractional grid coordinate
type Point struct {
	Row float64
	Col float64
}

// Barrier is one maximal run of same-kind boundary cells as seen from one
// room, all facing the same way.
type Barrier struct {
	ID   BarrierID
	Kind BarrierKind

	// Left is reached first when walking the room clockwise
	Left  world.Location
	Right world.Location

	// Facing is the side of the room the barrier lies on
	Facing world.Direction
}

// Centerpoint returns the midpoint of the barrier's endpoints
func (b Barrier) Centerpoint() Point {
	return Point{
		Row: float64(b.Left.Row+b.Right.Row) / 2,
		Col: float64(b.Left.Col+b.Right.Col) / 2,
	}
}

// Len returns the number of cells in the barrier
func (b Barrier) Len() int {
	return abs(b.Right.Row-b.Left.Row) + abs(b.Right.Col-b.Left.Col) + 1
}

// Cells returns the barrier's cells from Left to Right
func (b Barrier) Cells() []world.Location {
	n := b.Len()
	out := make([]world.Location, 0, n)
	dr, dc := sign(b.Right.Row-b.Left.Row), sign(b.Right.Col-b.Left.Col)
	for i := 0; i < n; i++ {
		out = append(out, world.Location{Row: b.Left.Row + i*dr, Col: b.Left.Col + i*dc})
	}
	return out
}

// String returns a compact description such as "Gateway#3 2:4-2:4 East"
func (b Barrier) String() string {
	return fmt.Sprintf("%s#%d %s-%s %s", b.Kind, b.ID, b.Left, b.Right, b.Facing)
}

// GatewaySpan is a gateway run found while walking one room. Each
// physical gateway yields one span per bordering room.
type GatewaySpan struct {
	Left, Right world.Location
	Facing      world.Direction

	// Owner is the room whose walk produced the span
	Owner RoomID

	// Barrier is the owner's gateway barrier covering the span
	Barrier BarrierID
}

// key normalises the span's endpoints so both sides of a gateway agree
func (s GatewaySpan) key() spanKey {
	lo, hi := s.Left, s.Right
	if hi.Less(lo) {
		lo, hi = hi, lo
	}
	return spanKey{lo: lo, hi: hi}
}

type spanKey struct {
	lo, hi world.Location
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}
