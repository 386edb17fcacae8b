package topology

import (
	"fmt"

	"roomgraph/pkg/engine/world"
)

// Occupancy is the read-only view of a grid that extraction consumes.
// IsBlocking and IsGateway are mutually exclusive; a location that is
// neither is open floor. *world.Grid implements it.
type Occupancy interface {
	Rows() int
	Cols() int
	InBounds(loc world.Location) bool
	IsBlocking(loc world.Location) bool
	IsGateway(loc world.Location) bool
}

type barrierRef struct {
	kind BarrierKind
	id   BarrierID
}

type tagKey struct {
	loc    world.Location
	facing world.Direction
}

type roomRecord struct {
	seed     world.Location
	boundary []Barrier
	gateway  bool
	cells    int
}

// builder owns every counter and tag of one extraction. Nothing it holds
// is visible outside until publish hands it to a Graph.
type builder struct {
	grid Occupancy
	opts options

	rows, cols    int
	boundaryCells int

	cellRooms []RoomID
	tags      map[tagKey]barrierRef

	rooms     []roomRecord
	walls     []Barrier
	gateways  []Barrier
	adjacency [][]RoomID

	nextWall    BarrierID
	nextGateway BarrierID

	spans []GatewaySpan
}

// Extract runs flood fill, boundary walks and gateway promotion over grid
// and returns the finished graph. On error no graph is returned.
func Extract(grid Occupancy, opts ...Option) (*Graph, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	boundaryCells, err := checkPreconditions(grid)
	if err != nil {
		return nil, err
	}

	b := newBuilder(grid, o, boundaryCells)
	b.assignRooms()
	openRooms := len(b.rooms)
	o.logger.Printf("topology: flood fill found %d rooms", openRooms)

	for i := 0; i < openRooms; i++ {
		id := RoomID(i + 1)
		boundary, spans, err := b.walk(id, b.rooms[i].seed)
		if err != nil {
			return nil, err
		}
		b.rooms[i].boundary = boundary
		b.spans = append(b.spans, spans...)
	}

	if err := b.linkGateways(); err != nil {
		return nil, err
	}
	if err := b.promote(dedupSpans(b.spans)); err != nil {
		return nil, err
	}
	if err := b.checkGatewayRooms(); err != nil {
		return nil, err
	}

	return b.publish(openRooms), nil
}

func newBuilder(grid Occupancy, o options, boundaryCells int) *builder {
	return &builder{
		grid:          grid,
		opts:          o,
		rows:          grid.Rows(),
		cols:          grid.Cols(),
		boundaryCells: boundaryCells,
		cellRooms:     make([]RoomID, grid.Rows()*grid.Cols()),
		tags:          make(map[tagKey]barrierRef),
	}
}

// checkPreconditions validates the grid and counts its boundary cells
func checkPreconditions(grid Occupancy) (int, error) {
	if grid == nil || grid.Rows() <= 0 || grid.Cols() <= 0 {
		return 0, ErrEmptyGrid
	}
	rows, cols := grid.Rows(), grid.Cols()
	boundary := 0
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			loc := world.Loc(row, col)
			perimeter := row == 0 || col == 0 || row == rows-1 || col == cols-1
			if perimeter && !grid.IsBlocking(loc) {
				return 0, fmt.Errorf("%w: cell %s", ErrMissingOuterWall, loc)
			}
			if grid.IsBlocking(loc) || grid.IsGateway(loc) {
				boundary++
			}
		}
	}
	return boundary, nil
}

// checkGatewayRooms fails if promotion left any gateway cell without a room
func (b *builder) checkGatewayRooms() error {
	for row := 0; row < b.rows; row++ {
		for col := 0; col < b.cols; col++ {
			loc := world.Loc(row, col)
			if b.grid.IsGateway(loc) && b.roomAt(loc) == NoRoom {
				return fmt.Errorf("%w: cell %s", ErrUnwalkedGateway, loc)
			}
		}
	}
	return nil
}

func (b *builder) index(loc world.Location) int {
	return loc.Row*b.cols + loc.Col
}

func (b *builder) roomAt(loc world.Location) RoomID {
	return b.cellRooms[b.index(loc)]
}

func (b *builder) tagRoom(loc world.Location, id RoomID) {
	b.cellRooms[b.index(loc)] = id
}

func (b *builder) isOpen(loc world.Location) bool {
	return b.grid.InBounds(loc) && !b.grid.IsBlocking(loc) && !b.grid.IsGateway(loc)
}

func (b *builder) isBoundaryCell(loc world.Location) bool {
	return b.grid.IsBlocking(loc) || b.grid.IsGateway(loc)
}

func (b *builder) kindAt(loc world.Location) world.CellKind {
	switch {
	case b.grid.IsBlocking(loc):
		return world.Wall
	case b.grid.IsGateway(loc):
		return world.Gateway
	default:
		return world.Open
	}
}

func (b *builder) newRoom(seed world.Location, gateway bool) RoomID {
	b.rooms = append(b.rooms, roomRecord{seed: seed, gateway: gateway})
	return RoomID(len(b.rooms))
}

// mintBarrier hands out the next id of the given kind. Ids are stored in
// mint order by storeBarrier, keeping the arenas dense.
func (b *builder) mintBarrier(kind BarrierKind) BarrierID {
	if kind == GatewayBarrier {
		b.nextGateway++
		return b.nextGateway
	}
	b.nextWall++
	return b.nextWall
}

func (b *builder) storeBarrier(bar Barrier) {
	if bar.Kind == GatewayBarrier {
		b.gateways = append(b.gateways, bar)
		b.adjacency = append(b.adjacency, nil)
		return
	}
	b.walls = append(b.walls, bar)
}

func (b *builder) addBarrier(kind BarrierKind, left, right world.Location, facing world.Direction) Barrier {
	bar := Barrier{ID: b.mintBarrier(kind), Kind: kind, Left: left, Right: right, Facing: facing}
	b.storeBarrier(bar)
	return bar
}

func (b *builder) tagBarrier(bar Barrier) {
	for _, cell := range bar.Cells() {
		b.tags[tagKey{loc: cell, facing: bar.Facing}] = barrierRef{kind: bar.Kind, id: bar.ID}
	}
}

func (b *builder) publish(openRooms int) *Graph {
	return &Graph{
		rows:      b.rows,
		cols:      b.cols,
		cellRooms: b.cellRooms,
		rooms:     b.rooms,
		openRooms: openRooms,
		walls:     b.walls,
		gateways:  b.gateways,
		adjacency: b.adjacency,
		tags:      b.tags,
	}
}
