package topology

import (
	"fmt"

	"roomgraph/pkg/engine/world"
)

// spanGroup is one physical gateway and every per-room span that saw it
type spanGroup struct {
	key   spanKey
	spans []GatewaySpan
}

// dedupSpans groups spans by physical cell run, keeping first-seen order
// so pseudo-room ids follow the flood-fill numbering.
func dedupSpans(spans []GatewaySpan) []spanGroup {
	index := make(map[spanKey]int, len(spans))
	var groups []spanGroup
	for _, s := range spans {
		k := s.key()
		i, ok := index[k]
		if !ok {
			i = len(groups)
			index[k] = i
			groups = append(groups, spanGroup{key: k})
		}
		groups[i].spans = append(groups[i].spans, s)
	}
	return groups
}

// linkGateways seeds every walked gateway barrier with {owner, far room}
func (b *builder) linkGateways() error {
	for _, s := range b.spans {
		far, err := b.farRoom(s)
		if err != nil {
			return err
		}
		b.adjacency[s.Barrier-1] = []RoomID{s.Owner, far}
	}
	return nil
}

// farRoom returns the single room found one step beyond the span. It must
// differ from the owner.
func (b *builder) farRoom(s GatewaySpan) (RoomID, error) {
	far := NoRoom
	for _, cell := range spanCells(s.Left, s.Right) {
		beyond := cell.Translate(s.Facing)
		id := NoRoom
		if b.grid.InBounds(beyond) {
			id = b.roomAt(beyond)
		}
		if id == NoRoom || id == s.Owner || (far != NoRoom && id != far) {
			return NoRoom, fmt.Errorf("%w: %s-%s seen from room %d", ErrOneSidedGateway, s.Left, s.Right, s.Owner)
		}
		far = id
	}
	return far, nil
}

// promote turns every physical gateway into a pseudo-room bounded by two
// end walls and two gateways onto its real neighbours.
func (b *builder) promote(groups []spanGroup) error {
	promoted := 0
	for _, g := range groups {
		cells := spanCells(g.key.lo, g.key.hi)
		for _, cell := range cells {
			if other := b.roomAt(cell); other != NoRoom {
				return fmt.Errorf("%w: %s-%s overlaps gateway room %d", ErrOneSidedGateway, g.key.lo, g.key.hi, other)
			}
		}

		id := b.newRoom(g.key.lo, true)
		for _, cell := range cells {
			b.tagRoom(cell, id)
		}
		b.rooms[id-1].cells = len(cells)

		for _, s := range g.spans {
			b.adjacency[s.Barrier-1] = append(b.adjacency[s.Barrier-1], id)
		}

		vertical := b.gatewayAxis(g.key, g.spans[0].Facing)
		boundary, err := b.pseudoBoundary(id, g.key, vertical)
		if err != nil {
			return err
		}
		b.rooms[id-1].boundary = boundary
		promoted++
	}
	b.opts.logger.Printf("topology: promoted %d gateways to rooms", promoted)
	return nil
}

// gatewayAxis reports whether the gateway's long axis runs north-south
func (b *builder) gatewayAxis(k spanKey, facing world.Direction) bool {
	switch {
	case k.lo.Col == k.hi.Col && k.lo.Row != k.hi.Row:
		return true
	case k.lo.Row == k.hi.Row && k.lo.Col != k.hi.Col:
		return false
	}

	// single cell: prefer the axis with open floor on both sides, then
	// whichever wall line touches it
	north, south := k.lo.Translate(world.North), k.lo.Translate(world.South)
	east, west := k.lo.Translate(world.East), k.lo.Translate(world.West)
	switch {
	case b.isOpen(east) && b.isOpen(west):
		return true
	case b.isOpen(north) && b.isOpen(south):
		return false
	case b.grid.IsBlocking(north) || b.grid.IsBlocking(south):
		return true
	case b.grid.IsBlocking(east) || b.grid.IsBlocking(west):
		return false
	}
	return !facing.IsVertical()
}

// pseudoBoundary builds the four barriers of a promoted gateway clockwise
// from north: long sides are gateways onto the neighbours, short ends walls.
func (b *builder) pseudoBoundary(id RoomID, k spanKey, vertical bool) ([]Barrier, error) {
	lo, hi := k.lo, k.hi

	capLo, capHi := lo.Translate(world.West), hi.Translate(world.East)
	if vertical {
		capLo, capHi = lo.Translate(world.North), hi.Translate(world.South)
	}
	for _, end := range []world.Location{capLo, capHi} {
		if !b.grid.InBounds(end) || !b.grid.IsBlocking(end) {
			return nil, fmt.Errorf("%w: %s-%s has no wall at its end %s", ErrOneSidedGateway, lo, hi, end)
		}
	}

	var boundary []Barrier
	if vertical {
		east, err := b.neighbourRoom(lo.Translate(world.East), k)
		if err != nil {
			return nil, err
		}
		west, err := b.neighbourRoom(lo.Translate(world.West), k)
		if err != nil {
			return nil, err
		}
		boundary = []Barrier{
			b.addBarrier(WallBarrier, lo.Translate(world.North), lo.Translate(world.North), world.North),
			b.addGateway(lo, hi, world.East, id, east),
			b.addBarrier(WallBarrier, hi.Translate(world.South), hi.Translate(world.South), world.South),
			b.addGateway(hi, lo, world.West, id, west),
		}
	} else {
		north, err := b.neighbourRoom(lo.Translate(world.North), k)
		if err != nil {
			return nil, err
		}
		south, err := b.neighbourRoom(lo.Translate(world.South), k)
		if err != nil {
			return nil, err
		}
		boundary = []Barrier{
			b.addGateway(lo, hi, world.North, id, north),
			b.addBarrier(WallBarrier, hi.Translate(world.East), hi.Translate(world.East), world.East),
			b.addGateway(hi, lo, world.South, id, south),
			b.addBarrier(WallBarrier, lo.Translate(world.West), lo.Translate(world.West), world.West),
		}
	}

	for _, bar := range boundary {
		if bar.Kind == WallBarrier {
			b.tagBarrier(bar)
		}
	}
	return boundary, nil
}

func (b *builder) addGateway(left, right world.Location, facing world.Direction, pseudo, far RoomID) Barrier {
	bar := b.addBarrier(GatewayBarrier, left, right, facing)
	b.adjacency[bar.ID-1] = []RoomID{pseudo, far}
	return bar
}

func (b *builder) neighbourRoom(loc world.Location, k spanKey) (RoomID, error) {
	if !b.grid.InBounds(loc) || b.roomAt(loc) == NoRoom {
		return NoRoom, fmt.Errorf("%w: %s-%s has no room at %s", ErrOneSidedGateway, k.lo, k.hi, loc)
	}
	return b.roomAt(loc), nil
}

func spanCells(left, right world.Location) []world.Location {
	return Barrier{Left: left, Right: right}.Cells()
}
