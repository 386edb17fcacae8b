package topology

import (
	"fmt"

	"roomgraph/pkg/engine/world"
)

// walkState is the transition taken by one walker step
type walkState int

const (
	stateScanning walkState = iota
	stateTurnRight
	stateTurnLeft
	stateSpur
	stateDone
)

// String returns the state name used in progress logs
func (s walkState) String() string {
	switch s {
	case stateScanning:
		return "scanning"
	case stateTurnRight:
		return "turn-right"
	case stateTurnLeft:
		return "turn-left"
	case stateSpur:
		return "spur"
	case stateDone:
		return "done"
	default:
		return "unknown"
	}
}

// walker traces one room's boundary clockwise. It stands on boundary
// cells with the room always on its right hand side.
type walker struct {
	b    *builder
	room RoomID

	pos   world.Location
	start world.Location
	dir   world.Direction

	open     *Barrier
	boundary []Barrier
	spans    []GatewaySpan

	turns map[walkState]int
}

// walk traces room's perimeter starting on the cell north of seed. The
// seed is the room's first cell in scan order, so that cell is always a
// wall or gateway.
func (b *builder) walk(room RoomID, seed world.Location) ([]Barrier, []GatewaySpan, error) {
	start := seed.Translate(world.North)
	w := &walker{
		b:     b,
		room:  room,
		pos:   start,
		start: start,
		dir:   world.East,
		turns: make(map[walkState]int),
	}

	// each (cell, heading) pair is visited at most once per lap
	limit := 4 * b.boundaryCells
	for steps := 0; ; steps++ {
		if steps >= limit {
			return nil, nil, fmt.Errorf("%w: room %d gave up after %d steps", ErrWalkStepLimit, room, steps)
		}
		state, err := w.step()
		if err != nil {
			return nil, nil, fmt.Errorf("room %d at %s heading %s: %w", room, w.pos, w.dir, err)
		}
		w.turns[state]++
		if state == stateDone {
			break
		}
	}

	for _, bar := range w.boundary {
		b.tagBarrier(bar)
	}
	b.opts.logger.Printf("topology: room %d walked: %d barriers, %d right turns, %d left turns, %d spurs",
		room, len(w.boundary), w.turns[stateTurnRight], w.turns[stateTurnLeft], w.turns[stateSpur])

	return w.boundary, w.spans, nil
}

// step performs one transition of the walk
func (w *walker) step() (walkState, error) {
	kind, ok := barrierKindOf(w.b.kindAt(w.pos))
	if !ok {
		return 0, fmt.Errorf("%w: standing on an open cell", ErrWalkInvariant)
	}
	if w.open == nil || w.open.Kind != kind {
		w.closeBarrier()
		w.openBarrier(kind)
	}
	w.open.Right = w.pos

	next := w.pos.Translate(w.dir)
	nextBoundary, err := w.boundaryAt(next)
	if err != nil {
		return 0, err
	}
	rightOfNext := next.Translate(w.dir.Right())
	rightBoundary, err := w.boundaryAt(rightOfNext)
	if err != nil {
		return 0, err
	}

	if nextBoundary && !rightBoundary {
		w.pos = next
		return stateScanning, nil
	}

	// the facing changes on every turn, so the barrier ends here
	w.closeBarrier()

	var state walkState
	if rightBoundary {
		state = stateTurnRight
		w.dir = w.dir.Right()
		w.pos = rightOfNext
	} else {
		// pos also starts the new segment; a lone cell poking into the
		// room takes this branch once per exposed side
		state = stateTurnLeft
		if left := w.pos.Translate(w.dir.Left()); !w.b.grid.InBounds(left) || !w.b.isBoundaryCell(left) {
			state = stateSpur
		}
		w.dir = w.dir.Left()
	}

	if w.pos == w.start && w.dir == world.East {
		return stateDone, nil
	}
	return state, nil
}

func (w *walker) boundaryAt(loc world.Location) (bool, error) {
	if !w.b.grid.InBounds(loc) {
		return false, fmt.Errorf("%w: probed %s", ErrWalkOutOfBounds, loc)
	}
	return w.b.isBoundaryCell(loc), nil
}

func (w *walker) openBarrier(kind BarrierKind) {
	w.open = &Barrier{
		ID:     w.b.mintBarrier(kind),
		Kind:   kind,
		Left:   w.pos,
		Right:  w.pos,
		Facing: w.dir.Left(),
	}
}

// closeBarrier appends the open barrier, if any, to the boundary. Gateway
// barriers also record the span for promotion.
func (w *walker) closeBarrier() {
	if w.open == nil {
		return
	}
	bar := *w.open
	w.open = nil

	w.boundary = append(w.boundary, bar)
	w.b.storeBarrier(bar)
	if bar.Kind == GatewayBarrier {
		w.spans = append(w.spans, GatewaySpan{
			Left:    bar.Left,
			Right:   bar.Right,
			Facing:  bar.Facing,
			Owner:   w.room,
			Barrier: bar.ID,
		})
	}
}
