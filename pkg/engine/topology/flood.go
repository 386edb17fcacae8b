package topology

import (
	"github.com/zyedidia/generic/queue"

	"roomgraph/pkg/engine/world"
)

// assignRooms gives every maximal 4-connected run of open cells a fresh
// RoomID. The first cell of a room in scan order becomes its seed.
func (b *builder) assignRooms() {
	b.scan(func(loc world.Location) {
		if !b.isOpen(loc) || b.roomAt(loc) != NoRoom {
			return
		}
		id := b.newRoom(loc, false)
		b.rooms[id-1].cells = b.fill(loc, id)
	})
}

// scan visits every cell in the configured order
func (b *builder) scan(fn func(loc world.Location)) {
	if b.opts.order == ColumnMajor {
		for col := 0; col < b.cols; col++ {
			for row := 0; row < b.rows; row++ {
				fn(world.Loc(row, col))
			}
		}
		return
	}
	for row := 0; row < b.rows; row++ {
		for col := 0; col < b.cols; col++ {
			fn(world.Loc(row, col))
		}
	}
}

// fill stamps id on every open cell reachable from seed and returns the count
func (b *builder) fill(seed world.Location, id RoomID) int {
	frontier := queue.New[world.Location]()
	b.tagRoom(seed, id)
	frontier.Enqueue(seed)

	filled := 0
	for !frontier.Empty() {
		current := frontier.Dequeue()
		filled++
		for _, dir := range world.AllDirections() {
			next := current.Translate(dir)
			if !b.isOpen(next) || b.roomAt(next) != NoRoom {
				continue
			}
			b.tagRoom(next, id)
			frontier.Enqueue(next)
		}
	}
	return filled
}
