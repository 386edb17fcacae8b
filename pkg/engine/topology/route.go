package topology

import (
	"fmt"
	"sort"

	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/queue"
)

// Neighbors returns the rooms one gateway barrier away from id, sorted.
// Open rooms reach the pseudo-rooms of their gateways; pseudo-rooms reach
// the open rooms on either side.
func (g *Graph) Neighbors(id RoomID) ([]RoomID, error) {
	r, err := g.room(id)
	if err != nil {
		return nil, err
	}

	seen := mapset.New[RoomID]()
	for _, bar := range r.boundary {
		if bar.Kind != GatewayBarrier {
			continue
		}
		dests := g.adjacency[bar.ID-1]
		for i := len(dests) - 1; i >= 0; i-- {
			if dests[i] != id && dests[i] != NoRoom {
				seen.Put(dests[i])
				break
			}
		}
	}

	out := make([]RoomID, 0, seen.Size())
	seen.Each(func(n RoomID) {
		out = append(out, n)
	})
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out, nil
}

// Route returns the shortest chain of rooms from one room to another,
// both ends included. Gateways appear as their pseudo-rooms.
func (g *Graph) Route(from, to RoomID) ([]RoomID, error) {
	if _, err := g.room(from); err != nil {
		return nil, err
	}
	if _, err := g.room(to); err != nil {
		return nil, err
	}
	if from == to {
		return []RoomID{from}, nil
	}

	parent := map[RoomID]RoomID{from: NoRoom}
	frontier := queue.New[RoomID]()
	frontier.Enqueue(from)

	for !frontier.Empty() {
		current := frontier.Dequeue()
		if current == to {
			break
		}
		neighbors, err := g.Neighbors(current)
		if err != nil {
			return nil, err
		}
		for _, n := range neighbors {
			if _, ok := parent[n]; ok {
				continue
			}
			parent[n] = current
			frontier.Enqueue(n)
		}
	}

	if _, ok := parent[to]; !ok {
		return nil, fmt.Errorf("%w: %d to %d", ErrNoRoute, from, to)
	}

	var path []RoomID
	for at := to; at != NoRoom; at = parent[at] {
		path = append(path, at)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}
