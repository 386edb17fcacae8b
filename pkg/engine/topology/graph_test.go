package topology

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roomgraph/pkg/engine/world"
)

var threeInARow = []string{
	"#############",
	"#...#...#...#",
	"#...D...D...#",
	"#...#...#...#",
	"#############",
}

func TestGraph_BarrierAt(t *testing.T) {
	_, g := mustExtract(t, twoRooms...)

	tests := []struct {
		loc    world.Location
		facing world.Direction
		want   Barrier
	}{
		// each side of the gateway keeps the view of the room it faces
		{loc(2, 4), world.East, gateway(1, loc(2, 4), loc(2, 4), world.East)},
		{loc(2, 4), world.West, gateway(2, loc(2, 4), loc(2, 4), world.West)},
		// the dividing wall as seen from either room
		{loc(1, 4), world.East, wall(2, loc(1, 4), loc(1, 4), world.East)},
		{loc(1, 4), world.West, wall(10, loc(1, 4), loc(1, 4), world.West)},
		// end walls of the promoted gateway
		{loc(1, 4), world.North, wall(11, loc(1, 4), loc(1, 4), world.North)},
		{loc(3, 4), world.South, wall(12, loc(3, 4), loc(3, 4), world.South)},
		{loc(0, 2), world.North, wall(1, loc(0, 1), loc(0, 3), world.North)},
	}
	for _, tt := range tests {
		got, err := g.BarrierAt(tt.loc, tt.facing)
		require.NoError(t, err, "%s facing %s", tt.loc, tt.facing)
		assert.Equal(t, tt.want, got, "%s facing %s", tt.loc, tt.facing)
	}
}

func TestGraph_BarrierLookup(t *testing.T) {
	_, g := mustExtract(t, twoRooms...)

	assert.Equal(t, 12, g.WallCount())
	assert.Equal(t, 4, g.GatewayCount())

	bar, err := g.Barrier(GatewayBarrier, 3)
	require.NoError(t, err)
	assert.Equal(t, world.East, bar.Facing)

	_, err = g.Barrier(WallBarrier, 13)
	assert.ErrorIs(t, err, ErrBarrierNotFound)
	_, err = g.Barrier(GatewayBarrier, 0)
	assert.ErrorIs(t, err, ErrBarrierNotFound)
}

func TestGraph_RoomSeedAndArea(t *testing.T) {
	_, g := mustExtract(t, twoRooms...)

	seed, err := g.RoomSeed(2)
	require.NoError(t, err)
	assert.Equal(t, loc(1, 5), seed)

	area, err := g.RoomArea(1)
	require.NoError(t, err)
	assert.Equal(t, 9, area)

	_, err = g.RoomSeed(4)
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestGraph_ReturnsCopies(t *testing.T) {
	_, g := mustExtract(t, twoRooms...)

	barriers, err := g.RoomBarriers(1)
	require.NoError(t, err)
	barriers[0].ID = 99

	dests, err := g.GatewayDestinations(1)
	require.NoError(t, err)
	dests[0] = 99

	again, _ := g.RoomBarriers(1)
	assert.Equal(t, BarrierID(1), again[0].ID)
	destsAgain, _ := g.GatewayDestinations(1)
	assert.Equal(t, RoomID(1), destsAgain[0])
}

func TestGraph_Neighbors(t *testing.T) {
	_, g := mustExtract(t, threeInARow...)

	// rooms 1..3 left to right, 4 and 5 the promoted gateways
	require.Equal(t, 5, g.RoomCount())

	tests := map[RoomID][]RoomID{
		1: {4},
		2: {4, 5},
		3: {5},
		4: {1, 2},
		5: {2, 3},
	}
	for id, want := range tests {
		got, err := g.Neighbors(id)
		require.NoError(t, err)
		assert.Equal(t, want, got, "room %d", id)
	}

	_, err := g.Neighbors(6)
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestGraph_Route(t *testing.T) {
	_, g := mustExtract(t, threeInARow...)

	path, err := g.Route(1, 3)
	require.NoError(t, err)
	assert.Equal(t, []RoomID{1, 4, 2, 5, 3}, path)

	path, err = g.Route(3, 3)
	require.NoError(t, err)
	assert.Equal(t, []RoomID{3}, path)

	_, err = g.Route(1, 9)
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestGraph_RouteUnreachable(t *testing.T) {
	_, g := mustExtract(t,
		"#########",
		"#...#...#",
		"#...#...#",
		"#########",
	)

	_, err := g.Route(1, 2)
	assert.ErrorIs(t, err, ErrNoRoute)
}

func TestGraph_ConcurrentReads(t *testing.T) {
	_, g := mustExtract(t, threeInARow...)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, id := range g.RoomIDs() {
				_, _ = g.RoomBarriers(id)
				_, _ = g.Route(1, id)
			}
		}()
	}
	wg.Wait()
}

func TestBarrier_Geometry(t *testing.T) {
	bar := wall(1, loc(3, 4), loc(3, 1), world.South)

	assert.Equal(t, 4, bar.Len())
	assert.Equal(t, Point{Row: 3, Col: 2.5}, bar.Centerpoint())
	assert.Equal(t, []world.Location{loc(3, 4), loc(3, 3), loc(3, 2), loc(3, 1)}, bar.Cells())
	assert.Equal(t, "Wall#1 3:4-3:1 South", bar.String())
}
