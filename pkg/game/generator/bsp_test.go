// Package generator tests BSP grid generation: walled partitions, one
// gateway per partition line, determinism, and connectivity of the rooms.
package generator

import (
	"errors"
	"testing"

	"roomgraph/pkg/engine/topology"
	"roomgraph/pkg/engine/world"
)

// mustGenerate generates a level or fails the test
func mustGenerate(t *testing.T, seed int64, level int) *world.Grid {
	t.Helper()
	grid, err := NewBSPGenerator(seed).Generate(level)
	if err != nil {
		t.Fatalf("Generate(%d) with seed %d: %v", level, seed, err)
	}
	return grid
}

func TestBSPGenerate_PerimeterIsWalled(t *testing.T) {
	grid := mustGenerate(t, 1, 1)
	grid.ForEachCell(func(row, col int, cell *world.Cell) {
		if grid.IsOnPerimeter(row, col) && !cell.IsBlocking() {
			t.Errorf("perimeter cell (%d,%d) is %v, want Wall", row, col, cell.Kind)
		}
	})
}

func TestBSPGenerate_Deterministic(t *testing.T) {
	a := mustGenerate(t, 42, 3)
	b := mustGenerate(t, 42, 3)
	if a.String() != b.String() {
		t.Errorf("seed 42 produced different maps:\n%s\n---\n%s", a, b)
	}
}

func TestBSPGenerate_RoomsFormATree(t *testing.T) {
	for seed := int64(1); seed <= 8; seed++ {
		for _, level := range []int{1, 4, 9} {
			grid := mustGenerate(t, seed, level)
			graph, err := topology.Extract(grid)
			if err != nil {
				t.Fatalf("seed %d level %d: Extract: %v\n%s", seed, level, err, grid)
			}

			// one gateway per split, and a BSP tree has leaves-1 splits
			if got, want := graph.GatewayRoomCount(), grid.Count(world.Gateway); got != want {
				t.Errorf("seed %d level %d: GatewayRoomCount() = %d, want %d", seed, level, got, want)
			}
			if got, want := graph.GatewayRoomCount(), graph.OpenRoomCount()-1; got != want {
				t.Errorf("seed %d level %d: GatewayRoomCount() = %d, want OpenRoomCount()-1 = %d", seed, level, got, want)
			}
		}
	}
}

func TestBSPGenerate_AllRoomsReachable(t *testing.T) {
	graph, err := topology.Extract(mustGenerate(t, 3, 5))
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}

	first := topology.RoomID(1)
	for _, id := range graph.RoomIDs() {
		if _, err := graph.Route(first, id); err != nil {
			t.Errorf("room %d unreachable from room %d: %v", id, first, err)
		}
	}
}

func TestBSPGenerate_RoomsAreNamed(t *testing.T) {
	grid := mustGenerate(t, 4, 2)
	graph, err := topology.Extract(grid)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}

	for _, id := range graph.RoomIDs() {
		if graph.IsGatewayRoom(id) {
			continue
		}
		seed, err := graph.RoomSeed(id)
		if err != nil {
			t.Fatalf("RoomSeed(%d): %v", id, err)
		}
		name := grid.CellAt(seed).Name
		if name == "" || name == seed.String() {
			t.Errorf("room %d at %s has name %q, want a generated name", id, seed, name)
		}
	}
}

func TestBSPGenerate_GatewaysSitBetweenOpenCells(t *testing.T) {
	grid := mustGenerate(t, 6, 3)
	grid.ForEachCell(func(row, col int, cell *world.Cell) {
		if !cell.IsGateway() {
			return
		}
		eastWest := grid.GetCellRelative(cell, world.East).IsOpen() && grid.GetCellRelative(cell, world.West).IsOpen()
		northSouth := grid.GetCellRelative(cell, world.North).IsOpen() && grid.GetCellRelative(cell, world.South).IsOpen()
		if eastWest == northSouth {
			t.Errorf("gateway (%d,%d): open east-west %v, north-south %v, want exactly one", row, col, eastWest, northSouth)
		}
	})
}

func TestBSPGenerate_RejectsLevelZero(t *testing.T) {
	if _, err := New(1).Generate(0); !errors.Is(err, ErrInvalidLevel) {
		t.Errorf("Generate(0) error = %v, want ErrInvalidLevel", err)
	}
}

func TestBSPGenerate_GridGrowsWithLevel(t *testing.T) {
	small := mustGenerate(t, 9, 1)
	large := mustGenerate(t, 9, 8)

	if large.Rows() <= small.Rows() || large.Cols() <= small.Cols() {
		t.Errorf("level 8 is %dx%d, level 1 is %dx%d; want level 8 larger",
			large.Rows(), large.Cols(), small.Rows(), small.Cols())
	}
	if large.Rows() > maxRows || large.Cols() > maxCols {
		t.Errorf("level 8 is %dx%d, want at most %dx%d", large.Rows(), large.Cols(), maxRows, maxCols)
	}
}
