// Package world tests directions, locations, grid queries and the text map format.
package world

import (
	"errors"
	"testing"
)

func TestDirection_Rotations(t *testing.T) {
	for _, d := range AllDirections() {
		if got := d.Right().Left(); got != d {
			t.Errorf("%v.Right().Left() = %v, want %v", d, got, d)
		}
		if got := d.Right().Right(); got != d.Backward() {
			t.Errorf("%v.Right().Right() = %v, want %v", d, got, d.Backward())
		}
	}
	if got := North.Right(); got != East {
		t.Errorf("North.Right() = %v, want East", got)
	}
	if got := North.Left(); got != West {
		t.Errorf("North.Left() = %v, want West", got)
	}
	if got := Direction(9).Right(); got != Direction(9) {
		t.Errorf("invalid Right() = %v, want unchanged", got)
	}
}

func TestLocation_Translate(t *testing.T) {
	l := Loc(2, 3)
	tests := []struct {
		dir  Direction
		want Location
	}{
		{North, Loc(1, 3)},
		{East, Loc(2, 4)},
		{South, Loc(3, 3)},
		{West, Loc(2, 2)},
	}
	for _, tt := range tests {
		if got := l.Translate(tt.dir); got != tt.want {
			t.Errorf("Translate(%v) = %v, want %v", tt.dir, got, tt.want)
		}
	}
	if !Loc(1, 9).Less(Loc(2, 0)) {
		t.Error("Loc(1,9).Less(Loc(2,0)) = false, want true")
	}
	if got := Loc(4, 7).String(); got != "4:7" {
		t.Errorf("String() = %q, want %q", got, "4:7")
	}
}

func TestGrid_OutOfBoundsIsWall(t *testing.T) {
	grid := NewGrid(2, 2)
	if got := grid.KindAt(Loc(-1, 0)); got != Wall {
		t.Errorf("KindAt(-1,0) = %v, want Wall", got)
	}
	if grid.IsBlocking(Loc(5, 5)) {
		t.Error("IsBlocking(5,5) = true, want false (no cell)")
	}
	if grid.InBounds(Loc(2, 0)) {
		t.Error("InBounds(2,0) = true, want false")
	}
}

func TestGrid_WallPerimeter(t *testing.T) {
	grid := NewGrid(3, 4)
	grid.WallPerimeter()
	if got := grid.Count(Wall); got != 10 {
		t.Errorf("Count(Wall) = %d, want 10", got)
	}
	if got := grid.Count(Open); got != 2 {
		t.Errorf("Count(Open) = %d, want 2", got)
	}
}

func TestGrid_CloneIsIndependent(t *testing.T) {
	grid := MustFromRows("#.#")
	clone := grid.Clone()
	clone.MarkAsGateway(0, 1)
	if grid.IsGateway(Loc(0, 1)) {
		t.Error("editing the clone changed the original")
	}
}

func TestFromRows_RoundTrip(t *testing.T) {
	rows := []string{
		"#####",
		"#..D#",
		"#####",
	}
	grid, err := FromRows(rows...)
	if err != nil {
		t.Fatalf("FromRows: %v", err)
	}
	if grid.Rows() != 3 || grid.Cols() != 5 {
		t.Fatalf("size = %dx%d, want 3x5", grid.Rows(), grid.Cols())
	}
	if !grid.IsGateway(Loc(1, 3)) {
		t.Error("cell 1:3 is not a gateway")
	}
	want := "#####\n#..D#\n#####\n"
	if got := grid.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestFromRows_Errors(t *testing.T) {
	tests := []struct {
		name string
		rows []string
		want error
	}{
		{"no rows", nil, ErrEmptyMap},
		{"empty row", []string{""}, ErrEmptyMap},
		{"ragged", []string{"###", "##"}, ErrRaggedMap},
		{"unknown glyph", []string{"#x#"}, ErrUnknownGlyph},
	}
	for _, tt := range tests {
		_, err := FromRows(tt.rows...)
		if !errors.Is(err, tt.want) {
			t.Errorf("%s: err = %v, want %v", tt.name, err, tt.want)
		}
	}
}

func TestGrid_GetCellRelative(t *testing.T) {
	grid := MustFromRows("#D#", "#..")
	door := grid.CellAt(Loc(0, 1))

	if got := grid.GetCellRelative(door, South); got != grid.CellAt(Loc(1, 1)) {
		t.Errorf("GetCellRelative(door, South) = %v, want cell 1:1", got)
	}
	if got := grid.GetCellRelative(door, North); got != nil {
		t.Errorf("GetCellRelative(door, North) = %v, want nil off the grid", got)
	}
	if got := grid.GetCellRelative(nil, East); got != nil {
		t.Errorf("GetCellRelative(nil, East) = %v, want nil", got)
	}
	if got := grid.GetCellRelative(door, Direction(9)); got != nil {
		t.Errorf("GetCellRelative(door, invalid) = %v, want nil", got)
	}
}
