package world

import "fmt"

// Location is a cell coordinate. Row grows southwards, Col grows eastwards.
type Location struct {
	Row int
	Col int
}

// Loc is shorthand for Location{Row: row, Col: col}
func Loc(row, col int) Location {
	return Location{Row: row, Col: col}
}

// Translate returns the location one step away in the given direction.
// The result may lie outside any grid; callers check bounds.
func (l Location) Translate(dir Direction) Location {
	rowDelta, colDelta := dir.Delta()
	return Location{Row: l.Row + rowDelta, Col: l.Col + colDelta}
}

// Less orders locations row first, then column
func (l Location) Less(other Location) bool {
	if l.Row != other.Row {
		return l.Row < other.Row
	}
	return l.Col < other.Col
}

// String returns "row:col", the same format the grid uses for cell names
func (l Location) String() string {
	return fmt.Sprintf("%d:%d", l.Row, l.Col)
}
