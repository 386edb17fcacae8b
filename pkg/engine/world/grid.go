package world

import (
	"fmt"
)

// Grid represents the map with encapsulated cell storage
type Grid struct {
	cells []*Cell
	rows  int
	cols  int
}

// NewGrid creates a new grid with the given dimensions; every cell starts open
func NewGrid(rows, cols int) *Grid {
	g := &Grid{}
	g.Build(rows, cols)
	return g
}

// Rows returns the number of rows in the grid
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns in the grid
func (g *Grid) Cols() int {
	return g.cols
}

// IsValidPosition checks if a row/col position is within grid bounds
func (g *Grid) IsValidPosition(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// InBounds checks if a location is within grid bounds
func (g *Grid) InBounds(loc Location) bool {
	return g.IsValidPosition(loc.Row, loc.Col)
}

// IsPlayablePosition checks if a position is within the playable area (not on the perimeter)
func (g *Grid) IsPlayablePosition(row, col int) bool {
	return row >= 1 && row < g.rows-1 && col >= 1 && col < g.cols-1
}

// IsOnPerimeter checks if a position is on the edge of the grid
func (g *Grid) IsOnPerimeter(row, col int) bool {
	return g.IsValidPosition(row, col) && !g.IsPlayablePosition(row, col)
}

// GetCell returns the cell at the given position, or nil if out of bounds
func (g *Grid) GetCell(row, col int) *Cell {
	if !g.IsValidPosition(row, col) {
		return nil
	}
	return g.cells[row*g.cols+col]
}

// CellAt returns the cell at the given location, or nil if out of bounds
func (g *Grid) CellAt(loc Location) *Cell {
	return g.GetCell(loc.Row, loc.Col)
}

// GetCellRelative returns the cell adjacent to the given cell in the specified direction
func (g *Grid) GetCellRelative(c *Cell, dir Direction) *Cell {
	if c == nil {
		return nil
	}
	if !dir.IsValid() {
		return nil
	}
	return g.CellAt(c.Location().Translate(dir))
}

// KindAt returns the occupancy of a location; out-of-bounds locations report Wall
func (g *Grid) KindAt(loc Location) CellKind {
	cell := g.CellAt(loc)
	if cell == nil {
		return Wall
	}
	return cell.Kind
}

// IsBlocking returns true if the location holds a wall
func (g *Grid) IsBlocking(loc Location) bool {
	return g.CellAt(loc).IsBlocking()
}

// IsGateway returns true if the location holds a gateway
func (g *Grid) IsGateway(loc Location) bool {
	return g.CellAt(loc).IsGateway()
}

// SetKind sets the occupancy of a cell. Returns false if out of bounds.
func (g *Grid) SetKind(row, col int, kind CellKind) bool {
	cell := g.GetCell(row, col)
	if cell == nil {
		return false
	}
	cell.Kind = kind
	return true
}

// MarkAsWall marks the cell at the given position as a wall. Returns false if out of bounds.
func (g *Grid) MarkAsWall(row, col int) bool {
	return g.SetKind(row, col, Wall)
}

// MarkAsGateway marks the cell at the given position as a gateway. Returns false if out of bounds.
func (g *Grid) MarkAsGateway(row, col int) bool {
	return g.SetKind(row, col, Gateway)
}

// MarkAsOpen marks the cell at the given position as open floor, optionally renaming it.
// Returns false if out of bounds.
func (g *Grid) MarkAsOpen(row, col int, name string) bool {
	cell := g.GetCell(row, col)
	if cell == nil {
		return false
	}
	cell.Kind = Open
	if name != "" {
		cell.Name = name
	}
	return true
}

// WallPerimeter turns every perimeter cell into a wall
func (g *Grid) WallPerimeter() {
	g.ForEachCell(func(row, col int, cell *Cell) {
		if g.IsOnPerimeter(row, col) {
			g.MarkAsWall(row, col)
		}
	})
}

// Count returns the number of cells of the given kind
func (g *Grid) Count(kind CellKind) int {
	n := 0
	for _, cell := range g.cells {
		if cell.Kind == kind {
			n++
		}
	}
	return n
}

// Build initializes the grid with the given dimensions
func (g *Grid) Build(rows, cols int) {
	if rows <= 0 || cols <= 0 {
		panic("Grid dimensions must be positive")
	}

	g.rows = rows
	g.cols = cols
	g.cells = make([]*Cell, rows*cols)

	for currentRow := 0; currentRow < rows; currentRow++ {
		for currentCol := 0; currentCol < cols; currentCol++ {
			cellName := fmt.Sprintf("%v:%v", currentRow, currentCol)
			g.cells[currentRow*cols+currentCol] = NewCell(currentRow, currentCol, cellName)
		}
	}
}

// ForEachCell iterates over all cells in the grid, calling the provided function for each
func (g *Grid) ForEachCell(fn func(row, col int, cell *Cell)) {
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			fn(row, col, g.cells[row*g.cols+col])
		}
	}
}

// Clone returns a deep copy of the grid
func (g *Grid) Clone() *Grid {
	out := &Grid{rows: g.rows, cols: g.cols, cells: make([]*Cell, len(g.cells))}
	for i, cell := range g.cells {
		cp := *cell
		out.cells[i] = &cp
	}
	return out
}
