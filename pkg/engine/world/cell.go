// Package world provides generic 2D grid-based world primitives.
// Cells are classified by occupancy: open floor, blocking wall, or a
// traversable gateway set into a wall.
package world

// CellKind classifies a cell's occupancy. Kinds are mutually exclusive.
type CellKind int

// Cell kinds
const (
	Open CellKind = iota
	Wall
	Gateway
)

// String returns the string representation of a cell kind
func (k CellKind) String() string {
	switch k {
	case Open:
		return "Open"
	case Wall:
		return "Wall"
	case Gateway:
		return "Gateway"
	default:
		return "Unknown"
	}
}

// IsBoundary reports whether the kind bounds a room (walls and gateways)
func (k CellKind) IsBoundary() bool {
	return k == Wall || k == Gateway
}

// Cell represents a single cell/tile in the grid.
type Cell struct {
	// Name is "row:col" unless a generator assigns something better
	Name string

	Row int
	Col int

	Kind CellKind
}

// NewCell creates a new open cell at the given position
func NewCell(row, col int, name string) *Cell {
	return &Cell{
		Name: name,
		Row:  row,
		Col:  col,
		Kind: Open,
	}
}

// Location returns the cell's coordinate
func (c *Cell) Location() Location {
	return Location{Row: c.Row, Col: c.Col}
}

// IsBlocking returns true if the cell is a wall
func (c *Cell) IsBlocking() bool {
	return c != nil && c.Kind == Wall
}

// IsGateway returns true if the cell is a gateway
func (c *Cell) IsGateway() bool {
	return c != nil && c.Kind == Gateway
}

// IsOpen returns true if the cell is open floor
func (c *Cell) IsOpen() bool {
	return c != nil && c.Kind == Open
}
