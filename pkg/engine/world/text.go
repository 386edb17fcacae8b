package world

import (
	"errors"
	"fmt"
	"strings"
)

// Map glyphs, shared with the devtools dumps
const (
	GlyphWall    = '#'
	GlyphGateway = 'D'
	GlyphOpen    = '.'
)

var (
	// ErrEmptyMap indicates a text map with no rows or no columns.
	ErrEmptyMap = errors.New("world: map must have at least one row and one column")
	// ErrRaggedMap indicates text rows of differing lengths.
	ErrRaggedMap = errors.New("world: all map rows must have the same length")
	// ErrUnknownGlyph indicates a character with no occupancy meaning.
	ErrUnknownGlyph = errors.New("world: unknown map glyph")
)

// KindForGlyph maps a map character to a cell kind
func KindForGlyph(r rune) (CellKind, bool) {
	switch r {
	case GlyphWall:
		return Wall, true
	case GlyphGateway:
		return Gateway, true
	case GlyphOpen, ' ':
		return Open, true
	default:
		return Open, false
	}
}

// Glyph returns the map character for a cell kind
func (k CellKind) Glyph() rune {
	switch k {
	case Wall:
		return GlyphWall
	case Gateway:
		return GlyphGateway
	default:
		return GlyphOpen
	}
}

// FromRows builds a grid from text rows, one character per cell.
// '#' is a wall, 'D' a gateway, '.' (or space) open floor.
func FromRows(rows ...string) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyMap
	}
	width := len([]rune(rows[0]))
	for i, line := range rows {
		if n := len([]rune(line)); n != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrRaggedMap, i, n, width)
		}
	}

	g := NewGrid(len(rows), width)
	for row, line := range rows {
		for col, r := range []rune(line) {
			kind, ok := KindForGlyph(r)
			if !ok {
				return nil, fmt.Errorf("%w %q at %d:%d", ErrUnknownGlyph, r, row, col)
			}
			g.SetKind(row, col, kind)
		}
	}
	return g, nil
}

// MustFromRows is FromRows for fixed maps known to be valid
func MustFromRows(rows ...string) *Grid {
	g, err := FromRows(rows...)
	if err != nil {
		panic(err)
	}
	return g
}

// String renders the grid with the same glyphs FromRows reads
func (g *Grid) String() string {
	var sb strings.Builder
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			sb.WriteRune(g.cells[row*g.cols+col].Kind.Glyph())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
