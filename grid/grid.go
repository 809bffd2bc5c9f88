package grid

import (
	"fmt"
	"strings"
)

// New builds a width×height Grid from row-major values.
// The slice is copied, so later changes to values do not affect the Grid.
// Returns ErrEmptyGrid if either dimension is not positive and
// ErrMalformedInput if len(values) != width*height.
func New(width, height int, values []uint8) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyGrid
	}
	if len(values) != width*height {
		return nil, fmt.Errorf("%w: %d values for a %dx%d grid", ErrMalformedInput, len(values), width, height)
	}
	cells := make([]uint8, len(values))
	copy(cells, values)

	return &Grid{width: width, height: height, cells: cells}, nil
}

// FromRows builds a Grid from a non-empty, rectangular 2D slice.
// rows[y][x] becomes the value at (x, y).
// Returns ErrEmptyGrid if there are no rows or no columns and
// ErrNonRectangular if any row length differs.
func FromRows(rows [][]uint8) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	cells := make([]uint8, 0, w*h)
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
		cells = append(cells, row...)
	}

	return &Grid{width: w, height: h, cells: cells}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Len returns the number of cells.
func (g *Grid) Len() int { return len(g.cells) }

// InBounds reports whether p lies within [0,Width)×[0,Height).
func (g *Grid) InBounds(p Position) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

// Index maps p to its row-major index y*Width + x.
// The result is meaningless for out-of-bounds positions.
func (g *Grid) Index(p Position) int {
	return p.Y*g.width + p.X
}

// Position converts a row-major index back to its coordinates.
func (g *Grid) Position(idx int) Position {
	return Position{X: idx % g.width, Y: idx / g.width}
}

// Get returns the value at p. It panics if p is out of bounds.
func (g *Grid) Get(p Position) uint8 {
	if !g.InBounds(p) {
		panic(fmt.Sprintf("grid: position %v outside %dx%d grid", p, g.width, g.height))
	}
	return g.cells[g.Index(p)]
}

// At returns the value stored at row-major index idx.
func (g *Grid) At(idx int) uint8 {
	return g.cells[idx]
}

// Neighbors4 appends the in-bounds N, E, S, W neighbors of p to buf[:0] and
// returns the result. Pass a buffer with capacity 4 to avoid allocation.
func (g *Grid) Neighbors4(p Position, buf []Position) []Position {
	buf = buf[:0]
	for _, d := range offsets4 {
		q := Position{X: p.X + d[0], Y: p.Y + d[1]}
		if g.InBounds(q) {
			buf = append(buf, q)
		}
	}
	return buf
}

// Find returns every position holding v, in row-major order.
func (g *Grid) Find(v uint8) []Position {
	var out []Position
	for i, c := range g.cells {
		if c == v {
			out = append(out, g.Position(i))
		}
	}
	return out
}

// Rows returns a deep copy of the grid as rows[y][x].
func (g *Grid) Rows() [][]uint8 {
	rows := make([][]uint8, g.height)
	for y := range rows {
		rows[y] = make([]uint8, g.width)
		copy(rows[y], g.cells[y*g.width:(y+1)*g.width])
	}
	return rows
}

// Equal reports whether both grids have the same dimensions and values.
func (g *Grid) Equal(o *Grid) bool {
	if g == nil || o == nil {
		return g == o
	}
	if g.width != o.width || g.height != o.height {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}

// String renders one line per row. Values 0..9 print as digits,
// larger values as letters starting at 'a' for 10.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow((g.width + 1) * g.height)
	for i, c := range g.cells {
		if i > 0 && i%g.width == 0 {
			sb.WriteByte('\n')
		}
		if c < 10 {
			sb.WriteByte('0' + c)
		} else {
			sb.WriteByte('a' + c - 10)
		}
	}
	return sb.String()
}
