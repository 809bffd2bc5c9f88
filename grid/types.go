package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid construction and parsing.
var (
	// ErrMalformedInput indicates text or values that cannot form the expected grid.
	ErrMalformedInput = errors.New("grid: malformed input")
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = fmt.Errorf("%w: at least one row and one column required", ErrMalformedInput)
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = fmt.Errorf("%w: all rows must have the same length", ErrMalformedInput)
)

// Position is a 0-indexed cell coordinate. Equal coordinates are the same cell.
type Position struct {
	X, Y int
}

// String renders the position as "(x,y)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Alphabet selects which digits Parse accepts.
type Alphabet int

const (
	// Elevation accepts '0'..'9'.
	Elevation Alphabet = iota
	// Cost accepts '1'..'9'; a zero-cost cell is invalid input.
	Cost
)

// String returns the alphabet name as used in query files.
func (a Alphabet) String() string {
	switch a {
	case Elevation:
		return "elevation"
	case Cost:
		return "cost"
	default:
		return fmt.Sprintf("Alphabet(%d)", int(a))
	}
}

// minDigit returns the smallest value the alphabet admits.
func (a Alphabet) minDigit() uint8 {
	if a == Cost {
		return 1
	}
	return 0
}

// Landmarks are the named cells of a letter heightmap.
type Landmarks struct {
	Start  Position   // cell marked 'S'
	End    Position   // cell marked 'E'
	Lowest []Position // every cell at elevation 0 ('a' or 'S'), row-major
}

// ParseOption configures Parse and ParseHeightmap.
type ParseOption func(*parseOptions)

type parseOptions struct {
	width, height int // expected dimensions; 0 means "whatever the text holds"
}

// WithDimensions requires the parsed grid to be exactly width×height.
// A zero argument leaves that axis unchecked.
func WithDimensions(width, height int) ParseOption {
	return func(o *parseOptions) {
		o.width = width
		o.height = height
	}
}

// Grid is an immutable width×height array of cell values.
// cells[y*width+x] holds the value at (x, y).
type Grid struct {
	width, height int
	cells         []uint8
}

// offsets4 lists the orthogonal neighbor deltas in N, E, S, W order.
var offsets4 = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
