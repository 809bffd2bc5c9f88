package config

import (
	"errors"

	"github.com/katalvlaran/gridpath/grid"
)

// ErrInvalidQuery indicates a query block with missing or unknown values.
var ErrInvalidQuery = errors.New("config: invalid query")

// Accepted values of the enumerated query attributes.
const (
	AlphabetCost      = "cost"
	AlphabetElevation = "elevation"
	AlphabetLetters   = "letters"

	RuleFree    = "free"
	RuleAscend  = "ascend"
	RuleDescend = "descend"

	CostEnter = "enter"
	CostUnit  = "unit"

	DefaultLogLevel = "info"
)

// File is the decoded top level of a query file.
type File struct {
	Settings *Settings `hcl:"settings,block"`
	Queries  []*Query  `hcl:"query,block"`
}

// Settings tunes the batch run. Zero values mean "use the default".
type Settings struct {
	Workers  int    `hcl:"workers,optional"`
	LogLevel string `hcl:"log_level,optional"`
}

// Query describes one search.
//
// From and To are [x, y] pairs. When omitted, From defaults to the S landmark
// (letters) or the top-left cell, To to the E landmark or the bottom-right cell
// of the (expanded) grid. With AnySourceValue set, every cell holding that value
// is a candidate source and the answer is the cheapest of them to To.
type Query struct {
	Name           string `hcl:"name,label"`
	Input          string `hcl:"input"`
	Alphabet       string `hcl:"alphabet,optional"`
	Rule           string `hcl:"rule,optional"`
	Cost           string `hcl:"cost,optional"`
	Width          int    `hcl:"width,optional"`
	Height         int    `hcl:"height,optional"`
	Tiles          []int  `hcl:"tiles,optional"`
	From           []int  `hcl:"from,optional"`
	To             []int  `hcl:"to,optional"`
	AnySourceValue *int   `hcl:"any_source_value,optional"`
}

// FromPosition returns the explicit source, if any.
func (q *Query) FromPosition() (grid.Position, bool) {
	return pair(q.From)
}

// ToPosition returns the explicit destination, if any.
func (q *Query) ToPosition() (grid.Position, bool) {
	return pair(q.To)
}

// TileCounts returns the expansion factors, or false when the grid is used as is.
func (q *Query) TileCounts() (tilesX, tilesY int, ok bool) {
	if len(q.Tiles) != 2 {
		return 0, 0, false
	}
	return q.Tiles[0], q.Tiles[1], true
}

func pair(xy []int) (grid.Position, bool) {
	if len(xy) != 2 {
		return grid.Position{}, false
	}
	return grid.Position{X: xy[0], Y: xy[1]}, true
}
