package dijkstra

import "github.com/katalvlaran/gridpath/grid"

// Table is the distance table of one Search run: for every reached cell,
// the best known cost from the source and the predecessor achieving it.
// Costs in a Table only ever decreased while it was built.
type Table struct {
	g         *grid.Grid
	source    grid.Position
	cost      []uint64 // Unreached for cells never reached
	prev      []int    // predecessor index, -1 for the source and unreached cells
	done      []bool   // finalized flags
	reached   int
	finalized int
}

func newTable(g *grid.Grid, source grid.Position) *Table {
	n := g.Len()
	t := &Table{
		g:      g,
		source: source,
		cost:   make([]uint64, n),
		prev:   make([]int, n),
		done:   make([]bool, n),
	}
	for i := range t.cost {
		t.cost[i] = Unreached
		t.prev[i] = -1
	}
	return t
}

// record stores an improved cost for idx.
func (t *Table) record(idx int, cost uint64, prev int) {
	if t.cost[idx] == Unreached {
		t.reached++
	}
	t.cost[idx] = cost
	t.prev[idx] = prev
}

// Source returns the seed of the run.
func (t *Table) Source() grid.Position { return t.source }

// Cost returns the recorded cost of p and whether p was reached.
func (t *Table) Cost(p grid.Position) (uint64, bool) {
	if !t.g.InBounds(p) {
		return Unreached, false
	}
	c := t.cost[t.g.Index(p)]
	return c, c != Unreached
}

// Predecessor returns the cell preceding p on its recorded cheapest path.
// ok is false for the source and for unreached cells.
func (t *Table) Predecessor(p grid.Position) (prev grid.Position, ok bool) {
	if !t.g.InBounds(p) {
		return grid.Position{}, false
	}
	i := t.prev[t.g.Index(p)]
	if i < 0 {
		return grid.Position{}, false
	}
	return t.g.Position(i), true
}

// Finalized reports whether p's cost is known to be minimal.
func (t *Table) Finalized(p grid.Position) bool {
	return t.g.InBounds(p) && t.done[t.g.Index(p)]
}

// PathTo reconstructs the recorded path from the source to dest, both included.
// It returns false if dest was not reached.
func (t *Table) PathTo(dest grid.Position) ([]grid.Position, bool) {
	if _, ok := t.Cost(dest); !ok {
		return nil, false
	}
	var path []grid.Position
	for at := t.g.Index(dest); at >= 0; at = t.prev[at] {
		path = append(path, t.g.Position(at))
	}
	// reverse to get source → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, true
}

// Reached lists every reached cell in row-major order.
func (t *Table) Reached() []grid.Position {
	out := make([]grid.Position, 0, t.reached)
	for i, c := range t.cost {
		if c != Unreached {
			out = append(out, t.g.Position(i))
		}
	}
	return out
}

// Len returns the number of reached cells.
func (t *Table) Len() int { return t.reached }

// FinalizedCount returns the number of cells finalized before the run ended.
func (t *Table) FinalizedCount() int { return t.finalized }
