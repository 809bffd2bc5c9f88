package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
)

// Search runs Dijkstra's algorithm on g from the Source cell.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGrid).
//  2. Source must be set (ErrNoSource) and inside g (ErrSourceOutOfBounds).
//  3. Target, if set, must be inside g (ErrTargetOutOfBounds).
//
// Once validated the run cannot fail. Cells that cannot be reached are absent
// from the returned Table; after a run without Target every recorded cost is
// final. After an early exit only cells with Finalized(p) are guaranteed final.
//
// Complexity:
//
//   - Time:  O(N log N), N = W·H
//   - Space: O(N)
func Search(g *grid.Grid, opts ...Option) (*Table, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return nil, ErrNilGrid
	}
	if !cfg.hasSource {
		return nil, ErrNoSource
	}
	if !g.InBounds(cfg.Source) {
		return nil, fmt.Errorf("%w: %v in %dx%d grid", ErrSourceOutOfBounds, cfg.Source, g.Width(), g.Height())
	}
	if cfg.hasTarget && !g.InBounds(cfg.Target) {
		return nil, fmt.Errorf("%w: %v in %dx%d grid", ErrTargetOutOfBounds, cfg.Target, g.Width(), g.Height())
	}

	r := &runner{
		g:       g,
		options: cfg,
		table:   newTable(g, cfg.Source),
		pq:      make(edgePQ, 0, g.Len()/4+1),
		target:  -1,
	}
	if cfg.hasTarget {
		r.target = g.Index(cfg.Target)
	}

	r.init()
	r.process()

	return r.table, nil
}

// runner holds the mutable state for a single Search execution.
type runner struct {
	g       *grid.Grid // read-only within Search
	options Options
	table   *Table // per-cell best cost, predecessor and finalized flag
	pq      edgePQ // min-heap frontier with lazy deletion
	target  int    // row-major index of Target, or -1
	nbuf    [4]grid.Position
}

// init records the seed at cost 0 and pushes it onto the frontier.
func (r *runner) init() {
	src := r.g.Index(r.options.Source)
	r.table.record(src, 0, -1)
	if r.options.OnRelax != nil {
		r.options.OnRelax(r.options.Source, Unreached, 0)
	}
	heap.Init(&r.pq)
	heap.Push(&r.pq, edge{idx: src, cost: 0})
}

// process is the main loop: pop the cheapest entry, skip it if stale,
// finalize it, stop on the target, otherwise relax its neighbors.
func (r *runner) process() {
	t := r.table
	for r.pq.Len() > 0 {
		e := heap.Pop(&r.pq).(edge)

		// Stale entry: the cell was finalized or improved after this push.
		if t.done[e.idx] || e.cost > t.cost[e.idx] {
			continue
		}

		t.done[e.idx] = true
		t.finalized++
		if r.options.OnFinalize != nil {
			r.options.OnFinalize(r.g.Position(e.idx), e.cost)
		}

		// First pop of a cell carries its final cost: safe to stop here.
		if e.idx == r.target {
			return
		}

		r.relax(e.idx, e.cost)
	}
}

// relax examines each admissible neighbor of u and records strictly cheaper costs.
// Assumes cost is the finalized cost of u.
func (r *runner) relax(u int, cost uint64) {
	t := r.table
	up := r.g.Position(u)
	from := r.g.At(u)

	for _, vp := range r.g.Neighbors4(up, r.nbuf[:0]) {
		v := r.g.Index(vp)
		if t.done[v] {
			continue
		}
		to := r.g.At(v)
		if !r.options.Rule.CanStep(from, to) {
			continue
		}

		w := r.options.Cost.StepCost(from, to)
		if w > r.options.MaxCost-cost {
			// over the cap (this also rules out overflow)
			continue
		}
		next := cost + w
		if next >= t.cost[v] {
			continue
		}

		old := t.cost[v]
		t.record(v, next, u)
		if r.options.OnRelax != nil {
			r.options.OnRelax(vp, old, next)
		}
		heap.Push(&r.pq, edge{idx: v, cost: next})
	}
}

// edge is a frontier entry: a cell and the accumulated cost it was pushed with.
type edge struct {
	idx  int    // row-major cell index
	cost uint64 // accumulated cost from the source
}

// edgePQ is a min-heap of edges ordered by cost ascending.
type edgePQ []edge

// Len returns the number of entries in the heap.
func (pq edgePQ) Len() int { return len(pq) }

// Less orders cheaper entries first.
func (pq edgePQ) Less(i, j int) bool { return pq[i].cost < pq[j].cost }

// Swap swaps two entries.
func (pq edgePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends x, which must be an edge. Called by heap.Push.
func (pq *edgePQ) Push(x interface{}) { *pq = append(*pq, x.(edge)) }

// Pop removes the last entry. Called by heap.Pop.
func (pq *edgePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
