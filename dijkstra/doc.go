// Package dijkstra is the relaxation engine of gridpath: Dijkstra's
// shortest-path algorithm over the implicit graph of a grid.Grid, where the
// vertices are cells, the edges are 4-adjacent steps admitted by a rule.Rule,
// and edge weights come from a rule.Cost.
//
// Overview:
//
//   - Search computes, for every cell reachable from the seed, the minimum
//     accumulated cost and one predecessor achieving it.
//   - It relies on a min-heap (priority queue) to always expand the cheapest
//     frontier cell next.
//   - With WithTarget the run stops as soon as the target is finalized; with
//     WithMaxCost it stops once the cheapest frontier entry exceeds the cap.
//
// Key features:
//
//   - Functional options (Source, WithRule, WithCost, WithTarget, WithMaxCost).
//   - Observation hooks: WithOnRelax sees every improvement of a table entry,
//     WithOnFinalize sees every cell as its cost becomes final.
//   - The returned Table answers Cost, Predecessor, Finalized and PathTo queries.
//
// Performance and complexity:
//
//   - Time:  O(N log N), N = W·H. Each cell is finalized once and pushes at most
//     four entries.
//   - Space: O(N) for the per-cell cost, predecessor and finalized slices plus
//     the heap under the lazy decrease-key strategy.
//
// Lazy deletion:
//
//	A cell may sit in the heap several times at different costs. Stale entries
//	are skipped when popped instead of being removed or updated in place.
//
// Tie-breaking:
//
//	Entries of equal cost pop in unspecified order. This may change which
//	predecessor chain is recorded but never a recorded cost.
//
// Error handling (sentinel errors, input validation only):
//
//   - ErrNilGrid:           nil *grid.Grid.
//   - ErrNoSource:          Source was not supplied.
//   - ErrSourceOutOfBounds: Source lies outside the grid.
//   - ErrTargetOutOfBounds: WithTarget lies outside the grid.
//
// An unreachable cell is not an error here: it is simply absent from the Table.
//
// Thread safety:
//
//	Search keeps all mutable state in its own runner, so concurrent calls on
//	the same (read-only) grid are safe.
package dijkstra
