// Package query turns one relaxation-engine run into a scalar answer.
//
//   - ShortestCost / ShortestPath: cost (and steps) from one cell to another,
//     with early exit once the destination is finalized.
//   - ShortestCostToAny / NearestOf: the cheapest cost between a fixed cell and
//     any member of a candidate set, answered with a single reversed search from
//     the fixed cell instead of one search per candidate.
//   - ShortestCostFromEach: one independent search per seed, run in parallel.
//
// An unreachable destination yields ErrPathNotFound; it is never reported as a
// zero cost and never panics. Query functions own no state beyond the call.
package query
