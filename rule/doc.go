// Package rule defines the two per-search strategies of gridpath: which steps
// between 4-adjacent cells are legal (Rule) and what a legal step costs (Cost).
//
// Rules:
//
//   - Free:    every step is legal (cost-grid puzzles).
//   - Ascend:  climb at most one elevation level, descend freely.
//   - Descend: the mirror of Ascend, for searching backward from a target.
//   - Climb:   the general form of both, with a configurable MaxRise.
//
// Costs:
//
//   - Unit:  every step costs 1 (step counting).
//   - Enter: a step costs the value of the cell being entered (risk grids).
//
// Reverse and ReverseCost mirror any strategy, so a search started at a target
// and run against the mirrored rule and cost reproduces forward path costs.
// Both strategies are pure functions of the two cell values.
package rule
