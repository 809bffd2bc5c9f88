// Package tile expands a small base grid into a large periodic one.
//
// The expanded map is tilesX×tilesY copies of the base tile. Every copy is
// the copy to its left (or, in the first column, the copy above it) with each
// value raised by one, and 9 wrapping around to 1. Values therefore live in
// 1..9 and the copy at tile coordinates (tx, ty) holds Wrap(v, tx+ty).
//
// Expansion copies values only; the result shares nothing with the base grid
// and is consumed unchanged by the search engine.
//
// Complexity: O(W·H·tilesX·tilesY) time and memory.
package tile
