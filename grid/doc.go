// Package grid holds the immutable 2D cell map every search in gridpath runs on.
//
// What:
//
//   - Grid wraps a rectangular width×height array of uint8 cell values
//     (elevations or traversal costs), stored flat in row-major order.
//   - Position addresses a cell by 0-indexed (X, Y) coordinates and is usable as a map key.
//   - Parse turns line-oriented digit text into a Grid; ParseHeightmap reads the
//     letter elevation format with its S/E landmarks.
//   - Neighbors4 yields the in-bounds orthogonal neighbors of a cell.
//   - Regions groups cells into 4-connected regions under a value predicate.
//
// Why:
//
//   - Width and height are runtime fields, so one type serves every map size,
//     including maps produced by tile expansion.
//   - A flat backing slice lets searches index their own per-cell state with
//     Index/Position instead of hashing coordinates.
//
// Complexity:
//
//   - New, FromRows, Parse: O(W×H) time and memory.
//   - Get, InBounds, Index:  O(1).
//   - Neighbors4:            O(1), no allocation when buf has capacity 4.
//   - Regions:               O(W×H), Memory: O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid: the input has no rows or no columns (wraps ErrMalformedInput).
//   - ErrMalformedInput: unexpected character, ragged line or dimension mismatch.
//   - ErrNonRectangular: rows of differing lengths (wraps ErrMalformedInput).
//
// Get panics on an out-of-bounds Position: callers bounds-check with InBounds.
package grid
