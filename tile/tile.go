package tile

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
)

var (
	// ErrInvalidTileDimensions indicates a zero or negative tile count or an empty base tile.
	ErrInvalidTileDimensions = errors.New("tile: invalid tile dimensions")

	// ErrInvalidTileValue indicates a base cell outside 1..9.
	ErrInvalidTileValue = errors.New("tile: base value out of range")
)

// Cell values cycle through minValue..maxValue; one past maxValue wraps to minValue.
const (
	minValue = 1
	maxValue = 9
)

// Expand replicates base tilesX times horizontally and tilesY times vertically.
//
// Behavior:
//  1. Validate the tile counts and the base tile. Every base value must lie in
//     1..9 (ErrInvalidTileValue).
//  2. Copy base into tile (0,0).
//  3. For every other tile, take the reference cell at the same offset in the
//     tile to the left, or in the tile above when tx == 0, and store its value + 1
//     with 9 wrapping to 1.
//
// Expand(base, 1, 1) returns a grid equal to base.
func Expand(base *grid.Grid, tilesX, tilesY int) (*grid.Grid, error) {
	if tilesX <= 0 || tilesY <= 0 {
		return nil, fmt.Errorf("%w: %dx%d tiles", ErrInvalidTileDimensions, tilesX, tilesY)
	}
	if base == nil || base.Width() == 0 || base.Height() == 0 {
		return nil, fmt.Errorf("%w: empty base tile", ErrInvalidTileDimensions)
	}

	tw, th := base.Width(), base.Height()
	for i := 0; i < base.Len(); i++ {
		if v := base.At(i); v < minValue || v > maxValue {
			return nil, fmt.Errorf("%w: %d at %v", ErrInvalidTileValue, v, base.Position(i))
		}
	}

	w, h := tw*tilesX, th*tilesY
	cells := make([]uint8, w*h)

	for ty := 0; ty < tilesY; ty++ {
		for tx := 0; tx < tilesX; tx++ {
			for ry := 0; ry < th; ry++ {
				for rx := 0; rx < tw; rx++ {
					x, y := tx*tw+rx, ty*th+ry
					var v uint8
					switch {
					case tx > 0:
						v = next(cells[y*w+x-tw])
					case ty > 0:
						v = next(cells[(y-th)*w+x])
					default:
						v = base.Get(grid.Position{X: rx, Y: ry})
					}
					cells[y*w+x] = v
				}
			}
		}
	}

	return grid.New(w, h, cells)
}

// Wrap returns v raised by k steps in the cyclic range 1..9: ((v-1+k) mod 9) + 1.
// It is the closed form of applying the expansion increment k times.
// v must lie in 1..9; other values give results Expand never produces.
func Wrap(v uint8, k int) uint8 {
	r := (int(v) - 1 + k) % maxValue
	if r < 0 {
		r += maxValue
	}
	return uint8(r + 1)
}

// next is one expansion increment.
func next(v uint8) uint8 {
	if v >= maxValue {
		return minValue
	}
	return v + 1
}
