package dijkstra_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/rule"
	"github.com/stretchr/testify/require"
)

const caveSample = `1163751742
1381373672
2136511328
3694931569
7463417111
1319128137
1359912421
3125421639
1293138521
2311944581`

const heightmapSample = `Sabqponm
abcryxxl
accszExk
acctuvwj
abdefghi`

const reference5x5 = `21244
32622
32533
24517
65721`

func mustParse(t testing.TB, text string, a grid.Alphabet) *grid.Grid {
	t.Helper()
	g, err := grid.Parse(text, a)
	require.NoError(t, err)
	return g
}

// randomGrid builds a w×h grid with values in [0, maxV] from a deterministic source.
func randomGrid(t testing.TB, r *rand.Rand, w, h int, maxV uint8) *grid.Grid {
	t.Helper()
	values := make([]uint8, w*h)
	for i := range values {
		values[i] = uint8(r.Intn(int(maxV) + 1))
	}
	g, err := grid.New(w, h, values)
	require.NoError(t, err)
	return g
}

// bruteForce enumerates every simple path from a to b and returns the cheapest
// total cost, or false if no admissible path exists.
func bruteForce(g *grid.Grid, rl rule.Rule, c rule.Cost, a, b grid.Position) (uint64, bool) {
	visited := make([]bool, g.Len())
	best, found := uint64(0), false

	var walk func(p grid.Position, acc uint64)
	walk = func(p grid.Position, acc uint64) {
		if found && acc >= best {
			return
		}
		if p == b {
			best, found = acc, true
			return
		}
		visited[g.Index(p)] = true
		for _, n := range g.Neighbors4(p, nil) {
			if visited[g.Index(n)] || !rl.CanStep(g.Get(p), g.Get(n)) {
				continue
			}
			walk(n, acc+c.StepCost(g.Get(p), g.Get(n)))
		}
		visited[g.Index(p)] = false
	}
	walk(a, 0)

	return best, found
}
