// Package dijkstra_test validates the grid relaxation engine: input validation,
// reference instances, early exit, cost caps, hooks, and agreement with an
// exhaustive simple-path search on small random grids.
package dijkstra_test

import (
	"math/rand"
	"sync"
	"testing"

	"github.com/katalvlaran/gridpath/dijkstra"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/rule"
	"github.com/katalvlaran/gridpath/tile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ------------------------------------------------------------------------
// 1. Validation Tests: Ensure errors are returned for invalid inputs.
// ------------------------------------------------------------------------

func TestSearch_NilGrid(t *testing.T) {
	_, err := dijkstra.Search(nil, dijkstra.Source(grid.Position{}))
	assert.ErrorIs(t, err, dijkstra.ErrNilGrid)
}

func TestSearch_NoSource(t *testing.T) {
	g := mustParse(t, "12\n34", grid.Cost)
	_, err := dijkstra.Search(g)
	assert.ErrorIs(t, err, dijkstra.ErrNoSource)
}

func TestSearch_OutOfBounds(t *testing.T) {
	g := mustParse(t, "12\n34", grid.Cost)

	_, err := dijkstra.Search(g, dijkstra.Source(grid.Position{X: 2, Y: 0}))
	assert.ErrorIs(t, err, dijkstra.ErrSourceOutOfBounds)

	_, err = dijkstra.Search(g, dijkstra.Source(grid.Position{}), dijkstra.WithTarget(grid.Position{X: 0, Y: -1}))
	assert.ErrorIs(t, err, dijkstra.ErrTargetOutOfBounds)
}

// ------------------------------------------------------------------------
// 2. Reference instances.
// ------------------------------------------------------------------------

func TestSearch_CaveSample(t *testing.T) {
	g := mustParse(t, caveSample, grid.Cost)
	end := grid.Position{X: 9, Y: 9}

	table, err := dijkstra.Search(g,
		dijkstra.Source(grid.Position{}),
		dijkstra.WithCost(rule.Enter),
		dijkstra.WithTarget(end),
	)
	require.NoError(t, err)

	cost, ok := table.Cost(end)
	require.True(t, ok)
	assert.Equal(t, uint64(40), cost)
	assert.True(t, table.Finalized(end))
}

func TestSearch_CaveSampleExpanded(t *testing.T) {
	base := mustParse(t, caveSample, grid.Cost)
	g, err := tile.Expand(base, 5, 5)
	require.NoError(t, err)
	end := grid.Position{X: 49, Y: 49}

	table, err := dijkstra.Search(g,
		dijkstra.Source(grid.Position{}),
		dijkstra.WithCost(rule.Enter),
	)
	require.NoError(t, err)

	cost, ok := table.Cost(end)
	require.True(t, ok)
	assert.Equal(t, uint64(315), cost)
	assert.Equal(t, g.Len(), table.Len(), "free rule reaches every cell")
}

func TestSearch_Heightmap(t *testing.T) {
	g, lm, err := grid.ParseHeightmap(heightmapSample)
	require.NoError(t, err)

	table, err := dijkstra.Search(g,
		dijkstra.Source(lm.Start),
		dijkstra.WithRule(rule.Ascend),
	)
	require.NoError(t, err)

	cost, ok := table.Cost(lm.End)
	require.True(t, ok)
	assert.Equal(t, uint64(31), cost)

	path, ok := table.PathTo(lm.End)
	require.True(t, ok)
	require.Len(t, path, 32, "path includes the start cell")
	assert.Equal(t, lm.Start, path[0])
	assert.Equal(t, lm.End, path[len(path)-1])
	for i := 1; i < len(path); i++ {
		a, b := path[i-1], path[i]
		assert.Equal(t, 1, abs(a.X-b.X)+abs(a.Y-b.Y), "steps are 4-adjacent")
		assert.True(t, rule.Ascend.CanStep(g.Get(a), g.Get(b)), "step %v→%v admissible", a, b)
	}
}

func TestSearch_Reference5x5(t *testing.T) {
	g := mustParse(t, reference5x5, grid.Cost)
	src, end := grid.Position{}, grid.Position{X: 4, Y: 4}

	table, err := dijkstra.Search(g, dijkstra.Source(src), dijkstra.WithCost(rule.Enter))
	require.NoError(t, err)
	cost, ok := table.Cost(end)
	require.True(t, ok)
	assert.Equal(t, uint64(16), cost)

	// Under the climbing rule the far corner is walled off.
	table, err = dijkstra.Search(g, dijkstra.Source(src), dijkstra.WithRule(rule.Ascend))
	require.NoError(t, err)
	_, ok = table.Cost(end)
	assert.False(t, ok)
	assert.ElementsMatch(t, []grid.Position{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0},
		{X: 0, Y: 1}, {X: 1, Y: 1},
		{X: 0, Y: 2}, {X: 1, Y: 2},
		{X: 0, Y: 3},
	}, table.Reached())
}

// ------------------------------------------------------------------------
// 3. Table semantics.
// ------------------------------------------------------------------------

func TestSearch_SourceEntry(t *testing.T) {
	g := mustParse(t, "5", grid.Cost)
	table, err := dijkstra.Search(g, dijkstra.Source(grid.Position{}), dijkstra.WithCost(rule.Enter))
	require.NoError(t, err)

	cost, ok := table.Cost(grid.Position{})
	assert.True(t, ok)
	assert.Zero(t, cost, "the seed costs nothing, its own value is never paid")
	_, hasPrev := table.Predecessor(grid.Position{})
	assert.False(t, hasPrev)
	path, ok := table.PathTo(grid.Position{})
	assert.True(t, ok)
	assert.Equal(t, []grid.Position{{}}, path)
	assert.Equal(t, grid.Position{}, table.Source())
}

func TestSearch_UnreachedLookups(t *testing.T) {
	g := mustParse(t, "09\n90", grid.Elevation)
	table, err := dijkstra.Search(g, dijkstra.Source(grid.Position{}), dijkstra.WithRule(rule.Ascend))
	require.NoError(t, err)

	assert.Equal(t, 1, table.Len())
	c, ok := table.Cost(grid.Position{X: 1, Y: 1})
	assert.False(t, ok)
	assert.Equal(t, uint64(dijkstra.Unreached), c)
	_, ok = table.PathTo(grid.Position{X: 1, Y: 1})
	assert.False(t, ok)
	_, ok = table.Cost(grid.Position{X: 5, Y: 5})
	assert.False(t, ok, "out-of-bounds lookups report unreached")
	assert.False(t, table.Finalized(grid.Position{X: -1}))
}

func TestSearch_EarlyExit(t *testing.T) {
	g := mustParse(t, caveSample, grid.Cost)
	near := grid.Position{X: 1, Y: 0}

	full, err := dijkstra.Search(g, dijkstra.Source(grid.Position{}), dijkstra.WithCost(rule.Enter))
	require.NoError(t, err)
	early, err := dijkstra.Search(g,
		dijkstra.Source(grid.Position{}),
		dijkstra.WithCost(rule.Enter),
		dijkstra.WithTarget(near),
	)
	require.NoError(t, err)

	assert.True(t, early.Finalized(near))
	assert.Less(t, early.FinalizedCount(), full.FinalizedCount())
	assert.Equal(t, g.Len(), full.FinalizedCount())

	want, _ := full.Cost(near)
	got, _ := early.Cost(near)
	assert.Equal(t, want, got)
}

func TestSearch_MaxCost(t *testing.T) {
	g := mustParse(t, caveSample, grid.Cost)
	const limit = 12

	full, err := dijkstra.Search(g, dijkstra.Source(grid.Position{}), dijkstra.WithCost(rule.Enter))
	require.NoError(t, err)
	capped, err := dijkstra.Search(g,
		dijkstra.Source(grid.Position{}),
		dijkstra.WithCost(rule.Enter),
		dijkstra.WithMaxCost(limit),
	)
	require.NoError(t, err)

	for _, p := range full.Reached() {
		want, _ := full.Cost(p)
		got, ok := capped.Cost(p)
		if want > limit {
			assert.Falsef(t, ok, "%v costs %d, beyond the cap", p, want)
			continue
		}
		assert.Truef(t, ok, "%v costs %d, within the cap", p, want)
		assert.Equal(t, want, got)
	}
}

// ------------------------------------------------------------------------
// 4. Hooks: monotonic relaxation and finalization order.
// ------------------------------------------------------------------------

func TestSearch_MonotonicRelaxation(t *testing.T) {
	g := mustParse(t, caveSample, grid.Cost)
	last := map[grid.Position]uint64{}
	relaxations := 0

	table, err := dijkstra.Search(g,
		dijkstra.Source(grid.Position{}),
		dijkstra.WithCost(rule.Enter),
		dijkstra.WithOnRelax(func(p grid.Position, old, cost uint64) {
			relaxations++
			require.Less(t, cost, old, "relaxation of %v must improve", p)
			if prev, seen := last[p]; seen {
				require.Equal(t, prev, old, "old cost of %v must be the last recorded one", p)
			}
			last[p] = cost
		}),
	)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, relaxations, g.Len())

	for p, c := range last {
		got, _ := table.Cost(p)
		assert.Equal(t, c, got)
	}
}

func TestSearch_FinalizeOrder(t *testing.T) {
	g := mustParse(t, caveSample, grid.Cost)
	var order []uint64
	seen := map[grid.Position]bool{}

	_, err := dijkstra.Search(g,
		dijkstra.Source(grid.Position{}),
		dijkstra.WithCost(rule.Enter),
		dijkstra.WithOnFinalize(func(p grid.Position, cost uint64) {
			require.False(t, seen[p], "%v finalized twice", p)
			seen[p] = true
			order = append(order, cost)
		}),
	)
	require.NoError(t, err)
	require.Len(t, order, g.Len())
	for i := 1; i < len(order); i++ {
		assert.LessOrEqual(t, order[i-1], order[i])
	}
}

// ------------------------------------------------------------------------
// 5. Properties on random grids.
// ------------------------------------------------------------------------

func TestSearch_MatchesBruteForce(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	strategies := []struct {
		name string
		rl   rule.Rule
		c    rule.Cost
	}{
		{"FreeEnter", rule.Free, rule.Enter},
		{"AscendUnit", rule.Ascend, rule.Unit},
		{"AscendEnter", rule.Ascend, rule.Enter},
		{"DescendEnter", rule.Descend, rule.Enter},
	}

	for _, s := range strategies {
		t.Run(s.name, func(t *testing.T) {
			for trial := 0; trial < 25; trial++ {
				w, h := 2+r.Intn(4), 2+r.Intn(4)
				g := randomGrid(t, r, w, h, 4)
				a := g.Position(r.Intn(g.Len()))
				b := g.Position(r.Intn(g.Len()))

				table, err := dijkstra.Search(g, dijkstra.Source(a), dijkstra.WithRule(s.rl), dijkstra.WithCost(s.c))
				require.NoError(t, err)

				want, reachable := bruteForce(g, s.rl, s.c, a, b)
				got, ok := table.Cost(b)
				require.Equalf(t, reachable, ok, "grid\n%s\n%v→%v reachability", g, a, b)
				if ok {
					require.Equalf(t, want, got, "grid\n%s\n%v→%v cost", g, a, b)
				}
			}
		})
	}
}

func TestSearch_ReversedSymmetry(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for trial := 0; trial < 30; trial++ {
		g := randomGrid(t, r, 6, 5, 5)
		a := g.Position(r.Intn(g.Len()))

		forward, err := dijkstra.Search(g, dijkstra.Source(a), dijkstra.WithRule(rule.Ascend))
		require.NoError(t, err)

		for _, b := range forward.Reached() {
			backward, err := dijkstra.Search(g,
				dijkstra.Source(b),
				dijkstra.WithRule(rule.Descend),
				dijkstra.WithTarget(a),
			)
			require.NoError(t, err)

			want, _ := forward.Cost(b)
			got, ok := backward.Cost(a)
			require.Truef(t, ok, "%v reachable backward from %v", a, b)
			require.Equal(t, want, got)
		}
	}
}

func TestSearch_ReversedCostSymmetry(t *testing.T) {
	g := mustParse(t, caveSample, grid.Cost)
	a, b := grid.Position{}, grid.Position{X: 9, Y: 9}

	backward, err := dijkstra.Search(g,
		dijkstra.Source(b),
		dijkstra.WithRule(rule.Reverse(rule.Free)),
		dijkstra.WithCost(rule.ReverseCost(rule.Enter)),
	)
	require.NoError(t, err)
	got, ok := backward.Cost(a)
	require.True(t, ok)
	assert.Equal(t, uint64(40), got)
}

func TestSearch_ConcurrentRuns(t *testing.T) {
	g := mustParse(t, caveSample, grid.Cost)
	want, err := dijkstra.Search(g, dijkstra.Source(grid.Position{}), dijkstra.WithCost(rule.Enter))
	require.NoError(t, err)

	const runs = 8
	tables := make([]*dijkstra.Table, runs)
	var wg sync.WaitGroup
	for i := 0; i < runs; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			tables[i], _ = dijkstra.Search(g, dijkstra.Source(grid.Position{}), dijkstra.WithCost(rule.Enter))
		}(i)
	}
	wg.Wait()

	for _, table := range tables {
		require.NotNil(t, table)
		for _, p := range want.Reached() {
			w, _ := want.Cost(p)
			c, _ := table.Cost(p)
			require.Equal(t, w, c)
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
