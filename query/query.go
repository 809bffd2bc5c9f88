package query

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/gridpath/dijkstra"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/rule"
)

// ShortestCost returns the minimum cost from → to under r.
// The search stops as soon as to is finalized.
func ShortestCost(g *grid.Grid, r rule.Rule, from, to grid.Position, opts ...Option) (uint64, error) {
	p, err := shortest(g, r, from, to, buildOptions(opts))
	if err != nil {
		return 0, err
	}
	return p.Cost, nil
}

// ShortestPath returns the minimum cost from → to under r together with one
// path achieving it.
func ShortestPath(g *grid.Grid, r rule.Rule, from, to grid.Position, opts ...Option) (Path, error) {
	return shortest(g, r, from, to, buildOptions(opts))
}

func shortest(g *grid.Grid, r rule.Rule, from, to grid.Position, cfg Options) (Path, error) {
	table, err := dijkstra.Search(g,
		dijkstra.Source(from),
		dijkstra.WithRule(r),
		dijkstra.WithCost(cfg.Cost),
		dijkstra.WithTarget(to),
	)
	if err != nil {
		return Path{}, err
	}
	cost, ok := table.Cost(to)
	if !ok {
		return Path{}, fmt.Errorf("%w: %v → %v", ErrPathNotFound, from, to)
	}
	steps, _ := table.PathTo(to)

	return Path{Cost: cost, Steps: steps}, nil
}

// ShortestCostToAny returns the minimum cost between from and any candidate,
// running one full search from from under the reversed rule.
//
// To answer "cheapest path from any candidate to P" pass P as from together with
// rule.Reverse of the forward rule (and, for direction-dependent costs,
// WithCost(rule.ReverseCost(c))).
func ShortestCostToAny(g *grid.Grid, reversed rule.Rule, from grid.Position, candidates []grid.Position, opts ...Option) (uint64, error) {
	_, cost, err := NearestOf(g, reversed, from, candidates, opts...)
	return cost, err
}

// NearestOf is ShortestCostToAny that also reports which candidate won.
// Among equally cheap candidates the first in the slice wins.
// Candidates outside the grid can never be reached and are ignored.
func NearestOf(g *grid.Grid, reversed rule.Rule, from grid.Position, candidates []grid.Position, opts ...Option) (grid.Position, uint64, error) {
	cfg := buildOptions(opts)
	table, err := dijkstra.Search(g,
		dijkstra.Source(from),
		dijkstra.WithRule(reversed),
		dijkstra.WithCost(cfg.Cost),
	)
	if err != nil {
		return grid.Position{}, 0, err
	}

	var (
		best    grid.Position
		bestTo  uint64
		reached bool
	)
	for _, c := range candidates {
		cost, ok := table.Cost(c)
		if !ok {
			continue
		}
		if !reached || cost < bestTo {
			best, bestTo, reached = c, cost, true
		}
	}
	if !reached {
		return grid.Position{}, 0, fmt.Errorf("%w: none of %d candidates reaches %v", ErrPathNotFound, len(candidates), from)
	}

	return best, bestTo, nil
}

// ShortestCostFromEach runs one independent early-exit search per seed toward
// to and reports every outcome in seed order. Searches run concurrently, at
// most Workers at a time, each with its own frontier and table; g is shared
// read-only.
//
// An unreachable destination is recorded in Result.Err and does not stop the
// batch. Invalid input (nil grid, out-of-bounds seed or destination) does, and
// so does ctx being cancelled before every search has started.
func ShortestCostFromEach(ctx context.Context, g *grid.Grid, r rule.Rule, seeds []grid.Position, to grid.Position, opts ...Option) ([]Result, error) {
	cfg := buildOptions(opts)
	results := make([]Result, len(seeds))

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(cfg.Workers)
	for i, seed := range seeds {
		i, seed := i, seed
		if err := egCtx.Err(); err != nil {
			break
		}
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			cost, err := ShortestCost(g, r, seed, to, WithCost(cfg.Cost))
			switch {
			case err == nil:
				results[i] = Result{Seed: seed, Cost: cost}
			case errors.Is(err, ErrPathNotFound):
				results[i] = Result{Seed: seed, Err: err}
			default:
				return fmt.Errorf("seed %v: %w", seed, err)
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return results, nil
}

// Min returns the cheapest successful result.
// It returns ErrPathNotFound if no result succeeded.
func Min(results []Result) (Result, error) {
	var (
		best  Result
		found bool
	)
	for _, r := range results {
		if r.Err != nil {
			continue
		}
		if !found || r.Cost < best.Cost {
			best, found = r, true
		}
	}
	if !found {
		return Result{}, ErrPathNotFound
	}
	return best, nil
}
