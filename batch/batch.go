package batch

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/gridpath/config"
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/query"
	"github.com/katalvlaran/gridpath/rule"
	"github.com/katalvlaran/gridpath/tile"
)

// Answer is the scalar result of one query.
type Answer struct {
	Name  string
	Value uint64
}

// Run answers every query in f and returns the answers in file order.
// A nil log discards output.
func Run(ctx context.Context, f *config.File, log logrus.FieldLogger) ([]Answer, error) {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	workers := runtime.GOMAXPROCS(0)
	if f.Settings != nil && f.Settings.Workers > 0 {
		workers = f.Settings.Workers
	}
	log.WithFields(logrus.Fields{
		"queries": len(f.Queries),
		"workers": workers,
	}).Info("starting batch")

	answers := make([]Answer, len(f.Queries))
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for i, q := range f.Queries {
		i, q := i, q
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			v, err := answer(q, log.WithField("query", q.Name))
			if err != nil {
				return fmt.Errorf("query %q: %w", q.Name, err)
			}
			answers[i] = Answer{Name: q.Name, Value: v}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		log.WithError(err).Error("batch failed")
		return nil, err
	}

	log.Info("batch finished")
	return answers, nil
}

// answer runs a single query.
func answer(q *config.Query, log logrus.FieldLogger) (uint64, error) {
	start := time.Now()

	g, lm, err := load(q)
	if err != nil {
		return 0, err
	}
	if tx, ty, ok := q.TileCounts(); ok {
		if g, err = tile.Expand(g, tx, ty); err != nil {
			return 0, err
		}
		log.WithFields(logrus.Fields{"tiles_x": tx, "tiles_y": ty}).Debug("expanded grid")
	}

	from, to := endpoints(q, g, lm)
	rl, cost := strategies(q)
	log.WithFields(logrus.Fields{
		"width":  g.Width(),
		"height": g.Height(),
		"rule":   q.Rule,
		"cost":   q.Cost,
		"to":     to,
	}).Debug("running search")

	var v uint64
	if q.AnySourceValue != nil {
		candidates := g.Find(uint8(*q.AnySourceValue))
		v, err = query.ShortestCostToAny(g, rule.Reverse(rl), to, candidates,
			query.WithCost(rule.ReverseCost(cost)))
	} else {
		v, err = query.ShortestCost(g, rl, from, to, query.WithCost(cost))
	}
	if err != nil {
		return 0, err
	}

	log.WithFields(logrus.Fields{
		"answer":  v,
		"elapsed": time.Since(start),
	}).Info("query finished")
	return v, nil
}

// load reads and parses the query input.
func load(q *config.Query) (*grid.Grid, *grid.Landmarks, error) {
	src, err := os.ReadFile(q.Input)
	if err != nil {
		return nil, nil, err
	}
	dims := grid.WithDimensions(q.Width, q.Height)

	switch q.Alphabet {
	case config.AlphabetLetters:
		g, lm, err := grid.ParseHeightmap(string(src), dims)
		if err != nil {
			return nil, nil, err
		}
		return g, &lm, nil
	case config.AlphabetElevation:
		g, err := grid.Parse(string(src), grid.Elevation, dims)
		return g, nil, err
	default:
		g, err := grid.Parse(string(src), grid.Cost, dims)
		return g, nil, err
	}
}

// endpoints resolves explicit or default source and destination cells.
func endpoints(q *config.Query, g *grid.Grid, lm *grid.Landmarks) (from, to grid.Position) {
	from, to = grid.Position{}, grid.Position{X: g.Width() - 1, Y: g.Height() - 1}
	if lm != nil {
		from, to = lm.Start, lm.End
	}
	if p, ok := q.FromPosition(); ok {
		from = p
	}
	if p, ok := q.ToPosition(); ok {
		to = p
	}
	return from, to
}

// strategies maps the query's rule and cost names onto their implementations.
func strategies(q *config.Query) (rule.Rule, rule.Cost) {
	var rl rule.Rule = rule.Free
	switch q.Rule {
	case config.RuleAscend:
		rl = rule.Ascend
	case config.RuleDescend:
		rl = rule.Descend
	}
	c := rule.Unit
	if q.Cost == config.CostEnter {
		c = rule.Enter
	}
	return rl, c
}
