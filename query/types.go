package query

import (
	"errors"
	"runtime"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/rule"
)

// ErrPathNotFound indicates the destination (or every candidate) is unreachable.
var ErrPathNotFound = errors.New("query: path not found")

// Options configures a query.
type Options struct {
	Cost    rule.Cost // step price; default rule.Unit
	Workers int       // parallel searches for ShortestCostFromEach; default GOMAXPROCS
}

// Option represents a functional option for configuring a query.
type Option func(*Options)

// WithCost sets the step cost passed to the engine.
func WithCost(c rule.Cost) Option {
	return func(o *Options) {
		if c != nil {
			o.Cost = c
		}
	}
}

// WithWorkers bounds the number of concurrent searches. n <= 0 keeps the default.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.Workers = n
		}
	}
}

// DefaultOptions returns unit cost and one worker per available CPU.
func DefaultOptions() Options {
	return Options{
		Cost:    rule.Unit,
		Workers: runtime.GOMAXPROCS(0),
	}
}

func buildOptions(opts []Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Path is a shortest path and its total cost. Steps include both endpoints.
type Path struct {
	Cost  uint64
	Steps []grid.Position
}

// Result is the outcome of one per-seed search in ShortestCostFromEach.
// Err is ErrPathNotFound when the destination is unreachable from Seed.
type Result struct {
	Seed grid.Position
	Cost uint64
	Err  error
}
