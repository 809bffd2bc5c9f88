package dijkstra

import (
	"errors"
	"math"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/rule"
)

// Sentinel errors returned by Search.
var (
	// ErrNilGrid indicates that a nil *grid.Grid was passed to Search.
	ErrNilGrid = errors.New("dijkstra: grid is nil")

	// ErrNoSource indicates that no Source option was supplied.
	ErrNoSource = errors.New("dijkstra: source position not set")

	// ErrSourceOutOfBounds indicates that the source lies outside the grid.
	ErrSourceOutOfBounds = errors.New("dijkstra: source position out of bounds")

	// ErrTargetOutOfBounds indicates that the target lies outside the grid.
	ErrTargetOutOfBounds = errors.New("dijkstra: target position out of bounds")
)

// Unreached is the cost reported for cells that were never reached.
const Unreached = math.MaxUint64

// Options configures a single Search run.
//
// Source     – seed cell (required).
// Rule       – step admissibility; default rule.Free.
// Cost       – step price; default rule.Unit.
// Target     – optional cell whose finalization ends the run early.
// MaxCost    – cells whose cost would exceed this are not explored; default Unreached (no cap).
// OnRelax    – optional hook called after every improvement of a table entry.
// OnFinalize – optional hook called when a cell's cost becomes final.
type Options struct {
	Source     grid.Position
	Rule       rule.Rule
	Cost       rule.Cost
	Target     grid.Position
	MaxCost    uint64
	OnRelax    func(p grid.Position, old, cost uint64)
	OnFinalize func(p grid.Position, cost uint64)

	hasSource bool
	hasTarget bool
}

// Option represents a functional option for configuring Search.
type Option func(*Options)

// Source sets the seed cell. Must be supplied.
func Source(p grid.Position) Option {
	return func(o *Options) {
		o.Source = p
		o.hasSource = true
	}
}

// WithRule sets the neighbor rule. A nil rule keeps the default.
func WithRule(r rule.Rule) Option {
	return func(o *Options) {
		if r != nil {
			o.Rule = r
		}
	}
}

// WithCost sets the step cost. A nil cost keeps the default.
func WithCost(c rule.Cost) Option {
	return func(o *Options) {
		if c != nil {
			o.Cost = c
		}
	}
}

// WithTarget stops the run as soon as p is finalized.
func WithTarget(p grid.Position) Option {
	return func(o *Options) {
		o.Target = p
		o.hasTarget = true
	}
}

// WithMaxCost caps exploration: cells costing more than max are never recorded.
func WithMaxCost(max uint64) Option {
	return func(o *Options) {
		o.MaxCost = max
	}
}

// WithOnRelax registers a hook observing every table improvement.
// old is Unreached the first time a cell is reached.
func WithOnRelax(fn func(p grid.Position, old, cost uint64)) Option {
	return func(o *Options) {
		o.OnRelax = fn
	}
}

// WithOnFinalize registers a hook observing cells as they are finalized,
// in non-decreasing cost order.
func WithOnFinalize(fn func(p grid.Position, cost uint64)) Option {
	return func(o *Options) {
		o.OnFinalize = fn
	}
}

// DefaultOptions returns Options with the defaults documented on Options
// and no source set.
func DefaultOptions() Options {
	return Options{
		Rule:    rule.Free,
		Cost:    rule.Unit,
		MaxCost: Unreached,
	}
}
