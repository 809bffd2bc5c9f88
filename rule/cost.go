package rule

// Cost prices a legal step from a cell of value from to a cell of value to.
// Costs are non-negative by construction.
type Cost interface {
	StepCost(from, to uint8) uint64
}

// CostFunc adapts an ordinary function to the Cost interface.
type CostFunc func(from, to uint8) uint64

// StepCost calls f(from, to).
func (f CostFunc) StepCost(from, to uint8) uint64 { return f(from, to) }

var (
	// Unit charges 1 per step.
	Unit Cost = CostFunc(func(_, _ uint8) uint64 { return 1 })
	// Enter charges the value of the entered cell.
	Enter Cost = CostFunc(func(_, to uint8) uint64 { return uint64(to) })
)

// ReverseCost prices each step as its mirror would be priced by c.
// A backward search under ReverseCost(c) accumulates the same totals as the
// forward search under c along the same path.
func ReverseCost(c Cost) Cost {
	if r, ok := c.(reversedCost); ok {
		return r.Cost
	}
	return reversedCost{c}
}

type reversedCost struct{ Cost }

func (r reversedCost) StepCost(from, to uint8) uint64 { return r.Cost.StepCost(to, from) }
