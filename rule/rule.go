package rule

// Rule decides whether a step from a cell of value from to an adjacent
// cell of value to is legal.
type Rule interface {
	CanStep(from, to uint8) bool
}

// Func adapts an ordinary function to the Rule interface.
type Func func(from, to uint8) bool

// CanStep calls f(from, to).
func (f Func) CanStep(from, to uint8) bool { return f(from, to) }

// Climb bounds elevation gain per step.
// Forward: legal iff to <= from+MaxRise. Reversed: legal iff from <= to+MaxRise,
// i.e. the step walked backward would have been a legal forward climb.
type Climb struct {
	MaxRise  uint8
	Reversed bool
}

// CanStep implements Rule. Arithmetic is done in int so MaxRise near 255 cannot overflow.
func (c Climb) CanStep(from, to uint8) bool {
	if c.Reversed {
		return int(from) <= int(to)+int(c.MaxRise)
	}
	return int(to) <= int(from)+int(c.MaxRise)
}

// Reverse returns c with its direction flipped.
func (c Climb) Reverse() Climb {
	c.Reversed = !c.Reversed
	return c
}

var (
	// Ascend climbs at most one level per step and descends freely.
	Ascend = Climb{MaxRise: 1}
	// Descend is Ascend walked backward.
	Descend = Climb{MaxRise: 1, Reversed: true}
	// Free allows every step.
	Free Rule = Func(func(_, _ uint8) bool { return true })
)

// CanStep evaluates r for a step from → to, or for its mirror when reversed is set.
func CanStep(r Rule, from, to uint8, reversed bool) bool {
	if reversed {
		return r.CanStep(to, from)
	}
	return r.CanStep(from, to)
}

// Reverse returns the mirror of r: a step from → to is legal under the
// result iff to → from is legal under r. Climb rules flip their flag, so
// Reverse(Ascend) == Descend.
func Reverse(r Rule) Rule {
	switch c := r.(type) {
	case Climb:
		return c.Reverse()
	case reversed:
		return c.Rule
	}
	return reversed{r}
}

// reversed mirrors an arbitrary rule.
type reversed struct{ Rule }

func (r reversed) CanStep(from, to uint8) bool { return r.Rule.CanStep(to, from) }
