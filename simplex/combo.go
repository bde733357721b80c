// SPDX-License-Identifier: MIT
package simplex

import (
	"math"
	"sort"

	"github.com/rigcore/simplex/numeric"
	"github.com/rigcore/simplex/progression"
)

// ComboPair is one (slider, target) entry in a Combo's state list.
type ComboPair struct {
	SliderIndex int
	Target      float64
}

// Combo reduces a sorted set of slider targets to a scalar activation via
// one of the six SolveType reductions. A Combo whose IsFloater flag is set
// is a Floater: its value is driven by the TriSpace it belongs to, and its
// own storeValue is a no-op.
type Combo struct {
	base
	Pairs     []ComboPair // sorted by SliderIndex
	IsFloater bool
	SolveType SolveType
	Exact     bool
}

// NewCombo sorts pairs by slider index, derives IsFloater (true iff any
// pair's target magnitude is neither ~1 nor ~0), and returns the Combo.
// Exact starts true; SetExactSolve on the owning Solver keeps it in sync
// with the process-wide toggle.
func NewCombo(name string, index int, prog *progression.Progression, pairs []ComboPair, solveType SolveType) (*Combo, error) {
	if len(pairs) == 0 {
		return nil, ErrEmptyStateList
	}
	sorted := append([]ComboPair(nil), pairs...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].SliderIndex < sorted[j].SliderIndex })

	isFloater := false
	for _, p := range sorted {
		if !numeric.FloatEQ(math.Abs(p.Target), 1.0, numeric.Eps) && !numeric.IsZero(p.Target) {
			isFloater = true
		}
	}
	return &Combo{
		base:      newBase(name, index, prog),
		Pairs:     sorted,
		IsFloater: isFloater,
		SolveType: solveType,
		Exact:     true,
	}, nil
}

// storeValue reduces the combo's slider values against its targets. It is
// a no-op when disabled or when this Combo is a Floater — floaters are
// written by their TriSpace's Solve instead.
func (c *Combo) storeValue(sliders []*Slider) {
	if !c.Enabled || c.IsFloater {
		return
	}
	vals := make([]float64, len(c.Pairs))
	tars := make([]float64, len(c.Pairs))
	for i, p := range c.Pairs {
		vals[i] = sliders[p.SliderIndex].value
		tars[i] = p.Target
	}
	value, active := solveState(vals, tars, c.SolveType, c.Exact)
	if !active {
		c.value = 0
		return
	}
	c.value = value
}
