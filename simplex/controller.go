// SPDX-License-Identifier: MIT
package simplex

import (
	"math"

	"github.com/rigcore/simplex/numeric"
	"github.com/rigcore/simplex/progression"
)

// SolveType selects how a Combo or Traversal reduces its per-slider values
// into a single scalar. It is a closed set of six modes shared by both
// controller kinds via solveState.
type SolveType int

const (
	// SolveMin takes the minimum activation, or its soft approximation
	// when the solver's exact flag is false. This is also the fallback
	// used by SolveNone.
	SolveMin SolveType = iota
	SolveNone
	SolveAllMul
	SolveExtMul
	SolveMulAvgExt
	SolveMulAvgAll
)

// base holds the state and behavior shared by every controller kind:
// identity, the progression it drives, and the transient value/multiplier
// pair reset at the start of every solve.
type base struct {
	Name       string
	Index      int
	Enabled    bool
	Prog       *progression.Progression
	value      float64
	multiplier float64
}

func newBase(name string, index int, prog *progression.Progression) base {
	return base{Name: name, Index: index, Enabled: true, Prog: prog, multiplier: 1}
}

// Value reports the controller's current transient value.
func (b *base) Value() float64 { return b.value }

// Multiplier reports the controller's current transient multiplier.
func (b *base) Multiplier() float64 { return b.multiplier }

// reset zeroes value and multiplier back to their per-solve defaults.
func (b *base) reset() {
	b.value = 0
	b.multiplier = 1
}

// accumulate adds this controller's progression contribution into output
// and reports the activation magnitude used to track the solve's maxAct.
// A disabled controller contributes nothing and reports ok=false so it is
// excluded from the maxAct comparison entirely, matching §4.6's "for each
// enabled controller" wording.
func (b *base) accumulate(output []float64) (activation float64, ok bool) {
	if !b.Enabled {
		return 0, false
	}
	activation = math.Abs(b.value * b.multiplier)
	if b.Prog != nil {
		for _, c := range b.Prog.GetOutput(b.value, b.multiplier) {
			output[c.ShapeIndex] += c.Weight
		}
	}
	return activation, true
}

// solveState is the shared scalar reducer behind both Combo.storeValue and
// Traversal.storeValue: given parallel vals/tars slices, it returns the
// aggregated value and whether the state is active at all. A state is
// inactive when any (val, tar) pair disagrees in sign, treating zero as
// positive on both sides.
func solveState(vals, tars []float64, solveType SolveType, exact bool) (value float64, active bool) {
	mn := math.Inf(1)
	mx := math.Inf(-1)
	allMul := 1.0
	allSum := 0.0

	for i, v := range vals {
		t := tars[i]
		vNeg := !numeric.IsPositive(v)
		tNeg := !numeric.IsPositive(t)
		if vNeg != tNeg {
			return 0, false
		}
		if vNeg {
			v = -v
		}
		if v > numeric.MaxVal {
			v = numeric.MaxVal
		}
		allMul *= v
		allSum += v
		if v < mn {
			mn = v
		}
		if v > mx {
			mx = v
		}
	}

	switch solveType {
	case SolveAllMul:
		return allMul, true
	case SolveExtMul:
		return mx * mn, true
	case SolveMulAvgExt:
		if numeric.IsZero(mx + mn) {
			return 0, true
		}
		return 2 * (mx * mn) / (mx + mn), true
	case SolveMulAvgAll:
		if numeric.IsZero(allSum) {
			return 0, true
		}
		return float64(len(vals)) * allMul / allSum, true
	default: // SolveMin, SolveNone
		if exact {
			return mn, true
		}
		return numeric.SoftMin(mx, mn), true
	}
}
