// SPDX-License-Identifier: MIT

// Package progression implements the 1-D piecewise interpolation from a
// scalar controller parameter to a weighted bag of shape contributions.
//
// Three interpolation modes are supported: linear, uniform Catmull-Rom
// spline, and a split variant of the spline that never blends pairs from
// opposite sides of zero into the same segment. All three are implemented
// against a single sorted-by-parameter pair list so that Slider, Combo,
// Floater, and Traversal controllers can share one code path (see the
// unexported base.accumulate in package simplex).
package progression

import "sort"

// Interp selects the interpolation mode for a Progression.
type Interp int

const (
	// Linear interpolates piecewise between adjacent pairs.
	Linear Interp = iota
	// Spline interpolates with a uniform Catmull-Rom basis over all pairs.
	Spline
	// SplitSpline behaves like Spline but only considers pairs on the same
	// side of zero as the query parameter, so the curve never has to bend
	// through the origin to reach a pair on the other side.
	SplitSpline
)

// Pair is a single (shape, parameter) sample. ShapeIndex addresses the
// shape's position in the solver's output vector directly; Progression
// never needs to resolve a shape by name.
type Pair struct {
	ShapeIndex int
	Param      float64
}

// Contribution is one weighted shape returned by GetOutput. Multiple
// contributions for the same ShapeIndex are not merged by this package;
// callers accumulate them into an output vector by addition.
type Contribution struct {
	ShapeIndex int
	Weight     float64
}

// Progression is an ordered, read-only-after-construction sequence of
// (shape, parameter) pairs plus an interpolation mode.
type Progression struct {
	Name   string
	Interp Interp
	Pairs  []Pair
}

// New sorts pairs by ascending parameter and returns the Progression, or an
// error if the pairs are degenerate (empty, or share a parameter value).
func New(name string, pairs []Pair, interp Interp) (Progression, error) {
	if len(pairs) == 0 {
		return Progression{}, ErrNoPairs
	}
	sorted := make([]Pair, len(pairs))
	copy(sorted, pairs)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Param < sorted[j].Param })

	for i := 1; i < len(sorted); i++ {
		if sorted[i].Param == sorted[i-1].Param {
			return Progression{}, ErrDuplicateParam
		}
	}
	return Progression{Name: name, Interp: interp, Pairs: sorted}, nil
}

// GetOutput evaluates the progression at tVal, scaling every returned
// weight by mul. It dispatches to the configured interpolation mode.
func (p Progression) GetOutput(tVal, mul float64) []Contribution {
	switch p.Interp {
	case Spline:
		return p.splineOutput(p.Pairs, tVal, mul)
	case SplitSpline:
		return p.splineOutput(p.sidedPairs(tVal), tVal, mul)
	default:
		return p.linearOutput(p.Pairs, tVal, mul)
	}
}

// sidedPairs restricts the pair list to those on the same side of zero as
// tVal: tVal >= 0 keeps pairs with Param >= 0, tVal < 0 keeps Param <= 0.
func (p Progression) sidedPairs(tVal float64) []Pair {
	gt := tVal >= 0
	out := make([]Pair, 0, len(p.Pairs))
	for _, pr := range p.Pairs {
		if gt && pr.Param >= 0 {
			out = append(out, pr)
		} else if !gt && pr.Param <= 0 {
			out = append(out, pr)
		}
	}
	return out
}

// getInterval locates the pair interval i such that times[i] <= tVal <
// times[i+1], clamping to the last legal interval when tVal falls at or
// past the second-to-last sample, and to the first when tVal is before the
// first sample. outside reports whether tVal fell outside [times[0],
// times[len-1]].
func getInterval(tVal float64, times []float64) (idx int, outside bool) {
	if len(times) <= 1 {
		return 0, true
	}
	outside = tVal < times[0] || tVal > times[len(times)-1]

	if tVal >= times[len(times)-2] {
		return len(times) - 2, outside
	}
	if tVal < times[0] {
		return 0, outside
	}
	for i := 0; i < len(times)-2; i++ {
		if times[i] <= tVal && tVal < times[i+1] {
			return i, outside
		}
	}
	return 0, outside
}

func (p Progression) linearOutput(pairs []Pair, tVal, mul float64) []Contribution {
	if len(pairs) < 2 {
		return nil
	}
	times := make([]float64, len(pairs))
	for i, pr := range pairs {
		times[i] = pr.Param
	}
	idx, _ := getInterval(tVal, times)
	u := (tVal - times[idx]) / (times[idx+1] - times[idx])
	return []Contribution{
		{ShapeIndex: pairs[idx].ShapeIndex, Weight: mul * (1.0 - u)},
		{ShapeIndex: pairs[idx+1].ShapeIndex, Weight: mul * u},
	}
}

func (p Progression) splineOutput(pairs []Pair, tVal, mul float64) []Contribution {
	if len(pairs) <= 2 {
		return p.linearOutput(pairs, tVal, mul)
	}
	times := make([]float64, len(pairs))
	for i, pr := range pairs {
		times[i] = pr.Param
	}
	if tVal < times[0] || tVal > times[len(times)-1] {
		return p.linearOutput(pairs, tVal, mul)
	}

	// tVal is already known to lie within [times[0], times[last]], so
	// getInterval's own "outside" flag can never fire past this point.
	idx, _ := getInterval(tVal, times)
	start, end := times[idx], times[idx+1]
	x := (tVal - start) / (end - start)

	x2 := x * x
	x3 := x2 * x
	v0 := -0.5*x3 + x2 - 0.5*x
	v1 := 1.5*x3 - 2.5*x2 + 1.0
	v2 := -1.5*x3 + 2.0*x2 + 0.5*x
	v3 := 0.5*x3 - 0.5*x2

	last := len(pairs) - 1
	switch {
	case idx == 0:
		return []Contribution{
			{ShapeIndex: pairs[0].ShapeIndex, Weight: mul * (v1 + v0 + v0)},
			{ShapeIndex: pairs[1].ShapeIndex, Weight: mul * (v2 - v0)},
			{ShapeIndex: pairs[2].ShapeIndex, Weight: mul * v3},
		}
	case idx == len(times)-2:
		return []Contribution{
			{ShapeIndex: pairs[last-2].ShapeIndex, Weight: mul * v0},
			{ShapeIndex: pairs[last-1].ShapeIndex, Weight: mul * (v1 - v3)},
			{ShapeIndex: pairs[last].ShapeIndex, Weight: mul * (v2 + v3 + v3)},
		}
	default:
		return []Contribution{
			{ShapeIndex: pairs[idx-1].ShapeIndex, Weight: mul * v0},
			{ShapeIndex: pairs[idx+0].ShapeIndex, Weight: mul * v1},
			{ShapeIndex: pairs[idx+1].ShapeIndex, Weight: mul * v2},
			{ShapeIndex: pairs[idx+2].ShapeIndex, Weight: mul * v3},
		}
	}
}
