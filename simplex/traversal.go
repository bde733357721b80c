// SPDX-License-Identifier: MIT
package simplex

import "github.com/rigcore/simplex/progression"

// TravPair is one (slider, value) entry in a Traversal's derived state.
// Depending on which of ProgStart/ProgDelta/MultState it appears in, Value
// means a starting offset, a target delta, or a multiplier target.
type TravPair struct {
	SliderIndex int
	Value       float64
}

// LegacyControl designates a Traversal's progress or multiplier control as
// either a single slider (Combo == nil, SliderIndex used) or a combo (its
// own state list supplies the pairs).
type LegacyControl struct {
	SliderIndex int
	Combo       *Combo
}

// EndpointPair is one (slider, value) sample of a Traversal's current-form
// start or end combo state.
type EndpointPair struct {
	SliderIndex int
	Value       float64
}

// Traversal blends a progression along a path derived from either a
// legacy single-slider-or-combo pair, or a pair of endpoint states. Both
// construction forms collapse to the same ProgStart/ProgDelta/MultState
// runtime shape.
type Traversal struct {
	base
	ProgStart []TravPair
	ProgDelta []TravPair
	MultState []TravPair
	SolveType SolveType
	Exact     bool
}

// NewTraversalLegacy builds a Traversal from a single progress control and
// a single multiplier control, each either a slider or a combo, with sign
// flips applied when the corresponding control is a slider.
func NewTraversalLegacy(name string, index int, prog *progression.Progression, progressCtrl, multCtrl LegacyControl, valueFlip, multiplierFlip bool) *Traversal {
	var progStart, progDelta, multState []TravPair

	if multCtrl.Combo != nil {
		for _, p := range multCtrl.Combo.Pairs {
			multState = append(multState, TravPair{SliderIndex: p.SliderIndex, Value: p.Target})
		}
	} else {
		sign := 1.0
		if multiplierFlip {
			sign = -1.0
		}
		multState = []TravPair{{SliderIndex: multCtrl.SliderIndex, Value: sign}}
	}

	if progressCtrl.Combo != nil {
		for _, p := range progressCtrl.Combo.Pairs {
			progStart = append(progStart, TravPair{SliderIndex: p.SliderIndex, Value: 0})
			progDelta = append(progDelta, TravPair{SliderIndex: p.SliderIndex, Value: p.Target})
		}
	} else {
		sign := 1.0
		if valueFlip {
			sign = -1.0
		}
		progStart = []TravPair{{SliderIndex: progressCtrl.SliderIndex, Value: 0}}
		progDelta = []TravPair{{SliderIndex: progressCtrl.SliderIndex, Value: sign}}
	}

	return &Traversal{
		base:      newBase(name, index, prog),
		ProgStart: progStart,
		ProgDelta: progDelta,
		MultState: multState,
		SolveType: SolveMin,
		Exact:     true,
	}
}

// NewTraversalCurrent builds a Traversal from two endpoint combo states by
// partitioning the union of their sliders into progress-only, delta-only,
// shared (constant across the traversal), or differing-endpoint groups.
func NewTraversalCurrent(name string, index int, prog *progression.Progression, start, end []EndpointPair, solveType SolveType) *Traversal {
	startMap := make(map[int]float64, len(start))
	for _, p := range start {
		startMap[p.SliderIndex] = p.Value
	}
	endMap := make(map[int]float64, len(end))
	for _, p := range end {
		endMap[p.SliderIndex] = p.Value
	}

	seen := make(map[int]bool, len(start)+len(end))
	var order []int
	for _, p := range start {
		if !seen[p.SliderIndex] {
			seen[p.SliderIndex] = true
			order = append(order, p.SliderIndex)
		}
	}
	for _, p := range end {
		if !seen[p.SliderIndex] {
			seen[p.SliderIndex] = true
			order = append(order, p.SliderIndex)
		}
	}

	var progStart, progDelta, multState []TravPair
	for _, idx := range order {
		sv, sOk := startMap[idx]
		ev, eOk := endMap[idx]
		switch {
		// order matters: only the two both-present cases can still reach
		// "sv == ev" below, since idx was drawn from the union of the two maps.
		case eOk && !sOk:
			progStart = append(progStart, TravPair{SliderIndex: idx, Value: 0})
			progDelta = append(progDelta, TravPair{SliderIndex: idx, Value: ev})
		case sOk && !eOk:
			progStart = append(progStart, TravPair{SliderIndex: idx, Value: sv})
			progDelta = append(progDelta, TravPair{SliderIndex: idx, Value: -sv})
		case sv == ev:
			multState = append(multState, TravPair{SliderIndex: idx, Value: sv})
		default:
			progStart = append(progStart, TravPair{SliderIndex: idx, Value: sv})
			progDelta = append(progDelta, TravPair{SliderIndex: idx, Value: ev - sv})
		}
	}

	return &Traversal{
		base:      newBase(name, index, prog),
		ProgStart: progStart,
		ProgDelta: progDelta,
		MultState: multState,
		SolveType: solveType,
		Exact:     true,
	}
}

// storeValue computes the multiplier from MultState, then the progress
// value from ProgStart/ProgDelta measured relative to each slider's own
// starting offset. An inactive multiplier state (a sign mismatch against
// its target) zeroes both value and multiplier and skips the progress
// half; an inactive progress state zeroes only value, keeping the
// multiplier already computed.
func (t *Traversal) storeValue(sliders []*Slider) {
	if !t.Enabled {
		return
	}

	multVals := make([]float64, len(t.MultState))
	multTars := make([]float64, len(t.MultState))
	for i, p := range t.MultState {
		multVals[i] = sliders[p.SliderIndex].value
		multTars[i] = p.Value
	}
	mult, multActive := solveState(multVals, multTars, t.SolveType, t.Exact)
	if !multActive {
		t.value = 0
		t.multiplier = 0
		return
	}
	t.multiplier = mult

	vals := make([]float64, len(t.ProgStart))
	tars := make([]float64, len(t.ProgDelta))
	for i := range t.ProgStart {
		vals[i] = sliders[t.ProgStart[i].SliderIndex].value - t.ProgStart[i].Value
		tars[i] = t.ProgDelta[i].Value
	}
	value, active := solveState(vals, tars, t.SolveType, t.Exact)
	if !active {
		t.value = 0
		return
	}
	t.value = value
}
