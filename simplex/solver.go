// SPDX-License-Identifier: MIT
package simplex

import (
	"github.com/rigcore/simplex/numeric"
	"github.com/rigcore/simplex/progression"
	"github.com/rigcore/simplex/shape"
	"github.com/rigcore/simplex/trispace"
)

// Solver is the top-level container: the ownership root for every entity a
// parsed rig defines. Shapes and sliders are referenced elsewhere in this
// package by plain index; controllers hold pointers into Progs (and legacy
// traversals copy state from Combos). All are resolved once at parse time
// and never invalidated afterward, since none of these slices are resized
// past parse.
type Solver struct {
	Shapes     []shape.Shape
	Progs      []progression.Progression
	Sliders    []*Slider
	Combos     []*Combo
	Floaters   []*Combo
	Traversals []*Traversal
	Spaces     []*trispace.Space

	Built      bool
	Loaded     bool
	ExactSolve bool

	// ParseError and ParseErrorOffset are set by the parser package on a
	// failed parse; both are zero-valued after a successful one.
	ParseError       string
	ParseErrorOffset int
}

// New returns an empty, unloaded, unbuilt Solver.
func New() *Solver {
	return &Solver{ExactSolve: true}
}

// Clear drops all parsed state, returning the Solver to its post-New
// condition except that ExactSolve keeps its current value. It must not
// run concurrently with Solve.
func (s *Solver) Clear() {
	*s = Solver{ExactSolve: s.ExactSolve}
}

// ClearValues resets every controller's transient value/multiplier state
// without discarding parsed entities or TriSpaces.
func (s *Solver) ClearValues() {
	for _, sl := range s.Sliders {
		sl.reset()
	}
	for _, c := range s.Combos {
		c.reset()
	}
	for _, f := range s.Floaters {
		f.reset()
	}
	for _, t := range s.Traversals {
		t.reset()
	}
}

// SetExactSolve records the exact-solve toggle in ExactSolve and propagates
// it to every combo, floater, and traversal already present. Controllers
// added afterward are not updated from the stored flag: their constructors
// start them with Exact true.
func (s *Solver) SetExactSolve(flag bool) {
	s.ExactSolve = flag
	for _, c := range s.Combos {
		c.Exact = flag
	}
	for _, f := range s.Floaters {
		f.Exact = flag
	}
	for _, t := range s.Traversals {
		t.Exact = flag
	}
}

// Build finalizes TriSpaces from the parsed floaters. It is idempotent:
// calling it again simply retriangulates from the current floater set.
func (s *Solver) Build() {
	specs := make([]trispace.FloaterSpec, len(s.Floaters))
	for i, f := range s.Floaters {
		target := make([]float64, len(f.Pairs))
		sliderIdx := make([]int, len(f.Pairs))
		for j, p := range f.Pairs {
			target[j] = p.Target
			sliderIdx[j] = p.SliderIndex
		}
		specs[i] = trispace.FloaterSpec{Target: target, SliderIndices: sliderIdx, External: i}
	}
	s.Spaces = trispace.BuildSpaces(specs)
	s.Built = true
}

// SliderCount reports the number of parsed sliders.
func (s *Solver) SliderCount() int { return len(s.Sliders) }

// ShapeCount reports the number of parsed shapes, including the neutral
// shape at index 0.
func (s *Solver) ShapeCount() int { return len(s.Shapes) }

// Solve runs one full evaluation: rectify raw, store every controller's
// value in category order, accumulate progression contributions in
// category order, and derive the neutral shape's weight from the peak
// activation seen across every enabled controller. raw shorter than
// SliderCount is zero-padded; raw longer is truncated.
func (s *Solver) Solve(raw []float64) []float64 {
	padded := make([]float64, len(s.Sliders))
	copy(padded, raw)
	_, clamped, inverted := numeric.Rectify(padded)

	for _, sl := range s.Sliders {
		sl.reset()
	}
	for _, c := range s.Combos {
		c.reset()
	}
	for _, f := range s.Floaters {
		f.reset()
	}
	for _, t := range s.Traversals {
		t.reset()
	}

	for _, sl := range s.Sliders {
		sl.storeValue(padded)
	}
	for _, c := range s.Combos {
		c.storeValue(s.Sliders)
	}
	for _, sp := range s.Spaces {
		weights := sp.Solve(clamped, inverted)
		for external, w := range weights {
			s.Floaters[external].value = w
		}
	}
	for _, t := range s.Traversals {
		t.storeValue(s.Sliders)
	}

	output := make([]float64, len(s.Shapes))
	maxAct := 0.0
	for _, sl := range s.Sliders {
		if a, ok := sl.accumulate(output); ok && a > maxAct {
			maxAct = a
		}
	}
	for _, c := range s.Combos {
		if a, ok := c.accumulate(output); ok && a > maxAct {
			maxAct = a
		}
	}
	for _, f := range s.Floaters {
		if a, ok := f.accumulate(output); ok && a > maxAct {
			maxAct = a
		}
	}
	for _, t := range s.Traversals {
		if a, ok := t.accumulate(output); ok && a > maxAct {
			maxAct = a
		}
	}

	if len(output) > 0 {
		output[0] = 1 - maxAct
	}
	return output
}
