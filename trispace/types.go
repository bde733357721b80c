// SPDX-License-Identifier: MIT
package trispace

// FloaterSpec describes one floater to BuildSpaces: its target point (one
// coordinate per slider it spans, in the same order as SliderIndices), the
// slider indices it spans, and an External index the caller uses to map
// results back to its own floater storage. External is never interpreted
// by this package; it is only round-tripped into Space's returned weights.
type FloaterSpec struct {
	Target        []float64
	SliderIndices []int
	External      int
}

// Space is one triangulated subspace: a group of floaters that share the
// same ordered slider set and the same orthant.
type Space struct {
	sliderIndices []int
	orthant       []bool
	members       []int // external floater indices, aligned with userPoints
	userPoints    [][]float64
	simplexMap    map[string][][]int
}

// SliderIndices returns the ordered slider indices this space spans.
func (s *Space) SliderIndices() []int { return append([]int(nil), s.sliderIndices...) }

// Members returns the external floater indices grouped into this space.
func (s *Space) Members() []int { return append([]int(nil), s.members...) }

// inverted computes the per-axis sign of a target point using the same
// strict raw-sign rule as numeric.Rectify (v < 0), not the epsilon-aware
// IsPositive/IsNegative predicates: a target's orthant membership is a
// parse-time constant, not a runtime boundary condition.
func inverted(target []float64) []bool {
	inv := make([]bool, len(target))
	for i, v := range target {
		inv[i] = v < 0
	}
	return inv
}
