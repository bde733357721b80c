// SPDX-License-Identifier: MIT
package trispace

import "github.com/rigcore/simplex/numeric"

// Solve resolves the space's containing sub-simplex for the current input
// and returns each member floater's barycentric weight, keyed by the
// External index passed to BuildSpaces. A nil (or member-less) result means
// every floater in this space should be left at its reset value of zero:
// that happens when the input's orthant disagrees with the space's, when
// any participating slider sits exactly on the orthant boundary, or when
// the input point's major simplex was never split against a user point.
//
// clamped and inverted are the full-width rectified input arrays (one entry
// per slider in the whole rig); Solve extracts the sub-vector it needs
// using its own SliderIndices.
func (s *Space) Solve(clamped []float64, inverted []bool) map[int]float64 {
	vec := make([]float64, len(s.sliderIndices))
	subInverse := make([]bool, len(s.sliderIndices))
	for i, sliderIdx := range s.sliderIndices {
		cv := clamped[sliderIdx]
		if numeric.IsZero(cv) {
			return nil
		}
		vec[i] = cv
		subInverse[i] = inverted[sliderIdx]
	}
	if !sameOrthant(s.orthant, subInverse) {
		return nil
	}

	majorSimp := pointToSimp(vec)
	subs, ok := s.simplexMap[encodeKey(majorSimp)]
	if !ok {
		return nil
	}

	for _, sub := range subs {
		corners, floaterCorners := cornersFromEncoding(sub, majorSimp, s.userPoints)
		bary, err := barycentric(corners, vec)
		if err != nil {
			continue
		}

		allNonNeg := true
		for _, b := range bary {
			if !numeric.IsPositive(b) {
				allNonNeg = false
				break
			}
		}
		if !allNonNeg {
			continue
		}

		result := map[int]float64{}
		for i, fc := range floaterCorners {
			if fc == -1 {
				continue
			}
			result[s.members[fc]] = bary[i]
		}
		return result
	}
	return nil
}
