// SPDX-License-Identifier: MIT
package trispace

import "github.com/rigcore/simplex/numeric"

// sameSpan reports whether two floaters share the same ordered slider set.
func sameSpan(a, b FloaterSpec) bool {
	if len(a.SliderIndices) != len(b.SliderIndices) {
		return false
	}
	for i := range a.SliderIndices {
		if a.SliderIndices[i] != b.SliderIndices[i] {
			return false
		}
	}
	return true
}

func sameOrthant(a, b []bool) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// BuildSpaces partitions floaters into TriSpaces: first bucketed by the
// dimension of their slider span, then grouped within a bucket by identical
// ordered slider sets and identical orthants. Each group becomes one Space,
// triangulated immediately.
func BuildSpaces(floaters []FloaterSpec) []*Space {
	dimmed := map[int][]FloaterSpec{}
	dims := []int{}
	for _, f := range floaters {
		d := len(f.SliderIndices)
		if _, ok := dimmed[d]; !ok {
			dims = append(dims, d)
		}
		dimmed[d] = append(dimmed[d], f)
	}

	var spaces []*Space
	for _, d := range dims {
		bucket := dimmed[d]
		used := make([]bool, len(bucket))
		for i := range bucket {
			if used[i] {
				continue
			}
			used[i] = true
			group := []FloaterSpec{bucket[i]}
			for j := i + 1; j < len(bucket); j++ {
				if used[j] {
					continue
				}
				if sameSpan(bucket[i], bucket[j]) && sameOrthant(inverted(bucket[i].Target), inverted(bucket[j].Target)) {
					used[j] = true
					group = append(group, bucket[j])
				}
			}
			spaces = append(spaces, newSpace(group))
		}
	}
	return spaces
}

func newSpace(group []FloaterSpec) *Space {
	s := &Space{
		sliderIndices: append([]int(nil), group[0].SliderIndices...),
		orthant:       inverted(group[0].Target),
		simplexMap:    map[string][][]int{},
	}
	for _, f := range group {
		s.members = append(s.members, f.External)
		s.userPoints = append(s.userPoints, append([]float64(nil), f.Target...))
	}
	s.triangulate()
	return s
}

// triangulate builds simplexMap: for every orthoscheme adjacent to a user
// point, split it by every user point that lands inside it, then re-encode
// the resulting sub-simplices back to integer form (using n+1+i to mean
// "this corner is userPoints[i]" instead of a hypercube vertex).
func (s *Space) triangulate() {
	pointsByKey := map[string][][]float64{}
	var keys [][]int
	seen := map[string]bool{}

	for _, up := range s.userPoints {
		raw := pointToAdjSimp(up, numeric.Eps)
		for _, simp := range raw {
			key := encodeKey(simp)
			pointsByKey[key] = append(pointsByKey[key], up)
			if !seen[key] {
				seen[key] = true
				keys = append(keys, simp)
			}
		}
	}

	for _, key := range keys {
		keyStr := encodeKey(key)
		pts := pointsByKey[keyStr]

		initial := [][][]float64{cornerSlice(key, s.userPoints)}
		split := splitSimps(pts, initial)

		for _, corners := range split {
			newSimp := make([]int, len(key))
			for cIdx, c := range corners {
				if uIdx := findUserPoint(s.userPoints, c); uIdx >= 0 {
					newSimp[cIdx] = len(key) + uIdx
				} else {
					newSimp[cIdx] = key[cIdx]
				}
			}
			s.simplexMap[keyStr] = append(s.simplexMap[keyStr], newSimp)
		}
	}
}

func cornerSlice(key []int, userPoints [][]float64) [][]float64 {
	corners, _ := cornersFromEncoding(key, key, userPoints)
	return corners
}

func findUserPoint(userPoints [][]float64, c []float64) int {
	for i, up := range userPoints {
		if pointsEqual(up, c) {
			return i
		}
	}
	return -1
}
