// SPDX-License-Identifier: MIT
package trispace

import (
	"sort"
	"strconv"
	"strings"

	"github.com/rigcore/simplex/linalg"
	"github.com/rigcore/simplex/numeric"
)

// encodeKey turns a Schläfli-orthoscheme encoding into a comparable Go map
// key. numeric.TupleHash documents the same fold the original solver used
// for its hash-map keys; a plain decimal-joined string is the idiomatic Go
// equivalent (Go maps need a comparable key type, not a custom hasher), and
// it is exercised by every triangulation lookup in this package.
func encodeKey(simplex []int) string {
	var b strings.Builder
	for i, v := range simplex {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(v))
	}
	return b.String()
}

// pointToSimp returns the unique orthoscheme whose interior contains pt:
// sort axes by ascending |pt[i]|, then emit signed axis indices in
// descending order of |pt[i]| after the leading 0.
func pointToSimp(pt []float64) []int {
	type axis struct {
		signedIdx int
		abs       float64
	}
	axes := make([]axis, len(pt))
	for i, v := range pt {
		n := 1
		if !numeric.IsPositive(v) {
			n = -1
		}
		axes[i] = axis{signedIdx: (i + 1) * n, abs: v * float64(n)}
	}
	sort.SliceStable(axes, func(i, j int) bool { return axes[i].abs < axes[j].abs })

	out := make([]int, 0, len(pt)+1)
	out = append(out, 0)
	for i := len(axes) - 1; i >= 0; i-- {
		out = append(out, axes[i].signedIdx)
	}
	return out
}

// pointToAdjSimp enumerates every orthoscheme whose interior or boundary
// contains pt within eps, by repeatedly peeling off the coordinate(s) with
// maximum absolute value and emitting the corresponding signed axis index.
// A tied or zero maximum branches into every direction it could belong to.
func pointToAdjSimp(pt []float64, eps float64) [][]int {
	orig := make([]int, len(pt))
	for i := range orig {
		orig[i] = i
	}
	var out [][]int
	recAdjSimp(pt, orig, []int{0}, eps, &out)
	return out
}

func recAdjSimp(point []float64, oVals []int, simp []int, eps float64, out *[][]int) {
	if len(point) == 0 {
		cp := make([]int, len(simp))
		copy(cp, simp)
		*out = append(*out, cp)
		return
	}

	maxAbs := absF(point[0])
	for _, p := range point {
		if a := absF(p); a > maxAbs {
			maxAbs = a
		}
	}

	var mxs []int
	for i, p := range point {
		if maxAbs-absF(p) < eps {
			mxs = append(mxs, i)
		}
	}
	mvZero := numeric.IsZero(maxAbs)

	for _, mx := range mxs {
		var directions []int
		if mvZero {
			directions = []int{-1, 1}
		} else if numeric.IsPositive(point[mx]) {
			directions = []int{1}
		} else {
			directions = []int{-1}
		}

		for _, dir := range directions {
			newVal := (oVals[mx] + 1) * dir

			nSimp := append(append([]int(nil), simp...), newVal)
			subPoint := removeAt(point, mx)
			subVals := removeAtInt(oVals, mx)
			recAdjSimp(subPoint, subVals, nSimp, eps, out)
		}
	}
}

func absF(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func removeAt(s []float64, idx int) []float64 {
	out := make([]float64, 0, len(s)-1)
	out = append(out, s[:idx]...)
	return append(out, s[idx+1:]...)
}

func removeAtInt(s []int, idx int) []int {
	out := make([]int, 0, len(s)-1)
	out = append(out, s[:idx]...)
	return append(out, s[idx+1:]...)
}

// cornersFromEncoding decodes a (possibly re-encoded) simplex into its n+1
// corner points. simp carries the possibly-swapped-to-a-user-point entries;
// original carries the un-swapped orthoscheme those entries came from, used
// to keep the running hypercube-path vector correct even at positions that
// were replaced by a user point. floaterCorners[i] is the external floater
// index for corner i, or -1 if that corner is an ordinary hypercube vertex.
// Passing original == simp decodes a plain (never-split) orthoscheme.
func cornersFromEncoding(simp, original []int, userPoints [][]float64) (corners [][]float64, floaterCorners []int) {
	n := len(simp) - 1
	curr := make([]float64, n)
	corners = make([][]float64, 0, len(simp))
	floaterCorners = make([]int, 0, len(simp))

	for i := range simp {
		s := simp[i]
		os := original[i]
		if s == 0 {
			cp := make([]float64, n)
			copy(cp, curr)
			corners = append(corners, cp)
			floaterCorners = append(floaterCorners, -1)
			continue
		}

		idx := s
		if idx < 0 {
			idx = -idx
		}
		oidx := os
		if oidx < 0 {
			oidx = -oidx
		}
		val := 1.0
		if os < 0 {
			val = -1.0
		}
		if oidx != 0 {
			curr[oidx-1] = val
		}

		if idx >= len(simp) {
			pIdx := idx - len(simp)
			corners = append(corners, userPoints[pIdx])
			floaterCorners = append(floaterCorners, pIdx)
		} else {
			cp := make([]float64, n)
			copy(cp, curr)
			corners = append(corners, cp)
			floaterCorners = append(floaterCorners, -1)
		}
	}
	return corners, floaterCorners
}

// barycentric solves for the barycentric coordinates of p with respect to
// the n+1 corners of simplex (each a point in R^n). The last coordinate is
// derived as 1 minus the sum of the rest rather than solved for directly.
func barycentric(simplex [][]float64, p []float64) ([]float64, error) {
	last := simplex[len(simplex)-1]
	n := len(p)

	m, err := linalg.NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for j := 0; j < len(simplex)-1; j++ {
		for i := 0; i < n; i++ {
			if err := m.Set(i, j, simplex[j][i]-last[i]); err != nil {
				return nil, err
			}
		}
	}

	b := make([]float64, n)
	for i := range b {
		b[i] = p[i] - last[i]
	}

	x, err := linalg.Solve(m, b)
	if err != nil {
		return nil, err
	}

	sum := 0.0
	for _, v := range x {
		sum += v
	}
	return append(x, 1.0-sum), nil
}

// pointsEqual compares two points for exact floating-point equality, which
// is what splitSimps needs to recognize "this corner IS the user point we
// just substituted in", not "this corner is numerically close to it".
func pointsEqual(a, b []float64) bool {
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

// splitSimps iteratively fans every simplex in simps out from each point in
// pts: for a simplex whose barycentric coordinates of a point are all
// non-negative, every non-zero corner is replaced by that point in turn,
// producing a consistent fan triangulation from the point to every facet it
// faces. Simplices a point doesn't fall inside pass through unchanged.
func splitSimps(pts [][]float64, simps [][][]float64) [][][]float64 {
	out := simps
	for _, p := range pts {
		var next [][][]float64
		for _, s := range out {
			bary, err := barycentric(s, p)
			if err != nil {
				next = append(next, s)
				continue
			}
			allPos := true
			for _, b := range bary {
				if !numeric.IsPositive(b) {
					allPos = false
					break
				}
			}
			if !allPos {
				next = append(next, s)
				continue
			}
			for k, b := range bary {
				if numeric.IsZero(b) {
					continue
				}
				ns := make([][]float64, len(s))
				copy(ns, s)
				ns[k] = p
				next = append(next, ns)
			}
		}
		out = next
	}
	return out
}
