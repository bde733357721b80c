// SPDX-License-Identifier: MIT
package linalg

import "math"

// Solve returns x such that A*x = b, using Householder QR reduction
// followed by back-substitution. A must be square and share its dimension
// with b.
//
// Degenerate systems (a reflection step landing on an all-zero column) do
// not return an error: TriSpace calls this on candidate sub-simplices that
// are frequently non-degenerate but occasionally near-singular near a
// facet, and its barycentric gate already discards a candidate whose
// coordinates aren't all non-negative. Forcing an error here would just
// move that same rejection into an error check at every call site, so a
// degenerate pivot instead yields a zero coordinate for that unknown and
// lets the caller's gate do the rejecting.
func Solve(a *Dense, b []float64) ([]float64, error) {
	n := a.Rows()
	if a.Cols() != n {
		return nil, ErrNonSquare
	}
	if len(b) != n {
		return nil, ErrDimensionMismatch
	}
	if n == 0 {
		return nil, nil
	}

	work := a.Clone()
	qt, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		_ = qt.Set(i, i, 1.0)
	}

	v := make([]float64, n)
	for k := 0; k < n; k++ {
		norm := 0.0
		for i := k; i < n; i++ {
			val, _ := work.At(i, k)
			norm += val * val
		}
		norm = math.Sqrt(norm)
		if norm == 0 {
			continue // degenerate column: leave it unreflected, see doc comment
		}

		pivot, _ := work.At(k, k)
		alpha := -math.Copysign(norm, pivot)

		for i := range v {
			v[i] = 0
		}
		for i := k; i < n; i++ {
			val, _ := work.At(i, k)
			v[i] = val
		}
		v[k] -= alpha

		beta := 0.0
		for i := k; i < n; i++ {
			beta += v[i] * v[i]
		}
		if beta == 0 {
			continue
		}
		tau := 2.0 / beta

		reflect(work, v, k, tau)
		reflect(qt, v, k, tau)
	}

	// qt now holds Q^T (the reflections applied to the identity); c = Q^T * b puts the system into
	// upper-triangular form Rx = c.
	c := make([]float64, n)
	for i := 0; i < n; i++ {
		var sum float64
		for j := 0; j < n; j++ {
			qv, _ := qt.At(i, j)
			sum += qv * b[j]
		}
		c[i] = sum
	}

	x := make([]float64, n)
	for i := n - 1; i >= 0; i-- {
		rii, _ := work.At(i, i)
		sum := c[i]
		for j := i + 1; j < n; j++ {
			rij, _ := work.At(i, j)
			sum -= rij * x[j]
		}
		if rii == 0 {
			x[i] = 0
			continue
		}
		x[i] = sum / rii
	}
	return x, nil
}

// reflect applies the Householder reflection defined by (v, tau) to every
// column of m from row k downward, in place.
func reflect(m *Dense, v []float64, k int, tau float64) {
	n := m.Cols()
	for j := 0; j < n; j++ {
		sum := 0.0
		for i := k; i < m.Rows(); i++ {
			val, _ := m.At(i, j)
			sum += v[i] * val
		}
		for i := k; i < m.Rows(); i++ {
			val, _ := m.At(i, j)
			_ = m.Set(i, j, val-tau*v[i]*sum)
		}
	}
}
