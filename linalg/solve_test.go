// SPDX-License-Identifier: MIT
package linalg_test

import (
	"testing"

	"github.com/rigcore/simplex/linalg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDense(t *testing.T, rows [][]float64) *linalg.Dense {
	t.Helper()
	d, err := linalg.NewDense(len(rows), len(rows[0]))
	require.NoError(t, err)
	for i, row := range rows {
		for j, v := range row {
			require.NoError(t, d.Set(i, j, v))
		}
	}
	return d
}

func TestSolveIdentity(t *testing.T) {
	a := mustDense(t, [][]float64{{1, 0}, {0, 1}})
	x, err := linalg.Solve(a, []float64{3, 4})
	require.NoError(t, err)
	assert.InDelta(t, 3, x[0], 1e-9)
	assert.InDelta(t, 4, x[1], 1e-9)
}

func TestSolveGeneral2x2(t *testing.T) {
	a := mustDense(t, [][]float64{{2, 1}, {1, 3}})
	x, err := linalg.Solve(a, []float64{5, 10})
	require.NoError(t, err)
	// verify A*x reproduces b
	assert.InDelta(t, 5, 2*x[0]+1*x[1], 1e-9)
	assert.InDelta(t, 10, 1*x[0]+3*x[1], 1e-9)
}

func TestSolveDimensionMismatch(t *testing.T) {
	a := mustDense(t, [][]float64{{1, 0}, {0, 1}})
	_, err := linalg.Solve(a, []float64{1})
	assert.ErrorIs(t, err, linalg.ErrDimensionMismatch)
}

func TestSolveNonSquare(t *testing.T) {
	d, err := linalg.NewDense(2, 3)
	require.NoError(t, err)
	_, err = linalg.Solve(d, []float64{1, 2})
	assert.ErrorIs(t, err, linalg.ErrNonSquare)
}

func TestSolveDegenerateDoesNotPanic(t *testing.T) {
	a := mustDense(t, [][]float64{{0, 0}, {0, 0}})
	x, err := linalg.Solve(a, []float64{1, 1})
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0}, x)
}
