// SPDX-License-Identifier: MIT
package numeric_test

import (
	"testing"

	"github.com/rigcore/simplex/numeric"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRectify(t *testing.T) {
	raw := []float64{0.5, -0.5, 1.5, -1.5, 0}
	values, clamped, inverted := numeric.Rectify(raw)
	require.Len(t, values, len(raw))

	for i, v := range raw {
		assert.InDelta(t, absf(v), values[i], 1e-12, "values[%d]", i)
		assert.LessOrEqual(t, clamped[i], 1.0)
		assert.LessOrEqual(t, clamped[i], values[i]+1e-12)
		assert.Equal(t, v < 0, inverted[i])
	}
}

func absf(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func TestIsPositiveIsNegativeAtZero(t *testing.T) {
	// Zero is deliberately both positive and negative: it sits on the
	// orthant boundary and must agree with either sign during gating.
	assert.True(t, numeric.IsPositive(0))
	assert.True(t, numeric.IsNegative(0))
}

func TestSoftMinZeroOperand(t *testing.T) {
	assert.Equal(t, 0.0, numeric.SoftMin(0, 0.7))
	assert.Equal(t, 0.0, numeric.SoftMin(0.7, 0))
}

func TestSoftMinCommutative(t *testing.T) {
	a := numeric.SoftMin(0.3, 0.9)
	b := numeric.SoftMin(0.9, 0.3)
	assert.InDelta(t, a, b, 1e-12)
}

func TestSoftMinApproachesMin(t *testing.T) {
	// With unit inputs the exact combo case (§8) requires value == 1.0;
	// the soft case must land in (0.99, 1.0].
	v := numeric.SoftMin(1.0, 1.0)
	assert.Greater(t, v, 0.99)
	assert.LessOrEqual(t, v, 1.0)
}

func TestTupleHashDeterministic(t *testing.T) {
	a := numeric.TupleHash([]int{0, -2, 4, 1, -3})
	b := numeric.TupleHash([]int{0, -2, 4, 1, -3})
	assert.Equal(t, a, b)

	c := numeric.TupleHash([]int{0, -2, 4, 1, 3})
	assert.NotEqual(t, a, c)
}
