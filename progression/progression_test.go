// SPDX-License-Identifier: MIT
package progression_test

import (
	"testing"

	"github.com/rigcore/simplex/progression"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sum(cs []progression.Contribution) float64 {
	var s float64
	for _, c := range cs {
		s += c.Weight
	}
	return s
}

func TestNewRejectsEmptyAndDuplicates(t *testing.T) {
	_, err := progression.New("p", nil, progression.Linear)
	require.ErrorIs(t, err, progression.ErrNoPairs)

	_, err = progression.New("p", []progression.Pair{{0, 0.5}, {1, 0.5}}, progression.Linear)
	require.ErrorIs(t, err, progression.ErrDuplicateParam)
}

func TestLinearMonotonicityAndUnity(t *testing.T) {
	p, err := progression.New("p", []progression.Pair{{0, 0}, {1, 1}}, progression.Linear)
	require.NoError(t, err)

	for _, tv := range []float64{0, 0.25, 0.5, 0.75, 1.0} {
		out := p.GetOutput(tv, 1.0)
		require.Len(t, out, 2)
		assert.InDelta(t, 1.0, sum(out), 1e-9)
	}

	out := p.GetOutput(0.75, 1.0)
	assert.Equal(t, 0, out[0].ShapeIndex)
	assert.InDelta(t, 0.25, out[0].Weight, 1e-9)
	assert.Equal(t, 1, out[1].ShapeIndex)
	assert.InDelta(t, 0.75, out[1].Weight, 1e-9)
}

func TestLinearClampsOutsideRange(t *testing.T) {
	p, err := progression.New("p", []progression.Pair{{0, 0}, {1, 1}}, progression.Linear)
	require.NoError(t, err)

	out := p.GetOutput(2.0, 1.0)
	assert.InDelta(t, -1.0, out[0].Weight, 1e-9)
	assert.InDelta(t, 2.0, out[1].Weight, 1e-9)
}

func TestSplinePartitionOfUnityInRange(t *testing.T) {
	p, err := progression.New("p", []progression.Pair{
		{0, 0}, {1, 0.25}, {2, 0.5}, {3, 0.75}, {4, 1.0},
	}, progression.Spline)
	require.NoError(t, err)

	for _, tv := range []float64{0.1, 0.3, 0.5, 0.6, 0.9} {
		out := p.GetOutput(tv, 1.0)
		assert.InDelta(t, 1.0, sum(out), 1e-9, "t=%v", tv)
	}
}

func TestSplineFallsBackToLinearWithFewPairs(t *testing.T) {
	p, err := progression.New("p", []progression.Pair{{0, 0}, {1, 1}}, progression.Spline)
	require.NoError(t, err)

	out := p.GetOutput(0.5, 1.0)
	require.Len(t, out, 2)
	assert.InDelta(t, 1.0, sum(out), 1e-9)
}

func TestSplitSplineNeverCrossesZero(t *testing.T) {
	p, err := progression.New("p", []progression.Pair{
		{0, -1}, {1, -0.5}, {2, 0}, {3, 0.5}, {4, 1},
	}, progression.SplitSpline)
	require.NoError(t, err)

	posOut := p.GetOutput(0.25, 1.0)
	for _, c := range posOut {
		// every contributing pair must come from a non-negative parameter
		found := false
		for _, pr := range p.Pairs {
			if pr.ShapeIndex == c.ShapeIndex && pr.Param >= 0 {
				found = true
			}
		}
		assert.True(t, found, "shape %d should only draw from non-negative pairs", c.ShapeIndex)
	}
}
