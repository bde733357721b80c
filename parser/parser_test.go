// SPDX-License-Identifier: MIT
package parser_test

import (
	"testing"

	"github.com/rigcore/simplex/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const twoSliderDoc = `{
	"encodingVersion": 2,
	"shapes": [{"name":"rest"},{"name":"A"},{"name":"B"}],
	"progressions": [
		{"name":"pa","pairs":[[0,0],[1,1]],"interp":"linear"},
		{"name":"pb","pairs":[[0,0],[2,1]],"interp":"linear"}
	],
	"sliders": [
		{"name":"Sa","prog":0},
		{"name":"Sb","prog":1}
	]
}`

func TestLoadV2TwoSliders(t *testing.T) {
	solver, result, err := parser.Load(twoSliderDoc)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, 2, result.EncodingVersion)
	assert.True(t, solver.Loaded)
	assert.Len(t, solver.Shapes, 3)
	assert.Len(t, solver.Sliders, 2)

	solver.Build()
	out := solver.Solve([]float64{1.0, 0.0})
	assert.InDelta(t, 1.0, out[1], 1e-9)
	assert.InDelta(t, 0.0, out[2], 1e-9)
}

func TestLoadRoundTripIsDeterministic(t *testing.T) {
	s1, _, err := parser.Load(twoSliderDoc)
	require.NoError(t, err)
	s2, _, err := parser.Load(twoSliderDoc)
	require.NoError(t, err)

	assert.Equal(t, len(s1.Shapes), len(s2.Shapes))
	assert.Equal(t, len(s1.Progs), len(s2.Progs))
	assert.Equal(t, len(s1.Sliders), len(s2.Sliders))
	for i := range s1.Sliders {
		assert.Equal(t, s1.Sliders[i].Index, s2.Sliders[i].Index)
		assert.Equal(t, s1.Sliders[i].Prog.Name, s2.Sliders[i].Prog.Name)
	}
}

func TestLoadRejectsMalformedJSON(t *testing.T) {
	solver, _, err := parser.Load(`{"shapes": [`)
	require.Error(t, err)
	var pe *parser.ParseError
	require.ErrorAs(t, err, &pe)
	assert.False(t, solver.Loaded)
}

func TestLoadRejectsOutOfRangeSliderProgIndex(t *testing.T) {
	doc := `{
		"encodingVersion": 2,
		"shapes": [{"name":"rest"}],
		"progressions": [{"name":"p","pairs":[[0,0],[0,1]],"interp":"linear"}],
		"sliders": [{"name":"Sa","prog":5}]
	}`
	_, _, err := parser.Load(doc)
	require.Error(t, err)
	var pe *parser.ParseError
	require.ErrorAs(t, err, &pe)
}

func TestLoadFloaterCombo(t *testing.T) {
	doc := `{
		"encodingVersion": 2,
		"shapes": [{"name":"rest"},{"name":"F"}],
		"progressions": [
			{"name":"pa","pairs":[[0,0],[1,1]],"interp":"linear"},
			{"name":"pb","pairs":[[0,0],[1,1]],"interp":"linear"},
			{"name":"pf","pairs":[[0,0],[1,1]],"interp":"linear"}
		],
		"sliders": [
			{"name":"Sa","prog":0},
			{"name":"Sb","prog":1}
		],
		"combos": [
			{"name":"F","prog":2,"pairs":[[0,0.5],[1,0.5]]}
		]
	}`
	solver, _, err := parser.Load(doc)
	require.NoError(t, err)
	require.Len(t, solver.Floaters, 1)
	require.Len(t, solver.Combos, 0)

	solver.Build()
	require.Len(t, solver.Spaces, 1)
	out := solver.Solve([]float64{0.5, 0.5})
	// pa and pb also map shape F at parameter 1, so Sa and Sb each add 0.5
	// on top of the floater's own weight of 1.
	assert.InDelta(t, 2.0, out[1], 1e-9)
}
