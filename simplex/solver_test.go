// SPDX-License-Identifier: MIT
package simplex_test

import (
	"testing"

	"github.com/rigcore/simplex/progression"
	"github.com/rigcore/simplex/shape"
	"github.com/rigcore/simplex/simplex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// linProg builds a two-pair (rest, target) linear progression, the shape
// every slider-only scenario below drives.
func linProg(t *testing.T, targetShape int) progression.Progression {
	t.Helper()
	p, err := progression.New("p", []progression.Pair{{ShapeIndex: 0, Param: 0}, {ShapeIndex: targetShape, Param: 1}}, progression.Linear)
	require.NoError(t, err)
	return p
}

func TestNeutralInputYieldsRestOnly(t *testing.T) {
	s := simplex.New()
	s.Shapes = []shape.Shape{shape.New("rest", 0), shape.New("A", 1)}
	pa := linProg(t, 1)
	s.Progs = []progression.Progression{pa}
	s.Sliders = []*simplex.Slider{simplex.NewSlider("Sa", 0, &s.Progs[0])}
	s.Build()

	out := s.Solve([]float64{0})
	require.Len(t, out, 2)
	assert.InDelta(t, 1.0, out[0], 1e-9)
	assert.InDelta(t, 0.0, out[1], 1e-9)
}

func TestSliderIdentity(t *testing.T) {
	s := simplex.New()
	s.Shapes = []shape.Shape{shape.New("rest", 0), shape.New("A", 1)}
	pa := linProg(t, 1)
	s.Progs = []progression.Progression{pa}
	s.Sliders = []*simplex.Slider{simplex.NewSlider("Sa", 0, &s.Progs[0])}
	s.Build()

	out := s.Solve([]float64{1.0})
	assert.InDelta(t, 1.0, out[1], 1e-9)
	assert.InDelta(t, 0.0, out[0], 1e-9)
}

func TestComboOrthantGating(t *testing.T) {
	s := simplex.New()
	s.Shapes = []shape.Shape{shape.New("rest", 0), shape.New("A", 1), shape.New("B", 2), shape.New("AB", 3)}
	pa := linProg(t, 1)
	pb := linProg(t, 2)
	pab, err := progression.New("pab", []progression.Pair{{ShapeIndex: 0, Param: 0}, {ShapeIndex: 3, Param: 1}}, progression.Linear)
	require.NoError(t, err)
	s.Progs = []progression.Progression{pa, pb, pab}
	sa := simplex.NewSlider("Sa", 0, &s.Progs[0])
	sb := simplex.NewSlider("Sb", 1, &s.Progs[1])
	s.Sliders = []*simplex.Slider{sa, sb}
	combo, err := simplex.NewCombo("AB", 0, &s.Progs[2], []simplex.ComboPair{{SliderIndex: 0, Target: 1}, {SliderIndex: 1, Target: 1}}, simplex.SolveMin)
	require.NoError(t, err)
	s.Combos = []*simplex.Combo{combo}
	s.Build()

	out := s.Solve([]float64{1, -1})
	assert.InDelta(t, 0.0, out[3], 1e-9, "combo should be inactive on a sign mismatch")
}

func TestExactCombo(t *testing.T) {
	s := simplex.New()
	s.Shapes = []shape.Shape{shape.New("rest", 0), shape.New("A", 1), shape.New("B", 2), shape.New("AB", 3)}
	pa := linProg(t, 1)
	pb := linProg(t, 2)
	pab, err := progression.New("pab", []progression.Pair{{ShapeIndex: 0, Param: 0}, {ShapeIndex: 3, Param: 1}}, progression.Linear)
	require.NoError(t, err)
	s.Progs = []progression.Progression{pa, pb, pab}
	sa := simplex.NewSlider("Sa", 0, &s.Progs[0])
	sb := simplex.NewSlider("Sb", 1, &s.Progs[1])
	s.Sliders = []*simplex.Slider{sa, sb}
	combo, err := simplex.NewCombo("AB", 0, &s.Progs[2], []simplex.ComboPair{{SliderIndex: 0, Target: 1}, {SliderIndex: 1, Target: 1}}, simplex.SolveMin)
	require.NoError(t, err)
	s.Combos = []*simplex.Combo{combo}
	s.SetExactSolve(true)
	s.Build()

	out := s.Solve([]float64{1, 1})
	assert.InDelta(t, 1.0, out[1], 1e-9)
	assert.InDelta(t, 1.0, out[2], 1e-9)
	assert.InDelta(t, 1.0, out[3], 1e-9)
}

func TestExactVsSoftMin(t *testing.T) {
	s := simplex.New()
	s.Shapes = []shape.Shape{shape.New("rest", 0), shape.New("AB", 1)}
	pab, err := progression.New("pab", []progression.Pair{{ShapeIndex: 0, Param: 0}, {ShapeIndex: 1, Param: 1}}, progression.Linear)
	require.NoError(t, err)
	s.Progs = []progression.Progression{pab}
	sa := simplex.NewSlider("Sa", 0, nil)
	sb := simplex.NewSlider("Sb", 1, nil)
	s.Sliders = []*simplex.Slider{sa, sb}
	combo, err := simplex.NewCombo("AB", 0, &s.Progs[0], []simplex.ComboPair{{SliderIndex: 0, Target: 1}, {SliderIndex: 1, Target: 1}}, simplex.SolveMin)
	require.NoError(t, err)
	s.Combos = []*simplex.Combo{combo}
	s.Build()

	s.SetExactSolve(true)
	out := s.Solve([]float64{1, 1})
	assert.InDelta(t, 1.0, out[1], 1e-9)

	s.SetExactSolve(false)
	out = s.Solve([]float64{1, 1})
	assert.Greater(t, out[1], 0.99)
	assert.LessOrEqual(t, out[1], 1.00)
}

func TestFloaterEndToEnd(t *testing.T) {
	s := simplex.New()
	s.Shapes = []shape.Shape{shape.New("rest", 0), shape.New("F", 1)}
	pf, err := progression.New("pf", []progression.Pair{{ShapeIndex: 0, Param: 0}, {ShapeIndex: 1, Param: 1}}, progression.Linear)
	require.NoError(t, err)
	s.Progs = []progression.Progression{pf}
	sa := simplex.NewSlider("Sa", 0, nil)
	sb := simplex.NewSlider("Sb", 1, nil)
	s.Sliders = []*simplex.Slider{sa, sb}
	floater, err := simplex.NewCombo("F", 0, &s.Progs[0], []simplex.ComboPair{{SliderIndex: 0, Target: 0.5}, {SliderIndex: 1, Target: 0.5}}, simplex.SolveNone)
	require.NoError(t, err)
	require.True(t, floater.IsFloater)
	s.Floaters = []*simplex.Combo{floater}
	s.Build()
	require.Len(t, s.Spaces, 1)

	out := s.Solve([]float64{0.5, 0.5})
	assert.InDelta(t, 1.0, out[1], 1e-9)

	out = s.Solve([]float64{0.25, 0.25})
	assert.InDelta(t, 0.5, out[1], 1e-9)
}

func TestTraversalCurrentForm(t *testing.T) {
	s := simplex.New()
	s.Shapes = []shape.Shape{shape.New("rest", 0), shape.New("T", 1)}
	pt, err := progression.New("pt", []progression.Pair{{ShapeIndex: 0, Param: 0}, {ShapeIndex: 1, Param: 1}}, progression.Linear)
	require.NoError(t, err)
	s.Progs = []progression.Progression{pt}
	sa := simplex.NewSlider("Sa", 0, nil)
	sb := simplex.NewSlider("Sb", 1, nil)
	s.Sliders = []*simplex.Slider{sa, sb}

	trav := simplex.NewTraversalCurrent("T", 0, &s.Progs[0],
		[]simplex.EndpointPair{{SliderIndex: 0, Value: 0}, {SliderIndex: 1, Value: 1}},
		[]simplex.EndpointPair{{SliderIndex: 0, Value: 1}, {SliderIndex: 1, Value: 1}},
		simplex.SolveMin)
	s.Traversals = []*simplex.Traversal{trav}
	s.Build()

	out := s.Solve([]float64{0.4, 1.0})
	assert.InDelta(t, 0.4, out[1], 1e-9)
}

func TestClearValuesResetsWithoutRebuild(t *testing.T) {
	s := simplex.New()
	s.Shapes = []shape.Shape{shape.New("rest", 0), shape.New("A", 1)}
	pa := linProg(t, 1)
	s.Progs = []progression.Progression{pa}
	sl := simplex.NewSlider("Sa", 0, &s.Progs[0])
	s.Sliders = []*simplex.Slider{sl}
	s.Build()

	s.Solve([]float64{1.0})
	assert.InDelta(t, 1.0, sl.Value(), 1e-9)

	s.ClearValues()
	assert.InDelta(t, 0.0, sl.Value(), 1e-9)
	assert.True(t, s.Built, "ClearValues must not un-build the solver")
}
