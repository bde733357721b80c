// SPDX-License-Identifier: MIT
package simplex

import "github.com/rigcore/simplex/progression"

// Slider is the only controller kind that reads the raw signed input
// directly; every other kind derives its value from one or more sliders.
type Slider struct {
	base
}

// NewSlider constructs a Slider at the given slider-arena index, driving
// prog. index addresses both the solver's Sliders slice and the raw input
// vector passed to Solve.
func NewSlider(name string, index int, prog *progression.Progression) *Slider {
	return &Slider{base: newBase(name, index, prog)}
}

// storeValue sets the slider's value to its own entry in the raw input,
// unrectified: sliders are the sign-carrying source every combo and
// traversal reads through.
func (s *Slider) storeValue(raw []float64) {
	if !s.Enabled {
		return
	}
	s.value = raw[s.Index]
}
