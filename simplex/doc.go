// SPDX-License-Identifier: MIT

// Package simplex implements the blendshape combination solver: sliders,
// combos, floaters, and traversals accumulate progression-driven shape
// weights into a single output vector each solve.
//
// The four controller kinds are kept in their own typed slices on Solver
// rather than behind a shared interface — each solve pass iterates each
// slice by category in the fixed order sliders, combos, TriSpaces
// (floaters), traversals, so there is never a need to recover a concrete
// type from a polymorphic handle. Every controller embeds base, which
// holds the transient value/multiplier state reset at the start of every
// solve and the shared progression-accumulation step.
//
// simplex depends on trispace and linalg for floater resolution but never
// the reverse, mirroring the one-directional dependency trispace's package
// doc already states.
package simplex
