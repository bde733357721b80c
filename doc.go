// Package rigcore is a facial-rig blendshape combination engine: it parses
// a rig definition document into sliders, combos, floaters and traversals,
// and evaluates a raw slider vector into a dense shape-weight output.
//
// Sparse "floater" combos — shapes only defined at a handful of slider
// combinations rather than a fixed formula — are resolved geometrically:
// floaters that share a slider span and orthant are grouped into a
// triangulated subspace and interpolated with barycentric coordinates, so
// a slider value between two authored floaters blends smoothly between
// them instead of jumping.
//
// Package layout:
//
//	numeric/    — rectification, soft-min and epsilon-aware scalar helpers
//	shape/      — the named, indexed output-vector target
//	progression/ — per-shape output curves (linear/spline/split-spline)
//	linalg/     — small dense-matrix QR solve used by trispace
//	trispace/   — floater grouping and barycentric interpolation
//	simplex/    — Slider/Combo/Traversal controllers and the top-level Solver
//	parser/     — JSON rig-document decoding (schema v1/v2/v3)
//	cmd/simplexctl/ — a small interactive shell over the library
package rigcore
