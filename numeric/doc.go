// SPDX-License-Identifier: MIT
// Package numeric collects the small floating-point primitives shared by
// every other package in this module: epsilon-tolerant comparisons, the
// sign-rectification step that turns a raw signed input vector into
// magnitude/clamp/sign triples, the soft-min used by inexact combo solves,
// and a deterministic hash for integer-vector keys.
//
// Only Rectify allocates (its three freshly made output slices), and
// nothing here is safe or unsafe for concurrent use beyond what a pure
// function already implies: call these from as many goroutines as you like,
// on disjoint inputs.
package numeric
