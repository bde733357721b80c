// SPDX-License-Identifier: MIT

// Package trispace implements the geometric engine behind floater
// resolution: grouping floaters that share a slider set and orthant into a
// TriSpace, implicitly triangulating that orthant into Schläfli
// orthoschemes, splitting the orthoschemes containing user-placed floater
// targets, and resolving an input point to barycentric weights on the
// containing sub-simplex.
//
// This package knows nothing about Slider, Combo, or the rest of the
// solver's controller graph — it consumes plain FloaterSpec descriptors
// (a target point, the slider indices it spans, and an opaque external
// index the caller uses to identify the floater) and returns plain
// index->weight maps. That keeps the dependency direction one-way: the
// domain layer (package simplex) imports trispace, never the reverse.
package trispace
