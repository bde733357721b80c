// SPDX-License-Identifier: MIT

// Package shape defines the Shape entity: a named target pose addressed by
// its dense position in the output weight vector. Shapes are immutable
// once parsed and are owned exclusively by the top-level solver container;
// every other package references a Shape by its Index, never by pointer.
package shape

// Shape is a named, indexed target pose.
type Shape struct {
	Name  string
	Index int
}

// New constructs a Shape at the given output-vector position.
func New(name string, index int) Shape {
	return Shape{Name: name, Index: index}
}
