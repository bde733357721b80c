// SPDX-License-Identifier: MIT
package linalg

import "errors"

// ErrDimensionMismatch indicates a and b (or a matrix and a vector) have
// incompatible shapes for the requested operation, or that NewDense was
// asked for a non-positive dimension.
var ErrDimensionMismatch = errors.New("linalg: dimension mismatch")

// ErrNonSquare indicates a square matrix was required but the input wasn't.
var ErrNonSquare = errors.New("linalg: matrix is not square")

// ErrOutOfRange indicates a row or column index outside the matrix bounds.
var ErrOutOfRange = errors.New("linalg: index out of range")
