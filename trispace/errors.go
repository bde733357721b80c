// SPDX-License-Identifier: MIT
package trispace

import "errors"

// ErrDimensionMismatch indicates a floater's target vector length disagrees
// with the slider-index list it was declared against.
var ErrDimensionMismatch = errors.New("trispace: dimension mismatch")
