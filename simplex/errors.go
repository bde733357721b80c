// SPDX-License-Identifier: MIT
package simplex

import "errors"

// ErrEmptyStateList indicates a Combo was constructed with no (slider,
// target) pairs; it could never activate. The Traversal constructors do
// not return it.
var ErrEmptyStateList = errors.New("simplex: empty state list")
