// SPDX-License-Identifier: MIT
package progression

import "errors"

// ErrDuplicateParam indicates two pairs in the same progression share a
// parameter value; the progression's ordering (and therefore its interval
// lookup) would be ambiguous.
var ErrDuplicateParam = errors.New("progression: duplicate pair parameter")

// ErrNoPairs indicates a progression was constructed with zero pairs; it
// can never contribute a shape and is rejected rather than silently
// producing an empty output on every solve.
var ErrNoPairs = errors.New("progression: no pairs")
