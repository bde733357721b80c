// SPDX-License-Identifier: MIT
package parser

import "errors"

// ErrUnsupportedEncoding indicates the document's encodingVersion is not
// one this parser knows how to dispatch (1, 2, or 3).
var ErrUnsupportedEncoding = errors.New("parser: unsupported encoding version")

// ErrSchemaViolation indicates a structurally parseable element is missing
// a required field, has the wrong type, or references an out-of-range
// index. It is always reported wrapped inside a *ParseError.
var ErrSchemaViolation = errors.New("parser: schema violation")

// ErrMissingSection indicates the document is missing one of the three
// required top-level arrays (shapes, progressions, sliders).
var ErrMissingSection = errors.New("parser: missing required section")
