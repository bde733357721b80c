// SPDX-License-Identifier: MIT
package parser

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// templates gives a minimal, valid v2/v3 skeleton for each section, used
// only to render a human-readable diff against whatever fragment actually
// failed to parse. It is not a schema validator; it exists so ParseError's
// Detail() has something concrete to line up against for a human reading
// a rejected document.
var templates = map[string]string{
	"shapes":       `{"name": "shapeName"}`,
	"progressions": `{"name": "progName", "pairs": [[0, 0.0]], "interp": "spline"}`,
	"sliders":      `{"name": "sliderName", "prog": 0}`,
	"combos":       `{"name": "comboName", "prog": 0, "pairs": [[0, 1.0]]}`,
	"traversals":   `{"name": "travName", "prog": 0, "start": [[0, 0.0]], "end": [[0, 1.0]]}`,
}

// renderDiff produces a unified diff between the offending fragment and
// the section's minimal valid template, so a human can see at a glance
// which keys are missing or misspelled.
func renderDiff(section, fragment string) string {
	tmpl, ok := templates[section]
	if !ok {
		return fragment
	}
	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(tmpl),
		B:        difflib.SplitLines(fragment),
		FromFile: "expected " + section + " element",
		ToFile:   "actual element",
		Context:  3,
	}
	out, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		return fragment
	}
	return strings.TrimRight(out, "\n")
}
