// SPDX-License-Identifier: MIT

// Package parser turns a rig definition document (JSON, schema v1/v2/v3)
// into a *simplex.Solver. Parsing is all-or-nothing: the first element
// that fails to parse aborts the whole document, and the returned Solver
// is left cleared with its ParseError/ParseErrorOffset fields set.
package parser

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rigcore/simplex/progression"
	"github.com/rigcore/simplex/shape"
	"github.com/rigcore/simplex/simplex"
)

// ParseError is the error surface returned by Load. It carries a
// human-readable message and the character offset the failure was
// detected at (byte offset into the document for a JSON syntax error;
// zero for a schema-level violation detected after successful JSON
// decoding, since encoding/json does not track element positions).
type ParseError struct {
	Message  string
	Offset   int
	section  string
	fragment string
	err      error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s (offset %d)", e.Message, e.Offset)
}

// Unwrap exposes the sentinel this failure originated from (one of
// ErrUnsupportedEncoding, ErrSchemaViolation, ErrMissingSection, or a
// simplex/progression sentinel), so callers can use errors.Is against it
// directly instead of matching on Message text.
func (e *ParseError) Unwrap() error { return e.err }

// Detail renders a unified diff between the offending fragment and a
// minimal valid template for its section, when one is known.
func (e *ParseError) Detail() string {
	if e.fragment == "" {
		return e.Message
	}
	return renderDiff(e.section, e.fragment)
}

// LoadResult carries per-attempt metadata a host can correlate with its
// own logs, independent of whether the parse succeeded.
type LoadResult struct {
	SessionID       uuid.UUID
	EncodingVersion int
}

type rawDoc struct {
	EncodingVersion int               `json:"encodingVersion"`
	Shapes          []json.RawMessage `json:"shapes"`
	Progressions    []json.RawMessage `json:"progressions"`
	Sliders         []json.RawMessage `json:"sliders"`
	Combos          []json.RawMessage `json:"combos"`
	Traversals      []json.RawMessage `json:"traversals"`
}

// Load parses definition into a fresh *simplex.Solver. On success the
// solver's Loaded flag is set true; Build is never called automatically —
// callers decide when to pay triangulation cost.
func Load(definition string, opts ...Option) (*simplex.Solver, *LoadResult, error) {
	cfg := &config{}
	for _, o := range opts {
		o(cfg)
	}

	result := &LoadResult{SessionID: uuid.New()}
	solver := simplex.New()

	dec := json.NewDecoder(strings.NewReader(definition))
	var raw rawDoc
	if err := dec.Decode(&raw); err != nil {
		return failDoc(solver, result, err, int(dec.InputOffset()), "", "")
	}
	if raw.Shapes == nil || raw.Progressions == nil || raw.Sliders == nil {
		return failDoc(solver, result, ErrMissingSection, 0, "", "")
	}

	version := raw.EncodingVersion
	if version == 0 {
		version = 1
	}
	result.EncodingVersion = version
	if version < 1 || version > 3 {
		err := fmt.Errorf("%w: encodingVersion %d", ErrUnsupportedEncoding, version)
		return failDoc(solver, result, err, 0, "", "")
	}

	for i, rm := range raw.Shapes {
		name, err := parseShapeName(version, rm)
		if err != nil {
			return failDoc(solver, result, err, 0, "shapes", string(rm))
		}
		solver.Shapes = append(solver.Shapes, shape.New(name, i))
	}

	for _, rm := range raw.Progressions {
		prog, err := parseProgression(version, rm, len(solver.Shapes))
		if err != nil {
			return failDoc(solver, result, err, 0, "progressions", string(rm))
		}
		solver.Progs = append(solver.Progs, prog)
	}

	for i, rm := range raw.Sliders {
		name, progIdx, enabled, err := parseSlider(version, rm)
		if err != nil {
			return failDoc(solver, result, err, 0, "sliders", string(rm))
		}
		if progIdx < 0 || progIdx >= len(solver.Progs) {
			err := fmt.Errorf("%w: prog index out of range", ErrSchemaViolation)
			return failDoc(solver, result, err, 0, "sliders", string(rm))
		}
		sl := simplex.NewSlider(name, i, &solver.Progs[progIdx])
		sl.Enabled = enabled
		solver.Sliders = append(solver.Sliders, sl)
	}

	comboIdx := 0
	for _, rm := range raw.Combos {
		name, progIdx, pairs, solveType, enabled, err := parseCombo(version, rm, len(solver.Sliders), cfg)
		if err != nil {
			return failDoc(solver, result, err, 0, "combos", string(rm))
		}
		if progIdx < 0 || progIdx >= len(solver.Progs) {
			err := fmt.Errorf("%w: prog index out of range", ErrSchemaViolation)
			return failDoc(solver, result, err, 0, "combos", string(rm))
		}
		c, err := simplex.NewCombo(name, comboIdx, &solver.Progs[progIdx], pairs, solveType)
		if err != nil {
			return failDoc(solver, result, err, 0, "combos", string(rm))
		}
		c.Enabled = enabled
		if c.IsFloater {
			solver.Floaters = append(solver.Floaters, c)
		} else {
			solver.Combos = append(solver.Combos, c)
		}
		comboIdx++
	}

	travIdx := 0
	for _, rm := range raw.Traversals {
		trav, err := parseTraversal(version, rm, solver, cfg)
		if err != nil {
			return failDoc(solver, result, err, 0, "traversals", string(rm))
		}
		trav.Index = travIdx
		solver.Traversals = append(solver.Traversals, trav)
		travIdx++
	}

	solver.Loaded = true
	return solver, result, nil
}

func failDoc(solver *simplex.Solver, result *LoadResult, err error, offset int, section, fragment string) (*simplex.Solver, *LoadResult, error) {
	pe := &ParseError{Message: err.Error(), Offset: offset, section: section, fragment: fragment, err: err}
	solver.Clear()
	solver.ParseError = pe.Message
	solver.ParseErrorOffset = pe.Offset
	return solver, result, pe
}

func parseInterp(s string) progression.Interp {
	switch s {
	case "linear":
		return progression.Linear
	case "splitspline":
		return progression.SplitSpline
	default:
		return progression.Spline
	}
}

func parseSolveType(s string, strict bool) (simplex.SolveType, error) {
	switch s {
	case "", "None":
		return simplex.SolveNone, nil
	case "min":
		return simplex.SolveMin, nil
	case "allMul":
		return simplex.SolveAllMul, nil
	case "extMul":
		return simplex.SolveExtMul, nil
	case "mulAvgExt":
		return simplex.SolveMulAvgExt, nil
	case "mulAvgAll":
		return simplex.SolveMulAvgAll, nil
	default:
		if strict {
			return simplex.SolveNone, fmt.Errorf("%w: unknown solveType %q", ErrSchemaViolation, s)
		}
		return simplex.SolveNone, nil
	}
}
