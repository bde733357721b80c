// SPDX-License-Identifier: MIT
package parser

import (
	"encoding/json"
	"fmt"

	"github.com/rigcore/simplex/progression"
	"github.com/rigcore/simplex/simplex"
)

func parseShapeName(version int, rm json.RawMessage) (string, error) {
	if version == 1 {
		var name string
		if err := json.Unmarshal(rm, &name); err != nil {
			return "", fmt.Errorf("%w: shape must be a string in v1 (%v)", ErrSchemaViolation, err)
		}
		return name, nil
	}
	var obj struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(rm, &obj); err != nil || obj.Name == "" {
		return "", fmt.Errorf("%w: shape must be {name}", ErrSchemaViolation)
	}
	return obj.Name, nil
}

func parseProgression(version int, rm json.RawMessage, shapeCount int) (progression.Progression, error) {
	var name string
	var pairs []progression.Pair
	var interp progression.Interp

	if version == 1 {
		var arr []json.RawMessage
		if err := json.Unmarshal(rm, &arr); err != nil || len(arr) < 3 {
			return progression.Progression{}, fmt.Errorf("%w: progression v1 needs [name, indices, params, interp?]", ErrSchemaViolation)
		}
		if err := json.Unmarshal(arr[0], &name); err != nil {
			return progression.Progression{}, fmt.Errorf("%w: progression name must be a string", ErrSchemaViolation)
		}
		var idxs []int
		var params []float64
		if err := json.Unmarshal(arr[1], &idxs); err != nil {
			return progression.Progression{}, fmt.Errorf("%w: progression shape indices must be [int]", ErrSchemaViolation)
		}
		if err := json.Unmarshal(arr[2], &params); err != nil {
			return progression.Progression{}, fmt.Errorf("%w: progression params must be [number]", ErrSchemaViolation)
		}
		if len(idxs) != len(params) {
			return progression.Progression{}, fmt.Errorf("%w: progression indices/params length mismatch", ErrSchemaViolation)
		}
		interp = progression.Spline
		if len(arr) > 3 {
			var interpStr string
			if err := json.Unmarshal(arr[3], &interpStr); err == nil {
				interp = parseInterp(interpStr)
			}
		}
		for i := range idxs {
			if idxs[i] < 0 || idxs[i] >= shapeCount {
				return progression.Progression{}, fmt.Errorf("%w: progression shape index out of range", ErrSchemaViolation)
			}
			pairs = append(pairs, progression.Pair{ShapeIndex: idxs[i], Param: params[i]})
		}
	} else {
		var obj struct {
			Name   string       `json:"name"`
			Pairs  [][2]float64 `json:"pairs"`
			Interp string       `json:"interp"`
		}
		if err := json.Unmarshal(rm, &obj); err != nil || obj.Name == "" || len(obj.Pairs) == 0 {
			return progression.Progression{}, fmt.Errorf("%w: progression must be {name, pairs, interp?}", ErrSchemaViolation)
		}
		name = obj.Name
		interp = parseInterp(obj.Interp)
		for _, p := range obj.Pairs {
			idx := int(p[0])
			if idx < 0 || idx >= shapeCount {
				return progression.Progression{}, fmt.Errorf("%w: progression shape index out of range", ErrSchemaViolation)
			}
			pairs = append(pairs, progression.Pair{ShapeIndex: idx, Param: p[1]})
		}
	}

	prog, err := progression.New(name, pairs, interp)
	if err != nil {
		return progression.Progression{}, err
	}
	return prog, nil
}

func parseSlider(version int, rm json.RawMessage) (name string, progIdx int, enabled bool, err error) {
	enabled = true
	if version == 1 {
		var arr []json.RawMessage
		if uErr := json.Unmarshal(rm, &arr); uErr != nil || len(arr) != 2 {
			return "", 0, false, fmt.Errorf("%w: slider v1 needs [name, progIdx]", ErrSchemaViolation)
		}
		if uErr := json.Unmarshal(arr[0], &name); uErr != nil {
			return "", 0, false, fmt.Errorf("%w: slider name must be a string", ErrSchemaViolation)
		}
		if uErr := json.Unmarshal(arr[1], &progIdx); uErr != nil {
			return "", 0, false, fmt.Errorf("%w: slider progIdx must be an int", ErrSchemaViolation)
		}
		return name, progIdx, true, nil
	}
	var obj struct {
		Name    string `json:"name"`
		Prog    int    `json:"prog"`
		Enabled *bool  `json:"enabled"`
	}
	if uErr := json.Unmarshal(rm, &obj); uErr != nil || obj.Name == "" {
		return "", 0, false, fmt.Errorf("%w: slider must be {name, prog, enabled?}", ErrSchemaViolation)
	}
	if obj.Enabled != nil {
		enabled = *obj.Enabled
	}
	return obj.Name, obj.Prog, enabled, nil
}

func parseCombo(version int, rm json.RawMessage, sliderCount int, cfg *config) (name string, progIdx int, pairs []simplex.ComboPair, solveType simplex.SolveType, enabled bool, err error) {
	enabled = true
	var rawPairs [][2]float64

	if version == 1 {
		var arr []json.RawMessage
		if uErr := json.Unmarshal(rm, &arr); uErr != nil || len(arr) != 3 {
			return "", 0, nil, 0, false, fmt.Errorf("%w: combo v1 needs [name, progIdx, pairs]", ErrSchemaViolation)
		}
		if uErr := json.Unmarshal(arr[0], &name); uErr != nil {
			return "", 0, nil, 0, false, fmt.Errorf("%w: combo name must be a string", ErrSchemaViolation)
		}
		if uErr := json.Unmarshal(arr[1], &progIdx); uErr != nil {
			return "", 0, nil, 0, false, fmt.Errorf("%w: combo progIdx must be an int", ErrSchemaViolation)
		}
		if uErr := json.Unmarshal(arr[2], &rawPairs); uErr != nil {
			return "", 0, nil, 0, false, fmt.Errorf("%w: combo pairs must be [[sliderIdx, value]]", ErrSchemaViolation)
		}
		solveType = simplex.SolveNone
	} else {
		var obj struct {
			Name      string       `json:"name"`
			Prog      int          `json:"prog"`
			Pairs     [][2]float64 `json:"pairs"`
			SolveType string       `json:"solveType"`
			Enabled   *bool        `json:"enabled"`
		}
		if uErr := json.Unmarshal(rm, &obj); uErr != nil || obj.Name == "" || len(obj.Pairs) == 0 {
			return "", 0, nil, 0, false, fmt.Errorf("%w: combo must be {name, prog, pairs, solveType?, enabled?}", ErrSchemaViolation)
		}
		name = obj.Name
		progIdx = obj.Prog
		rawPairs = obj.Pairs
		if obj.Enabled != nil {
			enabled = *obj.Enabled
		}
		solveType, err = parseSolveType(obj.SolveType, cfg.strictSchema)
		if err != nil {
			return "", 0, nil, 0, false, err
		}
	}

	for _, p := range rawPairs {
		idx := int(p[0])
		if idx < 0 || idx >= sliderCount {
			return "", 0, nil, 0, false, fmt.Errorf("%w: combo slider index out of range", ErrSchemaViolation)
		}
		pairs = append(pairs, simplex.ComboPair{SliderIndex: idx, Target: p[1]})
	}
	return name, progIdx, pairs, solveType, enabled, nil
}

func parseTraversal(version int, rm json.RawMessage, solver *simplex.Solver, cfg *config) (*simplex.Traversal, error) {
	var obj struct {
		Name              string       `json:"name"`
		Prog              int          `json:"prog"`
		ProgressType      *string      `json:"progressType"`
		ProgressControl   *int         `json:"progressControl"`
		ProgressFlip      bool         `json:"progressFlip"`
		MultiplierType    *string      `json:"multiplierType"`
		MultiplierControl *int         `json:"multiplierControl"`
		MultiplierFlip    bool         `json:"multiplierFlip"`
		Start             [][2]float64 `json:"start"`
		End               [][2]float64 `json:"end"`
		SolveType         string       `json:"solveType"`
		Enabled           *bool        `json:"enabled"`
	}
	if err := json.Unmarshal(rm, &obj); err != nil || obj.Name == "" {
		return nil, fmt.Errorf("%w: traversal element malformed", ErrSchemaViolation)
	}
	if obj.Prog < 0 || obj.Prog >= len(solver.Progs) {
		return nil, fmt.Errorf("%w: traversal prog index out of range", ErrSchemaViolation)
	}
	prog := &solver.Progs[obj.Prog]
	enabled := true
	if obj.Enabled != nil {
		enabled = *obj.Enabled
	}

	// v3 current-form: identified by the presence of start/end endpoint lists.
	if version == 3 && obj.Start != nil && obj.End != nil {
		solveType, err := parseSolveType(obj.SolveType, cfg.strictSchema)
		if err != nil {
			return nil, err
		}
		start, err := toEndpointPairs(obj.Start, len(solver.Sliders))
		if err != nil {
			return nil, err
		}
		end, err := toEndpointPairs(obj.End, len(solver.Sliders))
		if err != nil {
			return nil, err
		}
		trav := simplex.NewTraversalCurrent(obj.Name, 0, prog, start, end, solveType)
		trav.Enabled = enabled
		return trav, nil
	}

	// v1/v2 legacy form: a single progress control and a single multiplier
	// control, each resolved via its type string's first character.
	if obj.ProgressType == nil || obj.ProgressControl == nil || obj.MultiplierType == nil || obj.MultiplierControl == nil {
		return nil, fmt.Errorf("%w: legacy traversal needs progressType/progressControl/multiplierType/multiplierControl", ErrSchemaViolation)
	}
	progressCtrl, err := resolveLegacyControl(*obj.ProgressType, *obj.ProgressControl, solver)
	if err != nil {
		return nil, err
	}
	multCtrl, err := resolveLegacyControl(*obj.MultiplierType, *obj.MultiplierControl, solver)
	if err != nil {
		return nil, err
	}
	trav := simplex.NewTraversalLegacy(obj.Name, 0, prog, progressCtrl, multCtrl, obj.ProgressFlip, obj.MultiplierFlip)
	trav.Enabled = enabled
	return trav, nil
}

// resolveLegacyControl dispatches on the first character of typ: 'S'
// selects a slider by index, anything else selects a combo by index —
// the same rule the original solver used for progressType/multiplierType.
func resolveLegacyControl(typ string, idx int, solver *simplex.Solver) (simplex.LegacyControl, error) {
	if len(typ) > 0 && typ[0] == 'S' {
		if idx < 0 || idx >= len(solver.Sliders) {
			return simplex.LegacyControl{}, fmt.Errorf("%w: legacy traversal slider control out of range", ErrSchemaViolation)
		}
		return simplex.LegacyControl{SliderIndex: idx}, nil
	}
	if idx < 0 || idx >= len(solver.Combos) {
		return simplex.LegacyControl{}, fmt.Errorf("%w: legacy traversal combo control out of range", ErrSchemaViolation)
	}
	return simplex.LegacyControl{Combo: solver.Combos[idx]}, nil
}

func toEndpointPairs(raw [][2]float64, sliderCount int) ([]simplex.EndpointPair, error) {
	out := make([]simplex.EndpointPair, len(raw))
	for i, p := range raw {
		idx := int(p[0])
		if idx < 0 || idx >= sliderCount {
			return nil, fmt.Errorf("%w: traversal endpoint slider index out of range", ErrSchemaViolation)
		}
		out[i] = simplex.EndpointPair{SliderIndex: idx, Value: p[1]}
	}
	return out, nil
}
