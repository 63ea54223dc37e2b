package scenario

import (
	"fmt"
	"math"
)

// Set is an ordered, validated collection of scenarios. A valid Set has at
// least one scenario, unique non-empty IDs, finite non-negative weights and
// a weight sum of 1 within WeightTol. Construction is the only mutation
// point; afterwards the Set is read-only.
type Set struct {
	scenarios []Scenario
	index     map[string]int
}

// NewSet validates the given scenarios and assembles them into a Set.
// Order is preserved: At(i) returns the i-th argument. Scenario parameter
// maps are not required to share the same key set; binding layers decide
// how missing parameters are resolved.
//
// Errors: ErrEmptySet, ErrDuplicateID, ErrBadValue, ErrBadWeights.
func NewSet(scenarios ...Scenario) (*Set, error) {
	if len(scenarios) == 0 {
		return nil, ErrEmptySet
	}

	var (
		index = make(map[string]int, len(scenarios))
		sum   float64
	)
	for i, sc := range scenarios {
		if err := sc.validate(); err != nil {
			return nil, fmt.Errorf("scenario %q: %w", sc.ID, err)
		}
		if _, dup := index[sc.ID]; dup {
			return nil, fmt.Errorf("scenario %q: %w", sc.ID, ErrDuplicateID)
		}
		index[sc.ID] = i
		sum += sc.Probability
	}
	if math.Abs(sum-1) > WeightTol {
		return nil, fmt.Errorf("weights sum to %g: %w", sum, ErrBadWeights)
	}

	cp := make([]Scenario, len(scenarios))
	copy(cp, scenarios)

	return &Set{scenarios: cp, index: index}, nil
}

// Equal builds a Set with uniform weight 1/T over the given parameter
// realizations, assigning IDs s0..s(T-1). This is the SAA weighting.
func Equal(params ...map[string]float64) (*Set, error) {
	if len(params) == 0 {
		return nil, ErrEmptySet
	}

	// Assemble with exact uniform weights; the final weight is chosen so
	// the sum is exactly 1 regardless of float division error.
	var (
		n   = len(params)
		w   = 1 / float64(n)
		scs = make([]Scenario, n)
		acc float64
	)
	for i, p := range params {
		if i == n-1 {
			scs[i] = New(fmt.Sprintf("s%d", i), 1-acc, p)

			break
		}
		scs[i] = New(fmt.Sprintf("s%d", i), w, p)
		acc += w
	}

	return NewSet(scs...)
}

// Len returns the number of scenarios.
func (t *Set) Len() int { return len(t.scenarios) }

// At returns the i-th scenario. Panics on out-of-range i, as slice
// indexing would; callers iterate with Len.
func (t *Set) At(i int) Scenario { return t.scenarios[i] }

// ByID returns the scenario with the given ID.
func (t *Set) ByID(id string) (Scenario, error) {
	i, ok := t.index[id]
	if !ok {
		return Scenario{}, fmt.Errorf("%q: %w", id, ErrUnknownID)
	}

	return t.scenarios[i], nil
}

// IDs returns the scenario IDs in Set order.
func (t *Set) IDs() []string {
	ids := make([]string, len(t.scenarios))
	for i, sc := range t.scenarios {
		ids[i] = sc.ID
	}

	return ids
}

// Scenarios returns a copy of the ordered scenario slice.
func (t *Set) Scenarios() []Scenario {
	cp := make([]Scenario, len(t.scenarios))
	copy(cp, t.scenarios)

	return cp
}

// ParamNames returns the union of all parameter names across the Set in
// ascending order.
func (t *Set) ParamNames() []string {
	seen := make(map[string]struct{})
	for _, sc := range t.scenarios {
		for k := range sc.params {
			seen[k] = struct{}{}
		}
	}
	// Reuse the deterministic ordering of Scenario.ParamNames via a probe
	// scenario holding the union.
	union := make(map[string]float64, len(seen))
	for k := range seen {
		union[k] = 0
	}

	return Scenario{params: union}.ParamNames()
}

// Mean returns the probability-weighted mean scenario: every parameter in
// the union of names averaged with scenario weights (a missing parameter
// contributes zero for that scenario). The mean carries probability 1 and
// ID "mean"; it is the certainty-equivalent input of the EVM analysis.
func (t *Set) Mean() Scenario {
	mean := make(map[string]float64)
	for _, sc := range t.scenarios {
		for k, v := range sc.params {
			mean[k] += sc.Probability * v
		}
	}

	return Scenario{ID: "mean", Probability: 1, params: mean}
}

// Row is one (scenario, parameter, value) cell of the tabular
// serialization produced by Table and consumed by FromTable.
type Row struct {
	Scenario    string
	Probability float64
	Param       string
	Value       float64
}

// Table flattens the Set into rows ordered by (scenario position, param
// name). The mapping (scenario -> parameter -> value) survives a
// Table/FromTable round trip exactly.
func (t *Set) Table() []Row {
	var rows []Row
	for _, sc := range t.scenarios {
		for _, name := range sc.ParamNames() {
			rows = append(rows, Row{
				Scenario:    sc.ID,
				Probability: sc.Probability,
				Param:       name,
				Value:       sc.params[name],
			})
		}
	}

	return rows
}

// FromTable rebuilds a Set from rows produced by Table (or an equivalent
// external tabular source). Scenario order follows first appearance.
//
// Errors: ErrBadTable on duplicate (scenario, param) cells or conflicting
// probabilities for one scenario, plus everything NewSet rejects.
func FromTable(rows []Row) (*Set, error) {
	var (
		order []string
		probs = make(map[string]float64)
		cells = make(map[string]map[string]float64)
	)
	for _, r := range rows {
		params, seen := cells[r.Scenario]
		if !seen {
			order = append(order, r.Scenario)
			params = make(map[string]float64)
			cells[r.Scenario] = params
			probs[r.Scenario] = r.Probability
		} else if probs[r.Scenario] != r.Probability {
			return nil, fmt.Errorf("scenario %q probability mismatch: %w", r.Scenario, ErrBadTable)
		}
		if _, dup := params[r.Param]; dup {
			return nil, fmt.Errorf("scenario %q param %q repeated: %w", r.Scenario, r.Param, ErrBadTable)
		}
		params[r.Param] = r.Value
	}

	scs := make([]Scenario, len(order))
	for i, id := range order {
		scs[i] = New(id, probs[id], cells[id])
	}

	return NewSet(scs...)
}
