// SPDX-License-Identifier: MIT
// Package model: the bind (compile) step. Binding resolves parameter
// references, expands recourse variables into per-scenario columns and
// replicates scenario-indexed rows exactly once per scenario. Pure: no
// I/O, and every call produces an independent Bound.

package model

import (
	"fmt"
	"math"

	"github.com/recourse-go/recourse/scenario"
)

// Bind compiles the full two-stage (SAA) instance over the scenario set:
// here-and-now variables are shared, recourse variables and
// scenario-indexed rows are expanded per scenario, expected objective
// terms are weighted by scenario probability.
func (m *Template) Bind(params map[string]float64, set *scenario.Set) (*Bound, error) {
	if set == nil || set.Len() == 0 {
		return nil, ErrNoScenarios
	}

	return m.bind(params, set.Scenarios(), false, nil)
}

// BindScenario compiles a deterministic instance of the single given
// realization, treated as certain: its probability is ignored and the
// expected objective part enters with weight 1. Calling this once per
// scenario of a set is the hindsight (perfect-information) expansion.
func (m *Template) BindScenario(params map[string]float64, sc scenario.Scenario) (*Bound, error) {
	return m.bind(params, []scenario.Scenario{sc}, true, nil)
}

// BindMean compiles the certainty-equivalent instance: BindScenario on the
// probability-weighted mean scenario of the set.
func (m *Template) BindMean(params map[string]float64, set *scenario.Set) (*Bound, error) {
	if set == nil || set.Len() == 0 {
		return nil, ErrNoScenarios
	}

	return m.BindScenario(params, set.Mean())
}

// BindFixed compiles the same instance as Bind but clamps the named
// here-and-now variables to the given values (lower = upper = value).
// This evaluates a candidate first-stage decision against the true
// scenario set, the second step of the EVM analysis.
//
// Errors: ErrFixedUnknown when a name is not a here-and-now variable of
// this template.
func (m *Template) BindFixed(params map[string]float64, set *scenario.Set, fixed map[string]float64) (*Bound, error) {
	if set == nil || set.Len() == 0 {
		return nil, ErrNoScenarios
	}
	for name := range fixed {
		v, ok := m.varIndex[name]
		if !ok || v.stage != HereAndNow {
			return nil, fmt.Errorf("%q: %w", name, ErrFixedUnknown)
		}
	}

	return m.bind(params, set.Scenarios(), false, fixed)
}

// bind is the shared compiler. certain marks a single-scenario bind whose
// expected terms get weight 1 instead of the scenario probability.
func (m *Template) bind(params map[string]float64, scs []scenario.Scenario, certain bool, fixed map[string]float64) (*Bound, error) {
	if m.err != nil {
		return nil, m.err
	}
	if len(m.objDet) == 0 && len(m.objExp) == 0 {
		return nil, ErrNoObjective
	}

	b := &Bound{
		name:     m.name,
		sense:    m.sense,
		colIndex: make(map[colKey]int),
	}

	// Stage 1 - column layout: here-and-now variables first, in
	// declaration order, then one block of recourse variables per
	// scenario, in set order. The layout is deterministic so repeated
	// binds of the same inputs are identical.
	for _, v := range m.vars {
		if v.stage != HereAndNow {
			continue
		}
		lo, hi := v.lower, v.upper
		if fv, ok := fixed[v.name]; ok {
			lo, hi = fv, fv
		}
		b.addCol(Col{Name: v.name, Domain: v.domain, Lower: lo, Upper: hi})
	}
	for _, sc := range scs {
		b.scenIDs = append(b.scenIDs, sc.ID)
		for _, v := range m.vars {
			if v.stage != Recourse {
				continue
			}
			b.addCol(Col{Name: v.name, Scenario: sc.ID, Domain: v.domain, Lower: v.lower, Upper: v.upper})
		}
	}

	// Stage 2 - objective. Deterministic part resolves against the base
	// table only; expected part resolves per scenario with scenario
	// parameters overriding the base table.
	for _, t := range m.objDet {
		c, err := t.Coef.resolve(baseLookup(params))
		if err != nil {
			return nil, fmt.Errorf("objective: %w", err)
		}
		b.cols[b.colIndex[colKey{t.Var.name, ""}]].Cost += c
	}
	for _, sc := range scs {
		w := sc.Probability
		if certain {
			w = 1
		}
		lookup := scenarioLookup(params, sc)
		for _, t := range m.objExp {
			c, err := t.Coef.resolve(lookup)
			if err != nil {
				return nil, fmt.Errorf("expected objective, scenario %q: %w", sc.ID, err)
			}
			b.cols[b.col(t.Var, sc.ID)].Cost += w * c
		}
	}

	// Stage 3 - rows. Deterministic rows bind once; scenario-indexed rows
	// bind exactly once per scenario, none dropped, none duplicated.
	for _, con := range m.cons {
		if !con.perScenario {
			if err := b.addRow(con, "", baseLookup(params)); err != nil {
				return nil, err
			}

			continue
		}
		for _, sc := range scs {
			if err := b.addRow(con, sc.ID, scenarioLookup(params, sc)); err != nil {
				return nil, fmt.Errorf("scenario %q: %w", sc.ID, err)
			}
		}
	}

	return b, nil
}

// addRow resolves one constraint instance into row bounds and matrix
// entries. Coefficients of repeated variables accumulate.
func (b *Bound) addRow(con constraint, scenID string, lookup func(string) (float64, bool)) error {
	rhs, err := con.rhs.resolve(lookup)
	if err != nil {
		return fmt.Errorf("constraint %q: %w", con.name, err)
	}

	var lo, hi float64
	switch con.rel {
	case LE:
		lo, hi = math.Inf(-1), rhs
	case GE:
		lo, hi = rhs, math.Inf(1)
	default: // EQ
		lo, hi = rhs, rhs
	}

	row := len(b.rows)
	b.rows = append(b.rows, RowMeta{Name: con.name, Scenario: scenID, Lower: lo, Upper: hi})

	acc := make(map[int]float64, len(con.terms))
	cols := make([]int, 0, len(con.terms))
	for _, t := range con.terms {
		c, rerr := t.Coef.resolve(lookup)
		if rerr != nil {
			return fmt.Errorf("constraint %q: %w", con.name, rerr)
		}
		j := b.col(t.Var, scenID)
		if _, seen := acc[j]; !seen {
			cols = append(cols, j)
		}
		acc[j] += c
	}
	for _, j := range cols {
		if acc[j] != 0 {
			b.nz = append(b.nz, Nonzero{Row: row, Col: j, Val: acc[j]})
		}
	}

	return nil
}

// col maps a variable to its column in the given scenario context.
// Here-and-now variables ignore the scenario; recourse variables in a
// deterministic context cannot occur (the builder rejects them).
func (b *Bound) col(v *Var, scenID string) int {
	if v.stage == HereAndNow {
		return b.colIndex[colKey{v.name, ""}]
	}

	return b.colIndex[colKey{v.name, scenID}]
}

// baseLookup resolves parameters against the base table only.
func baseLookup(params map[string]float64) func(string) (float64, bool) {
	return func(name string) (float64, bool) {
		v, ok := params[name]

		return v, ok
	}
}

// scenarioLookup resolves parameters with the scenario overriding the
// base table.
func scenarioLookup(params map[string]float64, sc scenario.Scenario) func(string) (float64, bool) {
	return func(name string) (float64, bool) {
		if v, ok := sc.Param(name); ok {
			return v, true
		}
		v, ok := params[name]

		return v, ok
	}
}
