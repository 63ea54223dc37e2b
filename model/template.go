// SPDX-License-Identifier: MIT

package model

import (
	"fmt"
	"math"
)

// Template is the symbolic model builder. Construction methods never fail
// in-line: the first violation is recorded and surfaced by the next Bind,
// so call sites stay declarative.
type Template struct {
	name  string
	sense Sense

	vars     []*Var
	varIndex map[string]*Var

	cons   []constraint
	objDet []Term // deterministic objective part
	objExp []Term // expected (scenario-weighted) objective part

	err error // first builder violation, sticky
}

// constraint is one symbolic row form. When perScenario is set the row is
// replicated once per scenario at bind time.
type constraint struct {
	name        string
	terms       LinExpr
	rel         Rel
	rhs         Coef
	perScenario bool
}

// New returns an empty template with the given name and sense.
func New(name string, sense Sense) *Template {
	return &Template{
		name:     name,
		sense:    sense,
		varIndex: make(map[string]*Var),
	}
}

// Name returns the template name.
func (m *Template) Name() string { return m.name }

// Sense returns the optimization direction.
func (m *Template) Sense() Sense { return m.sense }

// Err returns the first recorded builder violation, if any. Bind returns
// the same error; Err exists for callers that want to fail earlier.
func (m *Template) Err() error { return m.err }

// Var declares a first-stage (here-and-now) decision variable.
// Binary variables ignore the given bounds and use [0, 1].
func (m *Template) Var(name string, domain Domain, lower, upper float64) *Var {
	return m.declare(name, domain, lower, upper, HereAndNow)
}

// RecourseVar declares a scenario-indexed (second-stage) decision
// variable: one column per scenario in every multi-scenario bind.
func (m *Template) RecourseVar(name string, domain Domain, lower, upper float64) *Var {
	return m.declare(name, domain, lower, upper, Recourse)
}

func (m *Template) declare(name string, domain Domain, lower, upper float64, stage Stage) *Var {
	if domain == Binary {
		lower, upper = 0, 1
	}

	v := &Var{name: name, domain: domain, lower: lower, upper: upper, stage: stage, owner: m}

	if name == "" {
		m.fail(fmt.Errorf("variable %q: %w", name, ErrDuplicateVar))

		return v
	}
	if _, dup := m.varIndex[name]; dup {
		m.fail(fmt.Errorf("variable %q: %w", name, ErrDuplicateVar))

		return v
	}
	if math.IsNaN(lower) || math.IsNaN(upper) || lower > upper {
		m.fail(fmt.Errorf("variable %q: %w", name, ErrBadBounds))

		return v
	}

	m.vars = append(m.vars, v)
	m.varIndex[name] = v

	return v
}

// Constraint adds a deterministic (first-stage) row: expr rel rhs.
// Recourse variables are rejected; their rows must be scenario-indexed.
func (m *Template) Constraint(name string, expr LinExpr, rel Rel, rhs Coef) *Template {
	if err := m.checkExpr(expr, false); err != nil {
		m.fail(fmt.Errorf("constraint %q: %w", name, err))

		return m
	}
	m.cons = append(m.cons, constraint{name: name, terms: expr, rel: rel, rhs: rhs})

	return m
}

// ScenarioConstraint adds a scenario-indexed row form. At bind time it is
// replicated exactly once per scenario in the scenario set: no scenario is
// dropped, none is duplicated.
func (m *Template) ScenarioConstraint(name string, expr LinExpr, rel Rel, rhs Coef) *Template {
	if err := m.checkExpr(expr, true); err != nil {
		m.fail(fmt.Errorf("constraint %q: %w", name, err))

		return m
	}
	m.cons = append(m.cons, constraint{name: name, terms: expr, rel: rel, rhs: rhs, perScenario: true})

	return m
}

// Objective sets the deterministic objective part (here-and-now terms,
// e.g. first-stage cost). Calling it again replaces the part.
func (m *Template) Objective(terms ...Term) *Template {
	if err := m.checkExpr(LinExpr(terms), false); err != nil && len(terms) > 0 {
		m.fail(fmt.Errorf("objective: %w", err))

		return m
	}
	m.objDet = terms

	return m
}

// ExpectedObjective sets the expected objective part. Each term is
// weighted by the scenario probability at bind time; recourse variables
// resolve to their per-scenario column, here-and-now variables accumulate
// the weighted coefficient onto their shared column (so a parameter-valued
// coefficient contributes its expectation).
func (m *Template) ExpectedObjective(terms ...Term) *Template {
	if err := m.checkExpr(LinExpr(terms), true); err != nil && len(terms) > 0 {
		m.fail(fmt.Errorf("expected objective: %w", err))

		return m
	}
	m.objExp = terms

	return m
}

// checkExpr validates expression ownership and, for deterministic
// contexts, the absence of recourse variables. Empty expressions are only
// legal for objectives; constraints guard separately.
func (m *Template) checkExpr(expr LinExpr, allowRecourse bool) error {
	if len(expr) == 0 {
		return ErrEmptyExpr
	}
	for _, t := range expr {
		if t.Var == nil || t.Var.owner != m {
			return ErrUnknownVar
		}
		if !allowRecourse && t.Var.stage == Recourse {
			return ErrRecourseInDeterministic
		}
	}

	return nil
}

// fail records the first builder violation.
func (m *Template) fail(err error) {
	if m.err == nil {
		m.err = err
	}
}
