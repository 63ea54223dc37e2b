// SPDX-License-Identifier: MIT
// Package model: core value types shared by the template builder and the
// bound (compiled) representation.

package model

import "math"

// Sense is the optimization direction of a template.
type Sense int

const (
	// Minimize seeks the smallest objective value.
	Minimize Sense = iota
	// Maximize seeks the largest objective value.
	Maximize
)

// String returns a human-readable sense name.
func (s Sense) String() string {
	if s == Maximize {
		return "maximize"
	}

	return "minimize"
}

// Domain is the admissible value set of a decision variable.
type Domain int

const (
	// Continuous variables take any real value within bounds (default).
	Continuous Domain = iota
	// Integer variables are restricted to integral values within bounds.
	Integer
	// Binary variables take values in {0, 1}.
	Binary
)

// String returns a human-readable domain name.
func (d Domain) String() string {
	switch d {
	case Integer:
		return "integer"
	case Binary:
		return "binary"
	default:
		return "continuous"
	}
}

// Stage distinguishes first-stage from scenario-indexed variables.
type Stage int

const (
	// HereAndNow variables are fixed before the scenario is revealed and
	// shared across all scenario-indexed constraints.
	HereAndNow Stage = iota
	// Recourse variables are chosen after the scenario is revealed; one
	// instance exists per scenario in a bound model.
	Recourse
)

// Rel is the relational operator of a constraint.
type Rel int

const (
	// LE constrains the expression to be <= the right-hand side.
	LE Rel = iota
	// EQ constrains the expression to equal the right-hand side.
	EQ
	// GE constrains the expression to be >= the right-hand side.
	GE
)

// Coef is a numeric coefficient that is either a literal or a scaled
// reference to a named parameter resolved at bind time. The zero Coef is
// the literal 0.
type Coef struct {
	value float64
	param string
}

// Lit returns a literal coefficient.
func Lit(v float64) Coef { return Coef{value: v} }

// Param returns a coefficient that resolves to the named parameter's value
// at bind time (scenario parameters override the base table).
func Param(name string) Coef { return Coef{value: 1, param: name} }

// Scaled returns f times the named parameter's bind-time value.
func Scaled(f float64, name string) Coef { return Coef{value: f, param: name} }

// resolve evaluates the coefficient against a parameter lookup.
func (c Coef) resolve(lookup func(string) (float64, bool)) (float64, error) {
	if c.param == "" {
		return c.value, nil
	}
	v, ok := lookup(c.param)
	if !ok {
		return 0, wrapParam(c.param)
	}

	return c.value * v, nil
}

// Term is one coefficient-variable product of a linear expression.
type Term struct {
	Coef Coef
	Var  *Var
}

// T builds a term with a literal coefficient.
func T(coef float64, v *Var) Term { return Term{Coef: Lit(coef), Var: v} }

// TP builds a term whose coefficient is the named parameter.
func TP(param string, v *Var) Term { return Term{Coef: Param(param), Var: v} }

// LinExpr is a linear expression: the sum of its terms. Repeated variables
// are legal; their coefficients accumulate at bind time.
type LinExpr []Term

// Plus appends terms, returning the extended expression.
func (e LinExpr) Plus(terms ...Term) LinExpr { return append(e, terms...) }

// Sum builds a LinExpr from terms.
func Sum(terms ...Term) LinExpr { return LinExpr(terms) }

// Var is a declared decision variable. Vars are created by a Template
// (Var / RecourseVar) and are only valid in expressions on that template.
type Var struct {
	name   string
	domain Domain
	lower  float64
	upper  float64
	stage  Stage
	owner  *Template
}

// Name returns the declared variable name.
func (v *Var) Name() string { return v.name }

// Domain returns the variable's domain.
func (v *Var) Domain() Domain { return v.domain }

// Stage reports whether the variable is first-stage or recourse.
func (v *Var) Stage() Stage { return v.stage }

// Bounds returns the declared lower and upper bounds.
func (v *Var) Bounds() (lower, upper float64) { return v.lower, v.upper }

// Inf returns +Inf, for unbounded-above variable declarations.
func Inf() float64 { return math.Inf(1) }

// NegInf returns -Inf, for unbounded-below variable declarations.
func NegInf() float64 { return math.Inf(-1) }

// Nonzero is one entry of the sparse constraint matrix of a Bound:
// row Row, column Col, coefficient Val.
type Nonzero struct {
	Row int
	Col int
	Val float64
}
