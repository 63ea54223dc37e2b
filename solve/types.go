// SPDX-License-Identifier: MIT
// Package solve: status taxonomy, the normalized Result and the sentinel
// error set shared by all backends.

package solve

import (
	"errors"
	"fmt"

	"github.com/recourse-go/recourse/model"
)

var (
	// ErrUnknownSolver is returned by New for a name outside the
	// supported set.
	ErrUnknownSolver = errors.New("solve: unknown solver")

	// ErrUnavailable is returned by New when a process backend's
	// executable cannot be found.
	ErrUnavailable = errors.New("solve: solver executable not available")

	// ErrIntegerUnsupported is returned by the simplex backend for models
	// with Integer or Binary columns.
	ErrIntegerUnsupported = errors.New("solve: backend does not support integer variables")

	// ErrNoModel is returned when Solve receives a nil bound model.
	ErrNoModel = errors.New("solve: nil model")

	// ErrSolveFailed marks a solver crash or numeric failure. Fatal for
	// the call: no retry, no fallback.
	ErrSolveFailed = errors.New("solve: solver failed")

	// ErrBadSolution marks solver output that could not be parsed back.
	ErrBadSolution = errors.New("solve: unparseable solver output")
)

// Status is the normalized solver outcome. Infeasible and Unbounded are
// distinct reported statuses, never mapped to a default value.
type Status int

const (
	// StatusError covers solver-reported failure states.
	StatusError Status = iota
	// StatusOptimal means an optimal solution was found.
	StatusOptimal
	// StatusInfeasible means the model has no feasible point.
	StatusInfeasible
	// StatusUnbounded means the objective is unbounded over the feasible
	// region.
	StatusUnbounded
)

// String returns a human-readable status name.
func (s Status) String() string {
	switch s {
	case StatusOptimal:
		return "optimal"
	case StatusInfeasible:
		return "infeasible"
	case StatusUnbounded:
		return "unbounded"
	default:
		return "error"
	}
}

// Result is the normalized response of one solve call. Objective and
// variable values are only meaningful when Status is StatusOptimal; they
// are raw solver floats with no rounding applied.
type Result struct {
	// Status is the solver outcome.
	Status Status

	// Objective is the optimal objective value (valid when optimal).
	Objective float64

	bound  *model.Bound
	values []float64
}

// newResult wraps per-column values for a bound model.
func newResult(status Status, objective float64, b *model.Bound, values []float64) *Result {
	return &Result{Status: status, Objective: objective, bound: b, values: values}
}

// IsOptimal reports whether the solve reached an optimal solution.
func (r *Result) IsOptimal() bool { return r.Status == StatusOptimal }

// Value returns the optimal value of a here-and-now variable by name.
// Returns 0 for unknown names or non-optimal results, matching the
// permissive accessor style of solver bindings; use Lookup when absence
// must be distinguished.
func (r *Result) Value(name string) float64 {
	v, _ := r.Lookup(name, "")

	return v
}

// ScenarioValue returns the optimal value of a recourse variable in the
// given scenario, or 0 when absent.
func (r *Result) ScenarioValue(name, scenID string) float64 {
	v, _ := r.Lookup(name, scenID)

	return v
}

// Lookup resolves (variable, scenario) to its optimal value, reporting
// whether the column exists and a value is available.
func (r *Result) Lookup(name, scenID string) (float64, bool) {
	if r.bound == nil || r.values == nil {
		return 0, false
	}
	j, ok := r.bound.ColIndex(name, scenID)
	if !ok || j >= len(r.values) {
		return 0, false
	}

	return r.values[j], true
}

// VarValues returns all column values keyed by display label: "x" for
// here-and-now columns, "y[scenario]" for recourse columns.
func (r *Result) VarValues() map[string]float64 {
	if r.bound == nil || r.values == nil {
		return nil
	}

	out := make(map[string]float64, len(r.values))
	for j := 0; j < r.bound.NumVars() && j < len(r.values); j++ {
		c := r.bound.Col(j)
		key := c.Name
		if c.Scenario != "" {
			key = fmt.Sprintf("%s[%s]", c.Name, c.Scenario)
		}
		out[key] = r.values[j]
	}

	return out
}
