// SPDX-License-Identifier: MIT
// Package model: sentinel error set. Builder methods record the first
// violation and surface it from Bind; bind-time resolution failures are
// returned directly. Tests match all of these via errors.Is.

package model

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateVar is returned when two variables on one template share
	// a name, or a name is empty.
	ErrDuplicateVar = errors.New("model: duplicate or empty variable name")

	// ErrUnknownVar is returned when an expression references a variable
	// that was not declared on this template.
	ErrUnknownVar = errors.New("model: variable not declared on this template")

	// ErrBadBounds is returned for lower > upper or NaN bounds.
	ErrBadBounds = errors.New("model: invalid variable bounds")

	// ErrEmptyExpr is returned for a constraint with no terms.
	ErrEmptyExpr = errors.New("model: empty constraint expression")

	// ErrRecourseInDeterministic is returned when a recourse variable
	// appears in a deterministic constraint or in the deterministic
	// objective part.
	ErrRecourseInDeterministic = errors.New("model: recourse variable in deterministic context")

	// ErrNoObjective is returned at bind when neither objective part has
	// been set.
	ErrNoObjective = errors.New("model: no objective")

	// ErrNoScenarios is returned by Bind variants that require a non-empty
	// scenario set but received none.
	ErrNoScenarios = errors.New("model: no scenarios")

	// ErrUnknownParam is returned at bind when a Coef names a parameter
	// absent from both the base table and the scenario. Configuration
	// error: detected before any solve call.
	ErrUnknownParam = errors.New("model: unknown parameter")

	// ErrFixedUnknown is returned by BindFixed when a fixed value names a
	// variable that is not a here-and-now variable of the template.
	ErrFixedUnknown = errors.New("model: fixed value for unknown here-and-now variable")
)

// wrapParam attaches the parameter name to ErrUnknownParam.
func wrapParam(name string) error {
	return fmt.Errorf("%q: %w", name, ErrUnknownParam)
}
