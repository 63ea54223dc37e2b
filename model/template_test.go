package model_test

import (
	"testing"

	"github.com/recourse-go/recourse/model"
	"github.com/recourse-go/recourse/scenario"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// certainSet is a single-scenario set for binds that only need a
// deterministic context.
func certainSet(t *testing.T) *scenario.Set {
	t.Helper()

	set, err := scenario.NewSet(scenario.New("only", 1, nil))
	require.NoError(t, err)

	return set
}

// TestTemplate_DuplicateVar verifies duplicate and empty names stick as
// ErrDuplicateVar and surface at bind.
func TestTemplate_DuplicateVar(t *testing.T) {
	m := model.New("dup", model.Minimize)
	x := m.Var("x", model.Continuous, 0, model.Inf())
	m.Var("x", model.Continuous, 0, 1)
	m.Objective(model.T(1, x))

	_, err := m.Bind(nil, certainSet(t))
	assert.ErrorIs(t, err, model.ErrDuplicateVar)
	assert.ErrorIs(t, m.Err(), model.ErrDuplicateVar)

	m = model.New("empty", model.Minimize)
	m.Var("", model.Continuous, 0, 1)
	_, err = m.Bind(nil, certainSet(t))
	assert.ErrorIs(t, err, model.ErrDuplicateVar)
}

// TestTemplate_BadBounds rejects lower > upper.
func TestTemplate_BadBounds(t *testing.T) {
	m := model.New("bounds", model.Minimize)
	x := m.Var("x", model.Continuous, 2, 1)
	m.Objective(model.T(1, x))

	_, err := m.Bind(nil, certainSet(t))
	assert.ErrorIs(t, err, model.ErrBadBounds)
}

// TestTemplate_BinaryBounds verifies Binary forces [0, 1].
func TestTemplate_BinaryBounds(t *testing.T) {
	m := model.New("bin", model.Minimize)
	b := m.Var("open", model.Binary, -5, 5)
	m.Objective(model.T(1, b))

	lo, hi := b.Bounds()
	assert.Equal(t, 0.0, lo)
	assert.Equal(t, 1.0, hi)
}

// TestTemplate_ForeignVar rejects terms referencing another template's
// variable.
func TestTemplate_ForeignVar(t *testing.T) {
	other := model.New("other", model.Minimize)
	foreign := other.Var("x", model.Continuous, 0, 1)

	m := model.New("mine", model.Minimize)
	y := m.Var("y", model.Continuous, 0, 1)
	m.Constraint("c", model.Sum(model.T(1, foreign)), model.LE, model.Lit(1))
	m.Objective(model.T(1, y))

	_, err := m.Bind(nil, certainSet(t))
	assert.ErrorIs(t, err, model.ErrUnknownVar)
}

// TestTemplate_RecourseInDeterministic rejects recourse variables in
// deterministic rows and in the deterministic objective part.
func TestTemplate_RecourseInDeterministic(t *testing.T) {
	m := model.New("stage", model.Maximize)
	y := m.RecourseVar("y", model.Continuous, 0, model.Inf())
	m.Constraint("det", model.Sum(model.T(1, y)), model.LE, model.Lit(1))

	_, err := m.Bind(nil, certainSet(t))
	assert.ErrorIs(t, err, model.ErrRecourseInDeterministic)

	m = model.New("stage2", model.Maximize)
	y = m.RecourseVar("y", model.Continuous, 0, model.Inf())
	m.Objective(model.T(1, y))

	_, err = m.Bind(nil, certainSet(t))
	assert.ErrorIs(t, err, model.ErrRecourseInDeterministic)
}

// TestTemplate_EmptyConstraint rejects rows without terms.
func TestTemplate_EmptyConstraint(t *testing.T) {
	m := model.New("empty", model.Minimize)
	x := m.Var("x", model.Continuous, 0, 1)
	m.Constraint("c", nil, model.LE, model.Lit(1))
	m.Objective(model.T(1, x))

	_, err := m.Bind(nil, certainSet(t))
	assert.ErrorIs(t, err, model.ErrEmptyExpr)
}

// TestTemplate_NoObjective rejects binding an objective-less template.
func TestTemplate_NoObjective(t *testing.T) {
	m := model.New("noobj", model.Minimize)
	m.Var("x", model.Continuous, 0, 1)

	_, err := m.Bind(nil, certainSet(t))
	assert.ErrorIs(t, err, model.ErrNoObjective)
}

// TestTemplate_NoScenarios rejects nil scenario sets on all multi-scenario
// bind variants.
func TestTemplate_NoScenarios(t *testing.T) {
	m := model.New("noscen", model.Minimize)
	x := m.Var("x", model.Continuous, 0, 1)
	m.Objective(model.T(1, x))

	_, err := m.Bind(nil, nil)
	assert.ErrorIs(t, err, model.ErrNoScenarios)

	_, err = m.BindMean(nil, nil)
	assert.ErrorIs(t, err, model.ErrNoScenarios)

	_, err = m.BindFixed(nil, nil, nil)
	assert.ErrorIs(t, err, model.ErrNoScenarios)
}
