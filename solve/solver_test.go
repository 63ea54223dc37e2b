package solve_test

import (
	"testing"

	"github.com/recourse-go/recourse/solve"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Simplex(t *testing.T) {
	s, err := solve.New(solve.Config{Name: solve.SolverSimplex})
	require.NoError(t, err)
	assert.Equal(t, solve.SolverSimplex, s.Name())
}

func TestNew_UnknownSolver(t *testing.T) {
	_, err := solve.New(solve.Config{Name: "gurobi"})
	assert.ErrorIs(t, err, solve.ErrUnknownSolver)

	_, err = solve.New(solve.Config{})
	assert.ErrorIs(t, err, solve.ErrUnknownSolver)
}

func TestNew_UnavailableExecutable(t *testing.T) {
	_, err := solve.New(solve.Config{Name: solve.SolverHiGHS, Path: "/nonexistent/highs"})
	assert.ErrorIs(t, err, solve.ErrUnavailable)

	_, err = solve.New(solve.Config{Name: solve.SolverCBC, Path: "/nonexistent/cbc"})
	assert.ErrorIs(t, err, solve.ErrUnavailable)
}
