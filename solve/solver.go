// SPDX-License-Identifier: MIT

package solve

import (
	"context"
	"fmt"
	"os/exec"

	"github.com/recourse-go/recourse/model"
)

// Supported solver names for Config.Name.
const (
	// SolverSimplex is the in-process gonum LP backend.
	SolverSimplex = "simplex"
	// SolverHiGHS drives the highs executable.
	SolverHiGHS = "highs"
	// SolverCBC drives the cbc executable.
	SolverCBC = "cbc"
)

// Solver is a capability: solve a bound model, blocking until the solver
// returns or ctx expires. Implementations are stateless across calls and
// safe for concurrent use on independent bound models.
type Solver interface {
	// Name returns the configured backend name.
	Name() string

	// Solve runs the backend against b. Infeasible/unbounded outcomes are
	// Result statuses; crashes, timeouts and parse failures are errors.
	Solve(ctx context.Context, b *model.Bound, opts ...Option) (*Result, error)
}

// Config selects and parameterizes a solver backend. It is passed
// explicitly to New; the package keeps no global solver state.
type Config struct {
	// Name is one of SolverSimplex, SolverHiGHS, SolverCBC.
	Name string

	// Path optionally overrides the executable path for process backends.
	// Empty means look up Name on PATH.
	Path string
}

// New builds a Solver from cfg.
//
// Errors: ErrUnknownSolver for names outside the supported set;
// ErrUnavailable when a process backend's executable cannot be found.
func New(cfg Config) (Solver, error) {
	switch cfg.Name {
	case SolverSimplex:
		return &simplexSolver{}, nil
	case SolverHiGHS, SolverCBC:
		path := cfg.Path
		if path == "" {
			path = cfg.Name
		}
		resolved, err := exec.LookPath(path)
		if err != nil {
			return nil, fmt.Errorf("%s (%s): %w", cfg.Name, path, ErrUnavailable)
		}

		return &processSolver{name: cfg.Name, path: resolved}, nil
	default:
		return nil, fmt.Errorf("%q: %w", cfg.Name, ErrUnknownSolver)
	}
}
