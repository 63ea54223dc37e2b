// SPDX-License-Identifier: MIT
// Package solve: external solver processes (HiGHS, CBC). One solve call
// is one process run over a temp directory: write model.lp, run the
// executable, parse the solution file. The child is killed when ctx
// expires; a crash or timeout is a fatal error for the call, with no
// retry and no fallback to another solver.

package solve

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/recourse-go/recourse/model"
)

type processSolver struct {
	name string // SolverHiGHS or SolverCBC
	path string // resolved executable
}

// Name returns the configured backend name.
func (s *processSolver) Name() string { return s.name }

// Solve writes the LP file, runs the solver process and parses its
// solution file into a normalized Result.
func (s *processSolver) Solve(ctx context.Context, b *model.Bound, opts ...Option) (*Result, error) {
	cfg := gatherOptions(opts)

	if b == nil {
		return nil, ErrNoModel
	}
	if ctx == nil {
		ctx = context.Background()
	}

	dir, err := os.MkdirTemp("", "recourse-"+s.name+"-")
	if err != nil {
		return nil, fmt.Errorf("solve: workdir: %w", err)
	}
	defer os.RemoveAll(dir)

	modelPath := filepath.Join(dir, "model.lp")
	solPath := filepath.Join(dir, "model.sol")

	mf, err := os.Create(modelPath)
	if err != nil {
		return nil, fmt.Errorf("solve: write model: %w", err)
	}
	if err = writeLP(mf, b); err != nil {
		mf.Close()

		return nil, fmt.Errorf("solve: write model: %w", err)
	}
	if err = mf.Close(); err != nil {
		return nil, fmt.Errorf("solve: write model: %w", err)
	}

	var args []string
	switch s.name {
	case SolverCBC:
		args = cbcArgs(cfg, modelPath, solPath)
	default:
		args = highsArgs(cfg, modelPath, solPath)
	}

	cmd := exec.CommandContext(ctx, s.path, args...)
	out, runErr := cmd.CombinedOutput()
	if cfg.output {
		os.Stdout.Write(out)
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, fmt.Errorf("%s: %v: %w", s.name, ctxErr, ErrSolveFailed)
	}
	if runErr != nil {
		return nil, fmt.Errorf("%s: %v: %s: %w", s.name, runErr, firstLine(out), ErrSolveFailed)
	}

	sol, err := os.ReadFile(solPath)
	if err != nil {
		return nil, fmt.Errorf("%s: no solution file: %w", s.name, ErrBadSolution)
	}

	if s.name == SolverCBC {
		return parseCBCSolution(sol, b)
	}

	return parseHiGHSSolution(sol, b)
}

// firstLine trims process output to its first line for error messages.
func firstLine(out []byte) string {
	for i, c := range out {
		if c == '\n' {
			return string(out[:i])
		}
	}

	return string(out)
}
