// SPDX-License-Identifier: MIT

package solve

import (
	"bufio"
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/recourse-go/recourse/model"
)

// highsArgs builds the HiGHS command line: options first, model file and
// solution destination last.
func highsArgs(cfg *solveConfig, modelPath, solPath string) []string {
	var args []string
	if cfg.timeLimit != nil {
		args = append(args, "--time_limit", strconv.FormatFloat(*cfg.timeLimit, 'g', -1, 64))
	}
	if cfg.presolve != nil {
		args = append(args, "--presolve", *cfg.presolve)
	}
	if cfg.threads > 1 {
		args = append(args, "--parallel", "on")
	}
	args = append(args, cfg.extraArgs...)
	args = append(args, modelPath, "--solution_file", solPath)

	return args
}

// parseHiGHSSolution reads the raw-style solution file HiGHS writes:
//
//	Model status
//	Optimal
//
//	# Primal solution values
//	Feasible
//	Objective 17700
//	# Columns 2
//	x0 650
//	x1 1100
//	...
func parseHiGHSSolution(raw []byte, b *model.Bound) (*Result, error) {
	var (
		sc        = bufio.NewScanner(bytes.NewReader(raw))
		status    = StatusError
		sawStatus bool
		objective float64
		values    []float64
	)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)

	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		switch {
		case line == "Model status":
			if !sc.Scan() {
				return nil, fmt.Errorf("highs: truncated status: %w", ErrBadSolution)
			}
			status = highsStatus(strings.TrimSpace(sc.Text()))
			sawStatus = true

		case strings.HasPrefix(line, "Objective "):
			v, err := strconv.ParseFloat(strings.TrimPrefix(line, "Objective "), 64)
			if err != nil {
				return nil, fmt.Errorf("highs: objective %q: %w", line, ErrBadSolution)
			}
			objective = v

		case strings.HasPrefix(line, "# Columns "):
			n, err := strconv.Atoi(strings.TrimPrefix(line, "# Columns "))
			if err != nil || n != b.NumVars() {
				return nil, fmt.Errorf("highs: column count %q: %w", line, ErrBadSolution)
			}
			values = make([]float64, n)
			for j := 0; j < n; j++ {
				if !sc.Scan() {
					return nil, fmt.Errorf("highs: truncated columns: %w", ErrBadSolution)
				}
				name, v, perr := parseNameValue(sc.Text())
				if perr != nil {
					return nil, fmt.Errorf("highs: %v: %w", perr, ErrBadSolution)
				}
				idx, ierr := syntheticIndex(name, n)
				if ierr != nil {
					return nil, fmt.Errorf("highs: %v: %w", ierr, ErrBadSolution)
				}
				values[idx] = v
			}
			// Rows and duals follow; nothing further is needed.
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("highs: scan: %w", ErrBadSolution)
	}
	if !sawStatus {
		return nil, fmt.Errorf("highs: no model status: %w", ErrBadSolution)
	}

	if status != StatusOptimal {
		return newResult(status, 0, b, nil), nil
	}
	if values == nil {
		return nil, fmt.Errorf("highs: optimal without columns: %w", ErrBadSolution)
	}

	return newResult(StatusOptimal, objective, b, values), nil
}

// highsStatus maps HiGHS model-status strings onto the normalized set.
func highsStatus(s string) Status {
	switch s {
	case "Optimal":
		return StatusOptimal
	case "Infeasible":
		return StatusInfeasible
	case "Unbounded":
		return StatusUnbounded
	default:
		return StatusError
	}
}

// parseNameValue splits a "name value" solution line.
func parseNameValue(line string) (string, float64, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return "", 0, fmt.Errorf("bad solution line %q", line)
	}
	v, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return "", 0, fmt.Errorf("bad value in %q", line)
	}

	return fields[0], v, nil
}

// syntheticIndex recovers the column index from a synthetic x<j> name.
func syntheticIndex(name string, n int) (int, error) {
	if !strings.HasPrefix(name, "x") {
		return 0, fmt.Errorf("unexpected column name %q", name)
	}
	idx, err := strconv.Atoi(name[1:])
	if err != nil || idx < 0 || idx >= n {
		return 0, fmt.Errorf("unexpected column name %q", name)
	}

	return idx, nil
}
