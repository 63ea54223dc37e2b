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

// cbcArgs builds the CBC command sequence: model file, option commands,
// then "solve" and the solution destination.
func cbcArgs(cfg *solveConfig, modelPath, solPath string) []string {
	args := []string{modelPath}
	if cfg.timeLimit != nil {
		args = append(args, "seconds", strconv.FormatFloat(*cfg.timeLimit, 'g', -1, 64))
	}
	if cfg.presolve != nil {
		args = append(args, "presolve", *cfg.presolve)
	}
	if cfg.threads > 1 {
		args = append(args, "threads", strconv.Itoa(cfg.threads))
	}
	args = append(args, cfg.extraArgs...)
	args = append(args, "solve", "solution", solPath)

	return args
}

// parseCBCSolution reads the file CBC's "solution" command writes:
//
//	Optimal - objective value 17700.00000000
//	      0 x0                     650                      12
//	      1 x1                    1100                       9
//
// Only nonzero columns may be listed depending on CBC settings; absent
// columns are zero.
func parseCBCSolution(raw []byte, b *model.Bound) (*Result, error) {
	sc := bufio.NewScanner(bytes.NewReader(raw))
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)

	if !sc.Scan() {
		return nil, fmt.Errorf("cbc: empty solution file: %w", ErrBadSolution)
	}
	header := strings.TrimSpace(sc.Text())

	status := cbcStatus(header)
	if status != StatusOptimal {
		return newResult(status, 0, b, nil), nil
	}

	objective, err := cbcObjective(header)
	if err != nil {
		return nil, err
	}

	values := make([]float64, b.NumVars())
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		// index, name, value, reduced cost
		fields := strings.Fields(line)
		if len(fields) < 3 {
			return nil, fmt.Errorf("cbc: bad solution line %q: %w", line, ErrBadSolution)
		}
		idx, ierr := syntheticIndex(fields[1], b.NumVars())
		if ierr != nil {
			return nil, fmt.Errorf("cbc: %v: %w", ierr, ErrBadSolution)
		}
		v, verr := strconv.ParseFloat(fields[2], 64)
		if verr != nil {
			return nil, fmt.Errorf("cbc: bad value in %q: %w", line, ErrBadSolution)
		}
		values[idx] = v
	}
	if err = sc.Err(); err != nil {
		return nil, fmt.Errorf("cbc: scan: %w", ErrBadSolution)
	}

	return newResult(StatusOptimal, objective, b, values), nil
}

// cbcStatus classifies the first word of the solution header.
func cbcStatus(header string) Status {
	switch {
	case strings.HasPrefix(header, "Optimal"):
		return StatusOptimal
	case strings.HasPrefix(header, "Infeasible"):
		return StatusInfeasible
	case strings.HasPrefix(header, "Unbounded"):
		return StatusUnbounded
	default:
		return StatusError
	}
}

// cbcObjective extracts the value after "objective value" in the header.
func cbcObjective(header string) (float64, error) {
	const marker = "objective value"
	i := strings.Index(header, marker)
	if i < 0 {
		return 0, fmt.Errorf("cbc: header %q: %w", header, ErrBadSolution)
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(header[i+len(marker):]), 64)
	if err != nil {
		return 0, fmt.Errorf("cbc: header %q: %w", header, ErrBadSolution)
	}

	return v, nil
}
