// SPDX-License-Identifier: MIT
// Package solve: in-process LP backend. The actual solving is delegated
// to gonum's optimize/convex/lp simplex; this file only normalizes a
// bound model into the standard form (min c'x, Ax = b, x >= 0) that
// lp.Simplex consumes, and maps its outcome back.

package solve

import (
	"context"
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"

	"github.com/recourse-go/recourse/model"
)

// feasTol is the tolerance for constant-row feasibility checks performed
// during normalization (rows whose variables all vanish).
const feasTol = 1e-9

type simplexSolver struct{}

// Name returns "simplex".
func (*simplexSolver) Name() string { return SolverSimplex }

// Solve normalizes b to standard form and delegates to lp.Simplex.
// Integer and binary domains are refused with ErrIntegerUnsupported.
// Cancellation is honored before the (synchronous) solve starts.
func (s *simplexSolver) Solve(ctx context.Context, b *model.Bound, opts ...Option) (*Result, error) {
	_ = gatherOptions(opts) // the in-process backend has no tunables

	if b == nil {
		return nil, ErrNoModel
	}
	if b.HasIntegral() {
		return nil, fmt.Errorf("%s: %w", b.Name(), ErrIntegerUnsupported)
	}
	if ctx != nil {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
	}

	f, status := newStdForm(b)
	if status != StatusOptimal {
		// Normalization already decided: constant-row infeasibility or a
		// cost-improving variable outside every constraint.
		return newResult(status, 0, b, nil), nil
	}

	// Trivial case: no rows survived normalization. Every kept variable
	// has non-negative reduced cost, so y = 0 is optimal.
	if len(f.eqA)+len(f.inA) == 0 {
		return f.result(b, 0, make([]float64, f.kept)), nil
	}

	c, a, rhs := f.assemble()
	optF, optX, err := lp.Simplex(c, a, rhs, 0, nil)
	switch {
	case err == nil:
		return f.result(b, optF, optX), nil
	case errors.Is(err, lp.ErrInfeasible):
		return newResult(StatusInfeasible, 0, b, nil), nil
	case errors.Is(err, lp.ErrUnbounded):
		return newResult(StatusUnbounded, 0, b, nil), nil
	default:
		return newResult(StatusError, 0, b, nil), fmt.Errorf("%s: %v: %w", b.Name(), err, ErrSolveFailed)
	}
}

// xKind classifies how an original column maps onto standard-form
// variables.
type xKind int

const (
	// xShifted: finite lower bound L, x = L + y.
	xShifted xKind = iota
	// xNegated: lower -Inf, finite upper U, x = U - y.
	xNegated
	// xSplit: free variable, x = y+ - y-.
	xSplit
)

type xform struct {
	kind xKind
	off  float64
	pos  int // transformed column (y, or y+)
	neg  int // y- column for xSplit
}

// stdForm is the normalized instance: min cT·y + konst over
// eqA·y = eqB, inA·y <= inB, y >= 0, with xmap recovering the original
// columns. Columns that appear in no row are dropped (keep[j] == -1) —
// lp.Simplex rejects zero columns — after deciding optimality or
// unboundedness for them directly.
type stdForm struct {
	maximize bool
	konst    float64
	cT       []float64

	eqA [][]float64
	eqB []float64
	inA [][]float64
	inB []float64

	xmap []xform
	keep []int // transformed column -> compact column, -1 when dropped
	kept int
}

// newStdForm builds the standard form. The returned status is
// StatusOptimal unless normalization alone proves infeasibility or
// unboundedness.
func newStdForm(b *model.Bound) (*stdForm, Status) {
	n := b.NumVars()
	f := &stdForm{maximize: b.Sense() == model.Maximize, xmap: make([]xform, n)}

	// Transformed column layout.
	nt := 0
	for j := 0; j < n; j++ {
		col := b.Col(j)
		switch {
		case !math.IsInf(col.Lower, -1):
			f.xmap[j] = xform{kind: xShifted, off: col.Lower, pos: nt}
			nt++
		case !math.IsInf(col.Upper, 1):
			f.xmap[j] = xform{kind: xNegated, off: col.Upper, pos: nt}
			nt++
		default:
			f.xmap[j] = xform{kind: xSplit, pos: nt, neg: nt + 1}
			nt += 2
		}
	}

	// Objective in minimization space.
	f.cT = make([]float64, nt)
	for j := 0; j < n; j++ {
		cmin := b.Col(j).Cost
		if f.maximize {
			cmin = -cmin
		}
		switch x := f.xmap[j]; x.kind {
		case xShifted:
			f.cT[x.pos] += cmin
			f.konst += cmin * x.off
		case xNegated:
			f.cT[x.pos] -= cmin
			f.konst += cmin * x.off
		default:
			f.cT[x.pos] += cmin
			f.cT[x.neg] -= cmin
		}
	}

	// Constraint rows, transformed entry-wise.
	start, index, value := b.CSR()
	for i := 0; i < b.NumRows(); i++ {
		row := b.Row(i)
		coeffs := make([]float64, nt)
		shift := 0.0
		for p := start[i]; p < start[i+1]; p++ {
			j, a := index[p], value[p]
			switch x := f.xmap[j]; x.kind {
			case xShifted:
				coeffs[x.pos] += a
				shift += a * x.off
			case xNegated:
				coeffs[x.pos] -= a
				shift += a * x.off
			default:
				coeffs[x.pos] += a
				coeffs[x.neg] -= a
			}
		}
		if st := f.addRange(coeffs, row.Lower-shift, row.Upper-shift); st != StatusOptimal {
			return f, st
		}
	}

	// Upper bounds of shifted columns become explicit rows.
	for j := 0; j < n; j++ {
		col := b.Col(j)
		x := f.xmap[j]
		if x.kind != xShifted || math.IsInf(col.Upper, 1) {
			continue
		}
		coeffs := make([]float64, nt)
		coeffs[x.pos] = 1
		if st := f.addRange(coeffs, math.Inf(-1), col.Upper-col.Lower); st != StatusOptimal {
			return f, st
		}
	}

	// Drop columns that appear in no row: a negative cost there means the
	// problem is unbounded, otherwise the column is optimally zero.
	used := make([]bool, nt)
	mark := func(rows [][]float64) {
		for _, r := range rows {
			for t, v := range r {
				if v != 0 {
					used[t] = true
				}
			}
		}
	}
	mark(f.eqA)
	mark(f.inA)

	f.keep = make([]int, nt)
	for t := 0; t < nt; t++ {
		if !used[t] {
			if f.cT[t] < 0 {
				return f, StatusUnbounded
			}
			f.keep[t] = -1

			continue
		}
		f.keep[t] = f.kept
		f.kept++
	}

	return f, StatusOptimal
}

// addRange files one transformed row with activity range [lo, hi].
// Constant rows (all coefficients zero) are checked and dropped; ranged
// rows split into two inequalities.
func (f *stdForm) addRange(coeffs []float64, lo, hi float64) Status {
	zero := true
	for _, v := range coeffs {
		if v != 0 {
			zero = false

			break
		}
	}
	if zero {
		if lo > feasTol || hi < -feasTol {
			return StatusInfeasible
		}

		return StatusOptimal
	}

	if lo == hi {
		f.eqA = append(f.eqA, coeffs)
		f.eqB = append(f.eqB, lo)

		return StatusOptimal
	}
	if !math.IsInf(hi, 1) {
		f.inA = append(f.inA, coeffs)
		f.inB = append(f.inB, hi)
	}
	if !math.IsInf(lo, -1) {
		neg := make([]float64, len(coeffs))
		for t, v := range coeffs {
			neg[t] = -v
		}
		f.inA = append(f.inA, neg)
		f.inB = append(f.inB, -lo)
	}

	return StatusOptimal
}

// assemble compacts kept columns, appends one slack per inequality and
// produces the dense standard-form triple for lp.Simplex.
func (f *stdForm) assemble() (c []float64, a *mat.Dense, b []float64) {
	var (
		nIneq = len(f.inA)
		cols  = f.kept + nIneq
		rows  = len(f.eqA) + nIneq
	)

	c = make([]float64, cols)
	for t, k := range f.keep {
		if k >= 0 {
			c[k] = f.cT[t]
		}
	}

	a = mat.NewDense(rows, cols, nil)
	b = make([]float64, rows)
	for i, row := range f.eqA {
		for t, v := range row {
			if k := f.keep[t]; k >= 0 && v != 0 {
				a.Set(i, k, v)
			}
		}
		b[i] = f.eqB[i]
	}
	for i, row := range f.inA {
		ri := len(f.eqA) + i
		for t, v := range row {
			if k := f.keep[t]; k >= 0 && v != 0 {
				a.Set(ri, k, v)
			}
		}
		a.Set(ri, f.kept+i, 1)
		b[ri] = f.inB[i]
	}

	return c, a, b
}

// result maps a standard-form optimum back to original columns and the
// original objective.
func (f *stdForm) result(bound *model.Bound, optF float64, optX []float64) *Result {
	y := func(t int) float64 {
		k := f.keep[t]
		if k < 0 || k >= len(optX) {
			return 0
		}

		return optX[k]
	}

	values := make([]float64, len(f.xmap))
	for j, x := range f.xmap {
		switch x.kind {
		case xShifted:
			values[j] = x.off + y(x.pos)
		case xNegated:
			values[j] = x.off - y(x.pos)
		default:
			values[j] = y(x.pos) - y(x.neg)
		}
	}

	obj := optF + f.konst
	if f.maximize {
		obj = -obj
	}

	return newResult(StatusOptimal, obj, bound, values)
}
