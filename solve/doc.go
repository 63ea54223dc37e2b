// SPDX-License-Identifier: MIT

// Package solve dispatches bound models to optimization solvers and
// normalizes their responses.
//
// A Solver is obtained from an explicit Config (no process-wide solver
// state) and exposes one blocking operation:
//
//	solver, err := solve.New(solve.Config{Name: solve.SolverSimplex})
//	res, err := solver.Solve(ctx, bound, solve.WithTimeLimit(30))
//
// Supported backends:
//
//   - "simplex" — in-process LP solving delegated to gonum's
//     optimize/convex/lp. The backend normalizes the bound model to
//     standard form (shifting finite lower bounds, splitting free
//     variables, adding slacks) and hands it to lp.Simplex; it refuses
//     integer and binary domains with ErrIntegerUnsupported.
//   - "highs", "cbc" — external solver processes driven over a CPLEX-LP
//     model file and a solution file. MIP domains are supported. A missing
//     executable is ErrUnavailable at construction time.
//
// Failure semantics (normalized, never coerced):
//
//   - Infeasibility and unboundedness are Result statuses, not Go errors;
//     callers must check Status before using Objective.
//   - Solver unavailability, crash, timeout and unparseable output are Go
//     errors; the dispatcher never retries and never falls back to another
//     solver.
//   - Cancellation/timeout is caller-supplied through context.Context;
//     process backends kill the child process on expiry.
//
// Values in a Result are raw solver floating-point output: the dispatcher
// applies no rounding.
package solve
