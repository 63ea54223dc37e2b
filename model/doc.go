// SPDX-License-Identifier: MIT

// Package model builds scenario-parameterized linear optimization models.
//
// A Template is a symbolic description: variable declarations (continuous /
// integer / binary, bounded, first-stage or recourse), linear constraint
// forms whose coefficients may reference named parameters, and an objective
// split into a deterministic part and an expected (scenario-weighted) part.
//
// Bind is the single explicit compile step: it resolves every parameter
// reference against a base table and a scenario set, replicates each
// scenario-indexed constraint exactly once per scenario (the SAA
// transformation) and expands recourse variables into one column per
// scenario. The result is a Bound — a concrete sparse LP/MIP instance that
// package solve hands to a solver backend.
//
// Stage semantics:
//
//   - HereAndNow variables are shared across all scenario-indexed rows: one
//     column regardless of the number of scenarios (the "here-and-now"
//     decision of two-stage stochastic programming).
//   - Recourse variables get one column per scenario; their objective terms
//     are weighted by the scenario probability when added through
//     ExpectedObjective.
//
// Bind variants cover the standard stochastic-programming analyses:
//
//   - Bind          — the full two-stage (SAA) instance.
//   - BindScenario  — a single realization treated as certain (hindsight).
//   - BindMean      — the certainty-equivalent instance on the mean scenario.
//   - BindFixed     — the full instance with first-stage decisions clamped,
//     used to evaluate a candidate decision against the true scenarios.
//
// All binds are pure: no I/O, no shared state between the produced Bound
// instances, so independent solves of separately bound models are safe to
// run concurrently.
//
// Builder errors (duplicate variables, foreign variables, recourse
// variables in deterministic rows, bad bounds) are sticky: construction
// methods keep chaining and the first error surfaces from the next Bind.
// Parameter-resolution errors (ErrUnknownParam) fail fast at bind, before
// any solve is attempted.
package model
