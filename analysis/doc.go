// Package analysis runs the standard value-of-information study for a
// two-stage stochastic template: it solves the expected-value (mean)
// model, the stochastic model and the perfect-information (hindsight)
// expansion, and reports the derived metrics.
//
//   - EVM:  expected value of the mean-model decision. The template is
//     solved on the probability-weighted mean scenario, its here-and-now
//     decision is frozen, and that decision is re-evaluated against the
//     full scenario set.
//   - EVSS: expected value of the stochastic solution, the optimum of
//     the full two-stage model.
//   - EVPI: expected value under perfect information, the
//     probability-weighted average of per-scenario hindsight optima.
//   - VSS = EVSS - EVM and VPI = EVPI - EVSS (differences taken in the
//     improving direction of the template's sense, so both are
//     non-negative up to solver tolerance).
//
// For a maximization EVM <= EVSS <= EVPI; minimization reverses the
// chain. Evaluate checks the chain and fails with ErrInconsistent when
// solver answers violate it beyond tolerance.
//
// Every solve goes through the solve.Solver passed by the caller; the
// package holds no solver state of its own. Hindsight solves are
// independent and can run concurrently, see WithParallel.
package analysis
