// Package scenario models finite sets of uncertain-parameter realizations
// for scenario-based (two-stage / SAA) stochastic optimization.
//
// What it provides:
//
//   - Scenario — one realization: an identifier, a probability weight and a
//     mapping from named uncertain parameters to realized numeric values.
//     Immutable once built; accessors hand out copies.
//   - Set — an ordered, validated collection of scenarios. Construction
//     fails unless every probability is non-negative and the weights sum to
//     one within WeightTol. Weights are never silently normalized.
//   - Sampler — independent, identically-weighted sampling (weight 1/T for
//     T samples) from gonum/stat/distuv distributions with an explicit seed.
//     The sample sequence is restartable only by persisting the seed.
//   - YAML ingestion (Load / LoadFile) and an exact parameter-table
//     round-trip (Table / FromTable) for interop with tabular data sources.
//
// Design notes:
//
//   - Deterministic: no time-based randomness; seeds are caller-supplied.
//   - Strict sentinels: all user-triggered failures return errors declared
//     in types.go and are matched with errors.Is; nothing panics on input.
//   - The probability-weighted mean of a Set (Mean) is the basis of the
//     expected-value-of-mean-solution analysis in package analysis.
package scenario
