// Package scenario: core types and sentinel error set.
// All constructors and methods in this package return ONLY the sentinels
// declared here; tests match them via errors.Is.

package scenario

import (
	"errors"
	"math"
	"sort"
)

// WeightTol is the absolute tolerance within which scenario probabilities
// must sum to one. Sets violating it are rejected, never renormalized.
const WeightTol = 1e-6

var (
	// ErrEmptySet is returned when a Set is constructed with no scenarios.
	ErrEmptySet = errors.New("scenario: empty scenario set")

	// ErrBadWeights is returned when a probability is negative or the
	// probabilities do not sum to one within WeightTol.
	ErrBadWeights = errors.New("scenario: probabilities must be non-negative and sum to 1")

	// ErrDuplicateID is returned when two scenarios in one Set share an ID,
	// or an ID is empty.
	ErrDuplicateID = errors.New("scenario: duplicate or empty scenario id")

	// ErrBadValue is returned when a probability or parameter value is NaN
	// or infinite at ingestion.
	ErrBadValue = errors.New("scenario: NaN or Inf value")

	// ErrUnknownID is returned by ByID for an ID absent from the Set.
	ErrUnknownID = errors.New("scenario: unknown scenario id")

	// ErrBadSampleSize is returned by Sample for a non-positive sample count.
	ErrBadSampleSize = errors.New("scenario: sample count must be > 0")

	// ErrNoDistributions is returned when a Sampler has no parameter
	// distributions configured.
	ErrNoDistributions = errors.New("scenario: sampler has no distributions")

	// ErrUnknownFamily is returned for a Dist with an unsupported family.
	ErrUnknownFamily = errors.New("scenario: unknown distribution family")

	// ErrBadTable is returned by FromTable when rows are inconsistent,
	// e.g. two rows assign the same (scenario, parameter) pair or a
	// scenario's rows disagree on its probability.
	ErrBadTable = errors.New("scenario: inconsistent parameter table")
)

// Scenario is one realization of the uncertain parameters: an identifier, a
// probability weight and named parameter values. Treat it as immutable once
// it is part of a Set; Params hands out a copy.
type Scenario struct {
	// ID identifies the scenario within its Set. Must be non-empty and
	// unique per Set.
	ID string

	// Probability is the scenario weight, >= 0. Within a Set, weights sum
	// to 1 within WeightTol.
	Probability float64

	// params maps uncertain parameter names to realized values.
	params map[string]float64
}

// New builds a Scenario from an id, probability and parameter values.
// The params map is copied; the caller keeps ownership of its argument.
func New(id string, probability float64, params map[string]float64) Scenario {
	cp := make(map[string]float64, len(params))
	for k, v := range params {
		cp[k] = v
	}

	return Scenario{ID: id, Probability: probability, params: cp}
}

// Param returns the realized value of a named parameter and whether the
// scenario carries it.
func (s Scenario) Param(name string) (float64, bool) {
	v, ok := s.params[name]

	return v, ok
}

// Params returns a copy of the full parameter mapping.
func (s Scenario) Params() map[string]float64 {
	cp := make(map[string]float64, len(s.params))
	for k, v := range s.params {
		cp[k] = v
	}

	return cp
}

// ParamNames returns the scenario's parameter names in ascending order.
// Deterministic ordering keeps table serialization and tests stable.
func (s Scenario) ParamNames() []string {
	names := make([]string, 0, len(s.params))
	for k := range s.params {
		names = append(names, k)
	}
	sort.Strings(names)

	return names
}

// validate checks a single scenario in isolation (finite values only;
// weight-sum checks belong to the Set).
func (s Scenario) validate() error {
	if s.ID == "" {
		return ErrDuplicateID
	}
	if math.IsNaN(s.Probability) || math.IsInf(s.Probability, 0) {
		return ErrBadValue
	}
	if s.Probability < 0 {
		return ErrBadWeights
	}
	for _, v := range s.params {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrBadValue
		}
	}

	return nil
}
