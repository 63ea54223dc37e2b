package analysis

import (
	"errors"
	"math"

	"github.com/recourse-go/recourse/model"
	"github.com/recourse-go/recourse/solve"
)

var (
	// ErrNilTemplate is returned by Evaluate for a nil template.
	ErrNilTemplate = errors.New("analysis: nil template")

	// ErrNilSolver is returned by Evaluate for a nil solver.
	ErrNilSolver = errors.New("analysis: nil solver")

	// ErrInconsistent is returned when the solved metrics violate the
	// EVM <= EVSS <= EVPI chain (maximization; reversed for
	// minimization) beyond tolerance. It indicates solver trouble, not a
	// modeling error.
	ErrInconsistent = errors.New("analysis: inconsistent metrics")
)

// chainTol is the relative tolerance for the metric monotonicity check.
const chainTol = 1e-6

// Metric is one solved objective value together with the solver status
// that produced it. Value is NaN when the status is not optimal.
type Metric struct {
	Value  float64
	Status solve.Status
}

// OK reports whether the metric comes from an optimal solve.
func (m Metric) OK() bool { return m.Status == solve.StatusOptimal }

// metric wraps a solve outcome.
func metric(res *solve.Result) Metric {
	if !res.IsOptimal() {
		return Metric{Value: math.NaN(), Status: res.Status}
	}

	return Metric{Value: res.Objective, Status: solve.StatusOptimal}
}

// Summary is the full result of one Evaluate run.
type Summary struct {
	// Model is the template name, Sense its optimization direction.
	Model string
	Sense model.Sense

	// Scenarios is the size of the evaluated scenario set.
	Scenarios int

	// The three primary metrics.
	EVM  Metric
	EVSS Metric
	EVPI Metric

	// VSS is the value of the stochastic solution, EVSS - EVM in the
	// improving direction. NaN when either input metric is not optimal.
	VSS float64

	// VPI is the value of perfect information, EVPI - EVSS in the
	// improving direction. NaN when either input metric is not optimal.
	VPI float64

	// HereAndNow is the stochastic model's first-stage decision.
	HereAndNow map[string]float64

	// MeanDecision is the mean model's first-stage decision, the one EVM
	// re-evaluates.
	MeanDecision map[string]float64

	// Hindsight holds the per-scenario perfect-information optima, keyed
	// by scenario ID.
	Hindsight map[string]Metric
}

// improvement returns "to - from" oriented so that a positive value
// means to improves on from under sense.
func improvement(sense model.Sense, from, to Metric) float64 {
	if !from.OK() || !to.OK() {
		return math.NaN()
	}
	d := to.Value - from.Value
	if sense == model.Minimize {
		d = -d
	}

	return d
}
