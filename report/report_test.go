package report_test

import (
	"math"
	"strings"
	"testing"

	"github.com/recourse-go/recourse/analysis"
	"github.com/recourse-go/recourse/model"
	"github.com/recourse-go/recourse/report"
	"github.com/recourse-go/recourse/scenario"
	"github.com/recourse-go/recourse/solve"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func popupSummary() *analysis.Summary {
	return &analysis.Summary{
		Model:     "popup",
		Sense:     model.Maximize,
		Scenarios: 3,
		EVM:       analysis.Metric{Value: 8339, Status: solve.StatusOptimal},
		EVSS:      analysis.Metric{Value: 8920, Status: solve.StatusOptimal},
		EVPI:      analysis.Metric{Value: 10220, Status: solve.StatusOptimal},
		VSS:       581,
		VPI:       1300,
		HereAndNow: map[string]float64{
			"x": 400,
		},
		MeanDecision: map[string]float64{
			"x": 365,
		},
		Hindsight: map[string]analysis.Metric{
			"high": {Value: 18200, Status: solve.StatusOptimal},
			"base": {Value: 11200, Status: solve.StatusOptimal},
			"low":  {Value: 5600, Status: solve.StatusOptimal},
		},
	}
}

func TestWrite_Optimal(t *testing.T) {
	out, err := report.String(popupSummary())
	require.NoError(t, err)

	assert.Contains(t, out, "popup (maximize, 3 scenarios)")
	for _, line := range []string{"EVM", "EVSS", "EVPI", "VSS", "VPI"} {
		assert.Contains(t, out, line)
	}
	assert.Contains(t, out, "8339")
	assert.Contains(t, out, "8920")
	assert.Contains(t, out, "10220")
	assert.Contains(t, out, "581")
	assert.Contains(t, out, "1300")
	assert.Contains(t, out, "here-and-now decision")
	assert.Contains(t, out, "mean-model decision")

	// Hindsight section sorts by scenario ID.
	base := strings.Index(out, "base")
	high := strings.Index(out, "high")
	low := strings.Index(out, "low")
	require.True(t, base >= 0 && high >= 0 && low >= 0)
	assert.Less(t, base, high)
	assert.Less(t, high, low)
}

func TestWrite_NonOptimalFlagged(t *testing.T) {
	s := popupSummary()
	s.EVM = analysis.Metric{Value: math.NaN(), Status: solve.StatusInfeasible}
	s.VSS = math.NaN()

	out, err := report.String(s)
	require.NoError(t, err)

	// The failed metric shows its status, never a number.
	assert.Contains(t, out, "infeasible")
	assert.Contains(t, out, "undefined")
	assert.NotContains(t, out, "NaN")
}

func TestWrite_Deterministic(t *testing.T) {
	first, err := report.String(popupSummary())
	require.NoError(t, err)
	second, err := report.String(popupSummary())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestWriteScenarios(t *testing.T) {
	set, err := scenario.NewSet(
		scenario.New("high", 0.10, map[string]float64{"demand": 650}),
		scenario.New("base", 0.60, map[string]float64{"demand": 400}),
		scenario.New("low", 0.30, map[string]float64{"demand": 200}),
	)
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, report.WriteScenarios(&sb, set))
	out := sb.String()

	assert.Contains(t, out, "scenario")
	assert.Contains(t, out, "probability")
	assert.Contains(t, out, "demand")
	// Rows keep set order, not sorted order.
	assert.Less(t, strings.Index(out, "high"), strings.Index(out, "base"))
	assert.Less(t, strings.Index(out, "base"), strings.Index(out, "low"))
	assert.Contains(t, out, "650")

	assert.ErrorIs(t, report.WriteScenarios(&sb, nil), scenario.ErrEmptySet)
}

func TestWrite_NilSummary(t *testing.T) {
	err := report.Write(&strings.Builder{}, nil)
	assert.ErrorIs(t, err, report.ErrNilSummary)
}
