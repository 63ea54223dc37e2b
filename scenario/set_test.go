package scenario_test

import (
	"math"
	"testing"

	"github.com/recourse-go/recourse/scenario"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// popUpShop is the three-point demand distribution used across the
// package tests: 650/0.10, 400/0.60, 200/0.30.
func popUpShop(t *testing.T) *scenario.Set {
	t.Helper()

	set, err := scenario.NewSet(
		scenario.New("high", 0.10, map[string]float64{"demand": 650}),
		scenario.New("base", 0.60, map[string]float64{"demand": 400}),
		scenario.New("low", 0.30, map[string]float64{"demand": 200}),
	)
	require.NoError(t, err)

	return set
}

// TestNewSet_WeightSumViolation verifies that probabilities summing to 0.9
// are rejected with ErrBadWeights rather than silently normalized.
func TestNewSet_WeightSumViolation(t *testing.T) {
	_, err := scenario.NewSet(
		scenario.New("a", 0.5, nil),
		scenario.New("b", 0.4, nil),
	)
	assert.ErrorIs(t, err, scenario.ErrBadWeights, "sum 0.9 must be a configuration error")
}

// TestNewSet_NegativeWeight verifies a negative probability errors even
// when the sum is 1.
func TestNewSet_NegativeWeight(t *testing.T) {
	_, err := scenario.NewSet(
		scenario.New("a", -0.5, nil),
		scenario.New("b", 1.5, nil),
	)
	assert.ErrorIs(t, err, scenario.ErrBadWeights)
}

// TestNewSet_WithinTolerance accepts a sum off by less than WeightTol.
func TestNewSet_WithinTolerance(t *testing.T) {
	_, err := scenario.NewSet(
		scenario.New("a", 0.5, nil),
		scenario.New("b", 0.5+1e-9, nil),
	)
	assert.NoError(t, err, "1e-9 drift is within WeightTol")
}

// TestNewSet_DuplicateID covers repeated and empty IDs.
func TestNewSet_DuplicateID(t *testing.T) {
	_, err := scenario.NewSet(
		scenario.New("a", 0.5, nil),
		scenario.New("a", 0.5, nil),
	)
	assert.ErrorIs(t, err, scenario.ErrDuplicateID)

	_, err = scenario.NewSet(scenario.New("", 1, nil))
	assert.ErrorIs(t, err, scenario.ErrDuplicateID, "empty id is rejected")
}

// TestNewSet_NonFiniteValues rejects NaN/Inf parameters and probabilities.
func TestNewSet_NonFiniteValues(t *testing.T) {
	_, err := scenario.NewSet(scenario.New("a", 1, map[string]float64{"d": math.NaN()}))
	assert.ErrorIs(t, err, scenario.ErrBadValue)

	_, err = scenario.NewSet(scenario.New("a", math.Inf(1), nil))
	assert.ErrorIs(t, err, scenario.ErrBadValue)
}

// TestNewSet_Empty rejects a set with no scenarios.
func TestNewSet_Empty(t *testing.T) {
	_, err := scenario.NewSet()
	assert.ErrorIs(t, err, scenario.ErrEmptySet)
}

// TestNewSet_SingleScenario verifies the degenerate deterministic case is
// a valid set.
func TestNewSet_SingleScenario(t *testing.T) {
	set, err := scenario.NewSet(scenario.New("only", 1, map[string]float64{"demand": 42}))
	require.NoError(t, err)
	assert.Equal(t, 1, set.Len())

	v, ok := set.At(0).Param("demand")
	assert.True(t, ok)
	assert.Equal(t, 42.0, v)
}

// TestSet_Accessors covers order preservation, ByID and IDs.
func TestSet_Accessors(t *testing.T) {
	set := popUpShop(t)

	assert.Equal(t, []string{"high", "base", "low"}, set.IDs())
	assert.Equal(t, "base", set.At(1).ID)

	sc, err := set.ByID("low")
	require.NoError(t, err)
	assert.Equal(t, 0.30, sc.Probability)

	_, err = set.ByID("absent")
	assert.ErrorIs(t, err, scenario.ErrUnknownID)
}

// TestSet_Mean checks the probability-weighted mean parameter vector:
// 0.1*650 + 0.6*400 + 0.3*200 = 365.
func TestSet_Mean(t *testing.T) {
	mean := popUpShop(t).Mean()

	d, ok := mean.Param("demand")
	require.True(t, ok)
	assert.InDelta(t, 365.0, d, 1e-12)
	assert.Equal(t, 1.0, mean.Probability)
}

// TestEqual_UniformWeights verifies SAA weighting sums to exactly 1.
func TestEqual_UniformWeights(t *testing.T) {
	params := make([]map[string]float64, 7)
	for i := range params {
		params[i] = map[string]float64{"x": float64(i)}
	}

	set, err := scenario.Equal(params...)
	require.NoError(t, err)
	require.Equal(t, 7, set.Len())

	var sum float64
	for i := 0; i < set.Len(); i++ {
		sum += set.At(i).Probability
	}
	assert.Equal(t, 1.0, sum, "uniform weights must sum to exactly 1")
}

// TestSet_TableRoundTrip verifies the (scenario -> parameter -> value)
// mapping survives Table/FromTable exactly, for all scenarios.
func TestSet_TableRoundTrip(t *testing.T) {
	set, err := scenario.NewSet(
		scenario.New("a", 0.25, map[string]float64{"demand": 650, "price": 40}),
		scenario.New("b", 0.75, map[string]float64{"demand": 200, "price": 38.5}),
	)
	require.NoError(t, err)

	back, err := scenario.FromTable(set.Table())
	require.NoError(t, err)

	require.Equal(t, set.Len(), back.Len())
	for i := 0; i < set.Len(); i++ {
		want, got := set.At(i), back.At(i)
		assert.Equal(t, want.ID, got.ID)
		assert.Equal(t, want.Probability, got.Probability)
		assert.Equal(t, want.Params(), got.Params())
	}
}

// TestFromTable_Conflicts rejects duplicate cells and probability drift.
func TestFromTable_Conflicts(t *testing.T) {
	_, err := scenario.FromTable([]scenario.Row{
		{Scenario: "a", Probability: 1, Param: "d", Value: 1},
		{Scenario: "a", Probability: 1, Param: "d", Value: 2},
	})
	assert.ErrorIs(t, err, scenario.ErrBadTable, "duplicate (scenario,param) cell")

	_, err = scenario.FromTable([]scenario.Row{
		{Scenario: "a", Probability: 0.5, Param: "d", Value: 1},
		{Scenario: "a", Probability: 0.6, Param: "e", Value: 2},
	})
	assert.ErrorIs(t, err, scenario.ErrBadTable, "conflicting probabilities")
}

// TestScenario_ParamsIsCopy guards immutability of a built scenario.
func TestScenario_ParamsIsCopy(t *testing.T) {
	src := map[string]float64{"demand": 650}
	sc := scenario.New("a", 1, src)

	src["demand"] = 0
	v, _ := sc.Param("demand")
	assert.Equal(t, 650.0, v, "constructor must copy the params map")

	sc.Params()["demand"] = -1
	v, _ = sc.Param("demand")
	assert.Equal(t, 650.0, v, "accessor must hand out a copy")
}
