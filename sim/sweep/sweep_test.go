package sweep

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stocksim/stocksim/sim"
)

func baseParams() sim.Params {
	return sim.Params{
		ReorderPoint: 10,
		OrderUpTo:    40,
		Horizon:      50,
		ArrivalRate:  2.0,
		MeanDemand:   1.5,
		LeadTime:     2.0,
		UnitPrice:    50,
		UnitCost:     20,
		FixedCost:    100,
		HoldingRate:  1.0,
		Seed:         42,
	}
}

func TestRun1D_MatchesIndividualRuns(t *testing.T) {
	base := baseParams()
	values := []float64{0, 5, 10, 15, 20}

	points, err := Run1D(base, FieldReorderPoint, values)
	require.NoError(t, err)
	require.Len(t, points, len(values))

	for i, pt := range points {
		assert.Equal(t, values[i], pt.Value)
		p := base
		p.ReorderPoint = int(values[i])
		_, summary, err := sim.Run(p)
		require.NoError(t, err)
		assert.Equal(t, summary.FinalProfit, pt.Profit, "grid point s=%v", values[i])
	}
}

func TestRun1D_LeadTimeSweepIsDeterministic(t *testing.T) {
	base := baseParams()
	values := []float64{0.5, 1.0, 2.5, 5.0, 10.0}

	p1, err := Run1D(base, FieldLeadTime, values)
	require.NoError(t, err)
	p2, err := Run1D(base, FieldLeadTime, values)
	require.NoError(t, err)
	assert.Equal(t, p1, p2)
}

func TestRun1D_RejectsUnknownField(t *testing.T) {
	_, err := Run1D(baseParams(), Field("rate"), []float64{1, 2})
	assert.Error(t, err)
}

func TestRun1D_RejectsInvalidGridPoint(t *testing.T) {
	// Sweeping s past S violates S > s and must fail, not be skipped.
	base := baseParams()
	_, err := Run1D(base, FieldReorderPoint, []float64{0, float64(base.OrderUpTo)})
	assert.Error(t, err)
}

func TestPeak_PicksMaximumFirstOccurrenceWins(t *testing.T) {
	points := []Point{
		{Value: 0, Profit: 100},
		{Value: 5, Profit: 250},
		{Value: 10, Profit: 250},
		{Value: 15, Profit: 90},
	}
	best, ok := Peak(points)
	require.True(t, ok)
	assert.Equal(t, 5.0, best.Value)

	_, ok = Peak(nil)
	assert.False(t, ok)
}

func TestOptimize_BestCellIsTableArgmax(t *testing.T) {
	result, err := Optimize(baseParams(), Grid{SMax: 10, UpToMax: 40, Workers: 4})
	require.NoError(t, err)
	require.NotEmpty(t, result.Cells)

	for _, c := range result.Cells {
		assert.LessOrEqual(t, c.Profit, result.Best.Profit)
		assert.GreaterOrEqual(t, c.Profit, result.MinProfit)
		assert.LessOrEqual(t, c.Profit, result.MaxProfit)
	}
	assert.Equal(t, result.MaxProfit, result.Best.Profit)
	assert.GreaterOrEqual(t, result.MeanProfit, result.MinProfit)
	assert.LessOrEqual(t, result.MeanProfit, result.MaxProfit)
}

func TestOptimize_DeterministicAcrossWorkerCounts(t *testing.T) {
	// Every cell owns fresh state, so the result must not depend on how
	// many runs execute concurrently.
	serial, err := Optimize(baseParams(), Grid{SMax: 8, UpToMax: 30, Workers: 1})
	require.NoError(t, err)
	parallel, err := Optimize(baseParams(), Grid{SMax: 8, UpToMax: 30, Workers: 8})
	require.NoError(t, err)

	assert.Equal(t, serial.Cells, parallel.Cells)
	assert.Equal(t, serial.Best, parallel.Best)
}

func TestOptimize_CellsMatchSingleRuns(t *testing.T) {
	base := baseParams()
	result, err := Optimize(base, Grid{SMax: 4, UpToMax: 20, Workers: 2})
	require.NoError(t, err)

	for _, c := range result.Cells {
		p := base
		p.ReorderPoint = c.ReorderPoint
		p.OrderUpTo = c.OrderUpTo
		_, summary, err := sim.Run(p)
		require.NoError(t, err)
		assert.Equal(t, summary.FinalProfit, c.Profit, "cell (s=%d, S=%d)", c.ReorderPoint, c.OrderUpTo)
	}
}

func TestOptimize_EmptyGridFails(t *testing.T) {
	_, err := Optimize(baseParams(), Grid{SMax: 0, UpToMax: 0})
	assert.Error(t, err)
}
