package domain

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarizeCashFlows_TypicalProject(t *testing.T) {
	flows := []float64{-100000, 20000, 20000, 20000, 20000, 20000}

	s := SummarizeCashFlows(flows)

	assert.Equal(t, 100000.0, s.TotalInvestment)
	assert.Equal(t, 100000.0, s.TotalRevenue)
	assert.Equal(t, 0.0, s.NetTotal)

	require.Len(t, s.Cumulative, 6)
	assert.Equal(t, -100000.0, s.Cumulative[0])
	assert.Equal(t, -40000.0, s.Cumulative[3])
	assert.Equal(t, 0.0, s.Cumulative[5])
}

func TestSummarizeCashFlows_TotalsCoverFullSeries(t *testing.T) {
	// 24 periods: the table shows 12 rows but totals must include all 24.
	flows := make([]float64, 24)
	flows[0] = -240000
	for i := 1; i < 24; i++ {
		flows[i] = 15000
	}

	s := SummarizeCashFlows(flows)

	assert.Len(t, s.Rows, DisplayPeriods)
	assert.Equal(t, 24, s.PeriodCount)
	assert.Equal(t, 240000.0, s.TotalInvestment)
	assert.Equal(t, float64(23*15000), s.TotalRevenue)

	// Rows mirror the cumulative series for the window they show.
	for _, row := range s.Rows {
		assert.Equal(t, s.Cumulative[row.Period], row.Cumulative)
	}
}

func TestSummarizeCashFlows_SignRestoredTotalsMatchSum(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for run := 0; run < 50; run++ {
		n := 1 + rng.Intn(40)
		flows := make([]float64, n)
		sum := 0.0
		for i := range flows {
			flows[i] = (rng.Float64() - 0.5) * 500000
			sum += flows[i]
		}

		s := SummarizeCashFlows(flows)

		assert.InDelta(t, sum, s.TotalRevenue-s.TotalInvestment, 1e-6)
		assert.InDelta(t, sum, s.Cumulative[n-1], 1e-6)

		// Cumulative(i) is the prefix sum at every period.
		prefix := 0.0
		for i, f := range flows {
			prefix += f
			assert.InDelta(t, prefix, s.Cumulative[i], 1e-6)
		}
	}
}

func TestSummarizeCashFlows_Empty(t *testing.T) {
	s := SummarizeCashFlows(nil)

	assert.Zero(t, s.TotalInvestment)
	assert.Zero(t, s.TotalRevenue)
	assert.Empty(t, s.Rows)
	assert.Empty(t, s.Cumulative)
}
