package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClampInt(t *testing.T) {
	cases := []struct {
		v, lo, hi, want int
	}{
		{-5, 0, 100, 0},
		{50, 0, 100, 50},
		{140, 0, 100, 100},
		{3, 5, 98, 5},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ClampInt(tc.v, tc.lo, tc.hi), "v=%d", tc.v)
	}
}

func TestRoundPct(t *testing.T) {
	assert.Equal(t, 67, RoundPct(2.0/3.0))
	assert.Equal(t, 0, RoundPct(0))
	assert.Equal(t, 100, RoundPct(1))
}

func TestVariance_ConstantSeriesIsZero(t *testing.T) {
	assert.Equal(t, 0.0, Variance([]float64{0.5, 0.5, 0.5}))
	assert.Equal(t, 0.0, Variance([]float64{0.5}))
}

func TestVariance_Population(t *testing.T) {
	// mean 0.5, deviations ±0.5
	assert.InDelta(t, 0.25, Variance([]float64{0, 1}), 1e-9)
}

func TestPearson(t *testing.T) {
	assert.InDelta(t, 1.0, Pearson([]float64{1, 2, 3}, []float64{10, 20, 30}), 1e-9)
	assert.InDelta(t, -1.0, Pearson([]float64{1, 2, 3}, []float64{3, 2, 1}), 1e-9)
	assert.Equal(t, 0.0, Pearson([]float64{1, 1, 1}, []float64{1, 2, 3}), "zero variance")
	assert.Equal(t, 0.0, Pearson([]float64{1}, []float64{1}), "too short")
}

func TestWindowTrend(t *testing.T) {
	vals := []float64{1, 1, 3, 3}
	assert.InDelta(t, 2.0, WindowTrend(vals, 2), 1e-9)
	assert.Equal(t, 0.0, WindowTrend(vals[:3], 2), "insufficient data")
}

func TestWeekdayIndex(t *testing.T) {
	assert.Equal(t, 0, WeekdayIndex(time.Monday))
	assert.Equal(t, 6, WeekdayIndex(time.Sunday))
	assert.Equal(t, 5, WeekdayIndex(time.Saturday))
}

func TestDayRecord_IsPerfect(t *testing.T) {
	d := DayRecord{TotalHabits: 2, CompletedHabitIDs: map[string]bool{"a": true, "b": true}}
	assert.True(t, d.IsPerfect())

	d.TotalHabits = 3
	assert.False(t, d.IsPerfect())

	empty := DayRecord{}
	assert.False(t, empty.IsPerfect(), "untracked day is never perfect")
}

func TestWeekSummary_CompletionRate(t *testing.T) {
	assert.Equal(t, -1, WeekSummary{}.CompletionRate())
	assert.Equal(t, 75, WeekSummary{TotalTasks: 4, CompletedTasks: 3}.CompletionRate())
}

func TestPriorityRank(t *testing.T) {
	assert.Less(t, PriorityHigh.Rank(), PriorityMedium.Rank())
	assert.Less(t, PriorityMedium.Rank(), PriorityLow.Rank())
}
