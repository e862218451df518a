package analytics

import (
	"testing"
	"time"

	"github.com/alexanderramin/rhythm/internal/domain"
	"github.com/alexanderramin/rhythm/internal/testutil"
	"github.com/alexanderramin/rhythm/internal/timeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ratesToDays(rates ...int) []domain.DayRecord {
	out := make([]domain.DayRecord, len(rates))
	for i, r := range rates {
		out[i] = domain.DayRecord{CompletionRate: r, TotalHabits: 1}
	}
	return out
}

func TestAnalyzeProcrastination_EmptyInput(t *testing.T) {
	got := AnalyzeProcrastination(ProcrastinationInput{})

	assert.Equal(t, 20, got.Score, "neutral mean completion of 50")
	assert.Equal(t, 50, got.MeanCompletion)
	assert.Equal(t, 0, got.OverdueRatio)
	assert.Equal(t, domain.RecoveryFast, got.RecoverySpeed)
	assert.NotNil(t, got.Triggers)
	assert.Empty(t, got.Triggers)
}

func TestRecoverySpeed(t *testing.T) {
	cases := []struct {
		name  string
		rates []int
		speed domain.RecoverySpeed
		avg   float64
	}{
		{"no slumps", []int{80, 90}, domain.RecoveryFast, 0},
		{"single days", []int{0, 100, 0, 100}, domain.RecoveryFast, 1},
		{"two to three days", []int{0, 0, 100, 0, 0, 0, 100}, domain.RecoveryModerate, 2.5},
		{"open slump counts", []int{100, 0, 0, 0, 0}, domain.RecoverySlow, 4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			speed, avg := recoverySpeed(ratesToDays(tc.rates...))
			assert.Equal(t, tc.speed, speed)
			assert.InDelta(t, tc.avg, avg, 0.001)
		})
	}
}

func TestAnalyzeProcrastination_WeekendAvoidance(t *testing.T) {
	months := testutil.NewHistory(testutil.RefNow, 1, testutil.Habits("Exercise"),
		testutil.WithCompletion(func(day time.Time, _ string) bool {
			return day.Weekday() != time.Saturday && day.Weekday() != time.Sunday
		}))
	days := timeline.BuildDays(months, testutil.RefNow, 1)

	got := AnalyzeProcrastination(ProcrastinationInput{Days: days})

	require.True(t, got.HasTrigger(domain.TriggerWeekendAvoidance))
	assert.Equal(t, 90, got.Triggers[0].Confidence)
	assert.False(t, got.HasTrigger(domain.TriggerMidweekDip))
	// weekend runs of 1 and 2 days average 1.8
	assert.Equal(t, domain.RecoveryModerate, got.RecoverySpeed)
	assert.Equal(t, 71, got.MeanCompletion)
	assert.Equal(t, 25, got.Score)
}

// weekdayDays builds `weeks` Monday-to-Thursday runs starting Monday 2026-03-02,
// with early (Mon/Tue) and mid (Wed/Thu) completion rates.
func weekdayDays(weeks, early, mid int) []domain.DayRecord {
	start := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	var out []domain.DayRecord
	for w := 0; w < weeks; w++ {
		for dow := 0; dow < 4; dow++ {
			rate := early
			if dow >= 2 {
				rate = mid
			}
			out = append(out, domain.DayRecord{
				Date:           start.AddDate(0, 0, 7*w+dow),
				DayOfWeek:      dow,
				CompletionRate: rate,
				TotalHabits:    1,
			})
		}
	}
	return out
}

func midweekTrigger(p domain.ProcrastinationAnalysis) (domain.ProcrastinationTrigger, bool) {
	for _, tr := range p.Triggers {
		if tr.Kind == domain.TriggerMidweekDip {
			return tr, true
		}
	}
	return domain.ProcrastinationTrigger{}, false
}

func TestAnalyzeProcrastination_MidweekDip(t *testing.T) {
	cases := []struct {
		name       string
		weeks      int
		early, mid int
		fires      bool
		confidence int
	}{
		{"gap of 20", 2, 80, 60, true, 80},
		{"large gap caps confidence", 2, 100, 20, true, 85},
		{"gap of exactly 15", 2, 75, 60, false, 0},
		{"too few samples", 1, 100, 0, false, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := AnalyzeProcrastination(ProcrastinationInput{Days: weekdayDays(tc.weeks, tc.early, tc.mid)})

			tr, ok := midweekTrigger(got)
			require.Equal(t, tc.fires, ok)
			if !tc.fires {
				return
			}
			assert.Equal(t, tc.confidence, tr.Confidence)
			assert.NotEmpty(t, tr.Title)
			assert.NotEmpty(t, tr.Suggestion)
		})
	}
}

func TestAnalyzeProcrastination_MidweekDipDescription(t *testing.T) {
	got := AnalyzeProcrastination(ProcrastinationInput{Days: weekdayDays(3, 80, 60)})

	tr, ok := midweekTrigger(got)
	require.True(t, ok)
	assert.Equal(t, "Wednesday and Thursday drop to 60% after a 80% start to the week.", tr.Description)
	assert.False(t, got.HasTrigger(domain.TriggerWeekendAvoidance), "no weekend samples")
}

func TestAnalyzeProcrastination_LowMoodTrigger(t *testing.T) {
	var days []domain.DayRecord
	for i := 0; i < 3; i++ {
		days = append(days,
			domain.DayRecord{Mood: 3, CompletionRate: 20},
			domain.DayRecord{Mood: 8, CompletionRate: 90})
	}

	got := AnalyzeProcrastination(ProcrastinationInput{Days: days})

	require.True(t, got.HasTrigger(domain.TriggerLowMood))
	assert.Equal(t, 95, got.Triggers[0].Confidence)
	assert.Contains(t, got.Triggers[0].Description, "20%")
}

func TestAnalyzeProcrastination_ComplexityAvoidance(t *testing.T) {
	tasks := []domain.Task{
		testutil.NewTestTask("deep research", 0),
		testutil.NewTestTask("long essay draft", 1),
		testutil.NewTestTask("big spreadsheet cleanup", 2),
		testutil.NewTestTask("quick email", 0, testutil.WithCompleted()),
		testutil.NewTestTask("quick call", 1, testutil.WithCompleted()),
		testutil.NewTestTask("short walk", 2, testutil.WithCompleted()),
	}

	got := AnalyzeProcrastination(ProcrastinationInput{Tasks: tasks})

	require.True(t, got.HasTrigger(domain.TriggerComplexityAvoidance))
	assert.Equal(t, 90, got.Triggers[0].Confidence)
}

func TestAnalyzeProcrastination_MotivationDecline(t *testing.T) {
	days := make([]domain.DayRecord, 14)
	for i := range days {
		days[i] = domain.DayRecord{Motivation: 5, CompletionRate: 60}
	}

	falling := AnalyzeProcrastination(ProcrastinationInput{Days: days, Mood: domain.MoodAnalysis{MotivationTrend: -2}})
	steady := AnalyzeProcrastination(ProcrastinationInput{Days: days, Mood: domain.MoodAnalysis{MotivationTrend: -0.5}})

	require.True(t, falling.HasTrigger(domain.TriggerMotivationDecline))
	assert.Equal(t, 80, falling.Triggers[0].Confidence)
	assert.False(t, steady.HasTrigger(domain.TriggerMotivationDecline))
}

func TestAnalyzeProcrastination_OverdueRatio(t *testing.T) {
	weeks := []domain.WeekSummary{
		{TotalTasks: 4, CompletedTasks: 2, OverdueTasks: 1},
		{TotalTasks: 6, CompletedTasks: 3, OverdueTasks: 2},
	}

	got := AnalyzeProcrastination(ProcrastinationInput{Weeks: weeks})

	assert.Equal(t, 30, got.OverdueRatio)
	assert.Equal(t, 29, got.Score)
}

func TestAnalyzeProcrastination_ScoreBounded(t *testing.T) {
	days := ratesToDays(0, 0, 0, 0, 0, 0, 0, 0)
	weeks := []domain.WeekSummary{{TotalTasks: 5, OverdueTasks: 5}}

	got := AnalyzeProcrastination(ProcrastinationInput{Days: days, Weeks: weeks})

	assert.LessOrEqual(t, got.Score, 100)
	assert.Equal(t, 85, got.Score)
}
