package analytics

import (
	"fmt"
	"testing"

	"github.com/alexanderramin/rhythm/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeBurnout_ThrivingWithoutSignals(t *testing.T) {
	got := AnalyzeBurnout(BurnoutInput{})

	assert.Equal(t, 0, got.RiskLevel)
	assert.Equal(t, domain.StageThriving, got.Stage)
	assert.NotNil(t, got.Factors)
	assert.Empty(t, got.Factors)
	assert.Nil(t, got.DaysUntilCritical)
	assert.Len(t, got.Suggestions, 1)
}

func TestAnalyzeBurnout_EveryFactorFires(t *testing.T) {
	profiles := make([]domain.HabitProfile, 10)
	for i := range profiles {
		profiles[i] = domain.HabitProfile{HabitID: fmt.Sprintf("h%d", i), AbandonmentRisk: 80}
	}
	// a week at 100% followed by a week at 0%, never a perfect day
	days := ratesToDays(100, 100, 100, 100, 100, 100, 100, 0, 0, 0, 0, 0, 0, 0)
	for i := range days {
		days[i].TotalHabits = 2
	}
	mood := domain.MoodAnalysis{SampleSize: 14, AverageMood: 3, MoodTrend: -3, MotivationTrend: -3}

	got := AnalyzeBurnout(BurnoutInput{Days: days, Profiles: profiles, Mood: mood})

	require.Len(t, got.Factors, 7)
	impacts := map[string]int{}
	for _, f := range got.Factors {
		impacts[f.Label] = f.Impact
	}
	assert.Equal(t, map[string]int{
		"Mood declining":        20,
		"Motivation declining":  15,
		"Habit overload":        9,
		"Persistently low mood": 15,
		"Completion dropping":   20,
		"Habits slipping":       15,
		"No perfect day lately": 10,
	}, impacts)
	assert.Equal(t, 100, got.RiskLevel, "sum is clamped")
	assert.Equal(t, domain.StageBurnout, got.Stage)
	assert.Nil(t, got.DaysUntilCritical, "already critical")
	assert.Len(t, got.Suggestions, 3)
}

func TestAnalyzeBurnout_ProjectsDaysUntilCritical(t *testing.T) {
	got := AnalyzeBurnout(BurnoutInput{Mood: domain.MoodAnalysis{MoodTrend: -1}})

	assert.Equal(t, 10, got.RiskLevel)
	require.NotNil(t, got.DaysUntilCritical)
	// (75-10) / (1*5) weeks
	assert.Equal(t, 91, *got.DaysUntilCritical)
}

func TestAnalyzeBurnout_SmallDeclinesIgnored(t *testing.T) {
	got := AnalyzeBurnout(BurnoutInput{Mood: domain.MoodAnalysis{MoodTrend: -0.4, MotivationTrend: -0.5}})

	assert.Empty(t, got.Factors)
	require.NotNil(t, got.DaysUntilCritical, "any negative mood trend projects")
}

func TestStageFor(t *testing.T) {
	assert.Equal(t, domain.StageThriving, StageFor(24))
	assert.Equal(t, domain.StageStrained, StageFor(25))
	assert.Equal(t, domain.StageWarning, StageFor(50))
	assert.Equal(t, domain.StageBurnout, StageFor(75))
	assert.Equal(t, domain.StageBurnout, StageFor(100))
}

func TestDaysSincePerfect(t *testing.T) {
	perfect := domain.DayRecord{TotalHabits: 1, CompletedHabitIDs: map[string]bool{"h1": true}}
	miss := domain.DayRecord{TotalHabits: 1}

	assert.Equal(t, 0, DaysSincePerfect(nil))
	assert.Equal(t, 0, DaysSincePerfect([]domain.DayRecord{miss, perfect}))
	assert.Equal(t, 2, DaysSincePerfect([]domain.DayRecord{perfect, miss, miss}))
	assert.Equal(t, 3, DaysSincePerfect([]domain.DayRecord{miss, miss, miss}))
}
