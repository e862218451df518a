// Package analytics derives behavioural profiles, risk signals, patterns,
// recommendations and routines from habit and task history. Every function
// is pure: the reference instant is passed in and no state is kept.
package analytics

import (
	"time"

	"github.com/alexanderramin/rhythm/internal/domain"
	"github.com/alexanderramin/rhythm/internal/timeline"
)

const minTrackedDays = 14

// ProfileInput is an immutable snapshot of the caller's storage.
type ProfileInput struct {
	Months     map[string]domain.MonthRecord
	Weeks      map[string]domain.WeekRecord
	Now        time.Time
	MonthsBack int
	WeeksBack  int
}

// BuildProfile runs the full analysis pipeline:
// timeline -> habit profiles -> mood/focus -> procrastination/burnout ->
// patterns, recommendations and routines.
func BuildProfile(in ProfileInput) domain.UserBehaviorProfile {
	days := timeline.BuildDays(in.Months, in.Now, in.MonthsBack)
	weeks := timeline.BuildWeeks(in.Weeks, in.Now, in.WeeksBack)
	habits := CurrentHabits(in.Months, days, timeline.MonthKey(in.Now))

	insights := Analyze(days, habits, weeks, TasksOf(in.Weeks, weeks))

	return domain.UserBehaviorProfile{
		GeneratedAt:     in.Now,
		TrackedDays:     len(days),
		HasEnoughData:   len(days) >= minTrackedDays,
		Habits:          insights.Profiles,
		Mood:            insights.Mood,
		Focus:           insights.Focus,
		Procrastination: insights.Procrastination,
		Burnout:         insights.Burnout,
		Patterns:        DetectPatterns(insights),
		Recommendations: GenerateRecommendations(insights),
		Routines:        SuggestRoutines(insights, weeks, in.Now),
	}
}

// Analyze runs the profiler and every analyzer over an already aggregated window.
func Analyze(days []domain.DayRecord, habits []domain.Habit, weeks []domain.WeekSummary, tasks []domain.Task) Insights {
	profiles := ProfileHabits(days, habits)
	mood := AnalyzeMood(days)
	return Insights{
		TrackedDays: len(days),
		Profiles:    profiles,
		Mood:        mood,
		Focus:       AnalyzeFocus(days, profiles),
		Procrastination: AnalyzeProcrastination(ProcrastinationInput{
			Days:  days,
			Weeks: weeks,
			Tasks: tasks,
			Mood:  mood,
		}),
		Burnout: AnalyzeBurnout(BurnoutInput{
			Days:     days,
			Profiles: profiles,
			Mood:     mood,
		}),
	}
}

// TasksOf collects the tasks of the summarized weeks, oldest week first.
func TasksOf(records map[string]domain.WeekRecord, weeks []domain.WeekSummary) []domain.Task {
	var tasks []domain.Task
	for _, w := range weeks {
		tasks = append(tasks, records[w.Key].Tasks...)
	}
	return tasks
}
