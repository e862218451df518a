package testutil

import (
	"fmt"
	"time"

	"github.com/alexanderramin/rhythm/internal/domain"
	"github.com/google/uuid"
)

// RefNow is the fixed reference instant used across tests: Tuesday 2026-03-31 20:00 UTC.
var RefNow = time.Date(2026, time.March, 31, 20, 0, 0, 0, time.UTC)

// Habits builds habits with ids "h1", "h2", ... in argument order.
func Habits(names ...string) []domain.Habit {
	out := make([]domain.Habit, len(names))
	for i, n := range names {
		out[i] = domain.Habit{ID: fmt.Sprintf("h%d", i+1), Name: n}
	}
	return out
}

// History options
type HistoryOption func(*historyOptions)

type historyOptions struct {
	completed  func(day time.Time, habitID string) bool
	mood       func(day time.Time) int
	motivation func(day time.Time) int
}

// WithCompletion decides, per day and habit, whether the habit was completed.
func WithCompletion(fn func(day time.Time, habitID string) bool) HistoryOption {
	return func(s *historyOptions) {
		s.completed = fn
	}
}

func WithMood(fn func(day time.Time) int) HistoryOption {
	return func(s *historyOptions) {
		s.mood = fn
	}
}

func WithMotivation(fn func(day time.Time) int) HistoryOption {
	return func(s *historyOptions) {
		s.motivation = fn
	}
}

// AllDone marks every habit complete on every day.
func AllDone(time.Time, string) bool { return true }

// NoneDone marks every habit missed on every day.
func NoneDone(time.Time, string) bool { return false }

// Constant returns a day function yielding v.
func Constant(v int) func(time.Time) int {
	return func(time.Time) int { return v }
}

// NewHistory generates month records for the monthsBack months ending at now,
// tracking the same habits every month. Without options nothing is completed
// and mood/motivation are unlogged.
func NewHistory(now time.Time, monthsBack int, habits []domain.Habit, opts ...HistoryOption) map[string]domain.MonthRecord {
	o := &historyOptions{completed: NoneDone}
	for _, opt := range opts {
		opt(o)
	}

	out := make(map[string]domain.MonthRecord, monthsBack)
	for i := monthsBack - 1; i >= 0; i-- {
		first := time.Date(now.Year(), now.Month()-time.Month(i), 1, 0, 0, 0, 0, now.Location())
		key := first.Format("2006-01")
		rec := domain.MonthRecord{Key: key, Habits: habits, Days: map[int]domain.DayEntry{}}
		last := first.AddDate(0, 1, -1).Day()
		for d := 1; d <= last; d++ {
			day := time.Date(first.Year(), first.Month(), d, 0, 0, 0, 0, now.Location())
			if day.After(now) {
				break
			}
			var entry domain.DayEntry
			for _, h := range habits {
				if o.completed(day, h.ID) {
					entry.CompletedHabitIDs = append(entry.CompletedHabitIDs, h.ID)
				}
			}
			if o.mood != nil {
				entry.Mood = o.mood(day)
			}
			if o.motivation != nil {
				entry.Motivation = o.motivation(day)
			}
			rec.Days[d] = entry
		}
		out[key] = rec
	}
	return out
}

// Task options
type TaskOption func(*domain.Task)

func WithCompleted() TaskOption {
	return func(t *domain.Task) {
		t.Completed = true
	}
}

func WithTaskID(id string) TaskOption {
	return func(t *domain.Task) {
		t.ID = id
	}
}

func NewTestTask(text string, dayIndex int, opts ...TaskOption) domain.Task {
	t := domain.Task{
		ID:       uuid.New().String(),
		Text:     text,
		DayIndex: dayIndex,
	}
	for _, opt := range opts {
		opt(&t)
	}
	return t
}

// NewWeek builds a week record for the ISO week containing day.
func NewWeek(day time.Time, tasks ...domain.Task) domain.WeekRecord {
	y, w := day.ISOWeek()
	return domain.WeekRecord{
		Key:   fmt.Sprintf("%04d-W%02d", y, w),
		Tasks: tasks,
	}
}

// Weeks indexes week records by key.
func Weeks(records ...domain.WeekRecord) map[string]domain.WeekRecord {
	out := make(map[string]domain.WeekRecord, len(records))
	for _, r := range records {
		out[r.Key] = r
	}
	return out
}
