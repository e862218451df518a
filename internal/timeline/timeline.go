// Package timeline flattens month- and week-keyed records into bounded,
// chronologically ordered windows anchored at a reference instant.
package timeline

import (
	"fmt"
	"time"

	"github.com/alexanderramin/rhythm/internal/domain"
)

const (
	monthKeyLayout = "2006-01"

	DefaultMonthsBack = 3
	DefaultWeeksBack  = 6
)

// StartOfDay returns midnight of t in t's location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// MonthKey returns the "YYYY-MM" storage key for t.
func MonthKey(t time.Time) string {
	return t.Format(monthKeyLayout)
}

// ParseMonthKey parses a "YYYY-MM" key into the first day of that month.
func ParseMonthKey(key string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(monthKeyLayout, key, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid month key %q (expected YYYY-MM): %w", key, err)
	}
	return t, nil
}

// BuildDays walks the trailing monthsBack calendar months (the current month
// included) and returns one DayRecord per tracked day, oldest first. Days
// after now are never emitted. Months without habits are skipped.
func BuildDays(months map[string]domain.MonthRecord, now time.Time, monthsBack int) []domain.DayRecord {
	if monthsBack <= 0 {
		monthsBack = DefaultMonthsBack
	}
	today := StartOfDay(now)
	loc := now.Location()

	var days []domain.DayRecord
	for i := monthsBack - 1; i >= 0; i-- {
		first := time.Date(today.Year(), today.Month()-time.Month(i), 1, 0, 0, 0, 0, loc)
		rec, ok := months[MonthKey(first)]
		if !ok || len(rec.Habits) == 0 {
			continue
		}
		days = append(days, monthDays(rec, first, today)...)
	}
	return days
}

func monthDays(rec domain.MonthRecord, first, today time.Time) []domain.DayRecord {
	tracked := make([]string, 0, len(rec.Habits))
	known := make(map[string]bool, len(rec.Habits))
	for _, h := range rec.Habits {
		if known[h.ID] {
			continue
		}
		known[h.ID] = true
		tracked = append(tracked, h.ID)
	}

	lastDay := first.AddDate(0, 1, -1).Day()
	out := make([]domain.DayRecord, 0, lastDay)
	for d := 1; d <= lastDay; d++ {
		date := time.Date(first.Year(), first.Month(), d, 0, 0, 0, 0, first.Location())
		if date.After(today) {
			break
		}
		entry := rec.Days[d]
		completed := make(map[string]bool, len(entry.CompletedHabitIDs))
		for _, id := range entry.CompletedHabitIDs {
			if known[id] {
				completed[id] = true
			}
		}
		out = append(out, domain.DayRecord{
			Date:              date,
			DayOfWeek:         domain.WeekdayIndex(date.Weekday()),
			CompletedHabitIDs: completed,
			TrackedHabitIDs:   tracked,
			TotalHabits:       len(tracked),
			CompletionRate:    domain.RoundPct(float64(len(completed)) / float64(len(tracked))),
			Mood:              clampScale(entry.Mood),
			Motivation:        clampScale(entry.Motivation),
		})
	}
	return out
}

// clampScale keeps logged 1..10 values in range and maps "not logged" to 0.
func clampScale(v int) int {
	if v <= 0 {
		return 0
	}
	return domain.ClampInt(v, 1, 10)
}

// Today returns the DayRecord for now's calendar day, if tracked.
func Today(days []domain.DayRecord, now time.Time) (domain.DayRecord, bool) {
	if len(days) == 0 {
		return domain.DayRecord{}, false
	}
	last := days[len(days)-1]
	if last.Date.Equal(StartOfDay(now)) {
		return last, true
	}
	return domain.DayRecord{}, false
}

// Trailing returns the last n records (or all of them if fewer exist).
func Trailing(days []domain.DayRecord, n int) []domain.DayRecord {
	if n >= len(days) {
		return days
	}
	return days[len(days)-n:]
}
