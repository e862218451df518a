package timeline

import (
	"fmt"
	"time"

	"github.com/alexanderramin/rhythm/internal/domain"
)

// WeekKey returns the ISO week storage key ("YYYY-Www") containing t.
func WeekKey(t time.Time) string {
	y, w := t.ISOWeek()
	return fmt.Sprintf("%04d-W%02d", y, w)
}

// WeekStart returns the Monday (midnight, in loc) of an ISO week key.
func WeekStart(key string, loc *time.Location) (time.Time, error) {
	var year, week int
	if _, err := fmt.Sscanf(key, "%d-W%d", &year, &week); err != nil {
		return time.Time{}, fmt.Errorf("invalid week key %q (expected YYYY-Www): %w", key, err)
	}
	if week < 1 || week > 53 {
		return time.Time{}, fmt.Errorf("invalid week key %q: week out of range", key)
	}
	// January 4th is always in ISO week 1.
	jan4 := time.Date(year, time.January, 4, 0, 0, 0, 0, loc)
	monday := jan4.AddDate(0, 0, -domain.WeekdayIndex(jan4.Weekday()))
	start := monday.AddDate(0, 0, (week-1)*7)
	if WeekKey(start) != fmt.Sprintf("%04d-W%02d", year, week) {
		return time.Time{}, fmt.Errorf("invalid week key %q: year has no such week", key)
	}
	return start, nil
}

// MondayOf returns midnight of the Monday of t's week.
func MondayOf(t time.Time) time.Time {
	day := StartOfDay(t)
	return day.AddDate(0, 0, -domain.WeekdayIndex(day.Weekday()))
}

// TaskDate resolves a task's calendar date from its week key and day index.
func TaskDate(weekKey string, dayIndex int, loc *time.Location) (time.Time, error) {
	start, err := WeekStart(weekKey, loc)
	if err != nil {
		return time.Time{}, err
	}
	return start.AddDate(0, 0, domain.ClampInt(dayIndex, 0, 6)), nil
}

// BuildWeeks summarizes the trailing n ISO weeks (the current week included),
// oldest first. Weeks missing from the input produce empty summaries.
// An incomplete task is overdue when its day is strictly before today.
func BuildWeeks(weeks map[string]domain.WeekRecord, now time.Time, n int) []domain.WeekSummary {
	if n <= 0 {
		n = DefaultWeeksBack
	}
	today := StartOfDay(now)
	thisMonday := MondayOf(now)

	out := make([]domain.WeekSummary, 0, n)
	for i := n - 1; i >= 0; i-- {
		start := thisMonday.AddDate(0, 0, -7*i)
		key := WeekKey(start)
		summary := domain.WeekSummary{Key: key, Start: start}
		for _, task := range weeks[key].Tasks {
			summary.TotalTasks++
			if task.Completed {
				summary.CompletedTasks++
				continue
			}
			if start.AddDate(0, 0, domain.ClampInt(task.DayIndex, 0, 6)).Before(today) {
				summary.OverdueTasks++
			}
		}
		out = append(out, summary)
	}
	return out
}

// TotalsOf sums task counts across summaries.
func TotalsOf(weeks []domain.WeekSummary) (total, completed, overdue int) {
	for _, w := range weeks {
		total += w.TotalTasks
		completed += w.CompletedTasks
		overdue += w.OverdueTasks
	}
	return total, completed, overdue
}
