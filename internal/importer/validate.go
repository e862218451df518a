package importer

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/alexanderramin/rhythm/internal/domain"
	"github.com/alexanderramin/rhythm/internal/timeline"
)

const (
	minScale = 0
	maxScale = 10
)

// ValidateSnapshot checks the snapshot for errors before conversion.
// Returns a slice of all validation errors found.
func ValidateSnapshot(s *Snapshot) []error {
	var errs []error

	if s.Version < 0 || s.Version > CurrentVersion {
		errs = append(errs, fmt.Errorf("version %d is not supported (max %d)", s.Version, CurrentVersion))
	}
	if len(s.Months) == 0 && len(s.Weeks) == 0 {
		errs = append(errs, fmt.Errorf("snapshot contains no months or weeks"))
	}

	seen := make(map[string]bool)
	for i := range s.Months {
		errs = append(errs, validateMonth(i, s, seen)...)
	}

	seen = make(map[string]bool)
	tasks := make(map[string]taskOwner)
	for i := range s.Weeks {
		errs = append(errs, validateWeek(i, s, seen, tasks)...)
	}

	return errs
}

func validateMonth(i int, s *Snapshot, seen map[string]bool) []error {
	m := s.Months[i]
	prefix := fmt.Sprintf("months[%d]", i)
	var errs []error

	if m.Key == "" {
		return append(errs, fmt.Errorf("%s.key is required", prefix))
	}
	first, err := timeline.ParseMonthKey(m.Key, time.UTC)
	if err != nil || timeline.MonthKey(first) != m.Key {
		return append(errs, fmt.Errorf("%s.key: invalid month key %q (expected YYYY-MM)", prefix, m.Key))
	}
	prefix = fmt.Sprintf("months[%d] (%s)", i, m.Key)
	if seen[m.Key] {
		errs = append(errs, fmt.Errorf("%s: duplicate month key", prefix))
	}
	seen[m.Key] = true

	known, habitErrs := validateHabits(prefix, m.Habits)
	errs = append(errs, habitErrs...)

	length := first.AddDate(0, 1, -1).Day()
	days := make([]int, 0, len(m.Days))
	for day := range m.Days {
		days = append(days, day)
	}
	sort.Ints(days)
	for _, day := range days {
		entry := m.Days[day]
		dp := fmt.Sprintf("%s.days[%d]", prefix, day)
		if day < 1 || day > length {
			errs = append(errs, fmt.Errorf("%s: day out of range 1..%d", dp, length))
			continue
		}
		errs = append(errs, validateScale(dp+".mood", entry.Mood)...)
		errs = append(errs, validateScale(dp+".motivation", entry.Motivation)...)
		for _, id := range entry.CompletedHabitIDs {
			if !known[id] {
				errs = append(errs, fmt.Errorf("%s: completion references unknown habit %q", dp, id))
			}
		}
	}

	return errs
}

// taskOwner is the first week a task id appeared in. Task ids are global:
// a task carried into a later week keeps its id and text.
type taskOwner struct {
	week string
	text string
}

func validateWeek(i int, s *Snapshot, seen map[string]bool, tasks map[string]taskOwner) []error {
	w := s.Weeks[i]
	prefix := fmt.Sprintf("weeks[%d]", i)
	var errs []error

	if w.Key == "" {
		return append(errs, fmt.Errorf("%s.key is required", prefix))
	}
	start, err := timeline.WeekStart(w.Key, time.UTC)
	if err != nil || timeline.WeekKey(start) != w.Key {
		return append(errs, fmt.Errorf("%s.key: invalid week key %q (expected YYYY-Www)", prefix, w.Key))
	}
	prefix = fmt.Sprintf("weeks[%d] (%s)", i, w.Key)
	if seen[w.Key] {
		errs = append(errs, fmt.Errorf("%s: duplicate week key", prefix))
	}
	seen[w.Key] = true

	taskIDs := make(map[string]bool, len(w.Tasks))
	for j, t := range w.Tasks {
		tp := fmt.Sprintf("%s.tasks[%d]", prefix, j)
		if t.ID == "" {
			errs = append(errs, fmt.Errorf("%s.id is required", tp))
		} else if taskIDs[t.ID] {
			errs = append(errs, fmt.Errorf("%s.id: duplicate task id %q", tp, t.ID))
		} else if owner, ok := tasks[t.ID]; ok && owner.week != w.Key && owner.text != strings.TrimSpace(t.Text) {
			errs = append(errs, fmt.Errorf("%s.id: task id %q already names %q in %s", tp, t.ID, owner.text, owner.week))
		} else if !ok {
			tasks[t.ID] = taskOwner{week: w.Key, text: strings.TrimSpace(t.Text)}
		}
		taskIDs[t.ID] = true
		if strings.TrimSpace(t.Text) == "" {
			errs = append(errs, fmt.Errorf("%s.text is required", tp))
		}
		if t.DayIndex < 0 || t.DayIndex > 6 {
			errs = append(errs, fmt.Errorf("%s.dayIndex %d out of range 0..6", tp, t.DayIndex))
		}
	}

	known, habitErrs := validateHabits(prefix, w.Habits)
	errs = append(errs, habitErrs...)
	ids := make([]string, 0, len(w.HabitCompletions))
	for id := range w.HabitCompletions {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		indices := w.HabitCompletions[id]
		hp := fmt.Sprintf("%s.habitCompletions[%s]", prefix, id)
		if id == "" {
			errs = append(errs, fmt.Errorf("%s.habitCompletions: empty habit id", prefix))
		} else if len(w.Habits) > 0 && !known[id] {
			errs = append(errs, fmt.Errorf("%s: unknown habit", hp))
		}
		for _, d := range indices {
			if d < 0 || d > 6 {
				errs = append(errs, fmt.Errorf("%s: day index %d out of range 0..6", hp, d))
			}
		}
	}

	return errs
}

// validateHabits checks ids and names and returns the set of known ids.
func validateHabits(prefix string, habits []domain.Habit) (map[string]bool, []error) {
	var errs []error
	known := make(map[string]bool, len(habits))
	for j, h := range habits {
		hp := fmt.Sprintf("%s.habits[%d]", prefix, j)
		if h.ID == "" {
			errs = append(errs, fmt.Errorf("%s.id is required", hp))
		} else if known[h.ID] {
			errs = append(errs, fmt.Errorf("%s.id: duplicate habit id %q", hp, h.ID))
		}
		if strings.TrimSpace(h.Name) == "" {
			errs = append(errs, fmt.Errorf("%s.name is required", hp))
		}
		known[h.ID] = true
	}
	return known, errs
}

func validateScale(field string, v int) []error {
	if v < minScale || v > maxScale {
		return []error{fmt.Errorf("%s %d out of range %d..%d", field, v, minScale, maxScale)}
	}
	return nil
}
