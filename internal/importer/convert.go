package importer

import (
	"sort"
	"strings"
	"time"

	"github.com/alexanderramin/rhythm/internal/domain"
	"github.com/google/uuid"
)

// Normalize returns a cleaned copy of a validated snapshot ready for
// persistence: names and texts trimmed, completion lists de-duplicated and
// day indices sorted. Call ValidateSnapshot first; Normalize assumes the
// snapshot is valid. The input is not modified.
func Normalize(s *Snapshot) *Snapshot {
	out := &Snapshot{
		Version: CurrentVersion,
		Months:  make([]domain.MonthRecord, 0, len(s.Months)),
		Weeks:   make([]domain.WeekRecord, 0, len(s.Weeks)),
	}

	for _, m := range s.Months {
		rec := domain.MonthRecord{
			Key:    m.Key,
			Habits: normalizeHabits(m.Habits),
			Days:   make(map[int]domain.DayEntry, len(m.Days)),
		}
		for day, e := range m.Days {
			rec.Days[day] = domain.DayEntry{
				CompletedHabitIDs: dedupe(e.CompletedHabitIDs),
				Mood:              e.Mood,
				Motivation:        e.Motivation,
			}
		}
		out.Months = append(out.Months, rec)
	}

	for _, w := range s.Weeks {
		rec := domain.WeekRecord{
			Key:    w.Key,
			Tasks:  make([]domain.Task, 0, len(w.Tasks)),
			Habits: normalizeHabits(w.Habits),
			Notes:  strings.TrimSpace(w.Notes),
		}
		for _, t := range w.Tasks {
			t.Text = strings.TrimSpace(t.Text)
			rec.Tasks = append(rec.Tasks, t)
		}
		if len(w.HabitCompletions) > 0 {
			rec.HabitCompletions = make(map[string][]int, len(w.HabitCompletions))
			for id, indices := range w.HabitCompletions {
				rec.HabitCompletions[id] = sortedUnique(indices)
			}
		}
		out.Weeks = append(out.Weeks, rec)
	}

	sort.Slice(out.Months, func(i, j int) bool { return out.Months[i].Key < out.Months[j].Key })
	sort.Slice(out.Weeks, func(i, j int) bool { return out.Weeks[i].Key < out.Weeks[j].Key })
	return out
}

// NewBatch describes one import of snap read from source.
func NewBatch(source, format string, snap *Snapshot, now time.Time) *domain.ImportBatch {
	return &domain.ImportBatch{
		ID:         uuid.New().String(),
		Source:     source,
		Format:     format,
		Months:     len(snap.Months),
		Weeks:      len(snap.Weeks),
		ImportedAt: now.UTC(),
	}
}

func normalizeHabits(habits []domain.Habit) []domain.Habit {
	if habits == nil {
		return nil
	}
	out := make([]domain.Habit, len(habits))
	for i, h := range habits {
		out[i] = domain.Habit{ID: h.ID, Name: strings.TrimSpace(h.Name)}
	}
	return out
}

// dedupe keeps the first occurrence of each id, preserving order.
func dedupe(ids []string) []string {
	if len(ids) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

func sortedUnique(indices []int) []int {
	out := append([]int(nil), indices...)
	sort.Ints(out)
	n := 0
	for i, v := range out {
		if i > 0 && v == out[n-1] {
			continue
		}
		out[n] = v
		n++
	}
	return out[:n]
}
