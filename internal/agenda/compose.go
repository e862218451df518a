// Package agenda composes the enhanced daily agenda: open habits, today's
// tasks and overdue tasks, each interpreted, scored and given a reminder.
package agenda

import (
	"fmt"
	"math"
	"time"

	"github.com/alexanderramin/rhythm/internal/analytics"
	"github.com/alexanderramin/rhythm/internal/domain"
	"github.com/alexanderramin/rhythm/internal/nlp"
	"github.com/alexanderramin/rhythm/internal/scheduler"
	"github.com/alexanderramin/rhythm/internal/timeline"
)

const (
	overdueLookbackWeeks = 2
	heavyDayHighPriority = 3
	greatConditionsAvg   = 70
)

// Input is an immutable snapshot of the caller's storage.
type Input struct {
	Months     map[string]domain.MonthRecord
	Weeks      map[string]domain.WeekRecord
	Now        time.Time
	MonthsBack int
	WeeksBack  int
	PeakHour   int // 0 derives the peak hour from focus analysis
}

type candidate struct {
	id       string
	kind     domain.AgendaItemKind
	text     string
	forceTop bool
}

// Compose builds the agenda for now's calendar day, sorted by priority and
// then by predicted complete-now score.
func Compose(in Input) domain.EnhancedDailyAgenda {
	days, habits, profiles, state := prepare(in)

	var candidates []candidate
	candidates = appendUnique(candidates, habitCandidates(days, habits, profiles, in.Now)...)
	candidates = appendUnique(candidates, todayTaskCandidates(in.Weeks, in.Now)...)
	candidates = appendUnique(candidates, overdueCandidates(in.Weeks, in.Now)...)

	items := make([]domain.AgendaItem, 0, len(candidates))
	for _, c := range candidates {
		items = append(items, buildItem(c, in.Now, state))
	}
	scheduler.CanonicalSort(items)

	return domain.EnhancedDailyAgenda{
		Date:    timeline.StartOfDay(in.Now),
		Items:   items,
		Summary: Summarize(items),
	}
}

// Describe interprets, schedules, scores and reminds a single free-text task
// against the same history Compose would use.
func Describe(in Input, text string) domain.AgendaItem {
	_, _, _, state := prepare(in)
	return buildItem(candidate{id: "adhoc", kind: domain.ItemTask, text: text}, in.Now, state)
}

func prepare(in Input) ([]domain.DayRecord, []domain.Habit, []domain.HabitProfile, scheduler.UserState) {
	days := timeline.BuildDays(in.Months, in.Now, in.MonthsBack)
	weeks := timeline.BuildWeeks(in.Weeks, in.Now, in.WeeksBack)
	habits := analytics.CurrentHabits(in.Months, days, timeline.MonthKey(in.Now))
	profiles := analytics.ProfileHabits(days, habits)

	peak := in.PeakHour
	if peak <= 0 {
		peak = analytics.AnalyzeFocus(days, profiles).PeakHour(scheduler.DefaultPeakHour)
	}
	return days, habits, profiles, scheduler.NewUserState(days, weeks, in.Now, peak)
}

func buildItem(c candidate, now time.Time, state scheduler.UserState) domain.AgendaItem {
	interp := nlp.InterpretTask(c.text)
	if c.forceTop {
		interp.Priority = domain.PriorityHigh
	}
	return domain.AgendaItem{
		ID:             c.id,
		Kind:           c.kind,
		Text:           c.text,
		Interpretation: interp,
		Schedule:       nlp.ParseSchedule(c.text, now),
		Prediction:     scheduler.ScoreTask(scheduler.ScoringInput{Task: interp, Now: now, State: state}),
		Reminder:       scheduler.GenerateReminder(scheduler.ReminderInput{Task: interp, Now: now, State: state}),
	}
}

// appendUnique returns a new slice holding dst plus every candidate whose id
// is not already present. Inputs are left untouched.
func appendUnique(dst []candidate, more ...candidate) []candidate {
	seen := make(map[string]bool, len(dst)+len(more))
	out := make([]candidate, 0, len(dst)+len(more))
	for _, c := range dst {
		seen[c.id] = true
		out = append(out, c)
	}
	for _, c := range more {
		if seen[c.id] {
			continue
		}
		seen[c.id] = true
		out = append(out, c)
	}
	return out
}

// habitCandidates lists the current month's habits not yet done today.
// Habits at high abandonment risk are forced to the top priority.
func habitCandidates(days []domain.DayRecord, habits []domain.Habit, profiles []domain.HabitProfile, now time.Time) []candidate {
	today, _ := timeline.Today(days, now)
	risky := make(map[string]bool)
	for _, p := range analytics.AtRiskHabits(profiles) {
		risky[p.HabitID] = true
	}

	var out []candidate
	for _, h := range habits {
		if today.CompletedHabitIDs[h.ID] {
			continue
		}
		out = append(out, candidate{
			id:       "habit:" + h.ID,
			kind:     domain.ItemHabit,
			text:     h.Name,
			forceTop: risky[h.ID],
		})
	}
	return out
}

func todayTaskCandidates(weeks map[string]domain.WeekRecord, now time.Time) []candidate {
	todayIdx := domain.WeekdayIndex(now.Weekday())
	var out []candidate
	for _, t := range weeks[timeline.WeekKey(now)].Tasks {
		if t.Completed || t.DayIndex != todayIdx {
			continue
		}
		out = append(out, candidate{id: "task:" + t.ID, kind: domain.ItemTask, text: t.Text})
	}
	return out
}

// overdueCandidates lists incomplete tasks dated before today within the
// trailing two ISO weeks, oldest week first.
func overdueCandidates(weeks map[string]domain.WeekRecord, now time.Time) []candidate {
	today := timeline.StartOfDay(now)
	monday := timeline.MondayOf(now)

	var out []candidate
	for i := overdueLookbackWeeks - 1; i >= 0; i-- {
		start := monday.AddDate(0, 0, -7*i)
		for _, t := range weeks[timeline.WeekKey(start)].Tasks {
			if t.Completed {
				continue
			}
			if !start.AddDate(0, 0, domain.ClampInt(t.DayIndex, 0, 6)).Before(today) {
				continue
			}
			out = append(out, candidate{id: "task:" + t.ID, kind: domain.ItemOverdue, text: t.Text, forceTop: true})
		}
	}
	return out
}

// Summarize counts items and picks a headline.
func Summarize(items []domain.AgendaItem) domain.AgendaSummary {
	s := domain.AgendaSummary{TotalItems: len(items)}
	var nowSum int
	for _, it := range items {
		switch it.Kind {
		case domain.ItemHabit:
			s.Habits++
		case domain.ItemTask:
			s.Tasks++
		case domain.ItemOverdue:
			s.Overdue++
		}
		if it.Interpretation.Priority == domain.PriorityHigh {
			s.HighPriority++
		}
		s.EstimatedMinutes += it.Interpretation.EstimatedMinutes
		nowSum += it.Prediction.CompleteNowScore
	}
	if len(items) > 0 {
		s.AverageNowScore = int(math.Round(float64(nowSum) / float64(len(items))))
	}
	s.Headline = headline(s)
	return s
}

func headline(s domain.AgendaSummary) string {
	switch {
	case s.TotalItems == 0:
		return "Nothing left for today. Enjoy the rest of your day."
	case s.Overdue > 0:
		return fmt.Sprintf("%d overdue %s %s attention first.", s.Overdue, plural(s.Overdue, "task", "tasks"), plural(s.Overdue, "needs", "need"))
	case s.HighPriority >= heavyDayHighPriority:
		return fmt.Sprintf("A heavy day: %d high-priority items.", s.HighPriority)
	case s.AverageNowScore >= greatConditionsAvg:
		return fmt.Sprintf("Great conditions today. %d %s, about %s.", s.TotalItems, plural(s.TotalItems, "item", "items"), FormatMinutes(s.EstimatedMinutes))
	default:
		return fmt.Sprintf("%d %s planned, about %s of work.", s.TotalItems, plural(s.TotalItems, "item", "items"), FormatMinutes(s.EstimatedMinutes))
	}
}

// FormatMinutes renders a duration as "45m", "1h" or "2h 5m".
func FormatMinutes(min int) string {
	if min <= 0 {
		return "0m"
	}
	h, m := min/60, min%60
	switch {
	case h > 0 && m > 0:
		return fmt.Sprintf("%dh %dm", h, m)
	case h > 0:
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dm", m)
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
