package analytics

import (
	"fmt"
	"time"

	"github.com/alexanderramin/rhythm/internal/domain"
	"github.com/alexanderramin/rhythm/internal/timeline"
	"github.com/robfig/cron/v3"
)

const (
	reviewOverdueMin       = 20
	reviewProcrastination  = 40
	morningSequenceMin     = 60
	eveningWindDownBelow   = 40
	focusBlockMinutes      = 90
	minMorningHabitsForSeq = 2
)

// routineRule gates one recurring routine. schedule returns a standard cron
// expression and the routine length in minutes.
type routineRule struct {
	id          string
	title       string
	description string
	applies     func(in Insights, weeks []domain.WeekSummary) (reason string, ok bool)
	schedule    func(in Insights) (expr string, minutes int)
}

var routineRules = []routineRule{
	{
		id:          "weekly-review",
		title:       "Weekly review",
		description: "Close open loops, move overdue tasks and pick next week's three priorities.",
		applies:     weeklyReviewApplies,
		schedule:    fixedSchedule("0 18 * * 0", 30),
	},
	{
		id:          "morning-sequence",
		title:       "Morning sequence",
		description: "Chain your morning habits back to back right after waking up.",
		applies:     morningSequenceApplies,
		schedule:    fixedSchedule("30 6 * * *", 45),
	},
	{
		id:          "recovery-block",
		title:       "Recovery block",
		description: "A protected half day with no habits or tasks scheduled.",
		applies:     recoveryBlockApplies,
		schedule:    fixedSchedule("0 14 * * 6", 240),
	},
	{
		id:          "midweek-reset",
		title:       "Midweek reset",
		description: "Fifteen minutes to re-plan the rest of the week before the dip hits.",
		applies:     triggerApplies(domain.TriggerMidweekDip),
		schedule:    fixedSchedule("0 12 * * 3", 15),
	},
	{
		id:          "weekend-anchor",
		title:       "Weekend anchor",
		description: "One light, fixed-time habit session to keep weekends on track.",
		applies:     triggerApplies(domain.TriggerWeekendAvoidance),
		schedule:    fixedSchedule("0 10 * * 0,6", 20),
	},
	{
		id:          "evening-wind-down",
		title:       "Evening wind-down",
		description: "Screens off and evening habits done before it gets late.",
		applies:     eveningWindDownApplies,
		schedule:    fixedSchedule("30 21 * * *", 30),
	},
	{
		id:          "deep-focus-block",
		title:       "Deep focus block",
		description: "Your hardest task of the day in your strongest window.",
		applies:     focusBlockApplies,
		schedule:    focusBlockSchedule,
	},
}

// SuggestRoutines proposes recurring routines gated by analyzer outputs.
// NextRun is the first occurrence strictly after now.
func SuggestRoutines(in Insights, weeks []domain.WeekSummary, now time.Time) []domain.RoutineSuggestion {
	out := []domain.RoutineSuggestion{}
	for _, rule := range routineRules {
		reason, ok := rule.applies(in, weeks)
		if !ok {
			continue
		}
		expr, minutes := rule.schedule(in)
		sched, err := cron.ParseStandard(expr)
		if err != nil {
			continue
		}
		next := sched.Next(now)
		out = append(out, domain.RoutineSuggestion{
			ID:              rule.id,
			Title:           rule.title,
			Description:     rule.description,
			Cron:            expr,
			StartTime:       next.Format("15:04"),
			DurationMinutes: minutes,
			Reason:          reason,
			NextRun:         next,
		})
	}
	return out
}

func fixedSchedule(expr string, minutes int) func(Insights) (string, int) {
	return func(Insights) (string, int) { return expr, minutes }
}

func focusBlockSchedule(in Insights) (string, int) {
	return fmt.Sprintf("0 %d * * 1-5", in.Focus.PeakHour(9)), focusBlockMinutes
}

func weeklyReviewApplies(in Insights, weeks []domain.WeekSummary) (string, bool) {
	total, _, overdue := timeline.TotalsOf(weeks)
	if total == 0 {
		return "", false
	}
	ratio := domain.RoundPct(float64(overdue) / float64(total))
	if ratio < reviewOverdueMin && in.Procrastination.Score < reviewProcrastination {
		return "", false
	}
	return fmt.Sprintf("%d%% of recent tasks slipped past their day.", ratio), true
}

func morningSequenceApplies(in Insights, _ []domain.WeekSummary) (string, bool) {
	if len(in.Focus.MorningHabits) < minMorningHabitsForSeq || in.Focus.MorningScore < morningSequenceMin {
		return "", false
	}
	return fmt.Sprintf("Your morning habits already land %d%% of the time.", in.Focus.MorningScore), true
}

func recoveryBlockApplies(in Insights, _ []domain.WeekSummary) (string, bool) {
	if in.Burnout.Stage == domain.StageThriving {
		return "", false
	}
	return fmt.Sprintf("Burnout risk is %d/100.", in.Burnout.RiskLevel), true
}

func triggerApplies(kind domain.TriggerKind) func(Insights, []domain.WeekSummary) (string, bool) {
	return func(in Insights, _ []domain.WeekSummary) (string, bool) {
		for _, t := range in.Procrastination.Triggers {
			if t.Kind == kind {
				return t.Description, true
			}
		}
		return "", false
	}
}

func eveningWindDownApplies(in Insights, _ []domain.WeekSummary) (string, bool) {
	if len(in.Focus.EveningHabits) == 0 || in.Focus.EveningScore >= eveningWindDownBelow {
		return "", false
	}
	return fmt.Sprintf("Evening habits only land %d%% of the time.", in.Focus.EveningScore), true
}

func focusBlockApplies(in Insights, _ []domain.WeekSummary) (string, bool) {
	if len(in.Focus.PeakWindows) == 0 || in.TrackedDays < 14 {
		return "", false
	}
	top := in.Focus.PeakWindows[0]
	return fmt.Sprintf("%s is your strongest window (%d%%).", top.Label, top.Score), true
}
