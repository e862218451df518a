package analytics

import (
	"fmt"
	"sort"

	"github.com/alexanderramin/rhythm/internal/domain"
)

const (
	maxRecommendations = 6

	lowConsistencyBelow = 40
	focusScoreMin       = 60
)

type recommendationRule func(in Insights) []domain.Recommendation

// Burnout and at-risk rules come first so they survive truncation ahead of
// other high-priority items.
var recommendationRules = []recommendationRule{
	recommendRecovery,
	recommendRescue,
	recommendTriggerFixes,
	recommendTrimHabits,
	recommendConsistency,
	recommendStacking,
	recommendProtectFocus,
}

// GenerateRecommendations runs every rule, orders by priority (rule order
// preserved within a priority) and keeps the top 6.
func GenerateRecommendations(in Insights) []domain.Recommendation {
	out := []domain.Recommendation{}
	for _, rule := range recommendationRules {
		out = append(out, rule(in)...)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Priority.Rank() < out[j].Priority.Rank()
	})
	if len(out) > maxRecommendations {
		out = out[:maxRecommendations]
	}
	return out
}

func recommendRecovery(in Insights) []domain.Recommendation {
	if in.Burnout.Stage != domain.StageWarning && in.Burnout.Stage != domain.StageBurnout {
		return nil
	}
	return []domain.Recommendation{{
		ID:          "schedule-recovery",
		Priority:    domain.PriorityHigh,
		Title:       "Schedule real recovery",
		Description: "Block a low-demand day and drop everything except your anchor habits.",
		ActionKind:  domain.ActionRecover,
		Rationale:   fmt.Sprintf("Burnout risk is %d/100 (%s).", in.Burnout.RiskLevel, in.Burnout.Stage),
	}}
}

func recommendRescue(in Insights) []domain.Recommendation {
	risky := AtRiskHabits(in.Profiles)
	sort.SliceStable(risky, func(i, j int) bool { return risky[i].AbandonmentRisk > risky[j].AbandonmentRisk })
	var out []domain.Recommendation
	for i, p := range risky {
		if i == 2 {
			break
		}
		out = append(out, domain.Recommendation{
			ID:          "rescue-" + p.HabitID,
			Priority:    domain.PriorityHigh,
			Title:       fmt.Sprintf("Rescue %s", p.Name),
			Description: fmt.Sprintf("Shrink %s to a two-minute version and do it today.", p.Name),
			ActionKind:  domain.ActionRescueHabit,
			Rationale:   fmt.Sprintf("Abandonment risk %d/100, current streak %d.", p.AbandonmentRisk, p.CurrentStreak),
		})
	}
	return out
}

func recommendTriggerFixes(in Insights) []domain.Recommendation {
	var out []domain.Recommendation
	for _, t := range in.Procrastination.Triggers {
		action := domain.ActionReschedule
		switch t.Kind {
		case domain.TriggerComplexityAvoidance:
			action = domain.ActionSimplify
		case domain.TriggerMotivationDecline, domain.TriggerLowMood:
			action = domain.ActionReflect
		}
		out = append(out, domain.Recommendation{
			ID:          "trigger-" + string(t.Kind),
			Priority:    domain.PriorityMedium,
			Title:       t.Title,
			Description: t.Suggestion,
			ActionKind:  action,
			Rationale:   t.Description,
		})
	}
	return out
}

func recommendTrimHabits(in Insights) []domain.Recommendation {
	if len(in.Profiles) < overloadHabitCount {
		return nil
	}
	return []domain.Recommendation{{
		ID:          "trim-habits",
		Priority:    domain.PriorityMedium,
		Title:       "Trim your habit list",
		Description: "Pause the habits you rarely complete and focus on five or fewer.",
		ActionKind:  domain.ActionSimplify,
		Rationale:   fmt.Sprintf("You track %d habits.", len(in.Profiles)),
	}}
}

func recommendConsistency(in Insights) []domain.Recommendation {
	var worst *domain.HabitProfile
	for i := range in.Profiles {
		p := &in.Profiles[i]
		if p.ObservedDays < 14 || p.ConsistencyScore >= lowConsistencyBelow {
			continue
		}
		if worst == nil || p.ConsistencyScore < worst.ConsistencyScore {
			worst = p
		}
	}
	if worst == nil {
		return nil
	}
	return []domain.Recommendation{{
		ID:          "steady-" + worst.HabitID,
		Priority:    domain.PriorityMedium,
		Title:       fmt.Sprintf("Make %s steadier", worst.Name),
		Description: fmt.Sprintf("Pin %s to a fixed time and cue so it stops swinging week to week.", worst.Name),
		ActionKind:  domain.ActionReschedule,
		Rationale:   fmt.Sprintf("Consistency score %d/100.", worst.ConsistencyScore),
	}}
}

func recommendStacking(in Insights) []domain.Recommendation {
	for _, p := range in.Profiles {
		if !p.IsAutomatic {
			continue
		}
		return []domain.Recommendation{{
			ID:          "stack-on-" + p.HabitID,
			Priority:    domain.PriorityLow,
			Title:       fmt.Sprintf("Stack a new habit on %s", p.Name),
			Description: fmt.Sprintf("Attach one small new habit right after %s.", p.Name),
			ActionKind:  domain.ActionStackHabit,
			Rationale:   fmt.Sprintf("%s is automatic at %d%% completion.", p.Name, p.CompletionRate),
		}}
	}
	return nil
}

func recommendProtectFocus(in Insights) []domain.Recommendation {
	if len(in.Focus.PeakWindows) == 0 {
		return nil
	}
	top := in.Focus.PeakWindows[0]
	if top.Score < focusScoreMin {
		return nil
	}
	return []domain.Recommendation{{
		ID:          "protect-focus",
		Priority:    domain.PriorityLow,
		Title:       fmt.Sprintf("Protect your %s window", top.Label),
		Description: fmt.Sprintf("Keep %02d:00-%02d:00 free of meetings for your hardest work.", top.StartHour, top.EndHour),
		ActionKind:  domain.ActionProtectFocus,
		Rationale:   fmt.Sprintf("%s habits complete %d%% of the time.", top.Label, top.Score),
	}}
}
