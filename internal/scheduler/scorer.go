// Package scheduler predicts how likely a task is to get done now, later today
// or tomorrow, picks reminder times, and orders agenda items.
package scheduler

import (
	"fmt"
	"math"
	"time"

	"github.com/alexanderramin/rhythm/internal/domain"
)

const (
	baselineScore = 60
	factorCap     = 20

	nowMin      = 5
	nowMax      = 98
	tomorrowMax = 90

	fatigueMorning   = 8
	fatigueAfternoon = 15
	fatigueEvening   = 25

	doNowMin   = 75
	goodNowMin = 55
	deferByMin = 10

	minWeekdaySamples = 2
	slotFirstHour     = 6
	slotLastHour      = 21
)

// ScoringInput is everything needed to score one interpreted task.
type ScoringInput struct {
	Task  domain.TaskInterpretation
	Now   time.Time
	State UserState
}

type factor func(in ScoringInput) (int, *domain.PredictionFactor)

// factors are applied in order; each impact is clamped to ±20.
var factors = []factor{
	scoreTimeAlignment,
	scoreWeekday,
	scoreMomentum,
	scoreMood,
	scoreEnergy,
	scoreWeeklyTasks,
	scorePriority,
}

// ScoreTask predicts completion likelihood for now, later today and tomorrow.
func ScoreTask(in ScoringInput) domain.PredictiveScore {
	result := domain.PredictiveScore{Factors: []domain.PredictionFactor{}}

	score := baselineScore
	for _, f := range factors {
		delta, reason := f(in)
		delta = domain.ClampInt(delta, -factorCap, factorCap)
		score += delta
		if reason != nil {
			reason.Impact = delta
			result.Factors = append(result.Factors, *reason)
		}
	}

	result.CompleteNowScore = domain.ClampInt(score, nowMin, nowMax)
	result.CompleteLaterScore = domain.ClampInt(result.CompleteNowScore-fatiguePenalty(in.Now.Hour()), nowMin, nowMax)
	result.CompleteTomorrowScore = tomorrowScore(in)
	result.OptimalTimeSlot = fmt.Sprintf("%02d:00", OptimalHour(in.Task))
	result.Recommendation = recommend(result)
	return result
}

func fatiguePenalty(hour int) int {
	switch {
	case hour < 12:
		return fatigueMorning
	case hour < 17:
		return fatigueAfternoon
	default:
		return fatigueEvening
	}
}

func tomorrowScore(in ScoringInput) int {
	next := domain.WeekdayIndex(in.Now.AddDate(0, 0, 1).Weekday())
	score := baselineScore + domain.ClampInt(weekdayImpact(in.State, next), -factorCap, factorCap)
	switch in.Task.Priority {
	case domain.PriorityLow:
		score += 10
	case domain.PriorityMedium:
		score += 5
	}
	return domain.ClampInt(score, nowMin, tomorrowMax)
}

func recommend(s domain.PredictiveScore) string {
	switch {
	case s.CompleteNowScore >= doNowMin:
		return "Do it now: conditions are in your favour."
	case s.CompleteNowScore >= goodNowMin:
		return "Good time to start. Get the first step done."
	case s.CompleteTomorrowScore > s.CompleteNowScore+deferByMin:
		return "Defer to tomorrow: you are more likely to finish it then."
	default:
		return "Break it down into a smaller first step before starting."
	}
}

// OptimalHour returns the hour between 06 and 21 where the task's time
// alignment plus energy fit is highest. Ties resolve to the earlier hour.
func OptimalHour(task domain.TaskInterpretation) int {
	best, bestScore := slotFirstHour, math.MinInt
	for h := slotFirstHour; h <= slotLastHour; h++ {
		score := alignmentImpact(task.Category, h) + energyImpact(task.EstimatedMinutes, h)
		if score > bestScore {
			best, bestScore = h, score
		}
	}
	return best
}

type alignmentRule struct {
	category domain.Category
	from, to int // [from, to)
	impact   int
}

// alignmentRules: the first row matching category and hour applies.
var alignmentRules = []alignmentRule{
	{domain.CategoryWork, 9, 12, 12},
	{domain.CategoryWork, 13, 17, 6},
	{domain.CategoryWork, 21, 24, -12},
	{domain.CategoryWork, 0, 6, -15},
	{domain.CategoryStudy, 8, 12, 10},
	{domain.CategoryStudy, 19, 22, 5},
	{domain.CategoryStudy, 0, 6, -15},
	{domain.CategoryHealth, 8, 18, 8},
	{domain.CategoryHealth, 21, 24, -10},
	{domain.CategoryFitness, 6, 9, 12},
	{domain.CategoryFitness, 17, 20, 10},
	{domain.CategoryFitness, 22, 24, -10},
	{domain.CategoryWellness, 6, 8, 8},
	{domain.CategoryWellness, 20, 23, 10},
	{domain.CategoryFinance, 9, 17, 6},
	{domain.CategoryFinance, 22, 24, -5},
	{domain.CategorySocial, 17, 22, 12},
	{domain.CategorySocial, 6, 9, -5},
	{domain.CategoryErrands, 9, 18, 8},
	{domain.CategoryErrands, 21, 24, -15},
	{domain.CategoryHome, 17, 21, 6},
	{domain.CategoryHome, 9, 12, 4},
	{domain.CategoryCreative, 10, 13, 8},
	{domain.CategoryCreative, 19, 23, 8},
}

func alignmentImpact(c domain.Category, hour int) int {
	for _, r := range alignmentRules {
		if r.category == c && hour >= r.from && hour < r.to {
			return r.impact
		}
	}
	return 0
}

func scoreTimeAlignment(in ScoringInput) (int, *domain.PredictionFactor) {
	delta := alignmentImpact(in.Task.Category, in.Now.Hour())
	switch {
	case delta > 0:
		return delta, &domain.PredictionFactor{Label: "Good time for " + string(in.Task.Category), Emoji: "🕐"}
	case delta < 0:
		return delta, &domain.PredictionFactor{Label: "Unusual time for " + string(in.Task.Category), Emoji: "🌙"}
	}
	return 0, nil
}

// weekdayImpact compares a weekday's average completion with the user's own
// overall average. Fewer than two samples yields no signal.
func weekdayImpact(s UserState, weekday int) int {
	if s.WeekdaySamples[weekday] < minWeekdaySamples {
		return 0
	}
	return int(math.Round((s.WeekdayAvg[weekday] - s.OverallAvg) / 2))
}

func scoreWeekday(in ScoringInput) (int, *domain.PredictionFactor) {
	dow := domain.WeekdayIndex(in.Now.Weekday())
	delta := weekdayImpact(in.State, dow)
	switch {
	case delta > 0:
		return delta, &domain.PredictionFactor{Label: domain.WeekdayNames[dow] + "s are strong for you", Emoji: "📅"}
	case delta < 0:
		return delta, &domain.PredictionFactor{Label: domain.WeekdayNames[dow] + "s are usually slower", Emoji: "📅"}
	}
	return 0, nil
}

func scoreMomentum(in ScoringInput) (int, *domain.PredictionFactor) {
	if !in.State.HasToday {
		return 0, nil
	}
	rate := in.State.TodayRate
	switch {
	case rate >= 75:
		return 15, &domain.PredictionFactor{Label: "Strong momentum today", Emoji: "🔥"}
	case rate >= 50:
		return 8, &domain.PredictionFactor{Label: "Building momentum", Emoji: "📈"}
	case rate < 25 && in.Now.Hour() >= 14:
		return -10, &domain.PredictionFactor{Label: "Slow day so far", Emoji: "🐢"}
	}
	return 0, nil
}

func scoreMood(in ScoringInput) (int, *domain.PredictionFactor) {
	mood := in.State.RecentMood
	switch {
	case mood == 0:
		return 0, nil
	case mood >= 8:
		return 12, &domain.PredictionFactor{Label: "Great mood", Emoji: "😄"}
	case mood >= 6:
		return 5, &domain.PredictionFactor{Label: "Good mood", Emoji: "🙂"}
	case mood <= 3:
		return -15, &domain.PredictionFactor{Label: "Low mood", Emoji: "😞"}
	case mood <= 4:
		return -8, &domain.PredictionFactor{Label: "Mood is dipping", Emoji: "😕"}
	}
	return 0, nil
}

// energyImpact weighs task length against the energy curve: long tasks need
// high energy, short tasks fit anywhere.
func energyImpact(minutes, hour int) int {
	energy := EnergyAt(hour)
	switch {
	case minutes >= 60:
		return int(math.Round(float64(energy-60) / 3))
	case minutes >= 30:
		return int(math.Round(float64(energy-50) / 4))
	case energy < 50:
		return 5
	default:
		return 3
	}
}

func scoreEnergy(in ScoringInput) (int, *domain.PredictionFactor) {
	delta := energyImpact(in.Task.EstimatedMinutes, in.Now.Hour())
	switch {
	case delta > 0:
		return delta, &domain.PredictionFactor{Label: "Energy fits the task", Emoji: "⚡"}
	case delta < 0:
		return delta, &domain.PredictionFactor{Label: "Low energy for a long task", Emoji: "🪫"}
	}
	return 0, nil
}

func scoreWeeklyTasks(in ScoringInput) (int, *domain.PredictionFactor) {
	rate := in.State.WeeklyTaskRate
	switch {
	case rate < 0:
		return 0, nil
	case rate >= 80:
		return 10, &domain.PredictionFactor{Label: "Finishing most planned tasks", Emoji: "✅"}
	case rate >= 60:
		return 5, &domain.PredictionFactor{Label: "Steady task follow-through", Emoji: "👍"}
	case rate < 30:
		return -10, &domain.PredictionFactor{Label: "Most tasks slipping lately", Emoji: "📉"}
	case rate < 45:
		return -5, &domain.PredictionFactor{Label: "Tasks slipping lately", Emoji: "↘️"}
	}
	return 0, nil
}

func scorePriority(in ScoringInput) (int, *domain.PredictionFactor) {
	switch in.Task.Priority {
	case domain.PriorityHigh:
		return 15, &domain.PredictionFactor{Label: "High priority", Emoji: "🚨"}
	case domain.PriorityLow:
		return -5, &domain.PredictionFactor{Label: "Low priority", Emoji: "💤"}
	default:
		return 5, &domain.PredictionFactor{Label: "Medium priority", Emoji: "📌"}
	}
}
