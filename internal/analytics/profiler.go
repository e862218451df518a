package analytics

import (
	"math"
	"sort"

	"github.com/alexanderramin/rhythm/internal/domain"
	"github.com/alexanderramin/rhythm/internal/timeline"
)

// Habit profiler constants. Rates are percentages, trend is percentage points.
const (
	trendWindow = 7

	defaultConsistency     = 50
	defaultAbandonmentRisk = 20

	automaticMinRate = 85
	automaticMinDays = 14

	riskRecentVeryLowRate = 30
	riskRecentLowRate     = 50
	riskRecentVeryLowPts  = 40
	riskRecentLowPts      = 20
	riskTrendSteepDrop    = -20
	riskTrendDrop         = -10
	riskTrendSteepPts     = 30
	riskTrendPts          = 15
	riskNoStreakPts       = 15
	riskMissRunDays       = 3
	riskMissRunPts        = 20

	correlationMinPct = 60
	correlationTopN   = 3
	highRiskThreshold = 60
)

// ProfileHabits computes one HabitProfile per habit in the current month's
// habit list, in that list's order. days must come from timeline.BuildDays.
func ProfileHabits(days []domain.DayRecord, habits []domain.Habit) []domain.HabitProfile {
	profiles := make([]domain.HabitProfile, 0, len(habits))
	for _, h := range habits {
		profiles = append(profiles, profileHabit(h, days))
	}

	correlations := CorrelateHabits(days, habits)
	for i := range profiles {
		profiles[i].CorrelatedHabits = correlations[profiles[i].HabitID]
		if profiles[i].CorrelatedHabits == nil {
			profiles[i].CorrelatedHabits = []domain.HabitCorrelation{}
		}
	}
	return profiles
}

// habitObservation is one tracked day for a single habit.
type habitObservation struct {
	done      bool
	dayOfWeek int
}

func observe(habitID string, days []domain.DayRecord) []habitObservation {
	var seq []habitObservation
	for _, d := range days {
		if !tracks(d, habitID) {
			continue
		}
		seq = append(seq, habitObservation{done: d.CompletedHabitIDs[habitID], dayOfWeek: d.DayOfWeek})
	}
	return seq
}

func tracks(d domain.DayRecord, habitID string) bool {
	for _, id := range d.TrackedHabitIDs {
		if id == habitID {
			return true
		}
	}
	return false
}

func profileHabit(h domain.Habit, days []domain.DayRecord) domain.HabitProfile {
	seq := observe(h.ID, days)
	p := domain.HabitProfile{
		HabitID:          h.ID,
		Name:             h.Name,
		ObservedDays:     len(seq),
		ConsistencyScore: defaultConsistency,
		AbandonmentRisk:  defaultAbandonmentRisk,
	}
	if len(seq) == 0 {
		return p
	}

	done := make([]bool, len(seq))
	for i, o := range seq {
		done[i] = o.done
	}

	p.CompletionRate = completionRate(done)
	p.CurrentStreak, p.LongestStreak = Streaks(done)
	p.Trend = Trend(done)
	p.ConsistencyScore = Consistency(done)
	p.AbandonmentRisk = AbandonmentRisk(done, p.Trend, p.CurrentStreak)
	p.IsAutomatic = p.CompletionRate >= automaticMinRate && p.ObservedDays >= automaticMinDays
	p.BestDay, p.WorstDay = weekdayAffinity(seq)
	return p
}

func completionRate(done []bool) int {
	if len(done) == 0 {
		return 0
	}
	return domain.RoundPct(float64(countTrue(done)) / float64(len(done)))
}

func countTrue(seq []bool) int {
	n := 0
	for _, v := range seq {
		if v {
			n++
		}
	}
	return n
}

// Streaks returns the trailing run of completions and the longest run anywhere.
func Streaks(done []bool) (current, longest int) {
	run := 0
	for _, v := range done {
		if v {
			run++
			if run > longest {
				longest = run
			}
		} else {
			run = 0
		}
	}
	for i := len(done) - 1; i >= 0 && done[i]; i-- {
		current++
	}
	return current, longest
}

// Trend returns the completion-rate difference in percentage points between
// the most recent 7 observations and the 7 before them; 0 with fewer than 14.
func Trend(done []bool) int {
	if len(done) < 2*trendWindow {
		return 0
	}
	n := len(done)
	recent := float64(countTrue(done[n-trendWindow:])) / trendWindow
	prior := float64(countTrue(done[n-2*trendWindow:n-trendWindow])) / trendWindow
	return int(math.Round((recent - prior) * 100))
}

// Consistency scores week-to-week stability as 100*(1-sqrt(variance)) of the
// weekly completion rates (as 0..1 ratios). Only full 7-day buckets count;
// fewer than two buckets yields the neutral default.
func Consistency(done []bool) int {
	buckets := len(done) / 7
	if buckets < 2 {
		return defaultConsistency
	}
	rates := make([]float64, buckets)
	for b := 0; b < buckets; b++ {
		rates[b] = float64(countTrue(done[b*7:(b+1)*7])) / 7
	}
	score := int(math.Round(100 * (1 - math.Sqrt(domain.Variance(rates)))))
	return domain.ClampInt(score, 0, 100)
}

// AbandonmentRisk is an additive heuristic clamped to [0,100].
func AbandonmentRisk(done []bool, trend, currentStreak int) int {
	if len(done) == 0 {
		return defaultAbandonmentRisk
	}
	recent := done
	if len(recent) > trendWindow {
		recent = recent[len(recent)-trendWindow:]
	}
	recentRate := completionRate(recent)

	risk := 0
	switch {
	case recentRate < riskRecentVeryLowRate:
		risk += riskRecentVeryLowPts
	case recentRate < riskRecentLowRate:
		risk += riskRecentLowPts
	}
	switch {
	case trend < riskTrendSteepDrop:
		risk += riskTrendSteepPts
	case trend < riskTrendDrop:
		risk += riskTrendPts
	}
	if currentStreak == 0 {
		risk += riskNoStreakPts
	}
	if trailingMisses(done) >= riskMissRunDays {
		risk += riskMissRunPts
	}
	return domain.ClampInt(risk, 0, 100)
}

func trailingMisses(done []bool) int {
	n := 0
	for i := len(done) - 1; i >= 0 && !done[i]; i-- {
		n++
	}
	return n
}

// weekdayAffinity returns the weekdays with the highest and lowest completion
// rate for the habit. Ties resolve to the earlier weekday.
func weekdayAffinity(seq []habitObservation) (best, worst string) {
	var doneBy, totalBy [7]int
	for _, o := range seq {
		totalBy[o.dayOfWeek]++
		if o.done {
			doneBy[o.dayOfWeek]++
		}
	}
	bestIdx, worstIdx := -1, -1
	var bestRate, worstRate float64
	for d := 0; d < 7; d++ {
		if totalBy[d] == 0 {
			continue
		}
		rate := float64(doneBy[d]) / float64(totalBy[d])
		if bestIdx < 0 || rate > bestRate {
			bestIdx, bestRate = d, rate
		}
		if worstIdx < 0 || rate < worstRate {
			worstIdx, worstRate = d, rate
		}
	}
	if bestIdx < 0 {
		return "", ""
	}
	return domain.WeekdayNames[bestIdx], domain.WeekdayNames[worstIdx]
}

// Correlation returns (days both done)/(days either done) as a percentage over
// days where both habits were tracked. Symmetric by construction.
func Correlation(days []domain.DayRecord, a, b string) int {
	var both, either int
	for _, d := range days {
		if !tracks(d, a) || !tracks(d, b) {
			continue
		}
		da, db := d.CompletedHabitIDs[a], d.CompletedHabitIDs[b]
		if da && db {
			both++
		}
		if da || db {
			either++
		}
	}
	if either == 0 {
		return 0
	}
	return domain.RoundPct(float64(both) / float64(either))
}

// CorrelateHabits returns, per habit, the top correlated partners above the
// retention threshold, strongest first.
func CorrelateHabits(days []domain.DayRecord, habits []domain.Habit) map[string][]domain.HabitCorrelation {
	out := make(map[string][]domain.HabitCorrelation, len(habits))
	for i := 0; i < len(habits); i++ {
		for j := i + 1; j < len(habits); j++ {
			a, b := habits[i].ID, habits[j].ID
			c := Correlation(days, a, b)
			if c <= correlationMinPct {
				continue
			}
			out[a] = append(out[a], domain.HabitCorrelation{HabitID: b, Correlation: c})
			out[b] = append(out[b], domain.HabitCorrelation{HabitID: a, Correlation: c})
		}
	}
	for id, list := range out {
		sort.SliceStable(list, func(i, j int) bool {
			if list[i].Correlation != list[j].Correlation {
				return list[i].Correlation > list[j].Correlation
			}
			return list[i].HabitID < list[j].HabitID
		})
		if len(list) > correlationTopN {
			list = list[:correlationTopN]
		}
		out[id] = list
	}
	return out
}

// CurrentHabits returns the habit list of now's month, falling back to the
// most recent month in the window that has habits.
func CurrentHabits(months map[string]domain.MonthRecord, days []domain.DayRecord, nowKey string) []domain.Habit {
	if rec, ok := months[nowKey]; ok && len(rec.Habits) > 0 {
		return rec.Habits
	}
	if len(days) == 0 {
		return nil
	}
	last := days[len(days)-1]
	if rec, ok := months[timeline.MonthKey(last.Date)]; ok {
		return rec.Habits
	}
	return nil
}

// AtRiskHabits returns the profiles whose abandonment risk is at least 60.
func AtRiskHabits(profiles []domain.HabitProfile) []domain.HabitProfile {
	var out []domain.HabitProfile
	for _, p := range profiles {
		if p.AbandonmentRisk >= highRiskThreshold {
			out = append(out, p)
		}
	}
	return out
}
