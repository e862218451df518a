package analytics

import (
	"fmt"
	"math"

	"github.com/alexanderramin/rhythm/internal/domain"
)

// Burnout factor thresholds and impact caps. Mood/motivation trends are in
// scale points per week; completion drop is in percentage points.
const (
	moodDeclineMin        = -0.5
	moodDeclineScale      = 10.0
	moodDeclineMaxPts     = 20
	motivationDeclineMin  = -0.5
	motivationMaxPts      = 15
	overloadHabitCount    = 8
	overloadBasePts       = 5
	overloadPerHabitPts   = 2
	overloadMaxPts        = 15
	lowMoodAverage        = 4.5
	lowMoodPts            = 15
	completionDropMin     = 15.0
	completionDropMaxPts  = 20
	atRiskHabitsMin       = 2
	atRiskPerHabitPts     = 5
	atRiskMaxPts          = 15
	noPerfectDayAfterDays = 10
	noPerfectDayPts       = 10

	criticalRisk       = 75
	warningRisk        = 50
	strainedRisk       = 25
	moodTrendRiskScale = 5.0
)

// BurnoutInput is the snapshot the burnout analyzer reads.
type BurnoutInput struct {
	Days     []domain.DayRecord
	Profiles []domain.HabitProfile
	Mood     domain.MoodAnalysis
}

type burnoutRule func(in BurnoutInput) (domain.BurnoutFactor, bool)

var burnoutRules = []burnoutRule{
	moodDeclineFactor,
	motivationDeclineFactor,
	habitOverloadFactor,
	lowMoodFactor,
	completionDropFactor,
	atRiskHabitsFactor,
	noPerfectDayFactor,
}

// AnalyzeBurnout sums bounded factor impacts into a 0..100 risk and stage.
func AnalyzeBurnout(in BurnoutInput) domain.BurnoutAnalysis {
	factors := []domain.BurnoutFactor{}
	risk := 0
	for _, rule := range burnoutRules {
		f, ok := rule(in)
		if !ok || f.Impact <= 0 {
			continue
		}
		factors = append(factors, f)
		risk += f.Impact
	}
	risk = domain.ClampInt(risk, 0, 100)

	result := domain.BurnoutAnalysis{
		RiskLevel:   risk,
		Stage:       StageFor(risk),
		Factors:     factors,
		Suggestions: burnoutSuggestions(StageFor(risk)),
	}
	if in.Mood.MoodTrend < 0 && risk < criticalRisk {
		days := int(math.Round(float64(criticalRisk-risk) / (math.Abs(in.Mood.MoodTrend) * moodTrendRiskScale) * 7))
		result.DaysUntilCritical = &days
	}
	return result
}

// StageFor maps a 0..100 risk score to a burnout stage.
func StageFor(risk int) domain.BurnoutStage {
	switch {
	case risk >= criticalRisk:
		return domain.StageBurnout
	case risk >= warningRisk:
		return domain.StageWarning
	case risk >= strainedRisk:
		return domain.StageStrained
	default:
		return domain.StageThriving
	}
}

func burnoutSuggestions(stage domain.BurnoutStage) []string {
	switch stage {
	case domain.StageBurnout:
		return []string{
			"Pause every non-essential habit for a week.",
			"Block one full rest day with nothing scheduled.",
			"Talk to someone you trust about your load.",
		}
	case domain.StageWarning:
		return []string{
			"Cut your daily habit list to the three that matter most.",
			"Schedule a recovery block this week.",
		}
	case domain.StageStrained:
		return []string{"Watch your sleep and keep one evening free this week."}
	default:
		return []string{"Your rhythm looks sustainable. Keep it up."}
	}
}

func moodDeclineFactor(in BurnoutInput) (domain.BurnoutFactor, bool) {
	if in.Mood.MoodTrend >= moodDeclineMin {
		return domain.BurnoutFactor{}, false
	}
	impact := int(math.Min(moodDeclineMaxPts, math.Round(math.Abs(in.Mood.MoodTrend)*moodDeclineScale)))
	return domain.BurnoutFactor{
		Label:  "Mood declining",
		Impact: impact,
		Detail: fmt.Sprintf("Mood fell %.1f points week over week", math.Abs(in.Mood.MoodTrend)),
	}, true
}

func motivationDeclineFactor(in BurnoutInput) (domain.BurnoutFactor, bool) {
	if in.Mood.MotivationTrend >= motivationDeclineMin {
		return domain.BurnoutFactor{}, false
	}
	impact := int(math.Min(motivationMaxPts, math.Round(math.Abs(in.Mood.MotivationTrend)*moodDeclineScale)))
	return domain.BurnoutFactor{
		Label:  "Motivation declining",
		Impact: impact,
		Detail: fmt.Sprintf("Motivation fell %.1f points week over week", math.Abs(in.Mood.MotivationTrend)),
	}, true
}

func habitOverloadFactor(in BurnoutInput) (domain.BurnoutFactor, bool) {
	n := len(in.Profiles)
	if n < overloadHabitCount {
		return domain.BurnoutFactor{}, false
	}
	impact := domain.ClampInt(overloadBasePts+(n-overloadHabitCount)*overloadPerHabitPts, 0, overloadMaxPts)
	return domain.BurnoutFactor{
		Label:  "Habit overload",
		Impact: impact,
		Detail: fmt.Sprintf("Tracking %d habits at once", n),
	}, true
}

func lowMoodFactor(in BurnoutInput) (domain.BurnoutFactor, bool) {
	if in.Mood.SampleSize == 0 || in.Mood.AverageMood >= lowMoodAverage {
		return domain.BurnoutFactor{}, false
	}
	return domain.BurnoutFactor{
		Label:  "Persistently low mood",
		Impact: lowMoodPts,
		Detail: fmt.Sprintf("Average mood is %.1f/10", in.Mood.AverageMood),
	}, true
}

func completionDropFactor(in BurnoutInput) (domain.BurnoutFactor, bool) {
	if len(in.Days) < 14 {
		return domain.BurnoutFactor{}, false
	}
	rates := make([]float64, len(in.Days))
	for i, d := range in.Days {
		rates[i] = float64(d.CompletionRate)
	}
	drop := -domain.WindowTrend(rates, 7)
	if drop <= completionDropMin {
		return domain.BurnoutFactor{}, false
	}
	return domain.BurnoutFactor{
		Label:  "Completion dropping",
		Impact: int(math.Min(completionDropMaxPts, math.Round(drop/2))),
		Detail: fmt.Sprintf("Completion fell %.0f points versus the previous week", drop),
	}, true
}

func atRiskHabitsFactor(in BurnoutInput) (domain.BurnoutFactor, bool) {
	n := len(AtRiskHabits(in.Profiles))
	if n < atRiskHabitsMin {
		return domain.BurnoutFactor{}, false
	}
	return domain.BurnoutFactor{
		Label:  "Habits slipping",
		Impact: domain.ClampInt(n*atRiskPerHabitPts, 0, atRiskMaxPts),
		Detail: fmt.Sprintf("%d habits at high abandonment risk", n),
	}, true
}

func noPerfectDayFactor(in BurnoutInput) (domain.BurnoutFactor, bool) {
	since := DaysSincePerfect(in.Days)
	if since <= noPerfectDayAfterDays {
		return domain.BurnoutFactor{}, false
	}
	return domain.BurnoutFactor{
		Label:  "No perfect day lately",
		Impact: noPerfectDayPts,
		Detail: fmt.Sprintf("%d days since every habit was done", since),
	}, true
}

// DaysSincePerfect counts tracked days after the most recent perfect day.
// With no perfect day at all, every tracked day counts.
func DaysSincePerfect(days []domain.DayRecord) int {
	n := 0
	for i := len(days) - 1; i >= 0; i-- {
		if days[i].IsPerfect() {
			return n
		}
		n++
	}
	return n
}
