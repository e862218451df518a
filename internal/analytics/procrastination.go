package analytics

import (
	"fmt"
	"math"

	"github.com/alexanderramin/rhythm/internal/domain"
	"github.com/alexanderramin/rhythm/internal/nlp"
	"github.com/alexanderramin/rhythm/internal/timeline"
)

// Procrastination score weights. Ratios are percentages.
const (
	overdueWeight        = 0.3
	incompletionWeight   = 0.4
	perTriggerPts        = 8
	slowRecoveryPts      = 15
	moderateRecoveryPts  = 5
	defaultMeanCompleted = 50.0

	slumpRateBelow       = 30
	fastRecoveryMaxDays  = 1.0
	moderateRecoveryDays = 3.0

	minMoodSamples       = 3
	moodGapMin           = 20.0
	minWeekendSamples    = 4
	minWeekdaySamples    = 8
	weekendGapMin        = 15.0
	minMidweekSamples    = 3
	midweekGapMin        = 15.0
	minComplexitySamples = 3
	complexTaskMinutes   = 60
	simpleTaskMinutes    = 30
	complexityGapMin     = 20.0
	minMotivationSamples = 14
	motivationDropMin    = -1.0
)

// ProcrastinationInput is the snapshot the procrastination analyzer reads.
type ProcrastinationInput struct {
	Days  []domain.DayRecord
	Weeks []domain.WeekSummary
	Tasks []domain.Task // tasks of the same trailing weeks
	Mood  domain.MoodAnalysis
}

type triggerRule struct {
	kind       domain.TriggerKind
	title      string
	suggestion string
	detect     func(in ProcrastinationInput) (confidence int, description string, fired bool)
}

var triggerRules = []triggerRule{
	{
		kind:       domain.TriggerLowMood,
		title:      "Low mood stalls progress",
		suggestion: "On low days, shrink the plan to one tiny win and protect your streaks.",
		detect:     detectLowMood,
	},
	{
		kind:       domain.TriggerWeekendAvoidance,
		title:      "Weekend drop-off",
		suggestion: "Keep a lighter weekend version of your habits instead of skipping them.",
		detect:     detectWeekendAvoidance,
	},
	{
		kind:       domain.TriggerMidweekDip,
		title:      "Midweek dip",
		suggestion: "Plan a short Wednesday reset to re-commit to the week's priorities.",
		detect:     detectMidweekDip,
	},
	{
		kind:       domain.TriggerComplexityAvoidance,
		title:      "Big tasks get postponed",
		suggestion: "Break long tasks into 25-minute steps and schedule the first step only.",
		detect:     detectComplexityAvoidance,
	},
	{
		kind:       domain.TriggerMotivationDecline,
		title:      "Motivation is fading",
		suggestion: "Reconnect habits to why they matter and drop one that no longer serves you.",
		detect:     detectMotivationDecline,
	},
}

// AnalyzeProcrastination scores avoidance behaviour and detects recurring triggers.
func AnalyzeProcrastination(in ProcrastinationInput) domain.ProcrastinationAnalysis {
	triggers := []domain.ProcrastinationTrigger{}
	for _, rule := range triggerRules {
		conf, desc, fired := rule.detect(in)
		if !fired {
			continue
		}
		triggers = append(triggers, domain.ProcrastinationTrigger{
			Kind:        rule.kind,
			Title:       rule.title,
			Description: desc,
			Confidence:  domain.ClampInt(conf, 0, 100),
			Suggestion:  rule.suggestion,
		})
	}

	total, _, overdue := timeline.TotalsOf(in.Weeks)
	overdueRatio := 0
	if total > 0 {
		overdueRatio = domain.RoundPct(float64(overdue) / float64(total))
	}

	rates := make([]float64, len(in.Days))
	for i, d := range in.Days {
		rates[i] = float64(d.CompletionRate)
	}
	meanCompletion := domain.Mean(rates, defaultMeanCompleted)

	speed, avgSlump := recoverySpeed(in.Days)
	score := overdueWeight*float64(overdueRatio) +
		incompletionWeight*(100-meanCompletion) +
		float64(perTriggerPts*len(triggers)) +
		float64(recoveryPts(speed))

	return domain.ProcrastinationAnalysis{
		Score:            domain.ClampInt(int(math.Round(score)), 0, 100),
		OverdueRatio:     overdueRatio,
		MeanCompletion:   int(math.Round(meanCompletion)),
		Triggers:         triggers,
		RecoverySpeed:    speed,
		AverageSlumpDays: round1(avgSlump),
	}
}

func recoveryPts(speed domain.RecoverySpeed) int {
	switch speed {
	case domain.RecoverySlow:
		return slowRecoveryPts
	case domain.RecoveryModerate:
		return moderateRecoveryPts
	default:
		return 0
	}
}

// recoverySpeed buckets the average length of contiguous low-completion runs.
func recoverySpeed(days []domain.DayRecord) (domain.RecoverySpeed, float64) {
	var runs []float64
	run := 0
	for _, d := range days {
		if d.CompletionRate < slumpRateBelow {
			run++
			continue
		}
		if run > 0 {
			runs = append(runs, float64(run))
			run = 0
		}
	}
	if run > 0 {
		runs = append(runs, float64(run))
	}
	avg := domain.Mean(runs, 0)
	switch {
	case avg <= fastRecoveryMaxDays:
		return domain.RecoveryFast, avg
	case avg <= moderateRecoveryDays:
		return domain.RecoveryModerate, avg
	default:
		return domain.RecoverySlow, avg
	}
}

func detectLowMood(in ProcrastinationInput) (int, string, bool) {
	var low, high []float64
	for _, d := range in.Days {
		if !d.HasMood() {
			continue
		}
		switch {
		case d.Mood <= lowMoodMax:
			low = append(low, float64(d.CompletionRate))
		case d.Mood >= highMoodMin:
			high = append(high, float64(d.CompletionRate))
		}
	}
	if len(low) < minMoodSamples || len(high) < minMoodSamples {
		return 0, "", false
	}
	lowAvg, highAvg := domain.Mean(low, 0), domain.Mean(high, 0)
	gap := highAvg - lowAvg
	if gap <= moodGapMin {
		return 0, "", false
	}
	desc := fmt.Sprintf("You complete %.0f%% on low-mood days versus %.0f%% on good days.", lowAvg, highAvg)
	return int(math.Min(95, 50+gap)), desc, true
}

func detectWeekendAvoidance(in ProcrastinationInput) (int, string, bool) {
	var weekday, weekend []float64
	for _, d := range in.Days {
		if d.DayOfWeek >= 5 {
			weekend = append(weekend, float64(d.CompletionRate))
		} else {
			weekday = append(weekday, float64(d.CompletionRate))
		}
	}
	if len(weekend) < minWeekendSamples || len(weekday) < minWeekdaySamples {
		return 0, "", false
	}
	wd, we := domain.Mean(weekday, 0), domain.Mean(weekend, 0)
	gap := wd - we
	if gap <= weekendGapMin {
		return 0, "", false
	}
	desc := fmt.Sprintf("Weekend completion averages %.0f%% against %.0f%% on weekdays.", we, wd)
	return int(math.Min(90, 40+gap*2)), desc, true
}

func detectMidweekDip(in ProcrastinationInput) (int, string, bool) {
	var early, mid []float64
	for _, d := range in.Days {
		switch d.DayOfWeek {
		case 0, 1:
			early = append(early, float64(d.CompletionRate))
		case 2, 3:
			mid = append(mid, float64(d.CompletionRate))
		}
	}
	if len(early) < minMidweekSamples || len(mid) < minMidweekSamples {
		return 0, "", false
	}
	e, m := domain.Mean(early, 0), domain.Mean(mid, 0)
	gap := e - m
	if gap <= midweekGapMin {
		return 0, "", false
	}
	desc := fmt.Sprintf("Wednesday and Thursday drop to %.0f%% after a %.0f%% start to the week.", m, e)
	return int(math.Min(85, 40+gap*2)), desc, true
}

func detectComplexityAvoidance(in ProcrastinationInput) (int, string, bool) {
	var complexDone, complexTotal, simpleDone, simpleTotal int
	for _, t := range in.Tasks {
		minutes := nlp.InterpretTask(t.Text).EstimatedMinutes
		switch {
		case minutes >= complexTaskMinutes:
			complexTotal++
			if t.Completed {
				complexDone++
			}
		case minutes <= simpleTaskMinutes:
			simpleTotal++
			if t.Completed {
				simpleDone++
			}
		}
	}
	if complexTotal < minComplexitySamples || simpleTotal < minComplexitySamples {
		return 0, "", false
	}
	complexRate := float64(complexDone) / float64(complexTotal) * 100
	simpleRate := float64(simpleDone) / float64(simpleTotal) * 100
	gap := simpleRate - complexRate
	if gap <= complexityGapMin {
		return 0, "", false
	}
	desc := fmt.Sprintf("Only %.0f%% of long tasks get done, compared with %.0f%% of short ones.", complexRate, simpleRate)
	return int(math.Min(90, 45+gap)), desc, true
}

func detectMotivationDecline(in ProcrastinationInput) (int, string, bool) {
	samples := 0
	for _, d := range in.Days {
		if d.HasMotivation() {
			samples++
		}
	}
	if samples < minMotivationSamples || in.Mood.MotivationTrend > motivationDropMin {
		return 0, "", false
	}
	drop := math.Abs(in.Mood.MotivationTrend)
	desc := fmt.Sprintf("Motivation fell by %.1f points over the last week.", drop)
	return int(math.Min(90, 50+drop*15)), desc, true
}
