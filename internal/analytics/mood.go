package analytics

import (
	"math"

	"github.com/alexanderramin/rhythm/internal/domain"
)

const (
	moodTrendWindow = 7
	highMoodMin     = 7
	lowMoodMax      = 4
	neutralMood     = 5.0
)

// AnalyzeMood aggregates logged mood/motivation and relates mood to the
// day's completion rate. Days without a logged mood are ignored.
func AnalyzeMood(days []domain.DayRecord) domain.MoodAnalysis {
	var moods, motivations, moodRates []float64
	var high, low []float64
	for _, d := range days {
		if d.HasMotivation() {
			motivations = append(motivations, float64(d.Motivation))
		}
		if !d.HasMood() {
			continue
		}
		moods = append(moods, float64(d.Mood))
		moodRates = append(moodRates, float64(d.CompletionRate))
		switch {
		case d.Mood >= highMoodMin:
			high = append(high, float64(d.CompletionRate))
		case d.Mood <= lowMoodMax:
			low = append(low, float64(d.CompletionRate))
		}
	}

	return domain.MoodAnalysis{
		SampleSize:                len(moods),
		AverageMood:               round1(domain.Mean(moods, neutralMood)),
		AverageMotivation:         round1(domain.Mean(motivations, neutralMood)),
		MoodTrend:                 round1(domain.WindowTrend(moods, moodTrendWindow)),
		MotivationTrend:           round1(domain.WindowTrend(motivations, moodTrendWindow)),
		MoodCompletionCorrelation: int(math.Round(domain.Pearson(moods, moodRates) * 100)),
		HighMoodCompletion:        int(math.Round(domain.Mean(high, 0))),
		LowMoodCompletion:         int(math.Round(domain.Mean(low, 0))),
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
