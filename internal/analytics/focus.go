package analytics

import (
	"math"
	"sort"
	"strings"

	"github.com/alexanderramin/rhythm/internal/domain"
)

const (
	defaultBucketScore = 50

	morningPeakMin   = 50
	afternoonPeakMin = 40
	eveningPeakMin   = 40
)

// Focus windows are fixed hour ranges; afternoon is the residual bucket.
var (
	MorningWindow   = domain.FocusWindow{Label: "Morning", StartHour: 6, EndHour: 11}
	AfternoonWindow = domain.FocusWindow{Label: "Afternoon", StartHour: 13, EndHour: 16}
	EveningWindow   = domain.FocusWindow{Label: "Evening", StartHour: 18, EndHour: 21}
)

var morningKeywords = []string{
	"morning", "wake", "breakfast", "sunrise", "meditat", "coffee", "stretch",
	"yoga", "run", "jog", "gym", "affirmation", "cold shower", "make bed",
}

var eveningKeywords = []string{
	"evening", "night", "sleep", "bed", "dinner", "read", "journal", "reflect",
	"gratitude", "floss", "skincare", "wind down", "review", "no screen",
}

type timeOfDay int

const (
	timeMorning timeOfDay = iota
	timeAfternoon
	timeEvening
)

// classifyHabitTime buckets a habit by keyword; morning keywords win over
// evening ones when both match.
func classifyHabitTime(name string) timeOfDay {
	lower := strings.ToLower(name)
	for _, kw := range morningKeywords {
		if strings.Contains(lower, kw) {
			return timeMorning
		}
	}
	for _, kw := range eveningKeywords {
		if strings.Contains(lower, kw) {
			return timeEvening
		}
	}
	return timeAfternoon
}

// AnalyzeFocus infers peak productivity windows from weekday performance and
// keyword time-of-day classification of habits.
func AnalyzeFocus(days []domain.DayRecord, profiles []domain.HabitProfile) domain.FocusAnalysis {
	var fa domain.FocusAnalysis
	fa.WeekdayHeatmap, fa.BestDay, fa.WorstDay = weekdayHeatmap(days)

	var morning, afternoon, evening []float64
	fa.MorningHabits, fa.AfternoonHabits, fa.EveningHabits = []string{}, []string{}, []string{}
	for _, p := range profiles {
		switch classifyHabitTime(p.Name) {
		case timeMorning:
			morning = append(morning, float64(p.CompletionRate))
			fa.MorningHabits = append(fa.MorningHabits, p.Name)
		case timeEvening:
			evening = append(evening, float64(p.CompletionRate))
			fa.EveningHabits = append(fa.EveningHabits, p.Name)
		default:
			afternoon = append(afternoon, float64(p.CompletionRate))
			fa.AfternoonHabits = append(fa.AfternoonHabits, p.Name)
		}
	}
	fa.MorningScore = int(math.Round(domain.Mean(morning, defaultBucketScore)))
	fa.AfternoonScore = int(math.Round(domain.Mean(afternoon, defaultBucketScore)))
	fa.EveningScore = int(math.Round(domain.Mean(evening, defaultBucketScore)))
	fa.PeakWindows = peakWindows(fa.MorningScore, fa.AfternoonScore, fa.EveningScore)
	return fa
}

// weekdayHeatmap averages daily completion per weekday (0 when unobserved).
func weekdayHeatmap(days []domain.DayRecord) (heat [7]int, best, worst string) {
	var sum, count [7]int
	for _, d := range days {
		sum[d.DayOfWeek] += d.CompletionRate
		count[d.DayOfWeek]++
	}
	bestIdx, worstIdx := -1, -1
	for i := 0; i < 7; i++ {
		if count[i] == 0 {
			continue
		}
		heat[i] = int(math.Round(float64(sum[i]) / float64(count[i])))
		if bestIdx < 0 || heat[i] > heat[bestIdx] {
			bestIdx = i
		}
		if worstIdx < 0 || heat[i] < heat[worstIdx] {
			worstIdx = i
		}
	}
	if bestIdx >= 0 {
		best, worst = domain.WeekdayNames[bestIdx], domain.WeekdayNames[worstIdx]
	}
	return heat, best, worst
}

// peakWindows emits every bucket above its threshold, strongest first.
// When none qualifies the best-scoring bucket is returned alone.
func peakWindows(morning, afternoon, evening int) []domain.FocusWindow {
	candidates := []struct {
		window domain.FocusWindow
		score  int
		min    int
	}{
		{MorningWindow, morning, morningPeakMin},
		{AfternoonWindow, afternoon, afternoonPeakMin},
		{EveningWindow, evening, eveningPeakMin},
	}

	var out []domain.FocusWindow
	best := candidates[0]
	for _, c := range candidates {
		w := c.window
		w.Score = c.score
		if c.score >= c.min {
			out = append(out, w)
		}
		if c.score > best.score {
			best = c
		}
	}
	if len(out) == 0 {
		w := best.window
		w.Score = best.score
		out = append(out, w)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	return out
}
