package scheduler

import (
	"time"

	"github.com/alexanderramin/rhythm/internal/domain"
	"github.com/alexanderramin/rhythm/internal/timeline"
)

const (
	moodLookbackDays = 3
	taskRateWeeks    = 2
	DefaultPeakHour  = 9
)

// UserState is the per-call snapshot of history the scorer and reminder
// generator read. Build it once per agenda with NewUserState.
type UserState struct {
	WeekdayAvg     [7]float64 // mean completion rate per weekday
	WeekdaySamples [7]int
	OverallAvg     float64
	HasToday       bool
	TodayRate      int
	RecentMood     int // 0 when nothing logged recently
	WeeklyTaskRate int // -1 when there were no tasks
	PeakHour       int
}

// NewUserState summarizes days and weeks relative to now. peakHour <= 0 falls
// back to DefaultPeakHour.
func NewUserState(days []domain.DayRecord, weeks []domain.WeekSummary, now time.Time, peakHour int) UserState {
	s := UserState{WeeklyTaskRate: -1, PeakHour: peakHour}
	if s.PeakHour <= 0 || s.PeakHour > 23 {
		s.PeakHour = DefaultPeakHour
	}

	var sums [7]float64
	var total float64
	for _, d := range days {
		sums[d.DayOfWeek] += float64(d.CompletionRate)
		s.WeekdaySamples[d.DayOfWeek]++
		total += float64(d.CompletionRate)
	}
	for i := range sums {
		if s.WeekdaySamples[i] > 0 {
			s.WeekdayAvg[i] = sums[i] / float64(s.WeekdaySamples[i])
		}
	}
	if len(days) > 0 {
		s.OverallAvg = total / float64(len(days))
	}

	if today, ok := timeline.Today(days, now); ok {
		s.HasToday = true
		s.TodayRate = today.CompletionRate
	}

	cutoff := timeline.StartOfDay(now).AddDate(0, 0, -moodLookbackDays)
	for i := len(days) - 1; i >= 0 && !days[i].Date.Before(cutoff); i-- {
		if days[i].HasMood() {
			s.RecentMood = days[i].Mood
			break
		}
	}

	taskTotal, done, _ := timeline.TotalsOf(trailingWeeks(weeks, taskRateWeeks))
	if taskTotal > 0 {
		s.WeeklyTaskRate = domain.RoundPct(float64(done) / float64(taskTotal))
	}
	return s
}

func trailingWeeks(weeks []domain.WeekSummary, n int) []domain.WeekSummary {
	if n >= len(weeks) {
		return weeks
	}
	return weeks[len(weeks)-n:]
}
