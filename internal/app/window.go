package app

import (
	"time"

	"github.com/alexanderramin/rhythm/internal/timeline"
)

// Window selects how much history a use case reads, anchored at Now.
type Window struct {
	Now        time.Time
	MonthsBack int
	WeeksBack  int
}

func NewWindow(now time.Time) Window {
	return Window{
		Now:        now,
		MonthsBack: timeline.DefaultMonthsBack,
		WeeksBack:  timeline.DefaultWeeksBack,
	}
}

// Normalized fills zero fields with defaults. A zero Now becomes the
// current wall-clock time.
func (w Window) Normalized() Window {
	if w.Now.IsZero() {
		w.Now = time.Now()
	}
	if w.MonthsBack <= 0 {
		w.MonthsBack = timeline.DefaultMonthsBack
	}
	if w.WeeksBack <= 0 {
		w.WeeksBack = timeline.DefaultWeeksBack
	}
	return w
}

// MonthRange returns the first and last month keys the window covers.
func (w Window) MonthRange() (from, to string) {
	first := time.Date(w.Now.Year(), w.Now.Month()-time.Month(w.MonthsBack-1), 1, 0, 0, 0, 0, w.Now.Location())
	return timeline.MonthKey(first), timeline.MonthKey(w.Now)
}

// WeekRange returns the first and last ISO week keys the window covers.
// At least two weeks are included so overdue tasks from last week are seen.
func (w Window) WeekRange() (from, to string) {
	n := w.WeeksBack
	if n < 2 {
		n = 2
	}
	start := timeline.MondayOf(w.Now).AddDate(0, 0, -7*(n-1))
	return timeline.WeekKey(start), timeline.WeekKey(w.Now)
}
