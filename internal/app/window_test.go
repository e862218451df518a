package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// Tuesday 2026-03-31 20:00 UTC, ISO week 2026-W14.
var refNow = time.Date(2026, time.March, 31, 20, 0, 0, 0, time.UTC)

func TestWindow_Ranges(t *testing.T) {
	w := NewWindow(refNow)

	from, to := w.MonthRange()
	assert.Equal(t, "2026-01", from)
	assert.Equal(t, "2026-03", to)

	from, to = w.WeekRange()
	assert.Equal(t, "2026-W09", from)
	assert.Equal(t, "2026-W14", to)
}

func TestWindow_RangesCrossYear(t *testing.T) {
	w := Window{Now: time.Date(2026, time.January, 6, 9, 0, 0, 0, time.UTC), MonthsBack: 3, WeeksBack: 3}

	from, to := w.MonthRange()
	assert.Equal(t, "2025-11", from)
	assert.Equal(t, "2026-01", to)

	from, to = w.WeekRange()
	assert.Equal(t, "2025-W52", from)
	assert.Equal(t, "2026-W02", to)
}

func TestWindow_WeekRangeCoversLastWeek(t *testing.T) {
	w := Window{Now: refNow, MonthsBack: 1, WeeksBack: 1}

	from, to := w.WeekRange()
	assert.Equal(t, "2026-W13", from)
	assert.Equal(t, "2026-W14", to)
}

func TestWindow_Normalized(t *testing.T) {
	w := Window{}.Normalized()
	assert.False(t, w.Now.IsZero())
	assert.Equal(t, 3, w.MonthsBack)
	assert.Equal(t, 6, w.WeeksBack)

	kept := Window{Now: refNow, MonthsBack: 5, WeeksBack: 2}.Normalized()
	assert.Equal(t, Window{Now: refNow, MonthsBack: 5, WeeksBack: 2}, kept)
}
