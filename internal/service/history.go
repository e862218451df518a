package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/rhythm/internal/app"
	"github.com/alexanderramin/rhythm/internal/domain"
	"github.com/alexanderramin/rhythm/internal/repository"
)

// history is the stored snapshot a window covers.
type history struct {
	months map[string]domain.MonthRecord
	weeks  map[string]domain.WeekRecord
}

func loadHistory(ctx context.Context, months repository.MonthRepo, weeks repository.WeekRepo, w app.Window) (history, error) {
	from, to := w.MonthRange()
	m, err := months.ListRange(ctx, from, to)
	if err != nil {
		return history{}, fmt.Errorf("loading months %s..%s: %w", from, to, err)
	}

	from, to = w.WeekRange()
	wk, err := weeks.ListRange(ctx, from, to)
	if err != nil {
		return history{}, fmt.Errorf("loading weeks %s..%s: %w", from, to, err)
	}

	return history{months: m, weeks: wk}, nil
}
