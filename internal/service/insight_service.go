package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/alexanderramin/rhythm/internal/agenda"
	"github.com/alexanderramin/rhythm/internal/app"
	"github.com/alexanderramin/rhythm/internal/domain"
	"github.com/alexanderramin/rhythm/internal/nlp"
	"github.com/alexanderramin/rhythm/internal/repository"
)

// ErrEmptyText is returned when a task tool receives blank input.
var ErrEmptyText = errors.New("task text is required")

type insightService struct {
	months   repository.MonthRepo
	weeks    repository.WeekRepo
	observer UseCaseObserver
}

func NewInsightService(months repository.MonthRepo, weeks repository.WeekRepo, observers ...UseCaseObserver) app.TaskInsightUseCase {
	return &insightService{
		months:   months,
		weeks:    weeks,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *insightService) Interpret(ctx context.Context, text string) (interp domain.TaskInterpretation, err error) {
	done := track(ctx, s.observer, "interpret-task", nil)
	defer func() { done(err) }()

	if strings.TrimSpace(text) == "" {
		return domain.TaskInterpretation{}, ErrEmptyText
	}
	return nlp.InterpretTask(text), nil
}

func (s *insightService) ParseSchedule(ctx context.Context, text string, now time.Time) (sched domain.ParsedSchedule, err error) {
	done := track(ctx, s.observer, "parse-schedule", nil)
	defer func() { done(err) }()

	if strings.TrimSpace(text) == "" {
		return domain.ParsedSchedule{}, ErrEmptyText
	}
	if now.IsZero() {
		now = time.Now()
	}
	return nlp.ParseSchedule(text, now), nil
}

func (s *insightService) Predict(ctx context.Context, req app.InsightRequest) (resp *app.InsightResponse, err error) {
	fields := map[string]any{}
	done := track(ctx, s.observer, "predict-task", fields)
	defer func() { done(err) }()

	if strings.TrimSpace(req.Text) == "" {
		return nil, ErrEmptyText
	}

	w := req.Window.Normalized()
	h, err := loadHistory(ctx, s.months, s.weeks, w)
	if err != nil {
		return nil, err
	}

	item := agenda.Describe(agenda.Input{
		Months:     h.months,
		Weeks:      h.weeks,
		Now:        w.Now,
		MonthsBack: w.MonthsBack,
		WeeksBack:  w.WeeksBack,
		PeakHour:   req.PeakHour,
	}, req.Text)

	fields["category"] = string(item.Interpretation.Category)
	fields["now_score"] = item.Prediction.CompleteNowScore

	return &app.InsightResponse{
		Interpretation: item.Interpretation,
		Schedule:       item.Schedule,
		Prediction:     item.Prediction,
		Reminder:       item.Reminder,
	}, nil
}
