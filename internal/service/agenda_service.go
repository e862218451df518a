package service

import (
	"context"

	"github.com/alexanderramin/rhythm/internal/agenda"
	"github.com/alexanderramin/rhythm/internal/app"
	"github.com/alexanderramin/rhythm/internal/repository"
)

type agendaService struct {
	months   repository.MonthRepo
	weeks    repository.WeekRepo
	observer UseCaseObserver
}

func NewAgendaService(months repository.MonthRepo, weeks repository.WeekRepo, observers ...UseCaseObserver) app.AgendaUseCase {
	return &agendaService{
		months:   months,
		weeks:    weeks,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *agendaService) DailyAgenda(ctx context.Context, req app.AgendaRequest) (resp *app.AgendaResponse, err error) {
	fields := map[string]any{}
	done := track(ctx, s.observer, "daily-agenda", fields)
	defer func() { done(err) }()

	w := req.Window.Normalized()
	h, err := loadHistory(ctx, s.months, s.weeks, w)
	if err != nil {
		return nil, err
	}

	result := agenda.Compose(agenda.Input{
		Months:     h.months,
		Weeks:      h.weeks,
		Now:        w.Now,
		MonthsBack: w.MonthsBack,
		WeeksBack:  w.WeeksBack,
		PeakHour:   req.PeakHour,
	})

	fields["items"] = result.Summary.TotalItems
	fields["overdue"] = result.Summary.Overdue

	return &app.AgendaResponse{Agenda: result}, nil
}
