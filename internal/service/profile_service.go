package service

import (
	"context"

	"github.com/alexanderramin/rhythm/internal/analytics"
	"github.com/alexanderramin/rhythm/internal/app"
	"github.com/alexanderramin/rhythm/internal/repository"
)

type profileService struct {
	months   repository.MonthRepo
	weeks    repository.WeekRepo
	observer UseCaseObserver
}

func NewProfileService(months repository.MonthRepo, weeks repository.WeekRepo, observers ...UseCaseObserver) app.ProfileUseCase {
	return &profileService{
		months:   months,
		weeks:    weeks,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *profileService) BuildProfile(ctx context.Context, req app.ProfileRequest) (resp *app.ProfileResponse, err error) {
	fields := map[string]any{}
	done := track(ctx, s.observer, "build-profile", fields)
	defer func() { done(err) }()

	w := req.Window.Normalized()
	h, err := loadHistory(ctx, s.months, s.weeks, w)
	if err != nil {
		return nil, err
	}

	profile := analytics.BuildProfile(analytics.ProfileInput{
		Months:     h.months,
		Weeks:      h.weeks,
		Now:        w.Now,
		MonthsBack: w.MonthsBack,
		WeeksBack:  w.WeeksBack,
	})

	fields["tracked_days"] = profile.TrackedDays
	fields["patterns"] = len(profile.Patterns)
	fields["burnout_stage"] = string(profile.Burnout.Stage)

	return &app.ProfileResponse{
		Profile: profile,
		Months:  len(h.months),
		Weeks:   len(h.weeks),
	}, nil
}
