package app

import (
	"time"

	"github.com/alexanderramin/rhythm/internal/domain"
)

type ProfileRequest struct {
	Window
}

func NewProfileRequest(now time.Time) ProfileRequest {
	return ProfileRequest{Window: NewWindow(now)}
}

type ProfileResponse struct {
	Profile domain.UserBehaviorProfile `json:"profile"`
	Months  int                        `json:"monthsLoaded"`
	Weeks   int                        `json:"weeksLoaded"`
}

type AgendaRequest struct {
	Window
	PeakHour int // 0 derives the peak hour from focus analysis
}

func NewAgendaRequest(now time.Time) AgendaRequest {
	return AgendaRequest{Window: NewWindow(now)}
}

type AgendaResponse struct {
	Agenda domain.EnhancedDailyAgenda `json:"agenda"`
}

type InsightRequest struct {
	Window
	Text     string
	PeakHour int
}

func NewInsightRequest(text string, now time.Time) InsightRequest {
	return InsightRequest{Window: NewWindow(now), Text: text}
}

// InsightResponse is everything known about one free-text task.
type InsightResponse struct {
	Interpretation domain.TaskInterpretation `json:"interpretation"`
	Schedule       domain.ParsedSchedule     `json:"schedule"`
	Prediction     domain.PredictiveScore    `json:"prediction"`
	Reminder       domain.AdaptiveReminder   `json:"reminder"`
}

type ImportResult struct {
	Batch     domain.ImportBatch `json:"batch"`
	MonthKeys []string           `json:"monthKeys"`
	WeekKeys  []string           `json:"weekKeys"`
}
