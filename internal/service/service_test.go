package service

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/alexanderramin/rhythm/internal/agenda"
	"github.com/alexanderramin/rhythm/internal/analytics"
	"github.com/alexanderramin/rhythm/internal/app"
	"github.com/alexanderramin/rhythm/internal/domain"
	"github.com/alexanderramin/rhythm/internal/repository"
	"github.com/alexanderramin/rhythm/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (r *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

type stores struct {
	months *repository.SQLiteMonthRepo
	weeks  *repository.SQLiteWeekRepo
}

// seedStores persists a three-month history and two weeks of tasks.
func seedStores(t *testing.T) (stores, map[string]domain.MonthRecord, map[string]domain.WeekRecord) {
	t.Helper()
	database := testutil.NewTestDB(t)
	s := stores{
		months: repository.NewSQLiteMonthRepo(database),
		weeks:  repository.NewSQLiteWeekRepo(database),
	}
	ctx := context.Background()

	months := testutil.NewHistory(testutil.RefNow, 3, testutil.Habits("Read", "Morning run"),
		testutil.WithCompletion(func(day time.Time, id string) bool {
			return id == "h1" || day.Day()%3 != 0
		}),
		testutil.WithMood(testutil.Constant(6)),
		testutil.WithMotivation(testutil.Constant(7)),
	)
	for _, m := range months {
		require.NoError(t, s.months.Save(ctx, m))
	}

	weeks := testutil.Weeks(
		testutil.NewWeek(testutil.RefNow,
			testutil.NewTestTask("write quarterly report", 1, testutil.WithTaskID("today")),
			testutil.NewTestTask("pay rent", 0, testutil.WithTaskID("late")),
			testutil.NewTestTask("call mom", 0, testutil.WithTaskID("done"), testutil.WithCompleted()),
		),
		testutil.NewWeek(testutil.RefNow.AddDate(0, 0, -7),
			testutil.NewTestTask("book dentist", 4, testutil.WithTaskID("old")),
		),
	)
	for _, w := range weeks {
		require.NoError(t, s.weeks.Save(ctx, w))
	}
	return s, months, weeks
}

func TestProfileService_MatchesPureAnalysis(t *testing.T) {
	s, months, weeks := seedStores(t)
	obs := &recordingObserver{}
	svc := NewProfileService(s.months, s.weeks, obs)

	resp, err := svc.BuildProfile(context.Background(), app.NewProfileRequest(testutil.RefNow))
	require.NoError(t, err)

	want := analytics.BuildProfile(analytics.ProfileInput{
		Months: months, Weeks: weeks, Now: testutil.RefNow, MonthsBack: 3, WeeksBack: 6,
	})
	assert.Equal(t, want, resp.Profile)
	assert.Equal(t, 3, resp.Months)
	assert.Equal(t, 2, resp.Weeks)
	assert.True(t, resp.Profile.HasEnoughData)

	require.Len(t, obs.events, 1)
	assert.Equal(t, "build-profile", obs.events[0].Name)
	assert.True(t, obs.events[0].Success)
	assert.Equal(t, resp.Profile.TrackedDays, obs.events[0].Fields["tracked_days"])
}

func TestProfileService_WindowExcludesOlderMonths(t *testing.T) {
	s, _, _ := seedStores(t)
	svc := NewProfileService(s.months, s.weeks)

	req := app.NewProfileRequest(testutil.RefNow)
	req.MonthsBack = 1
	resp, err := svc.BuildProfile(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, 1, resp.Months)
	assert.Equal(t, 31, resp.Profile.TrackedDays)
}

func TestProfileService_EmptyStore(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := NewProfileService(repository.NewSQLiteMonthRepo(database), repository.NewSQLiteWeekRepo(database))

	resp, err := svc.BuildProfile(context.Background(), app.NewProfileRequest(testutil.RefNow))
	require.NoError(t, err)
	assert.Equal(t, 0, resp.Profile.TrackedDays)
	assert.False(t, resp.Profile.HasEnoughData)
	assert.Equal(t, domain.StageThriving, resp.Profile.Burnout.Stage)
}

func TestAgendaService_MatchesCompose(t *testing.T) {
	s, months, weeks := seedStores(t)
	obs := &recordingObserver{}
	svc := NewAgendaService(s.months, s.weeks, obs)

	resp, err := svc.DailyAgenda(context.Background(), app.NewAgendaRequest(testutil.RefNow))
	require.NoError(t, err)

	want := agenda.Compose(agenda.Input{
		Months: months, Weeks: weeks, Now: testutil.RefNow, MonthsBack: 3, WeeksBack: 6,
	})
	assert.Equal(t, want, resp.Agenda)

	ids := make([]string, 0, len(resp.Agenda.Items))
	for _, it := range resp.Agenda.Items {
		ids = append(ids, it.ID)
	}
	assert.Contains(t, ids, "task:today")
	assert.Contains(t, ids, "task:late")
	assert.Contains(t, ids, "task:old")
	assert.NotContains(t, ids, "task:done")
	assert.Equal(t, 2, resp.Agenda.Summary.Overdue)

	require.Len(t, obs.events, 1)
	assert.Equal(t, "daily-agenda", obs.events[0].Name)
	assert.Equal(t, 2, obs.events[0].Fields["overdue"])
}

func TestInsightService_Predict(t *testing.T) {
	s, months, weeks := seedStores(t)
	svc := NewInsightService(s.months, s.weeks)

	req := app.NewInsightRequest("finish slides tomorrow at 10am", testutil.RefNow)
	resp, err := svc.Predict(context.Background(), req)
	require.NoError(t, err)

	want := agenda.Describe(agenda.Input{
		Months: months, Weeks: weeks, Now: testutil.RefNow, MonthsBack: 3, WeeksBack: 6,
	}, req.Text)
	assert.Equal(t, want.Interpretation, resp.Interpretation)
	assert.Equal(t, want.Prediction, resp.Prediction)
	assert.Equal(t, want.Reminder, resp.Reminder)
	require.NotNil(t, resp.Schedule.Time)
	assert.Equal(t, "10:00", *resp.Schedule.Time)
	assert.True(t, resp.Schedule.IsTomorrow)
}

func TestInsightService_RejectsBlankText(t *testing.T) {
	database := testutil.NewTestDB(t)
	obs := &recordingObserver{}
	svc := NewInsightService(repository.NewSQLiteMonthRepo(database), repository.NewSQLiteWeekRepo(database), obs)
	ctx := context.Background()

	_, err := svc.Interpret(ctx, "   ")
	assert.ErrorIs(t, err, ErrEmptyText)
	_, err = svc.ParseSchedule(ctx, "", testutil.RefNow)
	assert.ErrorIs(t, err, ErrEmptyText)
	_, err = svc.Predict(ctx, app.NewInsightRequest("", testutil.RefNow))
	assert.ErrorIs(t, err, ErrEmptyText)

	require.Len(t, obs.events, 3)
	for _, e := range obs.events {
		assert.False(t, e.Success)
	}
}

func TestInsightService_InterpretAndParse(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := NewInsightService(repository.NewSQLiteMonthRepo(database), repository.NewSQLiteWeekRepo(database))
	ctx := context.Background()

	interp, err := svc.Interpret(ctx, "go for a run")
	require.NoError(t, err)
	assert.Equal(t, domain.CategoryFitness, interp.Category)

	sched, err := svc.ParseSchedule(ctx, "dentist tomorrow at 9am", testutil.RefNow)
	require.NoError(t, err)
	require.NotNil(t, sched.Time)
	assert.Equal(t, "09:00", *sched.Time)
	assert.Equal(t, "Dentist", sched.CleanedText)
}

func TestLogUseCaseObserver_WritesStructuredLine(t *testing.T) {
	var buf bytes.Buffer
	database := testutil.NewTestDB(t)
	svc := NewProfileService(repository.NewSQLiteMonthRepo(database), repository.NewSQLiteWeekRepo(database),
		NewLogUseCaseObserver(&buf))

	_, err := svc.BuildProfile(context.Background(), app.NewProfileRequest(testutil.RefNow))
	require.NoError(t, err)

	line := buf.String()
	assert.Contains(t, line, "msg=service_use_case")
	assert.Contains(t, line, "use_case=build-profile")
	assert.Contains(t, line, "success=true")
	assert.Contains(t, line, "tracked_days=0")
}

func TestObservers_FanOutSkipsNil(t *testing.T) {
	first, second := &recordingObserver{}, &recordingObserver{}
	database := testutil.NewTestDB(t)
	svc := NewAgendaService(repository.NewSQLiteMonthRepo(database), repository.NewSQLiteWeekRepo(database),
		first, nil, second)

	_, err := svc.DailyAgenda(context.Background(), app.NewAgendaRequest(testutil.RefNow))
	require.NoError(t, err)

	require.Len(t, first.events, 1)
	require.Len(t, second.events, 1)
	assert.Equal(t, first.events[0].Name, second.events[0].Name)
}

func TestLogUseCaseObserver_SortsFields(t *testing.T) {
	var buf bytes.Buffer
	obs := NewLogUseCaseObserver(&buf)
	obs.ObserveUseCase(context.Background(), UseCaseEvent{
		Name:    "daily-agenda",
		Success: true,
		Fields:  map[string]any{"overdue": 1, "items": 4},
	})

	line := buf.String()
	assert.Less(t, strings.Index(line, "items=4"), strings.Index(line, "overdue=1"))
}
