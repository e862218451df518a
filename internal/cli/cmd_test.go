package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alexanderramin/rhythm/internal/app"
	"github.com/alexanderramin/rhythm/internal/domain"
	"github.com/alexanderramin/rhythm/internal/repository"
	"github.com/alexanderramin/rhythm/internal/service"
	"github.com/alexanderramin/rhythm/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const refNowFlag = "--now=2026-03-31T20:00"

// testApp wires a full App backed by an in-memory DB for CLI integration tests.
func testApp(t *testing.T) (*App, *repository.SQLiteMonthRepo, *repository.SQLiteWeekRepo) {
	t.Helper()
	database := testutil.NewTestDB(t)

	months := repository.NewSQLiteMonthRepo(database)
	weeks := repository.NewSQLiteWeekRepo(database)

	a := &App{
		Profile:    service.NewProfileService(months, weeks),
		Agenda:     service.NewAgendaService(months, weeks),
		Insight:    service.NewInsightService(months, weeks),
		Import:     service.NewImportService(repository.NewSQLiteImportRepo(database), testutil.NewTestUoW(database)),
		Location:   time.UTC,
		MonthsBack: 3,
		WeeksBack:  6,
		Clock:      func() time.Time { return testutil.RefNow },
	}
	return a, months, weeks
}

// seedHistory stores three months of habits and this week's tasks.
func seedHistory(t *testing.T, months *repository.SQLiteMonthRepo, weeks *repository.SQLiteWeekRepo) {
	t.Helper()
	ctx := context.Background()
	for _, m := range testutil.NewHistory(testutil.RefNow, 3, testutil.Habits("Read", "Morning run"),
		testutil.WithCompletion(func(day time.Time, id string) bool {
			return id == "h1" || day.Day()%3 != 0
		}),
		testutil.WithMood(testutil.Constant(6)),
		testutil.WithMotivation(testutil.Constant(7)),
	) {
		require.NoError(t, months.Save(ctx, m))
	}
	for _, w := range testutil.Weeks(testutil.NewWeek(testutil.RefNow,
		testutil.NewTestTask("pay rent", 0, testutil.WithTaskID("late")),
		testutil.NewTestTask("write quarterly report", 1, testutil.WithTaskID("today")),
	)) {
		require.NoError(t, weeks.Save(ctx, w))
	}
}

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, a *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(a)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func TestProfileCmd_Text(t *testing.T) {
	a, months, weeks := testApp(t)
	seedHistory(t, months, weeks)

	out, err := executeCmd(t, a, "profile", refNowFlag)
	require.NoError(t, err)
	assert.Contains(t, out, "BEHAVIOR PROFILE")
	assert.Contains(t, out, "Read")
	assert.Contains(t, out, "Morning run")
	assert.Contains(t, out, "BURNOUT")
}

func TestProfileCmd_JSON(t *testing.T) {
	a, months, weeks := testApp(t)
	seedHistory(t, months, weeks)

	out, err := executeCmd(t, a, "profile", "--json", "--months=1", refNowFlag)
	require.NoError(t, err)

	var resp app.ProfileResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, 1, resp.Months)
	assert.Equal(t, 31, resp.Profile.TrackedDays)
	assert.True(t, resp.Profile.GeneratedAt.Equal(testutil.RefNow))
}

func TestRoutinesCmd_JSON(t *testing.T) {
	a, months, weeks := testApp(t)
	seedHistory(t, months, weeks)

	out, err := executeCmd(t, a, "routines", "--json", refNowFlag)
	require.NoError(t, err)

	var routines []domain.RoutineSuggestion
	require.NoError(t, json.Unmarshal([]byte(out), &routines))
	for _, r := range routines {
		assert.True(t, r.NextRun.After(testutil.RefNow), "routine %s runs after now", r.ID)
	}
}

func TestAgendaCmd(t *testing.T) {
	a, months, weeks := testApp(t)
	seedHistory(t, months, weeks)

	out, err := executeCmd(t, a, "agenda", refNowFlag)
	require.NoError(t, err)
	assert.Contains(t, out, "AGENDA · TUE MAR 31")
	assert.Contains(t, out, "pay rent")
	assert.Contains(t, out, "write quarterly report")
	assert.Contains(t, out, "[overdue]")
}

func TestAgendaCmd_JSONUsesClockWithoutNowFlag(t *testing.T) {
	a, months, weeks := testApp(t)
	seedHistory(t, months, weeks)

	out, err := executeCmd(t, a, "agenda", "--json")
	require.NoError(t, err)

	var resp app.AgendaResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, 1, resp.Agenda.Summary.Overdue)
	assert.Equal(t, 31, resp.Agenda.Date.Day())
}

func TestImportCmd_ThenImports(t *testing.T) {
	a, months, _ := testApp(t)
	path := filepath.Join(t.TempDir(), "history.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
  "months": [{"key": "2026-03", "habits": [{"id": "h1", "name": "Read"}], "days": {"1": {"completedHabitIds": ["h1"], "mood": 7}}}],
  "weeks": [{"key": "2026-W14", "tasks": [{"id": "t1", "text": "Pay rent", "dayIndex": 0}]}]
}`), 0644))

	out, err := executeCmd(t, a, "import", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Imported history.json (json)")

	stored, err := months.Get(context.Background(), "2026-03")
	require.NoError(t, err)
	assert.Equal(t, 7, stored.Days[1].Mood)

	out, err = executeCmd(t, a, "imports", refNowFlag)
	require.NoError(t, err)
	assert.Contains(t, out, "IMPORTS")
	assert.Contains(t, out, "history.json")
}

func TestImportCmd_InvalidSnapshot(t *testing.T) {
	a, _, _ := testApp(t)
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("months:\n  - key: 2026-13\n"), 0644))

	_, err := executeCmd(t, a, "import", path)
	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrValidation)
}

func TestImportsCmd_Empty(t *testing.T) {
	a, _, _ := testApp(t)
	out, err := executeCmd(t, a, "imports")
	require.NoError(t, err)
	assert.Contains(t, out, "No imports yet.")
}

func TestInterpretCmd_JoinsArgs(t *testing.T) {
	a, _, _ := testApp(t)

	out, err := executeCmd(t, a, "interpret", "--json", "go", "for", "a", "run")
	require.NoError(t, err)

	var interp domain.TaskInterpretation
	require.NoError(t, json.Unmarshal([]byte(out), &interp))
	assert.Equal(t, "go for a run", interp.Text)
	assert.Equal(t, domain.CategoryFitness, interp.Category)
}

func TestParseCmd(t *testing.T) {
	a, _, _ := testApp(t)

	out, err := executeCmd(t, a, "parse", "--json", refNowFlag, "dentist tomorrow at 9am")
	require.NoError(t, err)

	var sched domain.ParsedSchedule
	require.NoError(t, json.Unmarshal([]byte(out), &sched))
	require.NotNil(t, sched.Time)
	assert.Equal(t, "09:00", *sched.Time)
	assert.True(t, sched.IsTomorrow)

	out, err = executeCmd(t, a, "parse", refNowFlag, "dentist tomorrow at 9am")
	require.NoError(t, err)
	assert.Contains(t, out, "Wed Apr 1 2026")
}

func TestPredictCmd(t *testing.T) {
	a, months, weeks := testApp(t)
	seedHistory(t, months, weeks)

	out, err := executeCmd(t, a, "predict", refNowFlag, "finish slides tomorrow at 10am")
	require.NoError(t, err)
	assert.Contains(t, out, "PREDICTION")
	assert.Contains(t, out, "REMINDER")
}

func TestPredictCmd_BlankText(t *testing.T) {
	a, _, _ := testApp(t)
	_, err := executeCmd(t, a, "predict", "   ")
	assert.ErrorIs(t, err, service.ErrEmptyText)
}

func TestRootCmd_InvalidNow(t *testing.T) {
	a, _, _ := testApp(t)
	_, err := executeCmd(t, a, "agenda", "--now=yesterday")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid time")
}

func TestTimeFlag(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)
	tests := []struct {
		in   string
		want time.Time
	}{
		{"2026-03-31T20:00:00Z", time.Date(2026, 3, 31, 20, 0, 0, 0, time.UTC)},
		{"2026-03-31T20:00", time.Date(2026, 3, 31, 20, 0, 0, 0, loc)},
		{"2026-03-31", time.Date(2026, 3, 31, 0, 0, 0, 0, loc)},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			f := timeFlag{loc: loc}
			require.NoError(t, f.Set(tt.in))
			assert.True(t, f.t.Equal(tt.want), "got %s", f.t)
			assert.Equal(t, "time", f.Type())
			assert.NotEmpty(t, f.String())
		})
	}

	var unset timeFlag
	assert.Empty(t, unset.String())
	assert.Error(t, unset.Set("31/03/2026"))
}
