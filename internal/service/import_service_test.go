package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/rhythm/internal/db"
	"github.com/alexanderramin/rhythm/internal/domain"
	"github.com/alexanderramin/rhythm/internal/importer"
	"github.com/alexanderramin/rhythm/internal/repository"
	"github.com/alexanderramin/rhythm/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const historyYAML = `
months:
  - key: "2026-03"
    habits:
      - id: h1
        name: " Read "
      - id: h2
        name: Stretch
    days:
      1: {completedHabitIds: [h1, h1], mood: 6, motivation: 5}
      2: {completedHabitIds: [h2]}
  - key: "2026-02"
    habits:
      - id: h1
        name: Read
    days:
      14: {completedHabitIds: [h1]}
weeks:
  - key: 2026-W14
    notes: crunch week
    tasks:
      - {id: t1, text: Pay rent, dayIndex: 0}
      - {id: t2, text: Call bank, dayIndex: 2, completed: true}
    habits:
      - {id: w1, name: Water}
    habitCompletions:
      w1: [2, 0, 2]
`

func writeSnapshot(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestImportService_ImportFile(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()
	obs := &recordingObserver{}
	svc := NewImportService(repository.NewSQLiteImportRepo(database), testutil.NewTestUoW(database), obs)

	res, err := svc.ImportFile(ctx, writeSnapshot(t, "history.yaml", historyYAML))
	require.NoError(t, err)

	assert.Equal(t, []string{"2026-02", "2026-03"}, res.MonthKeys)
	assert.Equal(t, []string{"2026-W14"}, res.WeekKeys)
	assert.Equal(t, "history.yaml", res.Batch.Source)
	assert.Equal(t, importer.FormatYAML, res.Batch.Format)
	assert.Equal(t, 2, res.Batch.Months)
	assert.Equal(t, 1, res.Batch.Weeks)

	march, err := repository.NewSQLiteMonthRepo(database).Get(ctx, "2026-03")
	require.NoError(t, err)
	assert.Equal(t, "Read", march.Habits[0].Name)
	assert.Equal(t, []string{"h1"}, march.Days[1].CompletedHabitIDs)
	assert.Equal(t, 6, march.Days[1].Mood)

	week, err := repository.NewSQLiteWeekRepo(database).Get(ctx, "2026-W14")
	require.NoError(t, err)
	assert.Equal(t, "crunch week", week.Notes)
	assert.Equal(t, []int{0, 2}, week.HabitCompletions["w1"])
	require.Len(t, week.Tasks, 2)
	assert.True(t, week.Tasks[1].Completed)

	recent, err := svc.RecentImports(ctx, 0)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, res.Batch.ID, recent[0].ID)

	require.Len(t, obs.events, 1)
	assert.Equal(t, "import-snapshot", obs.events[0].Name)
	assert.True(t, obs.events[0].Success)
}

func TestImportService_ReimportReplacesMonth(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()
	svc := NewImportService(repository.NewSQLiteImportRepo(database), testutil.NewTestUoW(database))

	_, err := svc.ImportFile(ctx, writeSnapshot(t, "history.yaml", historyYAML))
	require.NoError(t, err)

	update := &importer.Snapshot{Months: []domain.MonthRecord{{
		Key:    "2026-03",
		Habits: []domain.Habit{{ID: "h9", Name: "Journal"}},
		Days:   map[int]domain.DayEntry{5: {CompletedHabitIDs: []string{"h9"}}},
	}}}
	_, err = svc.ImportSnapshot(ctx, update, "inline", importer.FormatJSON)
	require.NoError(t, err)

	march, err := repository.NewSQLiteMonthRepo(database).Get(ctx, "2026-03")
	require.NoError(t, err)
	assert.Equal(t, []domain.Habit{{ID: "h9", Name: "Journal"}}, march.Habits)
	assert.Len(t, march.Days, 1)

	// untouched by the second import
	_, err = repository.NewSQLiteMonthRepo(database).Get(ctx, "2026-02")
	assert.NoError(t, err)

	recent, err := svc.RecentImports(ctx, 5)
	require.NoError(t, err)
	assert.Len(t, recent, 2)
}

func TestImportService_ValidationErrors(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()
	obs := &recordingObserver{}
	svc := NewImportService(repository.NewSQLiteImportRepo(database), testutil.NewTestUoW(database), obs)

	bad := &importer.Snapshot{Months: []domain.MonthRecord{{
		Key:    "2026-02",
		Habits: []domain.Habit{{ID: "h1", Name: "Read"}},
		Days:   map[int]domain.DayEntry{30: {}, 3: {Mood: 12}},
	}}}
	_, err := svc.ImportSnapshot(ctx, bad, "bad.json", importer.FormatJSON)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "import validation failed (2 errors):")
	assert.Contains(t, err.Error(), "\n  - months[0] (2026-02).days[3].mood 12 out of range 0..10")
	assert.Contains(t, err.Error(), "\n  - months[0] (2026-02).days[30]: day out of range 1..28")

	keys, err := repository.NewSQLiteMonthRepo(database).Keys(ctx)
	require.NoError(t, err)
	assert.Empty(t, keys)

	require.Len(t, obs.events, 1)
	assert.False(t, obs.events[0].Success)
	assert.Equal(t, 2, obs.events[0].Fields["validation_errors"])
}

func TestImportService_UnsupportedFile(t *testing.T) {
	database := testutil.NewTestDB(t)
	svc := NewImportService(repository.NewSQLiteImportRepo(database), testutil.NewTestUoW(database))

	_, err := svc.ImportFile(context.Background(), writeSnapshot(t, "history.csv", "a,b"))
	assert.ErrorContains(t, err, "unsupported snapshot extension")
}

func TestImportService_RollbackOnWeekFailure(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()

	failUoW := &testutil.FailingUoW{
		DB:    database,
		Match: "INSERT INTO week_tasks",
		Err:   fmt.Errorf("injected week task failure"),
	}
	svc := NewImportService(repository.NewSQLiteImportRepo(database), failUoW)

	snap, _, err := importer.LoadSnapshot(writeSnapshot(t, "history.yaml", historyYAML))
	require.NoError(t, err)

	_, err = svc.ImportSnapshot(ctx, snap, "history.yaml", importer.FormatYAML)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "injected week task failure")
	assert.Contains(t, err.Error(), "saving week 2026-W14")

	months, err := repository.NewSQLiteMonthRepo(database).Keys(ctx)
	require.NoError(t, err)
	assert.Empty(t, months, "months written before the failure are rolled back")

	recent, err := svc.RecentImports(ctx, 5)
	require.NoError(t, err)
	assert.Empty(t, recent)
}

func TestImportService_RollbackOnBatchRecordFailure(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()

	injected := errors.New("disk full")
	var uow db.UnitOfWork = &testutil.FailingUoW{DB: database, Match: "INSERT INTO imports", Err: injected}
	svc := NewImportService(repository.NewSQLiteImportRepo(database), uow)

	snap, _, err := importer.LoadSnapshot(writeSnapshot(t, "history.yaml", historyYAML))
	require.NoError(t, err)

	_, err = svc.ImportSnapshot(ctx, snap, "history.yaml", importer.FormatYAML)
	assert.ErrorIs(t, err, injected)

	weeks, err := repository.NewSQLiteWeekRepo(database).Keys(ctx)
	require.NoError(t, err)
	assert.Empty(t, weeks)
}
