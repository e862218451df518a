package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/rhythm/internal/domain"
	"github.com/alexanderramin/rhythm/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleWeek() domain.WeekRecord {
	wk := testutil.NewWeek(testutil.RefNow,
		testutil.NewTestTask("Write report", 0, testutil.WithTaskID("t1"), testutil.WithCompleted()),
		testutil.NewTestTask("Call bank", 3, testutil.WithTaskID("t2")),
	)
	wk.Habits = testutil.Habits("Water", "Walk")
	wk.HabitCompletions = map[string][]int{"h1": {0, 1, 2}, "h2": {4}}
	wk.Notes = "travel on Thursday"
	return wk
}

func TestWeekRepo_SaveAndGet(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteWeekRepo(db)
	ctx := context.Background()

	rec := sampleWeek()
	require.Equal(t, "2026-W14", rec.Key)
	require.NoError(t, repo.Save(ctx, rec))

	fetched, err := repo.Get(ctx, rec.Key)
	require.NoError(t, err)
	assert.Equal(t, rec, *fetched)
}

func TestWeekRepo_Get_NoHabits(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteWeekRepo(db)
	ctx := context.Background()

	rec := testutil.NewWeek(testutil.RefNow, testutil.NewTestTask("Plan", 1, testutil.WithTaskID("t1")))
	require.NoError(t, repo.Save(ctx, rec))

	fetched, err := repo.Get(ctx, rec.Key)
	require.NoError(t, err)
	assert.Nil(t, fetched.Habits)
	assert.Nil(t, fetched.HabitCompletions)
	assert.Empty(t, fetched.Notes)
	require.Len(t, fetched.Tasks, 1)
	assert.False(t, fetched.Tasks[0].Completed)
}

func TestWeekRepo_Save_ReplacesTasks(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteWeekRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, sampleWeek()))

	replacement := testutil.NewWeek(testutil.RefNow,
		testutil.NewTestTask("Only task", 6, testutil.WithTaskID("t9")))
	require.NoError(t, repo.Save(ctx, replacement))

	fetched, err := repo.Get(ctx, replacement.Key)
	require.NoError(t, err)
	require.Len(t, fetched.Tasks, 1)
	assert.Equal(t, "t9", fetched.Tasks[0].ID)
	assert.Nil(t, fetched.HabitCompletions)
	assert.Empty(t, fetched.Notes)
}

func TestWeekRepo_ListRange(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteWeekRepo(db)
	ctx := context.Background()

	for _, offset := range []int{-21, -14, -7, 0} {
		wk := testutil.NewWeek(testutil.RefNow.AddDate(0, 0, offset))
		require.NoError(t, repo.Save(ctx, wk))
	}

	got, err := repo.ListRange(ctx, "2026-W12", "2026-W13")
	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Contains(t, got, "2026-W12")
	assert.Contains(t, got, "2026-W13")

	keys, err := repo.Keys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"2026-W11", "2026-W12", "2026-W13", "2026-W14"}, keys)
}

func TestWeekRepo_Delete(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteWeekRepo(db)
	ctx := context.Background()

	rec := sampleWeek()
	require.NoError(t, repo.Save(ctx, rec))
	require.NoError(t, repo.Delete(ctx, rec.Key))

	_, err := repo.Get(ctx, rec.Key)
	assert.ErrorIs(t, err, ErrNotFound)

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM week_tasks`).Scan(&n))
	assert.Equal(t, 0, n)
}

func TestWeekRepo_Save_RejectsBadDayIndex(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteWeekRepo(db)

	rec := testutil.NewWeek(testutil.RefNow, testutil.NewTestTask("Bad", 7))
	assert.Error(t, repo.Save(context.Background(), rec))
}
