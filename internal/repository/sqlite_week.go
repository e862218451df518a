package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"

	"github.com/alexanderramin/rhythm/internal/db"
	"github.com/alexanderramin/rhythm/internal/domain"
)

// SQLiteWeekRepo implements WeekRepo using a SQLite database.
type SQLiteWeekRepo struct {
	db db.DBTX
}

// NewSQLiteWeekRepo creates a new SQLiteWeekRepo.
func NewSQLiteWeekRepo(conn db.DBTX) *SQLiteWeekRepo {
	return &SQLiteWeekRepo{db: conn}
}

func (r *SQLiteWeekRepo) Save(ctx context.Context, rec domain.WeekRecord) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO weeks (key, notes, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET notes = excluded.notes, updated_at = excluded.updated_at`,
		rec.Key, rec.Notes, nowUTC())
	if err != nil {
		return fmt.Errorf("upserting week %s: %w", rec.Key, err)
	}

	for _, table := range []string{"week_tasks", "week_habits", "week_habit_completions"} {
		if _, err := r.db.ExecContext(ctx, `DELETE FROM `+table+` WHERE week_key = ?`, rec.Key); err != nil {
			return fmt.Errorf("clearing %s for %s: %w", table, rec.Key, err)
		}
	}

	for i, t := range rec.Tasks {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO week_tasks (week_key, task_id, text, completed, day_index, position)
			VALUES (?, ?, ?, ?, ?, ?)`,
			rec.Key, t.ID, t.Text, boolToInt(t.Completed), t.DayIndex, i)
		if err != nil {
			return fmt.Errorf("inserting task %q for %s: %w", t.ID, rec.Key, err)
		}
	}

	for i, h := range rec.Habits {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO week_habits (week_key, habit_id, name, position) VALUES (?, ?, ?, ?)`,
			rec.Key, h.ID, h.Name, i)
		if err != nil {
			return fmt.Errorf("inserting habit %q for %s: %w", h.ID, rec.Key, err)
		}
	}

	ids := make([]string, 0, len(rec.HabitCompletions))
	for id := range rec.HabitCompletions {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		for _, d := range rec.HabitCompletions[id] {
			_, err := r.db.ExecContext(ctx,
				`INSERT OR IGNORE INTO week_habit_completions (week_key, habit_id, day_index) VALUES (?, ?, ?)`,
				rec.Key, id, d)
			if err != nil {
				return fmt.Errorf("inserting completion %q/%d for %s: %w", id, d, rec.Key, err)
			}
		}
	}
	return nil
}

func (r *SQLiteWeekRepo) Get(ctx context.Context, key string) (*domain.WeekRecord, error) {
	rec := &domain.WeekRecord{Key: key, Tasks: []domain.Task{}}
	err := r.db.QueryRowContext(ctx, `SELECT notes FROM weeks WHERE key = ?`, key).Scan(&rec.Notes)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("week %s: %w", key, ErrNotFound)
		}
		return nil, fmt.Errorf("loading week %s: %w", key, err)
	}

	if err := r.loadTasks(ctx, rec); err != nil {
		return nil, err
	}
	if err := r.loadHabits(ctx, rec); err != nil {
		return nil, err
	}
	if err := r.loadCompletions(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (r *SQLiteWeekRepo) loadTasks(ctx context.Context, rec *domain.WeekRecord) error {
	rows, err := r.db.QueryContext(ctx,
		`SELECT task_id, text, completed, day_index FROM week_tasks
		WHERE week_key = ? ORDER BY position`, rec.Key)
	if err != nil {
		return fmt.Errorf("listing tasks for %s: %w", rec.Key, err)
	}
	defer rows.Close()

	for rows.Next() {
		var t domain.Task
		var completed int
		if err := rows.Scan(&t.ID, &t.Text, &completed, &t.DayIndex); err != nil {
			return fmt.Errorf("scanning task: %w", err)
		}
		t.Completed = intToBool(completed)
		rec.Tasks = append(rec.Tasks, t)
	}
	return rows.Err()
}

func (r *SQLiteWeekRepo) loadHabits(ctx context.Context, rec *domain.WeekRecord) error {
	rows, err := r.db.QueryContext(ctx,
		`SELECT habit_id, name FROM week_habits WHERE week_key = ? ORDER BY position`, rec.Key)
	if err != nil {
		return fmt.Errorf("listing week habits for %s: %w", rec.Key, err)
	}
	defer rows.Close()

	for rows.Next() {
		var h domain.Habit
		if err := rows.Scan(&h.ID, &h.Name); err != nil {
			return fmt.Errorf("scanning week habit: %w", err)
		}
		rec.Habits = append(rec.Habits, h)
	}
	return rows.Err()
}

func (r *SQLiteWeekRepo) loadCompletions(ctx context.Context, rec *domain.WeekRecord) error {
	rows, err := r.db.QueryContext(ctx,
		`SELECT habit_id, day_index FROM week_habit_completions
		WHERE week_key = ? ORDER BY habit_id, day_index`, rec.Key)
	if err != nil {
		return fmt.Errorf("listing week completions for %s: %w", rec.Key, err)
	}
	defer rows.Close()

	for rows.Next() {
		var id string
		var d int
		if err := rows.Scan(&id, &d); err != nil {
			return fmt.Errorf("scanning week completion: %w", err)
		}
		if rec.HabitCompletions == nil {
			rec.HabitCompletions = map[string][]int{}
		}
		rec.HabitCompletions[id] = append(rec.HabitCompletions[id], d)
	}
	return rows.Err()
}

func (r *SQLiteWeekRepo) ListRange(ctx context.Context, fromKey, toKey string) (map[string]domain.WeekRecord, error) {
	keys, err := keysInRange(ctx, r.db, "weeks", fromKey, toKey)
	if err != nil {
		return nil, err
	}
	out := make(map[string]domain.WeekRecord, len(keys))
	for _, k := range keys {
		rec, err := r.Get(ctx, k)
		if err != nil {
			return nil, err
		}
		out[k] = *rec
	}
	return out, nil
}

func (r *SQLiteWeekRepo) Keys(ctx context.Context) ([]string, error) {
	return listKeys(ctx, r.db, "weeks")
}

func (r *SQLiteWeekRepo) Delete(ctx context.Context, key string) error {
	return deleteByKey(ctx, r.db, "weeks", key)
}
