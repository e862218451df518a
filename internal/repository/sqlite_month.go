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

// SQLiteMonthRepo implements MonthRepo using a SQLite database.
type SQLiteMonthRepo struct {
	db db.DBTX
}

// NewSQLiteMonthRepo creates a new SQLiteMonthRepo.
func NewSQLiteMonthRepo(conn db.DBTX) *SQLiteMonthRepo {
	return &SQLiteMonthRepo{db: conn}
}

func (r *SQLiteMonthRepo) Save(ctx context.Context, rec domain.MonthRecord) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO months (key, updated_at) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET updated_at = excluded.updated_at`,
		rec.Key, nowUTC())
	if err != nil {
		return fmt.Errorf("upserting month %s: %w", rec.Key, err)
	}

	for _, table := range []string{"day_completions", "month_habits", "day_entries"} {
		if _, err := r.db.ExecContext(ctx, `DELETE FROM `+table+` WHERE month_key = ?`, rec.Key); err != nil {
			return fmt.Errorf("clearing %s for %s: %w", table, rec.Key, err)
		}
	}

	for i, h := range rec.Habits {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO month_habits (month_key, habit_id, name, position) VALUES (?, ?, ?, ?)`,
			rec.Key, h.ID, h.Name, i)
		if err != nil {
			return fmt.Errorf("inserting habit %q for %s: %w", h.ID, rec.Key, err)
		}
	}

	days := make([]int, 0, len(rec.Days))
	for d := range rec.Days {
		days = append(days, d)
	}
	sort.Ints(days)

	for _, d := range days {
		entry := rec.Days[d]
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO day_entries (month_key, day, mood, motivation) VALUES (?, ?, ?, ?)`,
			rec.Key, d, entry.Mood, entry.Motivation)
		if err != nil {
			return fmt.Errorf("inserting day %d for %s: %w", d, rec.Key, err)
		}
		for _, id := range entry.CompletedHabitIDs {
			_, err := r.db.ExecContext(ctx,
				`INSERT OR IGNORE INTO day_completions (month_key, day, habit_id) VALUES (?, ?, ?)`,
				rec.Key, d, id)
			if err != nil {
				return fmt.Errorf("inserting completion %q on %s-%02d: %w", id, rec.Key, d, err)
			}
		}
	}
	return nil
}

func (r *SQLiteMonthRepo) Get(ctx context.Context, key string) (*domain.MonthRecord, error) {
	var found string
	err := r.db.QueryRowContext(ctx, `SELECT key FROM months WHERE key = ?`, key).Scan(&found)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("month %s: %w", key, ErrNotFound)
		}
		return nil, fmt.Errorf("loading month %s: %w", key, err)
	}

	rec := &domain.MonthRecord{Key: key, Habits: []domain.Habit{}, Days: map[int]domain.DayEntry{}}
	if err := r.loadHabits(ctx, rec); err != nil {
		return nil, err
	}
	if err := r.loadDays(ctx, rec); err != nil {
		return nil, err
	}
	if err := r.loadCompletions(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (r *SQLiteMonthRepo) loadHabits(ctx context.Context, rec *domain.MonthRecord) error {
	rows, err := r.db.QueryContext(ctx,
		`SELECT habit_id, name FROM month_habits WHERE month_key = ? ORDER BY position`, rec.Key)
	if err != nil {
		return fmt.Errorf("listing habits for %s: %w", rec.Key, err)
	}
	defer rows.Close()

	for rows.Next() {
		var h domain.Habit
		if err := rows.Scan(&h.ID, &h.Name); err != nil {
			return fmt.Errorf("scanning habit: %w", err)
		}
		rec.Habits = append(rec.Habits, h)
	}
	return rows.Err()
}

func (r *SQLiteMonthRepo) loadDays(ctx context.Context, rec *domain.MonthRecord) error {
	rows, err := r.db.QueryContext(ctx,
		`SELECT day, mood, motivation FROM day_entries WHERE month_key = ? ORDER BY day`, rec.Key)
	if err != nil {
		return fmt.Errorf("listing days for %s: %w", rec.Key, err)
	}
	defer rows.Close()

	for rows.Next() {
		var d int
		var e domain.DayEntry
		if err := rows.Scan(&d, &e.Mood, &e.Motivation); err != nil {
			return fmt.Errorf("scanning day entry: %w", err)
		}
		rec.Days[d] = e
	}
	return rows.Err()
}

func (r *SQLiteMonthRepo) loadCompletions(ctx context.Context, rec *domain.MonthRecord) error {
	rows, err := r.db.QueryContext(ctx,
		`SELECT day, habit_id FROM day_completions WHERE month_key = ? ORDER BY day, rowid`, rec.Key)
	if err != nil {
		return fmt.Errorf("listing completions for %s: %w", rec.Key, err)
	}
	defer rows.Close()

	for rows.Next() {
		var d int
		var id string
		if err := rows.Scan(&d, &id); err != nil {
			return fmt.Errorf("scanning completion: %w", err)
		}
		e := rec.Days[d]
		e.CompletedHabitIDs = append(e.CompletedHabitIDs, id)
		rec.Days[d] = e
	}
	return rows.Err()
}

func (r *SQLiteMonthRepo) ListRange(ctx context.Context, fromKey, toKey string) (map[string]domain.MonthRecord, error) {
	keys, err := keysInRange(ctx, r.db, "months", fromKey, toKey)
	if err != nil {
		return nil, err
	}
	out := make(map[string]domain.MonthRecord, len(keys))
	for _, k := range keys {
		rec, err := r.Get(ctx, k)
		if err != nil {
			return nil, err
		}
		out[k] = *rec
	}
	return out, nil
}

func (r *SQLiteMonthRepo) Keys(ctx context.Context) ([]string, error) {
	return listKeys(ctx, r.db, "months")
}

func (r *SQLiteMonthRepo) Delete(ctx context.Context, key string) error {
	return deleteByKey(ctx, r.db, "months", key)
}
