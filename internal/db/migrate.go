package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate applies every schema statement. Statements are idempotent, so
// Migrate may run on each open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// ALTER TABLE ADD COLUMN has no IF NOT EXISTS form.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS months (
		key        TEXT PRIMARY KEY CHECK(length(key) = 7),
		updated_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS month_habits (
		month_key TEXT NOT NULL REFERENCES months(key) ON DELETE CASCADE,
		habit_id  TEXT NOT NULL,
		name      TEXT NOT NULL,
		position  INTEGER NOT NULL,
		PRIMARY KEY (month_key, habit_id)
	)`,

	`CREATE TABLE IF NOT EXISTS day_entries (
		month_key  TEXT NOT NULL REFERENCES months(key) ON DELETE CASCADE,
		day        INTEGER NOT NULL CHECK(day BETWEEN 1 AND 31),
		mood       INTEGER NOT NULL DEFAULT 0 CHECK(mood BETWEEN 0 AND 10),
		motivation INTEGER NOT NULL DEFAULT 0 CHECK(motivation BETWEEN 0 AND 10),
		PRIMARY KEY (month_key, day)
	)`,

	`CREATE TABLE IF NOT EXISTS day_completions (
		month_key TEXT NOT NULL,
		day       INTEGER NOT NULL,
		habit_id  TEXT NOT NULL,
		PRIMARY KEY (month_key, day, habit_id),
		FOREIGN KEY (month_key, day) REFERENCES day_entries(month_key, day) ON DELETE CASCADE
	)`,

	`CREATE TABLE IF NOT EXISTS weeks (
		key        TEXT PRIMARY KEY CHECK(length(key) = 8),
		updated_at TEXT NOT NULL
	)`,

	`ALTER TABLE weeks ADD COLUMN notes TEXT NOT NULL DEFAULT ''`,

	`CREATE TABLE IF NOT EXISTS week_tasks (
		week_key  TEXT NOT NULL REFERENCES weeks(key) ON DELETE CASCADE,
		task_id   TEXT NOT NULL,
		text      TEXT NOT NULL,
		completed INTEGER NOT NULL DEFAULT 0,
		day_index INTEGER NOT NULL CHECK(day_index BETWEEN 0 AND 6),
		position  INTEGER NOT NULL,
		PRIMARY KEY (week_key, task_id)
	)`,

	`CREATE TABLE IF NOT EXISTS week_habits (
		week_key TEXT NOT NULL REFERENCES weeks(key) ON DELETE CASCADE,
		habit_id TEXT NOT NULL,
		name     TEXT NOT NULL,
		position INTEGER NOT NULL,
		PRIMARY KEY (week_key, habit_id)
	)`,

	`CREATE TABLE IF NOT EXISTS week_habit_completions (
		week_key  TEXT NOT NULL REFERENCES weeks(key) ON DELETE CASCADE,
		habit_id  TEXT NOT NULL,
		day_index INTEGER NOT NULL CHECK(day_index BETWEEN 0 AND 6),
		PRIMARY KEY (week_key, habit_id, day_index)
	)`,

	`CREATE TABLE IF NOT EXISTS imports (
		id          TEXT PRIMARY KEY,
		source      TEXT NOT NULL,
		format      TEXT NOT NULL CHECK(format IN ('json','yaml')),
		months      INTEGER NOT NULL DEFAULT 0,
		weeks       INTEGER NOT NULL DEFAULT 0,
		imported_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_month_habits_month ON month_habits(month_key, position)`,
	`CREATE INDEX IF NOT EXISTS idx_week_tasks_week ON week_tasks(week_key, position)`,
	`CREATE INDEX IF NOT EXISTS idx_imports_imported_at ON imports(imported_at)`,
}
