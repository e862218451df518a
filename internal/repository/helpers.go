package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/rhythm/internal/db"
)

// boolToInt converts a Go bool to an integer (0 or 1) for SQLite storage.
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// intToBool converts a SQLite integer (0 or 1) to a Go bool.
func intToBool(i int) bool {
	return i != 0
}

// nowUTC returns the current UTC time formatted as RFC3339.
func nowUTC() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// listKeys returns every key of a snapshot table in ascending order.
func listKeys(ctx context.Context, conn db.DBTX, table string) ([]string, error) {
	return queryKeys(ctx, conn, table, `SELECT key FROM `+table+` ORDER BY key`)
}

// keysInRange lists keys between from and to inclusive. Keys are fixed-width,
// so lexical order matches chronological order.
func keysInRange(ctx context.Context, conn db.DBTX, table, from, to string) ([]string, error) {
	return queryKeys(ctx, conn, table,
		`SELECT key FROM `+table+` WHERE key >= ? AND key <= ? ORDER BY key`, from, to)
}

func queryKeys(ctx context.Context, conn db.DBTX, table, query string, args ...any) ([]string, error) {
	rows, err := conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", table, err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, fmt.Errorf("scanning %s key: %w", table, err)
		}
		keys = append(keys, k)
	}
	return keys, rows.Err()
}

func deleteByKey(ctx context.Context, conn db.DBTX, table, key string) error {
	res, err := conn.ExecContext(ctx, `DELETE FROM `+table+` WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("deleting %s %s: %w", table, key, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking deleted %s: %w", table, err)
	}
	if n == 0 {
		return fmt.Errorf("%s %s: %w", table, key, ErrNotFound)
	}
	return nil
}
