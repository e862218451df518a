package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/rhythm/internal/db"
	"github.com/alexanderramin/rhythm/internal/domain"
)

// SQLiteImportRepo implements ImportRepo using a SQLite database.
type SQLiteImportRepo struct {
	db db.DBTX
}

func NewSQLiteImportRepo(conn db.DBTX) *SQLiteImportRepo {
	return &SQLiteImportRepo{db: conn}
}

func (r *SQLiteImportRepo) Record(ctx context.Context, b *domain.ImportBatch) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO imports (id, source, format, months, weeks, imported_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		b.ID, b.Source, b.Format, b.Months, b.Weeks, b.ImportedAt.UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("recording import %s: %w", b.ID, err)
	}
	return nil
}

// ListRecent returns the newest batches first.
func (r *SQLiteImportRepo) ListRecent(ctx context.Context, limit int) ([]domain.ImportBatch, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, source, format, months, weeks, imported_at FROM imports
		ORDER BY imported_at DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("listing imports: %w", err)
	}
	defer rows.Close()

	var out []domain.ImportBatch
	for rows.Next() {
		var b domain.ImportBatch
		var at string
		if err := rows.Scan(&b.ID, &b.Source, &b.Format, &b.Months, &b.Weeks, &at); err != nil {
			return nil, fmt.Errorf("scanning import: %w", err)
		}
		b.ImportedAt, err = time.Parse(time.RFC3339, at)
		if err != nil {
			return nil, fmt.Errorf("parsing imported_at %q: %w", at, err)
		}
		out = append(out, b)
	}
	return out, rows.Err()
}
