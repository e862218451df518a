// Package repository persists month and week snapshots in SQLite.
package repository

import (
	"context"
	"errors"

	"github.com/alexanderramin/rhythm/internal/domain"
)

// ErrNotFound is wrapped by every lookup that matches no row.
var ErrNotFound = errors.New("not found")

// MonthRepo stores month-keyed habit records. Save replaces the whole month;
// run it inside a unit of work when several months must land together.
type MonthRepo interface {
	Save(ctx context.Context, rec domain.MonthRecord) error
	Get(ctx context.Context, key string) (*domain.MonthRecord, error)
	ListRange(ctx context.Context, fromKey, toKey string) (map[string]domain.MonthRecord, error)
	Keys(ctx context.Context) ([]string, error)
	Delete(ctx context.Context, key string) error
}

// WeekRepo stores week-keyed task records with the same replace semantics.
type WeekRepo interface {
	Save(ctx context.Context, rec domain.WeekRecord) error
	Get(ctx context.Context, key string) (*domain.WeekRecord, error)
	ListRange(ctx context.Context, fromKey, toKey string) (map[string]domain.WeekRecord, error)
	Keys(ctx context.Context) ([]string, error)
	Delete(ctx context.Context, key string) error
}

type ImportRepo interface {
	Record(ctx context.Context, b *domain.ImportBatch) error
	ListRecent(ctx context.Context, limit int) ([]domain.ImportBatch, error)
}
