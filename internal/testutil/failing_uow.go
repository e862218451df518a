package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/alexanderramin/rhythm/internal/db"
)

// FailingUoW is a test UoW that injects Err into the first ExecContext whose
// SQL contains Match, after letting Skip earlier matches through. Reads pass
// through untouched. Use it to prove multi-write operations roll back.
type FailingUoW struct {
	DB    *sql.DB
	Match string
	Skip  int
	Err   error
}

func (u *FailingUoW) WithinTx(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	tx, err := u.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	wrapped := &failingExec{DBTX: tx, match: u.Match, skip: u.Skip, err: u.Err}
	if fnErr := fn(ctx, wrapped); fnErr != nil {
		_ = tx.Rollback()
		return fnErr
	}
	return tx.Commit()
}

type failingExec struct {
	db.DBTX
	match string
	skip  int
	seen  int
	err   error
}

func (f *failingExec) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	if strings.Contains(query, f.match) {
		f.seen++
		if f.seen > f.skip {
			return nil, f.err
		}
	}
	return f.DBTX.ExecContext(ctx, query, args...)
}
