package service

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/alexanderramin/rhythm/internal/app"
	"github.com/alexanderramin/rhythm/internal/db"
	"github.com/alexanderramin/rhythm/internal/domain"
	"github.com/alexanderramin/rhythm/internal/importer"
	"github.com/alexanderramin/rhythm/internal/repository"
)

// ErrValidation is wrapped by every import rejected during snapshot validation.
var ErrValidation = errors.New("import validation failed")

type importService struct {
	imports  repository.ImportRepo
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewImportService(imports repository.ImportRepo, uow db.UnitOfWork, observers ...UseCaseObserver) app.ImportSnapshotUseCase {
	return &importService{
		imports:  imports,
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *importService) ImportFile(ctx context.Context, path string) (*app.ImportResult, error) {
	snap, format, err := importer.LoadSnapshot(path)
	if err != nil {
		return nil, fmt.Errorf("loading snapshot file: %w", err)
	}
	return s.ImportSnapshot(ctx, snap, filepath.Base(path), format)
}

// ImportSnapshot validates snap and replaces every month and week it
// contains in one transaction, recording the batch alongside.
func (s *importService) ImportSnapshot(ctx context.Context, snap *importer.Snapshot, source, format string) (result *app.ImportResult, err error) {
	fields := map[string]any{"source": source, "format": format}
	done := track(ctx, s.observer, "import-snapshot", fields)
	defer func() { done(err) }()

	if errs := importer.ValidateSnapshot(snap); len(errs) > 0 {
		fields["validation_errors"] = len(errs)
		return nil, formatValidationErrors(errs)
	}

	clean := importer.Normalize(snap)
	batch := importer.NewBatch(source, format, clean, time.Now())

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txMonths := repository.NewSQLiteMonthRepo(tx)
		txWeeks := repository.NewSQLiteWeekRepo(tx)
		txImports := repository.NewSQLiteImportRepo(tx)

		for _, m := range clean.Months {
			if err := txMonths.Save(ctx, m); err != nil {
				return fmt.Errorf("saving month %s: %w", m.Key, err)
			}
		}
		for _, w := range clean.Weeks {
			if err := txWeeks.Save(ctx, w); err != nil {
				return fmt.Errorf("saving week %s: %w", w.Key, err)
			}
		}
		if err := txImports.Record(ctx, batch); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	fields["batch"] = batch.ID
	fields["months"] = batch.Months
	fields["weeks"] = batch.Weeks

	result = &app.ImportResult{Batch: *batch}
	for _, m := range clean.Months {
		result.MonthKeys = append(result.MonthKeys, m.Key)
	}
	for _, w := range clean.Weeks {
		result.WeekKeys = append(result.WeekKeys, w.Key)
	}
	return result, nil
}

func (s *importService) RecentImports(ctx context.Context, limit int) ([]domain.ImportBatch, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.imports.ListRecent(ctx, limit)
}

// formatValidationErrors joins every validation error under ErrValidation,
// one bullet per line. errors.Is still matches each individual error.
func formatValidationErrors(errs []error) error {
	bullets := make([]error, len(errs))
	for i, e := range errs {
		bullets[i] = fmt.Errorf("  - %w", e)
	}
	return fmt.Errorf("%w (%d errors):\n%w", ErrValidation, len(errs), errors.Join(bullets...))
}
