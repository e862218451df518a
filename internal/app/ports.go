package app

import (
	"context"
	"time"

	"github.com/alexanderramin/rhythm/internal/domain"
	"github.com/alexanderramin/rhythm/internal/importer"
)

type ProfileUseCase interface {
	BuildProfile(ctx context.Context, req ProfileRequest) (*ProfileResponse, error)
}

type AgendaUseCase interface {
	DailyAgenda(ctx context.Context, req AgendaRequest) (*AgendaResponse, error)
}

// TaskInsightUseCase covers the free-text task tools. Interpret and
// ParseSchedule read no history; Predict scores against stored history.
type TaskInsightUseCase interface {
	Interpret(ctx context.Context, text string) (domain.TaskInterpretation, error)
	ParseSchedule(ctx context.Context, text string, now time.Time) (domain.ParsedSchedule, error)
	Predict(ctx context.Context, req InsightRequest) (*InsightResponse, error)
}

type ImportSnapshotUseCase interface {
	ImportFile(ctx context.Context, path string) (*ImportResult, error)
	ImportSnapshot(ctx context.Context, snap *importer.Snapshot, source, format string) (*ImportResult, error)
	RecentImports(ctx context.Context, limit int) ([]domain.ImportBatch, error)
}
