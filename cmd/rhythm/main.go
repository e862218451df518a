package main

import (
	"context"
	"fmt"
	"os"

	"github.com/alexanderramin/rhythm/internal/cli"
	"github.com/alexanderramin/rhythm/internal/config"
	"github.com/alexanderramin/rhythm/internal/db"
	"github.com/alexanderramin/rhythm/internal/repository"
	"github.com/alexanderramin/rhythm/internal/service"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Plain output when piped.
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	var observers []service.UseCaseObserver
	if cfg.LogUseCases {
		observers = append(observers, service.NewLogUseCaseObserver(os.Stderr))
	}

	monthRepo := repository.NewSQLiteMonthRepo(database)
	weekRepo := repository.NewSQLiteWeekRepo(database)
	importRepo := repository.NewSQLiteImportRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	app := &cli.App{
		Profile:    service.NewProfileService(monthRepo, weekRepo, observers...),
		Agenda:     service.NewAgendaService(monthRepo, weekRepo, observers...),
		Insight:    service.NewInsightService(monthRepo, weekRepo, observers...),
		Import:     service.NewImportService(importRepo, uow, observers...),
		Location:   cfg.Location,
		MonthsBack: cfg.MonthsBack,
		WeeksBack:  cfg.WeeksBack,
		PeakHour:   cfg.PeakHour,
	}

	return cli.NewRootCmd(app).ExecuteContext(context.Background())
}
