package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/alexanderramin/rhythm/internal/app"
	"github.com/spf13/cobra"
)

// App holds the use cases and defaults the CLI commands run against.
type App struct {
	Profile app.ProfileUseCase
	Agenda  app.AgendaUseCase
	Insight app.TaskInsightUseCase
	Import  app.ImportSnapshotUseCase

	Location   *time.Location
	MonthsBack int
	WeeksBack  int
	PeakHour   int

	// Clock returns the current time. Defaults to time.Now.
	Clock func() time.Time
}

// options are the persistent flags shared by every subcommand.
type options struct {
	now        timeFlag
	json       bool
	monthsBack int
	weeksBack  int
}

// NewRootCmd creates the top-level "rhythm" command and registers all
// subcommands against the provided App.
func NewRootCmd(a *App) *cobra.Command {
	opts := &options{now: timeFlag{loc: a.location()}}

	root := &cobra.Command{
		Use:           "rhythm",
		Short:         "Habit, mood and task analytics with adaptive daily planning",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.Var(&opts.now, "now", "Reference time (RFC3339, 2006-01-02T15:04 or 2006-01-02)")
	pf.BoolVar(&opts.json, "json", false, "Print JSON instead of formatted text")
	pf.IntVar(&opts.monthsBack, "months", a.MonthsBack, "Months of history to analyze")
	pf.IntVar(&opts.weeksBack, "weeks", a.WeeksBack, "Weeks of tasks to analyze")

	root.AddCommand(
		newImportCmd(a, opts),
		newImportsCmd(a, opts),
		newProfileCmd(a, opts),
		newRoutinesCmd(a, opts),
		newAgendaCmd(a, opts),
		newInterpretCmd(a, opts),
		newParseCmd(a, opts),
		newPredictCmd(a, opts),
	)
	return root
}

func (a *App) location() *time.Location {
	if a.Location == nil {
		return time.Local
	}
	return a.Location
}

// reference resolves the instant every analysis is anchored at.
func (a *App) reference(opts *options) time.Time {
	if opts.now.set {
		return opts.now.t
	}
	clock := a.Clock
	if clock == nil {
		clock = time.Now
	}
	return clock().In(a.location())
}

func (a *App) window(opts *options) app.Window {
	w := app.NewWindow(a.reference(opts))
	if opts.monthsBack > 0 {
		w.MonthsBack = opts.monthsBack
	}
	if opts.weeksBack > 0 {
		w.WeeksBack = opts.weeksBack
	}
	return w
}

// render writes v as indented JSON when --json is set, otherwise text.
func render(w io.Writer, opts *options, v any, text string) error {
	if !opts.json {
		_, err := fmt.Fprint(w, text)
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
