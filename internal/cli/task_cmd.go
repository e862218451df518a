package cli

import (
	"strings"

	"github.com/alexanderramin/rhythm/internal/app"
	"github.com/alexanderramin/rhythm/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newInterpretCmd(a *App, opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "interpret <text>",
		Short: "Guess category, duration and priority for a task",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			interp, err := a.Insight.Interpret(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), opts, interp, formatter.FormatInterpretation(interp))
		},
	}
}

func newParseCmd(a *App, opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "parse <text>",
		Short: "Extract a date and time from task text",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			now := a.reference(opts)
			sched, err := a.Insight.ParseSchedule(cmd.Context(), strings.Join(args, " "), now)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), opts, sched, formatter.FormatSchedule(sched, now))
		},
	}
}

func newPredictCmd(a *App, opts *options) *cobra.Command {
	var peakHour int

	cmd := &cobra.Command{
		Use:   "predict <text>",
		Short: "Score how likely a task gets done now, later or tomorrow",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := app.InsightRequest{
				Window:   a.window(opts),
				Text:     strings.Join(args, " "),
				PeakHour: peakHour,
			}
			resp, err := a.Insight.Predict(cmd.Context(), req)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), opts, resp, formatter.FormatInsight(resp, req.Now))
		},
	}

	cmd.Flags().IntVar(&peakHour, "peak-hour", a.PeakHour, "Most productive hour (0 derives it from history)")
	return cmd
}
