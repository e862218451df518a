package cli

import (
	"github.com/alexanderramin/rhythm/internal/app"
	"github.com/alexanderramin/rhythm/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newAgendaCmd(a *App, opts *options) *cobra.Command {
	var peakHour int

	cmd := &cobra.Command{
		Use:   "agenda",
		Short: "Show today's habits and tasks with predictions and reminders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req := app.AgendaRequest{Window: a.window(opts), PeakHour: peakHour}
			resp, err := a.Agenda.DailyAgenda(cmd.Context(), req)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), opts, resp, formatter.FormatAgenda(resp, req.Now))
		},
	}

	cmd.Flags().IntVar(&peakHour, "peak-hour", a.PeakHour, "Most productive hour (0 derives it from history)")
	return cmd
}
