package cli

import (
	"github.com/alexanderramin/rhythm/internal/app"
	"github.com/alexanderramin/rhythm/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newProfileCmd(a *App, opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "profile",
		Short: "Analyze habits, mood, focus, procrastination and burnout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := a.Profile.BuildProfile(cmd.Context(), app.ProfileRequest{Window: a.window(opts)})
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), opts, resp, formatter.FormatProfile(resp))
		},
	}
}

func newRoutinesCmd(a *App, opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "routines",
		Short: "Suggest recurring routines with their next run",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := a.Profile.BuildProfile(cmd.Context(), app.ProfileRequest{Window: a.window(opts)})
			if err != nil {
				return err
			}
			routines := resp.Profile.Routines
			return render(cmd.OutOrStdout(), opts, routines, formatter.FormatRoutines(routines, resp.Profile.GeneratedAt))
		},
	}
}
