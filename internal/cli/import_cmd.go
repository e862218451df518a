package cli

import (
	"github.com/alexanderramin/rhythm/internal/app"
	"github.com/alexanderramin/rhythm/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newImportCmd(a *App, opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>...",
		Short: "Import month and week history from JSON or YAML snapshots",
		Long: `Import month and week history from JSON or YAML snapshots.

Every month and week in a snapshot replaces the stored record with the
same key. A snapshot is imported in one transaction: if any record fails
validation or cannot be written, nothing from that file is stored.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results := make([]*app.ImportResult, 0, len(args))
			text := ""
			for _, path := range args {
				res, err := a.Import.ImportFile(cmd.Context(), path)
				if err != nil {
					return err
				}
				results = append(results, res)
				text += formatter.FormatImport(res)
			}
			return render(cmd.OutOrStdout(), opts, results, text)
		},
	}
}

func newImportsCmd(a *App, opts *options) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "imports",
		Short: "List recent snapshot imports",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			batches, err := a.Import.RecentImports(cmd.Context(), limit)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), opts, batches, formatter.FormatImports(batches, a.reference(opts)))
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 10, "Maximum number of imports to list")
	return cmd
}
