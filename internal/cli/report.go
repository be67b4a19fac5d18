package cli

import (
	"fmt"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

type ReportOptions struct {
	*RootOptions
	Year  int
	Month int
}

func NewReportCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ReportOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print the monthly report as JSON",
		Long: `Print the monthly wage report without starting the HTTP server.

Defaults to the current UTC month.

Example:
  wageflow report
  wageflow report --year 2024 --month 12`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd, opts)
		},
	}

	cmd.Flags().IntVar(&opts.Year, "year", 0, "report year (default current)")
	cmd.Flags().IntVar(&opts.Month, "month", 0, "report month 1-12 (default current)")

	return cmd
}

func runReport(cmd *cobra.Command, opts *ReportOptions) error {
	if opts.Month < 0 || opts.Month > 12 {
		return fmt.Errorf("invalid month %d: must be between 1 and 12", opts.Month)
	}

	app, err := bootstrap(opts.RootOptions, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer app.Close()

	year, month := app.reports.CurrentMonth()
	if opts.Year != 0 {
		year = opts.Year
	}
	if opts.Month != 0 {
		month = opts.Month
	}

	rows, err := app.reports.Monthly(cmd.Context(), year, month)
	if err != nil {
		return fmt.Errorf("build report: %w", err)
	}

	out, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}
