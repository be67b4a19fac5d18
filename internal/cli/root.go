package cli

import (
	"wageflow/internal/config"

	"github.com/spf13/cobra"
)

// RootOptions общие флаги для всех команд
type RootOptions struct {
	Verbose bool

	// loadConfig подменяется в тестах
	loadConfig func() *config.Config
}

// NewRootCommand создает корневую команду wageflow
func NewRootCommand() *cobra.Command {
	return newRootCommand(config.GetConfig)
}

func newRootCommand(loadConfig func() *config.Config) *cobra.Command {
	opts := &RootOptions{loadConfig: loadConfig}

	cmd := &cobra.Command{
		Use:   "wageflow",
		Short: "WageFlow - worker attendance and wages",
		Long:  "Worker registry, daily attendance with derived hours and wages, monthly reports and a dashboard.",
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "debug logging")

	cmd.AddCommand(NewServeCommand(opts))
	cmd.AddCommand(NewBotCommand(opts))
	cmd.AddCommand(NewMigrateCommand(opts))
	cmd.AddCommand(NewReportCommand(opts))

	return cmd
}
