package cli

import (
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"wageflow/internal/handler"
	"wageflow/pkg/telegram"

	"github.com/spf13/cobra"
)

func NewBotCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "bot",
		Short: "Run the Telegram bot",
		Long: `Run the read-only Telegram bot until SIGINT or SIGTERM.

Requires TELEGRAM_BOT_TOKEN.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBot(cmd, rootOpts)
		},
	}
}

func runBot(cmd *cobra.Command, opts *RootOptions) error {
	app, err := bootstrap(opts, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer app.Close()

	if app.cfg.TelegramToken == "" {
		return errors.New("TELEGRAM_BOT_TOKEN is not set")
	}

	client, err := telegram.NewClient(app.cfg.TelegramToken, app.cfg.TelegramDebug, app.logger)
	if err != nil {
		return fmt.Errorf("create telegram client: %w", err)
	}
	app.logger.Infof("Authorized on account %s", client.Bot.Self.UserName)

	botHandler := handler.NewHandler(client, app.workers, app.attendance, app.reports, app.logger)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app.logger.Info("Bot started. Press Ctrl+C to stop.")
	botHandler.HandleUpdates(ctx, client.Updates())

	client.Stop()
	app.logger.Info("Bot stopped gracefully")
	return nil
}
