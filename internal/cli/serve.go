package cli

import (
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"wageflow/internal/api"

	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

func NewServeCommand(rootOpts *RootOptions) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long: `Run the WageFlow HTTP API until SIGINT or SIGTERM.

Example:
  wageflow serve
  wageflow serve --addr :9000`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, rootOpts, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides HTTP_ADDR)")

	return cmd
}

func runServe(cmd *cobra.Command, opts *RootOptions, addr string) error {
	app, err := bootstrap(opts, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer app.Close()

	if addr == "" {
		addr = app.cfg.HTTPAddr
	}

	handler := api.NewHandler(app.workers, app.attendance, app.reports, app.logger)
	server := api.NewServer(handler, app.cfg.CORSOrigins)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		app.logger.WithField("addr", addr).Info("HTTP server started")
		errCh <- server.Listen(addr)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	app.logger.Info("Shutting down HTTP server...")
	if err := server.ShutdownWithTimeout(shutdownTimeout); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	app.logger.Info("HTTP server stopped gracefully")
	return nil
}
