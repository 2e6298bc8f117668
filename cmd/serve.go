package cmd

import (
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/conneroisu/vlistdata/internal/server"
	"github.com/conneroisu/vlistdata/internal/version"
)

func newServeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "serve",
		Aliases: []string{"s"},
		Short:   "Start the HTTP API",
		Long: `Start the HTTP API serving synthetic users.

Endpoints:
  GET /users?offset=&limit=&total=&delay=   a page of users
  GET /users/{id}?total=&delay=             one user
  GET /info                                 parameters and their bounds
  GET /health                               liveness

The server stops gracefully on SIGINT or SIGTERM.

Examples:
  vlistdata serve                          # localhost:8080
  vlistdata serve --port 3000 --host 0.0.0.0
  vlistdata serve --env production --allowed-origins https://app.example.com`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runServe(cmd)
		},
	}

	cmd.Flags().IntP("port", "p", 8080, "Port to serve on (0 picks a free port)")
	cmd.Flags().String("host", "localhost", "Host to bind to")
	cmd.Flags().String("env", "development", "Environment (development, production, test)")
	cmd.Flags().StringSlice("allowed-origins", nil, "Origins allowed by CORS (default any)")
	cmd.Flags().Duration("shutdown-timeout", 10*time.Second, "Time allowed for in-flight requests on shutdown")

	AddFlagValidation(cmd.Flags(), "port", ValidatePort)
	AddFlagValidation(cmd.Flags(), "env", ValidateChoice("development", "production", "test"))

	return cmd
}

func (a *app) runServe(cmd *cobra.Command) error {
	srv, err := server.New(a.cfg, a.logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.logger.Info(ctx, "Starting vlistdata",
		"version", version.GetShortVersion(),
		"host", a.cfg.Server.Host,
		"port", a.cfg.Server.Port,
		"default_total", a.cfg.Data.DefaultTotal)

	if err := srv.Run(ctx); err != nil {
		a.logger.Error(ctx, err, "Server stopped with error")
		return err
	}

	a.logger.Info(ctx, "Server stopped")
	return nil
}
