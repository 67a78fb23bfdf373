package cli

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/ndewijer/TradeLog-Backend/internal/api"
	"github.com/ndewijer/TradeLog-Backend/internal/database"
	"github.com/ndewijer/TradeLog-Backend/internal/monitoring"
	"github.com/ndewijer/TradeLog-Backend/internal/service"
	"github.com/ndewijer/TradeLog-Backend/internal/version"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		Long:  `Apply pending migrations and serve the REST API until SIGINT or SIGTERM.`,
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := bootstrap()
	if err != nil {
		return err
	}
	defer a.close()

	applied, err := database.Migrate(ctx, a.db)
	if err != nil {
		a.logger.Error().Err(err).Msg("failed to apply migrations")
		return err
	}
	if len(applied) > 0 {
		a.logger.Info().Ints64("versions", applied).Msg("applied migrations")
	}

	metrics := monitoring.New()
	s := a.stack(service.WithRecorder(metrics))

	router := api.NewRouter(api.Services{
		System: service.NewSystemService(a.db),
		Trade:  s.trades,
		Group:  s.groups,
	}, metrics, a.logger, a.cfg)

	server := &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.logger.Info().
			Str("addr", a.cfg.Server.Addr).
			Str("version", version.Version).
			Msg("starting server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		a.logger.Info().Msg("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
		defer cancel()

		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		a.logger.Error().Err(err).Msg("server stopped with error")
		return err
	}

	a.logger.Info().Msg("server exited")
	return nil
}
