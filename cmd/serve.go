package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"vantage/internal/api"
	"vantage/internal/api/handler/v1handler"
	"vantage/internal/config"
	"vantage/pkg/logger"

	"github.com/jackc/pgx/v5"
	"github.com/riverqueue/river"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func setupServer(ctx context.Context,
	cfg *config.Config,
	svc *services,
	riverClient *river.Client[pgx.Tx]) func(ctx context.Context) {
	server, err := api.NewServer(ctx, api.Deps{
		Deps: v1handler.Deps{
			Auth:         svc.auth,
			Users:        svc.users,
			Lookups:      svc.lookups,
			Assessments:  svc.assessments,
			Assessor:     svc.assessor,
			Intelligence: svc.intelligence,
			Database:     svc.storage,
			Cache:        svc.cache,
		},
		RiverClient: riverClient,
	}, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...", zap.String("addr", cfg.HTTP.Addr))
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts API server and background workers",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			svc, closeServices := getServices(ctx, cfg, strg, true)
			defer closeServices()

			riverClient, stopWorkers := setupWorkers(cfg, svc)
			stopWebserver := setupServer(ctx, cfg, svc, riverClient)

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)
			stopWorkers(shutdownCtx)
		},
	}

	return cmd
}
