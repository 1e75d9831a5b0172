package main

import (
	"context"
	"os/signal"
	"syscall"

	"vantage/internal/config"
	"vantage/internal/worker"
	"vantage/pkg/logger"

	"github.com/jackc/pgx/v5"
	"github.com/riverqueue/river"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// setupWorkers starts the river client. Jobs keep running until the returned
// stop function is called, so in-flight work is not cut off by the signal.
func setupWorkers(cfg *config.Config, svc *services) (*river.Client[pgx.Tx], func(ctx context.Context)) {
	ctx := context.Background()

	riverClient, err := worker.Start(ctx, svc.storage.Pool, worker.Services{
		Notification: svc.notification,
		Intelligence: svc.intelligence,
	}, worker.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not start workers", zap.Error(err))
	}
	logger.Info(ctx, "workers started")

	return riverClient, func(ctx context.Context) {
		logger.Info(ctx, "stopping workers...")
		if err := riverClient.Stop(ctx); err != nil {
			logger.Error(ctx, "could not stop workers gracefully", zap.Error(err))
		}
	}
}

func workerCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "worker",
		Short: "Starts background workers only",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			svc, closeServices := getServices(ctx, cfg, strg, false)
			defer closeServices()

			_, stopWorkers := setupWorkers(cfg, svc)

			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWorkers(shutdownCtx)
		},
	}

	return cmd
}
