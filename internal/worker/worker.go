// Package worker runs the River workers that deliver notifications,
// publish lifecycle events, classify validated assessments and generate
// their insights.
package worker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"vantage/internal/config"
	"vantage/internal/intelligence"
	"vantage/internal/notification"
	"vantage/pkg/logger"
	"vantage/pkg/metrics"
	"vantage/pkg/serrors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
	"go.uber.org/zap"
)

const defaultMaxWorkers = 20

// Options configures the River client.
type Options struct {
	MaxWorkers int
	// RetryBase is the first insight retry delay. It doubles on every attempt.
	RetryBase time.Duration
}

// NewOptions builds Options from the application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		MaxWorkers: cfg.Worker.MaxWorkers,
		RetryBase:  cfg.Worker.RetryBase,
	}
}

// Services are the domain services the workers drive.
type Services struct {
	Notification notification.Service
	Intelligence intelligence.Service
}

// Workers registers every worker of the application.
func Workers(services Services, options Options) *river.Workers {
	workers := river.NewWorkers()
	river.AddWorker(workers, NewReworkWorker(services.Notification))
	river.AddWorker(workers, NewValidatedWorker(services.Notification))
	river.AddWorker(workers, NewEventWorker(services.Notification))
	river.AddWorker(workers, NewClassifyWorker(services.Intelligence, services.Notification))
	river.AddWorker(workers, NewInsightsWorker(services.Intelligence, services.Notification, options.RetryBase))

	return workers
}

// Start creates and starts a River client processing the default queue.
func Start(ctx context.Context,
	dbPool *pgxpool.Pool,
	services Services,
	options Options) (*river.Client[pgx.Tx], error) {
	maxWorkers := options.MaxWorkers
	if maxWorkers <= 0 {
		maxWorkers = defaultMaxWorkers
	}

	riverClient, err := river.NewClient(riverpgxv5.New(dbPool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: maxWorkers},
		},
		Workers: Workers(services, options),
		Logger:  logger.Slog(logger.Named(ctx, "river")),
	})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	if err := riverClient.Start(ctx); err != nil {
		return nil, fmt.Errorf("could not start river queue client: %w", err)
	}

	return riverClient, nil
}

// jobContext attaches the job identity to the logger in ctx.
func jobContext(ctx context.Context, id int64, kind string) context.Context {
	return logger.WithFields(ctx, zap.Int64("jobID", id), zap.String("kind", kind))
}

// finish records the job duration and maps semantic errors to River actions.
// Missing or invalid entities cannot succeed on retry and cancel the job.
func finish(ctx context.Context, kind string, start time.Time, err error) error {
	outcome := "success"
	defer func() {
		metrics.JobDuration.WithLabelValues(kind, outcome).Observe(time.Since(start).Seconds())
	}()

	if err == nil {
		return nil
	}

	var snooze *river.JobSnoozeError
	if errors.As(err, &snooze) {
		outcome = "snoozed"

		return err
	}

	if serrors.IsAny(err, serrors.ErrNotFound, serrors.ErrBadRequest, serrors.ErrUnavailable) {
		outcome = "cancelled"
		logger.Warn(ctx, "job cancelled", zap.Error(err))

		return river.JobCancel(err) //nolint: wrapcheck
	}

	outcome = "failed"
	logger.Error(ctx, "job failed", zap.Error(err))

	return err
}
