package worker

import (
	"context"
	"errors"
	"sync"
	"time"

	"vantage/internal/intelligence"
	"vantage/internal/notification"
	"vantage/pkg/events"
	"vantage/pkg/logger"
	"vantage/pkg/serrors"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

const defaultRetryBase = time.Minute

// ClassifyWorker applies the 3+1 rule to a validated assessment and queues
// its insight generation.
type ClassifyWorker struct {
	river.WorkerDefaults[intelligence.ClassifyJobArgs]

	intelligence intelligence.Service
	notification notification.Service
}

// NewClassifyWorker creates a ClassifyWorker.
func NewClassifyWorker(intel intelligence.Service, notify notification.Service) *ClassifyWorker {
	return &ClassifyWorker{intelligence: intel, notification: notify}
}

func (w *ClassifyWorker) Work(ctx context.Context, job *river.Job[intelligence.ClassifyJobArgs]) error {
	start := time.Now()
	ctx = jobContext(ctx, job.ID, job.Kind)
	ctx = logger.WithFields(ctx, zap.Int64("assessment_id", int64(job.Args.AssessmentID)))

	result, err := w.intelligence.Classify(ctx, job.Args.AssessmentID)
	if err != nil {
		return finish(ctx, job.Kind, start, err)
	}

	if _, err = w.intelligence.EnqueueInsights(ctx, job.Args.AssessmentID); err != nil {
		return finish(ctx, job.Kind, start, err)
	}

	if err := w.notification.Publish(ctx, events.Event{
		Type:         events.TypeClassified,
		AssessmentID: job.Args.AssessmentID,
		OccurredAt:   time.Now().UTC(),
		Payload:      result,
	}); err != nil {
		logger.Warn(ctx, "could not publish classification event", zap.Error(err))
	}

	return finish(ctx, job.Kind, start, nil)
}

// InsightsWorker generates AI insights for classified assessments.
//
// When the provider reports throttling the worker pauses: the job is snoozed
// and every job started before the pause ends is snoozed as well without
// calling the provider. Other failures are retried with exponential backoff
// starting at retryBase.
type InsightsWorker struct {
	river.WorkerDefaults[intelligence.InsightsJobArgs]

	intelligence intelligence.Service
	notification notification.Service
	retryBase    time.Duration

	// mu protects pausedUntil.
	mu          sync.Mutex
	pausedUntil time.Time
}

// NewInsightsWorker creates an InsightsWorker.
func NewInsightsWorker(intel intelligence.Service,
	notify notification.Service,
	retryBase time.Duration) *InsightsWorker {
	if retryBase <= 0 {
		retryBase = defaultRetryBase
	}

	return &InsightsWorker{intelligence: intel, notification: notify, retryBase: retryBase}
}

// RetryDelay is the backoff after the given failed attempt: base*2^(attempt-1).
func RetryDelay(base time.Duration, attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}

	return base * time.Duration(1<<(attempt-1))
}

// NextRetry implements river.Worker.
func (w *InsightsWorker) NextRetry(job *river.Job[intelligence.InsightsJobArgs]) time.Time {
	return time.Now().Add(RetryDelay(w.retryBase, job.Attempt))
}

// pause returns how long jobs must wait before calling the provider again.
func (w *InsightsWorker) pause() time.Duration {
	w.mu.Lock()
	defer w.mu.Unlock()

	return time.Until(w.pausedUntil)
}

func (w *InsightsWorker) throttled(d time.Duration) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if until := time.Now().Add(d); until.After(w.pausedUntil) {
		w.pausedUntil = until
	}
}

func (w *InsightsWorker) Work(ctx context.Context, job *river.Job[intelligence.InsightsJobArgs]) error {
	start := time.Now()
	ctx = jobContext(ctx, job.ID, job.Kind)
	ctx = logger.WithFields(ctx,
		zap.Int64("assessment_id", int64(job.Args.AssessmentID)),
		zap.Int("attempt", job.Attempt))

	if d := w.pause(); d > 0 {
		logger.Debug(ctx, "insight provider paused", zap.Duration("for", d))

		return finish(ctx, job.Kind, start, river.JobSnooze(d))
	}

	result, err := w.intelligence.Insights(ctx, job.Args.AssessmentID)
	if err != nil {
		if errors.Is(err, serrors.ErrRateLimited) {
			d := RetryDelay(w.retryBase, job.Attempt)
			w.throttled(d)
			logger.Warn(ctx, "insight provider rate limited", zap.Duration("snooze", d), zap.Error(err))

			return finish(ctx, job.Kind, start, river.JobSnooze(d))
		}

		return finish(ctx, job.Kind, start, err)
	}

	if err := w.notification.Publish(ctx, events.Event{
		Type:         events.TypeInsightsReady,
		AssessmentID: job.Args.AssessmentID,
		OccurredAt:   time.Now().UTC(),
		Payload:      result,
	}); err != nil {
		logger.Warn(ctx, "could not publish insights event", zap.Error(err))
	}

	return finish(ctx, job.Kind, start, nil)
}
