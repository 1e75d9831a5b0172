package worker

import (
	"context"
	"time"

	"vantage/internal/notification"
	"vantage/pkg/events"
	"vantage/pkg/logger"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// ReworkWorker tells BLGU users their assessment needs rework.
type ReworkWorker struct {
	river.WorkerDefaults[notification.ReworkJobArgs]

	notification notification.Service
}

// NewReworkWorker creates a ReworkWorker.
func NewReworkWorker(svc notification.Service) *ReworkWorker {
	return &ReworkWorker{notification: svc}
}

func (w *ReworkWorker) Work(ctx context.Context, job *river.Job[notification.ReworkJobArgs]) error {
	start := time.Now()
	ctx = jobContext(ctx, job.ID, job.Kind)
	ctx = logger.WithFields(ctx, zap.Int64("assessment_id", int64(job.Args.AssessmentID)))

	_, err := w.notification.NotifyRework(ctx, job.Args.AssessmentID)

	return finish(ctx, job.Kind, start, err)
}

// ValidatedWorker tells BLGU users their assessment was validated.
type ValidatedWorker struct {
	river.WorkerDefaults[notification.ValidatedJobArgs]

	notification notification.Service
}

// NewValidatedWorker creates a ValidatedWorker.
func NewValidatedWorker(svc notification.Service) *ValidatedWorker {
	return &ValidatedWorker{notification: svc}
}

func (w *ValidatedWorker) Work(ctx context.Context, job *river.Job[notification.ValidatedJobArgs]) error {
	start := time.Now()
	ctx = jobContext(ctx, job.ID, job.Kind)
	ctx = logger.WithFields(ctx, zap.Int64("assessment_id", int64(job.Args.AssessmentID)))

	_, err := w.notification.NotifyValidated(ctx, job.Args.AssessmentID)

	return finish(ctx, job.Kind, start, err)
}

// EventWorker publishes lifecycle events enqueued inside a transaction.
type EventWorker struct {
	river.WorkerDefaults[notification.EventJobArgs]

	notification notification.Service
}

// NewEventWorker creates an EventWorker.
func NewEventWorker(svc notification.Service) *EventWorker {
	return &EventWorker{notification: svc}
}

func (w *EventWorker) Work(ctx context.Context, job *river.Job[notification.EventJobArgs]) error {
	start := time.Now()
	ctx = jobContext(ctx, job.ID, job.Kind)

	occurredAt := job.Args.OccurredAt
	if occurredAt.IsZero() {
		occurredAt = job.CreatedAt
	}

	err := w.notification.Publish(ctx, events.Event{
		Type:         job.Args.Type,
		AssessmentID: job.Args.AssessmentID,
		OccurredAt:   occurredAt,
	})

	return finish(ctx, job.Kind, start, err)
}
