package worker_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"vantage/internal/intelligence"
	mockintelligence "vantage/internal/intelligence/mock"
	"vantage/internal/notification"
	mocknotification "vantage/internal/notification/mock"
	"vantage/internal/worker"
	"vantage/pkg/domain"
	"vantage/pkg/events"
	"vantage/pkg/logger"
	"vantage/pkg/serrors"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	goleak.VerifyTestMain(m)
}

func makeJob[T river.JobArgs](id int64, attempt int, args T) *river.Job[T] {
	return &river.Job[T]{
		JobRow: &rivertype.JobRow{ID: id, Attempt: attempt, Kind: args.Kind()},
		Args:   args,
	}
}

func TestReworkWorker_Work(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	notify := mocknotification.NewMockService(ctrl)
	w := worker.NewReworkWorker(notify)

	notify.EXPECT().NotifyRework(gomock.Any(), domain.AssessmentID(7)).Return(&notification.Details{AssessmentID: 7}, nil)

	require.NoError(t, w.Work(context.Background(), makeJob(1, 1, notification.ReworkJobArgs{AssessmentID: 7})))
}

func TestReworkWorker_Work_NotFoundCancels(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	notify := mocknotification.NewMockService(ctrl)
	w := worker.NewReworkWorker(notify)

	notify.EXPECT().NotifyRework(gomock.Any(), domain.AssessmentID(7)).
		Return(nil, serrors.With(serrors.ErrNotFound, "Assessment not found"))

	err := w.Work(context.Background(), makeJob(1, 1, notification.ReworkJobArgs{AssessmentID: 7}))
	var cancelErr *river.JobCancelError
	require.ErrorAs(t, err, &cancelErr)
}

func TestValidatedWorker_Work_GenericErrorRetries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	notify := mocknotification.NewMockService(ctrl)
	w := worker.NewValidatedWorker(notify)

	notify.EXPECT().NotifyValidated(gomock.Any(), domain.AssessmentID(3)).Return(nil, errors.New("boom"))

	err := w.Work(context.Background(), makeJob(2, 1, notification.ValidatedJobArgs{AssessmentID: 3}))
	require.Error(t, err)
	var cancelErr *river.JobCancelError
	require.NotErrorAs(t, err, &cancelErr)
	var snoozeErr *river.JobSnoozeError
	require.NotErrorAs(t, err, &snoozeErr)
}

func TestEventWorker_Work(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	notify := mocknotification.NewMockService(ctrl)
	w := worker.NewEventWorker(notify)

	at := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	notify.EXPECT().Publish(gomock.Any(), events.Event{
		Type:         events.TypeSubmitted,
		AssessmentID: 4,
		OccurredAt:   at,
	}).Return(nil)

	job := makeJob(3, 1, notification.EventJobArgs{Type: events.TypeSubmitted, AssessmentID: 4, OccurredAt: at})
	require.NoError(t, w.Work(context.Background(), job))
}

func TestClassifyWorker_Work(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	intel := mockintelligence.NewMockService(ctrl)
	notify := mocknotification.NewMockService(ctrl)
	w := worker.NewClassifyWorker(intel, notify)

	result := &intelligence.Result{AssessmentID: 5, FinalComplianceStatus: domain.ComplianceStatusPassed}
	gomock.InOrder(
		intel.EXPECT().Classify(gomock.Any(), domain.AssessmentID(5)).Return(result, nil),
		intel.EXPECT().EnqueueInsights(gomock.Any(), domain.AssessmentID(5)).Return(true, nil),
		notify.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, ev events.Event) error {
			require.Equal(t, events.TypeClassified, ev.Type)
			require.Equal(t, domain.AssessmentID(5), ev.AssessmentID)
			require.Equal(t, result, ev.Payload)

			return errors.New("broker down")
		}),
	)

	require.NoError(t, w.Work(context.Background(), makeJob(4, 1, intelligence.ClassifyJobArgs{AssessmentID: 5})))
}

func TestClassifyWorker_Work_NotValidatedCancels(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	intel := mockintelligence.NewMockService(ctrl)
	w := worker.NewClassifyWorker(intel, mocknotification.NewMockService(ctrl))

	intel.EXPECT().Classify(gomock.Any(), domain.AssessmentID(5)).
		Return(nil, serrors.With(serrors.ErrBadRequest, "Assessment 5 is not validated. Status: Draft"))

	err := w.Work(context.Background(), makeJob(4, 1, intelligence.ClassifyJobArgs{AssessmentID: 5}))
	var cancelErr *river.JobCancelError
	require.ErrorAs(t, err, &cancelErr)
}

func TestInsightsWorker_Work(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	intel := mockintelligence.NewMockService(ctrl)
	notify := mocknotification.NewMockService(ctrl)
	w := worker.NewInsightsWorker(intel, notify, time.Second)

	insights := &domain.Insights{Summary: "ok"}
	intel.EXPECT().Insights(gomock.Any(), domain.AssessmentID(9)).Return(insights, nil)
	notify.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, ev events.Event) error {
		require.Equal(t, events.TypeInsightsReady, ev.Type)
		require.Equal(t, insights, ev.Payload)

		return nil
	})

	require.NoError(t, w.Work(context.Background(), makeJob(5, 1, intelligence.InsightsJobArgs{AssessmentID: 9})))
}

func TestInsightsWorker_Work_RateLimitedSnoozesAndPauses(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	intel := mockintelligence.NewMockService(ctrl)
	w := worker.NewInsightsWorker(intel, mocknotification.NewMockService(ctrl), time.Second)

	// Only the first job reaches the provider.
	intel.EXPECT().Insights(gomock.Any(), domain.AssessmentID(9)).
		Return(nil, serrors.With(serrors.ErrRateLimited, "quota exceeded")).Times(1)

	err := w.Work(context.Background(), makeJob(6, 2, intelligence.InsightsJobArgs{AssessmentID: 9}))
	var snoozeErr *river.JobSnoozeError
	require.ErrorAs(t, err, &snoozeErr)
	require.Equal(t, 2*time.Second, snoozeErr.Duration)

	err = w.Work(context.Background(), makeJob(7, 1, intelligence.InsightsJobArgs{AssessmentID: 10}))
	require.ErrorAs(t, err, &snoozeErr)
	require.LessOrEqual(t, snoozeErr.Duration, 2*time.Second)
	require.Positive(t, snoozeErr.Duration)
}

func TestInsightsWorker_Work_UnavailableCancels(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	intel := mockintelligence.NewMockService(ctrl)
	w := worker.NewInsightsWorker(intel, mocknotification.NewMockService(ctrl), time.Second)

	intel.EXPECT().Insights(gomock.Any(), domain.AssessmentID(9)).
		Return(nil, serrors.With(serrors.ErrUnavailable, "insight generation is not configured"))

	err := w.Work(context.Background(), makeJob(8, 1, intelligence.InsightsJobArgs{AssessmentID: 9}))
	var cancelErr *river.JobCancelError
	require.ErrorAs(t, err, &cancelErr)
}

func TestInsightsWorker_NextRetry(t *testing.T) {
	w := worker.NewInsightsWorker(nil, nil, time.Minute)

	before := time.Now()
	next := w.NextRetry(makeJob(1, 3, intelligence.InsightsJobArgs{AssessmentID: 1}))
	require.WithinDuration(t, before.Add(4*time.Minute), next, time.Second)
}

func TestRetryDelay(t *testing.T) {
	base := 60 * time.Second
	require.Equal(t, 60*time.Second, worker.RetryDelay(base, 0))
	require.Equal(t, 60*time.Second, worker.RetryDelay(base, 1))
	require.Equal(t, 120*time.Second, worker.RetryDelay(base, 2))
	require.Equal(t, 480*time.Second, worker.RetryDelay(base, 4))
}

func TestWorkers_RegistersEveryKind(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	workers := worker.Workers(worker.Services{
		Notification: mocknotification.NewMockService(ctrl),
		Intelligence: mockintelligence.NewMockService(ctrl),
	}, worker.Options{RetryBase: time.Second})
	require.NotNil(t, workers)
}
