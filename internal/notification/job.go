package notification

import (
	"time"

	"vantage/pkg/domain"
	"vantage/pkg/events"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
)

const (
	// MaxAttempts bounds delivery attempts of notification jobs.
	MaxAttempts = 5
	// uniquePeriod collapses duplicate notifications enqueued within the window.
	uniquePeriod = 10 * time.Minute
)

func uniqueOpts() river.UniqueOpts {
	return river.UniqueOpts{
		ByArgs:   true,
		ByPeriod: uniquePeriod,
		ByState: []rivertype.JobState{
			rivertype.JobStateAvailable,
			rivertype.JobStatePending,
			rivertype.JobStateRunning,
			rivertype.JobStateRetryable,
			rivertype.JobStateScheduled,
		},
	}
}

// ReworkJobArgs asks the BLGU user to revise an assessment.
type ReworkJobArgs struct {
	AssessmentID domain.AssessmentID `json:"assessment_id" river:"unique"`
}

// Kind returns the River job kind of rework notifications.
func (ReworkJobArgs) Kind() string { return "notification.rework" }

// InsertOpts limits attempts and drops duplicates.
func (ReworkJobArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{MaxAttempts: MaxAttempts, UniqueOpts: uniqueOpts()}
}

// ValidatedJobArgs tells the BLGU user their assessment is complete.
type ValidatedJobArgs struct {
	AssessmentID domain.AssessmentID `json:"assessment_id" river:"unique"`
}

// Kind returns the River job kind of validation-complete notifications.
func (ValidatedJobArgs) Kind() string { return "notification.validated" }

// InsertOpts limits attempts and drops duplicates.
func (ValidatedJobArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{MaxAttempts: MaxAttempts, UniqueOpts: uniqueOpts()}
}

// EventJobArgs publishes a lifecycle event once the enqueueing transaction
// commits.
type EventJobArgs struct {
	Type         events.Type         `json:"type"`
	AssessmentID domain.AssessmentID `json:"assessment_id"`
	OccurredAt   time.Time           `json:"occurred_at"`
}

// Kind returns the River job kind of event publication.
func (EventJobArgs) Kind() string { return "assessment.event" }

// InsertOpts limits attempts.
func (EventJobArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{MaxAttempts: MaxAttempts}
}
