package intelligence

import (
	"vantage/pkg/domain"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
)

// DefaultInsightMaxAttempts is one try plus three retries.
const DefaultInsightMaxAttempts = 4

func uniqueByArgs() river.UniqueOpts {
	return river.UniqueOpts{
		ByArgs: true,
		ByState: []rivertype.JobState{
			rivertype.JobStateAvailable,
			rivertype.JobStatePending,
			rivertype.JobStateRunning,
			rivertype.JobStateRetryable,
			rivertype.JobStateScheduled,
		},
	}
}

// ClassifyJobArgs runs the 3+1 classification of a validated assessment.
type ClassifyJobArgs struct {
	AssessmentID domain.AssessmentID `json:"assessment_id" river:"unique"`
}

// Kind returns the River job kind of classification.
func (ClassifyJobArgs) Kind() string { return "intelligence.classify" }

// InsertOpts drops duplicate classifications of the same assessment.
func (ClassifyJobArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{MaxAttempts: 3, UniqueOpts: uniqueByArgs()}
}

// InsightsJobArgs generates AI insights for a classified assessment.
type InsightsJobArgs struct {
	AssessmentID domain.AssessmentID `json:"assessment_id" river:"unique"`
}

// Kind returns the River job kind of insight generation.
func (InsightsJobArgs) Kind() string { return "intelligence.insights" }

// InsertOpts drops duplicate generations of the same assessment.
func (InsightsJobArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{MaxAttempts: DefaultInsightMaxAttempts, UniqueOpts: uniqueByArgs()}
}
