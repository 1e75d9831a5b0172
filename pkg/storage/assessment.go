package storage

import (
	"context"
	"time"

	"vantage/pkg/domain"
)

// AssessmentUpdates describes the optional fields applied by UpdateAssessment.
// updated_at is always refreshed, so empty updates just touch the row.
type AssessmentUpdates struct {
	Status                *domain.AssessmentStatus
	ReworkCount           *int
	SubmittedAt           *time.Time
	ValidatedAt           *time.Time
	FinalComplianceStatus *domain.ComplianceStatus
	AreaResults           domain.AreaResults
	AIRecommendations     *domain.Insights

	// WhereStatus limits the update to an assessment in one of these statuses.
	WhereStatus []domain.AssessmentStatus
	// WhereReworkCount limits the update to an assessment with this rework count.
	WhereReworkCount *int
}

// AssessmentListItem is an assessment joined with the names shown in queues
// and reports.
type AssessmentListItem struct {
	Assessment   domain.Assessment
	BarangayName string
	BLGUUserName string
}

// AssessmentStats aggregates assessment and response counts.
type AssessmentStats struct {
	TotalAssessments         int64
	AssessmentsByStatus      map[domain.AssessmentStatus]int64
	TotalResponses           int64
	CompletedResponses       int64
	ResponsesRequiringRework int64
}

// AssessmentStorage persists assessments.
type AssessmentStorage interface {
	// EnsureAssessment returns the user's assessment, creating a Draft one when
	// the user has none.
	EnsureAssessment(ctx context.Context, userID domain.UserID) (*domain.Assessment, error)
	// AssessmentByID returns nil when the assessment does not exist.
	AssessmentByID(ctx context.Context, id domain.AssessmentID) (*domain.Assessment, error)
	// AssessmentByUserID returns nil when the user has no assessment.
	AssessmentByUserID(ctx context.Context, userID domain.UserID) (*domain.Assessment, error)
	// UpdateAssessment applies updates and returns the updated row, or nil when
	// not found or when a Where condition no longer holds.
	UpdateAssessment(ctx context.Context, id domain.AssessmentID, updates AssessmentUpdates) (*domain.Assessment, error)
	// ListAssessments returns assessments in any of the given statuses ordered
	// by updated_at descending.
	ListAssessments(ctx context.Context, statuses ...domain.AssessmentStatus) ([]AssessmentListItem, error)
	// AssessorQueue returns distinct assessments in the given statuses having
	// at least one response on an indicator of the area, newest first.
	AssessorQueue(ctx context.Context,
		areaID domain.GovernanceAreaID,
		statuses ...domain.AssessmentStatus) ([]AssessmentListItem, error)
	// AssessmentStats counts assessments by status and responses by state.
	AssessmentStats(ctx context.Context) (AssessmentStats, error)
}
