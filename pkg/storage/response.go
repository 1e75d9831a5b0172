package storage

import (
	"context"

	"vantage/pkg/domain"
)

// ResponseUpdates describes the optional fields applied by UpdateResponse.
type ResponseUpdates struct {
	ResponseData     domain.ResponseData
	IsCompleted      *bool
	RequiresRework   *bool
	ValidationStatus *domain.ValidationStatus

	// WhereAssessmentStatus limits the update to a response whose assessment
	// is in one of these statuses.
	WhereAssessmentStatus []domain.AssessmentStatus
}

// ResponseStorage persists assessment responses.
type ResponseStorage interface {
	// StoreResponse inserts a response. If a response already exists for the
	// same (assessment, indicator) pair the existing row is returned unchanged.
	StoreResponse(ctx context.Context, response domain.AssessmentResponse) (*domain.AssessmentResponse, error)
	// ResponseByID returns nil when the response does not exist.
	ResponseByID(ctx context.Context, id domain.ResponseID) (*domain.AssessmentResponse, error)
	// ResponsesByAssessment lists the responses of an assessment ordered by id.
	ResponsesByAssessment(ctx context.Context, assessmentID domain.AssessmentID) ([]domain.AssessmentResponse, error)
	// UpdateResponse applies updates and returns the updated row, or nil when not found.
	UpdateResponse(ctx context.Context,
		id domain.ResponseID,
		updates ResponseUpdates) (*domain.AssessmentResponse, error)
	// MarkResponsesForRework flags every response of the assessment as requiring rework.
	MarkResponsesForRework(ctx context.Context, assessmentID domain.AssessmentID) (int64, error)
}
