package assessor

import (
	"context"
	"time"

	"vantage/internal/assessment"
	"vantage/pkg/domain"
)

// QueueItem is a submission waiting in an assessor's queue.
type QueueItem struct {
	AssessmentID   domain.AssessmentID     `json:"assessment_id"`
	BarangayName   string                  `json:"barangay_name"`
	SubmissionDate *time.Time              `json:"submission_date"`
	Status         domain.AssessmentStatus `json:"status"`
	UpdatedAt      time.Time               `json:"updated_at"`
}

// ValidateParams carry a validation decision and optional comments.
type ValidateParams struct {
	ValidationStatus domain.ValidationStatus
	PublicComment    string
	InternalNote     string
}

// ValidationResult is the outcome of ValidateResponse.
type ValidationResult struct {
	Success              bool                    `json:"success"`
	Message              string                  `json:"message"`
	AssessmentResponseID domain.ResponseID       `json:"assessment_response_id"`
	ValidationStatus     domain.ValidationStatus `json:"validation_status"`
}

// MOVResult is the outcome of CreateMOV. Rejections are reported with
// Success false rather than an error.
type MOVResult struct {
	Success bool          `json:"success"`
	Message string        `json:"message"`
	MOVID   *domain.MOVID `json:"mov_id"`
}

// BLGUUser is the owner of an assessment under review.
type BLGUUser struct {
	ID       domain.UserID    `json:"id"`
	Name     string           `json:"name"`
	Email    string           `json:"email"`
	Barangay *domain.Barangay `json:"barangay"`
}

// IndicatorDetails is an indicator as shown to assessors.
type IndicatorDetails struct {
	ID             domain.IndicatorID    `json:"id"`
	Name           string                `json:"name"`
	Description    string                `json:"description"`
	FormSchema     domain.FormSchema     `json:"form_schema"`
	GovernanceArea domain.GovernanceArea `json:"governance_area"`
	TechnicalNotes string                `json:"technical_notes"`
}

// ResponseDetails is a response with everything an assessor reviews.
type ResponseDetails struct {
	domain.AssessmentResponse
	Indicator        IndicatorDetails         `json:"indicator"`
	MOVs             []domain.MOV             `json:"movs"`
	FeedbackComments []domain.FeedbackComment `json:"feedback_comments"`
}

// Details is the full assessment under review, internal notes included.
type Details struct {
	ID          domain.AssessmentID     `json:"id"`
	Status      domain.AssessmentStatus `json:"status"`
	ReworkCount int                     `json:"rework_count"`
	CreatedAt   time.Time               `json:"created_at"`
	UpdatedAt   time.Time               `json:"updated_at"`
	SubmittedAt *time.Time              `json:"submitted_at"`
	ValidatedAt *time.Time              `json:"validated_at"`
	BLGUUser    *BLGUUser               `json:"blgu_user"`
	Responses   []ResponseDetails       `json:"responses"`
}

// WorkflowResult is the outcome of SendForRework and Finalize.
type WorkflowResult struct {
	Success      bool                    `json:"success"`
	Message      string                  `json:"message"`
	AssessmentID domain.AssessmentID     `json:"assessment_id"`
	NewStatus    domain.AssessmentStatus `json:"new_status"`
	ReworkCount  int                     `json:"rework_count"`
	ValidatedAt  *time.Time              `json:"validated_at,omitempty"`
}

// Service is the area assessor side of the workflow. user is always the
// authenticated caller and must be assigned to a governance area.
//
//go:generate mockgen -package mockassessor -source=interface.go -destination=mock/mockassessor.go *
type Service interface {
	Queue(ctx context.Context, user domain.User) ([]QueueItem, error)
	ValidateResponse(ctx context.Context,
		user domain.User,
		responseID domain.ResponseID,
		params ValidateParams) (*ValidationResult, error)
	CreateMOV(ctx context.Context,
		user domain.User,
		responseID domain.ResponseID,
		params assessment.MOVParams) (*MOVResult, error)
	Details(ctx context.Context, user domain.User, assessmentID domain.AssessmentID) (*Details, error)
	// SendForRework returns the assessment to the BLGU user. It is allowed once.
	SendForRework(ctx context.Context, user domain.User, assessmentID domain.AssessmentID) (*WorkflowResult, error)
	// Finalize validates the assessment and schedules its classification.
	Finalize(ctx context.Context, user domain.User, assessmentID domain.AssessmentID) (*WorkflowResult, error)
}
