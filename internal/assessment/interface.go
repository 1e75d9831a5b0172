package assessment

import (
	"context"
	"time"

	"vantage/pkg/domain"
	"vantage/pkg/objectstore"
)

// DashboardUser identifies the caller on the dashboard.
type DashboardUser struct {
	ID           domain.UserID `json:"id"`
	Name         string        `json:"name"`
	BarangayName string        `json:"barangay_name"`
	Role         string        `json:"role"`
}

// DashboardAssessment is the assessment header shown on the dashboard.
type DashboardAssessment struct {
	ID          domain.AssessmentID     `json:"id"`
	Status      domain.AssessmentStatus `json:"status"`
	CreatedAt   time.Time               `json:"created_at"`
	UpdatedAt   time.Time               `json:"updated_at"`
	SubmittedAt *time.Time              `json:"submitted_at"`
}

// Years holds the reporting years of the current cycle.
type Years struct {
	Current     int `json:"current_year"`
	Performance int `json:"performance_year"`
	Assessment  int `json:"assessment_year"`
}

// Progress is a current/total pair with its percentage.
type Progress struct {
	Current    int     `json:"current"`
	Total      int     `json:"total"`
	Percentage float64 `json:"percentage"`
}

// ProgressMetrics summarizes the caller's responses.
type ProgressMetrics struct {
	TotalIndicators          int      `json:"total_indicators"`
	CompletedIndicators      int      `json:"completed_indicators"`
	CompletionPercentage     float64  `json:"completion_percentage"`
	ResponsesRequiringRework int      `json:"responses_requiring_rework"`
	ResponsesWithFeedback    int      `json:"responses_with_feedback"`
	ResponsesWithMOVs        int      `json:"responses_with_movs"`
	Progress                 Progress `json:"progress"`
}

// IndicatorProgress is the per indicator state inside an area.
type IndicatorProgress struct {
	ID             domain.IndicatorID `json:"id"`
	Name           string             `json:"name"`
	HasResponse    bool               `json:"has_response"`
	IsCompleted    bool               `json:"is_completed"`
	RequiresRework bool               `json:"requires_rework"`
}

// AreaProgress is the completion of one governance area.
type AreaProgress struct {
	ID                   domain.GovernanceAreaID `json:"id"`
	Name                 string                  `json:"name"`
	AreaType             domain.AreaType         `json:"area_type"`
	TotalIndicators      int                     `json:"total_indicators"`
	CompletedIndicators  int                     `json:"completed_indicators"`
	CompletionPercentage float64                 `json:"completion_percentage"`
	RequiresReworkCount  int                     `json:"requires_rework_count"`
	Indicators           []IndicatorProgress     `json:"indicators"`
}

// Dashboard is the BLGU landing page.
type Dashboard struct {
	User                   DashboardUser            `json:"user"`
	Assessment             DashboardAssessment      `json:"assessment"`
	Years                  Years                    `json:"years"`
	ProgressMetrics        ProgressMetrics          `json:"progress_metrics"`
	GovernanceAreaProgress []AreaProgress           `json:"governance_area_progress"`
	Feedback               []domain.FeedbackComment `json:"feedback"`
}

// ResponseView is a response with its MOVs and visible feedback.
type ResponseView struct {
	domain.AssessmentResponse
	MOVs             []domain.MOV             `json:"movs"`
	FeedbackComments []domain.FeedbackComment `json:"feedback_comments"`
}

// IndicatorView is an indicator with the caller's response, if any.
type IndicatorView struct {
	domain.Indicator
	Response *ResponseView `json:"response"`
}

// AreaView groups indicators by governance area.
type AreaView struct {
	domain.GovernanceArea
	Indicators []IndicatorView `json:"indicators"`
}

// View is the full nested assessment of a BLGU user.
type View struct {
	Assessment      domain.Assessment `json:"assessment"`
	GovernanceAreas []AreaView        `json:"governance_areas"`
}

// CreateResponseParams are the inputs of CreateResponse. A zero AssessmentID
// means the caller's own assessment.
type CreateResponseParams struct {
	AssessmentID domain.AssessmentID
	IndicatorID  domain.IndicatorID
	ResponseData domain.ResponseData
}

// UpdateResponseParams are the inputs of UpdateResponse. A nil ResponseData
// leaves the data untouched.
type UpdateResponseParams struct {
	ResponseData domain.ResponseData
}

// SubmissionError flags a response blocking submission.
type SubmissionError struct {
	IndicatorID   domain.IndicatorID `json:"indicator_id,omitempty"`
	IndicatorName string             `json:"indicator_name,omitempty"`
	Error         string             `json:"error"`
}

// SubmitResult is the outcome of Submit.
type SubmitResult struct {
	IsValid  bool              `json:"is_valid"`
	Errors   []SubmissionError `json:"errors"`
	Warnings []SubmissionError `json:"warnings"`
}

// UploadParams describe a MOV the client is about to upload.
type UploadParams struct {
	Filename    string
	ContentType string
	Size        int64
	Section     string
}

// Upload is a presigned upload target for a MOV.
type Upload struct {
	Request     objectstore.PresignedRequest
	Filename    string
	StoragePath string
}

// MOVParams register an uploaded MOV. ResponseID must match the path.
type MOVParams struct {
	ResponseID       domain.ResponseID
	Filename         string
	OriginalFilename string
	FileSize         int64
	ContentType      string
	StoragePath      string
}

// Stats aggregates assessments for admins.
type Stats struct {
	TotalAssessments         int64                             `json:"total_assessments"`
	AssessmentsByStatus      map[domain.AssessmentStatus]int64 `json:"assessments_by_status"`
	TotalResponses           int64                             `json:"total_responses"`
	CompletedResponses       int64                             `json:"completed_responses"`
	ResponsesRequiringRework int64                             `json:"responses_requiring_rework"`
}

// ListItem is a row of the admin assessment report.
type ListItem struct {
	ID                    domain.AssessmentID      `json:"id"`
	Status                domain.AssessmentStatus  `json:"status"`
	FinalComplianceStatus *domain.ComplianceStatus `json:"final_compliance_status"`
	AreaResults           domain.AreaResults       `json:"area_results"`
	AIRecommendations     *domain.Insights         `json:"ai_recommendations"`
	BarangayName          string                   `json:"barangay_name"`
	BLGUUserName          string                   `json:"blgu_user_name"`
	ValidatedAt           *time.Time               `json:"validated_at"`
	UpdatedAt             time.Time                `json:"updated_at"`
}

// Service exposes the BLGU side of the assessment workflow and the admin
// reports over it. user is always the authenticated caller.
//
//go:generate mockgen -package mockassessment -source=interface.go -destination=mock/mockassessment.go *
type Service interface {
	Dashboard(ctx context.Context, user domain.User) (*Dashboard, error)
	MyAssessment(ctx context.Context, user domain.User) (*View, error)

	GetResponse(ctx context.Context, user domain.User, id domain.ResponseID) (*ResponseView, error)
	// CreateResponse is idempotent per (assessment, indicator).
	CreateResponse(ctx context.Context, user domain.User, params CreateResponseParams) (*domain.AssessmentResponse, error)
	UpdateResponse(ctx context.Context,
		user domain.User,
		id domain.ResponseID,
		params UpdateResponseParams) (*domain.AssessmentResponse, error)
	// Submit runs the preliminary compliance check and, when it passes, sends
	// the assessment for review. A failed check is not an error.
	Submit(ctx context.Context, user domain.User) (*SubmitResult, error)

	UploadURL(ctx context.Context, user domain.User, responseID domain.ResponseID, params UploadParams) (*Upload, error)
	CreateMOV(ctx context.Context, user domain.User, responseID domain.ResponseID, params MOVParams) (*domain.MOV, error)
	// DeleteMOV removes the stored object first and keeps the row when that
	// fails.
	DeleteMOV(ctx context.Context, user domain.User, id domain.MOVID) error
	DownloadURL(ctx context.Context, user domain.User, id domain.MOVID) (*objectstore.PresignedRequest, error)

	Stats(ctx context.Context) (*Stats, error)
	// List returns assessments in status, newest update first.
	List(ctx context.Context, status domain.AssessmentStatus) ([]ListItem, error)
}
