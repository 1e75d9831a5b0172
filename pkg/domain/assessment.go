package domain

import "time"

// AssessmentID uniquely identifies an assessment.
type AssessmentID int64

// AssessmentStatus is the lifecycle state of an assessment.
type AssessmentStatus string

const (
	AssessmentStatusDraft              AssessmentStatus = "Draft"
	AssessmentStatusSubmittedForReview AssessmentStatus = "Submitted for Review"
	AssessmentStatusValidated          AssessmentStatus = "Validated"
	AssessmentStatusNeedsRework        AssessmentStatus = "Needs Rework"
)

// Editable reports whether BLGU users may still change responses.
func (s AssessmentStatus) Editable() bool {
	return s == AssessmentStatusDraft || s == AssessmentStatusNeedsRework
}

// EditableStatuses lists the statuses in which a BLGU user may change responses.
func EditableStatuses() []AssessmentStatus {
	return []AssessmentStatus{AssessmentStatusDraft, AssessmentStatusNeedsRework}
}

// ComplianceStatus is the outcome of the SGLGB classification.
type ComplianceStatus string

const (
	ComplianceStatusPassed ComplianceStatus = "Passed"
	ComplianceStatusFailed ComplianceStatus = "Failed"
)

// AreaResults maps a governance area name to Passed or Failed.
type AreaResults map[string]ComplianceStatus

// Insights is the AI generated guidance attached to a validated assessment.
type Insights struct {
	Summary                  string    `json:"summary"`
	Recommendations          []string  `json:"recommendations"`
	CapacityDevelopmentNeeds []string  `json:"capacity_development_needs"`
	Model                    string    `json:"model,omitempty"`
	GeneratedAt              time.Time `json:"generated_at"`
}

// Assessment is a barangay's SGLGB self-assessment. Each BLGU user owns at
// most one.
type Assessment struct {
	ID         AssessmentID     `json:"id"`
	Status     AssessmentStatus `json:"status"`
	BLGUUserID UserID           `json:"blgu_user_id"`

	ReworkCount int `json:"rework_count"`

	SubmittedAt *time.Time `json:"submitted_at"`
	ValidatedAt *time.Time `json:"validated_at"`

	FinalComplianceStatus *ComplianceStatus `json:"final_compliance_status"`
	AreaResults           AreaResults       `json:"area_results"`
	AIRecommendations     *Insights         `json:"ai_recommendations"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ResponseID uniquely identifies an assessment response.
type ResponseID int64

// ValidationStatus is an assessor's verdict on a single response.
type ValidationStatus string

const (
	ValidationStatusPass        ValidationStatus = "Pass"
	ValidationStatusFail        ValidationStatus = "Fail"
	ValidationStatusConditional ValidationStatus = "Conditional"
)

// Valid reports whether s is a known validation status.
func (s ValidationStatus) Valid() bool {
	switch s {
	case ValidationStatusPass, ValidationStatusFail, ValidationStatusConditional:
		return true
	default:
		return false
	}
}

// ResponseData holds the answers to an indicator's form.
type ResponseData map[string]any

// AssessmentResponse is a BLGU's answer to one indicator.
type AssessmentResponse struct {
	ID               ResponseID        `json:"id"`
	ResponseData     ResponseData      `json:"response_data"`
	IsCompleted      bool              `json:"is_completed"`
	RequiresRework   bool              `json:"requires_rework"`
	ValidationStatus *ValidationStatus `json:"validation_status"`
	AssessmentID     AssessmentID      `json:"assessment_id"`
	IndicatorID      IndicatorID       `json:"indicator_id"`
	CreatedAt        time.Time         `json:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at"`
}

// MOVID uniquely identifies a means of verification file.
type MOVID int64

// MOVStatus tracks the upload state of a MOV file.
type MOVStatus string

const (
	MOVStatusPending  MOVStatus = "Pending"
	MOVStatusUploaded MOVStatus = "Uploaded"
)

// MOV (Means of Verification) is a file proving compliance with an indicator.
type MOV struct {
	ID               MOVID      `json:"id"`
	Filename         string     `json:"filename"`
	OriginalFilename string     `json:"original_filename"`
	FileSize         int64      `json:"file_size"`
	ContentType      string     `json:"content_type"`
	StoragePath      string     `json:"storage_path"`
	Status           MOVStatus  `json:"status"`
	ResponseID       ResponseID `json:"response_id"`
	UploadedAt       time.Time  `json:"uploaded_at"`
}

// FeedbackCommentID uniquely identifies a feedback comment.
type FeedbackCommentID int64

// CommentType categorises feedback comments.
type CommentType string

const (
	CommentTypeGeneral      CommentType = "general"
	CommentTypeValidation   CommentType = "validation"
	CommentTypeInternalNote CommentType = "internal_note"
)

// FeedbackComment is an assessor's remark on a response. Internal notes are
// never shown to BLGU users.
type FeedbackComment struct {
	ID             FeedbackCommentID `json:"id"`
	Comment        string            `json:"comment"`
	CommentType    CommentType       `json:"comment_type"`
	IsInternalNote bool              `json:"is_internal_note"`
	ResponseID     ResponseID        `json:"response_id"`
	AssessorID     *UserID           `json:"assessor_id,omitempty"`
	CreatedAt      time.Time         `json:"created_at"`
}
