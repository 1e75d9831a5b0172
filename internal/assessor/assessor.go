// Package assessor implements the review side of the assessment workflow
// used by area assessors.
package assessor

import (
	"context"
	"fmt"
	"time"

	"vantage/internal/assessment"
	"vantage/internal/intelligence"
	"vantage/internal/notification"
	"vantage/pkg/domain"
	"vantage/pkg/logger"
	"vantage/pkg/metrics"
	"vantage/pkg/serrors"
	"vantage/pkg/storage"

	"go.uber.org/zap"
)

const noTechnicalNotes = "No technical notes available"

type service struct {
	storage storage.Storage
	now     func() time.Time
}

var _ Service = (*service)(nil)

func areaOf(assessor domain.User) (domain.GovernanceAreaID, error) {
	if assessor.GovernanceAreaID == nil {
		return 0, serrors.With(serrors.ErrForbidden, "Assessor must be assigned to a governance area.")
	}

	return *assessor.GovernanceAreaID, nil
}

func (s service) Queue(ctx context.Context, assessor domain.User) ([]QueueItem, error) {
	area, err := areaOf(assessor)
	if err != nil {
		return nil, err
	}

	rows, err := s.storage.AssessorQueue(ctx, area,
		domain.AssessmentStatusSubmittedForReview,
		domain.AssessmentStatusNeedsRework,
		domain.AssessmentStatusValidated,
	)
	if err != nil {
		return nil, fmt.Errorf("could not get assessor queue: %w", err)
	}

	items := make([]QueueItem, 0, len(rows))
	for _, r := range rows {
		barangay := r.BarangayName
		if barangay == "" {
			barangay = "-"
		}
		items = append(items, QueueItem{
			AssessmentID:   r.Assessment.ID,
			BarangayName:   barangay,
			SubmissionDate: r.Assessment.SubmittedAt,
			Status:         r.Assessment.Status,
			UpdatedAt:      r.Assessment.UpdatedAt,
		})
	}

	return items, nil
}

// responseInArea loads a response and reports whether its indicator belongs
// to area.
func (s service) responseInArea(ctx context.Context,
	id domain.ResponseID,
	area domain.GovernanceAreaID) (*domain.AssessmentResponse, bool, error) {
	r, err := s.storage.ResponseByID(ctx, id)
	if err != nil {
		return nil, false, fmt.Errorf("could not get response: %w", err)
	}
	if r == nil {
		return nil, false, nil
	}

	indicator, err := s.storage.IndicatorByID(ctx, r.IndicatorID)
	if err != nil {
		return nil, false, fmt.Errorf("could not get indicator: %w", err)
	}

	return r, indicator != nil && indicator.GovernanceAreaID == area, nil
}

func (s service) ValidateResponse(ctx context.Context,
	assessor domain.User,
	responseID domain.ResponseID,
	params ValidateParams) (*ValidationResult, error) {
	area, err := areaOf(assessor)
	if err != nil {
		return nil, err
	}
	if !params.ValidationStatus.Valid() {
		return nil, serrors.With(serrors.ErrBadRequest, "Invalid validation status: %s", params.ValidationStatus)
	}

	r, inArea, err := s.responseInArea(ctx, responseID, area)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, serrors.With(serrors.ErrNotFound, "Assessment response not found")
	}
	if !inArea {
		return nil, serrors.With(serrors.ErrForbidden,
			"Access denied. You can only validate responses in your governance area")
	}

	var comments []domain.FeedbackComment
	if params.PublicComment != "" {
		comments = append(comments, domain.FeedbackComment{
			Comment:     params.PublicComment,
			CommentType: domain.CommentTypeValidation,
			ResponseID:  responseID,
			AssessorID:  &assessor.ID,
		})
	}
	if params.InternalNote != "" {
		comments = append(comments, domain.FeedbackComment{
			Comment:        params.InternalNote,
			CommentType:    domain.CommentTypeInternalNote,
			IsInternalNote: true,
			ResponseID:     responseID,
			AssessorID:     &assessor.ID,
		})
	}

	err = s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		if _, err := tx.UpdateResponse(ctx, responseID, storage.ResponseUpdates{
			ValidationStatus: &params.ValidationStatus,
		}); err != nil {
			return fmt.Errorf("could not update validation status: %w", err)
		}
		if len(comments) == 0 {
			return nil
		}
		if _, err := tx.StoreFeedbackComments(ctx, comments...); err != nil {
			return fmt.Errorf("could not store feedback: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &ValidationResult{
		Success:              true,
		Message:              "Assessment response validated successfully",
		AssessmentResponseID: responseID,
		ValidationStatus:     params.ValidationStatus,
	}, nil
}

func (s service) CreateMOV(ctx context.Context,
	assessor domain.User,
	responseID domain.ResponseID,
	params assessment.MOVParams) (*MOVResult, error) {
	area, err := areaOf(assessor)
	if err != nil {
		return nil, err
	}
	if params.ResponseID != 0 && params.ResponseID != responseID {
		return &MOVResult{Message: "MOV response_id does not match URL parameter"}, nil
	}

	r, inArea, err := s.responseInArea(ctx, responseID, area)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return &MOVResult{Message: "Assessment response not found"}, nil
	}
	if !inArea {
		return &MOVResult{
			Message: "Access denied. You can only upload MOVs for responses in your governance area",
		}, nil
	}

	mov, err := s.storage.StoreMOV(ctx, domain.MOV{
		Filename:         params.Filename,
		OriginalFilename: params.OriginalFilename,
		FileSize:         params.FileSize,
		ContentType:      params.ContentType,
		StoragePath:      params.StoragePath,
		Status:           domain.MOVStatusUploaded,
		ResponseID:       r.ID,
	})
	if err != nil {
		return nil, fmt.Errorf("could not store mov: %w", err)
	}

	metrics.MOVUploads.WithLabelValues(domain.RoleAreaAssessor.String()).Inc()

	return &MOVResult{Success: true, Message: "MOV uploaded successfully", MOVID: &mov.ID}, nil
}

func (s service) Details(ctx context.Context,
	assessor domain.User,
	assessmentID domain.AssessmentID) (*Details, error) {
	area, err := areaOf(assessor)
	if err != nil {
		return nil, err
	}

	a, err := s.storage.AssessmentByID(ctx, assessmentID)
	if err != nil {
		return nil, fmt.Errorf("could not get assessment: %w", err)
	}
	if a == nil {
		return nil, serrors.With(serrors.ErrNotFound, "Assessment not found")
	}

	responses, err := s.storage.ResponsesByAssessment(ctx, assessmentID)
	if err != nil {
		return nil, fmt.Errorf("could not get responses: %w", err)
	}

	indicators, err := s.storage.Indicators(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not get indicators: %w", err)
	}
	indicatorByID := make(map[domain.IndicatorID]domain.Indicator, len(indicators))
	for _, i := range indicators {
		indicatorByID[i.ID] = i
	}

	if len(responses) > 0 {
		allowed := false
		for _, r := range responses {
			if indicatorByID[r.IndicatorID].GovernanceAreaID == area {
				allowed = true
				break
			}
		}
		if !allowed {
			return nil, serrors.With(serrors.ErrForbidden,
				"Access denied. You can only view assessments in your governance area")
		}
	}

	details := &Details{
		ID:          a.ID,
		Status:      a.Status,
		ReworkCount: a.ReworkCount,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
		SubmittedAt: a.SubmittedAt,
		ValidatedAt: a.ValidatedAt,
		Responses:   make([]ResponseDetails, 0, len(responses)),
	}

	if details.BLGUUser, err = s.blguUser(ctx, a.BLGUUserID); err != nil {
		return nil, err
	}
	if len(responses) == 0 {
		return details, nil
	}

	areas, err := s.storage.GovernanceAreas(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not get governance areas: %w", err)
	}
	areaByID := make(map[domain.GovernanceAreaID]domain.GovernanceArea, len(areas))
	for _, ga := range areas {
		areaByID[ga.ID] = ga
	}

	ids := make([]domain.ResponseID, 0, len(responses))
	for _, r := range responses {
		ids = append(ids, r.ID)
	}
	movs, err := s.storage.MOVsByResponses(ctx, ids...)
	if err != nil {
		return nil, fmt.Errorf("could not get movs: %w", err)
	}
	comments, err := s.storage.FeedbackByResponses(ctx, true, ids...)
	if err != nil {
		return nil, fmt.Errorf("could not get feedback: %w", err)
	}

	for _, r := range responses {
		indicator := indicatorByID[r.IndicatorID]
		notes := indicator.Description
		if notes == "" {
			notes = noTechnicalNotes
		}

		rd := ResponseDetails{
			AssessmentResponse: r,
			Indicator: IndicatorDetails{
				ID:             indicator.ID,
				Name:           indicator.Name,
				Description:    indicator.Description,
				FormSchema:     indicator.FormSchema,
				GovernanceArea: areaByID[indicator.GovernanceAreaID],
				TechnicalNotes: notes,
			},
			MOVs:             []domain.MOV{},
			FeedbackComments: []domain.FeedbackComment{},
		}
		for _, m := range movs {
			if m.ResponseID == r.ID {
				rd.MOVs = append(rd.MOVs, m)
			}
		}
		for _, c := range comments {
			if c.ResponseID == r.ID {
				rd.FeedbackComments = append(rd.FeedbackComments, c)
			}
		}
		details.Responses = append(details.Responses, rd)
	}

	return details, nil
}

func (s service) blguUser(ctx context.Context, id domain.UserID) (*BLGUUser, error) {
	u, err := s.storage.UserByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get blgu user: %w", err)
	}
	if u == nil {
		return nil, nil
	}

	out := &BLGUUser{ID: u.ID, Name: u.Name, Email: u.Email}
	if u.BarangayID != nil {
		if out.Barangay, err = s.storage.BarangayByID(ctx, *u.BarangayID); err != nil {
			return nil, fmt.Errorf("could not get barangay: %w", err)
		}
	}

	return out, nil
}

func (s service) SendForRework(ctx context.Context,
	assessor domain.User,
	assessmentID domain.AssessmentID) (*WorkflowResult, error) {
	if _, err := areaOf(assessor); err != nil {
		return nil, err
	}

	var result *WorkflowResult
	err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		a, err := tx.AssessmentByID(ctx, assessmentID)
		if err != nil {
			return fmt.Errorf("could not get assessment: %w", err)
		}
		if a == nil {
			return serrors.With(serrors.ErrNotFound, "Assessment %d not found", assessmentID)
		}
		if a.ReworkCount != 0 {
			return serrors.With(serrors.ErrBadRequest, "Assessment has already been sent for rework. Cannot send again.")
		}

		status, count, zero := domain.AssessmentStatusNeedsRework, 1, 0
		if a, err = tx.UpdateAssessment(ctx, assessmentID, storage.AssessmentUpdates{
			Status:           &status,
			ReworkCount:      &count,
			WhereReworkCount: &zero,
		}); err != nil {
			return fmt.Errorf("could not update assessment: %w", err)
		}
		if a == nil {
			return serrors.With(serrors.ErrBadRequest, "Assessment has already been sent for rework. Cannot send again.")
		}
		if _, err = tx.MarkResponsesForRework(ctx, assessmentID); err != nil {
			return fmt.Errorf("could not mark responses for rework: %w", err)
		}
		if _, err = tx.AddJob(ctx, notification.ReworkJobArgs{AssessmentID: assessmentID}, nil); err != nil {
			return fmt.Errorf("could not enqueue rework notification: %w", err)
		}

		result = &WorkflowResult{
			Success:      true,
			Message:      "Assessment sent for rework successfully",
			AssessmentID: assessmentID,
			NewStatus:    a.Status,
			ReworkCount:  a.ReworkCount,
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.AssessmentTransitions.WithLabelValues(string(domain.AssessmentStatusNeedsRework)).Inc()
	logger.Info(ctx, "assessment sent for rework",
		zap.Int64("assessment_id", int64(assessmentID)),
		zap.Int64("assessor_id", int64(assessor.ID)))

	return result, nil
}

func (s service) Finalize(ctx context.Context,
	assessor domain.User,
	assessmentID domain.AssessmentID) (*WorkflowResult, error) {
	if _, err := areaOf(assessor); err != nil {
		return nil, err
	}

	var result *WorkflowResult
	err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		a, err := tx.AssessmentByID(ctx, assessmentID)
		if err != nil {
			return fmt.Errorf("could not get assessment: %w", err)
		}
		if a == nil {
			return serrors.With(serrors.ErrNotFound, "Assessment %d not found", assessmentID)
		}

		switch a.Status {
		case domain.AssessmentStatusValidated:
			return serrors.With(serrors.ErrBadRequest, "Assessment is already finalized")
		case domain.AssessmentStatusDraft:
			return serrors.With(serrors.ErrBadRequest, "Cannot finalize a draft assessment")
		}

		responses, err := tx.ResponsesByAssessment(ctx, assessmentID)
		if err != nil {
			return fmt.Errorf("could not get responses: %w", err)
		}
		unreviewed := 0
		for _, r := range responses {
			if r.ValidationStatus == nil {
				unreviewed++
			}
		}
		if unreviewed > 0 {
			return serrors.With(serrors.ErrBadRequest,
				"Cannot finalize assessment. %d responses have not been reviewed.", unreviewed)
		}

		status, now := domain.AssessmentStatusValidated, s.now().UTC()
		if a, err = tx.UpdateAssessment(ctx, assessmentID, storage.AssessmentUpdates{
			Status:      &status,
			ValidatedAt: &now,
			WhereStatus: []domain.AssessmentStatus{
				domain.AssessmentStatusSubmittedForReview,
				domain.AssessmentStatusNeedsRework,
			},
		}); err != nil {
			return fmt.Errorf("could not update assessment: %w", err)
		}
		if a == nil {
			return serrors.With(serrors.ErrBadRequest, "Assessment is already finalized")
		}
		if _, err = tx.AddJob(ctx, notification.ValidatedJobArgs{AssessmentID: assessmentID}, nil); err != nil {
			return fmt.Errorf("could not enqueue validation notification: %w", err)
		}
		if _, err = tx.AddJob(ctx, intelligence.ClassifyJobArgs{AssessmentID: assessmentID}, nil); err != nil {
			return fmt.Errorf("could not enqueue classification: %w", err)
		}

		result = &WorkflowResult{
			Success:      true,
			Message:      "Assessment finalized successfully",
			AssessmentID: assessmentID,
			NewStatus:    a.Status,
			ReworkCount:  a.ReworkCount,
			ValidatedAt:  &now,
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.AssessmentTransitions.WithLabelValues(string(domain.AssessmentStatusValidated)).Inc()
	logger.Info(ctx, "assessment finalized",
		zap.Int64("assessment_id", int64(assessmentID)),
		zap.Int64("assessor_id", int64(assessor.ID)))

	return result, nil
}

// New creates an assessor Service.
func New(storage storage.Storage) Service {
	return &service{storage: storage, now: time.Now}
}
