package assessment

import (
	"context"
	"fmt"
	"strings"

	"vantage/internal/notification"
	"vantage/pkg/domain"
	"vantage/pkg/events"
	"vantage/pkg/formschema"
	"vantage/pkg/logger"
	"vantage/pkg/metrics"
	"vantage/pkg/serrors"
	"vantage/pkg/storage"

	"go.uber.org/zap"
)

const movRequiredMessage = "YES answer requires Means of Verification (MOV)"

func (s service) GetResponse(ctx context.Context, user domain.User, id domain.ResponseID) (*ResponseView, error) {
	r, _, err := s.ownResponse(ctx, user, id)
	if err != nil {
		return nil, err
	}

	movs, err := s.storage.MOVsByResponses(ctx, r.ID)
	if err != nil {
		return nil, fmt.Errorf("could not get movs: %w", err)
	}
	comments, err := s.storage.FeedbackByResponses(ctx, false, r.ID)
	if err != nil {
		return nil, fmt.Errorf("could not get feedback: %w", err)
	}

	data := &responseData{
		movs:     map[domain.ResponseID][]domain.MOV{r.ID: movs},
		feedback: map[domain.ResponseID][]domain.FeedbackComment{r.ID: comments},
	}

	return data.view(*r), nil
}

func (s service) CreateResponse(ctx context.Context,
	user domain.User,
	params CreateResponseParams) (*domain.AssessmentResponse, error) {
	a, err := s.storage.AssessmentByUserID(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("could not get assessment: %w", err)
	}
	if a == nil {
		return nil, serrors.With(serrors.ErrNotFound, "Assessment not found for current user")
	}
	if params.AssessmentID != 0 && params.AssessmentID != a.ID {
		return nil, serrors.With(serrors.ErrForbidden, "Cannot create response for different assessment")
	}

	indicator, err := s.storage.IndicatorByID(ctx, params.IndicatorID)
	if err != nil {
		return nil, fmt.Errorf("could not get indicator: %w", err)
	}
	if indicator == nil {
		return nil, serrors.With(serrors.ErrNotFound, "Indicator not found")
	}

	data := params.ResponseData
	if data == nil {
		data = domain.ResponseData{}
	}

	r, err := s.storage.StoreResponse(ctx, domain.AssessmentResponse{
		AssessmentID: a.ID,
		IndicatorID:  indicator.ID,
		ResponseData: data,
		IsCompleted:  formschema.IsComplete(indicator.FormSchema, data, nil),
	})
	if err != nil {
		return nil, fmt.Errorf("could not store response: %w", err)
	}

	return r, nil
}

func (s service) UpdateResponse(ctx context.Context,
	user domain.User,
	id domain.ResponseID,
	params UpdateResponseParams) (*domain.AssessmentResponse, error) {
	r, a, err := s.ownResponse(ctx, user, id)
	if err != nil {
		return nil, err
	}
	if !a.Status.Editable() {
		return nil, serrors.With(serrors.ErrBadRequest, "Assessment cannot be modified in its current status")
	}
	if params.ResponseData == nil {
		return r, nil
	}

	indicator, err := s.storage.IndicatorByID(ctx, r.IndicatorID)
	if err != nil {
		return nil, fmt.Errorf("could not get indicator: %w", err)
	}
	if indicator == nil {
		return nil, serrors.With(serrors.ErrNotFound, "Indicator not found")
	}

	if res := formschema.Validate(indicator.FormSchema, params.ResponseData); !res.IsValid {
		return nil, serrors.With(serrors.ErrBadRequest,
			"Response data validation failed: %s", strings.Join(res.Errors, ", "))
	}

	movs, err := s.storage.MOVsByResponses(ctx, r.ID)
	if err != nil {
		return nil, fmt.Errorf("could not get movs: %w", err)
	}
	completed := formschema.IsComplete(indicator.FormSchema, params.ResponseData, movs)

	updated, err := s.storage.UpdateResponse(ctx, r.ID, storage.ResponseUpdates{
		ResponseData:          params.ResponseData,
		IsCompleted:           &completed,
		WhereAssessmentStatus: domain.EditableStatuses(),
	})
	if err != nil {
		return nil, fmt.Errorf("could not update response: %w", err)
	}
	// the assessment left an editable status after it was read
	if updated == nil {
		return nil, serrors.With(serrors.ErrBadRequest, "Assessment cannot be modified in its current status")
	}

	return updated, nil
}

func (s service) Submit(ctx context.Context, user domain.User) (*SubmitResult, error) {
	a, err := s.storage.AssessmentByUserID(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("could not get assessment: %w", err)
	}
	if a == nil {
		return nil, serrors.With(serrors.ErrNotFound, "Assessment not found for current user")
	}

	result := &SubmitResult{Errors: []SubmissionError{}, Warnings: []SubmissionError{}}
	if !a.Status.Editable() {
		result.Errors = append(result.Errors, SubmissionError{
			Error: fmt.Sprintf("Assessment must be in DRAFT or NEEDS_REWORK status to submit. Current status: %s", a.Status),
		})

		return result, nil
	}

	flagged, err := s.preliminaryCheck(ctx, a.ID)
	if err != nil {
		return nil, err
	}
	result.Errors = append(result.Errors, flagged...)
	result.IsValid = len(result.Errors) == 0
	if !result.IsValid {
		return result, nil
	}

	now := s.now().UTC()
	status := domain.AssessmentStatusSubmittedForReview
	err = s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		updated, err := tx.UpdateAssessment(ctx, a.ID, storage.AssessmentUpdates{
			Status:      &status,
			SubmittedAt: &now,
			WhereStatus: domain.EditableStatuses(),
		})
		if err != nil {
			return err
		}
		if updated == nil {
			return serrors.With(serrors.ErrBadRequest, "Assessment has already been submitted")
		}

		_, err = tx.AddJob(ctx, notification.EventJobArgs{
			Type:         events.TypeSubmitted,
			AssessmentID: a.ID,
			OccurredAt:   now,
		}, nil)

		return err
	})
	if err != nil {
		return nil, fmt.Errorf("could not submit assessment: %w", err)
	}

	metrics.AssessmentTransitions.WithLabelValues(string(status)).Inc()
	logger.Info(ctx, "assessment submitted", zap.Int64("assessment_id", int64(a.ID)))

	return result, nil
}

// preliminaryCheck flags responses with a YES answer and no MOV.
func (s service) preliminaryCheck(ctx context.Context, assessmentID domain.AssessmentID) ([]SubmissionError, error) {
	responses, err := s.storage.ResponsesByAssessment(ctx, assessmentID)
	if err != nil {
		return nil, fmt.Errorf("could not get responses: %w", err)
	}

	var candidates []domain.AssessmentResponse
	for _, r := range responses {
		if len(r.ResponseData) > 0 && formschema.HasYesAnswer(r.ResponseData) {
			candidates = append(candidates, r)
		}
	}
	if len(candidates) == 0 {
		return nil, nil
	}

	ids := make([]domain.ResponseID, 0, len(candidates))
	for _, r := range candidates {
		ids = append(ids, r.ID)
	}
	movs, err := s.storage.MOVsByResponses(ctx, ids...)
	if err != nil {
		return nil, fmt.Errorf("could not get movs: %w", err)
	}
	withMOV := make(map[domain.ResponseID]bool, len(movs))
	for _, m := range movs {
		withMOV[m.ResponseID] = true
	}

	var flagged []SubmissionError
	for _, r := range candidates {
		if withMOV[r.ID] {
			continue
		}

		indicator, err := s.storage.IndicatorByID(ctx, r.IndicatorID)
		if err != nil {
			return nil, fmt.Errorf("could not get indicator: %w", err)
		}
		e := SubmissionError{IndicatorID: r.IndicatorID, Error: movRequiredMessage}
		if indicator != nil {
			e.IndicatorName = indicator.Name
		}
		flagged = append(flagged, e)
	}

	return flagged, nil
}
