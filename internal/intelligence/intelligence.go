// Package intelligence classifies validated assessments with the SGLGB 3+1
// rule and turns the results into AI generated recommendations.
package intelligence

import (
	"context"
	"fmt"

	"vantage/internal/config"
	"vantage/pkg/domain"
	"vantage/pkg/insights"
	"vantage/pkg/logger"
	"vantage/pkg/serrors"
	"vantage/pkg/storage"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// Options configures the intelligence service.
type Options struct {
	InsightMaxAttempts int
}

// NewOptions builds Options from the application config.
func NewOptions(cfg *config.Config) Options {
	return Options{InsightMaxAttempts: cfg.Worker.InsightMaxAttempts}
}

type service struct {
	storage   storage.Storage
	generator insights.Generator
	options   Options
}

var _ Service = (*service)(nil)

func (s service) Classify(ctx context.Context, assessmentID domain.AssessmentID) (*Result, error) {
	assessment, err := s.storage.AssessmentByID(ctx, assessmentID)
	if err != nil {
		return nil, fmt.Errorf("could not get assessment: %w", err)
	}
	if assessment == nil {
		return nil, serrors.With(serrors.ErrNotFound, "Assessment %d not found", assessmentID)
	}

	areas, err := s.storage.GovernanceAreas(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not get governance areas: %w", err)
	}
	indicators, err := s.storage.Indicators(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not get indicators: %w", err)
	}
	responses, err := s.storage.ResponsesByAssessment(ctx, assessmentID)
	if err != nil {
		return nil, fmt.Errorf("could not get responses: %w", err)
	}

	status, results := Classify(areas, indicators, responses)

	if _, err = s.storage.UpdateAssessment(ctx, assessmentID, storage.AssessmentUpdates{
		FinalComplianceStatus: &status,
		AreaResults:           results,
	}); err != nil {
		return nil, fmt.Errorf("could not store classification: %w", err)
	}

	logger.Info(ctx, "assessment classified",
		zap.Int64("assessment_id", int64(assessmentID)),
		zap.String("final_compliance_status", string(status)))

	return &Result{AssessmentID: assessmentID, FinalComplianceStatus: status, AreaResults: results}, nil
}

func (s service) validatedAssessment(ctx context.Context, assessmentID domain.AssessmentID) (*domain.Assessment, error) {
	assessment, err := s.storage.AssessmentByID(ctx, assessmentID)
	if err != nil {
		return nil, fmt.Errorf("could not get assessment: %w", err)
	}
	if assessment == nil {
		return nil, serrors.With(serrors.ErrNotFound, "Assessment %d not found", assessmentID)
	}
	if assessment.Status != domain.AssessmentStatusValidated {
		return nil, serrors.With(serrors.ErrBadRequest,
			"Assessment %d is not validated. Status: %s", assessmentID, assessment.Status)
	}

	return assessment, nil
}

func (s service) CachedInsights(ctx context.Context, assessmentID domain.AssessmentID) (*domain.Insights, error) {
	assessment, err := s.validatedAssessment(ctx, assessmentID)
	if err != nil {
		return nil, err
	}

	return assessment.AIRecommendations, nil
}

func (s service) EnqueueInsights(ctx context.Context, assessmentID domain.AssessmentID) (bool, error) {
	var added bool
	err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		var err error
		added, err = tx.AddJob(ctx, InsightsJobArgs{AssessmentID: assessmentID}, s.insertOpts())

		return err
	})
	if err != nil {
		return false, fmt.Errorf("could not enqueue insights job: %w", err)
	}

	return added, nil
}

func (s service) insertOpts() *river.InsertOpts {
	if s.options.InsightMaxAttempts <= 0 {
		return nil
	}
	opts := InsightsJobArgs{}.InsertOpts()
	opts.MaxAttempts = s.options.InsightMaxAttempts

	return &opts
}

func (s service) Insights(ctx context.Context, assessmentID domain.AssessmentID) (*domain.Insights, error) {
	assessment, err := s.validatedAssessment(ctx, assessmentID)
	if err != nil {
		return nil, err
	}
	if assessment.AIRecommendations != nil {
		return assessment.AIRecommendations, nil
	}
	if s.generator == nil {
		return nil, serrors.With(serrors.ErrUnavailable, "insight generation is not configured")
	}

	req, err := s.buildRequest(ctx, assessment)
	if err != nil {
		return nil, err
	}

	result, err := s.generator.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("could not generate insights: %w", err)
	}

	if _, err = s.storage.UpdateAssessment(ctx, assessmentID, storage.AssessmentUpdates{
		AIRecommendations: result,
	}); err != nil {
		return nil, fmt.Errorf("could not store insights: %w", err)
	}

	logger.Info(ctx, "insights generated",
		zap.Int64("assessment_id", int64(assessmentID)),
		zap.Int("recommendations", len(result.Recommendations)))

	return result, nil
}

func (s service) buildRequest(ctx context.Context, assessment *domain.Assessment) (insights.Request, error) {
	req := insights.Request{
		AssessmentID:   assessment.ID,
		AssessmentYear: assessment.CreatedAt.Year(),
		AreaResults:    assessment.AreaResults,
	}
	if assessment.ValidatedAt != nil {
		req.AssessmentYear = assessment.ValidatedAt.Year()
	}
	if assessment.FinalComplianceStatus != nil {
		req.FinalComplianceStatus = *assessment.FinalComplianceStatus
	}

	user, err := s.storage.UserByID(ctx, assessment.BLGUUserID)
	if err != nil {
		return req, fmt.Errorf("could not get user: %w", err)
	}
	if user != nil && user.BarangayID != nil {
		b, err := s.storage.BarangayByID(ctx, *user.BarangayID)
		if err != nil {
			return req, fmt.Errorf("could not get barangay: %w", err)
		}
		if b != nil {
			req.BarangayName = b.Name
		}
	}

	responses, err := s.storage.ResponsesByAssessment(ctx, assessment.ID)
	if err != nil {
		return req, fmt.Errorf("could not get responses: %w", err)
	}

	var failed []domain.AssessmentResponse
	for _, r := range responses {
		if r.ValidationStatus != nil && *r.ValidationStatus != domain.ValidationStatusPass {
			failed = append(failed, r)
		}
	}
	if len(failed) == 0 {
		return req, nil
	}

	areas, err := s.storage.GovernanceAreas(ctx)
	if err != nil {
		return req, fmt.Errorf("could not get governance areas: %w", err)
	}
	areaNames := make(map[domain.GovernanceAreaID]string, len(areas))
	for _, a := range areas {
		areaNames[a.ID] = a.Name
	}

	indicators, err := s.storage.Indicators(ctx)
	if err != nil {
		return req, fmt.Errorf("could not get indicators: %w", err)
	}
	byID := make(map[domain.IndicatorID]domain.Indicator, len(indicators))
	for _, i := range indicators {
		byID[i.ID] = i
	}

	ids := make([]domain.ResponseID, 0, len(failed))
	for _, r := range failed {
		ids = append(ids, r.ID)
	}
	comments, err := s.storage.FeedbackByResponses(ctx, false, ids...)
	if err != nil {
		return req, fmt.Errorf("could not get feedback: %w", err)
	}
	feedback := make(map[domain.ResponseID][]string)
	for _, c := range comments {
		feedback[c.ResponseID] = append(feedback[c.ResponseID], c.Comment)
	}

	for _, r := range failed {
		indicator := byID[r.IndicatorID]
		req.Findings = append(req.Findings, insights.Finding{
			Area:        areaNames[indicator.GovernanceAreaID],
			Indicator:   indicator.Name,
			Description: indicator.Description,
			Status:      *r.ValidationStatus,
			Feedback:    feedback[r.ID],
		})
	}

	return req, nil
}

// New creates an intelligence Service. A nil generator disables insight
// generation.
func New(storage storage.Storage, generator insights.Generator, options Options) Service {
	return &service{storage: storage, generator: generator, options: options}
}
