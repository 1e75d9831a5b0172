package intelligence

import (
	"context"

	"vantage/pkg/domain"
)

// Result is the stored outcome of a classification.
type Result struct {
	AssessmentID          domain.AssessmentID     `json:"assessment_id"`
	FinalComplianceStatus domain.ComplianceStatus `json:"final_compliance_status"`
	AreaResults           domain.AreaResults      `json:"area_results"`
}

// Service classifies validated assessments and produces AI insights for them.
//
//go:generate mockgen -package mockintelligence -source=interface.go -destination=mock/mockintelligence.go *
type Service interface {
	// Classify computes and stores the compliance status of the assessment.
	Classify(ctx context.Context, assessmentID domain.AssessmentID) (*Result, error)
	// Insights returns stored insights or generates and stores new ones.
	// Only validated assessments are accepted.
	Insights(ctx context.Context, assessmentID domain.AssessmentID) (*domain.Insights, error)
	// CachedInsights returns stored insights, or nil when none exist yet.
	CachedInsights(ctx context.Context, assessmentID domain.AssessmentID) (*domain.Insights, error)
	// EnqueueInsights schedules insight generation. It reports false when an
	// equivalent job is already pending.
	EnqueueInsights(ctx context.Context, assessmentID domain.AssessmentID) (bool, error)
}
