// Package insights defines the AI generator that turns a classified
// assessment into recommendations and capacity development needs.
package insights

import (
	"context"

	"vantage/pkg/domain"
)

// Finding is an indicator that did not pass validation.
type Finding struct {
	Area        string
	Indicator   string
	Description string
	Status      domain.ValidationStatus
	Feedback    []string // Feedback holds public assessor comments only.
}

// Request carries everything the generator needs about one assessment.
type Request struct {
	AssessmentID          domain.AssessmentID
	BarangayName          string
	AssessmentYear        int
	FinalComplianceStatus domain.ComplianceStatus
	AreaResults           domain.AreaResults
	Findings              []Finding
}

// Generator produces insights for an assessment.
//
//go:generate mockgen -package mockinsights -source=interface.go -destination=mock/mockinsights.go *
type Generator interface {
	// Generate returns the insights for req. Provider throttling is reported
	// as serrors.ErrRateLimited.
	Generate(ctx context.Context, req Request) (*domain.Insights, error)
}
