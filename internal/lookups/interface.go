package lookups

import (
	"context"

	"vantage/pkg/domain"
)

// Service serves the reference lists shown in forms and filters.
//
//go:generate mockgen -package mocklookups -source=interface.go -destination=mock/mocklookups.go *
type Service interface {
	GovernanceAreas(ctx context.Context) ([]domain.GovernanceArea, error)
	Barangays(ctx context.Context) ([]domain.Barangay, error)
	// Invalidate drops the cached lists, e.g. after seeding.
	Invalidate(ctx context.Context) error
}
