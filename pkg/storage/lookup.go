package storage

import (
	"context"

	"vantage/pkg/domain"
)

// LookupStorage persists the reference data BLGU users answer against.
type LookupStorage interface {
	// GovernanceAreas lists all areas ordered by id.
	GovernanceAreas(ctx context.Context) ([]domain.GovernanceArea, error)
	// GovernanceAreaByID returns nil when the area does not exist.
	GovernanceAreaByID(ctx context.Context, id domain.GovernanceAreaID) (*domain.GovernanceArea, error)
	// Barangays lists all barangays ordered by id.
	Barangays(ctx context.Context) ([]domain.Barangay, error)
	// BarangayByID returns nil when the barangay does not exist.
	BarangayByID(ctx context.Context, id domain.BarangayID) (*domain.Barangay, error)
	// Indicators lists indicators ordered by governance area and id. When no
	// area is given all indicators are returned.
	Indicators(ctx context.Context, areaIDs ...domain.GovernanceAreaID) ([]domain.Indicator, error)
	// IndicatorByID returns nil when the indicator does not exist.
	IndicatorByID(ctx context.Context, id domain.IndicatorID) (*domain.Indicator, error)

	// UpsertGovernanceAreas inserts areas, updating the type of existing names.
	UpsertGovernanceAreas(ctx context.Context, areas ...domain.GovernanceArea) ([]domain.GovernanceArea, error)
	// UpsertBarangays inserts barangays, keeping existing names.
	UpsertBarangays(ctx context.Context, barangays ...domain.Barangay) ([]domain.Barangay, error)
	// UpsertIndicators inserts indicators keyed by (area, name), updating the
	// description, schema and parent of existing rows.
	UpsertIndicators(ctx context.Context, indicators ...domain.Indicator) ([]domain.Indicator, error)
}
