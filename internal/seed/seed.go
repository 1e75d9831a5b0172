// Package seed loads the SGLGB reference data and the first system admin.
package seed

import (
	"context"
	_ "embed"
	"fmt"
	"strings"

	"vantage/internal/auth"
	"vantage/internal/config"
	"vantage/internal/lookups"
	"vantage/pkg/domain"
	"vantage/pkg/logger"
	"vantage/pkg/serrors"
	"vantage/pkg/storage"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

//go:embed data/sglgb.yaml
var defaultData []byte

// Data is the content of a seed file.
type Data struct {
	GovernanceAreas []Area   `yaml:"governanceAreas"`
	Barangays       []string `yaml:"barangays"`
}

// Area is a governance area with its indicator tree.
type Area struct {
	Name       string          `yaml:"name"`
	Type       domain.AreaType `yaml:"type"`
	Indicators []IndicatorSpec `yaml:"indicators"`
}

// IndicatorSpec describes one indicator and its sub-indicators.
type IndicatorSpec struct {
	Name        string          `yaml:"name"`
	Description string          `yaml:"description"`
	FormSchema  map[string]any  `yaml:"formSchema"`
	Children    []IndicatorSpec `yaml:"children"`
}

// Parse decodes and validates a seed file.
func Parse(b []byte) (*Data, error) {
	var data Data
	if err := yaml.Unmarshal(b, &data); err != nil {
		return nil, fmt.Errorf("could not decode seed data: %w", err)
	}

	for _, area := range data.GovernanceAreas {
		if strings.TrimSpace(area.Name) == "" {
			return nil, serrors.With(serrors.ErrBadRequest, "governance area without a name")
		}
		if area.Type != domain.AreaTypeCore && area.Type != domain.AreaTypeEssential {
			return nil, serrors.With(serrors.ErrBadRequest, "governance area %q has unknown type %q", area.Name, area.Type)
		}
		if err := validateIndicators(area.Name, area.Indicators, map[string]struct{}{}); err != nil {
			return nil, err
		}
	}

	return &data, nil
}

// validateIndicators rejects names used twice within an area, since
// indicators are keyed by (area, name).
func validateIndicators(area string, specs []IndicatorSpec, seen map[string]struct{}) error {
	for _, spec := range specs {
		if strings.TrimSpace(spec.Name) == "" {
			return serrors.With(serrors.ErrBadRequest, "indicator without a name in %q", area)
		}
		if _, dup := seen[spec.Name]; dup {
			return serrors.With(serrors.ErrBadRequest, "duplicate indicator %q in %q", spec.Name, area)
		}
		seen[spec.Name] = struct{}{}
		if err := validateIndicators(area, spec.Children, seen); err != nil {
			return err
		}
	}

	return nil
}

// Default returns the data bundled with the binary.
func Default() (*Data, error) {
	return Parse(defaultData)
}

// Options configures the first system admin.
type Options struct {
	SuperuserEmail    string
	SuperuserPassword string
}

// NewOptions builds Options from the application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		SuperuserEmail:    cfg.Seed.SuperuserEmail,
		SuperuserPassword: cfg.Seed.SuperuserPassword,
	}
}

// Summary reports what a run wrote.
type Summary struct {
	GovernanceAreas  int
	Barangays        int
	Indicators       int
	SuperuserCreated bool
}

// Seeder writes seed data. Runs are idempotent.
type Seeder struct {
	storage storage.Storage
	lookups lookups.Service
	options Options
}

// New creates a Seeder. lookups may be nil when no cache needs invalidating.
func New(storage storage.Storage, lookups lookups.Service, options Options) *Seeder {
	return &Seeder{storage: storage, lookups: lookups, options: options}
}

// Run upserts data and creates the superuser in a single transaction.
func (s *Seeder) Run(ctx context.Context, data *Data) (Summary, error) {
	ctx = logger.Named(ctx, "seed")
	var summary Summary

	err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		summary = Summary{}

		areas := make([]domain.GovernanceArea, 0, len(data.GovernanceAreas))
		for _, a := range data.GovernanceAreas {
			areas = append(areas, domain.GovernanceArea{Name: a.Name, AreaType: a.Type})
		}
		storedAreas, err := tx.UpsertGovernanceAreas(ctx, areas...)
		if err != nil {
			return err
		}
		areaIDs := make(map[string]domain.GovernanceAreaID, len(storedAreas))
		for _, a := range storedAreas {
			areaIDs[a.Name] = a.ID
		}
		summary.GovernanceAreas = len(storedAreas)

		barangays := make([]domain.Barangay, 0, len(data.Barangays))
		for _, name := range data.Barangays {
			barangays = append(barangays, domain.Barangay{Name: name})
		}
		storedBarangays, err := tx.UpsertBarangays(ctx, barangays...)
		if err != nil {
			return err
		}
		summary.Barangays = len(storedBarangays)

		for _, a := range data.GovernanceAreas {
			areaID, ok := areaIDs[a.Name]
			if !ok {
				return fmt.Errorf("governance area %q was not stored", a.Name)
			}
			n, err := upsertTree(ctx, tx, areaID, a.Indicators)
			if err != nil {
				return err
			}
			summary.Indicators += n
		}

		created, err := s.ensureSuperuser(ctx, tx)
		if err != nil {
			return err
		}
		summary.SuperuserCreated = created

		return nil
	})
	if err != nil {
		return Summary{}, fmt.Errorf("could not seed database: %w", err)
	}

	if s.lookups != nil {
		if err := s.lookups.Invalidate(ctx); err != nil {
			logger.Warn(ctx, "could not invalidate lookup cache", zap.Error(err))
		}
	}

	logger.Info(ctx, "seeded database",
		zap.Int("governanceAreas", summary.GovernanceAreas),
		zap.Int("barangays", summary.Barangays),
		zap.Int("indicators", summary.Indicators),
		zap.Bool("superuserCreated", summary.SuperuserCreated))

	return summary, nil
}

type pendingIndicator struct {
	spec     IndicatorSpec
	parentID *domain.IndicatorID
}

// upsertTree stores the indicators of one area level by level so every child
// can reference its parent's id.
func upsertTree(ctx context.Context,
	tx storage.AllStorage,
	areaID domain.GovernanceAreaID,
	specs []IndicatorSpec) (int, error) {
	level := make([]pendingIndicator, 0, len(specs))
	for _, spec := range specs {
		level = append(level, pendingIndicator{spec: spec})
	}

	total := 0
	for len(level) > 0 {
		indicators := make([]domain.Indicator, 0, len(level))
		for _, p := range level {
			indicators = append(indicators, domain.Indicator{
				Name:             p.spec.Name,
				Description:      p.spec.Description,
				FormSchema:       p.spec.FormSchema,
				GovernanceAreaID: areaID,
				ParentID:         p.parentID,
			})
		}
		stored, err := tx.UpsertIndicators(ctx, indicators...)
		if err != nil {
			return 0, err
		}
		total += len(stored)

		ids := make(map[string]domain.IndicatorID, len(stored))
		for _, ind := range stored {
			ids[ind.Name] = ind.ID
		}

		next := make([]pendingIndicator, 0)
		for _, p := range level {
			if len(p.spec.Children) == 0 {
				continue
			}
			id, ok := ids[p.spec.Name]
			if !ok {
				return 0, fmt.Errorf("indicator %q was not stored", p.spec.Name)
			}
			for _, child := range p.spec.Children {
				next = append(next, pendingIndicator{spec: child, parentID: &id})
			}
		}
		level = next
	}

	return total, nil
}

func (s *Seeder) ensureSuperuser(ctx context.Context, tx storage.AllStorage) (bool, error) {
	email := strings.TrimSpace(s.options.SuperuserEmail)
	if email == "" || s.options.SuperuserPassword == "" {
		logger.Info(ctx, "superuser credentials not configured, skipping")

		return false, nil
	}

	existing, err := tx.UserByEmail(ctx, email)
	if err != nil {
		return false, err
	}
	if existing != nil {
		return false, nil
	}

	hash, err := auth.HashPassword(s.options.SuperuserPassword)
	if err != nil {
		return false, err
	}

	if _, err := tx.StoreUser(ctx, domain.User{
		Email:          email,
		Name:           "System Administrator",
		Role:           domain.RoleSystemAdmin,
		HashedPassword: hash,
		IsActive:       true,
		IsSuperuser:    true,
	}); err != nil {
		return false, err
	}

	return true, nil
}
