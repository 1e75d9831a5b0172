// Package lookups serves governance areas and barangays from a read-through
// cache.
package lookups

import (
	"context"
	"fmt"
	"time"

	"vantage/internal/config"
	"vantage/pkg/cache"
	"vantage/pkg/domain"
	"vantage/pkg/storage"
)

// Options configures caching of lookup lists.
type Options struct {
	TTL time.Duration
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{TTL: cfg.Redis.LookupTTL}
}

var (
	areasKey     = cache.Key("lookups", "governance_areas") //nolint: gochecknoglobals
	barangaysKey = cache.Key("lookups", "barangays")        //nolint: gochecknoglobals
)

type service struct {
	options Options
	storage storage.Storage
	cache   cache.Cache
}

var _ Service = (*service)(nil)

func (s service) GovernanceAreas(ctx context.Context) ([]domain.GovernanceArea, error) {
	areas, err := cache.Remember(ctx, s.cache, areasKey, s.options.TTL, func() ([]domain.GovernanceArea, error) {
		return s.storage.GovernanceAreas(ctx)
	})
	if err != nil {
		return nil, fmt.Errorf("could not list governance areas: %w", err)
	}

	return areas, nil
}

func (s service) Barangays(ctx context.Context) ([]domain.Barangay, error) {
	barangays, err := cache.Remember(ctx, s.cache, barangaysKey, s.options.TTL, func() ([]domain.Barangay, error) {
		return s.storage.Barangays(ctx)
	})
	if err != nil {
		return nil, fmt.Errorf("could not list barangays: %w", err)
	}

	return barangays, nil
}

func (s service) Invalidate(ctx context.Context) error {
	return s.cache.Del(ctx, areasKey, barangaysKey)
}

// New creates a lookups Service.
func New(storage storage.Storage, c cache.Cache, options Options) Service {
	return &service{options: options, storage: storage, cache: c}
}
