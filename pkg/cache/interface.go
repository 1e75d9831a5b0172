// Package cache defines a small key/value cache abstraction used for lookup
// lists and the access token denylist.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"vantage/pkg/serrors"
)

// ErrMiss is returned by Get when the key is absent or expired.
var ErrMiss = serrors.With(serrors.ErrNotFound, "cache miss") //nolint: gochecknoglobals

// Cache stores opaque byte values with a TTL.
//
//go:generate mockgen -package mockcache -source=interface.go -destination=mock/mockcache.go *
type Cache interface {
	// Get returns the value of key or ErrMiss.
	Get(ctx context.Context, key string) ([]byte, error)
	// Set stores value under key. A zero ttl keeps the key forever.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	// Del removes keys. Missing keys are ignored.
	Del(ctx context.Context, keys ...string) error
	// Exists reports whether key is present.
	Exists(ctx context.Context, key string) (bool, error)
	// Ping checks connectivity to the backing store.
	Ping(ctx context.Context) error
}

// Remember returns the JSON value cached under key, or calls load, caches its
// result for ttl and returns it. Cache failures never fail the call.
func Remember[T any](ctx context.Context, c Cache, key string, ttl time.Duration, load func() (T, error)) (T, error) {
	if b, err := c.Get(ctx, key); err == nil {
		var v T
		if err := json.Unmarshal(b, &v); err == nil {
			return v, nil
		}
	}

	v, err := load()
	if err != nil {
		return v, err
	}

	if b, err := json.Marshal(v); err == nil {
		_ = c.Set(ctx, key, b, ttl)
	}

	return v, nil
}

// IsMiss reports whether err is a cache miss.
func IsMiss(err error) bool { return errors.Is(err, ErrMiss) }

// Key joins parts into a namespaced cache key.
func Key(parts ...any) string {
	key := "vantage"
	for _, p := range parts {
		key += fmt.Sprintf(":%v", p)
	}

	return key
}
