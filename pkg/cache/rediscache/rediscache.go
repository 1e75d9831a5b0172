// Package rediscache provides a cache.Cache backed by redis.
package rediscache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"vantage/pkg/cache"

	"github.com/redis/go-redis/v9"
)

// Options configures the redis connection.
type Options struct {
	Addr     string
	Password string
	DB       int
}

// Cache implements cache.Cache on top of a redis client.
type Cache struct {
	rdb *redis.Client
}

var _ cache.Cache = (*Cache)(nil)

// New connects to redis and verifies the connection with a PING.
func New(ctx context.Context, opts Options) (*Cache, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()

		return nil, fmt.Errorf("could not ping redis: %w", err)
	}

	return &Cache{rdb: rdb}, nil
}

func (c *Cache) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := c.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, cache.ErrMiss
	}
	if err != nil {
		return nil, fmt.Errorf("could not get %q: %w", key, err)
	}

	return val, nil
}

func (c *Cache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := c.rdb.Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("could not set %q: %w", key, err)
	}

	return nil
}

func (c *Cache) Del(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("could not delete keys: %w", err)
	}

	return nil
}

func (c *Cache) Exists(ctx context.Context, key string) (bool, error) {
	n, err := c.rdb.Exists(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("could not check %q: %w", key, err)
	}

	return n > 0, nil
}

func (c *Cache) Ping(ctx context.Context) error {
	return c.rdb.Ping(ctx).Err()
}

// Close closes the underlying connection pool.
func (c *Cache) Close() error {
	return c.rdb.Close()
}
