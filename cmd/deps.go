package main

import (
	"context"

	"vantage/internal/assessment"
	"vantage/internal/assessor"
	"vantage/internal/auth"
	"vantage/internal/config"
	"vantage/internal/intelligence"
	"vantage/internal/lookups"
	"vantage/internal/notification"
	"vantage/internal/users"
	"vantage/pkg/cache"
	"vantage/pkg/cache/rediscache"
	"vantage/pkg/events"
	"vantage/pkg/events/kafkaevents"
	"vantage/pkg/insights"
	"vantage/pkg/insights/gemini"
	"vantage/pkg/logger"
	"vantage/pkg/objectstore/s3store"
	"vantage/pkg/storage/postgres"

	"go.uber.org/zap"
)

// getCache connects to redis, falling back to an in-process cache when no
// address is configured.
func getCache(ctx context.Context, cfg *config.Config) (cache.Cache, func()) {
	if cfg.Redis.Addr == "" {
		logger.Warn(ctx, "redis is not configured, using in-process cache")

		return cache.NewMemory(), func() {}
	}

	rc, err := rediscache.New(ctx, rediscache.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		logger.Fatal(ctx, "could not connect to redis", zap.Error(err))
	}

	return rc, func() {
		logger.Info(ctx, "closing redis client...")
		if err := rc.Close(); err != nil {
			logger.Warn(ctx, "could not close redis client", zap.Error(err))
		}
	}
}

func getObjectStore(ctx context.Context, cfg *config.Config) *s3store.Store {
	store, err := s3store.New(ctx, s3store.Options{
		Endpoint:        cfg.ObjectStorage.Endpoint,
		Region:          cfg.ObjectStorage.Region,
		AccessKeyID:     cfg.ObjectStorage.AccessKeyID,
		SecretAccessKey: cfg.ObjectStorage.SecretAccessKey,
		Bucket:          cfg.ObjectStorage.Bucket,
		UsePathStyle:    cfg.ObjectStorage.UsePathStyle,
		PresignExpiry:   cfg.ObjectStorage.PresignExpiry,
	})
	if err != nil {
		logger.Fatal(ctx, "could not create object storage client", zap.Error(err))
	}
	if err := store.EnsureBucket(ctx); err != nil {
		logger.Warn(ctx, "could not ensure MOV bucket", zap.String("bucket", cfg.ObjectStorage.Bucket), zap.Error(err))
	}

	return store
}

func getPublisher(ctx context.Context, cfg *config.Config) (events.Publisher, func()) {
	if len(cfg.Kafka.Brokers) == 0 {
		logger.Warn(ctx, "kafka is not configured, assessment events are discarded")

		return events.Discard{}, func() {}
	}

	publisher := kafkaevents.New(kafkaevents.Options{
		Brokers: cfg.Kafka.Brokers,
		Topic:   cfg.Kafka.Topic,
	})

	return publisher, func() {
		logger.Info(ctx, "closing kafka writer...")
		if err := publisher.Close(); err != nil {
			logger.Warn(ctx, "could not close kafka writer", zap.Error(err))
		}
	}
}

// getGenerator returns nil when no Gemini key is configured, which disables
// insight generation.
func getGenerator(ctx context.Context, cfg *config.Config) insights.Generator {
	if cfg.Gemini.APIKey == "" {
		logger.Warn(ctx, "gemini is not configured, insight generation is disabled")

		return nil
	}

	client, err := gemini.New(ctx, gemini.Options{
		APIKey: cfg.Gemini.APIKey,
		Model:  cfg.Gemini.Model,
	})
	if err != nil {
		logger.Fatal(ctx, "could not create gemini client", zap.Error(err))
	}

	return client
}

// services holds every domain service of the application.
type services struct {
	storage      *postgres.PgSQL
	cache        cache.Cache
	auth         auth.Service
	users        users.Service
	lookups      lookups.Service
	assessments  assessment.Service
	assessor     assessor.Service
	intelligence intelligence.Service
	notification notification.Service
}

// getServices builds the domain services on top of strg. The returned
// cleanup closes the cache and the event publisher.
func getServices(ctx context.Context, cfg *config.Config, strg *postgres.PgSQL, withObjectStore bool) (*services, func()) {
	c, closeCache := getCache(ctx, cfg)
	publisher, closePublisher := getPublisher(ctx, cfg)

	authSvc, err := auth.New(strg, c, auth.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create auth service", zap.Error(err))
	}

	svc := &services{
		storage:      strg,
		cache:        c,
		auth:         authSvc,
		users:        users.New(strg),
		lookups:      lookups.New(strg, c, lookups.NewOptions(cfg)),
		assessor:     assessor.New(strg),
		intelligence: intelligence.New(strg, getGenerator(ctx, cfg), intelligence.NewOptions(cfg)),
		notification: notification.New(strg, publisher),
	}
	if withObjectStore {
		svc.assessments = assessment.New(strg, getObjectStore(ctx, cfg), assessment.NewOptions(cfg))
	}

	return svc, func() {
		closePublisher()
		closeCache()
	}
}
