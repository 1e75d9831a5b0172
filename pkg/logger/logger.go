// Package logger provides a structured logging facility using zap logger.
// It offers context-aware logging capabilities, environment-specific configuration,
// and helper functions for different log levels.
package logger

import (
	"context"
	"log/slog"

	"go.uber.org/zap"
	"go.uber.org/zap/exp/zapslog"
	"go.uber.org/zap/zapcore"
)

const (
	// DevelopmentEnvironment represents the development environment setting.
	// In this environment, the logger is configured with development settings (more verbose, human-readable).
	DevelopmentEnvironment = "development"

	// ProductionEnvironment represents the production environment setting.
	// In this environment, the logger is configured with production settings (less verbose, JSON format).
	ProductionEnvironment = "production"
)

var (
	// defaultLogger is the package-level logger instance used when no logger is found in context.
	defaultLogger *zap.Logger //nolint: gochecknoglobals
	// level is shared by the default logger and every logger derived from it.
	level = zap.NewAtomicLevel() //nolint: gochecknoglobals
)

// Setup initializes the default logger based on the environment.
// Production logs JSON at info level, development logs colored console output
// at debug level. The level can be changed afterwards with SetLevel.
func Setup(environment string) {
	cfg := zap.NewDevelopmentConfig()
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	if environment == ProductionEnvironment {
		cfg = zap.NewProductionConfig()
	}
	level.SetLevel(cfg.Level.Level())
	cfg.Level = level

	l, err := cfg.Build()
	if err != nil {
		l = zap.NewNop()
	}
	defaultLogger = l
}

// SetLevel changes the level of the default logger, e.g. "warn". An empty
// level keeps the current one.
func SetLevel(text string) error {
	if text == "" {
		return nil
	}

	return level.UnmarshalText([]byte(text)) //nolint: wrapcheck
}

// key is a custom type used as a context key for storing and retrieving logger instances.
type key struct{}

// Get retrieves a logger from the provided context.
// If no logger is found in the context, it returns the default logger.
func Get(ctx context.Context) *zap.Logger {
	if logger, _ := ctx.Value(key{}).(*zap.Logger); logger != nil {
		return logger
	}

	return defaultLogger
}

// WithLogger creates a new context with the provided logger attached.
// This allows for context-specific logging with custom logger instances.
func WithLogger(ctx context.Context, logger *zap.Logger) context.Context {
	return context.WithValue(ctx, key{}, logger)
}

// Named returns a context whose logger carries name, e.g. "river" or "seed".
func Named(ctx context.Context, name string) context.Context {
	return WithLogger(ctx, Get(ctx).Named(name))
}

// WithFields creates a new context with a logger that includes the specified fields.
// This is useful for adding structured data to all log messages within a context.
func WithFields(ctx context.Context, fields ...zapcore.Field) context.Context {
	return WithLogger(ctx, Get(ctx).With(fields...))
}

// Slog returns a *slog.Logger backed by the zap logger in ctx. It is used by
// libraries that only accept slog, such as the river job queue.
func Slog(ctx context.Context) *slog.Logger {
	return slog.New(zapslog.NewHandler(Get(ctx).Core()))
}

// IsDebug checks if the logger in the context is configured at debug level.
func IsDebug(ctx context.Context) bool {
	return Get(ctx).Level() == zap.DebugLevel
}

// Debug logs a message at debug level with the given fields.
func Debug(ctx context.Context, msg string, fields ...zapcore.Field) {
	Get(ctx).Debug(msg, fields...)
}

// Info logs a message at info level with the given fields.
func Info(ctx context.Context, msg string, fields ...zapcore.Field) {
	Get(ctx).Info(msg, fields...)
}

// Warn logs a message at warn level with the given fields.
func Warn(ctx context.Context, msg string, fields ...zapcore.Field) {
	Get(ctx).Warn(msg, fields...)
}

// Error logs a message at error level with the given fields.
func Error(ctx context.Context, msg string, fields ...zapcore.Field) {
	Get(ctx).Error(msg, fields...)
}

// Fatal logs a message at fatal level with the given fields.
func Fatal(ctx context.Context, msg string, fields ...zapcore.Field) {
	Get(ctx).Fatal(msg, fields...)
}
