package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"vantage/internal/config"

	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsAndOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
environment: production
http:
  addr: ":9090"
  allowedOrigins: ["http://localhost:3000"]
kafka:
  brokers: ["kafka:9092"]
`), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	require.Equal(t, "production", cfg.Environment)
	require.Equal(t, ":9090", cfg.HTTP.Addr)
	require.Equal(t, []string{"http://localhost:3000"}, cfg.HTTP.AllowedOrigins)
	require.Equal(t, []string{"kafka:9092"}, cfg.Kafka.Brokers)
	require.Equal(t, 192*time.Hour, cfg.JWT.AccessTokenTTL)
	require.Equal(t, int64(100*1024*1024), cfg.ObjectStorage.MaxFileSize)
	require.Equal(t, 4, cfg.Worker.InsightMaxAttempts)
	require.Equal(t, time.Minute, cfg.Worker.RetryBase)
	require.Contains(t, cfg.ObjectStorage.AllowedExtensions, ".pdf")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yml"))
	require.Error(t, err)
}
