package s3store_test

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"testing"
	"time"

	"vantage/pkg/objectstore/s3store"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	minioUser     = "minioadmin"
	minioPassword = "minioadmin"
)

func startMinio(t *testing.T) string {
	t.Helper()
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "minio/minio:RELEASE.2024-01-16T16-07-38Z",
			ExposedPorts: []string{"9000/tcp"},
			Cmd:          []string{"server", "/data"},
			Env: map[string]string{
				"MINIO_ROOT_USER":     minioUser,
				"MINIO_ROOT_PASSWORD": minioPassword,
			},
			WaitingFor: wait.ForHTTP("/minio/health/live").WithPort("9000/tcp"),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "9000")
	require.NoError(t, err)

	return fmt.Sprintf("http://%s:%d", host, port.Int())
}

func newStore(t *testing.T, endpoint string) *s3store.Store {
	t.Helper()

	store, err := s3store.New(context.Background(), s3store.Options{
		Endpoint:        endpoint,
		Region:          "us-east-1",
		AccessKeyID:     minioUser,
		SecretAccessKey: minioPassword,
		Bucket:          "movs",
		UsePathStyle:    true,
		PresignExpiry:   5 * time.Minute,
	})
	require.NoError(t, err)

	return store
}

func TestStore_PresignOffline(t *testing.T) {
	store := newStore(t, "http://minio.local:9000")
	ctx := context.Background()

	put, err := store.PresignPut(ctx, "assessments/1/responses/2/u-report.pdf", "application/pdf", 42)
	require.NoError(t, err)
	require.Equal(t, http.MethodPut, put.Method)
	u, err := url.Parse(put.URL)
	require.NoError(t, err)
	require.Equal(t, "minio.local:9000", u.Host)
	require.Equal(t, "/movs/assessments/1/responses/2/u-report.pdf", u.Path)
	require.NotEmpty(t, u.Query().Get("X-Amz-Signature"))
	require.Equal(t, "300", u.Query().Get("X-Amz-Expires"))
	require.WithinDuration(t, time.Now().Add(5*time.Minute), put.ExpiresAt, time.Minute)

	get, err := store.PresignGet(ctx, "assessments/1/responses/2/u-report.pdf", "report.pdf")
	require.NoError(t, err)
	require.Equal(t, http.MethodGet, get.Method)
	u, err = url.Parse(get.URL)
	require.NoError(t, err)
	require.Contains(t, u.Query().Get("response-content-disposition"), `filename="report.pdf"`)
}

func TestStore_Minio(t *testing.T) {
	endpoint := startMinio(t)
	store := newStore(t, endpoint)
	ctx := context.Background()

	require.NoError(t, store.EnsureBucket(ctx))
	// second call hits the "already owned" conflict
	require.NoError(t, store.EnsureBucket(ctx))

	key := "assessments/7/responses/9/minutes/abc-minutes.txt"
	body := []byte("barangay council minutes")

	put, err := store.PresignPut(ctx, key, "text/plain", int64(len(body)))
	require.NoError(t, err)

	req, err := http.NewRequestWithContext(ctx, put.Method, put.URL, bytes.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "text/plain")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	_ = resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	get, err := store.PresignGet(ctx, key, "minutes.txt")
	require.NoError(t, err)
	resp, err = http.Get(get.URL) //nolint: noctx
	require.NoError(t, err)
	got, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, string(body), string(got))
	require.True(t, strings.HasPrefix(resp.Header.Get("Content-Disposition"), "attachment"))

	require.NoError(t, store.Delete(ctx, key))
	// deleting again is not an error
	require.NoError(t, store.Delete(ctx, key))

	resp, err = http.Get(get.URL) //nolint: noctx
	require.NoError(t, err)
	_ = resp.Body.Close()
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}
