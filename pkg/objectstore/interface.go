// Package objectstore defines the blob storage abstraction that holds MOV
// files. Clients never stream file bodies through the API; they receive
// short-lived presigned URLs instead.
package objectstore

import (
	"context"
	"net/http"
	"time"
)

// PresignedRequest is a request the caller may perform directly against the
// object store.
type PresignedRequest struct {
	URL       string      // URL is the presigned target.
	Method    string      // Method is the HTTP method the URL was signed for.
	Header    http.Header // Header holds headers the client must send along.
	ExpiresAt time.Time   // ExpiresAt is when the signature stops being valid.
}

// Store is the abstraction over S3 compatible object storage.
//
//go:generate mockgen -package mockobjectstore -source=interface.go -destination=mock/mockobjectstore.go *
type Store interface {
	// EnsureBucket creates the configured bucket when it does not exist yet.
	EnsureBucket(ctx context.Context) error
	// PresignPut signs an upload of size bytes of contentType under key.
	PresignPut(ctx context.Context, key, contentType string, size int64) (PresignedRequest, error)
	// PresignGet signs a download of key. A non-empty filename is suggested to
	// the browser through Content-Disposition.
	PresignGet(ctx context.Context, key, filename string) (PresignedRequest, error)
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}
