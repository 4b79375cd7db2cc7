// Package storage defines the interface for object storage operations.
// The MinIO client implementation speaks plain S3, which is what the
// Volcengine TOS S3-compatible endpoint expects.
package storage

import (
	"context"
	"io"
)

// Storage is the interface for uploading objects and handing out download links.
type Storage interface {
	// Validate checks the configuration without touching the backend.
	Validate() error
	// Upload streams data to the bucket under the given key.
	Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error
	// PresignedURL returns a time-limited GET URL for key.
	PresignedURL(ctx context.Context, key string) (string, error)
}
