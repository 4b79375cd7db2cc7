package storage

import (
	"context"
	"fmt"
	"io"
	"log"

	"github.com/minio/minio-go/v7"
)

// MinioStorage implements Storage on top of a MinIO client, which works
// with any S3-compatible provider (TOS, MinIO, AWS S3).
type MinioStorage struct {
	cfg      Config
	provider *ClientProvider
}

// NewMinioStorage returns a MinioStorage bound to cfg. The client is
// obtained from provider lazily, on the first operation that passes
// configuration validation.
func NewMinioStorage(cfg Config, provider *ClientProvider) *MinioStorage {
	return &MinioStorage{cfg: cfg, provider: provider}
}

// Validate checks that region, endpoint and bucket are set.
func (s *MinioStorage) Validate() error {
	return s.cfg.Validate()
}

// Upload puts the object under key with the given content type.
func (s *MinioStorage) Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error {
	client, err := s.client()
	if err != nil {
		return err
	}

	_, err = client.PutObject(ctx, s.cfg.Bucket, key, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("put object %q: %w", key, Classify(err))
	}

	log.Printf("storage: uploaded object %q (%d bytes)", key, size)
	return nil
}

// PresignedURL returns a GET URL for key valid for the configured expiry.
func (s *MinioStorage) PresignedURL(ctx context.Context, key string) (string, error) {
	if err := s.cfg.Validate(); err != nil {
		log.Printf("storage: %v", err)
		return "", err
	}
	if key == "" {
		return "", fmt.Errorf("%w: key must not be empty", ErrInvalidKey)
	}

	client, err := s.client()
	if err != nil {
		return "", err
	}

	u, err := client.PresignedGetObject(ctx, s.cfg.Bucket, key, s.cfg.presignExpiry(), nil)
	if err != nil {
		return "", fmt.Errorf("presign object %q: %w", key, Classify(err))
	}
	return u.String(), nil
}

// client validates the configuration and returns the shared client.
func (s *MinioStorage) client() (*minio.Client, error) {
	if err := s.cfg.Validate(); err != nil {
		log.Printf("storage: %v", err)
		return nil, err
	}
	client, err := s.provider.Get(s.cfg)
	if err != nil {
		return nil, Classify(err)
	}
	return client, nil
}
