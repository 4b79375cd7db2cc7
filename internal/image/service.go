package image

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"time"

	"github.com/menuorder/backend/internal/storage"
)

// Service contains the image upload and download-link logic.
type Service struct {
	store storage.Storage
	now   func() time.Time
}

// NewService creates a new image Service backed by store.
func NewService(store storage.Storage) *Service {
	return &Service{store: store, now: time.Now}
}

// Upload decodes imageData, stores it under a freshly generated key and
// returns that key.
func (s *Service) Upload(ctx context.Context, imageData string) (string, error) {
	if err := s.store.Validate(); err != nil {
		return "", err
	}

	payload, err := ParsePayload(imageData)
	if err != nil {
		return "", err
	}

	key, err := NewKey(s.now(), payload.Extension)
	if err != nil {
		return "", err
	}

	err = s.store.Upload(ctx, key, bytes.NewReader(payload.Data), int64(len(payload.Data)), payload.ContentType())
	if err != nil {
		return "", fmt.Errorf("upload image: %w", err)
	}

	log.Printf("image: uploaded %s", key)
	return key, nil
}

// DownloadURL returns a pre-signed GET URL for an existing object key.
func (s *Service) DownloadURL(ctx context.Context, key string) (string, error) {
	url, err := s.store.PresignedURL(ctx, key)
	if err != nil {
		return "", fmt.Errorf("download url: %w", err)
	}
	return url, nil
}
