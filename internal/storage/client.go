package storage

import (
	"fmt"
	"log"
	"sync"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// ClientProvider builds the process-wide MinIO client on first use.
// Later calls return the same client (or the same construction error),
// whatever config they pass.
type ClientProvider struct {
	once   sync.Once
	client *minio.Client
	err    error
}

// NewClientProvider returns an empty provider; nothing is dialed until Get.
func NewClientProvider() *ClientProvider {
	return &ClientProvider{}
}

// Get returns the shared client, constructing it from cfg on the first call.
func (p *ClientProvider) Get(cfg Config) (*minio.Client, error) {
	p.once.Do(func() {
		p.client, p.err = newClient(cfg)
	})
	return p.client, p.err
}

func newClient(cfg Config) (*minio.Client, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		// Setting the region skips the bucket-location lookup.
		Region: cfg.Region,
		// One attempt per call: failures surface to the caller as-is.
		MaxRetries: 1,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}
	log.Printf("storage: client initialized endpoint=%s region=%s bucket=%s", cfg.Endpoint, cfg.Region, cfg.Bucket)
	return client, nil
}
