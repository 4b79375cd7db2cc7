package storage

import (
	"fmt"
	"strings"
	"time"
)

// DefaultPresignExpiry is used when Config.PresignExpiry is zero.
const DefaultPresignExpiry = time.Hour

// Config describes the bucket the bridge talks to.
type Config struct {
	Region    string
	Endpoint  string // host[:port], no scheme
	Bucket    string
	AccessKey string
	SecretKey string
	UseSSL    bool

	PresignExpiry time.Duration
}

// Validate reports ErrConfiguration when any of region, endpoint or bucket is empty.
func (c Config) Validate() error {
	var missing []string
	if c.Region == "" {
		missing = append(missing, "region")
	}
	if c.Endpoint == "" {
		missing = append(missing, "endpoint")
	}
	if c.Bucket == "" {
		missing = append(missing, "bucket")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", ErrConfiguration, strings.Join(missing, ", "))
	}
	return nil
}

func (c Config) presignExpiry() time.Duration {
	if c.PresignExpiry <= 0 {
		return DefaultPresignExpiry
	}
	return c.PresignExpiry
}
