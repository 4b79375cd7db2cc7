// Package config loads application configuration from environment variables.
package config

import (
	"errors"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/menuorder/backend/internal/storage"
)

// ErrMissingCredentials is returned by Validate when the TOS keys are not set.
var ErrMissingCredentials = errors.New("TOS_ACCESS_KEY and TOS_SECRET_KEY must be set")

// Config holds all runtime configuration for the service.
type Config struct {
	Port   string
	AppEnv string

	// ImageMaxBytes caps the JSON body of an upload request.
	ImageMaxBytes int64

	// Object storage (Volcengine TOS through its S3-compatible endpoint)
	StorageRegion        string
	StorageEndpoint      string // host only, e.g. "tos-s3-cn-beijing.volces.com"
	StorageBucket        string
	StorageAccessKey     string
	StorageSecretKey     string
	StorageUseSSL        bool
	StoragePresignExpiry time.Duration
}

// Load reads configuration from a .env file (if present) and environment variables.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, reading from environment")
	}

	return &Config{
		Port:          getEnv("PORT", "8080"),
		AppEnv:        getEnv("APP_ENV", "development"),
		ImageMaxBytes: int64(getEnvInt("IMAGE_MAX_BYTES", 10<<20)),

		StorageRegion:        getEnv("TOS_REGION", "cn-beijing"),
		StorageEndpoint:      getEnv("TOS_ENDPOINT", "tos-s3-cn-beijing.volces.com"),
		StorageBucket:        getEnv("TOS_BUCKET", "menus"),
		StorageAccessKey:     os.Getenv("TOS_ACCESS_KEY"),
		StorageSecretKey:     os.Getenv("TOS_SECRET_KEY"),
		StorageUseSSL:        getEnv("TOS_USE_SSL", "true") == "true",
		StoragePresignExpiry: time.Duration(getEnvInt("TOS_PRESIGN_EXPIRY_SECONDS", 3600)) * time.Second,
	}
}

// Validate checks the settings the service cannot start without.
func (c *Config) Validate() error {
	if c.StorageAccessKey == "" || c.StorageSecretKey == "" {
		return ErrMissingCredentials
	}
	return nil
}

// Storage returns the object storage settings.
func (c *Config) Storage() storage.Config {
	return storage.Config{
		Region:        c.StorageRegion,
		Endpoint:      c.StorageEndpoint,
		Bucket:        c.StorageBucket,
		AccessKey:     c.StorageAccessKey,
		SecretKey:     c.StorageSecretKey,
		UseSSL:        c.StorageUseSSL,
		PresignExpiry: c.StoragePresignExpiry,
	}
}

// IsProduction returns true when the app is running in production mode.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		log.Printf("ignoring %s=%q (must be a positive integer)", key, v)
		return fallback
	}
	return n
}
