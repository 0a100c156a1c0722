package storage

import (
	"context"
	"io"
)

// Store reads attachment content by key.
type Store interface {
	// Get opens the object stored under key.
	// The caller is responsible for closing the returned reader.
	// Returns ErrNotFound when the key does not exist.
	Get(ctx context.Context, key string) (io.ReadCloser, error)
}

// Statter is implemented by stores that can report object metadata without
// reading the content.
type Statter interface {
	// Stat returns metadata for key, or ErrNotFound when it does not exist.
	Stat(ctx context.Context, key string) (*FileInfo, error)
}

// Config holds S3-compatible storage configuration.
type Config struct {
	// Bucket is the S3 bucket name (required).
	Bucket string `env:"ATTACHMENTS_S3_BUCKET"`

	// AccessKey is the AWS access key ID (required).
	AccessKey string `env:"ATTACHMENTS_S3_ACCESS_KEY"`

	// SecretKey is the AWS secret access key (required).
	SecretKey string `env:"ATTACHMENTS_S3_SECRET_KEY"`

	// Endpoint is the custom S3 endpoint URL (optional, for MinIO or other S3-compatible services).
	Endpoint string `env:"ATTACHMENTS_S3_ENDPOINT"`

	// Region is the AWS region (default: us-east-1).
	Region string `env:"ATTACHMENTS_S3_REGION"`

	// PathStyle enables path-style URLs (required for MinIO).
	PathStyle bool `env:"ATTACHMENTS_S3_PATH_STYLE"`

	// MaxObjectSize caps the bytes read per attachment (default: 30MB, the provider's message limit).
	MaxObjectSize int64 `env:"ATTACHMENTS_S3_MAX_OBJECT_SIZE"`
}

// FileInfo contains metadata about a stored object.
type FileInfo struct {
	Key         string
	ContentType string
	Size        int64
}

// Default configuration values.
const (
	DefaultRegion        = "us-east-1"
	DefaultMaxObjectSize = 30 << 20 // 30MB
)

// applyDefaults fills in default values for empty config fields.
func (c *Config) applyDefaults() {
	if c.Region == "" {
		c.Region = DefaultRegion
	}
	if c.MaxObjectSize <= 0 {
		c.MaxObjectSize = DefaultMaxObjectSize
	}
}

// validate checks that required configuration fields are set.
func (c *Config) validate() error {
	if c.Bucket == "" || c.AccessKey == "" || c.SecretKey == "" {
		return ErrInvalidConfig
	}
	return nil
}

// Enabled reports whether an S3 bucket is configured.
func (c Config) Enabled() bool {
	return c.Bucket != ""
}
