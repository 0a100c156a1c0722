package redis

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// Config holds the journal Redis connection settings.
type Config struct {
	URL         string        `env:"JOURNAL_REDIS_URL"`
	PoolSize    int           `env:"JOURNAL_REDIS_POOL_SIZE" envDefault:"4"`
	DialTimeout time.Duration `env:"JOURNAL_REDIS_DIAL_TIMEOUT" envDefault:"5s"`
}

// Option configures a Redis connection.
type Option func(*options)

type options struct {
	poolSize      int
	retryAttempts int
	retryInterval time.Duration
	dialTimeout   time.Duration
	ioTimeout     time.Duration
}

func defaultOptions() *options {
	return &options{
		poolSize:      4,
		retryAttempts: 3,
		retryInterval: time.Second,
		dialTimeout:   5 * time.Second,
		ioTimeout:     3 * time.Second,
	}
}

// WithPoolSize sets the maximum number of connections in the pool.
// Default: 4
func WithPoolSize(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.poolSize = n
		}
	}
}

// WithRetry configures how many times the initial ping is attempted.
// The wait between attempts grows linearly with interval.
// Default: 3 attempts, 1 second.
func WithRetry(attempts int, interval time.Duration) Option {
	return func(o *options) {
		o.retryAttempts = attempts
		o.retryInterval = interval
	}
}

// WithDialTimeout sets the timeout for establishing new connections.
// Default: 5 seconds
func WithDialTimeout(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.dialTimeout = d
		}
	}
}

// WithIOTimeout sets both read and write timeouts.
// Default: 3 seconds
func WithIOTimeout(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.ioTimeout = d
		}
	}
}

// Open creates a Redis client and verifies connectivity.
// Supports both redis:// and rediss:// (TLS) URL schemes.
func Open(ctx context.Context, url string, opts ...Option) (redis.UniversalClient, error) {
	if url == "" {
		return nil, ErrEmptyConnectionURL
	}

	if !strings.HasPrefix(url, "redis://") && !strings.HasPrefix(url, "rediss://") {
		return nil, ErrFailedToParseURL
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	redisOpts, err := redis.ParseURL(url)
	if err != nil {
		return nil, errors.Join(ErrFailedToParseURL, err)
	}

	redisOpts.PoolSize = o.poolSize
	redisOpts.DialTimeout = o.dialTimeout
	redisOpts.ReadTimeout = o.ioTimeout
	redisOpts.WriteTimeout = o.ioTimeout

	return connect(ctx, redisOpts, o.retryAttempts, o.retryInterval)
}

// OpenConfig is Open driven by a Config.
func OpenConfig(ctx context.Context, cfg Config) (redis.UniversalClient, error) {
	return Open(ctx, cfg.URL,
		WithPoolSize(cfg.PoolSize),
		WithDialTimeout(cfg.DialTimeout),
	)
}

func connect(ctx context.Context, opts *redis.Options, attempts int, interval time.Duration) (redis.UniversalClient, error) {
	attempts = max(attempts, 1)

	var lastErr error
	for i := range attempts {
		client := redis.NewClient(opts)

		lastErr = client.Ping(ctx).Err()
		if lastErr == nil {
			return client, nil
		}

		_ = client.Close()

		if i == attempts-1 {
			break
		}
		if waitErr := wait(ctx, time.Duration(i+1)*interval); waitErr != nil {
			return nil, errors.Join(ErrConnectionFailed, waitErr)
		}
	}

	return nil, errors.Join(ErrConnectionFailed, lastErr)
}

func wait(ctx context.Context, d time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}
