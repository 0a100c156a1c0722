package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestOpen_Validation(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("empty URL returns ErrEmptyConnectionURL", func(t *testing.T) {
		t.Parallel()

		client, err := Open(ctx, "")
		require.Nil(t, client)
		require.True(t, errors.Is(err, ErrEmptyConnectionURL))
	})

	t.Run("invalid scheme returns ErrFailedToParseURL", func(t *testing.T) {
		t.Parallel()

		for _, url := range []string{"http://localhost:6379", "localhost:6379", "postgresql://localhost:6379"} {
			client, err := Open(ctx, url)
			require.Nil(t, client, url)
			require.ErrorIs(t, err, ErrFailedToParseURL, url)
		}
	})

	t.Run("malformed URL returns ErrFailedToParseURL", func(t *testing.T) {
		t.Parallel()

		client, err := Open(ctx, "redis://localhost:6379/notanumber")
		require.Nil(t, client)
		require.ErrorIs(t, err, ErrFailedToParseURL)
	})

	t.Run("unreachable server returns ErrConnectionFailed", func(t *testing.T) {
		t.Parallel()

		client, err := Open(ctx, "redis://127.0.0.1:1/0",
			WithRetry(1, time.Millisecond),
			WithDialTimeout(100*time.Millisecond),
		)
		require.Nil(t, client)
		require.ErrorIs(t, err, ErrConnectionFailed)
	})
}

func TestWait_ContextCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	err := wait(ctx, 10*time.Second)

	require.Equal(t, context.Canceled, err)
	require.Less(t, time.Since(start), time.Second)
}

func TestOptions(t *testing.T) {
	t.Parallel()

	opts := defaultOptions()
	require.Equal(t, 4, opts.poolSize)
	require.Equal(t, 3, opts.retryAttempts)

	WithPoolSize(12)(opts)
	WithPoolSize(0)(opts)
	WithRetry(5, 2*time.Second)(opts)
	WithDialTimeout(time.Second)(opts)
	WithIOTimeout(0)(opts)

	require.Equal(t, 12, opts.poolSize)
	require.Equal(t, 5, opts.retryAttempts)
	require.Equal(t, 2*time.Second, opts.retryInterval)
	require.Equal(t, time.Second, opts.dialTimeout)
	require.Equal(t, 3*time.Second, opts.ioTimeout)
}
