package storage

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("valid config", func(t *testing.T) {
		t.Parallel()
		store, err := New(Config{
			Bucket:    "test-bucket",
			AccessKey: "test-access-key",
			SecretKey: "test-secret-key",
		})
		require.NoError(t, err)
		require.NotNil(t, store.client)
		require.Equal(t, DefaultRegion, store.cfg.Region)
		require.Equal(t, int64(DefaultMaxObjectSize), store.cfg.MaxObjectSize)
	})

	t.Run("custom endpoint", func(t *testing.T) {
		t.Parallel()
		store, err := New(Config{
			Bucket:    "test-bucket",
			AccessKey: "test-access-key",
			SecretKey: "test-secret-key",
			Endpoint:  "http://localhost:9000",
			PathStyle: true,
		})
		require.NoError(t, err)
		require.NotNil(t, store)
	})

	t.Run("missing credentials", func(t *testing.T) {
		t.Parallel()
		store, err := New(Config{Bucket: "test-bucket"})
		require.ErrorIs(t, err, ErrInvalidConfig)
		require.Nil(t, store)
	})
}

func TestConfig_Enabled(t *testing.T) {
	t.Parallel()

	require.False(t, Config{}.Enabled())
	require.True(t, Config{Bucket: "b"}.Enabled())
}
