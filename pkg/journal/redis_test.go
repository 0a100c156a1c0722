package journal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewRedis_Options(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()

		j := NewRedis(nil)
		require.Equal(t, defaultKeyPrefix, j.prefix)
		require.NotEmpty(t, j.Session())
		require.Zero(t, j.ttl)
	})

	t.Run("each instance starts a new session", func(t *testing.T) {
		t.Parallel()

		require.NotEqual(t, NewRedis(nil).Session(), NewRedis(nil).Session())
	})

	t.Run("custom prefix, session and ttl", func(t *testing.T) {
		t.Parallel()

		j := NewRedis(nil,
			WithKeyPrefix("app:mail"),
			WithSession("s1"),
			WithTTL(time.Hour),
		)
		require.Equal(t, "app:mail:s1:responses", j.key("responses"))
		require.Equal(t, "app:mail:s1:errors", j.key("errors"))
		require.Equal(t, time.Hour, j.ttl)
	})

	t.Run("empty values keep defaults", func(t *testing.T) {
		t.Parallel()

		j := NewRedis(nil, WithKeyPrefix(""), WithSession(""))
		require.Equal(t, defaultKeyPrefix, j.prefix)
		require.NotEmpty(t, j.Session())
	})
}
