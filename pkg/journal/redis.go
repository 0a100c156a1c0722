package journal

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const defaultKeyPrefix = "gridmail:journal"

// RedisOption configures a Redis journal.
type RedisOption func(*Redis)

// WithKeyPrefix overrides the key prefix. Default: "gridmail:journal".
func WithKeyPrefix(prefix string) RedisOption {
	return func(r *Redis) {
		if prefix != "" {
			r.prefix = prefix
		}
	}
}

// WithSession pins the session id instead of generating a new one.
// Use it to read the journal of a previous process.
func WithSession(id string) RedisOption {
	return func(r *Redis) {
		if id != "" {
			r.session = id
		}
	}
}

// WithTTL makes both lists expire after d of inactivity.
// Zero or negative keeps entries until deleted.
func WithTTL(d time.Duration) RedisOption {
	return func(r *Redis) {
		r.ttl = d
	}
}

// Redis is a Journal stored in two Redis lists.
// Keys: {prefix}:{session}:responses and {prefix}:{session}:errors.
type Redis struct {
	client  redis.UniversalClient
	prefix  string
	session string
	ttl     time.Duration
}

// NewRedis creates a Redis journal. Each instance starts a fresh session
// unless WithSession is given.
func NewRedis(client redis.UniversalClient, opts ...RedisOption) *Redis {
	r := &Redis{
		client:  client,
		prefix:  defaultKeyPrefix,
		session: uuid.NewString(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Session returns the session id used in keys.
func (r *Redis) Session() string {
	return r.session
}

// AppendResponse implements Journal.
func (r *Redis) AppendResponse(ctx context.Context, raw string) error {
	return r.push(ctx, r.key("responses"), raw)
}

// AppendError implements Journal.
func (r *Redis) AppendError(ctx context.Context, msg string) error {
	return r.push(ctx, r.key("errors"), msg)
}

// Responses implements Journal.
func (r *Redis) Responses(ctx context.Context) ([]string, error) {
	return r.list(ctx, r.key("responses"))
}

// Errors implements Journal.
func (r *Redis) Errors(ctx context.Context) ([]string, error) {
	return r.list(ctx, r.key("errors"))
}

func (r *Redis) push(ctx context.Context, key, value string) error {
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.RPush(ctx, key, value)
		if r.ttl > 0 {
			pipe.Expire(ctx, key, r.ttl)
		}
		return nil
	})
	if err != nil {
		return errors.Join(ErrAppendFailed, err)
	}
	return nil
}

func (r *Redis) list(ctx context.Context, key string) ([]string, error) {
	entries, err := r.client.LRange(ctx, key, 0, -1).Result()
	if err != nil {
		return nil, errors.Join(ErrReadFailed, err)
	}
	return entries, nil
}

func (r *Redis) key(kind string) string {
	return r.prefix + ":" + r.session + ":" + kind
}

var _ Journal = (*Redis)(nil)
