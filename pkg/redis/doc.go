// Package redis opens the go-redis client used by the Redis-backed journal.
//
// Open validates the URL scheme (redis:// or rediss://), applies pool and
// timeout options, and pings the server with a bounded number of retries before
// handing the client back:
//
//	client, err := redis.Open(ctx, cfg.URL,
//		redis.WithPoolSize(cfg.PoolSize),
//		redis.WithRetry(3, time.Second),
//	)
//	if err != nil {
//		return err
//	}
//	defer client.Close()
package redis
