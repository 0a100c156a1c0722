// Package journal keeps the append-only audit trail of a mailer session.
//
// Every delivery attempt that reaches the provider leaves one raw-response entry
// (a JSON document with the status code, headers and body). Every failed attempt
// leaves one human-readable error entry. Entries are never pruned by this package:
// a new session starts with empty lists, so callers that need bounded memory
// recreate the journal (or the mailer owning it) periodically, or use the Redis
// backend with a TTL.
//
// Two backends are provided:
//
//   - Memory: process-local slices guarded by a mutex (default for mailer.New).
//   - Redis: lists stored under a per-session key prefix, optionally expiring.
//
// Usage:
//
//	client, err := redis.Open(ctx, os.Getenv("JOURNAL_REDIS_URL"))
//	if err != nil {
//		return err
//	}
//	j := journal.NewRedis(client, journal.WithTTL(24*time.Hour))
//	m := mailer.New(transport, cfg, mailer.WithJournal(j))
package journal
