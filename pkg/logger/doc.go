// Package logger builds the slog loggers used across gridmail.
//
// It wraps log/slog with two additions: context extractors that inject
// request-scoped attributes on every call, and optional Sentry forwarding.
//
// # Basic Usage
//
//	log := logger.NewWithConfig(logger.Config{Level: "debug", Format: "text"}, os.Stderr,
//		mailer.SendIDExtractor(),
//	)
//	log.InfoContext(ctx, "payload built", slog.Int("personalizations", 2))
//	// level=INFO msg="payload built" personalizations=2 send_id=4f0c...
//
// Library types default to NewNope so nothing is printed unless a logger is injected.
//
// # Sentry Integration
//
//	log := logger.NewWithSentry(cfg, logger.SentryConfig{
//		DSN:      os.Getenv("SENTRY_DSN"),
//		MinLevel: slog.LevelWarn,
//	}, os.Stderr, mailer.SendIDExtractor())
//
// Errors create Sentry issues, warnings are stored as Sentry logs. With an empty
// DSN the logger silently falls back to the base handler.
//
// # Context Extractors
//
//	type ContextExtractor func(ctx context.Context) (slog.Attr, bool)
//
// Extractors run on every log call; returning false skips the attribute.
package logger
