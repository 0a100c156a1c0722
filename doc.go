// Package gridmail builds and delivers transactional email through the
// SendGrid v3 Mail Send API.
//
// The module is organised as small packages:
//
//   - pkg/mailer: message builder, wire payload, delivery facade and templates
//   - pkg/mailer/sendgrid: HTTPS transport for /v3/mail/send and /v3/mail/batch
//   - pkg/mailer/resend: alternate transport delivering the same payload through Resend
//   - pkg/journal: append-only log of raw responses and errors (memory or Redis)
//   - pkg/storage: attachment sources (local disk or S3)
//   - pkg/logger: slog setup with context extractors and Sentry
//   - pkg/redis: Redis connection helper used by the journal
//   - pkg/sanitizer: plain-text and header-line cleanup for rendered templates
//
// # Quick Start
//
//	client, err := sendgrid.New(sendgrid.Config{APIKey: os.Getenv("SENDGRID_API_KEY")})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	m := mailer.New(client, mailer.Config{FromEmail: "team@example.com"},
//		mailer.WithLogger(logger.New(mailer.SendIDExtractor())),
//	)
//
//	msg := m.NewMessage().
//		SetTo(mailer.List("a@example.com", "b@example.com")).
//		SetSubject("Release notes").
//		SetHTMLBody("<h1>v2 is out</h1>")
//
//	if !m.Send(ctx, msg) {
//		errs, _ := m.Errors(ctx)
//		log.Println(errs)
//	}
//
// The gridmail command in cmd/gridmail wraps the same API for shell use.
package gridmail
