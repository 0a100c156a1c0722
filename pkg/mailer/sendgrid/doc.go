// Package sendgrid delivers mailer payloads through the SendGrid v3 Web API.
//
//	client, err := sendgrid.New(sendgrid.Config{APIKey: os.Getenv("SENDGRID_API_KEY")})
//	if err != nil {
//		return err
//	}
//	m := mailer.New(client, cfg)
//
// Client.Deliver posts to /v3/mail/send and treats 200 (sandbox) and 202 (queued)
// as success. Client.CreateBatchID posts to /v3/mail/batch and expects 201.
// Requests are traced with OpenTelemetry through the global tracer provider
// unless one is passed with WithTracerProvider.
package sendgrid
