// Package mailer builds v3 Mail Send payloads and delivers them through a pluggable Transport.
//
// # Architecture
//
// The package consists of four main components:
//
//   - Message: fluent builder that compiles into a Payload
//   - Transport: interface that providers implement (see the sendgrid and resend subpackages)
//   - Mailer: facade that builds, delivers and journals the outcome
//   - Renderer: converts markdown templates with YAML frontmatter into html and text bodies
//
// # Usage
//
//	client, err := sendgrid.New(sendgrid.Config{APIKey: os.Getenv("SENDGRID_API_KEY")})
//	if err != nil {
//		return err
//	}
//
//	m := mailer.New(client, mailer.Config{FromEmail: "team@example.com", FromName: "Team"})
//
//	msg := m.NewMessage().
//		SetTo(mailer.Named(map[string]string{"alice@example.com": "Alice"})).
//		SetSubject("Welcome").
//		SetHTMLBody("<p>Hello!</p>")
//
//	if !m.Send(ctx, msg) {
//		errs, _ := m.Errors(ctx)
//		log.Println(errs)
//	}
//
// # Recipients
//
// Every address field takes a Recipient in one of three shapes:
//
//	mailer.Single("a@example.com")
//	mailer.List("a@example.com", "b@example.com")
//	mailer.Named(map[string]string{"a@example.com": "Alice"})
//
// # Sending modes
//
// A message without personalizations is sent in single mode: global to, cc, bcc
// and substitutions form the only personalization. Adding a personalization with
// AddPersonalization switches to batch mode; the globals are then ignored and a
// warning is logged. Every personalization must have at least one "to" address.
//
// # Content
//
// The provider requires text/plain before text/html. When only an HTML body is set,
// a single space is sent as the text part.
//
// # Templates
//
// Templates are markdown files with optional YAML frontmatter:
//
//	---
//	subject: Welcome {{.Name}}!
//	categories: [onboarding]
//	layout: base.html
//	---
//
//	# Welcome
//
//	Hello {{.Name}}, welcome to our service!
//
// Mailer.Compose renders one into a new Message.
//
// # Errors
//
// Build fails only with ErrMissingRequiredField or ErrInvalidPersonalization.
// Mailer.Send never returns an error: it returns false and records a human-readable
// description, available through Mailer.Errors.
package mailer
