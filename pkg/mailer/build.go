package mailer

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"slices"
)

// Build compiles the message into a provider payload.
// It recomputes everything from the current field state, so repeated calls
// on an unchanged message yield identical payloads.
//
// Only ErrMissingRequiredField and ErrInvalidPersonalization are fatal.
// Any other problem is logged as a warning and the offending field is omitted.
func (m *Message) Build(ctx context.Context) (*Payload, error) {
	if m.from.IsZero() || m.subject == "" || (m.textBody == "" && m.htmlBody == "") {
		m.logger.ErrorContext(ctx, "message is missing required fields",
			slog.Bool("has_from", !m.from.IsZero()),
			slog.Bool("has_subject", m.subject != ""),
			slog.Bool("has_body", m.textBody != "" || m.htmlBody != ""),
		)
		return nil, ErrMissingRequiredField
	}

	personalizations, err := m.buildPersonalizations(ctx)
	if err != nil {
		return nil, err
	}

	p := &Payload{
		Personalizations: personalizations,
		From:             m.resolveFrom(ctx),
		ReplyTo:          m.resolveReplyTo(ctx),
		Subject:          m.subject,
		Content:          m.buildContent(),
		Attachments:      m.buildAttachments(ctx),
		TemplateID:       m.templateID,
		Sections:         cloneNonEmpty(m.sections),
		Headers:          cloneNonEmpty(m.headers),
		Categories:       slices.Clone(m.categories),
		CustomArgs:       cloneNonEmpty(m.customArgs),
		SendAt:           m.sendAt,
		BatchID:          m.batchID,
		IPPoolName:       m.ipPoolName,
	}
	if m.sandbox {
		p.MailSettings = &MailSettings{SandboxMode: &Setting{Enable: true}}
	}

	return p, nil
}

func (m *Message) buildPersonalizations(ctx context.Context) ([]Personalization, error) {
	if len(m.personalizations) == 0 {
		return m.singlePersonalization(ctx)
	}

	if !m.to.IsZero() || !m.cc.IsZero() || !m.bcc.IsZero() || len(m.substitutions) > 0 {
		m.logger.WarnContext(ctx, "global to, cc, bcc and substitutions are ignored when personalizations are set",
			slog.Int("personalizations", len(m.personalizations)),
		)
	}

	out := make([]Personalization, 0, len(m.personalizations))
	for i, e := range m.personalizations {
		to := e.To.Normalize()
		if len(to) == 0 {
			m.logger.ErrorContext(ctx, "personalization has no recipients", slog.Int("index", i))
			return nil, fmt.Errorf("%w: index %d", ErrInvalidPersonalization, i)
		}
		out = append(out, Personalization{
			To:            to,
			Cc:            e.Cc.Normalize(),
			Bcc:           e.Bcc.Normalize(),
			Subject:       e.Subject,
			Headers:       cloneNonEmpty(e.Headers),
			Substitutions: cloneNonEmpty(e.Substitutions),
			CustomArgs:    cloneNonEmpty(e.CustomArgs),
			SendAt:        e.SendAt,
		})
	}
	return out, nil
}

func (m *Message) singlePersonalization(ctx context.Context) ([]Personalization, error) {
	to := m.to.Normalize()
	if len(to) == 0 {
		m.logger.ErrorContext(ctx, "message has no recipients")
		return nil, ErrMissingRequiredField
	}
	return []Personalization{{
		To:            to,
		Cc:            m.cc.Normalize(),
		Bcc:           m.bcc.Normalize(),
		Substitutions: cloneNonEmpty(m.substitutions),
	}}, nil
}

func (m *Message) resolveFrom(ctx context.Context) EmailAddress {
	first, _ := m.from.First()
	if n := m.from.Len(); n > 1 {
		m.logger.WarnContext(ctx, "sender has more than one address, using the first",
			slog.Int("addresses", n),
			slog.String("from", first.Email),
		)
	}
	return first
}

func (m *Message) resolveReplyTo(ctx context.Context) *EmailAddress {
	if m.replyTo.IsZero() {
		return nil
	}
	if !m.replyTo.IsSingle() {
		m.logger.WarnContext(ctx, "reply-to must be a single bare address, omitting it",
			slog.String("reply_to", m.replyTo.String()),
		)
		return nil
	}
	first, _ := m.replyTo.First()
	return &first
}

// buildContent always leads with text/plain; the provider rejects text/html first.
func (m *Message) buildContent() []Content {
	text := m.textBody
	if text == "" {
		text = textPlaceholder
	}
	content := []Content{{Type: ContentTypeText, Value: text}}
	if m.htmlBody != "" {
		content = append(content, Content{Type: ContentTypeHTML, Value: m.htmlBody})
	}
	return content
}

func (m *Message) buildAttachments(ctx context.Context) []Attachment {
	if len(m.attachments) == 0 {
		return nil
	}
	out := make([]Attachment, 0, len(m.attachments))
	for _, src := range m.attachments {
		a, err := src.load(ctx, m.store)
		if err != nil {
			m.logger.WarnContext(ctx, "skipping attachment",
				slog.String("path", src.path),
				slog.String("filename", src.opts.Filename),
				slog.Any("error", err),
			)
			continue
		}
		out = append(out, a)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func cloneNonEmpty(m map[string]string) map[string]string {
	if len(m) == 0 {
		return nil
	}
	return maps.Clone(m)
}
