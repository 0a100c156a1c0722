package resend

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"net/http"
	"slices"
	"strings"

	"github.com/resend/resend-go/v3"

	"github.com/dmitrymomot/gridmail/pkg/logger"
	"github.com/dmitrymomot/gridmail/pkg/mailer"
)

// ErrSendFailed wraps errors returned by the Resend API.
var ErrSendFailed = errors.New("resend: failed to send email")

// emailsAPI is the part of the Resend client the transport uses.
type emailsAPI interface {
	SendWithContext(ctx context.Context, params *resend.SendEmailRequest) (*resend.SendEmailResponse, error)
}

// Transport implements mailer.Transport using the Resend API.
// Resend has no personalizations: each one becomes a separate request with
// substitutions applied locally. Delivery stops at the first failed request.
type Transport struct {
	emails emailsAPI
	logger *slog.Logger
}

var _ mailer.Transport = (*Transport)(nil)

// Option configures a Transport.
type Option func(*Transport)

// WithLogger sets the logger for unsupported-field warnings.
func WithLogger(l *slog.Logger) Option {
	return func(t *Transport) {
		if l != nil {
			t.logger = l
		}
	}
}

// New creates a Resend transport.
func New(cfg Config, opts ...Option) *Transport {
	t := &Transport{
		emails: resend.NewClient(cfg.APIKey).Emails,
		logger: logger.NewNope(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Deliver sends one request per personalization.
// A sandboxed payload is logged and answered with 200 without calling the API.
func (t *Transport) Deliver(ctx context.Context, p *mailer.Payload) *mailer.Result {
	t.warnUnsupported(ctx, p)

	if p.MailSettings != nil && p.MailSettings.SandboxMode != nil && p.MailSettings.SandboxMode.Enable {
		t.logger.InfoContext(ctx, "sandbox mode, not sending", slog.String("subject", p.Subject))
		return mailer.NewResult(http.StatusOK, http.Header{}, "")
	}

	attachments := t.convertAttachments(ctx, p.Attachments)
	text, html := bodies(p.Content)

	ids := make([]string, 0, len(p.Personalizations))
	for _, pers := range p.Personalizations {
		replace := replacer(pers.Substitutions)
		subject := p.Subject
		if pers.Subject != "" {
			subject = pers.Subject
		}

		req := &resend.SendEmailRequest{
			From:        p.From.String(),
			To:          addresses(pers.To),
			Cc:          addresses(pers.Cc),
			Bcc:         addresses(pers.Bcc),
			Subject:     replace.Replace(subject),
			Html:        replace.Replace(html),
			Text:        replace.Replace(text),
			Headers:     merge(p.Headers, pers.Headers),
			Attachments: attachments,
			Tags:        tags(p.Categories, merge(p.CustomArgs, pers.CustomArgs)),
		}
		if p.ReplyTo != nil {
			req.ReplyTo = p.ReplyTo.Email
		}

		resp, err := t.emails.SendWithContext(ctx, req)
		if err != nil {
			return mailer.FailedResult(fmt.Errorf("%w: %w", ErrSendFailed, err))
		}
		if resp != nil {
			ids = append(ids, resp.Id)
		}
	}

	body, _ := json.Marshal(map[string][]string{"ids": ids})
	headers := http.Header{}
	for _, id := range ids {
		headers.Add("X-Message-Id", id)
	}
	return mailer.NewResult(http.StatusAccepted, headers, string(body))
}

// CreateBatchID is not supported by Resend.
func (t *Transport) CreateBatchID(context.Context) (string, error) {
	return "", errors.Join(mailer.ErrNoBatchID, mailer.ErrBatchUnsupported)
}

func (t *Transport) warnUnsupported(ctx context.Context, p *mailer.Payload) {
	var fields []string
	if p.TemplateID != "" {
		fields = append(fields, "template_id")
	}
	if len(p.Sections) > 0 {
		fields = append(fields, "sections")
	}
	if p.SendAt != 0 || slices.ContainsFunc(p.Personalizations, func(pp mailer.Personalization) bool { return pp.SendAt != 0 }) {
		fields = append(fields, "send_at")
	}
	if p.BatchID != "" {
		fields = append(fields, "batch_id")
	}
	if p.IPPoolName != "" {
		fields = append(fields, "ip_pool_name")
	}
	if len(fields) > 0 {
		t.logger.WarnContext(ctx, "resend ignores payload fields", slog.Any("fields", fields))
	}
}

func (t *Transport) convertAttachments(ctx context.Context, in []mailer.Attachment) []*resend.Attachment {
	if len(in) == 0 {
		return nil
	}
	out := make([]*resend.Attachment, 0, len(in))
	for _, a := range in {
		content, err := base64.StdEncoding.DecodeString(a.Content)
		if err != nil {
			t.logger.WarnContext(ctx, "skipping attachment with invalid content",
				slog.String("filename", a.Filename),
				slog.Any("error", err),
			)
			continue
		}
		out = append(out, &resend.Attachment{
			Filename:    a.Filename,
			Content:     content,
			ContentType: a.Type,
			ContentId:   a.ContentID,
		})
	}
	return out
}

func bodies(content []mailer.Content) (text, html string) {
	for _, c := range content {
		switch c.Type {
		case mailer.ContentTypeText:
			if strings.TrimSpace(c.Value) != "" {
				text = c.Value
			}
		case mailer.ContentTypeHTML:
			html = c.Value
		}
	}
	return text, html
}

func addresses(in []mailer.EmailAddress) []string {
	if len(in) == 0 {
		return nil
	}
	out := make([]string, len(in))
	for i, a := range in {
		out[i] = a.String()
	}
	return out
}

// replacer applies substitutions longest key first so overlapping keys are stable.
func replacer(subs map[string]string) *strings.Replacer {
	keys := make([]string, 0, len(subs))
	for k := range subs {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, func(a, b string) int {
		if d := len(b) - len(a); d != 0 {
			return d
		}
		return strings.Compare(a, b)
	})
	pairs := make([]string, 0, len(keys)*2)
	for _, k := range keys {
		pairs = append(pairs, k, subs[k])
	}
	return strings.NewReplacer(pairs...)
}

func merge(base, override map[string]string) map[string]string {
	if len(base) == 0 && len(override) == 0 {
		return nil
	}
	out := make(map[string]string, len(base)+len(override))
	maps.Copy(out, base)
	maps.Copy(out, override)
	return out
}

// tags turns categories into presence-only tags and custom args into name/value tags.
func tags(categories []string, args map[string]string) []resend.Tag {
	if len(categories) == 0 && len(args) == 0 {
		return nil
	}
	out := make([]resend.Tag, 0, len(categories)+len(args))
	for _, c := range categories {
		out = append(out, resend.Tag{Name: tagSafe(c), Value: "true"})
	}
	keys := make([]string, 0, len(args))
	for k := range args {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		out = append(out, resend.Tag{Name: tagSafe(k), Value: tagSafe(args[k])})
	}
	return out
}

// tagSafe keeps ASCII letters, digits, underscores and dashes; Resend rejects anything else.
func tagSafe(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-':
			return r
		default:
			return '_'
		}
	}, s)
}
