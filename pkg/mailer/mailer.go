package mailer

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	texttemplate "text/template"

	"github.com/google/uuid"

	"github.com/dmitrymomot/gridmail/pkg/journal"
	"github.com/dmitrymomot/gridmail/pkg/logger"
	"github.com/dmitrymomot/gridmail/pkg/sanitizer"
	"github.com/dmitrymomot/gridmail/pkg/storage"
)

// Mailer builds messages, hands them to a Transport and journals the outcome.
type Mailer struct {
	transport Transport
	journal   journal.Journal
	logger    *slog.Logger
	renderer  *Renderer
	store     storage.Store
	config    Config
}

// Option configures a Mailer.
type Option func(*Mailer)

// WithJournal sets where responses and errors are recorded. Default: in-memory.
func WithJournal(j journal.Journal) Option {
	return func(m *Mailer) {
		if j != nil {
			m.journal = j
		}
	}
}

// WithLogger sets the logger for the mailer and the messages it creates.
func WithLogger(l *slog.Logger) Option {
	return func(m *Mailer) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithRenderer enables Compose.
func WithRenderer(r *Renderer) Option {
	return func(m *Mailer) {
		m.renderer = r
	}
}

// WithAttachmentStore sets the store messages created by the mailer read attachments from.
func WithAttachmentStore(s storage.Store) Option {
	return func(m *Mailer) {
		if s != nil {
			m.store = s
		}
	}
}

// New creates a mailer delivering through transport.
func New(transport Transport, cfg Config, opts ...Option) *Mailer {
	m := &Mailer{
		transport: transport,
		journal:   journal.NewMemory(),
		logger:    logger.NewNope(),
		store:     storage.NewDisk(""),
		config:    cfg,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// NewMessage creates a message with the configured sender and sandbox setting applied.
func (m *Mailer) NewMessage() *Message {
	msg := NewMessage().
		SetLogger(m.logger).
		SetAttachmentStore(m.store).
		SetSandboxMode(m.config.Sandbox)
	if from := m.config.DefaultFrom(); !from.IsZero() {
		msg.SetFrom(from)
	}
	return msg
}

// Compose renders a template into a new message.
// Subject resolution: template frontmatter > config fallback.
// The frontmatter subject may use {{.Field}} placeholders.
func (m *Mailer) Compose(name string, data any) (*Message, error) {
	if m.renderer == nil {
		return nil, ErrNoRenderer
	}

	result, err := m.renderer.Render(name, m.config.DefaultLayout, data)
	if err != nil {
		return nil, errors.Join(ErrRenderFailed, err)
	}

	subject := result.Front.Subject
	if subject == "" {
		subject = m.config.FallbackSubject
	}
	subject, err = renderSubject(subject, data)
	if err != nil {
		return nil, errors.Join(ErrRenderFailed, err)
	}

	msg := m.NewMessage().
		SetSubject(sanitizer.HeaderLine(subject)).
		SetHTMLBody(result.HTML).
		SetTextBody(result.Text)
	if result.Front.TemplateID != "" {
		msg.SetTemplateID(result.Front.TemplateID)
	}
	for _, c := range result.Front.Categories {
		msg.AddCategory(c)
	}
	return msg, nil
}

// Send builds msg and delivers it. It returns true only if the provider accepted the message.
// Every received response is appended to the raw response journal,
// every failure to the error journal.
func (m *Mailer) Send(ctx context.Context, msg MailMessage) bool {
	ctx = WithSendID(ctx, uuid.NewString())

	payload, err := msg.Build(ctx)
	if err != nil {
		m.logger.ErrorContext(ctx, "mail build failed", slog.Any("error", err))
		m.appendError(ctx, fmt.Errorf("%w: %w", ErrBuildFailed, err).Error())
		return false
	}

	res := m.transport.Deliver(ctx, payload)
	if res == nil {
		res = FailedResult(ErrSendFailed)
	}
	if res.Received() {
		m.appendResponse(ctx, res.Raw())
	}

	if res.Success {
		m.logger.InfoContext(ctx, "mail sent",
			slog.Int("status", res.StatusCode),
			slog.String("subject", payload.Subject),
		)
		return true
	}

	m.logger.ErrorContext(ctx, "mail delivery failed",
		slog.Int("status", res.StatusCode),
		slog.String("reason", res.Message()),
		slog.Any("error", res.Err),
	)
	m.appendError(ctx, res.Message())
	return false
}

// Errors returns the recorded failure descriptions.
func (m *Mailer) Errors(ctx context.Context) ([]string, error) {
	return m.journal.Errors(ctx)
}

// RawResponses returns the recorded responses as JSON {"code","headers","body"} strings.
func (m *Mailer) RawResponses(ctx context.Context) ([]string, error) {
	return m.journal.Responses(ctx)
}

// CreateBatchID asks the transport for a new batch id.
func (m *Mailer) CreateBatchID(ctx context.Context) (string, error) {
	id, err := m.transport.CreateBatchID(ctx)
	if err != nil {
		m.logger.WarnContext(ctx, "no batch id obtained", slog.Any("error", err))
		return "", err
	}
	return id, nil
}

func (m *Mailer) appendResponse(ctx context.Context, raw string) {
	if err := m.journal.AppendResponse(ctx, raw); err != nil {
		m.logger.ErrorContext(ctx, "failed to journal response", slog.Any("error", err))
	}
}

func (m *Mailer) appendError(ctx context.Context, msg string) {
	if err := m.journal.AppendError(ctx, msg); err != nil {
		m.logger.ErrorContext(ctx, "failed to journal error", slog.Any("error", err))
	}
}

func renderSubject(subject string, data any) (string, error) {
	tmpl, err := texttemplate.New("subject").Parse(subject)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}

	return buf.String(), nil
}
