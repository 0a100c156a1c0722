package mailer

import (
	"context"
	"log/slog"
	"maps"
	"slices"

	"github.com/dmitrymomot/gridmail/pkg/logger"
	"github.com/dmitrymomot/gridmail/pkg/storage"
)

// MailMessage is what Mailer.Send accepts.
// *Message implements it; custom message types only need to produce a Payload.
type MailMessage interface {
	From() Recipient
	ReplyTo() Recipient
	To() Recipient
	Cc() Recipient
	Bcc() Recipient
	Subject() string
	TextBody() string
	HTMLBody() string
	Build(ctx context.Context) (*Payload, error)
}

// Envelope is the input for one personalization.
type Envelope struct {
	To            Recipient
	Cc            Recipient
	Bcc           Recipient
	Subject       string
	Headers       map[string]string
	Substitutions map[string]string
	CustomArgs    map[string]string
	SendAt        int64
}

// Message accumulates the fields of a single send attempt.
// Setters return the same *Message for chaining. A Message is not safe for concurrent mutation.
type Message struct {
	logger *slog.Logger
	store  storage.Store

	from    Recipient
	replyTo Recipient
	to      Recipient
	cc      Recipient
	bcc     Recipient

	personalizations []Envelope
	substitutions    map[string]string

	subject  string
	textBody string
	htmlBody string

	attachments []attachmentSource

	templateID string
	sections   map[string]string
	headers    map[string]string
	categories []string
	customArgs map[string]string
	sendAt     int64
	batchID    string
	ipPoolName string
	sandbox    bool
}

var _ MailMessage = (*Message)(nil)

// NewMessage creates an empty message that reads attachments from the local disk.
func NewMessage() *Message {
	return &Message{
		logger: logger.NewNope(),
		store:  storage.NewDisk(""),
	}
}

// SetLogger sets the logger used for build warnings.
func (m *Message) SetLogger(l *slog.Logger) *Message {
	if l != nil {
		m.logger = l
	}
	return m
}

// SetAttachmentStore sets where Attach and Embed read file paths from.
func (m *Message) SetAttachmentStore(s storage.Store) *Message {
	if s != nil {
		m.store = s
	}
	return m
}

// SetFrom sets the sender. If no reply-to was set yet,
// reply-to becomes the first address of the sender.
func (m *Message) SetFrom(from Recipient) *Message {
	m.from = from
	if m.replyTo.IsZero() {
		if first, ok := from.First(); ok {
			m.replyTo = Single(first.Email)
		}
	}
	return m
}

// SetReplyTo sets the reply-to address. Only a Single address is sent.
func (m *Message) SetReplyTo(r Recipient) *Message {
	m.replyTo = r
	return m
}

// SetTo sets the primary recipients (single mode only).
func (m *Message) SetTo(r Recipient) *Message {
	m.to = r
	return m
}

// SetCc sets carbon-copy recipients (single mode only).
func (m *Message) SetCc(r Recipient) *Message {
	m.cc = r
	return m
}

// SetBcc sets blind carbon-copy recipients (single mode only).
func (m *Message) SetBcc(r Recipient) *Message {
	m.bcc = r
	return m
}

func (m *Message) SetSubject(subject string) *Message {
	m.subject = subject
	return m
}

func (m *Message) SetTextBody(text string) *Message {
	m.textBody = text
	return m
}

func (m *Message) SetHTMLBody(html string) *Message {
	m.htmlBody = html
	return m
}

// AddPersonalization appends a recipient group and switches the message to batch mode.
func (m *Message) AddPersonalization(e Envelope) *Message {
	m.personalizations = append(m.personalizations, e)
	return m
}

// AddSubstitution adds a global substitution (single mode only).
func (m *Message) AddSubstitution(key, value string) *Message {
	m.substitutions = setKey(m.substitutions, key, value)
	return m
}

func (m *Message) AddHeader(name, value string) *Message {
	m.headers = setKey(m.headers, name, value)
	return m
}

func (m *Message) SetTemplateID(id string) *Message {
	m.templateID = id
	return m
}

func (m *Message) AddSection(key, value string) *Message {
	m.sections = setKey(m.sections, key, value)
	return m
}

func (m *Message) AddCategory(category string) *Message {
	m.categories = append(m.categories, category)
	return m
}

func (m *Message) AddCustomArg(key, value string) *Message {
	m.customArgs = setKey(m.customArgs, key, value)
	return m
}

// SetSendAt schedules delivery at a unix timestamp (seconds). Zero means "now".
func (m *Message) SetSendAt(unix int64) *Message {
	m.sendAt = unix
	return m
}

func (m *Message) SetBatchID(id string) *Message {
	m.batchID = id
	return m
}

func (m *Message) SetIPPoolName(name string) *Message {
	m.ipPoolName = name
	return m
}

// SetSandboxMode asks the provider to validate the message without delivering it.
func (m *Message) SetSandboxMode(enabled bool) *Message {
	m.sandbox = enabled
	return m
}

func (m *Message) From() Recipient    { return m.from }
func (m *Message) ReplyTo() Recipient { return m.replyTo }
func (m *Message) To() Recipient      { return m.to }
func (m *Message) Cc() Recipient      { return m.cc }
func (m *Message) Bcc() Recipient     { return m.bcc }
func (m *Message) Subject() string    { return m.subject }
func (m *Message) TextBody() string   { return m.textBody }
func (m *Message) HTMLBody() string   { return m.htmlBody }

// Personalizations returns a copy of the recipient groups added so far.
func (m *Message) Personalizations() []Envelope {
	return slices.Clone(m.personalizations)
}

// Categories returns a copy of the categories added so far.
func (m *Message) Categories() []string {
	return slices.Clone(m.categories)
}

// Headers returns a copy of the global headers.
func (m *Message) Headers() map[string]string {
	return maps.Clone(m.headers)
}

// String returns the built payload as indented JSON, or an empty string if the message does not build.
func (m *Message) String() string {
	p, err := m.Build(context.Background())
	if err != nil {
		return ""
	}
	b, err := p.JSON(true)
	if err != nil {
		return ""
	}
	return string(b)
}

func setKey(dst map[string]string, key, value string) map[string]string {
	if dst == nil {
		dst = make(map[string]string)
	}
	dst[key] = value
	return dst
}
