package mailer

import (
	"encoding/json"
	"fmt"
)

// Content types emitted in Payload.Content.
const (
	ContentTypeText = "text/plain"
	ContentTypeHTML = "text/html"
)

// textPlaceholder is sent as text/plain when only an HTML body exists;
// the provider requires text/plain to precede text/html.
const textPlaceholder = " "

// Payload is the v3 Mail Send request body.
type Payload struct {
	Personalizations []Personalization `json:"personalizations"`
	From             EmailAddress      `json:"from"`
	ReplyTo          *EmailAddress     `json:"reply_to,omitempty"`
	Subject          string            `json:"subject"`
	Content          []Content         `json:"content"`
	Attachments      []Attachment      `json:"attachments,omitempty"`
	TemplateID       string            `json:"template_id,omitempty"`
	Sections         map[string]string `json:"sections,omitempty"`
	Headers          map[string]string `json:"headers,omitempty"`
	Categories       []string          `json:"categories,omitempty"`
	CustomArgs       map[string]string `json:"custom_args,omitempty"`
	SendAt           int64             `json:"send_at,omitempty"`
	BatchID          string            `json:"batch_id,omitempty"`
	IPPoolName       string            `json:"ip_pool_name,omitempty"`
	MailSettings     *MailSettings     `json:"mail_settings,omitempty"`
}

// Personalization is one recipient group with its overrides.
type Personalization struct {
	To            []EmailAddress    `json:"to"`
	Cc            []EmailAddress    `json:"cc,omitempty"`
	Bcc           []EmailAddress    `json:"bcc,omitempty"`
	Subject       string            `json:"subject,omitempty"`
	Headers       map[string]string `json:"headers,omitempty"`
	Substitutions map[string]string `json:"substitutions,omitempty"`
	CustomArgs    map[string]string `json:"custom_args,omitempty"`
	SendAt        int64             `json:"send_at,omitempty"`
}

// EmailAddress is an address with an optional display name.
type EmailAddress struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

// String returns "Name <email>" if a name is set, otherwise the bare address.
func (a EmailAddress) String() string {
	if a.Name == "" {
		return a.Email
	}
	return fmt.Sprintf("%s <%s>", a.Name, a.Email)
}

// Content is one body part.
type Content struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// Attachment is a base64-encoded file.
type Attachment struct {
	Content     string `json:"content"`
	Type        string `json:"type,omitempty"`
	Filename    string `json:"filename"`
	Disposition string `json:"disposition,omitempty"`
	ContentID   string `json:"content_id,omitempty"`
}

// MailSettings carries provider-side switches.
type MailSettings struct {
	SandboxMode *Setting `json:"sandbox_mode,omitempty"`
}

// Setting is a provider on/off switch.
type Setting struct {
	Enable bool `json:"enable"`
}

// JSON encodes the payload. indent enables pretty printing.
func (p *Payload) JSON(indent bool) ([]byte, error) {
	if indent {
		return json.MarshalIndent(p, "", "    ")
	}
	return json.Marshal(p)
}
