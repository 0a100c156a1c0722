package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/gridmail/pkg/mailer"
)

// messageFlags collects every message field a command line can set.
type messageFlags struct {
	headers       map[string]string
	customArgs    map[string]string
	substitutions map[string]string
	sections      map[string]string

	from    []string
	replyTo []string
	to      []string
	cc      []string
	bcc     []string

	attachments []string
	embeds      []string
	categories  []string

	subject          string
	text             string
	textFile         string
	html             string
	htmlFile         string
	template         string
	templateData     string
	personalizations string
	templateID       string
	batchID          string
	ipPool           string
	sendAt           string

	sandbox bool
}

func (f *messageFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringArrayVar(&f.from, "from", nil, `sender, "Name <email>" or "email" (default MAILER_FROM_EMAIL)`)
	fs.StringArrayVar(&f.replyTo, "reply-to", nil, "reply-to address (bare address only)")
	fs.StringArrayVar(&f.to, "to", nil, "recipient, repeatable")
	fs.StringArrayVar(&f.cc, "cc", nil, "carbon-copy recipient, repeatable")
	fs.StringArrayVar(&f.bcc, "bcc", nil, "blind carbon-copy recipient, repeatable")
	fs.StringVar(&f.subject, "subject", "", "subject line")
	fs.StringVar(&f.text, "text", "", "plain-text body")
	fs.StringVar(&f.textFile, "text-file", "", "read the plain-text body from a file")
	fs.StringVar(&f.html, "html", "", "HTML body")
	fs.StringVar(&f.htmlFile, "html-file", "", "read the HTML body from a file")
	fs.StringVar(&f.template, "template", "", "markdown template to compose the message from (needs --templates-dir)")
	fs.StringVar(&f.templateData, "data", "", "JSON file with template data")
	fs.StringArrayVar(&f.attachments, "attach", nil, "attachment path or object key, repeatable")
	fs.StringArrayVar(&f.embeds, "embed", nil, "inline attachment path, repeatable; referenced as cid:<filename>")
	fs.StringVar(&f.personalizations, "personalizations", "", "JSON file with personalizations (switches to batch mode)")
	fs.StringToStringVar(&f.headers, "header", nil, "global header name=value")
	fs.StringToStringVar(&f.customArgs, "custom-arg", nil, "custom argument key=value")
	fs.StringToStringVar(&f.substitutions, "substitution", nil, "substitution key=value (single mode only)")
	fs.StringToStringVar(&f.sections, "section", nil, "section key=value")
	fs.StringSliceVar(&f.categories, "category", nil, "category, repeatable")
	fs.StringVar(&f.templateID, "template-id", "", "provider-side template id")
	fs.StringVar(&f.sendAt, "send-at", "", "schedule delivery: unix seconds or RFC 3339 time")
	fs.StringVar(&f.batchID, "batch-id", "", "batch id from the batch command")
	fs.StringVar(&f.ipPool, "ip-pool", "", "IP pool name")
	fs.BoolVar(&f.sandbox, "sandbox", false, "validate only, do not deliver")
}

// message assembles the message from the flags on top of m's defaults.
func (f *messageFlags) message(m *mailer.Mailer) (*mailer.Message, error) {
	msg, err := f.base(m)
	if err != nil {
		return nil, err
	}

	if len(f.from) > 0 {
		from, err := parseRecipient(f.from)
		if err != nil {
			return nil, fmt.Errorf("--from: %w", err)
		}
		// explicit sender replaces the configured one, including the derived reply-to
		msg.SetReplyTo(mailer.Recipient{}).SetFrom(from)
	}

	for _, field := range []struct {
		name   string
		values []string
		set    func(mailer.Recipient) *mailer.Message
	}{
		{"--reply-to", f.replyTo, msg.SetReplyTo},
		{"--to", f.to, msg.SetTo},
		{"--cc", f.cc, msg.SetCc},
		{"--bcc", f.bcc, msg.SetBcc},
	} {
		if len(field.values) == 0 {
			continue
		}
		r, err := parseRecipient(field.values)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", field.name, err)
		}
		field.set(r)
	}

	if f.subject != "" {
		msg.SetSubject(f.subject)
	}
	if err := f.bodies(msg); err != nil {
		return nil, err
	}

	for _, path := range f.attachments {
		msg.Attach(path, mailer.AttachmentOptions{})
	}
	for _, path := range f.embeds {
		msg.Embed(path, mailer.AttachmentOptions{ContentID: filepath.Base(path)})
	}

	if f.personalizations != "" {
		envelopes, err := loadPersonalizations(f.personalizations)
		if err != nil {
			return nil, err
		}
		for _, e := range envelopes {
			msg.AddPersonalization(e)
		}
	}

	for k, v := range f.headers {
		msg.AddHeader(k, v)
	}
	for k, v := range f.customArgs {
		msg.AddCustomArg(k, v)
	}
	for k, v := range f.substitutions {
		msg.AddSubstitution(k, v)
	}
	for k, v := range f.sections {
		msg.AddSection(k, v)
	}
	for _, c := range f.categories {
		msg.AddCategory(c)
	}

	if f.sendAt != "" {
		at, err := parseSendAt(f.sendAt)
		if err != nil {
			return nil, err
		}
		msg.SetSendAt(at)
	}
	if f.templateID != "" {
		msg.SetTemplateID(f.templateID)
	}
	if f.batchID != "" {
		msg.SetBatchID(f.batchID)
	}
	if f.ipPool != "" {
		msg.SetIPPoolName(f.ipPool)
	}
	if f.sandbox {
		msg.SetSandboxMode(true)
	}

	return msg, nil
}

func (f *messageFlags) base(m *mailer.Mailer) (*mailer.Message, error) {
	if f.template == "" {
		return m.NewMessage(), nil
	}

	var data any
	if f.templateData != "" {
		raw, err := os.ReadFile(f.templateData)
		if err != nil {
			return nil, fmt.Errorf("read template data: %w", err)
		}
		if err := json.Unmarshal(raw, &data); err != nil {
			return nil, fmt.Errorf("decode template data: %w", err)
		}
	}
	return m.Compose(f.template, data)
}

func (f *messageFlags) bodies(msg *mailer.Message) error {
	text, err := valueOrFile(f.text, f.textFile)
	if err != nil {
		return fmt.Errorf("--text-file: %w", err)
	}
	if text != "" {
		msg.SetTextBody(text)
	}

	html, err := valueOrFile(f.html, f.htmlFile)
	if err != nil {
		return fmt.Errorf("--html-file: %w", err)
	}
	if html != "" {
		msg.SetHTMLBody(html)
	}
	return nil
}

func valueOrFile(value, path string) (string, error) {
	if path == "" {
		return value, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func parseSendAt(s string) (int64, error) {
	if unix, err := strconv.ParseInt(s, 10, 64); err == nil {
		return unix, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return 0, fmt.Errorf("--send-at: expected unix seconds or RFC 3339, got %q", s)
	}
	return t.Unix(), nil
}
