package cli

import (
	"encoding/json"
	"fmt"
	"net/mail"
	"os"
	"strings"

	"github.com/dmitrymomot/gridmail/pkg/mailer"
)

// parseRecipient turns flag values such as "Alice <a@x.com>" or "b@x.com" into a Recipient.
// One bare address is Single, several bare addresses a List; any display name makes it Named.
func parseRecipient(values []string) (mailer.Recipient, error) {
	if len(values) == 0 {
		return mailer.Recipient{}, nil
	}

	addrs := make([]*mail.Address, 0, len(values))
	named := false
	for _, v := range values {
		addr, err := parseAddress(v)
		if err != nil {
			return mailer.Recipient{}, fmt.Errorf("invalid address %q: %w", v, err)
		}
		named = named || addr.Name != ""
		addrs = append(addrs, addr)
	}

	switch {
	case named:
		names := make(map[string]string, len(addrs))
		for _, a := range addrs {
			names[a.Address] = a.Name
		}
		return mailer.Named(names), nil
	case len(addrs) == 1:
		return mailer.Single(addrs[0].Address), nil
	default:
		list := make([]string, len(addrs))
		for i, a := range addrs {
			list[i] = a.Address
		}
		return mailer.List(list...), nil
	}
}

// parseAddress accepts RFC 5322 addresses plus unquoted display names
// containing commas or dots, as in "Doe, John <j@x.com>".
func parseAddress(v string) (*mail.Address, error) {
	addr, err := mail.ParseAddress(v)
	if err == nil {
		return addr, nil
	}

	open := strings.LastIndex(v, "<")
	name := strings.TrimSpace(v[:max(open, 0)])
	if open <= 0 || !strings.HasSuffix(strings.TrimSpace(v), ">") || strings.HasPrefix(name, `"`) {
		return nil, err
	}
	quoted := `"` + strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(name) + `" ` + v[open:]
	if addr, qerr := mail.ParseAddress(quoted); qerr == nil {
		return addr, nil
	}
	return nil, err
}

type envelopeFile struct {
	Headers       map[string]string `json:"headers"`
	Substitutions map[string]string `json:"substitutions"`
	CustomArgs    map[string]string `json:"custom_args"`
	Subject       string            `json:"subject"`
	To            []string          `json:"to"`
	Cc            []string          `json:"cc"`
	Bcc           []string          `json:"bcc"`
	SendAt        int64             `json:"send_at"`
}

// loadPersonalizations reads a JSON array of personalizations from path.
func loadPersonalizations(path string) ([]mailer.Envelope, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read personalizations: %w", err)
	}
	return parsePersonalizations(data)
}

func parsePersonalizations(data []byte) ([]mailer.Envelope, error) {
	var files []envelopeFile
	if err := json.Unmarshal(data, &files); err != nil {
		return nil, fmt.Errorf("decode personalizations: %w", err)
	}

	out := make([]mailer.Envelope, 0, len(files))
	for i, f := range files {
		to, err := parseRecipient(f.To)
		if err != nil {
			return nil, fmt.Errorf("personalization %d: to: %w", i, err)
		}
		cc, err := parseRecipient(f.Cc)
		if err != nil {
			return nil, fmt.Errorf("personalization %d: cc: %w", i, err)
		}
		bcc, err := parseRecipient(f.Bcc)
		if err != nil {
			return nil, fmt.Errorf("personalization %d: bcc: %w", i, err)
		}
		out = append(out, mailer.Envelope{
			To:            to,
			Cc:            cc,
			Bcc:           bcc,
			Subject:       f.Subject,
			Headers:       f.Headers,
			Substitutions: f.Substitutions,
			CustomArgs:    f.CustomArgs,
			SendAt:        f.SendAt,
		})
	}
	return out, nil
}
