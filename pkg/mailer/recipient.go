package mailer

import (
	"slices"
	"strings"
)

type recipientKind uint8

const (
	recipientUnset recipientKind = iota
	recipientSingle
	recipientList
	recipientNamed
)

// Recipient is an address field in one of three shapes:
// a single bare address, a list of bare addresses, or an address→name mapping.
// The zero value means "not set".
type Recipient struct {
	names     map[string]string
	addresses []string
	kind      recipientKind
}

// Single is one bare address without a display name.
func Single(address string) Recipient {
	return Recipient{kind: recipientSingle, addresses: []string{address}}
}

// List is an ordered list of bare addresses.
func List(addresses ...string) Recipient {
	return Recipient{kind: recipientList, addresses: slices.Clone(addresses)}
}

// Named maps addresses to display names.
// Entries are emitted in ascending address order.
func Named(names map[string]string) Recipient {
	addresses := make([]string, 0, len(names))
	copied := make(map[string]string, len(names))
	for address, name := range names {
		addresses = append(addresses, address)
		copied[address] = name
	}
	slices.Sort(addresses)
	return Recipient{kind: recipientNamed, addresses: addresses, names: copied}
}

// NamedAddress is a Named recipient with exactly one entry.
func NamedAddress(address, name string) Recipient {
	return Named(map[string]string{address: name})
}

// IsZero reports whether the recipient holds no usable address.
func (r Recipient) IsZero() bool {
	for _, a := range r.addresses {
		if strings.TrimSpace(a) != "" {
			return false
		}
	}
	return true
}

// IsSingle reports whether r is a bare address (the only shape accepted for reply-to).
func (r Recipient) IsSingle() bool {
	return r.kind == recipientSingle
}

// Len returns the number of usable addresses.
func (r Recipient) Len() int {
	return len(r.Normalize())
}

// Addresses returns the usable addresses in emission order.
func (r Recipient) Addresses() []string {
	entries := r.Normalize()
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Email
	}
	return out
}

// First returns the first usable entry. ok is false for an empty recipient.
func (r Recipient) First() (EmailAddress, bool) {
	entries := r.Normalize()
	if len(entries) == 0 {
		return EmailAddress{}, false
	}
	return entries[0], true
}

// Normalize converts every shape into wire address entries.
// Blank addresses are dropped; names are only present for Named recipients.
func (r Recipient) Normalize() []EmailAddress {
	if r.IsZero() {
		return nil
	}
	out := make([]EmailAddress, 0, len(r.addresses))
	for _, a := range r.addresses {
		address := strings.TrimSpace(a)
		if address == "" {
			continue
		}
		entry := EmailAddress{Email: address}
		if r.kind == recipientNamed {
			entry.Name = r.names[a]
		}
		out = append(out, entry)
	}
	return out
}

// String renders the recipient as a comma separated RFC 5322 style list.
func (r Recipient) String() string {
	entries := r.Normalize()
	parts := make([]string, len(entries))
	for i, e := range entries {
		parts[i] = e.String()
	}
	return strings.Join(parts, ", ")
}
