package cli

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/gridmail/pkg/mailer"
)

func TestParseRecipient(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		values  []string
		want    mailer.Recipient
		wantErr bool
	}{
		{name: "none", values: nil, want: mailer.Recipient{}},
		{name: "single bare", values: []string{"a@x.com"}, want: mailer.Single("a@x.com")},
		{name: "angle brackets without name", values: []string{"<a@x.com>"}, want: mailer.Single("a@x.com")},
		{name: "list", values: []string{"a@x.com", "b@x.com"}, want: mailer.List("a@x.com", "b@x.com")},
		{
			name:   "named",
			values: []string{"Alice <a@x.com>", "b@x.com"},
			want:   mailer.Named(map[string]string{"a@x.com": "Alice", "b@x.com": ""}),
		},
		{
			name:   "comma in unquoted name",
			values: []string{"Doe, John <j@x.com>"},
			want:   mailer.Named(map[string]string{"j@x.com": "Doe, John"}),
		},
		{
			name:   "comma in quoted name",
			values: []string{`"Doe, Jane" <jane@x.com>`},
			want:   mailer.Named(map[string]string{"jane@x.com": "Doe, Jane"}),
		},
		{name: "invalid", values: []string{"not an address"}, wantErr: true},
		{name: "unterminated angle address", values: []string{"Doe, John <j@x.com"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := parseRecipient(tt.values)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want.Normalize(), got.Normalize())
			require.Equal(t, tt.want.IsSingle(), got.IsSingle())
		})
	}
}

func TestParsePersonalizations(t *testing.T) {
	t.Parallel()

	envelopes, err := parsePersonalizations([]byte(`[
		{"to": ["Alice <a@x.com>"], "substitutions": {"-name-": "Alice"}, "send_at": 1700000000},
		{"to": ["b@x.com"], "cc": ["c@x.com"], "subject": "Hi Bob", "custom_args": {"id": "2"}}
	]`))
	require.NoError(t, err)
	require.Len(t, envelopes, 2)

	require.Equal(t, []mailer.EmailAddress{{Email: "a@x.com", Name: "Alice"}}, envelopes[0].To.Normalize())
	require.Equal(t, map[string]string{"-name-": "Alice"}, envelopes[0].Substitutions)
	require.Equal(t, int64(1700000000), envelopes[0].SendAt)

	require.Equal(t, "Hi Bob", envelopes[1].Subject)
	require.Equal(t, []string{"c@x.com"}, envelopes[1].Cc.Addresses())
	require.Equal(t, map[string]string{"id": "2"}, envelopes[1].CustomArgs)
}

func TestParsePersonalizations_Errors(t *testing.T) {
	t.Parallel()

	_, err := parsePersonalizations([]byte(`{"to": []}`))
	require.Error(t, err)

	_, err = parsePersonalizations([]byte(`[{"to": ["broken"]}]`))
	require.ErrorContains(t, err, "personalization 0")
}

func TestParseSendAt(t *testing.T) {
	t.Parallel()

	at, err := parseSendAt("1700000000")
	require.NoError(t, err)
	require.Equal(t, int64(1700000000), at)

	at, err = parseSendAt("2023-11-14T22:13:20Z")
	require.NoError(t, err)
	require.Equal(t, int64(1700000000), at)

	_, err = parseSendAt("tomorrow")
	require.Error(t, err)
}
