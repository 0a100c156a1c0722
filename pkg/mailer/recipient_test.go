package mailer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRecipient_Normalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		r    Recipient
		want []EmailAddress
	}{
		{
			name: "zero value",
			r:    Recipient{},
			want: nil,
		},
		{
			name: "single",
			r:    Single("a@x.com"),
			want: []EmailAddress{{Email: "a@x.com"}},
		},
		{
			name: "empty single is absent",
			r:    Single(""),
			want: nil,
		},
		{
			name: "list keeps order",
			r:    List("b@x.com", "a@x.com"),
			want: []EmailAddress{{Email: "b@x.com"}, {Email: "a@x.com"}},
		},
		{
			name: "list drops blank entries",
			r:    List("a@x.com", " ", ""),
			want: []EmailAddress{{Email: "a@x.com"}},
		},
		{
			name: "named sorted by address",
			r:    Named(map[string]string{"b@x.com": "Bob", "a@x.com": "Alice"}),
			want: []EmailAddress{{Email: "a@x.com", Name: "Alice"}, {Email: "b@x.com", Name: "Bob"}},
		},
		{
			name: "named with empty name",
			r:    NamedAddress("a@x.com", ""),
			want: []EmailAddress{{Email: "a@x.com"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, tt.r.Normalize())
		})
	}
}

func TestRecipient_IsZero(t *testing.T) {
	t.Parallel()

	require.True(t, Recipient{}.IsZero())
	require.True(t, Single("").IsZero())
	require.True(t, List().IsZero())
	require.True(t, Named(nil).IsZero())
	require.False(t, Single("a@x.com").IsZero())
}

func TestRecipient_First(t *testing.T) {
	t.Parallel()

	first, ok := Named(map[string]string{"z@x.com": "Zed", "m@x.com": "Em"}).First()
	require.True(t, ok)
	require.Equal(t, EmailAddress{Email: "m@x.com", Name: "Em"}, first)

	first, ok = List("b@x.com", "a@x.com").First()
	require.True(t, ok)
	require.Equal(t, "b@x.com", first.Email)

	_, ok = Recipient{}.First()
	require.False(t, ok)
}

func TestRecipient_NamedCopiesInput(t *testing.T) {
	t.Parallel()

	in := map[string]string{"a@x.com": "Alice"}
	r := Named(in)
	in["a@x.com"] = "Mallory"
	in["b@x.com"] = "Bob"

	require.Equal(t, []EmailAddress{{Email: "a@x.com", Name: "Alice"}}, r.Normalize())
}

func TestRecipient_String(t *testing.T) {
	t.Parallel()

	r := Named(map[string]string{"a@x.com": "Alice", "b@x.com": ""})
	require.Equal(t, "Alice <a@x.com>, b@x.com", r.String())
	require.Equal(t, []string{"a@x.com", "b@x.com"}, r.Addresses())
	require.Equal(t, 2, r.Len())
}
