package sanitizer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStripHTML(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain text unchanged", "Monthly report", "Monthly report"},
		{"tags removed", "<b>Hello</b> <i>Alice</i>", "Hello Alice"},
		{"script dropped", "Hi<script>alert(1)</script>", "Hi"},
		{"entities decoded", "Tom &amp; Jerry", "Tom & Jerry"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, StripHTML(tt.input))
		})
	}
}

func TestHeaderLine(t *testing.T) {
	t.Parallel()

	require.Equal(t, "Welcome Alice", HeaderLine("Welcome\r\n  <em>Alice</em>\n"))
	require.Equal(t, "Injected: Header", HeaderLine("Injected:\r\nHeader"))
	require.Empty(t, HeaderLine("  \n "))
}
