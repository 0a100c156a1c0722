package mailer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseTemplate(t *testing.T) {
	t.Parallel()

	t.Run("with frontmatter", func(t *testing.T) {
		t.Parallel()

		tmpl, err := ParseTemplate([]byte(`---
subject: Welcome {{.Name}}
template_id: d-1
layout: fancy.html
categories:
  - onboarding
preheader: Say hi
---
# Hello
`))
		require.NoError(t, err)
		require.Equal(t, "Welcome {{.Name}}", tmpl.Front.Subject)
		require.Equal(t, "d-1", tmpl.Front.TemplateID)
		require.Equal(t, "fancy.html", tmpl.Front.Layout)
		require.Equal(t, []string{"onboarding"}, tmpl.Front.Categories)
		require.Equal(t, "Say hi", tmpl.Front.Vars["preheader"])
		require.Equal(t, "# Hello\n", tmpl.Body)
	})

	t.Run("without frontmatter", func(t *testing.T) {
		t.Parallel()

		tmpl, err := ParseTemplate([]byte("Just a body"))
		require.NoError(t, err)
		require.Empty(t, tmpl.Front.Subject)
		require.Equal(t, "Just a body", tmpl.Body)
	})

	t.Run("empty frontmatter", func(t *testing.T) {
		t.Parallel()

		tmpl, err := ParseTemplate([]byte("---\n\n---\nBody"))
		require.NoError(t, err)
		require.Equal(t, "Body", tmpl.Body)
	})

	t.Run("crlf line endings", func(t *testing.T) {
		t.Parallel()

		tmpl, err := ParseTemplate([]byte("---\r\nsubject: Hi\r\n---\r\nBody"))
		require.NoError(t, err)
		require.Equal(t, "Hi", tmpl.Front.Subject)
		require.Equal(t, "Body", tmpl.Body)
	})

	t.Run("dashes inside a value", func(t *testing.T) {
		t.Parallel()

		tmpl, err := ParseTemplate([]byte("---\nsubject: \"Q3 --- report\"\n---\nBody\n"))
		require.NoError(t, err)
		require.Equal(t, "Q3 --- report", tmpl.Front.Subject)
		require.Equal(t, "Body\n", tmpl.Body)
	})

	t.Run("closing delimiter at end of file", func(t *testing.T) {
		t.Parallel()

		tmpl, err := ParseTemplate([]byte("---\nlayout: plain\n---"))
		require.NoError(t, err)
		require.Equal(t, "plain", tmpl.Front.Layout)
		require.Empty(t, tmpl.Body)
	})

	t.Run("body keeps horizontal rules", func(t *testing.T) {
		t.Parallel()

		tmpl, err := ParseTemplate([]byte("---\nsubject: Hi\n---\nIntro\n\n---\n\nOutro"))
		require.NoError(t, err)
		require.Equal(t, "Intro\n\n---\n\nOutro", tmpl.Body)
	})

	t.Run("unclosed frontmatter", func(t *testing.T) {
		t.Parallel()

		_, err := ParseTemplate([]byte("---\nsubject: Hi\nBody"))
		require.ErrorIs(t, err, ErrInvalidFrontmatter)
	})

	t.Run("only delimiter", func(t *testing.T) {
		t.Parallel()

		_, err := ParseTemplate([]byte("---\n"))
		require.ErrorIs(t, err, ErrInvalidFrontmatter)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		t.Parallel()

		_, err := ParseTemplate([]byte("---\nsubject: [unclosed\n---\nBody"))
		require.ErrorIs(t, err, ErrInvalidFrontmatter)
	})
}
