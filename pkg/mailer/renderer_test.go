package mailer

import (
	"sync"
	"sync/atomic"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"
)

func TestRenderer_Render(t *testing.T) {
	t.Parallel()

	fs := fstest.MapFS{
		"layouts/default.html": &fstest.MapFile{
			Data: []byte(`<html><title>{{.Subject}}</title><body>{{.Content}}</body></html>`),
		},
		"welcome.md": &fstest.MapFile{
			Data: []byte(`---
subject: Welcome
---
Hello **{{.Name}}**!

| a | b |
|---|---|
| 1 | 2 |
`),
		},
	}

	renderer := NewRendererWithConfig(fs, RendererConfig{LayoutDir: "layouts"})

	result, err := renderer.Render("welcome.md", "default.html", map[string]string{"Name": "Alice"})
	require.NoError(t, err)

	require.Contains(t, result.Text, "Hello **Alice**!")
	require.NotContains(t, result.Text, "<strong>")

	require.Contains(t, result.HTML, "<strong>Alice</strong>")
	require.Contains(t, result.HTML, "<table>")
	require.Contains(t, result.HTML, "<title>Welcome</title>")
	require.Equal(t, "Welcome", result.Front.Subject)
}

func TestRenderer_Render_FrontmatterLayoutWins(t *testing.T) {
	t.Parallel()

	fs := fstest.MapFS{
		"layouts/default.html": &fstest.MapFile{Data: []byte(`<main>{{.Content}}</main>`)},
		"layouts/fancy.html":   &fstest.MapFile{Data: []byte(`<div class="fancy">{{.Content}}</div>`)},
		"promo.md":             &fstest.MapFile{Data: []byte("---\nlayout: fancy.html\n---\nBuy now\n")},
	}

	result, err := NewRenderer(fs).Render("promo.md", "default.html", nil)
	require.NoError(t, err)
	require.Contains(t, result.HTML, `<div class="fancy">`)
}

func TestRenderer_Render_StripsRawHTMLFromText(t *testing.T) {
	t.Parallel()

	fs := fstest.MapFS{
		"layouts/default.html": &fstest.MapFile{Data: []byte(`{{.Content}}`)},
		"mixed.md":             &fstest.MapFile{Data: []byte("Tom &amp; <b>Jerry</b>\n")},
	}

	result, err := NewRenderer(fs).Render("mixed.md", "default.html", nil)
	require.NoError(t, err)
	require.Equal(t, "Tom & Jerry", result.Text)
}

func TestRenderer_Render_Errors(t *testing.T) {
	t.Parallel()

	fs := fstest.MapFS{
		"layouts/default.html": &fstest.MapFile{Data: []byte(`{{.Content}}`)},
		"broken.md":            &fstest.MapFile{Data: []byte("Hello {{.Name")},
		"ok.md":                &fstest.MapFile{Data: []byte("Hello")},
	}
	renderer := NewRenderer(fs)

	_, err := renderer.Render("missing.md", "default.html", nil)
	require.ErrorIs(t, err, ErrTemplateNotFound)

	_, err = renderer.Render("broken.md", "default.html", nil)
	require.ErrorIs(t, err, ErrRenderFailed)

	_, err = renderer.Render("ok.md", "nope.html", nil)
	require.ErrorIs(t, err, ErrLayoutNotFound)
}

func TestRenderer_Render_CachesTemplates(t *testing.T) {
	t.Parallel()

	var reads atomic.Int32
	cfs := &countingFS{
		MapFS: fstest.MapFS{
			"layouts/default.html": &fstest.MapFile{Data: []byte(`<html>{{.Content}}</html>`)},
			"layouts/other.html":   &fstest.MapFile{Data: []byte(`<div>{{.Content}}</div>`)},
			"email.md":             &fstest.MapFile{Data: []byte("Hello {{.Name}}\n")},
		},
		reads: &reads,
	}
	renderer := NewRenderer(cfs)

	first, err := renderer.Render("email.md", "default.html", map[string]string{"Name": "Alice"})
	require.NoError(t, err)
	require.Equal(t, int32(2), reads.Load(), "template and layout")

	second, err := renderer.Render("email.md", "default.html", map[string]string{"Name": "Bob"})
	require.NoError(t, err)
	require.Equal(t, int32(2), reads.Load(), "served from cache")
	require.NotEqual(t, first.HTML, second.HTML)

	_, err = renderer.Render("email.md", "other.html", nil)
	require.NoError(t, err)
	require.Equal(t, int32(3), reads.Load(), "only the new layout is read")
}

func TestRenderer_Render_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	fs := fstest.MapFS{
		"layouts/default.html": &fstest.MapFile{Data: []byte(`<html>{{.Content}}</html>`)},
		"email.md":             &fstest.MapFile{Data: []byte("Hello {{.ID}}\n")},
	}
	renderer := NewRenderer(fs)

	var wg sync.WaitGroup
	errs := make(chan error, 50)
	for i := range 50 {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			if _, err := renderer.Render("email.md", "default.html", map[string]int{"ID": id}); err != nil {
				errs <- err
			}
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Errorf("concurrent render failed: %v", err)
	}
}

// countingFS wraps MapFS and counts ReadFile calls.
type countingFS struct {
	fstest.MapFS
	reads *atomic.Int32
}

func (c *countingFS) ReadFile(name string) ([]byte, error) {
	c.reads.Add(1)
	return c.MapFS.ReadFile(name)
}
