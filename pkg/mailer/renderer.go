package mailer

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"path"
	"strings"
	"sync"
	texttemplate "text/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/dmitrymomot/gridmail/pkg/sanitizer"
)

// Renderer turns markdown templates with YAML frontmatter into html and plain-text bodies.
type Renderer struct {
	fs fs.FS
	md goldmark.Markdown

	templates   map[string]*parsedTemplate
	layouts     map[string]*template.Template
	templateDir string
	layoutDir   string

	mu sync.RWMutex
}

type parsedTemplate struct {
	tmpl  *texttemplate.Template
	front Frontmatter
}

// RendererConfig configures the renderer.
type RendererConfig struct {
	TemplateDir string // Default: "."
	LayoutDir   string // Default: "layouts"
}

// NewRenderer creates a renderer with default directories.
func NewRenderer(filesystem fs.FS) *Renderer {
	return NewRendererWithConfig(filesystem, RendererConfig{})
}

// NewRendererWithConfig creates a renderer with custom directories.
func NewRendererWithConfig(filesystem fs.FS, cfg RendererConfig) *Renderer {
	if cfg.TemplateDir == "" {
		cfg.TemplateDir = "."
	}
	if cfg.LayoutDir == "" {
		cfg.LayoutDir = "layouts"
	}

	return &Renderer{
		fs:          filesystem,
		md:          goldmark.New(goldmark.WithExtensions(extension.GFM)),
		templates:   make(map[string]*parsedTemplate),
		layouts:     make(map[string]*template.Template),
		templateDir: cfg.TemplateDir,
		layoutDir:   cfg.LayoutDir,
	}
}

// RenderResult holds the rendered bodies and the template frontmatter.
type RenderResult struct {
	HTML  string
	Text  string
	Front Frontmatter
}

// Render executes the named template with data and wraps the html in a layout.
// The frontmatter "layout" key wins over defaultLayout.
// The text body is the executed markdown with any raw html stripped.
func (r *Renderer) Render(name, defaultLayout string, data any) (*RenderResult, error) {
	parsed, err := r.template(name)
	if err != nil {
		return nil, err
	}

	var md bytes.Buffer
	if err := parsed.tmpl.Execute(&md, data); err != nil {
		return nil, fmt.Errorf("%w: failed to execute template: %v", ErrRenderFailed, err)
	}

	var body bytes.Buffer
	if err := r.md.Convert(md.Bytes(), &body); err != nil {
		return nil, fmt.Errorf("%w: failed to convert markdown: %v", ErrRenderFailed, err)
	}

	layoutName := parsed.front.Layout
	if layoutName == "" {
		layoutName = defaultLayout
	}
	layout, err := r.layout(layoutName)
	if err != nil {
		return nil, err
	}

	var out bytes.Buffer
	err = layout.Execute(&out, map[string]any{
		"Content": template.HTML(body.String()),
		"Subject": parsed.front.Subject,
		"Vars":    parsed.front.Vars,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute layout: %v", ErrRenderFailed, err)
	}

	return &RenderResult{
		HTML:  out.String(),
		Text:  strings.TrimSpace(sanitizer.StripHTML(md.String())),
		Front: parsed.front,
	}, nil
}

func (r *Renderer) template(name string) (*parsedTemplate, error) {
	r.mu.RLock()
	cached, ok := r.templates[name]
	r.mu.RUnlock()
	if ok {
		return cached, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if cached, ok := r.templates[name]; ok {
		return cached, nil
	}

	content, err := fs.ReadFile(r.fs, path.Join(r.templateDir, name))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrTemplateNotFound, name, err)
	}

	t, err := ParseTemplate(content)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrRenderFailed, name, err)
	}

	tmpl, err := texttemplate.New(name).Parse(t.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse template body: %v", ErrRenderFailed, err)
	}

	cached = &parsedTemplate{tmpl: tmpl, front: t.Front}
	r.templates[name] = cached
	return cached, nil
}

func (r *Renderer) layout(name string) (*template.Template, error) {
	r.mu.RLock()
	cached, ok := r.layouts[name]
	r.mu.RUnlock()
	if ok {
		return cached, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if cached, ok := r.layouts[name]; ok {
		return cached, nil
	}

	content, err := fs.ReadFile(r.fs, path.Join(r.layoutDir, name))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrLayoutNotFound, name, err)
	}

	layout, err := template.New(name).Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse layout: %v", ErrRenderFailed, err)
	}

	r.layouts[name] = layout
	return layout, nil
}
