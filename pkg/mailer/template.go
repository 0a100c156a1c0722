package mailer

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Frontmatter is the YAML header of a message template.
type Frontmatter struct {
	Vars       map[string]any `yaml:",inline"`
	Subject    string         `yaml:"subject"`
	TemplateID string         `yaml:"template_id"`
	Layout     string         `yaml:"layout"`
	Categories []string       `yaml:"categories"`
}

// Template is a parsed template file.
type Template struct {
	Body  string
	Front Frontmatter
}

var frontmatterDelimiter = []byte("---")

// ParseTemplate splits a template file into its frontmatter and markdown body.
// Files without a leading "---" have no frontmatter.
func ParseTemplate(content []byte) (*Template, error) {
	if !bytes.HasPrefix(content, frontmatterDelimiter) {
		return &Template{Body: string(content)}, nil
	}

	rest := bytes.TrimLeft(bytes.TrimPrefix(content, frontmatterDelimiter), "\r\n")
	if len(rest) == 0 {
		return nil, fmt.Errorf("%w: no content after opening delimiter", ErrInvalidFrontmatter)
	}

	header, body, ok := splitFrontmatter(rest)
	if !ok {
		return nil, fmt.Errorf("%w: closing delimiter not found", ErrInvalidFrontmatter)
	}

	t := &Template{Body: string(body)}
	if len(bytes.TrimSpace(header)) > 0 {
		if err := yaml.Unmarshal(header, &t.Front); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidFrontmatter, err)
		}
	}
	return t, nil
}

// splitFrontmatter finds the closing delimiter on a line of its own.
// The line break after it belongs to the delimiter.
func splitFrontmatter(rest []byte) (header, body []byte, ok bool) {
	for start := 0; start <= len(rest); {
		line := rest[start:]
		next := len(rest)
		if i := bytes.IndexByte(line, '\n'); i >= 0 {
			line = line[:i]
			next = start + i + 1
		}
		if bytes.Equal(bytes.TrimSuffix(line, []byte("\r")), frontmatterDelimiter) {
			return rest[:start], rest[next:], true
		}
		if next == len(rest) {
			break
		}
		start = next
	}
	return nil, nil, false
}
