// Package sanitizer cleans rendered template output before it is placed in
// single-line message fields such as the subject.
package sanitizer

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	strictPolicy *bluemonday.Policy
	initOnce     sync.Once
)

func initPolicies() {
	initOnce.Do(func() {
		// StrictPolicy strips ALL HTML, returns plain text
		strictPolicy = bluemonday.StrictPolicy()
	})
}

// StripHTML removes every tag and decodes entities, leaving plain text.
func StripHTML(s string) string {
	initPolicies()
	return html.UnescapeString(strictPolicy.Sanitize(s))
}

// HeaderLine converts s into a single header-safe line: tags are stripped,
// CR and LF are removed and runs of whitespace collapse to one space.
func HeaderLine(s string) string {
	return strings.Join(strings.Fields(StripHTML(s)), " ")
}
