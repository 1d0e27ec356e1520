package services

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// htmlPolicy limits generated HTML (email bodies, the printable report page)
// to basic formatting elements
var htmlPolicy = bluemonday.UGCPolicy()

// CleanText trims surrounding whitespace. Citizen and admin text is stored
// as typed; escaping happens where it is rendered.
func CleanText(s string) string {
	return strings.TrimSpace(s)
}

// SanitizeHTML drops scripts, event handlers and unknown elements from an
// HTML fragment. Callers escape user text before building the fragment.
func SanitizeHTML(fragment string) string {
	return htmlPolicy.Sanitize(fragment)
}
