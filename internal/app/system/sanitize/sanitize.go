// Package sanitize strips markup from free-text fields that arrive in
// API payloads or seed files before they are persisted.
package sanitize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var policy = bluemonday.StrictPolicy()

// Text removes all HTML from s and unescapes the remaining entities,
// so stored values are plain text rather than entity-encoded.
func Text(s string) string {
	return strings.TrimSpace(html.UnescapeString(policy.Sanitize(s)))
}
