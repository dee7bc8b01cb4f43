// Package sanitize cleans free text typed into the public lead form before
// it is validated, stored, or placed in an email.
package sanitize

import (
	"html"
	"regexp"
	"strings"
)

var tagPattern = regexp.MustCompile(`<[^>]*>`)

// StripHTML drops tags, decodes entities, then drops any tags the decoding
// revealed, so "&lt;b&gt;" cannot smuggle markup through.
func StripHTML(s string) string {
	s = tagPattern.ReplaceAllString(s, "")
	s = html.UnescapeString(s)
	return tagPattern.ReplaceAllString(s, "")
}

// Text strips markup and collapses every run of whitespace, including
// newlines and tabs, to a single space.
func Text(s string) string {
	return strings.Join(strings.Fields(StripHTML(s)), " ")
}
