package contact

import (
	"net/url"
	"strings"
)

// MailtoLink builds a mailto: URL that lets the visitor send the submission
// from their own mail client.
func MailtoLink(to string, sub Submission) string {
	return "mailto:" + to +
		"?subject=" + encodeURIComponent(Subject(sub)) +
		"&body=" + encodeURIComponent(Body(sub))
}

// encodeURIComponent percent-encodes s the way browsers do for URI
// components, so spaces become %20 rather than '+'.
func encodeURIComponent(s string) string {
	escaped := url.QueryEscape(s)
	return strings.NewReplacer(
		"+", "%20",
		"%21", "!",
		"%27", "'",
		"%28", "(",
		"%29", ")",
		"%2A", "*",
	).Replace(escaped)
}
