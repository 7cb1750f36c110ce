package detect

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// TruncationMarker is appended when a snippet exceeds the configured length.
const TruncationMarker = "\n<!-- ... truncated ... -->"

// renderSnippet serializes the element's outer HTML, trimmed, and truncates
// it at maxLen characters with the marker appended. Returns "" only if the
// element cannot be serialized at all.
func renderSnippet(sel *goquery.Selection, maxLen int) string {
	h, err := goquery.OuterHtml(sel)
	if err != nil {
		return ""
	}
	h = strings.TrimSpace(h)
	if r := []rune(h); len(r) > maxLen {
		h = string(r[:maxLen]) + TruncationMarker
	}
	return h
}

// dedupKey identifies near-duplicate candidates by the first prefixLen
// characters of their serialized markup. Two matches whose snippets share
// that prefix collapse into one, keeping the earliest. Distinct components
// that happen to share a long common prefix collapse too; that matches the
// historical behavior and is deliberate.
func dedupKey(snippet string, prefixLen int) string {
	if r := []rune(snippet); len(r) > prefixLen {
		return string(r[:prefixLen])
	}
	return snippet
}
