package detect

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// inspectedAttrs is the fixed list of attributes keywords are matched
// against. Anything else on an element is ignored.
var inspectedAttrs = []string{
	"id", "class", "name", "action", "aria-label",
	"placeholder", "data-testid", "role", "for", "type",
}

// attrsMatch reports whether any inspected attribute of the element contains
// one of the keywords, case-insensitively. A missing attribute counts as an
// empty value and never matches.
func attrsMatch(sel *goquery.Selection, keywords []string) bool {
	for _, attr := range inspectedAttrs {
		val := strings.ToLower(sel.AttrOr(attr, ""))
		if val == "" {
			continue
		}
		if containsAny(val, keywords) {
			return true
		}
	}
	return false
}

// containsAny reports whether s contains any of the substrings.
func containsAny(s string, substrings []string) bool {
	for _, sub := range substrings {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
