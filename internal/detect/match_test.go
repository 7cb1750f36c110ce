package detect

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

func selectionOf(t *testing.T, html, selector string) *goquery.Selection {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("parsing fixture: %v", err)
	}
	sel := doc.Find(selector).First()
	if sel.Length() == 0 {
		t.Fatalf("selector %q matched nothing in %q", selector, html)
	}
	return sel
}

func TestAttrsMatch(t *testing.T) {
	keywords := []string{"login", "auth"}

	tests := []struct {
		name  string
		html  string
		match bool
	}{
		{"id", `<div id="login-modal"></div>`, true},
		{"class list", `<div class="panel login wide"></div>`, true},
		{"action", `<div action="/auth/start"></div>`, true},
		{"aria-label", `<div aria-label="Login dialog"></div>`, true},
		{"data-testid", `<div data-testid="auth-box"></div>`, true},
		{"uppercase value", `<div id="LOGIN"></div>`, true},
		{"substring", `<div class="prelogin-step"></div>`, true},
		{"no auth attrs", `<div id="header" class="wide"></div>`, false},
		{"no attrs at all", `<div></div>`, false},
		{"keyword in uninspected attr", `<div data-info="login"></div>`, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel := selectionOf(t, tt.html, "div")
			if got := attrsMatch(sel, keywords); got != tt.match {
				t.Errorf("attrsMatch(%q) = %v, want %v", tt.html, got, tt.match)
			}
		})
	}
}

func TestContainsAny(t *testing.T) {
	if !containsAny("user_login", []string{"nope", "login"}) {
		t.Error("expected a match on the second substring")
	}
	if containsAny("user_login", []string{"email"}) {
		t.Error("expected no match")
	}
	if containsAny("", []string{"login"}) {
		t.Error("empty value must never match")
	}
}

func TestNormalizeStripsNonContent(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(`
		<div id="keep">
			<script>alert(1)</script>
			<style>body{}</style>
			<noscript>fallback</noscript>
			<!-- secret note -->
			<span>visible</span>
		</div>`))
	if err != nil {
		t.Fatalf("parsing fixture: %v", err)
	}
	Normalize(doc)

	for _, tag := range []string{"script", "style", "noscript"} {
		if doc.Find(tag).Length() != 0 {
			t.Errorf("%s subtree should have been removed", tag)
		}
	}
	html, err := doc.Html()
	if err != nil {
		t.Fatalf("serializing: %v", err)
	}
	if strings.Contains(html, "secret note") {
		t.Error("comment nodes should have been removed")
	}
	if !strings.Contains(html, "visible") {
		t.Error("content nodes must survive normalization")
	}
	if doc.Find("#keep span").Length() != 1 {
		t.Error("surviving structure should be intact")
	}
}

func TestDedupKey(t *testing.T) {
	if got := dedupKey("short", 200); got != "short" {
		t.Errorf("short snippets key on themselves, got %q", got)
	}
	long := strings.Repeat("a", 250)
	if got := dedupKey(long, 200); len([]rune(got)) != 200 {
		t.Errorf("long snippets key on a 200-character prefix, got %d characters", len([]rune(got)))
	}
	// Distinct tails beyond the prefix do not distinguish candidates.
	if dedupKey(long+"x", 200) != dedupKey(long+"y", 200) {
		t.Error("keys must ignore everything past the prefix")
	}
}
