// Package detect locates authentication UI components in HTML documents
// using structural and lexical heuristics over the parsed tree.
package detect

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/tanishqmekala/auth-component-detector/pkg/models"
)

// NoComponentsSummary is reported when no rule matched anything.
const NoComponentsSummary = "No authentication components detected on this page."

// Detect parses raw HTML, normalizes the tree, runs every rule against it in
// order, and returns the deduplicated component list. It is a pure function:
// identical input always yields an identical result.
func Detect(rawHTML string, cfg Config) (models.DetectionResult, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return models.DetectionResult{}, fmt.Errorf("parsing document: %w", err)
	}
	Normalize(doc)

	agg := newAggregator(cfg)
	for _, rule := range rules {
		rule(doc, cfg, agg)
	}
	return agg.result(), nil
}

// aggregator collects candidates in rule order, dropping later near
// duplicates by dedup key.
type aggregator struct {
	cfg        Config
	seen       map[string]struct{}
	components []models.DetectedComponent
}

func newAggregator(cfg Config) *aggregator {
	return &aggregator{cfg: cfg, seen: make(map[string]struct{})}
}

// add appends a candidate unless its snippet's dedup key was already seen in
// this scan. First occurrence wins; later duplicates are silently dropped.
func (a *aggregator) add(kind string, sel *goquery.Selection, context string) {
	snippet := renderSnippet(sel, a.cfg.SnippetMaxLen)
	if snippet == "" {
		return
	}
	key := dedupKey(snippet, a.cfg.DedupPrefixLen)
	if _, ok := a.seen[key]; ok {
		return
	}
	a.seen[key] = struct{}{}
	a.components = append(a.components, models.DetectedComponent{
		Type:        kind,
		HTMLSnippet: snippet,
		Context:     context,
	})
}

// result assembles the final DetectionResult with the summary line.
func (a *aggregator) result() models.DetectionResult {
	if a.components == nil {
		// Keep the JSON encoding of an empty result as [] rather than null.
		a.components = []models.DetectedComponent{}
	}
	res := models.DetectionResult{
		Found:      len(a.components) > 0,
		Components: a.components,
		TotalFound: len(a.components),
		Summary:    NoComponentsSummary,
	}
	if res.Found {
		res.Summary = fmt.Sprintf("Found %d auth component(s): %s",
			len(a.components), strings.Join(a.distinctKinds(), ", "))
	}
	return res
}

// distinctKinds returns the component kinds present, in first-seen order.
func (a *aggregator) distinctKinds() []string {
	seen := make(map[string]struct{})
	var kinds []string
	for _, c := range a.components {
		if _, ok := seen[c.Type]; ok {
			continue
		}
		seen[c.Type] = struct{}{}
		kinds = append(kinds, c.Type)
	}
	return kinds
}
