// Package scan drives fetch, detection, and result assembly for URLs.
package scan

import (
	"context"
	"math"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/tanishqmekala/auth-component-detector/internal/config"
	"github.com/tanishqmekala/auth-component-detector/internal/detect"
	"github.com/tanishqmekala/auth-component-detector/internal/fetch"
	"github.com/tanishqmekala/auth-component-detector/pkg/models"
)

// NoTitle is reported when a page has no usable <title> element.
const NoTitle = "No title"

// Scanner runs single-URL scans. It holds no per-scan state, so one Scanner
// can serve many concurrent scans.
type Scanner struct {
	Config  *config.AppConfig
	Fetcher fetch.Fetcher
	Rules   detect.Config
}

// NewScanner creates a scanner with the fetcher and rule set the
// configuration asks for.
func NewScanner(cfg *config.AppConfig) *Scanner {
	return &Scanner{
		Config:  cfg,
		Fetcher: fetch.New(cfg),
		Rules:   cfg.Detection.Rules(),
	}
}

// Scan fetches one URL, runs detection over the returned document, and
// assembles the result. Fetch and parse failures land in the result's Error
// field; they are never propagated past this point.
func (s *Scanner) Scan(ctx context.Context, url string) models.ScanResult {
	start := time.Now()
	result := models.ScanResult{URL: url}

	page, err := s.Fetcher.Fetch(ctx, url)
	if err != nil {
		fe := fetch.Classify(err)
		result.Error = fe.Error()
		if fe.Kind == fetch.HTTPError {
			result.StatusCode = fe.StatusCode
		}
		result.ScanTime = elapsedSeconds(start)
		return result
	}
	result.StatusCode = page.StatusCode

	auth, err := detect.Detect(page.HTML, s.Rules)
	if err != nil {
		result.Error = (&fetch.Error{Kind: fetch.Other, Message: err.Error()}).Error()
		result.ScanTime = elapsedSeconds(start)
		return result
	}

	result.Success = true
	result.PageTitle = pageTitle(page.HTML)
	result.AuthResult = &auth
	result.ScanTime = elapsedSeconds(start)
	return result
}

// pageTitle extracts the text of the document's first <title> element.
func pageTitle(rawHTML string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return NoTitle
	}
	title := strings.TrimSpace(doc.Find("title").First().Text())
	if title == "" {
		return NoTitle
	}
	return title
}

// elapsedSeconds returns the wall-clock seconds since start, rounded to two
// decimal places.
func elapsedSeconds(start time.Time) float64 {
	return math.Round(time.Since(start).Seconds()*100) / 100
}
