// Package fetch retrieves the rendered HTML of a URL, through either a
// headless browser or a plain HTTP client.
package fetch

import (
	"context"

	"github.com/tanishqmekala/auth-component-detector/internal/config"
)

// Page is the raw material a fetch produces for the detection engine.
type Page struct {
	HTML       string
	StatusCode int
}

// Fetcher defines the interface for a page fetcher
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*Page, error)
}

// New creates a new fetcher based on the configuration
func New(cfg *config.AppConfig) Fetcher {
	if cfg.Fetcher.Browser {
		return NewBrowserFetcher(cfg)
	}
	return NewHTTPFetcher(cfg)
}
