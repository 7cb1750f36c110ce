package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/tanishqmekala/auth-component-detector/internal/config"
)

// HTTPFetcher fetches pages with a plain HTTP client. Cheaper than the
// browser backend but blind to auth UI rendered by JavaScript.
type HTTPFetcher struct {
	Config *config.AppConfig
	Proxy  *ProxyManager
}

// NewHTTPFetcher creates a new HTTP fetcher
func NewHTTPFetcher(cfg *config.AppConfig) *HTTPFetcher {
	return &HTTPFetcher{
		Config: cfg,
		Proxy:  NewProxyManager(&cfg.Proxies),
	}
}

// Fetch performs a single GET request and returns the response body. There
// is no retry here; a failed fetch is terminal for the scan and any retrying
// is up to the caller.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) (*Page, error) {
	transport := &http.Transport{}

	if f.Config.Proxies.Enabled && len(f.Config.Proxies.List) > 0 {
		if _, err := f.Proxy.ApplyToTransport(transport); err != nil {
			return nil, &Error{Kind: Other, Message: fmt.Sprintf("applying proxy: %v", err)}
		}
	}

	client := &http.Client{
		Transport: transport,
		Timeout:   f.Config.Fetcher.Timeout,
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &Error{Kind: Other, Message: err.Error()}
	}
	req.Header.Set("User-Agent", f.Config.Fetcher.UserAgent())

	resp, err := client.Do(req)
	if err != nil {
		return nil, Classify(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, &Error{Kind: HTTPError, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, Classify(err)
	}

	return &Page{HTML: string(body), StatusCode: resp.StatusCode}, nil
}
