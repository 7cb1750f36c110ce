package fetch

import (
	"context"
	"net/http"

	"github.com/chromedp/chromedp"

	"github.com/tanishqmekala/auth-component-detector/internal/config"
)

// BrowserFetcher renders pages in a headless browser so auth UI that is
// assembled by JavaScript shows up in the HTML the detection engine sees.
type BrowserFetcher struct {
	Config *config.AppConfig
}

// NewBrowserFetcher creates a new browser fetcher
func NewBrowserFetcher(cfg *config.AppConfig) *BrowserFetcher {
	return &BrowserFetcher{Config: cfg}
}

// Fetch navigates to the URL, waits for the page to settle, and returns the
// rendered document. The configured timeout bounds the whole operation.
func (f *BrowserFetcher) Fetch(ctx context.Context, url string) (*Page, error) {
	ctx, cancel := context.WithTimeout(ctx, f.Config.Fetcher.Timeout)
	defer cancel()

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", f.Config.Fetcher.Headless),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-setuid-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-first-run", true),
		chromedp.Flag("disable-extensions", true),
		chromedp.UserAgent(f.Config.Fetcher.UserAgent()),
		chromedp.WindowSize(f.Config.Fetcher.ViewportWidth, f.Config.Fetcher.ViewportHeight),
	)

	allocCtx, cancel := chromedp.NewExecAllocator(ctx, opts...)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	errChan := make(chan error, 1)
	var html string

	go func() {
		errChan <- chromedp.Run(browserCtx,
			chromedp.Navigate(url),
			chromedp.Sleep(f.Config.Fetcher.SettleTime),
			chromedp.OuterHTML("html", &html),
		)
	}()

	select {
	case err := <-errChan:
		if err != nil {
			return nil, Classify(err)
		}
	case <-ctx.Done():
		return nil, &Error{Kind: Timeout}
	}

	// The browser only hands back a document it managed to load, so report
	// the page as OK like a successful HTTP fetch would.
	return &Page{HTML: html, StatusCode: http.StatusOK}, nil
}
