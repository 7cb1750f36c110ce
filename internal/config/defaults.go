package config

import "time"

// Fetcher and scan defaults. The fetch timeout is the sole suspension point
// of a scan, so it bounds the worst-case duration of a single URL.
const (
	DefaultTimeout        = 15 * time.Second
	DefaultSettleTime     = 2 * time.Second
	DefaultViewportWidth  = 1280
	DefaultViewportHeight = 800
	DefaultWorkers        = 3
	DefaultServerAddr     = ":5000"
)

// DefaultUserAgents provides a list of common user agents
var DefaultUserAgents = []string{
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
	"Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
}

// DefaultSites provides well-known login pages to scan when no URLs are given
var DefaultSites = []string{
	"https://github.com/login",
	"https://www.linkedin.com/login",
	"https://www.facebook.com/login",
	"https://login.salesforce.com/",
	"https://login.twitter.com/i/flow/login",
}
