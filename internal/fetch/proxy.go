package fetch

import (
	"math/rand"
	"net/http"
	"net/url"

	"github.com/tanishqmekala/auth-component-detector/internal/config"
)

// ProxyManager selects and applies outbound proxies for the HTTP fetcher.
type ProxyManager struct {
	Config *config.ProxyConfig
}

// NewProxyManager creates a new proxy manager
func NewProxyManager(cfg *config.ProxyConfig) *ProxyManager {
	return &ProxyManager{Config: cfg}
}

// ProxyURL returns a proxy URL from the configuration, or nil when proxying
// is disabled or no proxies are listed.
func (m *ProxyManager) ProxyURL() (*url.URL, error) {
	if !m.Config.Enabled || len(m.Config.List) == 0 {
		return nil, nil
	}

	proxyStr := m.Config.List[0]
	if m.Config.Rotate && len(m.Config.List) > 1 {
		proxyStr = m.Config.List[rand.Intn(len(m.Config.List))]
	}

	proxyURL, err := url.Parse(proxyStr)
	if err != nil {
		return nil, err
	}

	if m.Config.Auth.Username != "" && m.Config.Auth.Password != "" {
		proxyURL.User = url.UserPassword(m.Config.Auth.Username, m.Config.Auth.Password)
	}

	return proxyURL, nil
}

// ApplyToTransport applies the selected proxy to an HTTP transport and
// returns the proxy address that was used, if any.
func (m *ProxyManager) ApplyToTransport(transport *http.Transport) (string, error) {
	proxyURL, err := m.ProxyURL()
	if err != nil {
		return "", err
	}

	if proxyURL != nil {
		transport.Proxy = http.ProxyURL(proxyURL)
		return proxyURL.String(), nil
	}

	return "", nil
}
