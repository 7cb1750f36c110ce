package api

import (
	"errors"
	"net/url"
	"strings"
)

// ErrInvalidURL is returned for input that cannot become a scannable URL.
var ErrInvalidURL = errors.New("invalid URL")

// NormalizeURL trims the input, defaults the scheme to https, and validates
// that a host is present. This runs before any URL reaches the scanner.
func NormalizeURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrInvalidURL
	}
	if !strings.HasPrefix(raw, "http://") && !strings.HasPrefix(raw, "https://") {
		raw = "https://" + raw
	}
	parsed, err := url.Parse(raw)
	if err != nil || parsed.Host == "" {
		return "", ErrInvalidURL
	}
	return raw, nil
}
