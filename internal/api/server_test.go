package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/tanishqmekala/auth-component-detector/internal/api"
	"github.com/tanishqmekala/auth-component-detector/internal/config"
	"github.com/tanishqmekala/auth-component-detector/internal/detect"
	"github.com/tanishqmekala/auth-component-detector/internal/fetch"
	"github.com/tanishqmekala/auth-component-detector/internal/scan"
	"github.com/tanishqmekala/auth-component-detector/pkg/models"
)

type fixtureFetcher struct{ html string }

func (f *fixtureFetcher) Fetch(_ context.Context, _ string) (*fetch.Page, error) {
	return &fetch.Page{HTML: f.html, StatusCode: 200}, nil
}

func newTestServer(html string, sites []string) http.Handler {
	cfg := config.CreateDefault(2, time.Second, false, "", "")
	if sites != nil {
		cfg.Scan.Sites = sites
	}
	scanner := &scan.Scanner{
		Config:  cfg,
		Fetcher: &fixtureFetcher{html: html},
		Rules:   detect.DefaultConfig(),
	}
	return api.NewServer(scanner).Routes()
}

const loginFixture = `<html><head><title>Login</title></head><body>` +
	`<form id="login-form"><input type="password"></form></body></html>`

func TestScanEndpoint(t *testing.T) {
	handler := newTestServer(loginFixture, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/scan", strings.NewReader(`{"url":"example.com/login"}`))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var result models.ScanResult
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if result.URL != "https://example.com/login" {
		t.Errorf("expected the normalized URL echoed back, got %q", result.URL)
	}
	if !result.Success || result.AuthResult == nil || !result.AuthResult.Found {
		t.Errorf("expected a successful scan with components, got %+v", result)
	}
}

func TestScanEndpointMissingURL(t *testing.T) {
	handler := newTestServer(loginFixture, nil)

	for _, body := range []string{``, `{}`, `{"url":""}`, `not json`} {
		req := httptest.NewRequest(http.MethodPost, "/api/scan", strings.NewReader(body))
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("body %q: expected 400, got %d", body, rec.Code)
		}
	}
}

func TestScanEndpointInvalidURL(t *testing.T) {
	handler := newTestServer(loginFixture, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/scan", strings.NewReader(`{"url":"https://"}`))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Invalid URL") {
		t.Errorf("expected an invalid-URL message, got %s", rec.Body.String())
	}
}

func TestScanDefaultsEndpoint(t *testing.T) {
	sites := []string{"https://a.example.com/login", "https://b.example.com/login"}
	handler := newTestServer(loginFixture, sites)

	req := httptest.NewRequest(http.MethodGet, "/api/scan-defaults", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var report models.BatchReport
	if err := json.Unmarshal(rec.Body.Bytes(), &report); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if report.TotalScanned != len(sites) {
		t.Errorf("expected %d results, got %d", len(sites), report.TotalScanned)
	}
	if report.SitesWithAuth != len(sites) {
		t.Errorf("expected every site flagged, got %d", report.SitesWithAuth)
	}
	for i, result := range report.Results {
		if result.URL != sites[i] {
			t.Errorf("result %d out of order: got %s, want %s", i, result.URL, sites[i])
		}
	}
}
