// Package api exposes the scanner over a small JSON API. It owns request
// validation and URL normalization; scanning itself lives in internal/scan.
package api

import (
	"encoding/json"
	"net/http"

	"github.com/tanishqmekala/auth-component-detector/internal/scan"
)

// Server handles the scan API endpoints.
type Server struct {
	Scanner *scan.Scanner
}

// NewServer creates a new API server around a scanner.
func NewServer(scanner *scan.Scanner) *Server {
	return &Server{Scanner: scanner}
}

// Routes returns the HTTP handler for all API endpoints.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/scan", s.handleScan)
	mux.HandleFunc("GET /api/scan-defaults", s.handleScanDefaults)
	return mux
}

type scanRequest struct {
	URL string `json:"url"`
}

type apiError struct {
	Error string `json:"error"`
}

// handleScan scans a single URL supplied in the request body.
func (s *Server) handleScan(w http.ResponseWriter, r *http.Request) {
	var req scanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.URL == "" {
		writeJSON(w, http.StatusBadRequest, apiError{Error: "Missing url"})
		return
	}

	url, err := NormalizeURL(req.URL)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, apiError{Error: "Invalid URL"})
		return
	}

	result := s.Scanner.Scan(r.Context(), url)
	writeJSON(w, http.StatusOK, result)
}

// handleScanDefaults scans the configured demo sites and returns the batch
// report.
func (s *Server) handleScanDefaults(w http.ResponseWriter, r *http.Request) {
	report := s.Scanner.ScanAll(r.Context(), s.Scanner.Config.Scan.Sites)
	writeJSON(w, http.StatusOK, report)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
