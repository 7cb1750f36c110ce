package models

// DetectedComponent is a single piece of authentication UI found in a page.
type DetectedComponent struct {
	Type        string `json:"type"`
	HTMLSnippet string `json:"html_snippet"`
	Context     string `json:"context"`
}

// DetectionResult holds everything the detection engine found in one document.
type DetectionResult struct {
	Found      bool                `json:"found"`
	Components []DetectedComponent `json:"components"`
	Summary    string              `json:"summary"`
	TotalFound int                 `json:"total_found"`
}

// ScanResult represents the outcome of scanning a single URL.
// AuthResult is set only when Success is true; Error only when it is false.
type ScanResult struct {
	URL        string           `json:"url"`
	Success    bool             `json:"success"`
	Error      string           `json:"error,omitempty"`
	StatusCode int              `json:"status_code,omitempty"`
	PageTitle  string           `json:"page_title,omitempty"`
	AuthResult *DetectionResult `json:"auth_result,omitempty"`
	ScanTime   float64          `json:"scan_time"`
}

// BatchReport aggregates the results of scanning multiple URLs.
// Results preserve the order of the input URLs.
type BatchReport struct {
	Results       []ScanResult `json:"results"`
	TotalScanned  int          `json:"total_scanned"`
	SitesWithAuth int          `json:"sites_with_auth"`
}
