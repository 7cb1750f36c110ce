package io

import (
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/tanishqmekala/auth-component-detector/internal/config"
	"github.com/tanishqmekala/auth-component-detector/pkg/models"
)

func TestReadFromFile(t *testing.T) {
	content := `
https://example.com/login
# a comment line

  https://other.example.com
`
	path := filepath.Join(t.TempDir(), "urls.txt")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := config.CreateDefault(1, time.Second, false, path, "")
	urls, err := NewURLReader(cfg).GetURLs()
	if err != nil {
		t.Fatalf("GetURLs: %v", err)
	}

	want := []string{"https://example.com/login", "https://other.example.com"}
	if !reflect.DeepEqual(urls, want) {
		t.Errorf("GetURLs = %v, want %v", urls, want)
	}
}

func TestGetURLsFallsBackToDefaultSites(t *testing.T) {
	cfg := config.CreateDefault(1, time.Second, false, "", "")
	urls, err := NewURLReader(cfg).GetURLs()
	if err != nil {
		t.Fatalf("GetURLs: %v", err)
	}
	if !reflect.DeepEqual(urls, config.DefaultSites) {
		t.Errorf("expected the default demo sites, got %v", urls)
	}
}

func TestSaveToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.json")
	cfg := config.CreateDefault(1, time.Second, false, "", path)

	report := models.BatchReport{
		Results: []models.ScanResult{
			{URL: "https://example.com", Success: true, ScanTime: 0.42},
		},
		TotalScanned:  1,
		SitesWithAuth: 0,
	}
	if err := NewReportWriter(&cfg.IO).SaveToFile(report); err != nil {
		t.Fatalf("SaveToFile: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var loaded models.BatchReport
	if err := json.Unmarshal(data, &loaded); err != nil {
		t.Fatalf("written file is not valid JSON: %v", err)
	}
	if !reflect.DeepEqual(loaded, report) {
		t.Errorf("round-trip mismatch:\nwrote %+v\nread  %+v", report, loaded)
	}
}

func TestSaveToFileRejectsUnknownFormat(t *testing.T) {
	cfg := config.CreateDefault(1, time.Second, false, "", filepath.Join(t.TempDir(), "out"))
	cfg.IO.OutputFormat = "xml"
	if err := NewReportWriter(&cfg.IO).SaveToFile(models.BatchReport{}); err == nil {
		t.Error("expected an error for an unsupported format")
	}
}
