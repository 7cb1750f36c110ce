package io

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/tanishqmekala/auth-component-detector/internal/config"
	"github.com/tanishqmekala/auth-component-detector/pkg/models"
)

// ReportWriter writes scan reports to various outputs
type ReportWriter struct {
	Config *config.IOConfig
}

// NewReportWriter creates a new report writer
func NewReportWriter(cfg *config.IOConfig) *ReportWriter {
	return &ReportWriter{Config: cfg}
}

// SaveToFile saves the batch report to a file in the configured format
func (w *ReportWriter) SaveToFile(report models.BatchReport) error {
	switch w.Config.OutputFormat {
	case "json":
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return err
		}
		return os.WriteFile(w.Config.OutputFile, data, 0644)

	default:
		return fmt.Errorf("unsupported output format: %s", w.Config.OutputFormat)
	}
}
