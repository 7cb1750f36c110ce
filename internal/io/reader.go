package io

import (
	"bufio"
	"os"
	"strings"

	"github.com/tanishqmekala/auth-component-detector/internal/config"
)

// URLReader reads target URLs from various sources
type URLReader struct {
	Config *config.AppConfig
}

// NewURLReader creates a new URL reader
func NewURLReader(cfg *config.AppConfig) *URLReader {
	return &URLReader{Config: cfg}
}

// ReadFromFile reads URLs from a file, one URL per line. Blank lines and
// lines starting with # are skipped.
func (r *URLReader) ReadFromFile(filename string) ([]string, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var urls []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		url := strings.TrimSpace(scanner.Text())
		if url != "" && !strings.HasPrefix(url, "#") {
			urls = append(urls, url)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return urls, nil
}

// GetURLs returns URLs from the configured input file, or the default demo
// sites when no input file was given.
func (r *URLReader) GetURLs() ([]string, error) {
	if r.Config.IO.InputFile != "" {
		return r.ReadFromFile(r.Config.IO.InputFile)
	}
	return r.Config.Scan.Sites, nil
}
