package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/tanishqmekala/auth-component-detector/internal/config"
	"github.com/tanishqmekala/auth-component-detector/internal/io"
	"github.com/tanishqmekala/auth-component-detector/internal/scan"
)

func main() {
	// Define command-line flags
	configFile := flag.String("config", "", "Path to configuration file (YAML)")
	inputFile := flag.String("input", "", "File containing URLs to scan (one per line)")
	outputFile := flag.String("output", "results.json", "File to save results to")
	numWorkers := flag.Int("workers", config.DefaultWorkers, "Number of concurrent workers")
	timeout := flag.Duration("timeout", config.DefaultTimeout, "Fetch timeout per URL")
	enableBrowser := flag.Bool("browser", false, "Render pages in a headless browser")
	flag.Parse()

	fmt.Println("Auth Component Detector Starting...")

	// Load configuration
	var appConfig *config.AppConfig
	if *configFile != "" {
		var err error
		appConfig, err = config.Load(*configFile)
		if err != nil {
			log.Fatalf("Error loading configuration: %v", err)
		}
		fmt.Printf("Loaded configuration from %s\n", *configFile)
	} else {
		appConfig = config.CreateDefault(*numWorkers, *timeout, *enableBrowser, *inputFile, *outputFile)
		fmt.Println("Using default configuration (no config file provided)")
	}

	// Override config with command-line flags if provided
	if *inputFile != "" {
		appConfig.IO.InputFile = *inputFile
	}
	if *outputFile != "results.json" {
		appConfig.IO.OutputFile = *outputFile
	}
	if appConfig.IO.OutputFile == "" {
		appConfig.IO.OutputFile = *outputFile
	}

	// Get URLs to scan
	urlReader := io.NewURLReader(appConfig)
	urls, err := urlReader.GetURLs()
	if err != nil {
		log.Fatalf("Error reading URLs: %v", err)
	}

	if len(urls) == 0 {
		log.Fatal("No URLs to scan")
	}

	fmt.Printf("Preparing to scan %d URLs with %d workers\n", len(urls), appConfig.Scan.Workers)

	// Scan everything
	scanner := scan.NewScanner(appConfig)
	start := time.Now()
	report := scanner.ScanAll(context.Background(), urls)

	// Report per-URL outcomes
	for _, result := range report.Results {
		if !result.Success {
			fmt.Printf("Error scanning %s: %s\n", result.URL, result.Error)
			continue
		}

		fmt.Printf("Scanned %s (%q) in %.2fs\n", result.URL, result.PageTitle, result.ScanTime)
		if result.AuthResult != nil {
			fmt.Printf("  %s\n", result.AuthResult.Summary)
			for _, comp := range result.AuthResult.Components {
				fmt.Printf("    - %s: %s\n", comp.Type, comp.Context)
			}
		}
	}

	// Save results to file
	reportWriter := io.NewReportWriter(&appConfig.IO)
	if err := reportWriter.SaveToFile(report); err != nil {
		log.Fatalf("Error saving results to file: %v", err)
	}

	fmt.Printf("Scanned %d URLs in %v. Sites with auth components: %d\n",
		report.TotalScanned, time.Since(start).Round(time.Millisecond), report.SitesWithAuth)
	fmt.Printf("Results saved to %s\n", appConfig.IO.OutputFile)
}
