package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"

	"github.com/tanishqmekala/auth-component-detector/internal/api"
	"github.com/tanishqmekala/auth-component-detector/internal/config"
	"github.com/tanishqmekala/auth-component-detector/internal/scan"
)

func main() {
	// Define command-line flags
	configFile := flag.String("config", "", "Path to configuration file (YAML)")
	addr := flag.String("addr", "", "Address to listen on (overrides config)")
	enableBrowser := flag.Bool("browser", false, "Render pages in a headless browser")
	flag.Parse()

	// Load configuration
	var appConfig *config.AppConfig
	if *configFile != "" {
		var err error
		appConfig, err = config.Load(*configFile)
		if err != nil {
			log.Fatalf("Error loading configuration: %v", err)
		}
	} else {
		appConfig = config.CreateDefault(config.DefaultWorkers, config.DefaultTimeout, *enableBrowser, "", "")
	}
	if *addr != "" {
		appConfig.Server.Addr = *addr
	}

	scanner := scan.NewScanner(appConfig)
	server := api.NewServer(scanner)

	fmt.Printf("Auth Component Detector listening on %s\n", appConfig.Server.Addr)
	if err := http.ListenAndServe(appConfig.Server.Addr, server.Routes()); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
