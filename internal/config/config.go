package config

import (
	"math/rand"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/tanishqmekala/auth-component-detector/internal/detect"
)

// AppConfig holds the complete application configuration
type AppConfig struct {
	Fetcher   FetcherConfig   `yaml:"fetcher"`
	Detection DetectionConfig `yaml:"detection"`
	Scan      ScanConfig      `yaml:"scan"`
	Proxies   ProxyConfig     `yaml:"proxies"`
	IO        IOConfig        `yaml:"io"`
	Server    ServerConfig    `yaml:"server"`
}

// FetcherConfig holds the page fetcher configuration
type FetcherConfig struct {
	Browser        bool          `yaml:"browser"`
	Headless       bool          `yaml:"headless"`
	Timeout        time.Duration `yaml:"timeout"`
	SettleTime     time.Duration `yaml:"settle_time"`
	ViewportWidth  int           `yaml:"viewport_width"`
	ViewportHeight int           `yaml:"viewport_height"`
	UserAgents     []string      `yaml:"user_agents,omitempty"`
}

// UserAgent returns one of the configured user agents at random.
func (c *FetcherConfig) UserAgent() string {
	if len(c.UserAgents) == 0 {
		return ""
	}
	return c.UserAgents[rand.Intn(len(c.UserAgents))]
}

// DetectionConfig holds overrides for the detection rule set. Empty fields
// fall back to the engine defaults.
type DetectionConfig struct {
	AuthKeywords      []string `yaml:"auth_keywords,omitempty"`
	AuthInputNames    []string `yaml:"auth_input_names,omitempty"`
	ContainerKeywords []string `yaml:"container_keywords,omitempty"`
	SnippetMaxLen     int      `yaml:"snippet_max_len"`
	DedupPrefixLen    int      `yaml:"dedup_prefix_len"`
}

// ScanConfig holds the batch scanning configuration
type ScanConfig struct {
	Workers   int           `yaml:"workers"`
	RateLimit time.Duration `yaml:"rate_limit"`
	Sites     []string      `yaml:"sites,omitempty"`
}

// ProxyConfig holds the proxy configuration for the HTTP fetcher
type ProxyConfig struct {
	Enabled bool     `yaml:"enabled"`
	Rotate  bool     `yaml:"rotate"`
	List    []string `yaml:"list"`
	Auth    struct {
		Username string `yaml:"username"`
		Password string `yaml:"password"`
	} `yaml:"auth"`
}

// IOConfig holds the input/output configuration
type IOConfig struct {
	InputFile    string `yaml:"input_file"`
	OutputFile   string `yaml:"output_file"`
	OutputFormat string `yaml:"output_format"`
}

// ServerConfig holds the API server configuration
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// Rules builds the rule engine configuration, applying any overrides on top
// of the engine defaults.
func (c *DetectionConfig) Rules() detect.Config {
	rules := detect.DefaultConfig()
	if len(c.AuthKeywords) > 0 {
		rules.AuthKeywords = c.AuthKeywords
	}
	if len(c.AuthInputNames) > 0 {
		rules.AuthInputNames = c.AuthInputNames
	}
	if len(c.ContainerKeywords) > 0 {
		rules.ContainerKeywords = c.ContainerKeywords
	}
	if c.SnippetMaxLen > 0 {
		rules.SnippetMaxLen = c.SnippetMaxLen
	}
	if c.DedupPrefixLen > 0 {
		rules.DedupPrefixLen = c.DedupPrefixLen
	}
	return rules
}

// Load loads the configuration from a YAML file
func Load(filename string) (*AppConfig, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	var config AppConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, err
	}

	applyDefaults(&config)
	return &config, nil
}

// CreateDefault creates a default configuration
func CreateDefault(workers int, timeout time.Duration, browser bool, inputFile, outputFile string) *AppConfig {
	config := &AppConfig{
		Fetcher: FetcherConfig{
			Browser:  browser,
			Headless: true,
			Timeout:  timeout,
		},
		Scan: ScanConfig{
			Workers: workers,
		},
		IO: IOConfig{
			InputFile:  inputFile,
			OutputFile: outputFile,
		},
	}
	applyDefaults(config)
	return config
}

// applyDefaults fills in anything the file or flags left unset.
func applyDefaults(c *AppConfig) {
	if c.Fetcher.Timeout <= 0 {
		c.Fetcher.Timeout = DefaultTimeout
	}
	if c.Fetcher.SettleTime <= 0 {
		c.Fetcher.SettleTime = DefaultSettleTime
	}
	if c.Fetcher.ViewportWidth <= 0 {
		c.Fetcher.ViewportWidth = DefaultViewportWidth
	}
	if c.Fetcher.ViewportHeight <= 0 {
		c.Fetcher.ViewportHeight = DefaultViewportHeight
	}
	if len(c.Fetcher.UserAgents) == 0 {
		c.Fetcher.UserAgents = DefaultUserAgents
	}
	if c.Scan.Workers <= 0 {
		c.Scan.Workers = DefaultWorkers
	}
	if len(c.Scan.Sites) == 0 {
		c.Scan.Sites = DefaultSites
	}
	if c.IO.OutputFormat == "" {
		c.IO.OutputFormat = "json"
	}
	if c.Server.Addr == "" {
		c.Server.Addr = DefaultServerAddr
	}
}
