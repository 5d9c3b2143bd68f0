// Package config provides configuration loading and validation for the profiler.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Defaults for scraping and enrichment behavior.
const (
	DefaultFetchTimeout   = 30 * time.Second
	DefaultBrowserTimeout = 60 * time.Second
	DefaultMaxPosts       = 10
	DefaultMaxArticles    = 5
	DefaultMaxMentions    = 5
	DefaultLLMProvider    = "gemini"
)

// DefaultProMediaOutlets lists professional media domains probed by the news
// collector for site-restricted mention queries.
func DefaultProMediaOutlets() []string {
	return []string{"lesechos.fr", "challenges.fr", "usinenouvelle.com"}
}

// Config holds all settings for a profiler instance. It is constructed once
// and passed explicitly; there is no global configuration singleton.
// All fields are optional in the JSON file; missing values use defaults or
// environment variables.
type Config struct {
	// Enrichment
	LLMProvider string `json:"llm_provider,omitempty"` // "gemini" or "openai"
	LLMAPIKey   string `json:"llm_api_key,omitempty"`  // falls back to GEMINI_API_KEY / OPENAI_API_KEY

	// Discovery search
	SearchAPIKey string `json:"search_api_key,omitempty"` // falls back to SEARCH_API_KEY
	SearchCX     string `json:"search_cx,omitempty"`      // falls back to SEARCH_CX

	// Scraping
	FetchTimeout    time.Duration `json:"-"`
	FetchTimeoutSec int           `json:"fetch_timeout_seconds,omitempty"`
	UseBrowser      bool          `json:"use_browser,omitempty"` // headless browser fallback for SPA pages
	MaxPosts        int           `json:"max_posts,omitempty"`
	MaxArticles     int           `json:"max_articles,omitempty"`
	MaxMentions     int           `json:"max_mentions,omitempty"`
	ProMediaOutlets []string      `json:"pro_media_outlets,omitempty"`

	// Behavior
	Verbose bool `json:"verbose,omitempty"`
}

// Default returns a Config populated with defaults and environment values.
func Default() *Config {
	cfg := &Config{
		LLMProvider:     DefaultLLMProvider,
		FetchTimeout:    DefaultFetchTimeout,
		MaxPosts:        DefaultMaxPosts,
		MaxArticles:     DefaultMaxArticles,
		MaxMentions:     DefaultMaxMentions,
		ProMediaOutlets: DefaultProMediaOutlets(),
	}
	cfg.applyEnv()
	return cfg
}

// Load loads configuration from a JSON file, filling gaps with defaults and
// environment variables. Returns an error if the file cannot be read or parsed.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	cfg.applyDefaults()
	cfg.applyEnv()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.LLMProvider == "" {
		c.LLMProvider = DefaultLLMProvider
	}
	if c.FetchTimeoutSec > 0 {
		c.FetchTimeout = time.Duration(c.FetchTimeoutSec) * time.Second
	}
	if c.FetchTimeout == 0 {
		c.FetchTimeout = DefaultFetchTimeout
	}
	if c.MaxPosts == 0 {
		c.MaxPosts = DefaultMaxPosts
	}
	if c.MaxArticles == 0 {
		c.MaxArticles = DefaultMaxArticles
	}
	if c.MaxMentions == 0 {
		c.MaxMentions = DefaultMaxMentions
	}
	if len(c.ProMediaOutlets) == 0 {
		c.ProMediaOutlets = DefaultProMediaOutlets()
	}
}

func (c *Config) applyEnv() {
	if c.LLMAPIKey == "" {
		switch c.LLMProvider {
		case "openai":
			c.LLMAPIKey = os.Getenv("OPENAI_API_KEY")
		default:
			c.LLMAPIKey = os.Getenv("GEMINI_API_KEY")
		}
	}
	if c.SearchAPIKey == "" {
		c.SearchAPIKey = os.Getenv("SEARCH_API_KEY")
	}
	if c.SearchCX == "" {
		c.SearchCX = os.Getenv("SEARCH_CX")
	}
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.LLMProvider != "gemini" && c.LLMProvider != "openai" {
		return fmt.Errorf("config error: unknown llm_provider %q", c.LLMProvider)
	}
	if c.FetchTimeout <= 0 {
		return fmt.Errorf("config error: fetch timeout must be positive")
	}
	if c.MaxPosts < 0 || c.MaxArticles < 0 || c.MaxMentions < 0 {
		return fmt.Errorf("config error: limits must be non-negative")
	}
	return nil
}
