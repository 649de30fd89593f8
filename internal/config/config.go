// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config is the CLI configuration loadable from a JSON file. All fields
// are optional; missing values use defaults or come from CLI flags and
// environment variables.
type Config struct {
	// Inputs
	CV     string `json:"cv,omitempty"`      // path to the CV document
	Job    string `json:"job,omitempty"`     // path to a job posting text file
	JobURL string `json:"job_url,omitempty"` // URL to fetch the posting from

	// Model backend
	OllamaURL   string `json:"ollama_url,omitempty"`   // Ollama base URL
	OllamaModel string `json:"ollama_model,omitempty"` // model name, e.g. llama3:8b

	// Behavior
	UseBrowser  bool   `json:"use_browser,omitempty"`  // headless browser fallback for SPA job boards
	Verbose     bool   `json:"verbose,omitempty"`      // print detailed progress boxes
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL URL for history, optional

	// Server
	ListenAddr string `json:"listen_addr,omitempty"` // HTTP listen address, e.g. :8080
}

// Load reads configuration from a JSON file.
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
	return &cfg, nil
}

// FromEnv fills unset fields from environment variables. Environment never
// overrides explicit config file values.
func (c *Config) FromEnv() {
	if c.OllamaURL == "" {
		c.OllamaURL = os.Getenv("OLLAMA_URL")
	}
	if c.OllamaModel == "" {
		c.OllamaModel = os.Getenv("OLLAMA_MODEL")
	}
	if c.DatabaseURL == "" {
		c.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if c.ListenAddr == "" {
		c.ListenAddr = os.Getenv("LISTEN_ADDR")
	}
}

// Validate checks the configuration for contradictions and missing files.
// Required fields are enforced later by flag validation, not here.
func (c *Config) Validate() error {
	if c.Job != "" && c.JobURL != "" {
		return fmt.Errorf("config error: 'job' and 'job_url' are mutually exclusive")
	}
	if c.CV != "" {
		if _, err := os.Stat(c.CV); os.IsNotExist(err) {
			return fmt.Errorf("config error: cv file not found: %s", c.CV)
		}
	}
	if c.Job != "" {
		if _, err := os.Stat(c.Job); os.IsNotExist(err) {
			return fmt.Errorf("config error: job file not found: %s", c.Job)
		}
	}
	return nil
}
