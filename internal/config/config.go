// Package config resolves runtime settings from the environment, optionally
// overlaid by a YAML config file. Environment wins over file, file wins over
// defaults.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	// Base URL of the backend REST API, e.g. "http://localhost:5001/api".
	BackendURL string `yaml:"backend_url"`
	// Directory holding the embedded database for local mode.
	DataDir string `yaml:"data_dir"`
	// Bound on every backend call, including the startup health probe.
	RequestTimeout time.Duration `yaml:"request_timeout"`
	// Default ingestion sources for the scrape command.
	ScraperSources []string `yaml:"scraper_sources"`
}

func defaults() *Config {
	return &Config{
		BackendURL:     "http://localhost:5001/api",
		DataDir:        "data",
		RequestTimeout: 10 * time.Second,
		ScraperSources: []string{"edjoin", "k12jobspot"},
	}
}

// Load builds the config from defaults, the YAML file at path (if path is
// non-empty), and the environment, in that order.
func Load(path string) (*Config, error) {
	cfg := defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}

	cfg.BackendURL = getEnv("BACKEND_URL", cfg.BackendURL)
	cfg.DataDir = getEnv("DATA_DIR", cfg.DataDir)
	if v := os.Getenv("REQUEST_TIMEOUT_SECONDS"); v != "" {
		secs, err := strconv.Atoi(v)
		if err != nil || secs < 1 {
			return nil, fmt.Errorf("REQUEST_TIMEOUT_SECONDS must be a positive integer, got %q", v)
		}
		cfg.RequestTimeout = time.Duration(secs) * time.Second
	}
	if v := os.Getenv("SCRAPER_SOURCES"); v != "" {
		cfg.ScraperSources = splitList(v)
	}

	if cfg.BackendURL == "" {
		return nil, fmt.Errorf("backend URL must not be empty")
	}
	if cfg.DataDir == "" {
		return nil, fmt.Errorf("data dir must not be empty")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
