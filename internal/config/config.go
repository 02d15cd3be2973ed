// Package config handles application configuration management.
package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// DefaultAPIURL is used when SKILLDECK_API_URL is not set.
const DefaultAPIURL = "http://localhost:8080/"

// DefaultPageSize is the initial items-per-page for the skills list.
const DefaultPageSize = 3

// Config holds all application configuration.
type Config struct {
	// Base directory for all Skilldeck data
	BaseDir string

	// API settings for the remote skills service
	API APIConfig

	// Initial page size for the skills list
	PageSize int
}

// APIConfig holds remote skills service settings.
type APIConfig struct {
	// BaseURL of the skills service, e.g. http://localhost:8080/
	BaseURL string
}

// Load reads configuration from a .env file (if present) and
// environment variables.
func Load() (*Config, error) {
	// .env is optional; real env vars take precedence
	_ = godotenv.Load()

	cfg := &Config{
		BaseDir:  DefaultBaseDir(),
		API:      APIConfig{BaseURL: DefaultAPIURL},
		PageSize: DefaultPageSize,
	}

	if dir := os.Getenv("SKILLDECK_BASE_DIR"); dir != "" {
		cfg.BaseDir = dir
	}

	if raw := os.Getenv("SKILLDECK_API_URL"); raw != "" {
		if _, err := url.Parse(raw); err != nil {
			return nil, fmt.Errorf("invalid SKILLDECK_API_URL: %w", err)
		}
		cfg.API.BaseURL = raw
	}

	// Non-positive or non-numeric page sizes are ignored
	if raw := os.Getenv("SKILLDECK_PAGE_SIZE"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			cfg.PageSize = n
		}
	}

	if err := os.MkdirAll(cfg.BaseDir, 0755); err != nil {
		return nil, fmt.Errorf("create base directory: %w", err)
	}

	return cfg, nil
}
