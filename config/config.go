// Package config manages application configuration.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration for segment lookups.
type Config struct {
	// BaseURL is the segment service API root (default: the public instance)
	BaseURL string `json:"base_url"`
	// Service is the video host platform to look up segments for
	Service string `json:"service"`

	// PrivateSearches enables k-anonymity lookups by hash prefix
	PrivateSearches bool `json:"private_searches"`
	// HashPrefixLength is the hash prefix length for private searches (4-32)
	HashPrefixLength int `json:"hash_prefix_length"`

	// Categories are the segment categories to request by default
	Categories []string `json:"categories"`

	// Timeout is the maximum time to wait for a service response
	Timeout time.Duration `json:"timeout"`
	// UserAgent is sent with every request
	UserAgent string `json:"user_agent"`
}

// DefaultConfig returns configuration with safe defaults.
func DefaultConfig() *Config {
	return &Config{
		BaseURL:          "https://sponsor.ajay.app/api",
		Service:          "YouTube",
		PrivateSearches:  false,
		HashPrefixLength: 4,
		Categories:       []string{"sponsor"},
		Timeout:          30 * time.Second,
		UserAgent:        "sponsorblock-go/1.0",
	}
}

// Load loads configuration from environment variables, config file, and applies defaults.
// Priority: env vars > config file > defaults
func Load() (*Config, error) {
	cfg := DefaultConfig()

	// Try to load from config file
	if err := cfg.loadFromFile(); err != nil {
		// Config file is optional
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("load config file: %w", err)
		}
	}

	// Override with environment variables
	cfg.loadFromEnv()

	// Validate
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// loadFromFile attempts to load config from sponsorblock.json in the current
// directory or the user's config directory.
func (c *Config) loadFromFile() error {
	paths := []string{
		"sponsorblock.json",
		filepath.Join(os.Getenv("HOME"), ".config", "sponsorblock", "sponsorblock.json"),
	}

	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return err
		}

		if err := json.Unmarshal(data, c); err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}
		return nil
	}

	return os.ErrNotExist
}

// loadFromEnv overrides config with environment variables.
func (c *Config) loadFromEnv() {
	if v := os.Getenv("SPONSORBLOCK_BASE_URL"); v != "" {
		c.BaseURL = v
	}
	if v := os.Getenv("SPONSORBLOCK_SERVICE"); v != "" {
		c.Service = v
	}
	if v := os.Getenv("SPONSORBLOCK_PRIVATE_SEARCHES"); v != "" {
		c.PrivateSearches = v == "true" || v == "1"
	}
	if v := os.Getenv("SPONSORBLOCK_HASH_PREFIX_LENGTH"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.HashPrefixLength = n
		}
	}
	if v := os.Getenv("SPONSORBLOCK_CATEGORIES"); v != "" {
		c.Categories = splitList(v)
	}
	if v := os.Getenv("SPONSORBLOCK_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.Timeout = d
		}
	}
	if v := os.Getenv("SPONSORBLOCK_USER_AGENT"); v != "" {
		c.UserAgent = v
	}
}

// Validate checks that configuration values are valid and consistent.
// It returns an error if any configuration value is invalid.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("base_url must not be empty")
	}
	if strings.HasSuffix(c.BaseURL, "/") {
		return fmt.Errorf("base_url must not end with a slash")
	}
	if c.Service == "" {
		return fmt.Errorf("service must not be empty")
	}
	if c.HashPrefixLength < 4 || c.HashPrefixLength > 32 {
		return fmt.Errorf("hash_prefix_length must be between 4 and 32")
	}
	if len(c.Categories) == 0 {
		return fmt.Errorf("categories must not be empty")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive")
	}
	return nil
}

// splitList splits a comma-separated list, trimming whitespace and dropping
// empty entries.
func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
