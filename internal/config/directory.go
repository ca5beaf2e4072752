package config

import (
	"fmt"
	"net/url"
	"strings"
)

// DirectoryConfig holds group directory configuration.
type DirectoryConfig struct {
	// BaseURL is the external base URL used to build canonical group
	// links and redirect locations. Read once at startup, never mutated.
	BaseURL string
}

// LoadDirectoryConfigFromEnv loads directory configuration from environment variables.
func LoadDirectoryConfigFromEnv() DirectoryConfig {
	return DirectoryConfig{
		BaseURL: GetEnv("BASE_URL", "http://localhost:8080"),
	}
}

// Validate validates directory configuration.
func (c DirectoryConfig) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("BaseURL must not be empty")
	}

	parsed, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid BaseURL: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("invalid BaseURL scheme: %s (must be: http, https)", parsed.Scheme)
	}

	return nil
}

// GroupURL builds the canonical URL for a group slug.
func (c DirectoryConfig) GroupURL(slug string) string {
	return strings.TrimSuffix(c.BaseURL, "/") + "/groups/" + slug
}
