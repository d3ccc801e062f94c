// Package config provides configuration loading and defaults for the Clueless
// outfit diagnostic CLIs.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// GraphQLConfig holds connection details for the Clueless GraphQL API.
type GraphQLConfig struct {
	URL string `yaml:"url"`
	// APIKey is optional; the local development server does not require one.
	APIKey string `yaml:"api_key"`
	// Timeout is the HTTP request timeout in seconds.
	Timeout int `yaml:"timeout"`
}

// CheckerConfig holds the inclusive outfit id range scanned by outfit-check.
type CheckerConfig struct {
	FirstOutfitID int `yaml:"first_outfit_id"`
	LastOutfitID  int `yaml:"last_outfit_id"`
}

// FetcherConfig holds the outfit id queried by outfit-fetch.
type FetcherConfig struct {
	OutfitID int `yaml:"outfit_id"`
}

// Config is the top-level configuration structure shared by both CLIs.
type Config struct {
	GraphQL GraphQLConfig `yaml:"graphql"`
	Checker CheckerConfig `yaml:"checker"`
	Fetcher FetcherConfig `yaml:"fetcher"`
}

// LoadConfig reads and parses a YAML configuration file from the given path.
// It returns a pointer to the populated Config and any error encountered.
// On error, nil is returned for the config pointer.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// DefaultConfig returns a new Config populated with the values the original
// diagnostic scripts hardcoded. Each call returns a distinct instance.
func DefaultConfig() *Config {
	return &Config{
		GraphQL: GraphQLConfig{
			URL:     "http://localhost:3000",
			Timeout: 30,
		},
		Checker: CheckerConfig{
			FirstOutfitID: 1,
			LastOutfitID:  9,
		},
		Fetcher: FetcherConfig{
			OutfitID: 3,
		},
	}
}

// ApplyEnvOverrides updates cfg in place with values from environment variables.
// Recognized variables:
//   - CLUELESS_GRAPHQL_URL overrides cfg.GraphQL.URL
//   - CLUELESS_GRAPHQL_API_KEY overrides cfg.GraphQL.APIKey
func ApplyEnvOverrides(cfg *Config) {
	if url := os.Getenv("CLUELESS_GRAPHQL_URL"); url != "" {
		cfg.GraphQL.URL = url
	}
	if key := os.Getenv("CLUELESS_GRAPHQL_API_KEY"); key != "" {
		cfg.GraphQL.APIKey = key
	}
}
