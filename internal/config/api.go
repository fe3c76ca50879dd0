// Package config loads application configuration from YAML files with
// environment variable overrides.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	pkgconfig "nft-stats/pkg/config"
)

// APIConfig represents the listing API configuration. Durations are stored
// as strings in the file ("30s", "1m") and parsed on access.
type APIConfig struct {
	Server struct {
		ListenAddr     string  `yaml:"listen_addr"`
		MetricsAddr    string  `yaml:"metrics_addr"`
		RequestTimeout string  `yaml:"request_timeout"`
		RateLimitRPS   float64 `yaml:"rate_limit_rps"`
		RateLimitBurst int     `yaml:"rate_limit_burst"`
		MaxBodyBytes   int64   `yaml:"max_body_bytes"`
	} `yaml:"server"`

	Resolver struct {
		BaseURL string `yaml:"base_url"`
		Timeout string `yaml:"timeout"`
	} `yaml:"resolver"`

	Listing struct {
		DefaultLimit int `yaml:"default_limit"`
		MaxLimit     int `yaml:"max_limit"`
	} `yaml:"listing"`
}

// DefaultAPIConfig returns the configuration used when no file is present.
func DefaultAPIConfig() *APIConfig {
	var cfg APIConfig
	cfg.Server.ListenAddr = ":8080"
	cfg.Server.MetricsAddr = ":9090"
	cfg.Server.RequestTimeout = "30s"
	cfg.Server.RateLimitRPS = 50
	cfg.Server.RateLimitBurst = 100
	cfg.Server.MaxBodyBytes = 1 << 20
	cfg.Resolver.Timeout = "5s"
	cfg.Listing.DefaultLimit = 20
	cfg.Listing.MaxLimit = 100
	return &cfg
}

// LoadAPIConfig loads configuration from the YAML file at path, then applies
// environment variable overrides. An empty path or a missing file yields the
// defaults (plus overrides), so a config file is optional in development.
// The path parameter is expected to come from a trusted source (command-line
// argument or hardcoded default).
func LoadAPIConfig(path string) (*APIConfig, error) {
	cfg := DefaultAPIConfig()

	if path != "" {
		// #nosec G304 -- path is provided by trusted source (CLI arg or config), not user input
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// Fall through to defaults.
		case err != nil:
			return nil, fmt.Errorf("failed to read config file: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	applyEnvOverrides(cfg)

	if err := validateAPIConfig(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// applyEnvOverrides lets the environment win over the file for deploy-time
// settings.
func applyEnvOverrides(cfg *APIConfig) {
	cfg.Server.ListenAddr = pkgconfig.GetEnvString("API_LISTEN_ADDR", cfg.Server.ListenAddr)
	cfg.Server.MetricsAddr = pkgconfig.GetEnvString("METRICS_LISTEN_ADDR", cfg.Server.MetricsAddr)
	cfg.Server.RequestTimeout = pkgconfig.GetEnvString("API_REQUEST_TIMEOUT", cfg.Server.RequestTimeout)
	cfg.Server.RateLimitRPS = pkgconfig.GetEnvFloat("API_RATE_LIMIT_RPS", cfg.Server.RateLimitRPS)
	cfg.Server.RateLimitBurst = pkgconfig.GetEnvInt("API_RATE_LIMIT_BURST", cfg.Server.RateLimitBurst)
	cfg.Resolver.BaseURL = pkgconfig.GetEnvString("COLLECTION_SET_SERVICE_URL", cfg.Resolver.BaseURL)
	cfg.Resolver.Timeout = pkgconfig.GetEnvString("COLLECTION_SET_TIMEOUT", cfg.Resolver.Timeout)
	cfg.Listing.DefaultLimit = pkgconfig.GetEnvInt("LISTING_DEFAULT_LIMIT", cfg.Listing.DefaultLimit)
	cfg.Listing.MaxLimit = pkgconfig.GetEnvInt("LISTING_MAX_LIMIT", cfg.Listing.MaxLimit)
}

// validateAPIConfig validates the loaded configuration.
func validateAPIConfig(cfg *APIConfig) error {
	if cfg.Server.ListenAddr == "" {
		return fmt.Errorf("server listen_addr is required")
	}

	timeout, err := time.ParseDuration(cfg.Server.RequestTimeout)
	if err != nil {
		return fmt.Errorf("invalid server request_timeout: %w", err)
	}
	if err := pkgconfig.ValidatePositiveDuration(timeout); err != nil {
		return fmt.Errorf("invalid server request_timeout: %w", err)
	}

	if cfg.Resolver.Timeout != "" {
		resolverTimeout, err := time.ParseDuration(cfg.Resolver.Timeout)
		if err != nil {
			return fmt.Errorf("invalid resolver timeout: %w", err)
		}
		if err := pkgconfig.ValidatePositiveDuration(resolverTimeout); err != nil {
			return fmt.Errorf("invalid resolver timeout: %w", err)
		}
	}

	if cfg.Server.RateLimitRPS <= 0 {
		return fmt.Errorf("server rate_limit_rps must be positive")
	}
	if cfg.Server.RateLimitBurst <= 0 {
		return fmt.Errorf("server rate_limit_burst must be positive")
	}

	if cfg.Listing.DefaultLimit <= 0 {
		return fmt.Errorf("listing default_limit must be positive")
	}
	if cfg.Listing.MaxLimit < cfg.Listing.DefaultLimit {
		return fmt.Errorf("listing max_limit must be >= default_limit")
	}

	return nil
}

// GetRequestTimeout returns the parsed per-request timeout.
func (c *APIConfig) GetRequestTimeout() time.Duration {
	d, _ := time.ParseDuration(c.Server.RequestTimeout)
	return d
}

// GetResolverTimeout returns the parsed collection-set resolver timeout.
func (c *APIConfig) GetResolverTimeout() time.Duration {
	d, _ := time.ParseDuration(c.Resolver.Timeout)
	return d
}
