// Package config loads countersense configuration from a YAML file with
// environment-variable overrides. Every field has a working default so the
// binary runs with no config file at all.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all countersense configuration.
type Config struct {
	Upstream UpstreamConfig `yaml:"upstream"`
	Policy   PolicyConfig   `yaml:"policy"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// UpstreamConfig configures the external model that produces raw call text.
type UpstreamConfig struct {
	Provider string `yaml:"provider"` // gemini, openai, none
	APIKey   string `yaml:"api_key"`
	Model    string `yaml:"model"`
	BaseURL  string `yaml:"base_url"`
	Timeout  string `yaml:"timeout"`
}

// PolicyConfig configures disambiguation behavior.
type PolicyConfig struct {
	// ZeroSetIsReset maps a parsed set_counter with number "0" to
	// reset_counter. Both variants ship in the wild; see DESIGN.md for why
	// true is the default.
	ZeroSetIsReset bool `yaml:"zero_set_is_reset"`
}

// LoggingConfig configures the category loggers.
type LoggingConfig struct {
	Debug bool `yaml:"debug"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Upstream: UpstreamConfig{
			Provider: "gemini",
			Model:    "",
			Timeout:  "60s",
		},
		Policy: PolicyConfig{
			ZeroSetIsReset: true,
		},
	}
}

// Load reads a YAML config file, falling back to defaults when the path is
// empty or the file does not exist, then applies environment overrides.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return Config{}, fmt.Errorf("failed to read config: %w", err)
			}
		} else if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// applyEnvOverrides lets the environment win over file values, mirroring how
// the binary is configured in CI and containers.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("COUNTERSENSE_PROVIDER"); v != "" {
		c.Upstream.Provider = v
	}
	if v := os.Getenv("COUNTERSENSE_API_KEY"); v != "" {
		c.Upstream.APIKey = v
	}
	if v := os.Getenv("GEMINI_API_KEY"); v != "" && c.Upstream.APIKey == "" {
		c.Upstream.APIKey = v
	}
	if v := os.Getenv("COUNTERSENSE_MODEL"); v != "" {
		c.Upstream.Model = v
	}
	if v := os.Getenv("COUNTERSENSE_BASE_URL"); v != "" {
		c.Upstream.BaseURL = v
	}
}

// UpstreamTimeout parses the configured timeout, defaulting to 60s on any
// missing or malformed value.
func (c Config) UpstreamTimeout() time.Duration {
	d, err := time.ParseDuration(c.Upstream.Timeout)
	if err != nil || d <= 0 {
		return 60 * time.Second
	}
	return d
}
