// Package config loads the calcd daemon configuration from a YAML file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the complete calcd configuration.
type Config struct {
	// Addr is the TCP listen address, e.g. ":50055".
	Addr string     `yaml:"addr"`
	TLS  TLSConfig  `yaml:"tls"`
	Auth AuthConfig `yaml:"auth"`
}

// TLSConfig contains the server certificate paths. TLS is enabled when
// both are set.
type TLSConfig struct {
	CertFile string `yaml:"cert_file"`
	KeyFile  string `yaml:"key_file"`
}

// AuthConfig contains token authorization settings.
type AuthConfig struct {
	Enabled bool          `yaml:"enabled"`
	Tokens  []TokenConfig `yaml:"tokens"`
}

// TokenConfig maps one API token to its comma-separated role list,
// e.g. "calc_full" or "calc_basic".
type TokenConfig struct {
	Token string `yaml:"token"`
	Roles string `yaml:"roles"`
}

// Default returns a configuration with sensible defaults: an insecure
// server on the standard port with authorization disabled.
func Default() *Config {
	return &Config{
		Addr: ":50055",
	}
}

// Load reads and validates the configuration file at path. Fields not
// present in the file keep their defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Validate checks the configuration for inconsistencies.
func (c *Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("addr must not be empty")
	}

	if (c.TLS.CertFile == "") != (c.TLS.KeyFile == "") {
		return fmt.Errorf("tls requires both cert_file and key_file")
	}

	if c.Auth.Enabled {
		if len(c.Auth.Tokens) == 0 {
			return fmt.Errorf("auth is enabled but no tokens are configured")
		}
		for i, tok := range c.Auth.Tokens {
			if tok.Token == "" {
				return fmt.Errorf("auth token %d has an empty token value", i)
			}
			if tok.Roles == "" {
				return fmt.Errorf("auth token %d has no roles", i)
			}
		}
	}

	return nil
}
