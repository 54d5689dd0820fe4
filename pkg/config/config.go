// © 2026 Meridian Labs Inc.
//
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"os"
	"time"

	"github.com/juju/errors"
	"gopkg.in/yaml.v3"
)

// DefaultEndpoint is the production API endpoint.
const DefaultEndpoint = "https://api.meridianml.io/v4"

// DefaultHTTPTimeout bounds a single API request.
const DefaultHTTPTimeout = 30 * time.Second

// Config holds Meridian API connection settings.
// Note: Only Endpoint and HTTPTimeout may be stored in a profile file.
// Credentials (Username, APIKey) are always read from environment variables,
// to keep secrets out of files.
type Config struct {
	// Stored in profile file (non-sensitive)
	Endpoint    string        `yaml:"endpoint"`
	HTTPTimeout time.Duration `yaml:"http_timeout"`

	// Read from environment variables only (never stored)
	Username string `yaml:"-"` // From MERIDIAN_USERNAME
	APIKey   string `yaml:"-"` // From MERIDIAN_API_KEY
}

// UnmarshalYAML decodes a profile document. Timeouts are written in Go
// duration syntax ("30s", "2m"), which yaml does not decode into
// time.Duration on its own.
func (c *Config) UnmarshalYAML(value *yaml.Node) error {
	var raw struct {
		Endpoint    string `yaml:"endpoint"`
		HTTPTimeout string `yaml:"http_timeout"`
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}
	c.Endpoint = raw.Endpoint
	if raw.HTTPTimeout != "" {
		d, err := time.ParseDuration(raw.HTTPTimeout)
		if err != nil {
			return errors.Annotatef(err, "parsing http_timeout")
		}
		c.HTTPTimeout = d
	}
	return nil
}

// FromEnv builds a Config entirely from environment variables.
func FromEnv() (*Config, error) {
	cfg := &Config{
		Endpoint: os.Getenv("MERIDIAN_ENDPOINT"),
	}
	return finish(cfg)
}

// FromFile reads a YAML profile and overlays credentials from the
// environment. Endpoint from the environment takes precedence over the
// file so a single profile can target staging and production.
func FromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Annotatef(err, "reading profile %q", path)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Annotatef(err, "parsing profile %q", path)
	}

	if endpoint := os.Getenv("MERIDIAN_ENDPOINT"); endpoint != "" {
		cfg.Endpoint = endpoint
	}
	return finish(&cfg)
}

func finish(cfg *Config) (*Config, error) {
	// Credentials are ALWAYS read from environment variables (never stored)
	cfg.Username = os.Getenv("MERIDIAN_USERNAME")
	cfg.APIKey = os.Getenv("MERIDIAN_API_KEY")

	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultEndpoint
	}
	if cfg.HTTPTimeout <= 0 {
		cfg.HTTPTimeout = DefaultHTTPTimeout
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Trace(err)
	}
	return cfg, nil
}

// Validate checks that the config can authenticate a request.
func (c *Config) Validate() error {
	if c == nil {
		return errors.NotValidf("nil config")
	}
	if c.Username == "" {
		return errors.NotValidf("empty username (set MERIDIAN_USERNAME)")
	}
	if c.APIKey == "" {
		return errors.NotValidf("empty api key (set MERIDIAN_API_KEY)")
	}
	if c.Endpoint == "" {
		return errors.NotValidf("empty endpoint")
	}
	return nil
}

// AuthQuery renders the credential fragment appended to every request URL.
// The API authenticates with semicolon-delimited query credentials rather
// than headers.
func (c *Config) AuthQuery() string {
	return fmt.Sprintf("username=%s;api_key=%s;", c.Username, c.APIKey)
}
