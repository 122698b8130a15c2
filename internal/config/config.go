package config

import (
	"time"

	"github.com/cannadex/cannadex-go/internal/api"
)

// Config holds runtime settings for the Cannadex client.
//
// Fields:
//   - Environment: "dev" or "prod"; picks the default BaseURL.
//   - BaseURL: full API base URL including the version prefix. Overrides
//     the environment default when set explicitly.
//   - RequestTimeout: per-attempt HTTP timeout.
//   - SyncInterval: how often the background sync loop drains the offline
//     queue.
//   - DataFile: path of the local bbolt store.
type Config struct {
	Environment    string
	BaseURL        string
	RequestTimeout time.Duration
	SyncInterval   time.Duration
	DataFile       string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.Environment = "dev"
	c.BaseURL = ""
	c.RequestTimeout = api.DefaultTimeout
	c.SyncInterval = 5 * time.Minute
	c.DataFile = "cannadex.db"
}

// ResolvedBaseURL returns BaseURL when set, otherwise the default for the
// configured environment.
func (c *Config) ResolvedBaseURL() string {
	if c.BaseURL != "" {
		return c.BaseURL
	}
	if c.Environment == "prod" {
		return api.ProdBaseURL
	}
	return api.DevBaseURL
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present) and command-line flags (if present). Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
