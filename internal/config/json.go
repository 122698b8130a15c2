package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/cannadex/cannadex-go/internal/flagx"
	"github.com/cannadex/cannadex-go/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify intervals either as strings like "15s"
// or as integer nanoseconds.
type JsonConfig struct {
	Environment    string         `json:"environment"`
	BaseURL        string         `json:"base_url"`
	RequestTimeout timex.Duration `json:"request_timeout"`
	SyncInterval   timex.Duration `json:"sync_interval"`
	DataFile       string         `json:"data_file"`
}

// parseJson overlays cfg with values from the JSON file named by -c/-config.
// Missing flag means no JSON is loaded. Read or unmarshal errors panic;
// a broken config file should stop startup, not be silently ignored.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.ConfigFile()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.Environment != "" {
		cfg.Environment = jc.Environment
	}
	if jc.BaseURL != "" {
		cfg.BaseURL = jc.BaseURL
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
	}
	if jc.SyncInterval.Duration != 0 {
		cfg.SyncInterval = time.Duration(jc.SyncInterval.Duration)
	}
	if jc.DataFile != "" {
		cfg.DataFile = jc.DataFile
	}
}
