package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/quizboard/internal/flagx"
	"github.com/dmitrijs2005/quizboard/internal/timex"
)

// JsonConfig is the on-disk shape of the config file. Durations accept
// strings like "1h" or integer nanoseconds.
type JsonConfig struct {
	ServerBaseURL   string         `json:"server_base_url"`
	StoragePath     string         `json:"storage_path"`
	DefaultTokenTTL timex.Duration `json:"default_token_ttl"`
	LogLevel        string         `json:"log_level"`
}

// parseJson overlays cfg with the values present in the file named by -c or
// -config. Missing keys keep their current value. Read or decode errors panic.
func parseJson(cfg *Config, args []string) {
	path := flagx.ConfigFileFlag(args)
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ServerBaseURL != "" {
		cfg.ServerBaseURL = jc.ServerBaseURL
	}
	if jc.StoragePath != "" {
		cfg.StoragePath = jc.StoragePath
	}
	if jc.DefaultTokenTTL.Duration != 0 {
		cfg.DefaultTokenTTL = jc.DefaultTokenTTL.Duration
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
}
