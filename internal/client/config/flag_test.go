package config

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{
			name:        "all flags",
			args:        []string{"-a", "http://127.0.0.1:5000/", "-s", "/tmp/q.db", "-t", "120", "-l", "debug"},
			expectPanic: false,
			expected: &Config{
				ServerBaseURL:   "http://127.0.0.1:5000",
				StoragePath:     "/tmp/q.db",
				DefaultTokenTTL: 2 * time.Minute,
				LogLevel:        "debug",
			},
		},
		{
			name:        "unrelated flags are ignored",
			args:        []string{"-c", "cfg.json", "-a", "http://127.0.0.1:5000"},
			expectPanic: false,
			expected:    &Config{ServerBaseURL: "http://127.0.0.1:5000"},
		},
		{name: "incorrect ttl", args: []string{"-t", "abc"}, expectPanic: true, expected: &Config{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := &Config{}

			if !tt.expectPanic {
				require.NotPanics(t, func() { parseFlags(config, tt.args) })
				assert.Empty(t, cmp.Diff(config, tt.expected))
			} else {
				require.Panics(t, func() { parseFlags(config, tt.args) })
			}
		})
	}
}
