// Package config loads runtime configuration for the QuizBoard CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c or -config.
//  3. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the remote API
//	-s string   path of the local session database
//	-t int      default token lifetime (seconds)
//	-l string   log level
//
// # JSON schema
//
//	{
//	  "server_base_url": "https://cae-bookstore.herokuapp.com",
//	  "storage_path": "data/quizboard.db",
//	  "default_token_ttl": "1h",
//	  "log_level": "warn"
//	}
package config
