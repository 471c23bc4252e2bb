package config

import (
	"flag"
	"strings"
	"time"

	"github.com/dmitrijs2005/quizboard/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
//	-a string   base URL of the remote API
//	-s string   path of the local session database
//	-t int      default token lifetime (in seconds)
//	-l string   log level (debug, info, warn, error)
//
// Only these flags are looked at, so -c/-config can share the command line.
// Parsing errors panic.
func parseFlags(cfg *Config, args []string) {
	args = flagx.FilterArgs(args, []string{"-a", "-s", "-t", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerBaseURL, "a", cfg.ServerBaseURL, "base URL of the question board API")
	fs.StringVar(&cfg.StoragePath, "s", cfg.StoragePath, "path to the local session database")
	ttl := fs.Int("t", int(cfg.DefaultTokenTTL.Seconds()), "default token lifetime (in seconds)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.ServerBaseURL = strings.TrimRight(cfg.ServerBaseURL, "/")
	cfg.DefaultTokenTTL = time.Duration(*ttl) * time.Second
}
