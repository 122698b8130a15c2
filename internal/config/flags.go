package config

import (
	"flag"
	"os"
	"time"

	"github.com/cannadex/cannadex-go/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-e string   environment, "dev" or "prod"
//	-a string   API base URL, overrides the environment default
//	-t int      request timeout in seconds
//	-s int      sync interval in seconds
//	-f string   path of the local data file
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.Filter, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.Filter(os.Args[1:], []string{"-e", "-a", "-t", "-s", "-f"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.Environment, "e", cfg.Environment, "environment (dev or prod)")
	fs.StringVar(&cfg.BaseURL, "a", cfg.BaseURL, "API base URL")
	requestTimeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	syncInterval := fs.Int("s", int(cfg.SyncInterval.Seconds()), "sync interval (in seconds)")
	fs.StringVar(&cfg.DataFile, "f", cfg.DataFile, "path of the local data file")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*requestTimeout) * time.Second
	cfg.SyncInterval = time.Duration(*syncInterval) * time.Second
}
