// Package config parses the process command line.
package config

import (
	"flag"
	"time"

	"github.com/flintlabs/flint/http"
)

type Config struct {
	Addr        string
	Directory   string
	IdleTimeout time.Duration
}

// Parse reads the settings from args, the command line without the program
// name.
func Parse(args []string) (*Config, error) {
	cfg := &Config{}

	fs := flag.NewFlagSet("flint", flag.ContinueOnError)
	fs.StringVar(&cfg.Addr, "addr", "127.0.0.1:4221", "address to listen on")
	fs.StringVar(&cfg.Directory, "directory", "", "base directory for the /files/ endpoints")
	fs.StringVar(&cfg.Directory, "d", "", "shorthand for -directory")
	fs.DurationVar(&cfg.IdleTimeout, "idle-timeout", http.DefaultIdleTimeout, "idle connection timeout")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return cfg, nil
}
