// Package config holds settings for the Tuchka CLI: defaults, an optional
// JSON file given with -c/-config, then command-line flags.
package config

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dmitrijs2005/tuchka/internal/flagx"
	"github.com/dmitrijs2005/tuchka/internal/timex"
)

// Config holds runtime settings for the CLI.
type Config struct {
	ServerEndpointAddr string
	RequestTimeout     time.Duration
}

type fileConfig struct {
	ServerEndpointAddr string         `json:"server_endpoint_addr"`
	RequestTimeout     timex.Duration `json:"request_timeout"`
}

func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.RequestTimeout = 10 * time.Second
}

// Load builds a Config from args. Flags the CLI does not know about are left
// for the command parser.
func Load(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if path := flagx.ConfigFileFlagFrom(args); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		fc := &fileConfig{}
		if err := json.Unmarshal(data, fc); err != nil {
			return nil, fmt.Errorf("parse config file %s: %w", path, err)
		}
		if fc.ServerEndpointAddr != "" {
			cfg.ServerEndpointAddr = fc.ServerEndpointAddr
		}
		if fc.RequestTimeout.Duration > 0 {
			cfg.RequestTimeout = fc.RequestTimeout.Duration
		}
	}

	fs := flag.NewFlagSet("cli", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&cfg.ServerEndpointAddr, "a", cfg.ServerEndpointAddr, "server gRPC address")
	fs.DurationVar(&cfg.RequestTimeout, "timeout", cfg.RequestTimeout, "request timeout")
	if err := fs.Parse(flagx.FilterArgs(args, []string{"-a", "-timeout"})); err != nil {
		return nil, err
	}

	return cfg, nil
}
