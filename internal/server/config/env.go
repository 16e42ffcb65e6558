package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

const envPrefix = "TUCHKA_"

// parseEnv overrides cfg with every TUCHKA_* variable that is set. Unset
// variables leave the current value alone.
func parseEnv(cfg *Config, environ map[string]string) error {
	opts := env.Options{Prefix: envPrefix}
	if environ != nil {
		opts.Environment = environ
	}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return fmt.Errorf("parse environment: %w", err)
	}
	return nil
}
