package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parse reads a config struct from its env tags, optionally under a prefix.
func parse[T any](name, prefix string) (*T, error) {
	cfg, err := env.ParseAsWithOptions[T](env.Options{Prefix: prefix})
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s config: %w", name, err)
	}
	return &cfg, nil
}
