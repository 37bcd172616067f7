package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// MustLoad parses environment variables (after loading a .env file, if one
// is present) into cfg, panicking on a parse error. Intended for cmd/ entry
// points where a misconfigured process should fail fast at boot.
func MustLoad[T any](cfg T) {
	_ = godotenv.Load()
	env.Must(cfg, env.Parse(cfg))
}

// Load parses environment variables into cfg and returns any error instead
// of panicking, for callers (tests, tooling) that want to handle it.
func Load[T any](cfg T) error {
	_ = godotenv.Load()
	return env.Parse(cfg)
}
