package config

import (
	"github.com/caarlos0/env/v11"

	"marketplace-ads/internal/config/configs"
)

// Config aggregates all configuration sections for the auction service.
// Fields are populated from environment variables using the caarlos0/env
// library; the nested structs are tagged with envPrefix so their fields are
// parsed with the given prefix. Use Load to construct a Config.
type Config struct {
	// Env specifies the deployment environment (e.g. prod, dev).
	Env string `env:"ENV" envDefault:"prod"`

	// HTTP holds configuration for the HTTP server (HTTP_ prefix).
	HTTP configs.HTTP `envPrefix:"HTTP_"`

	// Log configures the structured logger (LOG_ prefix).
	Log configs.Logger `envPrefix:"LOG_"`

	// Psql configures the PostgreSQL connection (PSQL_ prefix).
	Psql configs.Postgres `envPrefix:"PSQL_"`

	// Redis configures the landing-page signal cache (REDIS_ prefix).
	Redis configs.Redis `envPrefix:"REDIS_"`
}

// Load reads configuration from environment variables into a Config. All
// fields fall back to their declared defaults when no environment variable
// is provided.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
