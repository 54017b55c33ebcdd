package configs

import "time"

// Redis configures the landing-page signal cache. When Enabled is false the
// engine runs without a cache and every signal lookup hits the repository.
type Redis struct {
	Enabled  bool   `env:"ENABLED" envDefault:"false"`
	Address  string `env:"ADDRESS" envDefault:"localhost:6379"`
	Password string `env:"PASSWORD" envDefault:""`
	DB       int    `env:"DB" envDefault:"0"`
	// SignalTTL is how long cached product signals stay valid.
	SignalTTL time.Duration `env:"SIGNAL_TTL" envDefault:"5m"`
}
