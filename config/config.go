package config

import (
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/rotisserie/eris"
)

// Config is read from the environment, after an optional .env file.
type Config struct {
	Port     string `env:"PORT" envDefault:"8080"`
	Env      string `env:"ENV" envDefault:"development"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// DatabaseURL selects the postgres store. When empty the session lives in memory.
	DatabaseURL string `env:"DATABASE_URL"`

	MatchmakingDelay time.Duration `env:"MATCHMAKING_DELAY" envDefault:"500ms"`
	BackupSchedule   string        `env:"BACKUP_SCHEDULE" envDefault:"0 */15 * * * *"`
	BackupRetention  int           `env:"BACKUP_RETENTION" envDefault:"20"`

	// CORSOrigins lists the allowed origins. Empty allows every origin.
	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:","`
}

func Load() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, eris.Wrap(err, "failed to parse config")
	}
	if cfg.BackupRetention < 1 {
		return Config{}, eris.Errorf("BACKUP_RETENTION must be at least 1, got %d", cfg.BackupRetention)
	}
	if cfg.MatchmakingDelay < 0 {
		return Config{}, eris.Errorf("MATCHMAKING_DELAY must not be negative, got %s", cfg.MatchmakingDelay)
	}
	return cfg, nil
}

func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}
