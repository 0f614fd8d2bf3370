package config

import (
	"github.com/rotisserie/eris"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ConnectDatabase opens the postgres database at url.
func ConnectDatabase(url string, cfg Config) (*gorm.DB, error) {
	level := logger.Warn
	if cfg.IsDevelopment() {
		level = logger.Info
	}

	db, err := gorm.Open(postgres.Open(url), &gorm.Config{Logger: logger.Default.LogMode(level)})
	if err != nil {
		return nil, eris.Wrap(err, "failed to connect to database")
	}
	return db, nil
}
