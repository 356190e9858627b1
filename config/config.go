package config

import (
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

type Config struct {
	DbPath       string        `env:"DB_PATH" envDefault:"leads.db"`
	DbTimeout    time.Duration `env:"DB_TIMEOUT" envDefault:"10s"`
	LogLevel     string        `env:"LOG_LEVEL" envDefault:"info"`
	Timezone     string        `env:"TIMEZONE" envDefault:"America/Sao_Paulo"`
	IntakeRate   float64       `env:"INTAKE_RATE" envDefault:"1"`
	IntakeBurst  int           `env:"INTAKE_BURST" envDefault:"5"`
	NoticeBuffer int           `env:"NOTICE_BUFFER" envDefault:"16"`
}

// Load reads the given .env files (if present) and then the environment.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil {
		zap.L().Debug("No .env file loaded", zap.Error(err))
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Location resolves Timezone, falling back to the local zone.
func (c Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		zap.L().Warn("Unknown timezone, using local", zap.String("timezone", c.Timezone), zap.Error(err))
		return time.Local
	}
	return loc
}
