// Package config loads runtime settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the settings for the roller command
type Config struct {
	// Redis connection
	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	// PoolTTL expires stored pools, 0 keeps them
	PoolTTL time.Duration `env:"POOL_TTL" envDefault:"0s"`

	// DiceSeed makes rolls reproducible, 0 picks a random seed
	DiceSeed int64 `env:"DICE_SEED" envDefault:"0"`

	// MaxRerollPasses bounds until_none rerolls, 0 removes the bound
	MaxRerollPasses int `env:"MAX_REROLL_PASSES" envDefault:"100"`
}

// Load reads the optional .env files, then the environment.
// Variables already set in the environment win over .env values.
func Load(files ...string) (*Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load env file: %w", err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if cfg.MaxRerollPasses < 0 {
		return nil, fmt.Errorf("MAX_REROLL_PASSES must not be negative, got %d", cfg.MaxRerollPasses)
	}

	return &cfg, nil
}
