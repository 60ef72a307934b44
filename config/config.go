// Package config loads service configuration from a config file and
// TRACKER_-prefixed environment variables.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	Database    DatabaseConfig    `mapstructure:"database"`
	Cache       CacheConfig       `mapstructure:"cache"`
	Idempotency IdempotencyConfig `mapstructure:"idempotency"`
}

type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"required"`
}

type CacheConfig struct {
	// TTL bounds the staleness window of the org/user read caches.
	TTL time.Duration `mapstructure:"ttl" validate:"gt=0"`
}

type IdempotencyConfig struct {
	// Retention is how long completed records are kept for replay.
	Retention time.Duration `mapstructure:"retention" validate:"gt=0"`
}

// Load reads configuration from config.yaml in the working directory and
// the environment. "database.url" becomes "TRACKER_DATABASE_URL".
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.SetEnvPrefix("TRACKER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("cache.ttl", 5*time.Minute)
	v.SetDefault("idempotency.retention", 24*time.Hour)
	_ = v.BindEnv("database.url")

	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}
