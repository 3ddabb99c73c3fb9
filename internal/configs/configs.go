package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	AppHost                        string `mapstructure:"app_host" validate:"required"`
	AppPort                        int    `mapstructure:"app_port" validate:"gt=0,lt=65536"`
	DatabaseDriver                 string `mapstructure:"database_driver" validate:"oneof=sqlite postgres"`
	DatabaseDSN                    string `mapstructure:"database_dsn" validate:"required"`
	AutoMigrate                    bool   `mapstructure:"auto_migrate"`
	RedisAddr                      string `mapstructure:"redis_addr"`
	RedisKeyPrefix                 string `mapstructure:"redis_key_prefix" validate:"required"`
	JWTSecret                      string `mapstructure:"jwt_secret" validate:"omitempty,min=32"`
	TokenTTLMinutes                int    `mapstructure:"token_ttl_minutes" validate:"gt=0"`
	RequireAuthForReads            bool   `mapstructure:"require_auth_for_reads"`
	ZeroBasedPageLinks             bool   `mapstructure:"zero_based_page_links"`
	RateLimit                      int    `mapstructure:"rate_limit_per_minute" validate:"gt=0"`
	ShutdownTimeoutSeconds         int    `mapstructure:"shutdown_timeout_seconds" validate:"gt=0"`
	RevocationPurgeIntervalSeconds int    `mapstructure:"revocation_purge_interval_seconds" validate:"gt=0"`
	LogLevel                       string `mapstructure:"log_level" validate:"oneof=debug info warn error"`
}

var defaults = map[string]any{
	"app_host":                          "127.0.0.1",
	"app_port":                          8080,
	"database_driver":                   "sqlite",
	"database_dsn":                      "tasks.db",
	"auto_migrate":                      true,
	"redis_addr":                        "",
	"redis_key_prefix":                  "revoked:",
	"jwt_secret":                        "",
	"token_ttl_minutes":                 1440,
	"require_auth_for_reads":            true,
	"zero_based_page_links":             false,
	"rate_limit_per_minute":             60,
	"shutdown_timeout_seconds":          20,
	"revocation_purge_interval_seconds": 300,
	"log_level":                         "info",
}

// Load reads the configuration from the environment. JWTSecret may be empty
// for tooling commands; serve rejects it through the token issuer. Every key has a
// default so AutomaticEnv can resolve it; call godotenv beforehand to pick
// up a .env file.
func Load() (Config, error) {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode configuration: %w", err)
	}
	cfg.DatabaseDriver = strings.ToLower(cfg.DatabaseDriver)
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)

	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func (c Config) Address() string {
	return fmt.Sprintf("%s:%d", c.AppHost, c.AppPort)
}

func (c Config) TokenTTL() time.Duration {
	return time.Duration(c.TokenTTLMinutes) * time.Minute
}

func (c Config) ShutdownTimeout() time.Duration {
	return time.Duration(c.ShutdownTimeoutSeconds) * time.Second
}

func (c Config) RevocationPurgeInterval() time.Duration {
	return time.Duration(c.RevocationPurgeIntervalSeconds) * time.Second
}
