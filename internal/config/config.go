package config

import (
	"fmt"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type AppConfig struct {
	Port string `mapstructure:"PORT" validate:"required,numeric"`

	// DatabaseURL is the Postgres DSN. Empty means an in-memory store.
	DatabaseURL    string `mapstructure:"DATABASE_URL"`
	DBMaxOpenConns int    `mapstructure:"DB_MAX_OPEN_CONNS" validate:"gte=0"`

	// Provider credentials are not checked here; a missing key fails the first call that needs it.
	GoogleMapsAPIKey string `mapstructure:"GOOGLE_MAPS_API_KEY"`
	DarkSkyAPIKey    string `mapstructure:"DARK_SKY_API_KEY"`
	MeetupAPIKey     string `mapstructure:"MEETUP_API_KEY"`

	// HTTPTimeout bounds outbound provider calls (0 = no deadline).
	HTTPTimeout time.Duration `mapstructure:"HTTP_TIMEOUT" validate:"gte=0"`

	// StoreCheckInterval controls how often the store connection is pinged (0 = never).
	StoreCheckInterval time.Duration `mapstructure:"STORE_CHECK_INTERVAL" validate:"gte=0"`

	LogLevel string `mapstructure:"LOG_LEVEL" validate:"oneof=debug info warn error"`
}

var keys = []string{
	"PORT",
	"DATABASE_URL",
	"DB_MAX_OPEN_CONNS",
	"GOOGLE_MAPS_API_KEY",
	"DARK_SKY_API_KEY",
	"MEETUP_API_KEY",
	"HTTP_TIMEOUT",
	"STORE_CHECK_INTERVAL",
	"LOG_LEVEL",
}

// Load reads configuration from a .env file (if any) and the environment,
// with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}

	v := viper.New()
	v.SetDefault("PORT", "3000")
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("DB_MAX_OPEN_CONNS", 1)
	v.SetDefault("GOOGLE_MAPS_API_KEY", "")
	v.SetDefault("DARK_SKY_API_KEY", "")
	v.SetDefault("MEETUP_API_KEY", "")
	v.SetDefault("HTTP_TIMEOUT", "0s")
	v.SetDefault("STORE_CHECK_INTERVAL", "1m")
	v.SetDefault("LOG_LEVEL", "info")

	for _, key := range keys {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("bind %s: %w", key, err)
		}
	}

	cfg := &AppConfig{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}
