package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	PlatformDev = "dev"

	// MaxAccessTTL bounds ACCESS_TOKEN_TTL and so every access token.
	MaxAccessTTL = time.Hour

	defaultPlatform       = "prod"
	defaultPort           = "8080"
	defaultFileserverRoot = "./public"
	defaultAccessTTL      = "1h"
	defaultRefreshTTL     = "1440h"
	defaultLogLevel       = "info"
	defaultLogFormat      = "text"
)

type Config struct {
	DBURL          string        `mapstructure:"DB_URL"`
	Platform       string        `mapstructure:"PLATFORM"`
	JWTSecret      string        `mapstructure:"SECRET_KEY"`
	PolkaKey       string        `mapstructure:"POLKA_KEY"`
	Port           string        `mapstructure:"PORT"`
	FileserverRoot string        `mapstructure:"FILESERVER_ROOT"`
	AccessTTL      time.Duration `mapstructure:"ACCESS_TOKEN_TTL"`
	RefreshTTL     time.Duration `mapstructure:"REFRESH_TOKEN_TTL"`
	LogLevel       string        `mapstructure:"LOG_LEVEL"`
	LogFormat      string        `mapstructure:"LOG_FORMAT"`
	FeedUserRaw    string        `mapstructure:"CHIRPS_FEED_USER_ID"`
	CORSOrigins    []string      `mapstructure:"CORS_ALLOWED_ORIGINS"`

	// FeedUserID is the only author listed by GET /api/chirps.
	FeedUserID uuid.UUID `mapstructure:"-"`
}

var keys = []string{
	"DB_URL", "PLATFORM", "SECRET_KEY", "POLKA_KEY", "PORT", "FILESERVER_ROOT",
	"ACCESS_TOKEN_TTL", "REFRESH_TOKEN_TTL", "LOG_LEVEL", "LOG_FORMAT", "CHIRPS_FEED_USER_ID",
	"CORS_ALLOWED_ORIGINS",
}

// Load reads .env (if present) and the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	for _, k := range keys {
		if err := v.BindEnv(k); err != nil {
			return nil, fmt.Errorf("bind %s: %w", k, err)
		}
	}

	v.SetDefault("PLATFORM", defaultPlatform)
	v.SetDefault("PORT", defaultPort)
	v.SetDefault("FILESERVER_ROOT", defaultFileserverRoot)
	v.SetDefault("ACCESS_TOKEN_TTL", defaultAccessTTL)
	v.SetDefault("REFRESH_TOKEN_TTL", defaultRefreshTTL)
	v.SetDefault("LOG_LEVEL", defaultLogLevel)
	v.SetDefault("LOG_FORMAT", defaultLogFormat)

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	cfg.Platform = strings.ToLower(strings.TrimSpace(cfg.Platform))
	cfg.FeedUserRaw = strings.TrimSpace(cfg.FeedUserRaw)
	if cfg.FeedUserRaw == "" {
		return nil, errors.New("CHIRPS_FEED_USER_ID must be set")
	}
	id, err := uuid.Parse(cfg.FeedUserRaw)
	if err != nil {
		return nil, fmt.Errorf("invalid CHIRPS_FEED_USER_ID %q: %w", cfg.FeedUserRaw, err)
	}
	cfg.FeedUserID = id

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validateConfig(cfg *Config) error {
	if strings.TrimSpace(cfg.DBURL) == "" {
		return errors.New("DB_URL must be set")
	}
	if strings.TrimSpace(cfg.JWTSecret) == "" {
		return errors.New("SECRET_KEY must be set")
	}
	if strings.TrimSpace(cfg.PolkaKey) == "" {
		return errors.New("POLKA_KEY must be set")
	}
	if cfg.AccessTTL <= 0 {
		return errors.New("ACCESS_TOKEN_TTL must be > 0")
	}
	if cfg.AccessTTL > MaxAccessTTL {
		return fmt.Errorf("ACCESS_TOKEN_TTL must be at most %s", MaxAccessTTL)
	}
	if cfg.FeedUserID == uuid.Nil {
		return errors.New("CHIRPS_FEED_USER_ID must not be the nil UUID")
	}
	if cfg.RefreshTTL <= 0 {
		return errors.New("REFRESH_TOKEN_TTL must be > 0")
	}
	return nil
}

func (c *Config) IsDev() bool {
	return c.Platform == PlatformDev
}

func (c *Config) IsProdLike() bool {
	return c.Platform == "prod" || c.Platform == "production" || c.Platform == "release"
}
