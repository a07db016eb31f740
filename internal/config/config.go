// Package config loads the daemon configuration from the environment, with
// an optional .env file for local development.
package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

const (
	defaultListenAddr      = ":8080"
	defaultProviderBaseURL = "https://lrclib.net"
	defaultCachePath       = "liner-cache.db"
	defaultCacheTTL        = 24 * time.Hour
	// Primary browsing surfaces (track, album, artist) live three days
	defaultPrimaryTimeout = 72 * time.Hour
	// Selection and menu surfaces live fifteen minutes
	defaultSecondaryTimeout = 15 * time.Minute
)

// Config holds the daemon configuration.
type Config struct {
	ListenAddr      string
	ProviderBaseURL string
	CachePath       string
	CacheTTL        time.Duration
	// PrimaryTimeout is the inactivity timeout of long-lived browsing
	// surfaces; SecondaryTimeout covers selection and menu surfaces.
	PrimaryTimeout   time.Duration
	SecondaryTimeout time.Duration
}

// New reads configuration from the environment. A .env file in the working
// directory is applied first when present.
func New(logger *zap.Logger) *Config {
	if err := godotenv.Load(); err == nil {
		logger.Debug(".env file loaded")
	}

	cfg := &Config{
		ListenAddr:       envString("LINER_ADDR", defaultListenAddr),
		ProviderBaseURL:  envString("LINER_PROVIDER_URL", defaultProviderBaseURL),
		CachePath:        envString("LINER_CACHE_PATH", defaultCachePath),
		CacheTTL:         envDuration(logger, "LINER_CACHE_TTL", defaultCacheTTL),
		PrimaryTimeout:   envDuration(logger, "LINER_PRIMARY_TIMEOUT", defaultPrimaryTimeout),
		SecondaryTimeout: envDuration(logger, "LINER_SECONDARY_TIMEOUT", defaultSecondaryTimeout),
	}

	logger.Info("configuration loaded",
		zap.String("addr", cfg.ListenAddr),
		zap.String("provider", cfg.ProviderBaseURL),
		zap.String("cachePath", cfg.CachePath),
		zap.Duration("primaryTimeout", cfg.PrimaryTimeout),
		zap.Duration("secondaryTimeout", cfg.SecondaryTimeout))
	return cfg
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envDuration(logger *zap.Logger, key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		logger.Warn("invalid duration, using default",
			zap.String("key", key),
			zap.String("value", v),
			zap.Duration("default", fallback))
		return fallback
	}
	return d
}
