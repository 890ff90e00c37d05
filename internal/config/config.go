// Package config loads server configuration from the environment.
package config

import (
	"fmt"
	"os"
	"time"
)

// Config holds everything the server needs to start.
type Config struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string

	// DBPath is the SQLite database file path.
	DBPath string

	// JWTSecret signs session tokens. Required.
	JWTSecret string

	// TokenTTL is how long session tokens remain valid.
	TokenTTL time.Duration

	// StoreTimeout bounds a single store call.
	StoreTimeout time.Duration

	// CORSOrigin is the allowed CORS origin ("*" by default).
	CORSOrigin string
}

// Load reads configuration from the environment, applying defaults.
// JWT_SECRET is required; everything else has a sensible default.
func Load() (*Config, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	tokenTTL, err := durationEnv("TOKEN_TTL", 24*time.Hour)
	if err != nil {
		return nil, err
	}
	storeTimeout, err := durationEnv("STORE_TIMEOUT", 5*time.Second)
	if err != nil {
		return nil, err
	}

	return &Config{
		Addr:         getEnv("ADDR", ":8080"),
		DBPath:       getEnv("DB_PATH", "./data/splithappens.db"),
		JWTSecret:    secret,
		TokenTTL:     tokenTTL,
		StoreTimeout: storeTimeout,
		CORSOrigin:   getEnv("CORS_ORIGIN", "*"),
	}, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func durationEnv(key string, fallback time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
