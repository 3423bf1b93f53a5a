// Package config loads application configuration from environment variables.
package config

import (
	"encoding/hex"
	"fmt"
	"os"
	"time"
)

// Storage backends selectable with NICHESCRIPT_STORE.
const (
	StoreSQLite   = "sqlite"
	StorePostgres = "postgres"
	StoreMemory   = "memory"
)

// Bounds for the stub provider's simulated latency. Zero is also accepted
// and turns the latency off, which is meant for tests only.
const (
	MinStubDelay = 500 * time.Millisecond
	MaxStubDelay = 1500 * time.Millisecond
)

// Config holds the application configuration loaded from environment variables.
type Config struct {
	ListenAddr  string
	Store       string
	DBPath      string
	DatabaseURL string

	// SecretKey seals stored values when set. Always 32 bytes or nil.
	SecretKey []byte

	GeminiBaseURL         string
	GeminiValidationModel string
	ProviderTimeout       time.Duration

	StubDelay         time.Duration
	StubValidateDelay time.Duration
}

// Load reads configuration from environment variables and returns a validated Config.
// Every variable is optional except NICHESCRIPT_DATABASE_URL when
// NICHESCRIPT_STORE is "postgres". Defaults: NICHESCRIPT_LISTEN_ADDR
// (127.0.0.1:8080), NICHESCRIPT_STORE (sqlite), NICHESCRIPT_DB_PATH
// (nichescript.db), NICHESCRIPT_GEMINI_VALIDATION_MODEL (gemini-2.5-flash),
// NICHESCRIPT_PROVIDER_TIMEOUT (2m), NICHESCRIPT_STUB_DELAY (1s),
// NICHESCRIPT_STUB_VALIDATE_DELAY (500ms). The stub delays must be 0 or lie
// within [MinStubDelay, MaxStubDelay].
func Load() (*Config, error) {
	cfg := &Config{
		ListenAddr:            envOr("NICHESCRIPT_LISTEN_ADDR", "127.0.0.1:8080"),
		Store:                 envOr("NICHESCRIPT_STORE", StoreSQLite),
		DBPath:                envOr("NICHESCRIPT_DB_PATH", "nichescript.db"),
		DatabaseURL:           os.Getenv("NICHESCRIPT_DATABASE_URL"),
		GeminiBaseURL:         os.Getenv("NICHESCRIPT_GEMINI_BASE_URL"),
		GeminiValidationModel: envOr("NICHESCRIPT_GEMINI_VALIDATION_MODEL", "gemini-2.5-flash"),
	}

	switch cfg.Store {
	case StoreSQLite, StoreMemory:
	case StorePostgres:
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("NICHESCRIPT_DATABASE_URL is required when NICHESCRIPT_STORE=%s", StorePostgres)
		}
	default:
		return nil, fmt.Errorf("NICHESCRIPT_STORE has unknown backend %q (want sqlite, postgres or memory)", cfg.Store)
	}

	var err error
	if cfg.ProviderTimeout, err = durationOr("NICHESCRIPT_PROVIDER_TIMEOUT", 2*time.Minute); err != nil {
		return nil, err
	}
	if cfg.StubDelay, err = stubDelayOr("NICHESCRIPT_STUB_DELAY", time.Second); err != nil {
		return nil, err
	}
	if cfg.StubValidateDelay, err = stubDelayOr("NICHESCRIPT_STUB_VALIDATE_DELAY", MinStubDelay); err != nil {
		return nil, err
	}

	if v, ok := os.LookupEnv("NICHESCRIPT_SECRET_KEY"); ok && v != "" {
		key, err := hex.DecodeString(v)
		if err != nil {
			return nil, fmt.Errorf("NICHESCRIPT_SECRET_KEY is not valid hex: %w", err)
		}
		if len(key) != 32 {
			return nil, fmt.Errorf("NICHESCRIPT_SECRET_KEY must be 64 hex characters (32 bytes), got %d bytes", len(key))
		}
		cfg.SecretKey = key
	}

	return cfg, nil
}

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func durationOr(key string, fallback time.Duration) (time.Duration, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback, nil
	}
	parsed, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s has invalid duration %q: %w", key, v, err)
	}
	if parsed < 0 {
		return 0, fmt.Errorf("%s must not be negative, got %s", key, v)
	}
	return parsed, nil
}

func stubDelayOr(key string, fallback time.Duration) (time.Duration, error) {
	d, err := durationOr(key, fallback)
	if err != nil {
		return 0, err
	}
	if d != 0 && (d < MinStubDelay || d > MaxStubDelay) {
		return 0, fmt.Errorf("%s must be 0 or between %s and %s, got %s", key, MinStubDelay, MaxStubDelay, d)
	}
	return d, nil
}
