package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds the application configuration
type Config struct {
	// Environment
	Environment string
	Port        string

	// Database (optional). Without it generated compositions are not stored.
	DatabaseURL         string
	PersistCompositions bool

	// Observability
	SentryDSN      string
	MetricsEnabled bool // Prometheus /metrics endpoint

	// Engine
	EngineWorkers     int           // 0 means one worker per CPU
	MaxSearchSpace    uint64        // 0 disables the ceiling
	DefaultSpecies    int           // species used when a request omits it
	GenerationTimeout time.Duration // per-request deadline for enumeration

	// Auth mode
	// - "none": No auth (self-hosted, local dev)
	// - "gateway": Trust X-User-* headers from the upstream gateway
	AuthMode string
}

const (
	defaultMaxSearchSpace    = 50_000_000
	defaultGenerationTimeout = 30 * time.Second
)

func Load() *Config {
	return &Config{
		Environment:         getEnv("ENVIRONMENT", "development"),
		Port:                getEnv("PORT", "8080"),
		DatabaseURL:         getEnv("DATABASE_URL", ""),
		PersistCompositions: getEnvBool("PERSIST_COMPOSITIONS", true),
		SentryDSN:           getEnv("SENTRY_DSN", ""),
		MetricsEnabled:      getEnvBool("METRICS_ENABLED", true),
		EngineWorkers:       getEnvInt("ENGINE_WORKERS", 0),
		MaxSearchSpace:      getEnvUint64("MAX_SEARCH_SPACE", defaultMaxSearchSpace),
		DefaultSpecies:      getEnvInt("DEFAULT_SPECIES", 1),
		GenerationTimeout:   getEnvDuration("GENERATION_TIMEOUT", defaultGenerationTimeout),
		AuthMode:            getEnv("AUTH_MODE", "none"), // Default to no auth for self-hosted
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if n, err := strconv.Atoi(getEnv(key, "")); err == nil {
		return n
	}
	return defaultValue
}

func getEnvUint64(key string, defaultValue uint64) uint64 {
	if n, err := strconv.ParseUint(getEnv(key, ""), 10, 64); err == nil {
		return n
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if b, err := strconv.ParseBool(getEnv(key, "")); err == nil {
		return b
	}
	return defaultValue
}

// getEnvDuration accepts Go durations ("45s") or plain seconds ("45")
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := getEnv(key, "")
	if value == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(value); err == nil {
		return time.Duration(secs) * time.Second
	}
	return defaultValue
}

// IsGatewayMode returns true if running behind the auth gateway
func (c *Config) IsGatewayMode() bool {
	return c.AuthMode == "gateway"
}

// IsProduction reports whether the service runs in production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// HasDatabase reports whether compositions can be persisted
func (c *Config) HasDatabase() bool {
	return c.DatabaseURL != "" && c.PersistCompositions
}
