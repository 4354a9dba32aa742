package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"ENVIRONMENT", "PORT", "DATABASE_URL", "ENGINE_WORKERS", "MAX_SEARCH_SPACE",
		"DEFAULT_SPECIES", "GENERATION_TIMEOUT", "PERSIST_COMPOSITIONS", "METRICS_ENABLED", "AUTH_MODE",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 0, cfg.EngineWorkers)
	assert.Equal(t, uint64(50_000_000), cfg.MaxSearchSpace)
	assert.Equal(t, 1, cfg.DefaultSpecies)
	assert.Equal(t, 30*time.Second, cfg.GenerationTimeout)
	assert.True(t, cfg.MetricsEnabled)
	assert.False(t, cfg.HasDatabase())
	assert.False(t, cfg.IsGatewayMode())
	assert.False(t, cfg.IsProduction())
}

func TestLoad_Overrides(t *testing.T) {
	tests := []struct {
		name  string
		env   map[string]string
		check func(t *testing.T, cfg *Config)
	}{
		{
			name: "engine settings",
			env:  map[string]string{"ENGINE_WORKERS": "4", "MAX_SEARCH_SPACE": "1000", "DEFAULT_SPECIES": "2"},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, 4, cfg.EngineWorkers)
				assert.Equal(t, uint64(1000), cfg.MaxSearchSpace)
				assert.Equal(t, 2, cfg.DefaultSpecies)
			},
		},
		{
			name: "timeout as duration",
			env:  map[string]string{"GENERATION_TIMEOUT": "1m30s"},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, 90*time.Second, cfg.GenerationTimeout)
			},
		},
		{
			name: "timeout as seconds",
			env:  map[string]string{"GENERATION_TIMEOUT": "12"},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, 12*time.Second, cfg.GenerationTimeout)
			},
		},
		{
			name: "malformed values fall back",
			env:  map[string]string{"ENGINE_WORKERS": "many", "GENERATION_TIMEOUT": "soon", "METRICS_ENABLED": "maybe"},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, 0, cfg.EngineWorkers)
				assert.Equal(t, 30*time.Second, cfg.GenerationTimeout)
				assert.True(t, cfg.MetricsEnabled)
			},
		},
		{
			name: "database with persistence disabled",
			env:  map[string]string{"DATABASE_URL": "postgres://localhost/cp", "PERSIST_COMPOSITIONS": "false"},
			check: func(t *testing.T, cfg *Config) {
				assert.False(t, cfg.HasDatabase())
			},
		},
		{
			name: "gateway in production",
			env:  map[string]string{"AUTH_MODE": "gateway", "ENVIRONMENT": "production", "DATABASE_URL": "postgres://localhost/cp"},
			check: func(t *testing.T, cfg *Config) {
				assert.True(t, cfg.IsGatewayMode())
				assert.True(t, cfg.IsProduction())
				assert.True(t, cfg.HasDatabase())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			tt.check(t, Load())
		})
	}
}
