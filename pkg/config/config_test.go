package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 50, cfg.Server.RateLimitPerSecond)
	assert.Equal(t, 100, cfg.Server.RateLimitBurst)
	assert.Equal(t, "gemini-2.0-flash", cfg.Gemini.Model)
	assert.True(t, cfg.Observability.MetricsEnabled)
	assert.False(t, cfg.Database.Enabled())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DATABASE_URL", "postgres://localhost/locato")
	t.Setenv("RATE_LIMIT_PER_SECOND", "5")
	t.Setenv("METRICS_ENABLED", "false")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.True(t, cfg.Database.Enabled())
	assert.Equal(t, 5, cfg.Server.RateLimitPerSecond)
	assert.False(t, cfg.Observability.MetricsEnabled)
}

func TestLoad_BadInt(t *testing.T) {
	t.Setenv("RATE_LIMIT_BURST", "lots")

	_, err := Load()
	require.Error(t, err)
}
