package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "facet-go", cfg.App.Name)
	assert.Equal(t, "development", cfg.App.Environment)
	assert.False(t, cfg.App.Debug)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 30*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSAllowedOrigins)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)

	assert.Empty(t, cfg.Catalog.SeedFile)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("FCS_ENVIRONMENT", "production")
	t.Setenv("PORT", "9090")
	t.Setenv("FCS_LOG_LEVEL", "debug")
	t.Setenv("FCS_CATALOG_SEED_FILE", "/data/catalog.json")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.App.Environment)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/data/catalog.json", cfg.Catalog.SeedFile)
}

func TestGetEnvHelpers(t *testing.T) {
	t.Setenv("FCS_TEST_STRING", "value")
	t.Setenv("FCS_TEST_INT", "42")
	t.Setenv("FCS_TEST_BOOL", "true")
	t.Setenv("FCS_TEST_BAD_INT", "not-a-number")

	assert.Equal(t, "value", GetEnv("FCS_TEST_STRING", "fallback"))
	assert.Equal(t, "fallback", GetEnv("FCS_TEST_MISSING", "fallback"))

	assert.Equal(t, 42, GetEnvInt("FCS_TEST_INT", 7))
	assert.Equal(t, 7, GetEnvInt("FCS_TEST_BAD_INT", 7))
	assert.Equal(t, 7, GetEnvInt("FCS_TEST_MISSING", 7))

	assert.True(t, GetEnvBool("FCS_TEST_BOOL", false))
	assert.False(t, GetEnvBool("FCS_TEST_MISSING", false))
}
