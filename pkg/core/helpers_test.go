package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEnvFile_MissingFileIsIgnored(t *testing.T) {
	err := loadEnvFile(".env.does-not-exist")

	require.NoErrorf(t, err, `loading a missing env file should be a no-op, got %v`, err)
}

func TestLoadEnv_NoFiles(t *testing.T) {
	err := LoadEnv("os")

	require.NoError(t, err)
}

func TestGetEnv_KeyValue(t *testing.T) {
	t.Setenv("xyz", "abc")

	result := getEnv("xyz", "development")

	expected := "abc"

	assert.Equalf(t, expected, result, `getEnv("xyz", "development) = %q; expected: %q`, result, expected)
}

func TestGetEnv_FallbackValue(t *testing.T) {
	t.Setenv("xyz", "")

	result := getEnv("xyz", "development")

	expected := "development"

	assert.Equalf(t, expected, result, `getEnv("xyz", "development") = %q; expected: %q`, result, expected)
}

func TestNewConfigFromEnv(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("PORT", "9090")
	t.Setenv("OTEL_DISABLE", "true")
	t.Setenv("LOOKUP_BASE_URL", "http://lookup.test/")
	t.Setenv("LOOKUP_TIMEOUT", "3s")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("CORS_ALLOW_ORIGINS", "http://a.test")
	t.Setenv("LOG_LEVEL", "info")

	cfg, err := NewConfigFromEnv(WithLogLevel("debug"))
	require.NoError(t, err)

	assert.True(t, cfg.IsProd())
	assert.Equal(t, 9090, cfg.Port)
	assert.True(t, cfg.Otel.Disable)
	assert.Equal(t, 3*time.Second, cfg.Lookup.Timeout)
	assert.Equal(t, "http://lookup.test", cfg.LookupBaseURL())
	assert.Equal(t, 2, cfg.Redis.DB)
	assert.Equal(t, "http://a.test", cfg.CORS.AllowOrigins)
	assert.Equal(t, "debug", cfg.LogLevel, "options override the environment")
}

func TestNewConfigFromEnv_CollectsParseErrors(t *testing.T) {
	t.Setenv("PORT", "eighty")
	t.Setenv("LOOKUP_TIMEOUT", "soon")

	cfg, err := NewConfigFromEnv()
	require.Error(t, err)

	assert.Contains(t, err.Error(), "eighty")
	assert.Contains(t, err.Error(), "soon")
	assert.Equal(t, defaultConfigPort, cfg.Port)
	assert.Equal(t, defaultLookupTimeout, cfg.Lookup.Timeout)
}

func TestNewConfig_Options(t *testing.T) {
	cfg := NewConfig(
		WithEnvironment("test"),
		WithOtelDisable(),
		WithLookupBaseURL("http://x"),
		WithLookupTimeout(time.Second),
	)

	assert.False(t, cfg.IsProd())
	assert.True(t, cfg.Otel.Disable)
	assert.Equal(t, "http://x", cfg.Lookup.BaseURL)
	assert.Equal(t, time.Second, cfg.Lookup.Timeout)
}
