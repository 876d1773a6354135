package mcpserver

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// clearRAMLTOOLSEnv clears all RAMLTOOLS_* env vars to isolate tests from the ambient environment.
func clearRAMLTOOLSEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"RAMLTOOLS_CACHE_ENABLED", "RAMLTOOLS_CACHE_MAX_SIZE",
		"RAMLTOOLS_CACHE_FILE_TTL", "RAMLTOOLS_CACHE_CONTENT_TTL",
		"RAMLTOOLS_CACHE_SWEEP_INTERVAL", "RAMLTOOLS_MAX_INLINE_SIZE",
		"RAMLTOOLS_TOKEN_LIMIT", "RAMLTOOLS_MAX_LIMIT",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearRAMLTOOLSEnv(t)

	c := loadConfig()

	assert.True(t, c.CacheEnabled)
	assert.Equal(t, 10, c.CacheMaxSize)
	assert.Equal(t, 15*time.Minute, c.CacheFileTTL)
	assert.Equal(t, 15*time.Minute, c.CacheContentTTL)
	assert.Equal(t, 60*time.Second, c.CacheSweepInterval)
	assert.Equal(t, int64(2*1024*1024), c.MaxInlineSize)
	assert.Equal(t, 500, c.TokenLimit)
	assert.Equal(t, 5000, c.MaxLimit)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	clearRAMLTOOLSEnv(t)
	t.Setenv("RAMLTOOLS_CACHE_ENABLED", "false")
	t.Setenv("RAMLTOOLS_CACHE_MAX_SIZE", "50")
	t.Setenv("RAMLTOOLS_CACHE_FILE_TTL", "30m")
	t.Setenv("RAMLTOOLS_CACHE_CONTENT_TTL", "10m")
	t.Setenv("RAMLTOOLS_CACHE_SWEEP_INTERVAL", "30s")
	t.Setenv("RAMLTOOLS_MAX_INLINE_SIZE", "5242880")
	t.Setenv("RAMLTOOLS_TOKEN_LIMIT", "100")
	t.Setenv("RAMLTOOLS_MAX_LIMIT", "1000")

	c := loadConfig()

	assert.False(t, c.CacheEnabled)
	assert.Equal(t, 50, c.CacheMaxSize)
	assert.Equal(t, 30*time.Minute, c.CacheFileTTL)
	assert.Equal(t, 10*time.Minute, c.CacheContentTTL)
	assert.Equal(t, 30*time.Second, c.CacheSweepInterval)
	assert.Equal(t, int64(5242880), c.MaxInlineSize)
	assert.Equal(t, 100, c.TokenLimit)
	assert.Equal(t, 1000, c.MaxLimit)
}

func TestLoadConfig_InvalidValuesFallBack(t *testing.T) {
	clearRAMLTOOLSEnv(t)
	t.Setenv("RAMLTOOLS_CACHE_ENABLED", "not-a-bool")
	t.Setenv("RAMLTOOLS_CACHE_MAX_SIZE", "-5")
	t.Setenv("RAMLTOOLS_CACHE_FILE_TTL", "soon")
	t.Setenv("RAMLTOOLS_TOKEN_LIMIT", "zero")

	c := loadConfig()

	assert.True(t, c.CacheEnabled)
	assert.Equal(t, 10, c.CacheMaxSize)
	assert.Equal(t, 15*time.Minute, c.CacheFileTTL)
	assert.Equal(t, 500, c.TokenLimit)
}
