package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	unset(t,
		"APP_ENV", "HOST", "PORT", "ALLOWED_ORIGINS", "LOG_LEVEL", "DATABASE_URL",
		"REDIS_URL", "MEILISEARCH_HOST", "MEILI_MASTER_KEY",
		"ENROLLMENT_ROUTE_BY_TYPE", "SHUTDOWN_TIMEOUT",
	)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.AppEnv)
	assert.Equal(t, "0.0.0.0:8000", cfg.Addr())
	assert.Equal(t, "cms.db", cfg.DatabaseURL)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.AllowedOrigins)
	assert.False(t, cfg.EnrollmentRouteByType)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Empty(t, cfg.RedisURL)
	assert.Empty(t, cfg.MeiliSearchHost)
	assert.True(t, cfg.IsDevelopment())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("PORT", "9000")
	t.Setenv("HOST", "127.0.0.1")
	t.Setenv("ALLOWED_ORIGINS", "http://a.test, http://b.test,")
	t.Setenv("ENROLLMENT_ROUTE_BY_TYPE", "true")
	t.Setenv("SHUTDOWN_TIMEOUT", "3s")
	t.Setenv("MEILISEARCH_HOST", "meili")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9000", cfg.Addr())
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.AllowedOrigins)
	assert.True(t, cfg.EnrollmentRouteByType)
	assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "http://meili:7700", cfg.MeiliSearchHost)
	assert.False(t, cfg.IsDevelopment())
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("ENROLLMENT_ROUTE_BY_TYPE", "sometimes")
	_, err := Load()
	assert.ErrorContains(t, err, "ENROLLMENT_ROUTE_BY_TYPE")

	t.Setenv("ENROLLMENT_ROUTE_BY_TYPE", "false")
	t.Setenv("SHUTDOWN_TIMEOUT", "soon")
	_, err = Load()
	assert.ErrorContains(t, err, "SHUTDOWN_TIMEOUT")
}

// unset clears keys for the duration of the test and restores them afterwards.
func unset(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}
