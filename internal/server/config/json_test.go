package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, dir, name string, data map[string]any) string {
	t.Helper()
	if dir == "" {
		dir = t.TempDir()
	}
	if name == "" {
		name = "cfg.json"
	}
	path := filepath.Join(dir, name)
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJSON_SourcesAndPrecedence(t *testing.T) {
	dir := t.TempDir()
	full := writeTempJSON(t, dir, "full.json", map[string]any{
		"endpoint_addr_http":        "www.example:9000",
		"variant":                   "waitlist",
		"storage_backend":           "sqlite",
		"database_dsn":              "notes.db",
		"secret_key":                "my_secret_key",
		"session_validity_duration": "90s",
		"session_sweep_interval":    "1m",
		"session_backend":           "redis",
		"redis_addr":                "redis:6379",
		"redis_password":            "pw",
		"redis_db":                  3,
		"cookie_name":               "sid",
		"cookie_secure":             true,
		"log_level":                 "warn",
		"shutdown_timeout":          5000000000,
	})

	t.Run("loads from json", func(t *testing.T) {
		cfg := &Config{}
		require.NoError(t, parseJSON(cfg, []string{"-config", full}))

		assert.Equal(t, "www.example:9000", cfg.EndpointAddrHTTP)
		assert.Equal(t, VariantWaitlist, cfg.Variant)
		assert.Equal(t, StorageSQLite, cfg.StorageBackend)
		assert.Equal(t, "notes.db", cfg.DatabaseDSN)
		assert.Equal(t, "my_secret_key", cfg.SecretKey)
		assert.Equal(t, 90*time.Second, cfg.SessionValidityDuration)
		assert.Equal(t, time.Minute, cfg.SessionSweepInterval)
		assert.Equal(t, SessionRedis, cfg.SessionBackend)
		assert.Equal(t, "redis:6379", cfg.RedisAddr)
		assert.Equal(t, "pw", cfg.RedisPassword)
		assert.Equal(t, 3, cfg.RedisDB)
		assert.Equal(t, "sid", cfg.CookieName)
		assert.True(t, cfg.CookieSecure)
		assert.Equal(t, "warn", cfg.LogLevel)
		assert.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
	})

	t.Run("no config flag → no changes", func(t *testing.T) {
		cfg := &Config{}
		cfg.LoadDefaults()
		before := *cfg

		require.NoError(t, parseJSON(cfg, []string{"-a", ":1"}))
		assert.Equal(t, before, *cfg)
	})

	t.Run("partial file keeps other defaults", func(t *testing.T) {
		partial := writeTempJSON(t, dir, "partial.json", map[string]any{"secret_key": "only-this"})

		cfg := &Config{}
		cfg.LoadDefaults()
		require.NoError(t, parseJSON(cfg, []string{"-c", partial}))

		assert.Equal(t, "only-this", cfg.SecretKey)
		assert.Equal(t, ":8080", cfg.EndpointAddrHTTP)
		assert.Equal(t, 24*time.Hour, cfg.SessionValidityDuration)
	})

	t.Run("invalid json", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte("{not json"), 0o600))

		require.Error(t, parseJSON(&Config{}, []string{"-c", bad}))
	})

	t.Run("invalid duration", func(t *testing.T) {
		bad := writeTempJSON(t, dir, "dur.json", map[string]any{"session_validity_duration": "a while"})
		require.Error(t, parseJSON(&Config{}, []string{"-c", bad}))
	})
}
