package cmd_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"foodorder/cmd"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envOf(values map[string]string) func(string) string {
	return func(key string) string { return values[key] }
}

func TestConfigFromEnv_Defaults(t *testing.T) {
	cfg, err := cmd.ConfigFromEnv(envOf(map[string]string{
		"DB_USER":    "app",
		"DB_NAME":    "food",
		"JWT_SECRET": "0123456789abcdef",
	}))

	require.NoError(t, err)
	assert.Equal(t, cmd.StorageDriverPostgres, cfg.StorageDriver)
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, 3*time.Second, cfg.StorageTimeout)
	assert.False(t, cfg.AutoDispatchEnabled)
	assert.Equal(t, "*/10 * * * * *", cfg.AutoDispatchSchedule)
	assert.InDelta(t, 2.0, cfg.ClaimRateLimit, 0)
	assert.Equal(t, 5, cfg.ClaimRateBurst)
}

func TestConfigFromEnv_Overrides(t *testing.T) {
	cfg, err := cmd.ConfigFromEnv(envOf(map[string]string{
		"STORAGE_DRIVER":        "memory",
		"STORAGE_TIMEOUT":       "500ms",
		"JWT_SECRET":            "0123456789abcdef",
		"AUTO_DISPATCH_ENABLED": "true",
		"CLAIM_RATE_LIMIT":      "0.5",
		"CLAIM_RATE_BURST":      "1",
	}))

	require.NoError(t, err)
	assert.Equal(t, cmd.StorageDriverMemory, cfg.StorageDriver)
	assert.Equal(t, 500*time.Millisecond, cfg.StorageTimeout)
	assert.True(t, cfg.AutoDispatchEnabled)
	assert.InDelta(t, 0.5, cfg.ClaimRateLimit, 0)
}

func TestConfigFromEnv_Rejects(t *testing.T) {
	tests := map[string]map[string]string{
		"unknown driver":      {"STORAGE_DRIVER": "mongo", "JWT_SECRET": "s"},
		"postgres without db": {"JWT_SECRET": "s"},
		"missing secret":      {"STORAGE_DRIVER": "memory"},
		"bad timeout":         {"STORAGE_DRIVER": "memory", "JWT_SECRET": "s", "STORAGE_TIMEOUT": "soon"},
		"bad flag":            {"STORAGE_DRIVER": "memory", "JWT_SECRET": "s", "AUTO_DISPATCH_ENABLED": "maybe"},
		"zero burst":          {"STORAGE_DRIVER": "memory", "JWT_SECRET": "s", "CLAIM_RATE_BURST": "0"},
	}
	for name, env := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := cmd.ConfigFromEnv(envOf(env))
			assert.Error(t, err)
		})
	}
}

func TestLoadConfig_ToleratesMissingEnvFile(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "memory")
	t.Setenv("JWT_SECRET", "0123456789abcdef")

	cfg, err := cmd.LoadConfig(filepath.Join(t.TempDir(), "missing.env"))

	require.NoError(t, err)
	assert.Equal(t, cmd.StorageDriverMemory, cfg.StorageDriver)
}

func TestLoadConfig_ReadsEnvFile(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "memory")
	t.Setenv("JWT_SECRET", "0123456789abcdef")
	// Setenv restores the variable after the test; unsetting lets the file provide it.
	t.Setenv("HTTP_PORT", "")
	require.NoError(t, os.Unsetenv("HTTP_PORT"))
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("HTTP_PORT=9090\n"), 0o600))

	cfg, err := cmd.LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.HTTPPort)
}
