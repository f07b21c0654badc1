package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pet-care-companion/internal/domain/reconcile"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 10*time.Second, cfg.Remote.Timeout())
	assert.Equal(t, "health", cfg.Remote.HealthPath)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.False(t, cfg.Demo.Enabled)
	assert.False(t, cfg.Credentials.UsesRedis())
	assert.Equal(t, "token", cfg.Credentials.TokenKey)
	assert.Equal(t, "user", cfg.Credentials.SessionKey)
	assert.Equal(t, reconcile.PolicyDegraded, cfg.Reconcile.Policies().For(reconcile.OpCompleteReminder))
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("REMOTE_BASE_URL", "https://api.example.com/v1")
	t.Setenv("REMOTE_TIMEOUT_SECONDS", "3")
	t.Setenv("DEMO_ENABLED", "true")
	t.Setenv("CREDENTIALS_BACKEND", "redis")
	t.Setenv("RECONCILE_COMPLETE_REMINDER", "strict")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "https://api.example.com/v1", cfg.Remote.BaseURL)
	assert.Equal(t, 3*time.Second, cfg.Remote.Timeout())
	assert.True(t, cfg.Demo.Enabled)
	assert.True(t, cfg.Credentials.UsesRedis())
	assert.Equal(t, reconcile.PolicyStrict, cfg.Reconcile.Policies().For(reconcile.OpCompleteReminder))
}

func TestLoadConfig_DotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("LOG_LEVEL=debug\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("LOG_LEVEL") })

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
}
