package cmd

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("should apply defaults when nothing is set", func(t *testing.T) {
		cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
		require.NoError(t, err)

		assert.Equal(t, "8080", cfg.HTTPPort)
		assert.Equal(t, "postgres", cfg.DBDriver)
		assert.Equal(t, 10*time.Minute, cfg.CheckoutKeyTTL)
		assert.Equal(t, 12*time.Hour, cfg.JWTTTL)
		assert.True(t, cfg.SeedCatalog)
		assert.Equal(t, []string{"*"}, cfg.CORSAllowOrigins)
	})

	t.Run("should read the environment", func(t *testing.T) {
		t.Setenv("HTTP_PORT", "9090")
		t.Setenv("DB_DRIVER", "mysql")
		t.Setenv("JWT_TTL", "30m")
		t.Setenv("SEED_CATALOG", "false")
		t.Setenv("CORS_ALLOW_ORIGINS", "https://padaria.com, http://localhost:5173")

		cfg, err := LoadConfig("")
		require.NoError(t, err)

		assert.Equal(t, "9090", cfg.HTTPPort)
		assert.Equal(t, "mysql", cfg.Database().Driver)
		assert.Equal(t, 30*time.Minute, cfg.JWTTTL)
		assert.False(t, cfg.SeedCatalog)
		assert.Equal(t, []string{"https://padaria.com", "http://localhost:5173"}, cfg.CORSAllowOrigins)
	})

	t.Run("should load a .env file", func(t *testing.T) {
		envFile := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(envFile, []byte("ADMIN_EMAIL=dona@padaria.com\n"), 0o600))
		t.Cleanup(func() { _ = os.Unsetenv("ADMIN_EMAIL") })

		cfg, err := LoadConfig(envFile)
		require.NoError(t, err)
		assert.Equal(t, "dona@padaria.com", cfg.AdminEmail)
	})
}

func TestConfig_Location(t *testing.T) {
	_, err := Config{Timezone: "Mars/Olympus"}.Location()
	require.Error(t, err)

	loc, err := Config{Timezone: "UTC"}.Location()
	require.NoError(t, err)
	assert.Equal(t, time.UTC, loc)
}
