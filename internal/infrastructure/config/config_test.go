package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("defaults apply without a config file", func(t *testing.T) {
		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "bukubiz-backend", cfg.App.Name)
		assert.Equal(t, "development", cfg.App.Env)
		assert.Equal(t, "8080", cfg.App.Port)
		assert.Equal(t, "localhost", cfg.Database.Host)
		assert.Equal(t, 5432, cfg.Database.Port)
		assert.Equal(t, "bukubiz", cfg.Database.DBName)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.False(t, cfg.IsProduction())
	})

	t.Run("environment variables override defaults", func(t *testing.T) {
		t.Setenv("BUKUBIZ_APP_PORT", "9090")
		t.Setenv("BUKUBIZ_DATABASE_HOST", "db.internal")
		t.Setenv("BUKUBIZ_LOG_LEVEL", "debug")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "9090", cfg.App.Port)
		assert.Equal(t, "db.internal", cfg.Database.Host)
		assert.Equal(t, "debug", cfg.Log.Level)
	})

	t.Run("unknown environment is rejected", func(t *testing.T) {
		t.Setenv("BUKUBIZ_APP_ENV", "weird")

		_, err := Load()
		require.Error(t, err)
	})

	t.Run("unknown log level is rejected", func(t *testing.T) {
		t.Setenv("BUKUBIZ_LOG_LEVEL", "verbose")

		_, err := Load()
		require.Error(t, err)
	})

	t.Run("production requires a database password", func(t *testing.T) {
		t.Setenv("BUKUBIZ_APP_ENV", "production")

		_, err := Load()
		require.Error(t, err)

		t.Setenv("BUKUBIZ_DATABASE_PASSWORD", "secret")
		cfg, err := Load()
		require.NoError(t, err)
		assert.True(t, cfg.IsProduction())
	})
}

func TestDatabaseConfig_DSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "postgres",
		Password: "secret",
		DBName:   "bukubiz",
		SSLMode:  "disable",
	}
	assert.Equal(t,
		"host=localhost port=5432 user=postgres password=secret dbname=bukubiz sslmode=disable",
		cfg.DSN(),
	)
}
