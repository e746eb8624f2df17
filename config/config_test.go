package config_test

import (
	"testing"
	"time"

	"railway-reservation/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, config.ModeConsole, cfg.App.Mode)
	assert.True(t, cfg.App.SeedDemoData)
	assert.Equal(t, config.DriverMemory, cfg.Database.Driver)
	assert.Equal(t, config.StreamGoChannel, cfg.MessageStream.Driver)
	assert.Equal(t, "booking_events", cfg.MessageStream.Topic)
	assert.Equal(t, 10*time.Second, cfg.Redis.LockExpiry)
	assert.False(t, cfg.Redis.Enabled())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("RAILWAY_APP_MODE", "http")
	t.Setenv("RAILWAY_HTTP_SERVER_PORT", "9090")
	t.Setenv("RAILWAY_DATABASE_DRIVER", "sqlite")
	t.Setenv("RAILWAY_DATABASE_DSN", "file:railway.db")
	t.Setenv("RAILWAY_REDIS_HOST", "redis")
	t.Setenv("RAILWAY_LOG_LEVEL", "debug")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, config.ModeHTTP, cfg.App.Mode)
	assert.Equal(t, "9090", cfg.HttpServer.Port)
	assert.Equal(t, config.DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, "file:railway.db", cfg.Database.DSN)
	assert.True(t, cfg.Redis.Enabled())
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadRejectsUnknownValues(t *testing.T) {
	testCases := []struct {
		name string
		key  string
		val  string
	}{
		{name: "mode", key: "RAILWAY_APP_MODE", val: "gui"},
		{name: "database driver", key: "RAILWAY_DATABASE_DRIVER", val: "mysql"},
		{name: "stream driver", key: "RAILWAY_MESSAGE_STREAM_DRIVER", val: "kafka"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(tc.key, tc.val)
			_, err := config.Load()
			assert.Error(t, err)
		})
	}

	t.Run("sqlite without dsn", func(t *testing.T) {
		t.Setenv("RAILWAY_DATABASE_DRIVER", "sqlite")
		_, err := config.Load()
		assert.ErrorContains(t, err, "RAILWAY_DATABASE_DSN")
	})
}

func TestPostgresDSN(t *testing.T) {
	d := config.DatabaseConfig{Host: "db", Port: "5432", User: "rail", Password: "secret", Name: "railway", SSLMode: "disable"}
	assert.Equal(t, "host=db port=5432 user=rail password=secret dbname=railway sslmode=disable", d.PostgresDSN())

	d.DSN = "postgres://override"
	assert.Equal(t, "postgres://override", d.PostgresDSN())
}
