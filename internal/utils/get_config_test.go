package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.AppPort)
	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Equal(t, 50, cfg.RateLimitMax)
	assert.Equal(t, time.Second, cfg.RateLimitWindow)
	assert.Equal(t, "recipes.db", cfg.SqlitePath)
	assert.Empty(t, cfg.DBReplicas)
}

func TestLoadConfig_FileWithEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
APP_PORT: "8080"
DB_DRIVER: sqlite
SQLITE_PATH: /var/lib/recipes.db
DB_HOST: db.internal
LOG_LEVEL: debug
`), 0o600))

	t.Setenv("DB_HOST", "db.override")
	t.Setenv("DB_REPLICAS", "host=r1 dbname=foodrecipes,host=r2 dbname=foodrecipes")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.AppPort)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, "/var/lib/recipes.db", cfg.SqlitePath)
	assert.Equal(t, "db.override", cfg.DBHost)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, []string{"host=r1 dbname=foodrecipes", "host=r2 dbname=foodrecipes"}, cfg.DBReplicas)
}

func TestLoadConfig_InvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("APP_PORT: [\n"), 0o600))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestConfig_PostgresDSN(t *testing.T) {
	cfg := &Config{
		DBHost:     "localhost",
		DBUser:     "postgres",
		DBPassword: "secret",
		DBName:     "foodrecipes",
		DBPort:     "5432",
		DBSSLMode:  "disable",
		DBTimeZone: "UTC",
	}

	assert.Equal(t,
		"host=localhost user=postgres password=secret dbname=foodrecipes port=5432 sslmode=disable TimeZone=UTC",
		cfg.PostgresDSN())
}

func TestLogLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, LogLevel("DEBUG").Level())
	assert.Equal(t, zapcore.WarnLevel, LogLevel("warning").Level())
	assert.Equal(t, zapcore.ErrorLevel, LogLevel("error").Level())
	assert.Equal(t, zapcore.InfoLevel, LogLevel("verbose").Level())
}

func TestNewLogger(t *testing.T) {
	for _, format := range []string{"json", "console"} {
		logger, err := NewLogger("warn", format)
		require.NoError(t, err)
		assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))
		assert.True(t, logger.Core().Enabled(zapcore.WarnLevel))
	}
}
