package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWithEnvOverride(t *testing.T) {
	t.Setenv("POSTGRES_CONN", "postgres://localhost/sitesense")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8080", cfg.ServerAddress)
	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Equal(t, "postgres://localhost/sitesense", cfg.DSN())
	assert.Equal(t, 25, cfg.DBMaxOpenConns)
	assert.Equal(t, time.Hour, cfg.DBConnMaxLifetime)
	assert.True(t, cfg.RunMigrations)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
}

func TestLoadReadsEnvFile(t *testing.T) {
	dir := t.TempDir()
	content := "DB_DRIVER=sqlite\nDB_DSN=file:/tmp/site.db\nPOSTGRES_CONN=postgres://ignored\nREQUEST_TIMEOUT=2s\nRUN_MIGRATIONS=false\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.env"), []byte(content), 0o600))

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, "file:/tmp/site.db", cfg.DSN())
	assert.Equal(t, 2*time.Second, cfg.RequestTimeout)
	assert.False(t, cfg.RunMigrations)
}

func TestLoadValidates(t *testing.T) {
	_, err := Load(t.TempDir())
	require.Error(t, err, "empty DSN")

	t.Setenv("DB_DSN", "x")
	t.Setenv("DB_DRIVER", "mysql")
	_, err = Load(t.TempDir())
	require.ErrorContains(t, err, "mysql")
}
