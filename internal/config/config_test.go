package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for key := range envKeys {
		t.Setenv(key, "")
	}

	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, "localhost", cfg.PostgresAddress)
	assert.Equal(t, "5433", cfg.PostgresPort)
	assert.Equal(t, "postgres", cfg.PostgresDB)
	assert.Equal(t, "postgres", cfg.PostgresUsername)
	assert.Equal(t, "testpassword", cfg.PostgresPassword)
	assert.Equal(t, "9446", cfg.HTTPPort)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 1, cfg.OperatorWorkers)
	assert.Equal(t, int64(10<<20), cfg.ImportMaxBytes)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	for key := range envKeys {
		t.Setenv(key, "")
	}
	t.Setenv("POSTGRES_ADDRESS", "db.internal")
	t.Setenv("HTTP_PORT", "8080")
	t.Setenv("OPERATOR_WORKERS", "3")
	t.Setenv("IMPORT_MAXBYTES", "2048")

	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, "db.internal", cfg.PostgresAddress)
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, 3, cfg.OperatorWorkers)
	assert.Equal(t, int64(2048), cfg.ImportMaxBytes)
	assert.Equal(t, "5433", cfg.PostgresPort)
}

func TestLoad_FileThenEnvironment(t *testing.T) {
	for key := range envKeys {
		t.Setenv(key, "")
	}
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "postgres:\n  port: \"6543\"\n  db: finance\nlog:\n  level: debug\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "6543", cfg.PostgresPort)
	assert.Equal(t, "finance", cfg.PostgresDB)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))

	assert.Error(t, err)
}

func TestLoad_WorkerFloor(t *testing.T) {
	for key := range envKeys {
		t.Setenv(key, "")
	}
	t.Setenv("OPERATOR_WORKERS", "0")

	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, 1, cfg.OperatorWorkers)
}
