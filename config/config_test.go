package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{EnvListenAddr, EnvDBPath, EnvLogLevel, EnvOrigins} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.ListenAddr)
	assert.Equal(t, "payroll.db", cfg.Database.Path)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.NotEmpty(t, cfg.Server.AllowedOrigins)
}

func TestLoad_File(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
server:
  listen_addr: ":9090"
  allowed_origins: ["https://hr.example.com"]
database:
  path: ":memory:"
log:
  level: DEBUG
  development: true
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.ListenAddr)
	assert.Equal(t, []string{"https://hr.example.com"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, ":memory:", cfg.Database.Path)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Log.Development)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "server:\n  listen_addr: \":9090\"\n")
	t.Setenv(EnvListenAddr, ":7070")
	t.Setenv(EnvDBPath, "/tmp/other.db")
	t.Setenv(EnvOrigins, "https://a.example.com, https://b.example.com,")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":7070", cfg.Server.ListenAddr)
	assert.Equal(t, "/tmp/other.db", cfg.Database.Path)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.Server.AllowedOrigins)
}

func TestLoad_Errors(t *testing.T) {
	clearEnv(t)

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "server: [not, a, map]"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "log:\n  level: loud\n"))
	assert.ErrorContains(t, err, "log.level")

	_, err = Load(writeConfig(t, "database:\n  path: \"\"\n"))
	assert.ErrorContains(t, err, "database.path")
}
