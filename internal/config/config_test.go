package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTOML(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "raceboard.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DATABASE_URL", "")
	t.Setenv("RACEBOARD_DATABASE__URL", "")
	t.Setenv("RACEBOARD_LOG__LEVEL", "")
	os.Unsetenv("RACEBOARD_DATABASE__URL")
	os.Unsetenv("RACEBOARD_LOG__LEVEL")
	t.Chdir(t.TempDir())
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultDatabaseURL, cfg.Database.URL)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 50, cfg.Log.MaxSizeMB)
}

func TestLoad_FileThenEnv(t *testing.T) {
	clearEnv(t)
	path := writeTOML(t, `
[database]
url = "postgres://db.internal:5432/results"
max_conns = 8

[log]
level = "debug"
file = "/var/log/raceboard.log"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "postgres://db.internal:5432/results", cfg.Database.URL)
	assert.Equal(t, int32(8), cfg.Database.MaxConns)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/var/log/raceboard.log", cfg.Log.File)
	// Untouched keys keep their defaults.
	assert.Equal(t, 7, cfg.Log.MaxBackups)

	t.Setenv("RACEBOARD_LOG__LEVEL", "warn")
	t.Setenv("RACEBOARD_DATABASE__URL", "postgres://override:5432/x")
	cfg, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "postgres://override:5432/x", cfg.Database.URL)
}

func TestLoad_DatabaseURLFallback(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_URL", "postgres://legacy:5432/raceboard")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "postgres://legacy:5432/raceboard", cfg.Database.URL)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		toml string
	}{
		{"unknown level", "[log]\nlevel = \"chatty\"\n"},
		{"url without host", "[database]\nurl = \"postgres:///raceboard\"\n"},
		{"negative pool", "[database]\nmax_conns = -1\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			_, err := Load(writeTOML(t, tt.toml))
			assert.Error(t, err)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	clearEnv(t)
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}

func TestTOMLParser_RoundTrip(t *testing.T) {
	p := TOML()
	m, err := p.Unmarshal([]byte("[log]\nlevel = \"info\"\n"))
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{"log": map[string]interface{}{"level": "info"}}, m)

	b, err := p.Marshal(m)
	require.NoError(t, err)
	again, err := p.Unmarshal(b)
	require.NoError(t, err)
	assert.Equal(t, m, again)
}
