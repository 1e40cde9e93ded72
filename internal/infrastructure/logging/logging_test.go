package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"raceboard/internal/config"
)

func TestNew_WritesJSONToFile(t *testing.T) {
	cfg := config.Defaults().Log
	cfg.File = filepath.Join(t.TempDir(), "logs", "raceboard.log")
	cfg.Level = "debug"

	log, err := New(cfg)
	require.NoError(t, err)
	log.Infow("race resolved", "event", "evtPublic")
	require.NoError(t, log.Sync())

	b, err := os.ReadFile(cfg.File)
	require.NoError(t, err)
	line := strings.TrimSpace(strings.Split(string(b), "\n")[0])
	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(line), &entry))
	assert.Equal(t, "race resolved", entry["msg"])
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "evtPublic", entry["event"])
	assert.Contains(t, entry["ts"], "T")
}

func TestNew_LevelFilters(t *testing.T) {
	cfg := config.Defaults().Log
	cfg.File = filepath.Join(t.TempDir(), "raceboard.log")
	cfg.Level = "warn"

	log, err := New(cfg)
	require.NoError(t, err)
	log.Infow("dropped")
	log.Warnw("kept")
	require.NoError(t, log.Sync())

	b, err := os.ReadFile(cfg.File)
	require.NoError(t, err)
	assert.NotContains(t, string(b), "dropped")
	assert.Contains(t, string(b), "kept")
}

func TestNew_BadLevel(t *testing.T) {
	cfg := config.Defaults().Log
	cfg.Level = "chatty"

	_, err := New(cfg)
	assert.Error(t, err)
}
