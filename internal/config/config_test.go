package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aretw0/vfsh/pkg/vpath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func env(vars map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := vars[k]
		return v, ok
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "vfsh.yaml")
	require.NoError(t, os.WriteFile(p, []byte(body), 0644))
	return p
}

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := load("", env(nil))
	require.NoError(t, err)

	assert.Equal(t, DefaultArchive, cfg.Archive)
	assert.True(t, cfg.Hints)
	assert.Equal(t, vpath.Clamp, cfg.Policy())
	assert.Equal(t, BackendMemory, cfg.History.Backend)
	assert.Equal(t, ".vfsh/history", cfg.History.Dir)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "{cwd} $ ", cfg.Prompt)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	p := writeConfig(t, `
archive: other.tar.gz
hints: false
escape_policy: reject
log:
  level: debug
history:
  backend: file
  ttl: 1h
`)
	cfg, err := load(p, env(nil))
	require.NoError(t, err)

	assert.Equal(t, "other.tar.gz", cfg.Archive)
	assert.False(t, cfg.Hints)
	assert.Equal(t, vpath.Reject, cfg.Policy())
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format, "untouched nested keys keep their defaults")
	assert.Equal(t, BackendFile, cfg.History.Backend)
	assert.Equal(t, ".vfsh/history", cfg.History.Dir)
	assert.Equal(t, time.Hour, cfg.History.TTL)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	p := writeConfig(t, "hints: true\nhistory:\n  backend: file\n")

	cfg, err := load(p, env(map[string]string{
		"VFSH_HINTS":           "false",
		"VFSH_HISTORY_BACKEND": "redis",
		"VFSH_REDIS_URL":       "redis://localhost:6379/0",
		"VFSH_HISTORY_TTL":     "30m",
		"VFSH_KEEP":            "1",
	}))
	require.NoError(t, err)

	assert.False(t, cfg.Hints)
	assert.True(t, cfg.Keep)
	assert.Equal(t, BackendRedis, cfg.History.Backend)
	assert.Equal(t, "redis://localhost:6379/0", cfg.History.RedisURL)
	assert.Equal(t, 30*time.Minute, cfg.History.TTL)
}

func TestLoad_DefaultFileIsPickedUp(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, DefaultFile), []byte("archive: from-cwd.zip\n"), 0644))
	t.Chdir(dir)

	cfg, err := load("", env(nil))
	require.NoError(t, err)
	assert.Equal(t, "from-cwd.zip", cfg.Archive)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing explicit file", func(t *testing.T) {
		_, err := load(filepath.Join(t.TempDir(), "nope.yaml"), env(nil))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := load(writeConfig(t, "archive: [unclosed"), env(nil))
		assert.Error(t, err)
	})

	t.Run("unknown key", func(t *testing.T) {
		_, err := load(writeConfig(t, "archvie: typo.zip\n"), env(nil))
		assert.Error(t, err)
	})

	t.Run("bad policy", func(t *testing.T) {
		_, err := load(writeConfig(t, "escape_policy: ignore\n"), env(nil))
		assert.ErrorContains(t, err, "escape policy")
	})

	t.Run("redis without url", func(t *testing.T) {
		_, err := load("", env(map[string]string{"VFSH_HISTORY_BACKEND": "redis"}))
		assert.ErrorContains(t, err, "redis_url")
	})

	t.Run("unknown backend", func(t *testing.T) {
		_, err := load("", env(map[string]string{"VFSH_HISTORY_BACKEND": "sqlite"}))
		assert.ErrorContains(t, err, "history backend")
	})

	t.Run("bad duration", func(t *testing.T) {
		_, err := load("", env(map[string]string{"VFSH_HISTORY_TTL": "soon"}))
		assert.Error(t, err)
	})
}
