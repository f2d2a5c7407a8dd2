package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_WeaklyTyped(t *testing.T) {
	cfg := Default()
	err := Decode([]byte(`
log_level: debug
workers: "4"
color: false
store:
  driver: redis
  redis:
    addr: redis:6379
    ttl: 90s
server:
  port: "9090"
`), &cfg)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 4, cfg.Workers)
	assert.False(t, cfg.Color)
	assert.Equal(t, "redis", cfg.Store.Driver)
	assert.Equal(t, "redis:6379", cfg.Store.Redis.Addr)
	assert.Equal(t, "dfa:automaton:", cfg.Store.Redis.Prefix, "unset keys keep defaults")
	assert.Equal(t, 90*time.Second, cfg.Store.Redis.TTL)
	assert.Equal(t, 9090, cfg.Server.Port)
}

func TestDecode_UnknownKey(t *testing.T) {
	cfg := Default()
	assert.Error(t, Decode([]byte("wokers: 3\n"), &cfg))
}

func TestApplyEnv(t *testing.T) {
	cfg := Default()
	err := applyEnv(&cfg, []string{
		"HOME=/root",
		"DFA_STORE_DRIVER=file",
		"DFA_STORE_DIR=/tmp/automata",
		"DFA_WORKERS=2",
		"DFA_REDIS_DB=3",
	})
	require.NoError(t, err)

	assert.Equal(t, "file", cfg.Store.Driver)
	assert.Equal(t, "/tmp/automata", cfg.Store.Dir)
	assert.Equal(t, 2, cfg.Workers)
	assert.Equal(t, 3, cfg.Store.Redis.DB)
}

func TestLoad(t *testing.T) {
	t.Run("Explicit Missing File", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("File Values", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "dfa.yaml")
		require.NoError(t, os.WriteFile(path, []byte("store:\n  driver: file\n  dir: data\n"), 0644))

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "file", cfg.Store.Driver)
		assert.Equal(t, "data", cfg.Store.Dir)
	})

	t.Run("Invalid Driver", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "dfa.yaml")
		require.NoError(t, os.WriteFile(path, []byte("store:\n  driver: postgres\n"), 0644))

		_, err := Load(path)
		assert.ErrorContains(t, err, "unknown store driver")
	})
}
