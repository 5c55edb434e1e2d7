package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(body), 0644))
	return dir
}

func TestLoadConfig_Defaults(t *testing.T) {
	dir := writeConfig(t, "server:\n  port: \"9090\"\n")

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "memory", cfg.Store.Type)
	assert.Equal(t, 3, cfg.AI.MaxAttempts)
	assert.Equal(t, 20*time.Second, cfg.AI.AttemptTimeout)
	assert.Equal(t, 720*time.Hour, cfg.Session.ExpireTime)
	assert.Equal(t, "logs/speech_coach.log", cfg.Log.File)
	assert.Equal(t, 50, cfg.Log.MaxSizeMB)
	assert.Equal(t, filepath.Join(dir, "config.yaml"), cfg.FilePath)
}

func TestLoadConfig_RejectsUnknownStore(t *testing.T) {
	dir := writeConfig(t, "store:\n  type: cassandra\n")

	_, err := LoadConfig(dir)
	assert.Error(t, err)
}

func TestLoadConfig_RedisStoreNeedsRedis(t *testing.T) {
	dir := writeConfig(t, "store:\n  type: redis\n")

	_, err := LoadConfig(dir)
	assert.Error(t, err)
}

func TestLoadConfig_ReleaseModeNeedsStrongSecret(t *testing.T) {
	dir := writeConfig(t, "server:\n  mode: release\nsession:\n  secret: short\n")

	_, err := LoadConfig(dir)
	assert.Error(t, err)
}
