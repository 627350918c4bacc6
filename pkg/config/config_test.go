package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("TELELINK_CONFIG_PATH", t.TempDir()) // no file present

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.BindAddress)
	assert.Equal(t, "8000", cfg.Port)
	assert.Equal(t, "telegram", cfg.RequiredPlugin)
	assert.Equal(t, 10*time.Second, cfg.PollWindow())
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	content := "port: \"9090\"\nrequired_plugin: messaging\npoll_window_seconds: 5\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0o600))
	t.Setenv("TELELINK_CONFIG_PATH", dir)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "messaging", cfg.RequiredPlugin)
	assert.Equal(t, 5, cfg.PollWindowSeconds)
	// untouched field keeps its default
	assert.Equal(t, "0.0.0.0", cfg.BindAddress)
}

func TestEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("port: \"9090\"\n"), 0o600))
	t.Setenv("TELELINK_CONFIG_PATH", dir)
	t.Setenv("PORT", "7070")
	t.Setenv("TELELINK_POLL_WINDOW_SECONDS", "30")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "7070", cfg.Port)
	assert.Equal(t, 30, cfg.PollWindowSeconds)
}

func TestLoadRejectsBadValues(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("poll_window_seconds: -1\n"), 0o600))
	t.Setenv("TELELINK_CONFIG_PATH", dir)

	_, err := Load()
	assert.Error(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("port: \"not-a-port\"\n"), 0o600))
	_, err = Load()
	assert.Error(t, err)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("port: [unclosed\n"), 0o600))
	t.Setenv("TELELINK_CONFIG_PATH", dir)

	_, err := Load()
	assert.Error(t, err)
}
