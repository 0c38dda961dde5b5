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
	t.Setenv(configPathEnv, "")
	t.Setenv(baseURLEnv, "")
	t.Setenv(logLevelEnv, "")
	t.Setenv(playerEnv, "")
	t.Setenv(digestCronEnv, "")

	cfg := Load()
	assert.Equal(t, "http://localhost:8000", cfg.Service.BaseURL)
	assert.Equal(t, 20*time.Second, cfg.Service.RequestTimeout)
	assert.Equal(t, "noop", cfg.Playback.Backend)
	assert.Equal(t, "0 7 * * *", cfg.Digest.CronExpression)
	assert.NotEmpty(t, cfg.Sources)
	assert.Equal(t, "Asia/Karachi", cfg.Digest.Location().String())
}

func TestLoadFileMergeAndEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	raw := []byte(`
service:
  baseUrl: http://news.internal:9000
playback:
  backend: exec
  command: ["mpv", "--no-video"]
digest:
  cronExpression: "30 6 * * *"
sources:
  - https://example.org/a
`)
	require.NoError(t, os.WriteFile(path, raw, 0o600))

	t.Setenv(configPathEnv, path)
	t.Setenv(baseURLEnv, "http://override:8001")
	t.Setenv(playerEnv, "")
	t.Setenv(digestCronEnv, "")
	t.Setenv(logLevelEnv, "debug")

	cfg := Load()
	assert.Equal(t, "http://override:8001", cfg.Service.BaseURL, "env wins over file")
	assert.Equal(t, "exec", cfg.Playback.Backend)
	assert.Equal(t, []string{"mpv", "--no-video"}, cfg.Playback.Command)
	assert.Equal(t, "30 6 * * *", cfg.Digest.CronExpression)
	assert.Equal(t, []string{"https://example.org/a"}, cfg.Sources)
	assert.Equal(t, "debug", cfg.Logging.Level)
	// Defaults survive for keys the file does not set.
	assert.Equal(t, 20*time.Second, cfg.Service.RequestTimeout)
}

func TestLoadUnreadableFileFallsBack(t *testing.T) {
	t.Setenv(configPathEnv, filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv(baseURLEnv, "")
	t.Setenv(logLevelEnv, "")
	t.Setenv(playerEnv, "")
	t.Setenv(digestCronEnv, "")

	cfg := Load()
	assert.Equal(t, "http://localhost:8000", cfg.Service.BaseURL)
}
