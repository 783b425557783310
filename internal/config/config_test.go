package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, 10, cfg.WorldSize)
	assert.Equal(t, 4, cfg.Radius)
	assert.Zero(t, cfg.Seed)
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "barrenland.yaml", `
seed: 42
world_size: 32
log_level: debug
telemetry:
  enabled: true
  endpoint: http://localhost:4318
  headers:
    x-team: abc
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, 32, cfg.WorldSize)
	assert.Equal(t, DefaultRadius, cfg.Radius, "unset keys keep defaults")
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.Telemetry.Enabled)
	assert.Equal(t, "abc", cfg.Telemetry.Headers["x-team"])
}

func TestEnvOverridesYAML(t *testing.T) {
	path := writeFile(t, "barrenland.yaml", "seed: 1\nworld_size: 20\n")
	t.Setenv("BARRENLAND_SEED", "99")
	t.Setenv("BARRENLAND_RADIUS", "2")
	t.Setenv("BARRENLAND_HONEYCOMB_API_KEY", "secret")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, int64(99), cfg.Seed)
	assert.Equal(t, 20, cfg.WorldSize)
	assert.Equal(t, 2, cfg.Radius)
	assert.Equal(t, "secret", cfg.Telemetry.Headers["x-honeycomb-team"])
	assert.Equal(t, "barrenland", cfg.Telemetry.Headers["x-honeycomb-dataset"])
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	bad := writeFile(t, "bad.yaml", "world_size: [1, 2")
	_, err = Load(bad)
	assert.Error(t, err)

	t.Setenv("BARRENLAND_WORLD_SIZE", "ten")
	_, err = Load("")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.WorldSize = 0
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Radius = -1
	assert.Error(t, cfg.Validate())

	assert.NoError(t, Default().Validate())
}

func TestLoadDotEnv(t *testing.T) {
	path := writeFile(t, ".env", "BARRENLAND_TEST_DOTENV=loaded\n")
	t.Setenv("BARRENLAND_TEST_DOTENV", "")
	os.Unsetenv("BARRENLAND_TEST_DOTENV")

	require.NoError(t, LoadDotEnv(path))
	assert.Equal(t, "loaded", os.Getenv("BARRENLAND_TEST_DOTENV"))

	assert.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), "absent.env")))
}
