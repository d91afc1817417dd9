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
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:8004", cfg.Server.Addr)
	assert.Equal(t, 10*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "127.0.0.1:8004", cfg.Client.Target)
	assert.False(t, cfg.Telemetry.Enabled)
	assert.Equal(t, "flint", cfg.Telemetry.ServiceName)
}

func TestLoadEnvOverridesDefaults(t *testing.T) {
	t.Setenv("FLINT_SERVER_ADDR", "0.0.0.0:9000")
	t.Setenv("FLINT_SERVER_READ_TIMEOUT", "30s")
	t.Setenv("FLINT_TELEMETRY_ENABLED", "true")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:9000", cfg.Server.Addr)
	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
	assert.True(t, cfg.Telemetry.Enabled)
}

func TestLoadJSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flint.json")
	data := `{"server": {"addr": "127.0.0.1:7777"}, "client": {"target": "127.0.0.1:7777"}}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:7777", cfg.Server.Addr)
	assert.Equal(t, "127.0.0.1:7777", cfg.Client.Target)
	// Untouched keys keep their defaults.
	assert.Equal(t, 10*time.Second, cfg.Client.ReadTimeout)
}

func TestLoadEnvBeatsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flint.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"server": {"addr": "127.0.0.1:7777"}}`), 0o600))

	t.Setenv("FLINT_SERVER_ADDR", "127.0.0.1:8888")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:8888", cfg.Server.Addr)
}

func TestLoadRejectsUnknownFileType(t *testing.T) {
	_, err := Load("flint.yaml")
	require.Error(t, err)
}
