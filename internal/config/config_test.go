package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jabastien/gpumon/internal/errors"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 2, cfg.Update)
	assert.False(t, cfg.NoColor)
	assert.Empty(t, cfg.Disable)
	assert.Empty(t, cfg.Device)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".gpumon.yaml")
	content := `update: 5
no_color: true
disable:
  - voltage
  - link_speed
device: /sys/class/drm/card1/device
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Update)
	assert.True(t, cfg.NoColor)
	assert.Equal(t, []string{"voltage", "link_speed"}, cfg.Disable)
	assert.Equal(t, "/sys/class/drm/card1/device", cfg.Device)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".gpumon.yaml")
	require.NoError(t, os.WriteFile(path, []byte("no_color: true\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Update, "unset keys keep their defaults")
	assert.True(t, cfg.NoColor)
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
}

func TestFind_ExplicitMissing(t *testing.T) {
	_, err := Find(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
}

func TestFind_Explicit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("update: 3\n"), 0o644))

	found, err := Find(path)
	require.NoError(t, err)
	assert.Equal(t, path, found)
}

func TestLoadOrDefault_NoFile(t *testing.T) {
	// Point HOME somewhere empty so the global search cannot match, and
	// chdir into a directory with no local config.
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := LoadOrDefault("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestWriteThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".gpumon.yaml")

	want := &Config{Update: 4, NoColor: true, Disable: []string{"fan"}}
	require.NoError(t, Write(path, want))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
