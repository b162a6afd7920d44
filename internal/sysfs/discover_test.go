package sysfs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jabastien/gpumon/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCard creates a minimal card directory under root. When amdgpu is true
// the device node carries the vram total marker file.
func fakeCard(t *testing.T, root, name string, amdgpu bool) string {
	t.Helper()
	devPath := filepath.Join(root, name, "device")
	require.NoError(t, os.MkdirAll(devPath, 0o755))
	if amdgpu {
		writeFile(t, filepath.Join(devPath, vramTotalFile), "8589934592\n")
	}
	return devPath
}

func TestFindDevices(t *testing.T) {
	root := t.TempDir()

	card0 := fakeCard(t, root, "card0", true)
	fakeCard(t, root, "card1", false) // no amdgpu memory info
	card2 := fakeCard(t, root, "card2", true)

	// Connector nodes must never be treated as cards.
	require.NoError(t, os.MkdirAll(filepath.Join(root, "card0-DP-1"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "renderD128"), 0o755))

	devices := FindDevices(root, logger.Noop())
	assert.Equal(t, []string{card0, card2}, devices)
}

func TestFindDevices_MissingRoot(t *testing.T) {
	assert.Nil(t, FindDevices(filepath.Join(t.TempDir(), "absent"), nil))
}

func TestHwmonDir(t *testing.T) {
	devPath := fakeCard(t, t.TempDir(), "card0", true)

	// The hwmon entry number varies between boots.
	hwmon := filepath.Join(devPath, "hwmon", "hwmon3")
	require.NoError(t, os.MkdirAll(hwmon, 0o755))

	assert.Equal(t, hwmon, HwmonDir(devPath, nil))
}

func TestHwmonDir_Fallback(t *testing.T) {
	devPath := fakeCard(t, t.TempDir(), "card0", true)

	// No hwmon directory at all: fall back to the historical layout.
	assert.Equal(t, filepath.Join(devPath, "hwmon", "hwmon1"), HwmonDir(devPath, nil))
}

func TestCardName(t *testing.T) {
	assert.Equal(t, "card0", CardName("/sys/class/drm/card0/device"))
}

func TestFindDevices_LogsDebug(t *testing.T) {
	root := t.TempDir()
	fakeCard(t, root, "card0", true)

	buf := logger.NewBufferLogger()
	FindDevices(root, buf)
	assert.True(t, buf.HasLevel("debug"))
}
