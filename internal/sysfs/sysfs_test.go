package sysfs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestReadValue(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
		expect  string
	}{
		{"plain value", "47\n", "47"},
		{"no trailing newline", "8.0 GT/s PCIe", "8.0 GT/s PCIe"},
		{"only first line", "1340\n2000\n", "1340"},
		{"whitespace trimmed", "  85  \n", "85"},
		{"empty file", "", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name)
			writeFile(t, path, tt.content)
			assert.Equal(t, tt.expect, ReadValue(path))
		})
	}
}

func TestReadValue_MissingFile(t *testing.T) {
	assert.Equal(t, "0", ReadValue(filepath.Join(t.TempDir(), "nope")))
}

func TestReadUint(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "gpu_busy_percent")
	writeFile(t, path, "42\n")
	assert.Equal(t, uint64(42), ReadUint(path))

	// Unparsable content coerces to zero, same as a missing file.
	garbage := filepath.Join(dir, "garbage")
	writeFile(t, garbage, "not-a-number\n")
	assert.Equal(t, uint64(0), ReadUint(garbage))

	assert.Equal(t, uint64(0), ReadUint(filepath.Join(dir, "missing")))
}

func TestReadBound(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "mem_info_vram_total")
	writeFile(t, path, "8589934592\n")

	v, err := ReadBound(path)
	require.NoError(t, err)
	assert.Equal(t, uint64(8589934592), v)
}

func TestReadBound_Missing(t *testing.T) {
	_, err := ReadBound(filepath.Join(t.TempDir(), "power1_cap_max"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "power1_cap_max")
}

func TestReadBound_Unparsable(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "temp1_crit")
	writeFile(t, path, "critical\n")

	_, err := ReadBound(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a number")
}
