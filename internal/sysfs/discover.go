package sysfs

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jabastien/gpumon/internal/logger"
)

// DefaultRoot is where the kernel exposes DRM class devices.
const DefaultRoot = "/sys/class/drm"

// vramTotalFile marks a device directory as an amdgpu card with the memory
// accounting files this dashboard needs.
const vramTotalFile = "mem_info_vram_total"

// FindDevices scans root for card directories whose device node exposes
// amdgpu memory info, returning their device paths in cardN order.
func FindDevices(root string, log logger.Logger) []string {
	if log == nil {
		log = logger.Noop()
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		log.Debug("cannot read %s: %v", root, err)
		return nil
	}

	var devices []string
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, "card") {
			continue
		}
		// Skip connector nodes like card0-DP-1.
		if strings.Contains(name, "-") {
			continue
		}

		devPath := filepath.Join(root, name, "device")
		if _, err := os.Stat(filepath.Join(devPath, vramTotalFile)); err != nil {
			log.Debug("skipping %s: %v", devPath, err)
			continue
		}
		devices = append(devices, devPath)
	}

	sort.Strings(devices)
	log.Debug("found %d amdgpu device(s) under %s", len(devices), root)
	return devices
}

// HwmonDir resolves the hwmon subdirectory for a device path. The kernel
// numbers hwmon entries globally, so the directory is hwmon1 on one boot
// and hwmon3 on the next; scan instead of hardcoding.
func HwmonDir(devicePath string, log logger.Logger) string {
	if log == nil {
		log = logger.Noop()
	}

	base := filepath.Join(devicePath, "hwmon")
	entries, err := os.ReadDir(base)
	if err == nil {
		for _, entry := range entries {
			if strings.HasPrefix(entry.Name(), "hwmon") {
				dir := filepath.Join(base, entry.Name())
				log.Debug("resolved hwmon dir %s", dir)
				return dir
			}
		}
	}

	// Fall back to the historical layout so bound reads produce a path
	// worth reporting in the error.
	return filepath.Join(base, "hwmon1")
}

// CardName returns the card label (e.g. "card0") for a device path.
func CardName(devicePath string) string {
	return filepath.Base(filepath.Dir(devicePath))
}
