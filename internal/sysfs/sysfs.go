// Package sysfs reads single-value kernel metric files and locates amdgpu
// device directories under /sys/class/drm.
package sysfs

import (
	"bufio"
	"os"
	"strconv"
	"strings"

	"github.com/jabastien/gpumon/internal/errors"
)

// ReadValue returns the first line of the file at path, trimmed of
// whitespace. Unreadable files yield "0" so a transient sysfs glitch never
// propagates past a single sample.
func ReadValue(path string) string {
	f, err := os.Open(path)
	if err != nil {
		return "0"
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	if !scanner.Scan() {
		return "0"
	}
	return strings.TrimSpace(scanner.Text())
}

// ReadUint parses the file at path as an unsigned integer.
// Missing files and unparsable content both coerce to zero.
func ReadUint(path string) uint64 {
	v, err := strconv.ParseUint(ReadValue(path), 10, 64)
	if err != nil {
		return 0
	}
	return v
}

// ReadBound parses the file at path as an unsigned integer, failing loudly.
// Bounds are denominators for every ratio the dashboard draws; a bound that
// cannot be read makes the whole display meaningless, so the caller aborts.
func ReadBound(path string) (uint64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, errors.WrapWithCode(err, errors.ErrDevice,
			"Cannot read device bound "+path,
			"Check that the device path points at an amdgpu card directory")
	}

	line := strings.TrimSpace(strings.SplitN(string(data), "\n", 2)[0])
	v, err := strconv.ParseUint(line, 10, 64)
	if err != nil {
		return 0, errors.WrapWithCode(err, errors.ErrDevice,
			"Device bound "+path+" is not a number",
			"The kernel driver may not be amdgpu, or the file is exposed in an unexpected format")
	}
	return v, nil
}
