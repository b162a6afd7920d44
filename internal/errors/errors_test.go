package errors

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorCodes(t *testing.T) {
	// Verify all expected error codes exist
	codes := []string{
		ErrConfig,
		ErrDevice,
		ErrTerm,
	}

	for _, code := range codes {
		assert.NotEmpty(t, code, "error code should not be empty")
	}

	// Verify codes are unique
	seen := make(map[string]bool)
	for _, code := range codes {
		assert.False(t, seen[code], "error code %q should be unique", code)
		seen[code] = true
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		name       string
		code       string
		message    string
		suggestion string
	}{
		{
			name:       "config error",
			code:       ErrConfig,
			message:    "Invalid update interval",
			suggestion: "Use a whole number of seconds, like --update 2",
		},
		{
			name:       "device error",
			code:       ErrDevice,
			message:    "Cannot read mem_info_vram_total",
			suggestion: "Check that the device path points at an amdgpu card",
		},
		{
			name:       "terminal error",
			code:       ErrTerm,
			message:    "Standard output is not a terminal",
			suggestion: "Run gpumon from an interactive shell",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.code, tt.message, tt.suggestion)

			require.NotNil(t, err)
			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, tt.message, err.Message)
			assert.Equal(t, tt.suggestion, err.Suggestion)
			assert.Nil(t, err.Cause)
		})
	}
}

func TestErrorFormatting(t *testing.T) {
	err := New(ErrDevice, "Bound file unreadable", "Verify the sysfs path")

	out := err.Error()
	assert.True(t, strings.HasPrefix(out, "✗ "), "should start with failure symbol")
	assert.Contains(t, out, "Bound file unreadable")
	assert.Contains(t, out, "Verify the sysfs path")
}

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("open /sys/foo: no such file or directory")
	err := Wrap(cause, "Cannot read device bound")

	assert.Equal(t, ErrDevice, err.Code)
	assert.Contains(t, err.Error(), cause.Error())
	assert.ErrorIs(t, err, cause)
}

func TestWrapWithCode(t *testing.T) {
	cause := errors.New("parse failure")
	err := WrapWithCode(cause, ErrConfig, "Bad config value", "Fix the config file")

	assert.Equal(t, ErrConfig, err.Code)
	assert.Equal(t, cause, errors.Unwrap(err))
}

func TestIsCode(t *testing.T) {
	err := New(ErrConfig, "bad flag", "")
	assert.True(t, IsCode(err, ErrConfig))
	assert.False(t, IsCode(err, ErrDevice))
	assert.False(t, IsCode(nil, ErrConfig))
	assert.False(t, IsCode(errors.New("plain"), ErrConfig))
}
