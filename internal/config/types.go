// Package config loads the optional gpumon configuration file. Flags always
// win over the file; the file only supplies defaults for repeated use.
package config

// Config represents the complete gpumon configuration file.
type Config struct {
	// Update is the refresh interval in whole seconds. It doubles as the
	// input wait timeout, so it is also the worst-case quit latency.
	Update int `yaml:"update" mapstructure:"update"`

	// NoColor disables the severity color bands.
	NoColor bool `yaml:"no_color" mapstructure:"no_color"`

	// Disable lists row keys excluded from layout and sampling.
	Disable []string `yaml:"disable" mapstructure:"disable"`

	// Device overrides DRM card auto-discovery with an explicit
	// device directory (e.g. /sys/class/drm/card0/device).
	Device string `yaml:"device" mapstructure:"device"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		Update: 2,
	}
}
