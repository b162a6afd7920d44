package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jabastien/gpumon/internal/errors"
)

// Write serializes cfg to path as YAML.
func Write(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to serialize config",
			"")
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to write "+path,
			"Check directory permissions")
	}
	return nil
}
