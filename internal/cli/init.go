package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/huh"

	"github.com/jabastien/gpumon/internal/config"
	"github.com/jabastien/gpumon/internal/errors"
)

// initCommand writes a starter config file into the current directory.
func initCommand(force bool) error {
	path := filepath.Join(".", config.ConfigFileName)

	if _, err := os.Stat(path); err == nil && !force {
		var overwrite bool
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("Config file '%s' already exists. Overwrite?", config.ConfigFileName)).
					Value(&overwrite),
			),
		)

		if err := form.Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get user input",
				"Try running with --force to overwrite")
		}

		if !overwrite {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	if err := config.Write(path, config.DefaultConfig()); err != nil {
		return err
	}

	fmt.Printf("Created %s\n", path)
	return nil
}
