package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jabastien/gpumon/internal/config"
	"github.com/jabastien/gpumon/internal/dashboard"
	"github.com/jabastien/gpumon/internal/device"
	"github.com/jabastien/gpumon/internal/errors"
	"github.com/jabastien/gpumon/internal/logger"
	"github.com/jabastien/gpumon/internal/sysfs"
)

// dashboardCommand wires config, device, and model together and runs the
// interactive program. Everything that can fail does so before Bubble Tea
// touches the terminal.
func dashboardCommand(cmd *cobra.Command) error {
	cfg, err := config.LoadOrDefault(configFlag)
	if err != nil {
		return err
	}
	applyFlags(cfg, cmd)

	if err := validateInterval(cfg.Update); err != nil {
		return err
	}

	enabled := buildMask(cfg.Disable, disableFlag)
	if !enabled.Any() {
		// Degenerate but explicit: report and exit clean without ever
		// entering the display loop or touching terminal modes.
		fmt.Println("All rows disabled. Exiting.")
		return nil
	}

	log := logger.NewEnvLogger("[gpumon]")

	devicePath, err := resolveDevice(cfg.Device, log)
	if err != nil {
		return err
	}

	dev, err := device.New(devicePath, log)
	if err != nil {
		return err
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New(errors.ErrTerm,
			"Standard output is not a terminal",
			"gpumon draws an interactive dashboard and needs a TTY")
	}

	if cfg.NoColor || termenv.EnvNoColor() {
		dashboard.DisableColor()
	}

	// Signals only set flags here; all real work, including the terminal
	// teardown bubbletea guarantees, happens inside the program loop.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	model := dashboard.NewModel(
		dashboard.NewCollector(dev, log),
		enabled,
		time.Duration(cfg.Update)*time.Second,
	)

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		if ctx.Err() != nil {
			// SIGINT/SIGTERM: the terminal is already restored; an
			// interrupted run is a normal quit.
			return nil
		}
		return errors.WrapWithCode(err, errors.ErrTerm,
			"Dashboard terminated unexpectedly", "")
	}
	return nil
}

// applyFlags overlays explicitly-set flags onto the loaded config.
func applyFlags(cfg *config.Config, cmd *cobra.Command) {
	flags := cmd.Flags()
	if flags.Changed("update") {
		cfg.Update = updateFlag
	}
	if flags.Changed("no-color") {
		cfg.NoColor = noColorFlag
	}
	if flags.Changed("device") {
		cfg.Device = deviceFlag
	}
}

// validateInterval rejects refresh intervals that cannot drive the loop.
func validateInterval(seconds int) error {
	if seconds < 1 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Invalid update interval: %d", seconds),
			"Use a whole number of seconds, at least 1")
	}
	return nil
}

// buildMask combines the config file's disable list with the --disable flag.
// Both apply; unknown keys in either are silently ignored.
func buildMask(cfgDisable []string, flagDisable string) dashboard.EnabledMask {
	enabled := dashboard.AllEnabled()
	enabled.Disable(strings.Join(cfgDisable, ","))
	enabled.Disable(flagDisable)
	return enabled
}

// resolveDevice picks the device directory to monitor: the explicit path if
// given, the sole discovered card, or an interactive choice between several.
func resolveDevice(explicit string, log logger.Logger) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", errors.WrapWithCode(err, errors.ErrDevice,
				"Device path not accessible: "+explicit,
				"Point --device at a DRM device directory like /sys/class/drm/card0/device")
		}
		return explicit, nil
	}

	devices := sysfs.FindDevices(sysfs.DefaultRoot, log)
	switch len(devices) {
	case 0:
		return "", errors.New(errors.ErrDevice,
			"No amdgpu device found under "+sysfs.DefaultRoot,
			"Check that the amdgpu driver is loaded, or pass --device explicitly")
	case 1:
		return devices[0], nil
	}

	// Several cards and no way to ask: take the first in cardN order.
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return devices[0], nil
	}

	selected := devices[0]
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Several GPUs detected. Which card should gpumon watch?").
				Options(huh.NewOptions(devices...)...).
				Value(&selected),
		),
	)
	if err := form.Run(); err != nil {
		return "", errors.WrapWithCode(err, errors.ErrDevice,
			"Device selection cancelled",
			"Pass --device to skip the prompt")
	}
	return selected, nil
}
