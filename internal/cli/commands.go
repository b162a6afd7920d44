package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jabastien/gpumon/internal/errors"
)

// Root command flags
var (
	updateFlag  int
	noColorFlag bool
	disableFlag string
	deviceFlag  string
	configFlag  string
)

// rootCmd runs the dashboard.
var rootCmd = &cobra.Command{
	Use:   "gpumon",
	Short: "Live terminal dashboard for an AMD GPU",
	Long: `Watch one AMD GPU's utilization, memory pools, power, thermals,
clocks and PCIe link state as a full-screen terminal dashboard.

Metrics come straight from the amdgpu sysfs files and refresh on a fixed
interval. Bar rows are colored by severity; press q, Ctrl+D, or Esc to quit.

Examples:
  gpumon
  gpumon --update 5
  gpumon --disable voltage,link_speed,link_width
  gpumon --device /sys/class/drm/card1/device`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return dashboardCommand(cmd)
	},
}

// initCmd creates a starter configuration file.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create .gpumon.yaml configuration",
	Long: `Write a starter .gpumon.yaml into the current directory.

The file holds defaults for the update interval, color handling, hidden
rows, and the device path. Command-line flags always override it.

Examples:
  gpumon init
  gpumon init --force`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return initCommand(initForce)
	},
}

var initForce bool

// completionCmd generates shell completion scripts.
var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion script",
	Long: `Generate shell completion scripts for gpumon.

Examples:
  # Bash
  gpumon completion bash > /etc/bash_completion.d/gpumon

  # Zsh
  gpumon completion zsh > "${fpath[1]}/_gpumon"

  # Fish
  gpumon completion fish > ~/.config/fish/completions/gpumon.fish`,
	ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "bash":
			return rootCmd.GenBashCompletion(os.Stdout)
		case "zsh":
			return rootCmd.GenZshCompletion(os.Stdout)
		case "fish":
			return rootCmd.GenFishCompletion(os.Stdout, true)
		case "powershell":
			return rootCmd.GenPowerShellCompletion(os.Stdout)
		default:
			return errors.New(errors.ErrConfig,
				"Unknown shell: "+args[0],
				"Supported shells: bash, zsh, fish, powershell")
		}
	},
}

func init() {
	rootCmd.Flags().IntVarP(&updateFlag, "update", "u", 2,
		"refresh interval in seconds")
	rootCmd.Flags().BoolVarP(&noColorFlag, "no-color", "n", false,
		"disable colors")
	rootCmd.Flags().StringVarP(&disableFlag, "disable", "d", "",
		"comma-separated rows to hide: busy, vram, gtt, cpu_vis, power,\n"+
			"temperature, fan, voltage, gfx_clock, mem_clock, link_speed,\n"+
			"link_width (unknown values are silently ignored)")
	rootCmd.Flags().StringVar(&deviceFlag, "device", "",
		"device directory (default: auto-detect under /sys/class/drm)")
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "",
		"config file path")

	initCmd.Flags().BoolVarP(&initForce, "force", "f", false,
		"overwrite existing config")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(completionCmd)
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
