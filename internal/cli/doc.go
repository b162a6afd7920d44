// Package cli implements the gpumon command-line interface.
//
// The root command runs the dashboard itself; the handful of subcommands
// cover housekeeping:
//
//	gpumon            - live dashboard for the detected GPU
//	gpumon init       - create a .gpumon.yaml config
//	gpumon version    - print version information
//	gpumon completion - generate shell completion scripts
//
// Option parsing happens entirely before the terminal is touched: a bad
// flag or config value exits non-zero without any terminal-mode changes,
// and --help never takes over the screen.
//
// Flag precedence is flags > config file > built-in defaults. The config
// file is optional and located via --config, then ./.gpumon.yaml, then
// ~/.config/gpumon/config.yaml.
package cli
