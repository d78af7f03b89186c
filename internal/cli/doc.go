// Package cli implements the sysmon command-line interface.
//
// The package is organized around Cobra commands, each delegating to the
// internal packages for the actual work:
//
//   - Command definitions (cobra.Command instances)
//   - Config resolution (internal/config: file, SYSMON_* env, flags)
//   - The dashboard lifecycle (internal/supervisor, internal/monitor)
//
// # Command Structure
//
// The root command "sysmon" runs the live dashboard. Subcommands:
//
//	sysmon snapshot [--json]     - One capture, printed and exit
//	sysmon config                - Show the effective configuration
//	sysmon config init|set|path  - Manage the config file
//	sysmon version               - Build information
//	sysmon completion <shell>    - Shell completion scripts
//
// # Flag Handling
//
// Global flags (--config, --verbose, --no-color, --interval, --processes)
// are defined on the root command and available to all subcommands. They
// are bound into the config loader, so a flag that was set wins over the
// environment and the config file.
//
// # Exit Status
//
// Errors are printed to stderr and exit 1. A dashboard stopped by a signal
// prints a short notice once the terminal is restored and exits with
// 128 plus the signal number.
package cli
