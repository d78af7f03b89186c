package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rileyhilliard/sysmon/internal/errors"
	"github.com/rileyhilliard/sysmon/internal/logger"
	"github.com/spf13/cobra"
)

// Global flags
var (
	cfgFile string
	verbose bool
	noColor bool
)

// Dashboard flags, bound into the config so they override file and env values.
var (
	intervalFlag  time.Duration
	processesFlag int
	logFileFlag   string
)

// rootCmd runs the live dashboard.
var rootCmd = &cobra.Command{
	Use:   "sysmon",
	Short: "Live terminal system monitor",
	Long: `sysmon shows a live dashboard of this machine: operating system, kernel,
CPU and memory usage, uptime, process counts and the busiest processes.

The dashboard refreshes every 700ms by default. Press 'q' to quit, or send
SIGINT/SIGTERM; sysmon restores the terminal before it exits.

Examples:
  sysmon
  sysmon --interval 2s --processes 30
  sysmon snapshot --json`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			os.Setenv(logger.DebugEnv, "1")
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return dashboardCommand(cmd)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ./.sysmon.yaml, then ~/.config/sysmon/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colors")

	rootCmd.PersistentFlags().DurationVar(&intervalFlag, "interval", 700*time.Millisecond, "refresh interval (e.g., 700ms, 2s)")
	rootCmd.PersistentFlags().IntVarP(&processesFlag, "processes", "n", 15, "number of process rows to show")
	rootCmd.Flags().StringVar(&logFileFlag, "log-file", "", "write logs here while the dashboard runs (default: discard)")
}

// Execute runs the root command and exits with the right status.
func Execute() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command tree with args and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.Execute()
	if err == nil {
		return 0
	}
	if code, ok := errors.GetExitCode(err); ok {
		return code
	}
	fmt.Fprintln(stderr, err.Error())
	return 1
}
