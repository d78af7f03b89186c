package cli

import (
	"fmt"
	"os"

	"github.com/rileyhilliard/sysmon/internal/config"
	"github.com/rileyhilliard/sysmon/internal/errors"
	"github.com/rileyhilliard/sysmon/internal/logger"
	"github.com/rileyhilliard/sysmon/internal/metrics"
	"github.com/rileyhilliard/sysmon/internal/monitor"
	"github.com/rileyhilliard/sysmon/internal/supervisor"
	"github.com/rileyhilliard/sysmon/internal/util"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// exitNotice is printed once the terminal is restored after a signal.
const exitNotice = "\nExiting System Monitor..."

// Seams for tests.
var (
	isTerminal = func(f *os.File) bool {
		return term.IsTerminal(int(f.Fd()))
	}

	// openDisplay returns the terminal renderer uninitialized; the
	// supervisor runs its Init on the render goroutine.
	openDisplay = func(theme monitor.Theme) (monitor.Display, error) {
		r, err := monitor.OpenTerminal(monitor.WithTheme(theme))
		if err != nil {
			return nil, err
		}
		return r, nil
	}

	newSource = func(log logger.Logger) metrics.Source {
		return metrics.NewHostSource(log)
	}
)

// loadConfig resolves the effective config for cmd: file, env, then flags.
func loadConfig(cmd *cobra.Command) (*config.Config, string, error) {
	return config.LoadOrDefault(cfgFile, cmd.Flags())
}

// dashboardCommand runs the live dashboard until quit or a signal.
func dashboardCommand(cmd *cobra.Command) error {
	cfg, path, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	if !isTerminal(os.Stdout) {
		return errors.New(errors.ErrTerminal,
			"sysmon needs an interactive terminal",
			"Run it from a terminal, or use 'sysmon snapshot' for one-shot output")
	}

	theme := applyColorMode(cfg.Color)

	// Log lines written to the terminal would tear the dashboard.
	restore, err := logger.Redirect(cfg.LogFile)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Cannot open log file "+cfg.LogFile,
			"Check the log_file setting and its directory permissions")
	}

	log := logger.NewEnvLogger("[sysmon]")
	log.Debug("config %s: interval=%s processes=%d color=%s",
		util.OrDefault(path, "(defaults)"), cfg.Interval, cfg.Processes, cfg.Color)

	res, err := supervisor.Run(cmd.Context(), supervisor.Options{
		Source: newSource(log),
		Open: func(int) (monitor.Display, error) {
			return openDisplay(theme)
		},
		Interval:     cfg.Interval,
		ProcessLimit: cfg.Processes,
		PollInterval: cfg.PollInterval,
		JoinTimeout:  cfg.JoinTimeout,
		Logger:       log,
	})
	log.Debug("dashboard stopped: signal=%v exit=%d err=%v", res.Signal, res.ExitCode, err)
	restore()

	if err != nil {
		return err
	}
	if res.Signal != nil {
		fmt.Fprintln(cmd.OutOrStdout(), exitNotice)
		return errors.NewExitError(res.ExitCode)
	}
	return nil
}
