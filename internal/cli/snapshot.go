package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/rileyhilliard/sysmon/internal/errors"
	"github.com/rileyhilliard/sysmon/internal/logger"
	"github.com/rileyhilliard/sysmon/internal/metrics"
	"github.com/rileyhilliard/sysmon/internal/monitor"
	"github.com/rileyhilliard/sysmon/internal/util"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const defaultSnapshotWidth = 100

var (
	snapshotJSON   bool
	snapshotWidth  int
	snapshotSample time.Duration
)

// snapshotCmd prints one capture and exits.
var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Print one capture of the dashboard and exit",
	Long: `Capture the host once and print the same panels the dashboard shows,
without taking over the terminal. Works when output is piped.

CPU usage is measured over --sample; use 0 to report usage since the
previous reading.

Examples:
  sysmon snapshot
  sysmon snapshot --processes 5
  sysmon snapshot --json | jq '.data.processes[0]'`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return snapshotCommand(cmd)
	},
}

func init() {
	snapshotCmd.Flags().BoolVar(&snapshotJSON, "json", false, "output as JSON")
	snapshotCmd.Flags().IntVar(&snapshotWidth, "width", 0, "panel width (default: terminal width, or 100)")
	snapshotCmd.Flags().DurationVar(&snapshotSample, "sample", 250*time.Millisecond, "CPU sampling window")
}

func snapshotCommand(cmd *cobra.Command) error {
	out := cmd.OutOrStdout()

	cfg, _, err := loadConfig(cmd)
	if err != nil {
		return jsonOr(cmd, err)
	}

	log := logger.NewEnvLogger("[snapshot]")
	snap, err := sample(cmd, newSource(log), snapshotSample)
	if err != nil {
		return jsonOr(cmd, err)
	}

	if snapshotJSON {
		return WriteJSONSuccess(out, newSnapshotView(snap, cfg.Processes))
	}

	theme := applyColorMode(cfg.Color)
	fmt.Fprintln(out, monitor.RenderText(snap, cfg.Processes, snapshotOutputWidth(), theme))
	return nil
}

// sample captures twice, window apart, so CPU figures cover the window.
func sample(cmd *cobra.Command, src metrics.Source, window time.Duration) (metrics.Snapshot, error) {
	ctx := cmd.Context()
	if window > 0 {
		if _, err := metrics.Capture(ctx, src); err != nil {
			return metrics.Snapshot{}, err
		}
		select {
		case <-time.After(window):
		case <-ctx.Done():
			return metrics.Snapshot{}, ctx.Err()
		}
	}
	return metrics.Capture(ctx, src)
}

func snapshotOutputWidth() int {
	if snapshotWidth > 0 {
		return snapshotWidth
	}
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return defaultSnapshotWidth
}

// jsonOr reports err in the JSON envelope under --json, or returns it.
func jsonOr(cmd *cobra.Command, err error) error {
	if !snapshotJSON {
		return err
	}
	if werr := WriteJSONFromError(cmd.OutOrStdout(), err); werr != nil {
		return werr
	}
	return errors.NewExitError(1)
}

// snapshotView is the --json shape of a Snapshot.
type snapshotView struct {
	CapturedAt       time.Time     `json:"captured_at"`
	OperatingSystem  string        `json:"os"`
	Kernel           string        `json:"kernel"`
	CPUPercent       float64       `json:"cpu_percent"`
	MemoryPercent    float64       `json:"memory_percent"`
	UptimeSeconds    int64         `json:"uptime_seconds"`
	Uptime           string        `json:"uptime"`
	TotalProcesses   int           `json:"total_processes"`
	RunningProcesses int           `json:"running_processes"`
	Processes        []processView `json:"processes"`
}

type processView struct {
	PID        int     `json:"pid"`
	User       string  `json:"user"`
	CPUPercent float64 `json:"cpu_percent"`
	RAM        string  `json:"ram_mb"`
	Time       string  `json:"time"`
	Command    string  `json:"command"`
}

func newSnapshotView(snap metrics.Snapshot, limit int) snapshotView {
	n := min(max(limit, 0), len(snap.Processes))
	procs := make([]processView, n)
	for i, p := range snap.Processes[:n] {
		procs[i] = processView{
			PID:        p.PID,
			User:       p.User,
			CPUPercent: p.CPU * 100,
			RAM:        p.RAM,
			Time:       util.FormatElapsed(p.Uptime),
			Command:    p.Command,
		}
	}
	return snapshotView{
		CapturedAt:       snap.CapturedAt,
		OperatingSystem:  snap.OperatingSystem,
		Kernel:           snap.Kernel,
		CPUPercent:       snap.CPU * 100,
		MemoryPercent:    snap.Memory * 100,
		UptimeSeconds:    int64(snap.Uptime / time.Second),
		Uptime:           util.FormatElapsed(snap.Uptime),
		TotalProcesses:   snap.TotalProcesses,
		RunningProcesses: snap.RunningProcesses,
		Processes:        procs,
	}
}
