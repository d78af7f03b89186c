package metrics

import (
	"context"
	"time"

	"github.com/rileyhilliard/sysmon/internal/errors"
)

// Capture queries every Source method once and returns a self-contained
// Snapshot. Utilization fractions are clamped to [0,1] and the process rows
// are copied. Any Source failure is returned as an ErrMetrics error.
func Capture(ctx context.Context, src Source) (Snapshot, error) {
	var snap Snapshot
	var err error

	if snap.OperatingSystem, err = src.OperatingSystem(ctx); err != nil {
		return Snapshot{}, captureErr("operating system", err)
	}
	if snap.Kernel, err = src.Kernel(ctx); err != nil {
		return Snapshot{}, captureErr("kernel", err)
	}
	if snap.CPU, err = src.CPUUtilization(ctx); err != nil {
		return Snapshot{}, captureErr("CPU utilization", err)
	}
	if snap.Memory, err = src.MemoryUtilization(ctx); err != nil {
		return Snapshot{}, captureErr("memory utilization", err)
	}
	if snap.Uptime, err = src.Uptime(ctx); err != nil {
		return Snapshot{}, captureErr("uptime", err)
	}
	if snap.TotalProcesses, err = src.TotalProcesses(ctx); err != nil {
		return Snapshot{}, captureErr("total process count", err)
	}
	if snap.RunningProcesses, err = src.RunningProcesses(ctx); err != nil {
		return Snapshot{}, captureErr("running process count", err)
	}

	rows, err := src.Processes(ctx)
	if err != nil {
		return Snapshot{}, captureErr("process list", err)
	}
	snap.Processes = make([]ProcessRow, len(rows))
	copy(snap.Processes, rows)

	snap.CPU = clampFraction(snap.CPU)
	snap.Memory = clampFraction(snap.Memory)
	snap.CapturedAt = time.Now()

	return snap, nil
}

func captureErr(what string, err error) error {
	return errors.WrapWithCode(err, errors.ErrMetrics,
		"Failed to read "+what,
		"The host metrics could not be sampled; re-run with SYSMON_DEBUG=1 for details")
}

func clampFraction(f float64) float64 {
	switch {
	case f != f, f < 0:
		return 0
	case f > 1:
		return 1
	default:
		return f
	}
}
