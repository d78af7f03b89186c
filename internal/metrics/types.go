// Package metrics defines the point-in-time host snapshot the dashboard
// renders, the Source contract it is captured from, and a gopsutil-backed
// Source for the local host.
package metrics

import (
	"context"
	"time"
)

// Source exposes point-in-time queries of OS state. Implementations make no
// caching promises; Capture calls every method once per tick.
type Source interface {
	OperatingSystem(ctx context.Context) (string, error)
	Kernel(ctx context.Context) (string, error)
	// CPUUtilization returns the system-wide busy fraction in [0,1].
	CPUUtilization(ctx context.Context) (float64, error)
	// MemoryUtilization returns the used memory fraction in [0,1].
	MemoryUtilization(ctx context.Context) (float64, error)
	Uptime(ctx context.Context) (time.Duration, error)
	TotalProcesses(ctx context.Context) (int, error)
	RunningProcesses(ctx context.Context) (int, error)
	// Processes returns rows in display order.
	Processes(ctx context.Context) ([]ProcessRow, error)
}

// ProcessRow is one line of the process table. Rows have no identity beyond
// PID within a single snapshot.
type ProcessRow struct {
	PID     int
	User    string
	CPU     float64
	RAM     string
	Uptime  time.Duration
	Command string
}

// Snapshot is one fully populated set of metric values for a single tick.
// It is a value: Capture copies everything it holds, so it never aliases
// state the Source may still be mutating.
type Snapshot struct {
	CapturedAt       time.Time
	OperatingSystem  string
	Kernel           string
	CPU              float64
	Memory           float64
	Uptime           time.Duration
	TotalProcesses   int
	RunningProcesses int
	Processes        []ProcessRow
}
