// Package testing provides test doubles for the metrics package.
package testing

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rileyhilliard/sysmon/internal/metrics"
)

// FakeSource is a scripted metrics.Source that records how often it is sampled.
type FakeSource struct {
	mu sync.Mutex

	// Values returned by the queries.
	OS       string
	KernelID string
	CPU      float64
	Memory   float64
	Up       time.Duration
	Total    int
	Running  int
	Rows     []metrics.ProcessRow

	// Failure injection. FailAfter > 0 makes Processes fail once it has
	// already succeeded that many times.
	ProcessesErr error
	FailAfter    int

	// OnProcesses runs after each Processes call with the 1-based call number.
	OnProcesses func(call int)

	processCalls int
}

// NewFakeSource creates a FakeSource populated with plausible values and
// n generated process rows.
func NewFakeSource(n int) *FakeSource {
	return &FakeSource{
		OS:       "ubuntu 22.04",
		KernelID: "6.5.0-41-generic",
		CPU:      0.25,
		Memory:   0.5,
		Up:       3*time.Hour + 25*time.Minute + 7*time.Second,
		Total:    n,
		Running:  1,
		Rows:     GenerateRows(n),
	}
}

// GenerateRows builds n distinct rows with pids 100, 101, ...
func GenerateRows(n int) []metrics.ProcessRow {
	rows := make([]metrics.ProcessRow, n)
	for i := range rows {
		rows[i] = metrics.ProcessRow{
			PID:     100 + i,
			User:    "user",
			CPU:     0.01 * float64(i%100),
			RAM:     fmt.Sprintf("%d", 10+i),
			Uptime:  time.Duration(i) * time.Minute,
			Command: fmt.Sprintf("/usr/bin/proc-%d", i),
		}
	}
	return rows
}

func (f *FakeSource) OperatingSystem(ctx context.Context) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.OS, nil
}

func (f *FakeSource) Kernel(ctx context.Context) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.KernelID, nil
}

func (f *FakeSource) CPUUtilization(ctx context.Context) (float64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.CPU, nil
}

func (f *FakeSource) MemoryUtilization(ctx context.Context) (float64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.Memory, nil
}

func (f *FakeSource) Uptime(ctx context.Context) (time.Duration, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.Up, nil
}

func (f *FakeSource) TotalProcesses(ctx context.Context) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.Total, nil
}

func (f *FakeSource) RunningProcesses(ctx context.Context) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.Running, nil
}

// Processes returns the configured rows. The returned slice is the
// FakeSource's own backing array, which lets tests check that Capture copies.
func (f *FakeSource) Processes(ctx context.Context) ([]metrics.ProcessRow, error) {
	f.mu.Lock()
	f.processCalls++
	call := f.processCalls
	rows := f.Rows
	err := f.ProcessesErr
	if f.FailAfter > 0 && call <= f.FailAfter {
		err = nil
	}
	hook := f.OnProcesses
	f.mu.Unlock()

	if hook != nil {
		hook(call)
	}
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// ProcessCalls returns how many times Processes was called, which equals
// the number of snapshot acquisitions.
func (f *FakeSource) ProcessCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.processCalls
}
