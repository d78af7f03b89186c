// Package testing provides test doubles for the monitor package.
package testing

import (
	"sync"

	"github.com/rileyhilliard/sysmon/internal/metrics"
	"github.com/rileyhilliard/sysmon/internal/monitor"
)

// FakeDisplay records everything the scheduler asks it to do.
type FakeDisplay struct {
	mu sync.Mutex

	// Inputs is returned by successive PollInput calls; InputNone after it runs out.
	Inputs []monitor.Input

	// OnPoll runs at the start of each PollInput call with the 1-based call number.
	OnPoll func(call int)

	snapshots     []metrics.Snapshot
	painted       [][]metrics.ProcessRow
	polls         int
	teardownCalls int
	teardowns     int
	afterTeardown int
}

// NewFakeDisplay creates a FakeDisplay that returns inputs in order.
func NewFakeDisplay(inputs ...monitor.Input) *FakeDisplay {
	return &FakeDisplay{Inputs: inputs}
}

func (d *FakeDisplay) RenderSystemPanel(snap metrics.Snapshot) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.teardowns > 0 {
		d.afterTeardown++
	}
	d.snapshots = append(d.snapshots, snap)
}

// RenderProcessPanel records the rows that would be painted: the first
// min(limit, len(rows)).
func (d *FakeDisplay) RenderProcessPanel(rows []metrics.ProcessRow, limit int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.teardowns > 0 {
		d.afterTeardown++
	}
	n := min(max(limit, 0), len(rows))
	painted := make([]metrics.ProcessRow, n)
	copy(painted, rows[:n])
	d.painted = append(d.painted, painted)
}

func (d *FakeDisplay) PollInput() monitor.Input {
	d.mu.Lock()
	d.polls++
	call := d.polls
	hook := d.OnPoll
	in := monitor.InputNone
	if call <= len(d.Inputs) {
		in = d.Inputs[call-1]
	}
	d.mu.Unlock()

	if hook != nil {
		hook(call)
	}
	return in
}

// Teardown counts every call but only the first one takes effect.
func (d *FakeDisplay) Teardown() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.teardownCalls++
	if d.teardowns == 0 {
		d.teardowns = 1
	}
}

// Snapshots returns the snapshots passed to RenderSystemPanel.
func (d *FakeDisplay) Snapshots() []metrics.Snapshot {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]metrics.Snapshot(nil), d.snapshots...)
}

// Painted returns the process rows painted on each tick.
func (d *FakeDisplay) Painted() [][]metrics.ProcessRow {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([][]metrics.ProcessRow(nil), d.painted...)
}

// Polls returns how many times PollInput was called.
func (d *FakeDisplay) Polls() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.polls
}

// TeardownCalls returns how many times Teardown was called.
func (d *FakeDisplay) TeardownCalls() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.teardownCalls
}

// Teardowns returns how many teardowns took effect (0 or 1).
func (d *FakeDisplay) Teardowns() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.teardowns
}

// RendersAfterTeardown returns how many paint calls arrived after teardown.
func (d *FakeDisplay) RendersAfterTeardown() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.afterTeardown
}

var _ monitor.Display = (*FakeDisplay)(nil)
