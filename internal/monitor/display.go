package monitor

import "github.com/rileyhilliard/sysmon/internal/metrics"

// Input is the outcome of one non-blocking input poll.
type Input int

const (
	// InputNone means no actionable key was pending.
	InputNone Input = iota
	// InputQuit means a quit key was pressed.
	InputQuit
	// InputInterrupt means Ctrl+C was pressed while the terminal was in raw mode.
	InputInterrupt
)

// String returns a human-readable name for the input.
func (i Input) String() string {
	switch i {
	case InputNone:
		return "none"
	case InputQuit:
		return "quit"
	case InputInterrupt:
		return "interrupt"
	default:
		return "unknown"
	}
}

// Display is the surface the Scheduler paints on. All methods are called
// from a single goroutine except Teardown, which must tolerate a second,
// concurrent call and perform the actual teardown only once.
type Display interface {
	RenderSystemPanel(snap metrics.Snapshot)
	RenderProcessPanel(rows []metrics.ProcessRow, limit int)
	PollInput() Input
	Teardown()
}

// Initializer is implemented by displays that take over the terminal in a
// separate step after they are created. Teardown may be called before,
// during or after Init; the display must end up restored either way.
type Initializer interface {
	Init(processRowLimit int) error
}
