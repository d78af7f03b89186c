// Package monitor implements the live terminal dashboard: the render engine
// that paints a metrics.Snapshot into two bordered panels, and the refresh
// scheduler that drives the sample, paint, poll, sleep cycle.
//
// # Architecture
//
// The package is built around three pieces:
//
//   - Display: the paint/poll/teardown contract the scheduler talks to.
//     Renderer implements it on a tcell.Screen.
//   - Scheduler: the tick loop. Each tick captures a fresh Snapshot by
//     value, paints both panels, polls input without blocking, then waits
//     for the next tick.
//   - RunState: the process-wide shutdown gate, cleared once by the
//     supervisor's signal handler and observed by the scheduler.
//
// # Layout
//
// The screen holds two panels stacked vertically, each (width - 2) columns
// wide and offset one column from the left edge:
//
//	System panel   14 rows      OS, kernel, CPU and memory bars, counts, uptime
//	Process panel  limit+5 rows PID, USER, CPU%, RAM(MB), TIME+, COMMAND
//
// Values wider than their column are cut at the column boundary and nothing
// is ever drawn over a panel border.
//
// # Ownership
//
// Only the goroutine running the Scheduler touches the Display. Teardown is
// guarded so that the supervisor's emergency teardown and the scheduler's
// own teardown never both reach the terminal.
//
// # Keyboard
//
//	q, Q     Quit
//	Ctrl+C   Interrupt (raised as SIGINT, handled like an external signal)
package monitor
