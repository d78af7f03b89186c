package monitor

import (
	"context"
	"os"
	"time"

	"github.com/rileyhilliard/sysmon/internal/logger"
	"github.com/rileyhilliard/sysmon/internal/metrics"
)

// Scheduler defaults.
const (
	DefaultInterval     = 700 * time.Millisecond
	DefaultProcessLimit = 15
)

// Scheduler drives the dashboard: each tick it captures a Snapshot, paints
// both panels, polls input, and then waits for the next tick.
//
// The stop condition is only checked after painting and while waiting, so
// shutdown takes at most one interval plus one capture.
type Scheduler struct {
	source   metrics.Source
	display  Display
	state    *RunState
	interval time.Duration
	limit    int
	log      logger.Logger
	raise    func() error
}

// SchedulerOption configures a Scheduler.
type SchedulerOption func(*Scheduler)

// WithInterval sets the delay between ticks.
func WithInterval(d time.Duration) SchedulerOption {
	return func(s *Scheduler) {
		if d > 0 {
			s.interval = d
		}
	}
}

// WithProcessLimit sets how many process rows are painted.
func WithProcessLimit(n int) SchedulerOption {
	return func(s *Scheduler) {
		if n > 0 {
			s.limit = n
		}
	}
}

// WithLogger sets the scheduler's logger.
func WithLogger(l logger.Logger) SchedulerOption {
	return func(s *Scheduler) {
		if l != nil {
			s.log = l
		}
	}
}

// WithInterrupt replaces how an interrupt key is turned into a signal.
func WithInterrupt(raise func() error) SchedulerOption {
	return func(s *Scheduler) {
		if raise != nil {
			s.raise = raise
		}
	}
}

// NewScheduler creates a Scheduler painting source onto display until
// state is stopped or the quit key is pressed.
func NewScheduler(source metrics.Source, display Display, state *RunState, opts ...SchedulerOption) *Scheduler {
	s := &Scheduler{
		source:   source,
		display:  display,
		state:    state,
		interval: DefaultInterval,
		limit:    DefaultProcessLimit,
		log:      logger.Noop(),
		raise:    raiseInterrupt,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run loops until the quit key, a cleared RunState, ctx cancellation, or a
// capture failure. The display is torn down exactly once on every path.
// Capture failures are returned; the other exits return nil.
func (s *Scheduler) Run(ctx context.Context) error {
	defer s.display.Teardown()

	for tick := 1; ; tick++ {
		if !s.state.Running() || ctx.Err() != nil {
			return nil
		}

		snap, err := metrics.Capture(ctx, s.source)
		if err != nil {
			s.log.Error("tick %d: %v", tick, err)
			return err
		}

		s.display.RenderSystemPanel(snap)
		s.display.RenderProcessPanel(snap.Processes, s.limit)

		switch s.display.PollInput() {
		case InputQuit:
			s.log.Debug("tick %d: quit key pressed", tick)
			return nil
		case InputInterrupt:
			s.log.Debug("tick %d: interrupt key pressed", tick)
			if err := s.raise(); err != nil {
				s.log.Warn("could not raise interrupt: %v", err)
			}
		}

		if !s.state.Running() {
			return nil
		}
		if !s.wait(ctx) {
			return nil
		}
	}
}

// wait sleeps for one interval. It returns false if the run state is
// stopped or ctx ends first.
func (s *Scheduler) wait(ctx context.Context) bool {
	timer := time.NewTimer(s.interval)
	defer timer.Stop()

	select {
	case <-timer.C:
		return true
	case <-s.state.Done():
		return false
	case <-ctx.Done():
		return false
	}
}

// raiseInterrupt sends SIGINT to this process, mirroring what the terminal
// would have done outside raw mode.
func raiseInterrupt() error {
	p, err := os.FindProcess(os.Getpid())
	if err != nil {
		return err
	}
	return p.Signal(os.Interrupt)
}
