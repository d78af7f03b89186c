// Package supervisor owns the dashboard's process lifecycle: it turns
// termination signals into a stopped RunState, runs the render loop on its
// own goroutine, and does not return until that loop has restored the
// terminal.
package supervisor

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/rileyhilliard/sysmon/internal/errors"
	"github.com/rileyhilliard/sysmon/internal/logger"
	"github.com/rileyhilliard/sysmon/internal/metrics"
	"github.com/rileyhilliard/sysmon/internal/monitor"
)

// Supervisor defaults.
const (
	DefaultPollInterval = time.Second
	DefaultJoinTimeout  = 2 * time.Second
)

// DefaultSignals are the signals that stop the dashboard.
var DefaultSignals = []os.Signal{syscall.SIGINT, syscall.SIGTERM}

// Options configures a Supervisor. Source and Open are required.
type Options struct {
	Source metrics.Source

	// Open creates the display for limit process rows. It runs on the render
	// goroutine, which owns the display from then on. A display that also
	// implements monitor.Initializer is published before its Init runs, so a
	// join timeout during Init can still tear it down.
	Open func(limit int) (monitor.Display, error)

	Interval     time.Duration
	ProcessLimit int

	// PollInterval is how often the calling goroutine checks the run state.
	PollInterval time.Duration

	// JoinTimeout bounds how long Run waits for the render goroutine after a
	// stop. When it expires the display is torn down from the calling goroutine.
	JoinTimeout time.Duration

	Signals []os.Signal
	Logger  logger.Logger
}

// Result describes how the dashboard ended.
type Result struct {
	// Signal is the signal that stopped the dashboard, nil for the quit key.
	Signal os.Signal
	// ExitCode is 0 for the quit key and 128+signo for a signal.
	ExitCode int
}

// Supervisor runs one dashboard session.
type Supervisor struct {
	opts Options
	log  logger.Logger

	notify     func(c chan<- os.Signal, sig ...os.Signal)
	stopNotify func(c chan<- os.Signal)

	mu      sync.Mutex
	display monitor.Display
}

// New creates a Supervisor, filling in defaults for unset options.
func New(opts Options) *Supervisor {
	if opts.Interval <= 0 {
		opts.Interval = monitor.DefaultInterval
	}
	if opts.ProcessLimit <= 0 {
		opts.ProcessLimit = monitor.DefaultProcessLimit
	}
	if opts.PollInterval <= 0 {
		opts.PollInterval = DefaultPollInterval
	}
	if opts.JoinTimeout <= 0 {
		opts.JoinTimeout = DefaultJoinTimeout
	}
	if len(opts.Signals) == 0 {
		opts.Signals = DefaultSignals
	}
	log := opts.Logger
	if log == nil {
		log = logger.Noop()
	}
	return &Supervisor{
		opts:       opts,
		log:        log,
		notify:     signal.Notify,
		stopNotify: signal.Stop,
	}
}

// Run is shorthand for New(opts).Run(ctx).
func Run(ctx context.Context, opts Options) (Result, error) {
	return New(opts).Run(ctx)
}

// Run starts the dashboard and blocks until it has stopped: by the quit
// key, a signal, ctx ending, or a render loop failure. When Run returns
// the terminal has been restored, either by the render loop or, if that
// did not finish within the join timeout, by Run itself.
func (s *Supervisor) Run(ctx context.Context) (Result, error) {
	if s.opts.Source == nil || s.opts.Open == nil {
		return Result{ExitCode: 1}, errors.New(errors.ErrExec,
			"Dashboard is missing its metric source or display",
			"This is a bug in sysmon")
	}

	state := monitor.NewRunState()

	sigCh := make(chan os.Signal, 1)
	s.notify(sigCh, s.opts.Signals...)
	defer s.stopNotify(sigCh)

	sigDone := make(chan struct{})
	defer close(sigDone)
	go func() {
		select {
		case sig := <-sigCh:
			state.Stop(sig)
		case <-sigDone:
		}
	}()

	renderDone := make(chan error, 1)
	go func() {
		renderDone <- s.render(ctx, state)
	}()

	ticker := time.NewTicker(s.opts.PollInterval)
	defer ticker.Stop()

	for state.Running() {
		select {
		case err := <-renderDone:
			// The loop ended on its own: quit key or failure. A signal that
			// raced in first keeps its place; Stop only acts once.
			state.Stop(nil)
			return s.result(state, err)
		case <-ctx.Done():
			s.log.Debug("context done: %v", ctx.Err())
			// Not signal driven, so no signal is recorded.
			state.Stop(nil)
		case <-ticker.C:
		}
	}

	s.log.Debug("stopping, signal=%v", state.Signal())
	return s.result(state, s.join(renderDone))
}

// render is the render goroutine: it owns the display from Open until the
// scheduler's deferred teardown.
func (s *Supervisor) render(ctx context.Context, state *monitor.RunState) error {
	display, err := s.opts.Open(s.opts.ProcessLimit)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.display = display
	s.mu.Unlock()

	if in, ok := display.(monitor.Initializer); ok {
		if err := in.Init(s.opts.ProcessLimit); err != nil {
			return err
		}
	}

	sched := monitor.NewScheduler(s.opts.Source, display, state,
		monitor.WithInterval(s.opts.Interval),
		monitor.WithProcessLimit(s.opts.ProcessLimit),
		monitor.WithLogger(s.log),
	)
	return sched.Run(ctx)
}

// join waits for the render goroutine. On timeout it tears the display
// down itself; Teardown only acts once, so this is safe even if the render
// goroutine gets there at the same moment.
func (s *Supervisor) join(renderDone <-chan error) error {
	timer := time.NewTimer(s.opts.JoinTimeout)
	defer timer.Stop()

	select {
	case err := <-renderDone:
		return err
	case <-timer.C:
		s.log.Warn("render loop did not stop within %s, restoring terminal", s.opts.JoinTimeout)
		s.mu.Lock()
		display := s.display
		s.mu.Unlock()
		if display != nil {
			display.Teardown()
		}
		return nil
	}
}

func (s *Supervisor) result(state *monitor.RunState, err error) (Result, error) {
	sig := state.Signal()
	if err != nil {
		return Result{Signal: sig, ExitCode: 1}, err
	}
	if sig == nil {
		return Result{}, nil
	}
	return Result{Signal: sig, ExitCode: ExitCodeForSignal(sig)}, nil
}

// ExitCodeForSignal returns the conventional shell exit status for a
// process ended by sig: 128 plus the signal number.
func ExitCodeForSignal(sig os.Signal) int {
	if n, ok := sig.(syscall.Signal); ok {
		return 128 + int(n)
	}
	return 1
}
