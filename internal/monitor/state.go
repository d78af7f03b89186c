package monitor

import (
	"os"
	"sync"
	"sync/atomic"
)

// RunState is the shutdown gate shared by the supervisor and the render
// loop. It starts running and can be stopped exactly once.
type RunState struct {
	running atomic.Bool
	done    chan struct{}
	once    sync.Once

	mu  sync.Mutex
	sig os.Signal
}

// NewRunState returns a RunState in the running state.
func NewRunState() *RunState {
	s := &RunState{done: make(chan struct{})}
	s.running.Store(true)
	return s
}

// Running reports whether the state has not been stopped yet.
func (s *RunState) Running() bool {
	return s.running.Load()
}

// Stop clears the running flag and records the signal that caused it
// (nil when the stop was not signal driven). Only the first call has any
// effect; it reports whether this call was the one that stopped the state.
func (s *RunState) Stop(sig os.Signal) bool {
	stopped := false
	s.once.Do(func() {
		s.mu.Lock()
		s.sig = sig
		s.mu.Unlock()
		s.running.Store(false)
		close(s.done)
		stopped = true
	})
	return stopped
}

// Done is closed when the state is stopped.
func (s *RunState) Done() <-chan struct{} {
	return s.done
}

// Signal returns the signal passed to the first Stop call, if any.
func (s *RunState) Signal() os.Signal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sig
}
