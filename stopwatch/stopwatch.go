// Package stopwatch measures time elapsed since a resettable baseline.
package stopwatch

import (
	"sync"
	"time"

	"github.com/CNR-Engineering/Crue10-tools-sub001/clock"
	"github.com/CNR-Engineering/Crue10-tools-sub001/tracing"
)

// elapsedOperation identifies Elapsed to a tracer.  Elapsed refers to it, so it is assigned in init.
var elapsedOperation tracing.Operation

func init() {
	elapsedOperation = tracing.OperationOf((*Stopwatch).Elapsed)
}

// Stopwatch reports the time elapsed since its baseline.  The baseline is captured on the first
// call to Elapsed and again on any call that asks for a reset.  A Stopwatch is safe for
// concurrent use.
type Stopwatch struct {
	lock     sync.Mutex
	clock    clock.Interface
	tracer   *tracing.Tracer
	baseline time.Time
	started  bool
}

type Option func(*Stopwatch)

// WithClock sets the time source.  If c is nil, the system clock is used.
func WithClock(c clock.Interface) Option {
	return func(s *Stopwatch) {
		s.clock = clock.OrSystem(c)
	}
}

// WithTracer runs each Elapsed call through t.  Without this option, calls are not traced.
func WithTracer(t *tracing.Tracer) Option {
	return func(s *Stopwatch) {
		s.tracer = t
	}
}

// New creates a Stopwatch.  The baseline is not captured until the first call to Elapsed.
func New(o ...Option) *Stopwatch {
	s := &Stopwatch{
		clock: clock.System(),
	}

	for _, option := range o {
		option(s)
	}

	return s
}

// Elapsed returns the time since the baseline.  If this is the first call, or reset is true, the
// baseline is first moved to the current time, so the result is close to zero.
func (s *Stopwatch) Elapsed(reset bool) time.Duration {
	if s.tracer == nil {
		return s.elapsed(reset)
	}

	var d time.Duration
	s.tracer.Call(elapsedOperation, func() error {
		d = s.elapsed(reset)
		return nil
	})

	return d
}

// Reset moves the baseline to the current time.
func (s *Stopwatch) Reset() {
	s.elapsed(true)
}

func (s *Stopwatch) elapsed(reset bool) time.Duration {
	s.lock.Lock()
	defer s.lock.Unlock()

	now := s.clock.Now()
	if reset || !s.started {
		s.baseline = now
		s.started = true
	}

	return now.Sub(s.baseline)
}
