// Package periodic decides which of a sequence of calls should act, so that expensive work such
// as logging or checkpointing only happens on every Nth call.
package periodic

import (
	"errors"
	"sync"

	"github.com/CNR-Engineering/Crue10-tools-sub001/tracing"
)

// ErrZeroPeriod is returned by Activate when asked for a period of zero.
var ErrZeroPeriod = errors.New("activation period must not be zero")

// activateOperation identifies Activate to a tracer.  Activate refers to it, so it is assigned in init.
var activateOperation tracing.Operation

func init() {
	activateOperation = tracing.OperationOf((*Flag).Activate)
}

// Flag counts calls and reports whether each one falls on an activation period.  The first call
// after creation or after a reset is call 0, which is always active.  A Flag is safe for concurrent use.
type Flag struct {
	lock    sync.Mutex
	tracer  *tracing.Tracer
	counter int
	started bool
}

type Option func(*Flag)

// WithTracer sets the tracer that reports failed activations.  The default is tracing.Default(),
// which writes a diagnostic line to os.Stdout.
func WithTracer(t *tracing.Tracer) Option {
	return func(f *Flag) {
		f.tracer = t
	}
}

// NewFlag creates a Flag.  The zero value is also ready to use.
func NewFlag(o ...Option) *Flag {
	f := new(Flag)
	for _, option := range o {
		option(f)
	}

	return f
}

// Activate counts this call and reports whether it is a multiple of period since the last reset.
// When reset is true the count restarts before this call is counted, so the call is always active.
//
// A zero period still counts the call, but returns ErrZeroPeriod after reporting it through the
// Flag's tracer.  A negative period behaves like its absolute value.
func (f *Flag) Activate(period int, reset bool) (bool, error) {
	var active bool
	err := tracing.OrDefault(f.tracer).Call(activateOperation, func() error {
		f.lock.Lock()
		defer f.lock.Unlock()

		if reset || !f.started {
			f.counter = -1
			f.started = true
		}

		f.counter++
		if period == 0 {
			return ErrZeroPeriod
		}

		active = f.counter%period == 0
		return nil
	})

	return active, err
}

// Next is Activate with a period of 1 and no reset.  It always returns true.
func (f *Flag) Next() bool {
	active, _ := f.Activate(1, false)
	return active
}

// Every returns a function that activates with a fixed period on each call.  A zero period
// is treated as 1.
func (f *Flag) Every(period int) func() bool {
	if period == 0 {
		period = 1
	}

	return func() bool {
		active, _ := f.Activate(period, false)
		return active
	}
}

// Reset restarts the count without counting a call.
func (f *Flag) Reset() {
	f.lock.Lock()
	f.started = false
	f.lock.Unlock()
}

// Count returns the number of calls counted since the last reset.
func (f *Flag) Count() int {
	f.lock.Lock()
	defer f.lock.Unlock()

	if !f.started {
		return 0
	}

	return f.counter + 1
}
