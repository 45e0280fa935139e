package tracing

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/CNR-Engineering/Crue10-tools-sub001/logging"
	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"
	"github.com/go-kit/kit/metrics"
	"github.com/go-kit/kit/metrics/discard"
)

// Logging keys used for the structured entry emitted on each failure
const (
	OperationKey = "operation"
	FileKey      = "file"
	DurationKey  = "duration"
	SpanIDKey    = "spanID"
)

// DiagnosticFormat is the layout of the line written for each failed call: the operation
// name, the base name of its source file, and the Repr of what went wrong.
const DiagnosticFormat = "Exception '%s' (%s): %s\n"

// Tracer runs functions on behalf of callers and reports each failure exactly once.  A Tracer
// never alters what the traced function returns: errors come back as the identical value and
// panics are re-raised with the original panic value.
//
// A Tracer is safe for concurrent use.  Diagnostic lines from concurrent failures are never interleaved.
type Tracer struct {
	lock     sync.Mutex
	output   io.Writer
	logger   log.Logger
	spanner  Spanner
	failures metrics.Counter
}

type TracerOption func(*Tracer)

// WithOutput sets where diagnostic lines are written.  The default is os.Stdout.  If w is nil,
// this option does nothing.
func WithOutput(w io.Writer) TracerOption {
	return func(t *Tracer) {
		if w != nil {
			t.output = w
		}
	}
}

// WithLogger sets the go-kit logger that receives a structured error entry for each failure.
// The default is logging.DefaultLogger().  If l is nil, this option does nothing.
func WithLogger(l log.Logger) TracerOption {
	return func(t *Tracer) {
		if l != nil {
			t.logger = l
		}
	}
}

// WithSpanner sets the factory for the spans that time each call.  If s is nil, this option does nothing.
func WithSpanner(s Spanner) TracerOption {
	return func(t *Tracer) {
		if s != nil {
			t.spanner = s
		}
	}
}

// WithFailureCounter sets a counter incremented once per failure, labelled with OperationKey.
// If c is nil, this option does nothing.
func WithFailureCounter(c metrics.Counter) TracerOption {
	return func(t *Tracer) {
		if c != nil {
			t.failures = c
		}
	}
}

// NewTracer constructs a Tracer with the given options
func NewTracer(o ...TracerOption) *Tracer {
	t := &Tracer{
		output:   os.Stdout,
		logger:   logging.DefaultLogger(),
		spanner:  NewSpanner(),
		failures: discard.NewCounter(),
	}

	for _, option := range o {
		option(t)
	}

	return t
}

var defaultTracer = NewTracer()

// Default returns the process-wide Tracer, which writes diagnostics to os.Stdout and does nothing else.
func Default() *Tracer {
	return defaultTracer
}

// OrDefault returns t if it is non-nil, or Default otherwise.
func OrDefault(t *Tracer) *Tracer {
	if t != nil {
		return t
	}

	return defaultTracer
}

// Call runs f as the given operation.  If f returns a non-nil error, one diagnostic line is
// written and that same error is returned.  If f panics, one diagnostic line is written and
// the panic continues with its original value.  Otherwise nothing is written.
func (t *Tracer) Call(op Operation, f func() error) error {
	var (
		finish   = t.spanner.Start(op.Name)
		returned bool
	)

	defer func() {
		if returned {
			return
		}

		// a nil recover here means runtime.Goexit, which is not a failure of f
		if r := recover(); r != nil {
			t.report(op, finish(&PanicError{Value: r}), reprPanic(r))
			panic(r)
		}
	}()

	err := f()
	returned = true
	if err != nil {
		t.report(op, finish(err), Repr(err))
	}

	return err
}

func (t *Tracer) report(op Operation, s Span, repr string) {
	t.lock.Lock()
	fmt.Fprintf(t.output, DiagnosticFormat, op.Name, op.File, repr)
	t.lock.Unlock()

	t.failures.With(OperationKey, op.Name).Add(1)
	// operation and file locate the failure, so no caller is added
	level.Error(logging.Enrich(t.logger, op)).Log(
		logging.MessageKey(), "traced call failed",
		logging.ErrorKey(), s.Error(),
		DurationKey, s.Duration(),
		SpanIDKey, s.ID(),
	)
}
