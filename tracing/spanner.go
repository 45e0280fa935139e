package tracing

import (
	"github.com/CNR-Engineering/Crue10-tools-sub001/clock"
	"github.com/segmentio/ksuid"
)

// Spanner acts as a factory for Spans
type Spanner interface {
	// Start begins a new, unfinished span.  The returned closure must be called
	// to finished the span, recording it with a duration and the given error.  The
	// returned closure is idempotent and only records the duration and error of the first call.
	// It always returns the same Span instance.
	Start(string) func(error) Span
}

type SpannerOption func(*spanner)

// WithClock sets the clock a spanner uses to stamp and time spans.  If c is nil, this option does nothing.
func WithClock(c clock.Interface) SpannerOption {
	return func(sp *spanner) {
		if c != nil {
			sp.clock = c
		}
	}
}

// WithIDs sets the function used to generate span identifiers.  If ids is nil, this option does nothing.
func WithIDs(ids func() string) SpannerOption {
	return func(sp *spanner) {
		if ids != nil {
			sp.ids = ids
		}
	}
}

func newKSUID() string {
	return ksuid.New().String()
}

// NewSpanner constructs a new Spanner with the given options
func NewSpanner(o ...SpannerOption) Spanner {
	sp := &spanner{
		clock: clock.System(),
		ids:   newKSUID,
	}

	for _, option := range o {
		option(sp)
	}

	return sp
}

type spanner struct {
	clock clock.Interface
	ids   func() string
}

func (sp *spanner) Start(name string) func(error) Span {
	s := &span{
		id:    sp.ids(),
		name:  name,
		start: sp.clock.Now(),
	}

	return func(err error) Span {
		s.finish(sp.clock.Since(s.start), err)
		return s
	}
}
