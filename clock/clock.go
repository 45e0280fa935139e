package clock

import "time"

// Interface represents the subset of the stdlib time package used to measure elapsed time.
// Code that needs deterministic timing in tests should accept an Interface rather than
// calling time.Now directly.
type Interface interface {
	// Now returns the current wall-clock time.
	Now() time.Time

	// Since returns the time elapsed since t.
	Since(t time.Time) time.Duration
}

type systemClock struct{}

func (sc systemClock) Now() time.Time {
	return time.Now()
}

func (sc systemClock) Since(t time.Time) time.Duration {
	return time.Since(t)
}

// System returns a clock backed by the time package
func System() Interface {
	return systemClock{}
}

// OrSystem returns c if it is non-nil, or the System clock otherwise.
func OrSystem(c Interface) Interface {
	if c != nil {
		return c
	}

	return System()
}
