package logging

import (
	"io"

	"github.com/go-kit/kit/log"
)

// testSink is the part of testing.TB that receives log output
type testSink interface {
	Log(...interface{})
}

type testWriter struct {
	sink testSink
}

func (w testWriter) Write(data []byte) (int, error) {
	w.sink.Log(string(data))
	return len(data), nil
}

// NewTestWriter returns an io.Writer that sends each write to the test log.
func NewTestWriter(t testSink) io.Writer {
	return testWriter{sink: t}
}

// NewTestLogger produces a go-kit Logger whose output is attached to the running test, so it is
// only shown for failing tests or under -v.  A nil o logs every level.
func NewTestLogger(o *Options, t testSink) log.Logger {
	if o == nil {
		o = &Options{Level: "DEBUG"}
	}

	return NewTo(o, NewTestWriter(t))
}
