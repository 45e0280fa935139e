package tracing

import (
	"fmt"

	"github.com/spf13/cast"
)

// Repr renders an error the way it appears in diagnostic lines: its dynamic type followed
// by its quoted message, e.g. *errors.errorString("x").  A nil error renders as "<nil>".
func Repr(err error) string {
	if err == nil {
		return "<nil>"
	}

	return fmt.Sprintf("%T(%q)", err, err.Error())
}

// reprPanic renders a recovered panic value.  Errors use Repr.  Anything cast can turn into
// a string is quoted, and everything else falls back to its default format.
func reprPanic(r interface{}) string {
	if err, ok := r.(error); ok {
		return Repr(err)
	}

	if s, err := cast.ToStringE(r); err == nil {
		return fmt.Sprintf("%T(%q)", r, s)
	}

	return fmt.Sprintf("%T(%v)", r, r)
}

// PanicError is the Span error recorded when a traced call panics.  The panic itself is
// always propagated; this type only exists so the span and structured log carry something.
type PanicError struct {
	Value interface{}
}

func (pe *PanicError) Error() string {
	return "panic: " + reprPanic(pe.Value)
}
