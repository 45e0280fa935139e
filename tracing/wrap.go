package tracing

// Do runs f through t as the given operation and returns whatever f returns.  A nil t uses Default.
func Do[R any](t *Tracer, op Operation, f func() (R, error)) (result R, err error) {
	err = OrDefault(t).Call(op, func() (ferr error) {
		result, ferr = f()
		return
	})

	return
}

// Proc0 wraps f so that each call is traced.  The operation is derived from f itself.
func Proc0(t *Tracer, f func() error) func() error {
	op := OperationOf(f)
	return func() error {
		return OrDefault(t).Call(op, f)
	}
}

// Proc1 is the one-argument analog of Proc0.
func Proc1[A any](t *Tracer, f func(A) error) func(A) error {
	op := OperationOf(f)
	return func(a A) error {
		return OrDefault(t).Call(op, func() error {
			return f(a)
		})
	}
}

// Func0 wraps f so that each call is traced.  Results, including any result returned
// alongside an error, are forwarded unchanged.
func Func0[R any](t *Tracer, f func() (R, error)) func() (R, error) {
	op := OperationOf(f)
	return func() (R, error) {
		return Do(t, op, f)
	}
}

// Func1 is the one-argument analog of Func0.
func Func1[A, R any](t *Tracer, f func(A) (R, error)) func(A) (R, error) {
	op := OperationOf(f)
	return func(a A) (R, error) {
		return Do(t, op, func() (R, error) {
			return f(a)
		})
	}
}

// Func2 is the two-argument analog of Func0.
func Func2[A, B, R any](t *Tracer, f func(A, B) (R, error)) func(A, B) (R, error) {
	op := OperationOf(f)
	return func(a A, b B) (R, error) {
		return Do(t, op, func() (R, error) {
			return f(a, b)
		})
	}
}

// Func3 is the three-argument analog of Func0.
func Func3[A, B, C, R any](t *Tracer, f func(A, B, C) (R, error)) func(A, B, C) (R, error) {
	op := OperationOf(f)
	return func(a A, b B, c C) (R, error) {
		return Do(t, op, func() (R, error) {
			return f(a, b, c)
		})
	}
}

// Value1 wraps a function that cannot return an error.  Only panics are traced.
func Value1[A, R any](t *Tracer, f func(A) R) func(A) R {
	op := OperationOf(f)
	return func(a A) (result R) {
		OrDefault(t).Call(op, func() error {
			result = f(a)
			return nil
		})

		return
	}
}
