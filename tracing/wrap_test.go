package tracing

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func parseCount(s string) (int, error) {
	return strconv.Atoi(s)
}

func divide(a, b int) (int, error) {
	if b == 0 {
		return -1, errors.New("division by zero")
	}

	return a / b, nil
}

func record(values *[]string) func(string) error {
	return func(v string) error {
		if len(v) == 0 {
			return errors.New("empty value")
		}

		*values = append(*values, v)
		return nil
	}
}

func TestProc0(t *testing.T) {
	var (
		assert         = assert.New(t)
		tracer, output = newTestTracer()
	)

	assert.NoError(Proc0(tracer, succeeding)())
	assert.Zero(output.Len())

	assert.Equal(errValue, Proc0(tracer, failingValue)())
	assert.Contains(output.String(), "failingValue")
	assert.Contains(output.String(), `*errors.errorString("x")`)
}

func TestProc1(t *testing.T) {
	var (
		assert         = assert.New(t)
		tracer, output = newTestTracer()
		values         []string
		traced         = Proc1(tracer, record(&values))
	)

	assert.NoError(traced("first"))
	assert.Equal([]string{"first"}, values)
	assert.Zero(output.Len())

	assert.EqualError(traced(""), "empty value")
	assert.Equal([]string{"first"}, values)
	assert.Contains(output.String(), "(wrap_test.go)")
}

func TestFunc0(t *testing.T) {
	var (
		assert         = assert.New(t)
		tracer, output = newTestTracer()
		traced         = Func0(tracer, func() (string, error) { return "value", nil })
	)

	result, err := traced()
	assert.Equal("value", result)
	assert.NoError(err)
	assert.Zero(output.Len())
}

func TestFunc1(t *testing.T) {
	var (
		assert         = assert.New(t)
		tracer, output = newTestTracer()
		traced         = Func1(tracer, parseCount)
	)

	n, err := traced("42")
	assert.Equal(42, n)
	assert.NoError(err)
	assert.Zero(output.Len())

	n, err = traced("forty-two")
	assert.Zero(n)

	var numError *strconv.NumError
	assert.ErrorAs(err, &numError)
	assert.Contains(output.String(), "Exception '")
	assert.Contains(output.String(), "parseCount' (wrap_test.go): *strconv.NumError(")
}

func TestFunc2(t *testing.T) {
	var (
		assert         = assert.New(t)
		tracer, output = newTestTracer()
		traced         = Func2(tracer, divide)
	)

	q, err := traced(7, 2)
	assert.Equal(3, q)
	assert.NoError(err)
	assert.Zero(output.Len())

	// results returned alongside an error are forwarded too
	q, err = traced(7, 0)
	assert.Equal(-1, q)
	assert.EqualError(err, "division by zero")
	assert.Contains(output.String(), "divide' (wrap_test.go)")
}

func clamp(v, lo, hi int) (int, error) {
	if lo > hi {
		return v, errors.New("empty range")
	}

	if v < lo {
		return lo, nil
	} else if v > hi {
		return hi, nil
	}

	return v, nil
}

func TestFunc3(t *testing.T) {
	var (
		assert         = assert.New(t)
		tracer, output = newTestTracer()
		traced         = Func3(tracer, clamp)
	)

	v, err := traced(12, 0, 10)
	assert.Equal(10, v)
	assert.NoError(err)
	assert.Zero(output.Len())

	v, err = traced(5, 10, 0)
	assert.Equal(5, v)
	assert.EqualError(err, "empty range")
	assert.Contains(output.String(), "clamp' (wrap_test.go)")
}

func TestValue1(t *testing.T) {
	var (
		assert         = assert.New(t)
		tracer, output = newTestTracer()
		traced         = Value1(tracer, func(s string) int {
			if s == "" {
				panic("empty")
			}

			return len(s)
		})
	)

	assert.Equal(3, traced("abc"))
	assert.Zero(output.Len())

	assert.PanicsWithValue("empty", func() { traced("") })
	assert.Contains(output.String(), `string("empty")`)
}

func TestDo(t *testing.T) {
	assert := assert.New(t)
	tracer, output := newTestTracer()

	result, err := Do(tracer, Named("load", "loader.go"), func() (int, error) {
		return 0, errValue
	})

	assert.Zero(result)
	assert.Equal(errValue, err)
	assert.Equal("Exception 'load' (loader.go): *errors.errorString(\"x\")\n", output.String())
}
