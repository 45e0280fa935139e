package clocktest

import (
	"sync"
	"time"

	"github.com/CNR-Engineering/Crue10-tools-sub001/clock"
	"github.com/stretchr/testify/mock"
)

// Mock is a stretchr mock for a clock.  In addition to implementing clock.Interface and supplying
// mock behavior, other methods that make mocking a bit easier are supplied.
type Mock struct {
	mock.Mock
}

var _ clock.Interface = (*Mock)(nil)

func (m *Mock) Now() time.Time {
	return m.Called().Get(0).(time.Time)
}

// OnNow sets up a single call to Now that returns v.  Successive OnNow calls
// queue up successive return values.
func (m *Mock) OnNow(v time.Time) *mock.Call {
	return m.On("Now").Return(v).Once()
}

func (m *Mock) Since(t time.Time) time.Duration {
	return m.Called(t).Get(0).(time.Duration)
}

func (m *Mock) OnSince(t time.Time, d time.Duration) *mock.Call {
	return m.On("Since", t).Return(d)
}

// Manual is a clock.Interface whose current time only changes when Add or Set is called.
// It is safe for concurrent use.
type Manual struct {
	lock sync.Mutex
	now  time.Time
}

var _ clock.Interface = (*Manual)(nil)

// NewManual creates a Manual clock starting at the given time.
func NewManual(start time.Time) *Manual {
	return &Manual{now: start}
}

func (m *Manual) Now() time.Time {
	m.lock.Lock()
	defer m.lock.Unlock()
	return m.now
}

func (m *Manual) Since(t time.Time) time.Duration {
	return m.Now().Sub(t)
}

// Add advances the clock by d and returns the new current time.
func (m *Manual) Add(d time.Duration) time.Time {
	m.lock.Lock()
	defer m.lock.Unlock()
	m.now = m.now.Add(d)
	return m.now
}

// Set moves the clock to t, which may be in the past.
func (m *Manual) Set(t time.Time) {
	m.lock.Lock()
	m.now = t
	m.lock.Unlock()
}
