package logging

import (
	"github.com/stretchr/testify/mock"
)

type mockLogger struct {
	mock.Mock
}

func (m *mockLogger) Log(keyvals ...interface{}) error {
	arguments := m.Called(keyvals)
	first, _ := arguments.Get(0).(error)
	return first
}

// mockTestSink stands in for a *testing.T as the target of NewTestLogger
type mockTestSink struct {
	mock.Mock
}

func (m *mockTestSink) Log(v ...interface{}) {
	m.Called(v)
}
