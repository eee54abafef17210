package logging

import (
	"github.com/stretchr/testify/mock"
)

var logMethods = []string{
	"Debug", "Info", "Warn", "Error", "Fatal",
	"Debugf", "Infof", "Warnf", "Errorf", "Fatalf",
}

// MockLogger records every call through testify's mock.Mock. Each method
// is registered under its own name with (msg, tags) or (template, args).
type MockLogger struct {
	mock.Mock
}

var _ Logger = (*MockLogger)(nil)

// NewMockLogger returns a MockLogger that accepts any call, for tests that
// only inspect what was logged afterwards with Messages.
func NewMockLogger() *MockLogger {
	m := &MockLogger{}
	for _, method := range logMethods {
		m.On(method, mock.Anything, mock.Anything).Maybe().Return()
	}
	m.On("With", mock.Anything).Maybe().Return(m)
	return m
}

// Messages lists the messages (or templates) logged through method, oldest first.
func (m *MockLogger) Messages(method string) []string {
	var msgs []string
	for _, call := range m.Calls {
		if call.Method == method && len(call.Arguments) > 0 {
			msgs = append(msgs, call.Arguments.String(0))
		}
	}
	return msgs
}

func (m *MockLogger) Debug(msg string, tags ...any) { m.MethodCalled("Debug", msg, tags) }
func (m *MockLogger) Info(msg string, tags ...any)  { m.MethodCalled("Info", msg, tags) }
func (m *MockLogger) Warn(msg string, tags ...any)  { m.MethodCalled("Warn", msg, tags) }
func (m *MockLogger) Error(msg string, tags ...any) { m.MethodCalled("Error", msg, tags) }
func (m *MockLogger) Fatal(msg string, tags ...any) { m.MethodCalled("Fatal", msg, tags) }

func (m *MockLogger) Debugf(template string, args ...interface{}) { m.MethodCalled("Debugf", template, args) }
func (m *MockLogger) Infof(template string, args ...interface{})  { m.MethodCalled("Infof", template, args) }
func (m *MockLogger) Warnf(template string, args ...interface{})  { m.MethodCalled("Warnf", template, args) }
func (m *MockLogger) Errorf(template string, args ...interface{}) { m.MethodCalled("Errorf", template, args) }
func (m *MockLogger) Fatalf(template string, args ...interface{}) { m.MethodCalled("Fatalf", template, args) }

// With returns the configured logger, or m itself when the expectation
// returns nil.
func (m *MockLogger) With(tags ...any) Logger {
	args := m.MethodCalled("With", tags)
	if l, ok := args.Get(0).(Logger); ok && l != nil {
		return l
	}
	return m
}

// NoOpLogger discards everything.
type NoOpLogger struct{}

func NewNoOpLogger() Logger {
	return &NoOpLogger{}
}

func (n *NoOpLogger) Debug(msg string, tags ...any)               {}
func (n *NoOpLogger) Info(msg string, tags ...any)                {}
func (n *NoOpLogger) Warn(msg string, tags ...any)                {}
func (n *NoOpLogger) Error(msg string, tags ...any)               {}
func (n *NoOpLogger) Fatal(msg string, tags ...any)               {}
func (n *NoOpLogger) Debugf(template string, args ...interface{}) {}
func (n *NoOpLogger) Infof(template string, args ...interface{})  {}
func (n *NoOpLogger) Warnf(template string, args ...interface{})  {}
func (n *NoOpLogger) Errorf(template string, args ...interface{}) {}
func (n *NoOpLogger) Fatalf(template string, args ...interface{}) {}
func (n *NoOpLogger) With(tags ...any) Logger                     { return n }
