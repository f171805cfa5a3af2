package core

import (
	"github.com/commupay/rewards-wallet/internal/domain/port/core"
	"github.com/stretchr/testify/mock"
)

// MockLogger is a testify mock for the core Logger port
type MockLogger struct {
	mock.Mock
}

// SetLevel sets the minimum log level to output
func (m *MockLogger) SetLevel(level core.LogLevel) {
	m.Called(level)
}

// Debug logs debug messages
func (m *MockLogger) Debug(message string, fields map[string]any) {
	m.Called(message, fields)
}

// Info logs informational messages
func (m *MockLogger) Info(message string, fields map[string]any) {
	m.Called(message, fields)
}

// Warn logs warning messages
func (m *MockLogger) Warn(message string, fields map[string]any) {
	m.Called(message, fields)
}

// Error logs errors messages
func (m *MockLogger) Error(message string, fields map[string]any) {
	m.Called(message, fields)
}

// Flush ensures all buffered logs are written to their destination
func (m *MockLogger) Flush() error {
	args := m.Called()
	return args.Error(0)
}
