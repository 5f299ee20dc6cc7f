package mocks

import (
	usecasecontract "github.com/innercircle/lessons-api/internal/usecase/contract"
)

// MockLogger discards everything. Handlers only log on store failures, so
// tests never assert on log output.
type MockLogger struct{}

var _ usecasecontract.IAppLogger = (*MockLogger)(nil)

func NewMockLogger() *MockLogger { return &MockLogger{} }

func (l *MockLogger) Debugf(format string, args ...interface{}) {}
func (l *MockLogger) Infof(format string, args ...interface{})  {}
func (l *MockLogger) Warnf(format string, args ...interface{})  {}
func (l *MockLogger) Errorf(format string, args ...interface{}) {}
func (l *MockLogger) Fatalf(format string, args ...interface{}) {}
