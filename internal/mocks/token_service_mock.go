package mocks

import (
	"time"

	"github.com/stretchr/testify/mock"
)

// MockTokenGenerator is a mock implementation of the TokenGenerator interface.
type MockTokenGenerator struct {
	mock.Mock
}

func (m *MockTokenGenerator) GenerateToken(subject string) (string, time.Time, error) {
	args := m.Called(subject)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}
