package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockLedgerGenerator is a mock implementation of the LedgerGenerator interface.
type MockLedgerGenerator struct {
	mock.Mock
}

func (m *MockLedgerGenerator) Balance(ctx context.Context, username string) (int64, error) {
	args := m.Called(ctx, username)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLedgerGenerator) Charge(ctx context.Context, username string, amount int64) (int64, error) {
	args := m.Called(ctx, username, amount)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLedgerGenerator) Refill(ctx context.Context, username string, amount int64) (int64, error) {
	args := m.Called(ctx, username, amount)
	return args.Get(0).(int64), args.Error(1)
}
