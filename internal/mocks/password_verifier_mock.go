package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockPasswordVerifier struct {
	mock.Mock
}

func (m *MockPasswordVerifier) Hash(password string) ([]byte, error) {
	args := m.Called(password)
	hash, _ := args.Get(0).([]byte)
	return hash, args.Error(1)
}

func (m *MockPasswordVerifier) Verify(ctx context.Context, username, password string) (bool, error) {
	args := m.Called(ctx, username, password)
	return args.Bool(0), args.Error(1)
}
