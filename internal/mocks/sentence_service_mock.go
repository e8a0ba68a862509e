package mocks

import (
	"context"

	"github.com/SimpnicServerTeam/scs-sentence-server/internal/models"
	"github.com/stretchr/testify/mock"
)

// MockSentenceGenerator is a mock implementation of the SentenceGenerator interface.
type MockSentenceGenerator struct {
	mock.Mock
}

func (m *MockSentenceGenerator) Register(ctx context.Context, req models.RegisterRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *MockSentenceGenerator) Store(ctx context.Context, req models.StoreRequest) (int64, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSentenceGenerator) Retrieve(ctx context.Context, req models.CredentialsRequest) (string, int64, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Get(1).(int64), args.Error(2)
}

func (m *MockSentenceGenerator) CheckBalance(ctx context.Context, req models.CredentialsRequest) (int64, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(int64), args.Error(1)
}
