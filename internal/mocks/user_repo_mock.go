package mocks

import (
	"context"

	"github.com/SimpnicServerTeam/scs-sentence-server/internal/models"
	"github.com/stretchr/testify/mock"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(ctx context.Context, username string, passwordHash []byte, credits int64) error {
	args := m.Called(ctx, username, passwordHash, credits)
	return args.Error(0)
}

func (m *MockUserRepository) GetUser(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, username string, update models.UserUpdate) error {
	args := m.Called(ctx, username, update)
	return args.Error(0)
}

func (m *MockUserRepository) GetCredits(ctx context.Context, username string) (int64, error) {
	args := m.Called(ctx, username)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) ChargeCredits(ctx context.Context, username string, amount int64) (int64, error) {
	args := m.Called(ctx, username, amount)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) StoreSentence(ctx context.Context, username, sentence string, cost int64) (int64, error) {
	args := m.Called(ctx, username, sentence, cost)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) RetrieveSentence(ctx context.Context, username string, cost int64) (string, int64, error) {
	args := m.Called(ctx, username, cost)
	return args.String(0), args.Get(1).(int64), args.Error(2)
}

func (m *MockUserRepository) AddCredits(ctx context.Context, username string, amount int64) (int64, error) {
	args := m.Called(ctx, username, amount)
	return args.Get(0).(int64), args.Error(1)
}
