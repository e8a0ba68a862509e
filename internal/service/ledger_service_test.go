package service

import (
	"context"
	"errors"
	"testing"

	"github.com/SimpnicServerTeam/scs-sentence-server/internal/mocks"
	"github.com/SimpnicServerTeam/scs-sentence-server/internal/repository"
	"github.com/SimpnicServerTeam/scs-sentence-server/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestLedgerService(t *testing.T) {
	ctx := context.Background()

	t.Run("ChargeAndBalance", func(t *testing.T) {
		repo := memory.NewMemoryUserRepository()
		require.NoError(t, repo.CreateUser(ctx, "alice", []byte("h"), 2))
		ledger := NewLedgerService(repo)

		balance, err := ledger.Charge(ctx, "alice", 2)
		require.NoError(t, err)
		assert.Equal(t, int64(0), balance)

		_, err = ledger.Charge(ctx, "alice", 1)
		assert.ErrorIs(t, err, repository.ErrInsufficientCredits)

		balance, err = ledger.Balance(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, int64(0), balance)
	})

	t.Run("Refill", func(t *testing.T) {
		repo := memory.NewMemoryUserRepository()
		require.NoError(t, repo.CreateUser(ctx, "bob", []byte("h"), 0))
		ledger := NewLedgerService(repo)

		balance, err := ledger.Refill(ctx, "bob", 10)
		require.NoError(t, err)
		assert.Equal(t, int64(10), balance)

		_, err = ledger.Refill(ctx, "ghost", 10)
		assert.ErrorIs(t, err, repository.ErrUserNotFound)
	})

	t.Run("InvalidAmounts", func(t *testing.T) {
		mockRepo := new(mocks.MockUserRepository)
		ledger := NewLedgerService(mockRepo)

		_, err := ledger.Refill(ctx, "bob", 0)
		assert.ErrorIs(t, err, ErrInvalidAmount)
		_, err = ledger.Refill(ctx, "bob", -5)
		assert.ErrorIs(t, err, ErrInvalidAmount)
		_, err = ledger.Charge(ctx, "bob", -1)
		assert.ErrorIs(t, err, ErrInvalidAmount)

		mockRepo.AssertNotCalled(t, "AddCredits", mock.Anything, mock.Anything, mock.Anything)
		mockRepo.AssertNotCalled(t, "ChargeCredits", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("RepositoryError", func(t *testing.T) {
		mockRepo := new(mocks.MockUserRepository)
		ledger := NewLedgerService(mockRepo)
		repoErr := errors.New("boom")
		mockRepo.On("ChargeCredits", ctx, "bob", int64(1)).Return(int64(0), repoErr).Once()

		_, err := ledger.Charge(ctx, "bob", 1)
		assert.ErrorIs(t, err, repoErr)
		mockRepo.AssertExpectations(t)
	})
}
