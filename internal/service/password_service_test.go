package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SimpnicServerTeam/scs-sentence-server/internal/mocks"
	"github.com/SimpnicServerTeam/scs-sentence-server/internal/models"
	"github.com/SimpnicServerTeam/scs-sentence-server/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestPasswordService(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(mocks.MockUserRepository)
	svc := NewPasswordService(mockRepo, bcrypt.MinCost)

	hash, err := svc.Hash("s3cret")
	require.NoError(t, err)
	require.NoError(t, bcrypt.CompareHashAndPassword(hash, []byte("s3cret")))

	mockRepo.On("GetUser", ctx, "alice").Return(&models.User{Username: "alice", PasswordHash: hash}, nil)
	mockRepo.On("GetUser", ctx, "ghost").Return(nil, repository.ErrUserNotFound)
	mockRepo.On("GetUser", ctx, "broken").Return(nil, errors.New("redis down"))
	mockRepo.On("GetUser", ctx, "garbled").Return(&models.User{Username: "garbled", PasswordHash: []byte("not-a-hash")}, nil)

	t.Run("CorrectPassword", func(t *testing.T) {
		ok, err := svc.Verify(ctx, "alice", "s3cret")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		ok, err := svc.Verify(ctx, "alice", "guess")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("UnknownUserIsNotAnError", func(t *testing.T) {
		ok, err := svc.Verify(ctx, "ghost", "s3cret")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("StorageError", func(t *testing.T) {
		ok, err := svc.Verify(ctx, "broken", "s3cret")
		require.Error(t, err)
		assert.False(t, ok)
	})

	t.Run("CorruptHash", func(t *testing.T) {
		ok, err := svc.Verify(ctx, "garbled", "s3cret")
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestPasswordService_UnknownUserStillHashes(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(mocks.MockUserRepository)
	mockRepo.On("GetUser", ctx, "ghost").Return(nil, repository.ErrUserNotFound)
	svc := NewPasswordService(mockRepo, bcrypt.DefaultCost)

	cost, err := bcrypt.Cost(svc.dummyHash)
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)

	// a cost-10 comparison takes tens of milliseconds; a bare map miss takes microseconds
	start := time.Now()
	ok, err := svc.Verify(ctx, "ghost", "s3cret")
	elapsed := time.Since(start)

	require.NoError(t, err)
	assert.False(t, ok)
	assert.GreaterOrEqual(t, elapsed, 5*time.Millisecond)
}
