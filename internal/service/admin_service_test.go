package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SimpnicServerTeam/scs-sentence-server/internal/mocks"
	"github.com/SimpnicServerTeam/scs-sentence-server/internal/models"
	"github.com/SimpnicServerTeam/scs-sentence-server/internal/repository/memory"
)

const testSecret = "test-jwt-secret"

func TestNewTokenService(t *testing.T) {
	service := NewTokenService(testSecret, time.Hour)
	require.NotNil(t, service, "NewTokenService should not return nil")
	assert.Equal(t, []byte(testSecret), service.jwtSecret, "jwtSecret was not initialized correctly")
}

func TestTokenService_GenerateToken(t *testing.T) {
	service := NewTokenService(testSecret, 30*time.Minute)

	tokenString, expiry, err := service.GenerateToken(AdminSubject)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)
	assert.WithinDuration(t, time.Now().Add(30*time.Minute), expiry, 5*time.Second)

	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(testSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	require.NoError(t, err)
	assert.True(t, token.Valid)
	assert.Equal(t, AdminSubject, claims.Subject)
	assert.Equal(t, TokenIssuer, claims.Issuer)
	assert.Equal(t, jwt.ClaimStrings{TokenAudience}, claims.Audience)
	assert.Equal(t, expiry.Unix(), claims.ExpiresAt.Unix())

	_, err = jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		return []byte("another-secret"), nil
	})
	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
}

func TestAdminService_IssueToken(t *testing.T) {
	ctx := context.Background()
	expiry := time.Now().Add(time.Hour)

	t.Run("Success", func(t *testing.T) {
		mockTokens := new(mocks.MockTokenGenerator)
		svc := NewAdminService("root", mockTokens)
		mockTokens.On("GenerateToken", AdminSubject).Return("signed", expiry, nil).Once()

		resp, err := svc.IssueToken(ctx, models.AdminTokenRequest{Password: "root"})
		require.NoError(t, err)
		assert.Equal(t, &models.AdminTokenResponse{Token: "signed", ExpiresAt: expiry}, resp)
		mockTokens.AssertExpectations(t)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		mockTokens := new(mocks.MockTokenGenerator)
		svc := NewAdminService("root", mockTokens)

		_, err := svc.IssueToken(ctx, models.AdminTokenRequest{Password: "toor"})
		assert.ErrorIs(t, err, ErrWrongCredentials)
		mockTokens.AssertNotCalled(t, "GenerateToken", AdminSubject)
	})

	t.Run("Disabled", func(t *testing.T) {
		svc := NewAdminService("", new(mocks.MockTokenGenerator))
		_, err := svc.IssueToken(ctx, models.AdminTokenRequest{Password: ""})
		assert.ErrorIs(t, err, ErrAdminDisabled)
	})

	t.Run("SigningError", func(t *testing.T) {
		mockTokens := new(mocks.MockTokenGenerator)
		svc := NewAdminService("root", mockTokens)
		signErr := errors.New("sign failed")
		mockTokens.On("GenerateToken", AdminSubject).Return("", time.Time{}, signErr).Once()

		_, err := svc.IssueToken(ctx, models.AdminTokenRequest{Password: "root"})
		assert.ErrorIs(t, err, signErr)
	})
}

func TestVisitService(t *testing.T) {
	svc := NewVisitService(memory.NewMemoryVisitRepository())

	for want := int64(1); want <= 2; want++ {
		n, err := svc.Visit(context.Background())
		require.NoError(t, err)
		assert.Equal(t, want, n)
	}
}
