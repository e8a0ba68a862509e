package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var _ TokenGenerator = (*TokenService)(nil)

// Registered claims stamped on every admin token.
const (
	TokenIssuer   = "scs-sentence-server"
	TokenAudience = "scs-sentence-admin"
)

// TokenService signs HS256 admin tokens
type TokenService struct {
	jwtSecret []byte
	expiry    time.Duration
}

// NewTokenService creates a TokenService
func NewTokenService(secret string, expiry time.Duration) *TokenService {
	return &TokenService{jwtSecret: []byte(secret), expiry: expiry}
}

// GenerateToken creates a new JWT for subject
func (s *TokenService) GenerateToken(subject string) (string, time.Time, error) {
	now := time.Now()
	exp := now.Add(s.expiry)
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		Issuer:    TokenIssuer,
		Audience:  jwt.ClaimStrings{TokenAudience},
		ExpiresAt: jwt.NewNumericDate(exp),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, exp, nil
}
