package service

import (
	"context"
	"errors"
	"time"

	"github.com/SimpnicServerTeam/scs-sentence-server/internal/models"
)

// Errors surfaced to handlers
var (
	ErrWrongCredentials = errors.New("wrong username or password")
	ErrMissingField     = errors.New("required field is missing")
	ErrInvalidAmount    = errors.New("amount must be positive")
	ErrAdminDisabled    = errors.New("admin access is not configured")
)

// PasswordVerifier hashes passwords and checks them against stored hashes.
type PasswordVerifier interface {
	Hash(password string) ([]byte, error)
	// Verify returns false, without an error, when the user does not exist.
	Verify(ctx context.Context, username, password string) (bool, error)
}

// LedgerGenerator reads and moves a user's credits.
type LedgerGenerator interface {
	Balance(ctx context.Context, username string) (int64, error)
	Charge(ctx context.Context, username string, amount int64) (int64, error)
	Refill(ctx context.Context, username string, amount int64) (int64, error)
}

// SentenceGenerator implements the paid sentence store.
type SentenceGenerator interface {
	Register(ctx context.Context, req models.RegisterRequest) error
	Store(ctx context.Context, req models.StoreRequest) (int64, error)
	Retrieve(ctx context.Context, req models.CredentialsRequest) (sentence string, balance int64, err error)
	CheckBalance(ctx context.Context, req models.CredentialsRequest) (int64, error)
}

// CalculatorGenerator evaluates a calculator operation.
type CalculatorGenerator interface {
	Calculate(operation string, req models.CalculatorRequest) models.CalculatorResponse
}

// VisitGenerator counts greeting-app visits.
type VisitGenerator interface {
	Visit(ctx context.Context) (int64, error)
}

// TokenGenerator issues admin JWTs.
type TokenGenerator interface {
	GenerateToken(subject string) (string, time.Time, error)
}

// AdminGenerator authenticates the operator.
type AdminGenerator interface {
	IssueToken(ctx context.Context, req models.AdminTokenRequest) (*models.AdminTokenResponse, error)
}
