package repository

import (
	"context"
	"errors"

	"github.com/SimpnicServerTeam/scs-sentence-server/internal/models"
)

// UserRepository stores sentence-service accounts and their credit balance.
// Every method that changes the balance must be atomic in the backend: a
// balance check and the write that depends on it never interleave with
// another request for the same user.
type UserRepository interface {
	// CreateUser stores a new account with an empty sentence.
	// It returns ErrUserExists if the username is already taken.
	CreateUser(ctx context.Context, username string, passwordHash []byte, credits int64) error

	// GetUser returns ErrUserNotFound if the user does not exist.
	GetUser(ctx context.Context, username string) (*models.User, error)

	// UpdateUser merges the non-nil fields of update into the stored record.
	// It returns ErrUserNotFound if the user does not exist and
	// ErrNegativeCredits if update sets a balance below zero.
	UpdateUser(ctx context.Context, username string, update models.UserUpdate) error

	// GetCredits returns the current balance.
	GetCredits(ctx context.Context, username string) (int64, error)

	// ChargeCredits subtracts amount and returns the new balance.
	// It returns ErrInsufficientCredits, leaving the balance untouched, if the
	// balance is lower than amount.
	ChargeCredits(ctx context.Context, username string, amount int64) (int64, error)

	// StoreSentence charges cost and replaces the sentence in one step.
	StoreSentence(ctx context.Context, username, sentence string, cost int64) (int64, error)

	// RetrieveSentence charges cost and returns the sentence with the new balance.
	RetrieveSentence(ctx context.Context, username string, cost int64) (string, int64, error)

	// AddCredits adds amount to the balance and returns the new balance.
	AddCredits(ctx context.Context, username string, amount int64) (int64, error)
}

// Common errors
var (
	ErrUserNotFound        = errors.New("user not found")
	ErrUserExists          = errors.New("user already exists")
	ErrInsufficientCredits = errors.New("insufficient credits")
	ErrNegativeCredits     = errors.New("credits cannot be negative")
)
