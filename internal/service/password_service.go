package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/SimpnicServerTeam/scs-sentence-server/internal/repository"
)

var _ PasswordVerifier = (*PasswordService)(nil)

// PasswordService checks bcrypt password hashes stored in the user repository.
type PasswordService struct {
	userRepo repository.UserRepository
	cost     int
	// compared against for unknown users so both failures take the same time
	dummyHash []byte
}

func NewPasswordService(userRepo repository.UserRepository, cost int) *PasswordService {
	dummyHash, err := bcrypt.GenerateFromPassword([]byte("unknown-user-placeholder"), cost)
	if err != nil {
		log.Error().Err(err).Int("cost", cost).Msg("Failed to create placeholder password hash")
	}
	return &PasswordService{
		userRepo:  userRepo,
		cost:      cost,
		dummyHash: dummyHash,
	}
}

func (s *PasswordService) Hash(password string) ([]byte, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	return hash, nil
}

func (s *PasswordService) Verify(ctx context.Context, username, password string) (bool, error) {
	user, err := s.userRepo.GetUser(ctx, username)
	if errors.Is(err, repository.ErrUserNotFound) {
		log.Debug().Str("username", username).Msg("Password check for unknown user")
		_ = bcrypt.CompareHashAndPassword(s.dummyHash, []byte(password))
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to load user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)); err != nil {
		if !errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			log.Warn().Err(err).Str("username", username).Msg("Stored password hash is unusable")
		}
		return false, nil
	}
	return true, nil
}
