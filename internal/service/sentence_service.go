package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/SimpnicServerTeam/scs-sentence-server/internal/config"
	"github.com/SimpnicServerTeam/scs-sentence-server/internal/models"
	"github.com/SimpnicServerTeam/scs-sentence-server/internal/repository"
)

var _ SentenceGenerator = (*SentenceService)(nil)

// SentenceService lets registered users store and read back one sentence,
// paying credits for each call.
type SentenceService struct {
	userRepo  repository.UserRepository
	passwords PasswordVerifier
	ledger    LedgerGenerator
	credits   config.CreditsConfig
}

func NewSentenceService(
	userRepo repository.UserRepository,
	passwords PasswordVerifier,
	ledger LedgerGenerator,
	credits config.CreditsConfig,
) *SentenceService {
	return &SentenceService{
		userRepo:  userRepo,
		passwords: passwords,
		ledger:    ledger,
		credits:   credits,
	}
}

// Register creates an account with the initial credit grant.
func (s *SentenceService) Register(ctx context.Context, req models.RegisterRequest) error {
	if req.Username == "" || req.Password == "" {
		return ErrMissingField
	}

	hash, err := s.passwords.Hash(req.Password)
	if err != nil {
		return err
	}

	if err := s.userRepo.CreateUser(ctx, req.Username, hash, s.credits.Initial); err != nil {
		return fmt.Errorf("failed to register user %q: %w", req.Username, err)
	}
	log.Info().Str("username", req.Username).Int64("credits", s.credits.Initial).Msg("User registered")
	return nil
}

// Store replaces the user's sentence and returns the remaining balance.
func (s *SentenceService) Store(ctx context.Context, req models.StoreRequest) (int64, error) {
	if err := s.authenticate(ctx, req.Username, req.Password); err != nil {
		return 0, err
	}

	balance, err := s.userRepo.StoreSentence(ctx, req.Username, req.Sentence, s.credits.StoreCost)
	if err != nil {
		return 0, fmt.Errorf("failed to store sentence: %w", err)
	}
	log.Debug().Str("username", req.Username).Int64("credits", balance).Msg("Sentence stored")
	return balance, nil
}

// Retrieve returns the stored sentence and the remaining balance.
func (s *SentenceService) Retrieve(ctx context.Context, req models.CredentialsRequest) (string, int64, error) {
	if err := s.authenticate(ctx, req.Username, req.Password); err != nil {
		return "", 0, err
	}

	sentence, balance, err := s.userRepo.RetrieveSentence(ctx, req.Username, s.credits.RetrieveCost)
	if err != nil {
		return "", 0, fmt.Errorf("failed to retrieve sentence: %w", err)
	}
	log.Debug().Str("username", req.Username).Int64("credits", balance).Msg("Sentence retrieved")
	return sentence, balance, nil
}

// CheckBalance is free of charge.
func (s *SentenceService) CheckBalance(ctx context.Context, req models.CredentialsRequest) (int64, error) {
	if err := s.authenticate(ctx, req.Username, req.Password); err != nil {
		return 0, err
	}
	return s.ledger.Balance(ctx, req.Username)
}

func (s *SentenceService) authenticate(ctx context.Context, username, password string) error {
	ok, err := s.passwords.Verify(ctx, username, password)
	if err != nil {
		return err
	}
	if !ok {
		return ErrWrongCredentials
	}
	return nil
}
