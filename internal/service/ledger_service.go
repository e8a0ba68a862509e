package service

import (
	"context"
	"fmt"

	"github.com/SimpnicServerTeam/scs-sentence-server/internal/repository"
)

var _ LedgerGenerator = (*LedgerService)(nil)

// LedgerService is the credit ledger. Charges rely on the repository's
// conditional decrement, so a balance is never read and written back.
type LedgerService struct {
	userRepo repository.UserRepository
}

func NewLedgerService(userRepo repository.UserRepository) *LedgerService {
	return &LedgerService{userRepo: userRepo}
}

func (s *LedgerService) Balance(ctx context.Context, username string) (int64, error) {
	return s.userRepo.GetCredits(ctx, username)
}

// Charge returns repository.ErrInsufficientCredits when the balance is lower than amount.
func (s *LedgerService) Charge(ctx context.Context, username string, amount int64) (int64, error) {
	if amount < 0 {
		return 0, ErrInvalidAmount
	}
	balance, err := s.userRepo.ChargeCredits(ctx, username, amount)
	if err != nil {
		return 0, fmt.Errorf("failed to charge %d credits: %w", amount, err)
	}
	return balance, nil
}

func (s *LedgerService) Refill(ctx context.Context, username string, amount int64) (int64, error) {
	if amount <= 0 {
		return 0, ErrInvalidAmount
	}
	balance, err := s.userRepo.AddCredits(ctx, username, amount)
	if err != nil {
		return 0, fmt.Errorf("failed to refill %d credits: %w", amount, err)
	}
	return balance, nil
}
