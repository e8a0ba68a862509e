package service

import (
	"context"

	"github.com/SimpnicServerTeam/scs-sentence-server/internal/repository"
)

var _ VisitGenerator = (*VisitService)(nil)

type VisitService struct {
	visitRepo repository.VisitRepository
}

func NewVisitService(visitRepo repository.VisitRepository) *VisitService {
	return &VisitService{visitRepo: visitRepo}
}

func (s *VisitService) Visit(ctx context.Context) (int64, error) {
	return s.visitRepo.IncrementVisits(ctx)
}
