package memory

import (
	"context"
	"sync/atomic"

	"github.com/SimpnicServerTeam/scs-sentence-server/internal/repository"
)

var _ repository.VisitRepository = (*MemoryVisitRepository)(nil)

// MemoryVisitRepository counts visits in process memory.
type MemoryVisitRepository struct {
	visits atomic.Int64
}

func NewMemoryVisitRepository() *MemoryVisitRepository {
	return &MemoryVisitRepository{}
}

func (r *MemoryVisitRepository) IncrementVisits(ctx context.Context) (int64, error) {
	return r.visits.Add(1), nil
}
