package repository

import "context"

// VisitRepository keeps the global visit counter of the greeting app.
type VisitRepository interface {
	// IncrementVisits atomically adds one visit and returns the new total.
	IncrementVisits(ctx context.Context) (int64, error)
}
