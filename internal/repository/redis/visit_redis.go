package redis

import (
	"context"
	"fmt"

	"github.com/SimpnicServerTeam/scs-sentence-server/internal/repository"
	"github.com/redis/go-redis/v9"
)

var _ repository.VisitRepository = (*RedisVisitRepository)(nil)

const visitsKey = "visits"

// RedisVisitRepository keeps the visit counter in a single Redis integer.
type RedisVisitRepository struct {
	client *redis.Client
}

func NewRedisVisitRepository(client *redis.Client) *RedisVisitRepository {
	return &RedisVisitRepository{client: client}
}

func (r *RedisVisitRepository) IncrementVisits(ctx context.Context) (int64, error) {
	n, err := r.client.Incr(ctx, visitsKey).Result()
	if err != nil {
		return 0, fmt.Errorf("redis INCR failed: %w", err)
	}
	return n, nil
}
