package repositories

import (
	"context"
	"time"

	"github.com/Bhavuk-Devex/AVO/domain"
	"github.com/redis/go-redis/v9"
)

// RateLimitRepository keeps fixed-window hit counters in Redis
type RateLimitRepository struct {
	rdb *redis.Client
}

func NewRateLimitRepository(rdb *redis.Client) domain.RateLimitStore {
	return &RateLimitRepository{rdb: rdb}
}

// Hit increments key and starts its window on the first hit
func (r *RateLimitRepository) Hit(ctx context.Context, key string, window time.Duration) (int64, error) {
	count, err := r.rdb.Incr(ctx, key).Result()
	if err != nil {
		return 0, err
	}
	if count == 1 {
		if err := r.rdb.Expire(ctx, key, window).Err(); err != nil {
			return count, err
		}
	}
	return count, nil
}
