package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis keeps last readings in a shared Redis with a TTL, so restarts and
// multiple replicas still answer "/ultima".
type Redis struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewRedis connects to addr. A zero ttl defaults to 24h.
func NewRedis(addr string, ttl time.Duration) *Redis {
	if ttl == 0 {
		ttl = 24 * time.Hour
	}
	return &Redis{
		rdb: redis.NewClient(&redis.Options{Addr: addr}),
		ttl: ttl,
	}
}

// Ping checks the connection at startup.
func (r *Redis) Ping(ctx context.Context) error {
	return r.rdb.Ping(ctx).Err()
}

func (r *Redis) Store(ctx context.Context, userID int64, text string) error {
	if err := r.rdb.Set(ctx, key(userID), text, r.ttl).Err(); err != nil {
		return fmt.Errorf("storing last reading: %w", err)
	}
	return nil
}

func (r *Redis) Last(ctx context.Context, userID int64) (string, bool, error) {
	text, err := r.rdb.Get(ctx, key(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("reading last reading: %w", err)
	}
	return text, true, nil
}

func key(userID int64) string {
	return fmt.Sprintf("numeria:last:%d", userID)
}
