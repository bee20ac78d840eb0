package dispatch

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/floramajestyc/catalog-service/internal/redisx"
)

// RedisDedup keeps handled event ids under dedup:{service}:{event_id} with a
// rolling TTL. A lookup failure is surfaced, not swallowed: the consumer
// leaves the offset uncommitted and retries rather than risk a double open.
type RedisDedup struct {
	Client  *redis.Client
	Service string
}

func (d *RedisDedup) Seen(ctx context.Context, eventID string) (bool, error) {
	ok, err := redisx.Exists(ctx, d.Client, d.key(eventID))
	if err != nil {
		return false, fmt.Errorf("dedup lookup: %w", err)
	}
	return ok, nil
}

func (d *RedisDedup) MarkSeen(ctx context.Context, eventID string) error {
	if err := d.Client.Set(ctx, d.key(eventID), "1", redisx.TTLDedup).Err(); err != nil {
		return fmt.Errorf("dedup mark: %w", err)
	}
	return nil
}

func (d *RedisDedup) key(eventID string) string {
	return fmt.Sprintf(redisx.KeyDedup, d.Service, eventID)
}
