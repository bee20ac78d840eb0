package clientlist

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/floramajestyc/catalog-service/internal/redisx"
)

type RedisStore struct {
	Client *redis.Client
}

func (s *RedisStore) Put(ctx context.Context, snap Snapshot) error {
	b, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	key := fmt.Sprintf(redisx.KeyClientList, snap.ID)
	if err := s.Client.Set(ctx, key, b, redisx.TTLClientList).Err(); err != nil {
		return fmt.Errorf("redis set snapshot: %w", err)
	}
	return nil
}

func (s *RedisStore) Get(ctx context.Context, id string) (Snapshot, error) {
	b, err := s.Client.Get(ctx, fmt.Sprintf(redisx.KeyClientList, id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return Snapshot{}, ErrNotFound
	}
	if err != nil {
		return Snapshot{}, fmt.Errorf("redis get snapshot: %w", err)
	}
	var snap Snapshot
	if err := json.Unmarshal(b, &snap); err != nil {
		return Snapshot{}, fmt.Errorf("unmarshal snapshot: %w", err)
	}
	return snap, nil
}
