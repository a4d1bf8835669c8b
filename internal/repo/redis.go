package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/tmarchal/footprints/backend/internal/domain"
)

// redisKV is the Redis implementation of KV. Snapshots are stored as plain
// string values with no expiry — the store is the source of truth on restart.
type redisKV struct {
	client *redis.Client
}

// NewRedisKV constructs a KV backed by the provided Redis client.
func NewRedisKV(client *redis.Client) KV {
	return &redisKV{client: client}
}

func (r *redisKV) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("repo.KV.Get %q: %w", key, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("repo.KV.Get %q: %w", key, err)
	}
	return value, nil
}

func (r *redisKV) Set(ctx context.Context, key string, value []byte) error {
	if err := r.client.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("repo.KV.Set %q: %w", key, err)
	}
	return nil
}

func (r *redisKV) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("repo.KV.Delete %q: %w", key, err)
	}
	return nil
}
