package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisBackend stores the document as one blob under DocumentKey, for
// deployments that already run Redis for the analytics cache.
type RedisBackend struct {
	client *redis.Client
}

// NewRedisBackend wraps a connected Redis client.
func NewRedisBackend(client *redis.Client) *RedisBackend {
	return &RedisBackend{client: client}
}

func (b *RedisBackend) Load(ctx context.Context) ([]byte, error) {
	data, err := b.client.Get(ctx, DocumentKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load document from redis: %w", err)
	}
	return data, nil
}

func (b *RedisBackend) Save(ctx context.Context, data []byte) error {
	if err := b.client.Set(ctx, DocumentKey, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save document to redis: %w", err)
	}
	return nil
}
