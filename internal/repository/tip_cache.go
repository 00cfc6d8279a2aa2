package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const tipKeyPrefix = "creatoros:tip:"

// RedisTipCache implements domain.TipCache on Redis strings with a TTL.
type RedisTipCache struct {
	client redis.Cmdable
}

func NewRedisTipCache(client redis.Cmdable) *RedisTipCache {
	return &RedisTipCache{client: client}
}

func (c *RedisTipCache) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := c.client.Get(ctx, tipKeyPrefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read tip cache: %w", err)
	}
	return val, true, nil
}

func (c *RedisTipCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if err := c.client.Set(ctx, tipKeyPrefix+key, value, ttl).Err(); err != nil {
		return fmt.Errorf("failed to write tip cache: %w", err)
	}
	return nil
}
