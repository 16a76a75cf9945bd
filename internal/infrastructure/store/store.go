package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jasonzhang/portfolio/internal/domain/contract"
)

// RedisTTLCache keeps memoized payloads in Redis so every instance of the
// site shares one featured selection per window.
type RedisTTLCache struct {
	rdb    *redis.Client
	prefix string
}

var _ contract.ITTLCache = (*RedisTTLCache)(nil)

func NewRedisTTLCache(rdb *redis.Client, prefix string) *RedisTTLCache {
	return &RedisTTLCache{rdb: rdb, prefix: prefix}
}

func (c *RedisTTLCache) key(k string) string { return fmt.Sprintf("%s%s", c.prefix, k) }

func (c *RedisTTLCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	b, err := c.rdb.Get(ctx, c.key(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return b, true, nil
}

func (c *RedisTTLCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		return fmt.Errorf("ttl must be positive, got %s", ttl)
	}
	return c.rdb.Set(ctx, c.key(key), value, ttl).Err()
}

func (c *RedisTTLCache) Expire(ctx context.Context, key string) error {
	return c.rdb.Del(ctx, c.key(key)).Err()
}
