package store

import (
	"context"
	"fmt"
	"time"

	cache "github.com/go-pkgz/expirable-cache/v3"

	"github.com/jasonzhang/portfolio/internal/domain/contract"
)

const memoryMaxKeys = 1024

// MemoryTTLCache is the single-instance TTL cache used when no Redis is configured.
type MemoryTTLCache struct {
	entries cache.Cache[string, []byte]
}

var _ contract.ITTLCache = (*MemoryTTLCache)(nil)

func NewMemoryTTLCache() *MemoryTTLCache {
	return &MemoryTTLCache{
		entries: cache.NewCache[string, []byte]().WithMaxKeys(memoryMaxKeys).WithTTL(time.Hour),
	}
}

func (c *MemoryTTLCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	v, ok := c.entries.Get(key)
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, true, nil
}

func (c *MemoryTTLCache) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		return fmt.Errorf("ttl must be positive, got %s", ttl)
	}
	stored := make([]byte, len(value))
	copy(stored, value)
	c.entries.Set(key, stored, ttl)
	return nil
}

func (c *MemoryTTLCache) Expire(_ context.Context, key string) error {
	c.entries.Invalidate(key)
	return nil
}
