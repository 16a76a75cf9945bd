package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/jasonzhang/portfolio/internal/domain/contract"
	"github.com/jasonzhang/portfolio/internal/infrastructure/metrics"
	usecasecontract "github.com/jasonzhang/portfolio/internal/usecase/contract"
)

// Memoizer caches computed values in a TTL cache under fixed keys.
// Concurrent misses on the same key inside one process share a single computation.
type Memoizer struct {
	cache  contract.ITTLCache
	logger usecasecontract.IAppLogger
	group  singleflight.Group
}

func NewMemoizer(cache contract.ITTLCache, logger usecasecontract.IAppLogger) *Memoizer {
	return &Memoizer{cache: cache, logger: logger}
}

// GetOrCompute returns the value stored under key, or runs compute, stores its
// result for ttl and returns it. hit reports whether the value came from the cache.
// Cache failures never fail the call: reads fall through to compute and write
// errors are logged. An error from compute is returned and nothing is stored.
// The computation outlives a cancelled caller: its result is shared and cached,
// so compute must bound its own slow calls.
func GetOrCompute[T any](ctx context.Context, m *Memoizer, key string, ttl time.Duration, compute func(context.Context) (T, error)) (value T, hit bool, err error) {
	data, found, err := m.cache.Get(ctx, key)
	switch {
	case err != nil:
		metrics.IncCacheError("get")
		m.logger.Warningf("cache error: key=%s err=%v", key, err)
	case found:
		var cached T
		if err := json.Unmarshal(data, &cached); err == nil {
			metrics.IncCacheHit(key)
			return cached, true, nil
		}
		m.logger.Warningf("cache entry undecodable, recomputing: key=%s", key)
	}
	metrics.IncCacheMiss(key)

	v, err, _ := m.group.Do(key, func() (interface{}, error) {
		ctx := context.WithoutCancel(ctx)
		computed, err := compute(ctx)
		if err != nil {
			return nil, err
		}
		payload, err := json.Marshal(computed)
		if err != nil {
			m.logger.Errorf("cache encode failed: key=%s err=%v", key, err)
			return computed, nil
		}
		if err := m.cache.Set(ctx, key, payload, ttl); err != nil {
			metrics.IncCacheError("set")
			m.logger.Warningf("cache write failed: key=%s err=%v", key, err)
		}
		return computed, nil
	})
	if err != nil {
		var zero T
		return zero, false, fmt.Errorf("compute %s: %w", key, err)
	}
	return v.(T), false, nil
}
