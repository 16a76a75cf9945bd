package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	usecasecontract "github.com/jasonzhang/portfolio/internal/usecase/contract"
)

// NewRedisFromURL parses a redis:// URL and pings the server once.
// A failed ping is logged; the client is still returned so callers can retry lazily.
func NewRedisFromURL(ctx context.Context, redisURL string, logger usecasecontract.IAppLogger) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}
	rdb := redis.NewClient(opts)

	if err := Ping(ctx, rdb); err != nil {
		logger.Warnf("redis ping failed: %v", err)
	}
	return rdb, nil
}

func Ping(ctx context.Context, rdb *redis.Client) error {
	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	return rdb.Ping(pingCtx).Err()
}

func Close(rdb *redis.Client, logger usecasecontract.IAppLogger) {
	if rdb == nil {
		return
	}
	if err := rdb.Close(); err != nil {
		logger.Errorf("redis close failed: %v", err)
	}
}
