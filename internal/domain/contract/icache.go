package contract

import (
	"context"
	"time"
)

// ITTLCache stores opaque payloads that expire after a per-entry TTL.
type ITTLCache interface {
	// Get returns the payload for key. found is false on a miss or after expiry.
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	// Expire drops key immediately. Missing keys are not an error.
	Expire(ctx context.Context, key string) error
}
