package shared

import (
	"context"
	"time"
)

// IdempotencyStore remembers client supplied request keys so a retried write
// is applied once
type IdempotencyStore interface {
	// Claim records key for ttl. It returns false when the key is already held.
	Claim(ctx context.Context, key string, ttl time.Duration) (bool, error)

	// Release forgets key so the request may be retried
	Release(ctx context.Context, key string) error

	Close() error
}
