// Package cache holds the short lived key stores used by the HTTP layer.
package cache

import (
	"github.com/stockledger/backend/internal/domain/shared"
	"github.com/stockledger/backend/internal/infrastructure/config"
	"go.uber.org/zap"
)

// NewIdempotencyStore returns a Redis store when Redis is enabled. If Redis
// cannot be reached the in-memory store is used and a warning logged.
func NewIdempotencyStore(cfg config.RedisConfig, logger *zap.Logger) shared.IdempotencyStore {
	if !cfg.Enabled {
		return NewInMemoryIdempotencyStore()
	}
	store, err := NewRedisIdempotencyStore(cfg)
	if err != nil {
		logger.Warn("Redis unavailable, falling back to in-memory idempotency store; "+
			"retries routed to other instances will not be recognised",
			zap.Error(err))
		return NewInMemoryIdempotencyStore()
	}
	logger.Info("Using Redis idempotency store")
	return store
}
