package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stockledger/backend/internal/domain/shared"
	"github.com/stockledger/backend/internal/interfaces/http/dto"
	"go.uber.org/zap"
)

// IdempotencyKeyHeader carries the client chosen key of a write
const IdempotencyKeyHeader = "Idempotency-Key"

const maxIdempotencyKeyLen = 128

// IdempotencyConfig configures Idempotency
type IdempotencyConfig struct {
	Store  shared.IdempotencyStore
	TTL    time.Duration
	Logger *zap.Logger
}

// Idempotency rejects a repeated write carrying an Idempotency-Key already
// seen for the same caller and route. A key is released again when the first
// attempt fails, so a failed write can be retried. Requests without the header
// pass through.
func Idempotency(cfg IdempotencyConfig) gin.HandlerFunc {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.TTL <= 0 {
		cfg.TTL = 24 * time.Hour
	}
	return func(c *gin.Context) {
		key := strings.TrimSpace(c.GetHeader(IdempotencyKeyHeader))
		if key == "" {
			c.Next()
			return
		}
		if len(key) > maxIdempotencyKeyLen {
			c.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponse(
				dto.ErrCodeInvalidInput,
				"Idempotency-Key is too long",
				getRequestIDFromContext(c),
			))
			return
		}

		caller := "ip:" + c.ClientIP()
		if p, ok := GetPrincipal(c); ok {
			caller = "user:" + p.UserID.String()
		}
		scoped := caller + ":" + c.Request.Method + ":" + c.FullPath() + ":" + key

		ctx := c.Request.Context()
		claimed, err := cfg.Store.Claim(ctx, scoped, cfg.TTL)
		if err != nil {
			// fail open; the ledger itself still refuses to oversell
			cfg.Logger.Warn("Idempotency store unavailable", zap.Error(err))
			c.Next()
			return
		}
		if !claimed {
			c.AbortWithStatusJSON(http.StatusConflict, dto.NewErrorResponse(
				dto.ErrCodeDuplicateRequest,
				"A request with this Idempotency-Key was already processed",
				getRequestIDFromContext(c),
			))
			return
		}

		c.Next()

		if c.Writer.Status() >= http.StatusBadRequest {
			if err := cfg.Store.Release(ctx, scoped); err != nil {
				cfg.Logger.Warn("Failed to release idempotency key", zap.Error(err))
			}
		}
	}
}
