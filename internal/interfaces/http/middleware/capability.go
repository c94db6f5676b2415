package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stockledger/backend/internal/domain/identity"
	"github.com/stockledger/backend/internal/interfaces/http/dto"
	"go.uber.org/zap"
)

// CapabilityConfig holds configuration for capability checks
type CapabilityConfig struct {
	Logger *zap.Logger
}

// RequireCapability allows the request only when the authenticated principal
// holds c. It must run after JWTAuth.
func RequireCapability(c identity.Capability) gin.HandlerFunc {
	return RequireCapabilityWithConfig(CapabilityConfig{}, c)
}

// RequireCapabilityWithConfig is RequireCapability with logging of denials
func RequireCapabilityWithConfig(cfg CapabilityConfig, capability identity.Capability) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := GetPrincipal(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				dto.NewErrorResponse(dto.ErrCodeUnauthorized, "Not authorized, no token", getRequestIDFromContext(c)))
			return
		}

		decision := identity.Authorize(principal, capability)
		if !decision.Allowed {
			if cfg.Logger != nil {
				cfg.Logger.Warn("Capability denied",
					zap.String("user_id", principal.UserID.String()),
					zap.String("role", string(principal.Role)),
					zap.String("capability", string(capability)),
					zap.String("reason", decision.Reason),
				)
			}
			c.AbortWithStatusJSON(http.StatusForbidden,
				dto.NewErrorResponse(dto.ErrCodeForbidden, "Not authorized for this action", getRequestIDFromContext(c)))
			return
		}

		c.Next()
	}
}
