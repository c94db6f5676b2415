package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stockledger/backend/internal/domain/identity"
	"github.com/stockledger/backend/internal/infrastructure/auth"
	"github.com/stockledger/backend/internal/infrastructure/logger"
	"github.com/stockledger/backend/internal/interfaces/http/dto"
	"go.uber.org/zap"
)

// JWT context keys
const (
	JWTClaimsKey    = "jwt_claims"
	JWTPrincipalKey = "jwt_principal"
	AuthHeaderKey   = "Authorization"
	BearerPrefix    = "Bearer "
)

// JWTMiddlewareConfig holds configuration for JWT middleware
type JWTMiddlewareConfig struct {
	// JWTService is required for token validation
	JWTService *auth.JWTService
	// TokenBlacklist is optional for checking revoked tokens
	TokenBlacklist auth.TokenBlacklist
	// CookieName is the session cookie checked before the Authorization header
	CookieName string
	Logger     *zap.Logger
}

// JWTAuth creates authentication middleware. The token is read from the
// session cookie first and from a Bearer Authorization header otherwise.
func JWTAuth(cfg JWTMiddlewareConfig) gin.HandlerFunc {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return func(c *gin.Context) {
		tokenString, ok := extractToken(c, cfg.CookieName)
		if !ok {
			abortUnauthorized(c, cfg, auth.ErrInvalidToken, "Not authorized, no token")
			return
		}

		claims, err := cfg.JWTService.Validate(tokenString)
		if err != nil {
			abortUnauthorized(c, cfg, err, "Not authorized, token failed")
			return
		}

		if cfg.TokenBlacklist != nil {
			ctx := c.Request.Context()
			blacklisted, err := cfg.TokenBlacklist.IsBlacklisted(ctx, claims.ID)
			if err != nil {
				// Fail open: a Redis outage must not log everybody out
				cfg.Logger.Error("Failed to check token blacklist",
					zap.String("jti", claims.ID), zap.Error(err))
			} else if blacklisted {
				abortUnauthorized(c, cfg, auth.ErrTokenBlacklisted, "Token has been revoked")
				return
			}

			var issuedAt time.Time
			if claims.IssuedAt != nil {
				issuedAt = claims.IssuedAt.Time
			}
			invalidated, err := cfg.TokenBlacklist.IsUserTokenInvalidated(ctx, claims.UserID, issuedAt)
			if err != nil {
				cfg.Logger.Error("Failed to check user token invalidation",
					zap.String("user_id", claims.UserID), zap.Error(err))
			} else if invalidated {
				abortUnauthorized(c, cfg, auth.ErrTokenBlacklisted, "User session has been invalidated")
				return
			}
		}

		principal, err := claims.Principal()
		if err != nil {
			abortUnauthorized(c, cfg, err, "Not authorized, token failed")
			return
		}

		c.Set(JWTClaimsKey, claims)
		c.Set(JWTPrincipalKey, principal)
		c.Set(logger.GinUserIDKey, claims.UserID)
		c.Request = c.Request.WithContext(
			logger.WithUser(c.Request.Context(), claims.UserID, string(claims.Role)))

		c.Next()
	}
}

func extractToken(c *gin.Context, cookieName string) (string, bool) {
	if cookieName != "" {
		if token, err := c.Cookie(cookieName); err == nil && token != "" {
			return token, true
		}
	}
	header := c.GetHeader(AuthHeaderKey)
	if !strings.HasPrefix(header, BearerPrefix) {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, BearerPrefix))
	return token, token != ""
}

func abortUnauthorized(c *gin.Context, cfg JWTMiddlewareConfig, err error, message string) {
	cfg.Logger.Debug("JWT authentication failed",
		zap.Error(err),
		zap.String("path", c.Request.URL.Path),
	)
	if errors.Is(err, auth.ErrExpiredToken) {
		message = "Not authorized, token expired"
	}
	c.AbortWithStatusJSON(http.StatusUnauthorized,
		dto.NewErrorResponse(dto.ErrCodeUnauthorized, message, getRequestIDFromContext(c)))
}

// GetJWTClaims retrieves JWT claims from gin.Context
func GetJWTClaims(c *gin.Context) *auth.Claims {
	if claims, exists := c.Get(JWTClaimsKey); exists {
		if jwtClaims, ok := claims.(*auth.Claims); ok {
			return jwtClaims
		}
	}
	return nil
}

// GetPrincipal returns the authenticated caller, if any
func GetPrincipal(c *gin.Context) (identity.Principal, bool) {
	if v, exists := c.Get(JWTPrincipalKey); exists {
		if p, ok := v.(identity.Principal); ok {
			return p, true
		}
	}
	return identity.Principal{}, false
}

// OptionalJWTAuth stores the caller when a valid token is presented and lets
// every request through
func OptionalJWTAuth(jwtService *auth.JWTService, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tokenString, ok := extractToken(c, cookieName); ok {
			if claims, err := jwtService.Validate(tokenString); err == nil {
				if principal, err := claims.Principal(); err == nil {
					c.Set(JWTClaimsKey, claims)
					c.Set(JWTPrincipalKey, principal)
				}
			}
		}
		c.Next()
	}
}
