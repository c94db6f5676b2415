package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/stockledger/backend/internal/infrastructure/telemetry"
)

// ProfilingConfig holds configuration for the profiling middleware.
type ProfilingConfig struct {
	Enabled bool
	// SkipPathPrefixes are path prefixes that don't need profiling labels.
	SkipPathPrefixes []string
}

// Profiling tags CPU samples taken while a request runs with its route,
// method and the caller's role. Place it after JWTAuth so the role is known.
func Profiling(cfg ProfilingConfig) gin.HandlerFunc {
	if !cfg.Enabled {
		return func(c *gin.Context) {
			c.Next()
		}
	}

	return func(c *gin.Context) {
		path := c.Request.URL.Path
		for _, prefix := range cfg.SkipPathPrefixes {
			if strings.HasPrefix(path, prefix) {
				c.Next()
				return
			}
		}

		var role string
		if p, ok := GetPrincipal(c); ok {
			role = string(p.Role)
		}
		labels := telemetry.HTTPRequestLabels(c.FullPath(), c.Request.Method, role)

		telemetry.WithProfilingLabels(c.Request.Context(), labels, func(ctx context.Context) {
			c.Request = c.Request.WithContext(ctx)
			c.Next()
		})
	}
}
