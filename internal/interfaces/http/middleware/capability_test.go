package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stockledger/backend/internal/domain/identity"
	"github.com/stretchr/testify/assert"
)

func newCapabilityRouter(p *identity.Principal, c identity.Capability) *gin.Engine {
	router := gin.New()
	router.GET("/guarded", func(ctx *gin.Context) {
		if p != nil {
			ctx.Set(JWTPrincipalKey, *p)
		}
		ctx.Next()
	}, RequireCapability(c), func(ctx *gin.Context) {
		ctx.Status(http.StatusOK)
	})
	return router
}

func TestRequireCapability(t *testing.T) {
	tests := []struct {
		name       string
		role       *identity.Role
		capability identity.Capability
		want       int
	}{
		{"no principal", nil, identity.CapStockRead, http.StatusUnauthorized},
		{"user reads stock", rolePtr(identity.RoleUser), identity.CapStockRead, http.StatusOK},
		{"user cannot purchase", rolePtr(identity.RoleUser), identity.CapLedgerPurchase, http.StatusForbidden},
		{"admin purchases", rolePtr(identity.RoleAdmin), identity.CapLedgerPurchase, http.StatusOK},
		{"admin cannot delete users", rolePtr(identity.RoleAdmin), identity.CapUsersDelete, http.StatusForbidden},
		{"super admin deletes users", rolePtr(identity.RoleSuperAdmin), identity.CapUsersDelete, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p *identity.Principal
			if tt.role != nil {
				p = &identity.Principal{UserID: uuid.New(), Name: "Bob", Role: *tt.role}
			}
			w := httptest.NewRecorder()
			newCapabilityRouter(p, tt.capability).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/guarded", nil))
			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func rolePtr(r identity.Role) *identity.Role {
	return &r
}
