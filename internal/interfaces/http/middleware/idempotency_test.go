package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stockledger/backend/internal/domain/identity"
	"github.com/stockledger/backend/internal/infrastructure/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingStore struct{}

func (failingStore) Claim(context.Context, string, time.Duration) (bool, error) {
	return false, errors.New("redis down")
}
func (failingStore) Release(context.Context, string) error { return nil }
func (failingStore) Close() error                          { return nil }

func newIdempotentRouter(t *testing.T, cfg IdempotencyConfig, status *int, calls *int) *gin.Engine {
	t.Helper()
	userID := uuid.New()
	router := gin.New()
	router.Use(RequestID(), func(c *gin.Context) {
		c.Set(JWTPrincipalKey, identity.Principal{UserID: userID, Role: identity.RoleUser})
		c.Next()
	})
	router.POST("/sales", Idempotency(cfg), func(c *gin.Context) {
		*calls++
		c.Status(*status)
	})
	router.POST("/purchases", Idempotency(cfg), func(c *gin.Context) {
		*calls++
		c.Status(*status)
	})
	return router
}

func postWithKey(router *gin.Engine, path, key string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, nil)
	if key != "" {
		req.Header.Set(IdempotencyKeyHeader, key)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestIdempotency(t *testing.T) {
	t.Run("repeated key is rejected", func(t *testing.T) {
		store := cache.NewInMemoryIdempotencyStore()
		defer store.Close()
		status, calls := http.StatusCreated, 0
		router := newIdempotentRouter(t, IdempotencyConfig{Store: store}, &status, &calls)

		assert.Equal(t, http.StatusCreated, postWithKey(router, "/sales", "k-1").Code)
		w := postWithKey(router, "/sales", "k-1")
		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, "DUPLICATE_REQUEST", decodeError(t, w).Error.Code)
		assert.Equal(t, 1, calls)
	})

	t.Run("keys are scoped to the route", func(t *testing.T) {
		store := cache.NewInMemoryIdempotencyStore()
		defer store.Close()
		status, calls := http.StatusCreated, 0
		router := newIdempotentRouter(t, IdempotencyConfig{Store: store}, &status, &calls)

		assert.Equal(t, http.StatusCreated, postWithKey(router, "/sales", "k-1").Code)
		assert.Equal(t, http.StatusCreated, postWithKey(router, "/purchases", "k-1").Code)
		assert.Equal(t, 2, calls)
	})

	t.Run("failed attempt releases the key", func(t *testing.T) {
		store := cache.NewInMemoryIdempotencyStore()
		defer store.Close()
		status, calls := http.StatusUnprocessableEntity, 0
		router := newIdempotentRouter(t, IdempotencyConfig{Store: store}, &status, &calls)

		assert.Equal(t, http.StatusUnprocessableEntity, postWithKey(router, "/sales", "k-2").Code)
		status = http.StatusCreated
		assert.Equal(t, http.StatusCreated, postWithKey(router, "/sales", "k-2").Code)
		assert.Equal(t, 2, calls)
	})

	t.Run("requests without a key pass through", func(t *testing.T) {
		store := cache.NewInMemoryIdempotencyStore()
		defer store.Close()
		status, calls := http.StatusCreated, 0
		router := newIdempotentRouter(t, IdempotencyConfig{Store: store}, &status, &calls)

		postWithKey(router, "/sales", "")
		postWithKey(router, "/sales", "")
		assert.Equal(t, 2, calls)
		assert.Equal(t, 0, store.Size())
	})

	t.Run("oversized key is refused", func(t *testing.T) {
		store := cache.NewInMemoryIdempotencyStore()
		defer store.Close()
		status, calls := http.StatusCreated, 0
		router := newIdempotentRouter(t, IdempotencyConfig{Store: store}, &status, &calls)

		w := postWithKey(router, "/sales", strings.Repeat("x", 200))
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, 0, calls)
	})

	t.Run("store failure does not block writes", func(t *testing.T) {
		status, calls := http.StatusCreated, 0
		router := newIdempotentRouter(t, IdempotencyConfig{Store: failingStore{}}, &status, &calls)

		require.Equal(t, http.StatusCreated, postWithKey(router, "/sales", "k-3").Code)
		require.Equal(t, http.StatusCreated, postWithKey(router, "/sales", "k-3").Code)
		assert.Equal(t, 2, calls)
	})
}
