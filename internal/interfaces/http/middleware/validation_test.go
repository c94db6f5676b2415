package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Name     string `json:"name" binding:"required"`
	Batch    string `json:"batch_number" binding:"max=3"`
	Quantity int64  `json:"quantity" binding:"gte=1"`
	Day      string `json:"day" binding:"omitempty,datetime=2006-01-02"`
}

func TestHandleValidationError(t *testing.T) {
	SetupValidator()

	router := gin.New()
	router.Use(RequestID())
	router.POST("/sample", func(c *gin.Context) {
		var req sampleRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			HandleValidationError(c, err)
			return
		}
		c.Status(http.StatusOK)
	})

	t.Run("field errors", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/sample",
			strings.NewReader(`{"quantity":0,"day":"15/03/2024","batch_number":"B-100"}`)))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		resp := decodeError(t, w)
		assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)
		require.Len(t, resp.Error.Details, 4)

		byField := map[string]string{}
		for _, d := range resp.Error.Details {
			byField[d.Field] = d.Message
		}
		assert.Equal(t, "This field is required", byField["name"])
		assert.Equal(t, "Must be at least 1", byField["quantity"])
		assert.Equal(t, "Must be a date in the format 2006-01-02", byField["day"])
		assert.Equal(t, "Must be at most 3 characters", byField["batch_number"])
	})

	t.Run("malformed json", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/sample", strings.NewReader(`{`)))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Empty(t, decodeError(t, w).Error.Details)
	})
}
