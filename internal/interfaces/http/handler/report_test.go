package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	reportapp "github.com/stockledger/backend/internal/application/report"
	"github.com/stockledger/backend/internal/infrastructure/persistence"
	"github.com/stockledger/backend/internal/infrastructure/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newReportEngine(t *testing.T, opts ...reportapp.Option) *gin.Engine {
	t.Helper()
	db := newTestDB(t)
	svc := reportapp.NewService(
		persistence.NewGormSaleRepository(db),
		persistence.NewGormPurchaseRepository(db),
		zap.NewNop(),
		opts...,
	)
	h := NewReportHandler(svc)
	engine := gin.New()
	engine.GET("/reports/summary", h.Summary)
	engine.GET("/reports/summary.pdf", h.SummaryPDF)
	engine.POST("/reports/archive", h.Archive)
	return engine
}

func TestReportHandler_Summary(t *testing.T) {
	engine := newReportEngine(t)

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/reports/summary?startDate=2024-01-01&endDate=2024-01-31", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"sales_count":0`)

	w = httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/reports/summary?startDate=bad&endDate=2024-01-31", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReportHandler_SummaryPDF(t *testing.T) {
	engine := newReportEngine(t)

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/reports/summary.pdf?startDate=2024-03-01&endDate=2024-03-31", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "summary_20240301_20240331.pdf")
	assert.True(t, strings.HasPrefix(w.Body.String(), "%PDF"))
}

func TestReportHandler_Archive(t *testing.T) {
	t.Run("storage disabled", func(t *testing.T) {
		engine := newReportEngine(t)
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/reports/archive", nil))
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), "STORAGE_DISABLED")
	})

	t.Run("uploads to storage", func(t *testing.T) {
		store := storage.NewStubObjectStorage()
		engine := newReportEngine(t, reportapp.WithArchive(store, "reports"))
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/reports/archive?startDate=2024-03-01&endDate=2024-03-31", nil))
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		result := decodeData[reportapp.ArchiveResult](t, decodeEnvelope(t, w))
		assert.True(t, strings.HasPrefix(result.Key, "reports/summary_20240301_20240331_"))
		data, ok := store.Object(result.Key)
		require.True(t, ok)
		assert.NotEmpty(t, data)
	})
}
