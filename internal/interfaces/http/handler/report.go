package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	reportapp "github.com/stockledger/backend/internal/application/report"
)

// ReportHandler serves period summaries
type ReportHandler struct {
	BaseHandler
	reports *reportapp.Service
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(reports *reportapp.Service) *ReportHandler {
	return &ReportHandler{reports: reports}
}

// Summary godoc
// @Summary      Sales and purchases summary
// @Description  Totals, counts and gross for a day range; defaults to today
// @Tags         reports
// @Produce      json
// @Param        startDate query string false "First day (YYYY-MM-DD)"
// @Param        endDate   query string false "Last day (YYYY-MM-DD)"
// @Success      200 {object} APIResponse[report.Summary]
// @Failure      400 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /reports/summary [get]
func (h *ReportHandler) Summary(c *gin.Context) {
	rng, ok := h.queryRange(c, "startDate", "endDate")
	if !ok {
		return
	}
	summary, err := h.reports.Summary(c.Request.Context(), rng)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, summary)
}

// SummaryPDF godoc
// @Summary      Summary as PDF
// @Tags         reports
// @Produce      application/pdf
// @Param        startDate query string false "First day (YYYY-MM-DD)"
// @Param        endDate   query string false "Last day (YYYY-MM-DD)"
// @Success      200 {file} file
// @Failure      400 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /reports/summary.pdf [get]
func (h *ReportHandler) SummaryPDF(c *gin.Context) {
	rng, ok := h.queryRange(c, "startDate", "endDate")
	if !ok {
		return
	}
	data, summary, err := h.reports.SummaryPDF(c.Request.Context(), rng)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	filename := fmt.Sprintf("summary_%s_%s.pdf", summary.From.Format("20060102"), summary.To.Format("20060102"))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", data)
}

// Archive godoc
// @Summary      Archive the summary
// @Description  Render the summary PDF, store it in object storage and return a presigned download link
// @Tags         reports
// @Produce      json
// @Param        startDate query string false "First day (YYYY-MM-DD)"
// @Param        endDate   query string false "Last day (YYYY-MM-DD)"
// @Success      201 {object} APIResponse[report.ArchiveResult]
// @Failure      400 {object} ErrorResponse
// @Failure      503 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /reports/archive [post]
func (h *ReportHandler) Archive(c *gin.Context) {
	rng, ok := h.queryRange(c, "startDate", "endDate")
	if !ok {
		return
	}
	result, err := h.reports.Archive(c.Request.Context(), rng)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, result)
}
