package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stockledger/backend/internal/domain/identity"
	"github.com/stockledger/backend/internal/domain/shared"
	"github.com/stockledger/backend/internal/infrastructure/logger"
	"github.com/stockledger/backend/internal/interfaces/http/dto"
	"github.com/stockledger/backend/internal/interfaces/http/middleware"
	"go.uber.org/zap"
)

// dateLayout is the day format accepted by every date query parameter
const dateLayout = "2006-01-02"

// BaseHandler provides common handler utilities
type BaseHandler struct{}

func getRequestID(c *gin.Context) string {
	return c.GetString(logger.GinRequestIDKey)
}

// Success sends a success response
func (h *BaseHandler) Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, dto.NewSuccessResponse(data))
}

// Created sends a 201 created response
func (h *BaseHandler) Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, dto.NewSuccessResponse(data))
}

// Error sends an error response with the status derived from code
func (h *BaseHandler) Error(c *gin.Context, code, message string) {
	c.JSON(dto.GetHTTPStatus(code), dto.NewErrorResponse(code, message, getRequestID(c)))
}

// BadRequest sends a 400 INVALID_INPUT response
func (h *BaseHandler) BadRequest(c *gin.Context, message string) {
	h.Error(c, dto.ErrCodeInvalidInput, message)
}

// BindError answers a failed ShouldBind* call
func (h *BaseHandler) BindError(c *gin.Context, err error) {
	middleware.HandleValidationError(c, err)
}

// HandleError converts domain errors to their HTTP status; anything else is
// logged and reported as INTERNAL_ERROR.
func (h *BaseHandler) HandleError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		h.Error(c, domainErr.Code, domainErr.Message)
		return
	}

	_ = c.Error(err)
	logger.GetGinLogger(c).Error("Unhandled error", zap.Error(err))
	h.Error(c, dto.ErrCodeInternal, "An unexpected error occurred")
}

// principal returns the authenticated caller or answers 401
func (h *BaseHandler) principal(c *gin.Context) (identity.Principal, bool) {
	p, ok := middleware.GetPrincipal(c)
	if !ok {
		h.Error(c, dto.ErrCodeUnauthorized, "Not authorized, no token")
	}
	return p, ok
}

// pathID parses the :id parameter or answers 400
func (h *BaseHandler) pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid ID format")
		return uuid.Nil, false
	}
	return id, true
}

// parseDay parses a YYYY-MM-DD value as a day in the server's time zone
func parseDay(value string) (time.Time, error) {
	return time.ParseInLocation(dateLayout, value, time.Local)
}

// queryRange reads an optional inclusive day range from two query
// parameters. Both must be given together; none yields a nil range.
func (h *BaseHandler) queryRange(c *gin.Context, startKey, endKey string) (*shared.DateRange, bool) {
	start, end := c.Query(startKey), c.Query(endKey)
	if start == "" && end == "" {
		return nil, true
	}
	if start == "" || end == "" {
		h.BadRequest(c, "Both "+startKey+" and "+endKey+" are required")
		return nil, false
	}
	from, err := parseDay(start)
	if err != nil {
		h.BadRequest(c, "Invalid "+startKey+", expected YYYY-MM-DD")
		return nil, false
	}
	to, err := parseDay(end)
	if err != nil {
		h.BadRequest(c, "Invalid "+endKey+", expected YYYY-MM-DD")
		return nil, false
	}
	rng := shared.DayRange(from, to)
	if !rng.Valid() {
		h.Error(c, dto.ErrCodeValidation, "Start date must not be after end date")
		return nil, false
	}
	return &rng, true
}

// listFilter returns the default filter narrowed to rng when present
func listFilter(rng *shared.DateRange) shared.Filter {
	filter := shared.DefaultFilter()
	if rng != nil {
		filter = filter.WithRange(*rng)
	}
	return filter
}
