package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stockledger/backend/internal/application/ledger"
	"github.com/stockledger/backend/internal/domain/shared"
	"github.com/stockledger/backend/internal/interfaces/http/dto"
)

// SaleHandler handles sales
type SaleHandler struct {
	BaseHandler
	ledger *ledger.LedgerService
	now    func() time.Time
}

// NewSaleHandler creates a new SaleHandler
func NewSaleHandler(ledgerService *ledger.LedgerService) *SaleHandler {
	return &SaleHandler{ledger: ledgerService, now: time.Now}
}

// RecordSaleRequest sells from the configured stock holder
// @Description Request body for recording a sale
type RecordSaleRequest struct {
	// StockID is a product or shop batch ID depending on the server's stock source
	StockID      string `json:"stock_id" binding:"required,uuid" example:"550e8400-e29b-41d4-a716-446655440000"`
	QuantitySold int64  `json:"quantity_sold" binding:"required,gte=1" example:"2"`
	// UserName defaults to the caller's name
	UserName string `json:"user_name" binding:"max=200" example:"Alice"`
}

// EditSaleRequest replaces the quantity sold
// @Description Request body for editing a sale
type EditSaleRequest struct {
	QuantitySold int64 `json:"quantity_sold" binding:"required,gte=1" example:"3"`
}

// Create godoc
// @Summary      Record a sale
// @Description  Sell from the configured stock holder, snapshotting its name and price
// @Tags         sales
// @Accept       json
// @Produce      json
// @Param        request body RecordSaleRequest true "Sale"
// @Success      201 {object} APIResponse[ledger.SaleResult]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /sales [post]
func (h *SaleHandler) Create(c *gin.Context) {
	caller, ok := h.principal(c)
	if !ok {
		return
	}
	var req RecordSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	userName := req.UserName
	if userName == "" {
		userName = caller.Name
	}

	result, err := h.ledger.RecordSale(c.Request.Context(), ledger.RecordSaleRequest{
		StockID:      uuid.MustParse(req.StockID),
		QuantitySold: req.QuantitySold,
		UserName:     userName,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, result)
}

// List godoc
// @Summary      List sales
// @Description  All sales, the sales of one day (date), or of a day range (startDate and endDate)
// @Tags         sales
// @Produce      json
// @Param        date      query string false "Single day (YYYY-MM-DD)"
// @Param        startDate query string false "First day (YYYY-MM-DD)"
// @Param        endDate   query string false "Last day (YYYY-MM-DD)"
// @Success      200 {object} APIResponse[[]stock.Sale]
// @Failure      400 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /sales [get]
func (h *SaleHandler) List(c *gin.Context) {
	var rng *shared.DateRange
	if date, ok := c.GetQuery("date"); ok {
		if date == "" {
			h.BadRequest(c, "Date is required")
			return
		}
		day, err := parseDay(date)
		if err != nil {
			h.BadRequest(c, "Invalid date, expected YYYY-MM-DD")
			return
		}
		single := shared.SingleDay(day)
		rng = &single
	} else {
		var ok bool
		if rng, ok = h.queryRange(c, "startDate", "endDate"); !ok {
			return
		}
	}
	h.list(c, rng)
}

// ListRange godoc
// @Summary      List sales in a day range
// @Description  Sales between startDate and endDate; both default to today
// @Tags         sales
// @Produce      json
// @Param        startDate query string false "First day (YYYY-MM-DD)"
// @Param        endDate   query string false "Last day (YYYY-MM-DD)"
// @Success      200 {object} APIResponse[[]stock.Sale]
// @Failure      400 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /sales/range [get]
func (h *SaleHandler) ListRange(c *gin.Context) {
	from, to := h.now(), h.now()
	var err error
	if v := c.Query("startDate"); v != "" {
		if from, err = parseDay(v); err != nil {
			h.BadRequest(c, "Invalid startDate, expected YYYY-MM-DD")
			return
		}
	}
	if v := c.Query("endDate"); v != "" {
		if to, err = parseDay(v); err != nil {
			h.BadRequest(c, "Invalid endDate, expected YYYY-MM-DD")
			return
		}
	}
	rng := shared.DayRange(from, to)
	if !rng.Valid() {
		h.Error(c, dto.ErrCodeValidation, "Start date must not be after end date")
		return
	}
	h.list(c, &rng)
}

func (h *SaleHandler) list(c *gin.Context, rng *shared.DateRange) {
	sales, err := h.ledger.ListSales(c.Request.Context(), listFilter(rng))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, sales)
}

// Get godoc
// @Summary      Get a sale
// @Tags         sales
// @Produce      json
// @Param        id path string true "Sale ID" format(uuid)
// @Success      200 {object} APIResponse[stock.Sale]
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /sales/{id} [get]
func (h *SaleHandler) Get(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	sale, err := h.ledger.GetSale(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, sale)
}

// Update godoc
// @Summary      Edit a sale
// @Description  Change the quantity sold; the difference moves to or from the stock holder
// @Tags         sales
// @Accept       json
// @Produce      json
// @Param        id path string true "Sale ID" format(uuid)
// @Param        request body EditSaleRequest true "New quantity"
// @Success      200 {object} APIResponse[stock.Sale]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /sales/{id} [put]
func (h *SaleHandler) Update(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	var req EditSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	sale, err := h.ledger.EditSale(c.Request.Context(), id, req.QuantitySold)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, sale)
}

// Delete godoc
// @Summary      Delete a sale
// @Description  Remove a sale and return its quantity to the stock holder, restoring a depleted one
// @Tags         sales
// @Produce      json
// @Param        id path string true "Sale ID" format(uuid)
// @Success      200 {object} APIResponse[ledger.DeleteResult]
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /sales/{id} [delete]
func (h *SaleHandler) Delete(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	result, err := h.ledger.DeleteSale(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}
