package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stockledger/backend/internal/application/ledger"
)

// PurchaseHandler handles stock purchases
type PurchaseHandler struct {
	BaseHandler
	ledger *ledger.LedgerService
}

// NewPurchaseHandler creates a new PurchaseHandler
func NewPurchaseHandler(ledgerService *ledger.LedgerService) *PurchaseHandler {
	return &PurchaseHandler{ledger: ledgerService}
}

// RecordPurchaseRequest adds stock to a store product
// @Description Request body for recording a purchase
type RecordPurchaseRequest struct {
	ProductID string `json:"product_id" binding:"required,uuid" example:"550e8400-e29b-41d4-a716-446655440000"`
	Quantity  int64  `json:"quantity" binding:"required,gte=1" example:"20"`
	// BuyingPrice defaults to the product's current buying price
	BuyingPrice *decimal.Decimal `json:"buying_price" swaggertype:"number" example:"8.50"`
}

// Create godoc
// @Summary      Record a purchase
// @Description  Add quantity to a store product and log the purchase
// @Tags         purchases
// @Accept       json
// @Produce      json
// @Param        request body RecordPurchaseRequest true "Purchase"
// @Success      201 {object} APIResponse[stock.Purchase]
// @Failure      400 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /purchases [post]
func (h *PurchaseHandler) Create(c *gin.Context) {
	var req RecordPurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	purchase, err := h.ledger.RecordPurchase(c.Request.Context(), ledger.RecordPurchaseRequest{
		ProductID:   uuid.MustParse(req.ProductID),
		Quantity:    req.Quantity,
		BuyingPrice: req.BuyingPrice,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, purchase)
}

// List godoc
// @Summary      List purchases
// @Tags         purchases
// @Produce      json
// @Param        startDate query string false "First day (YYYY-MM-DD)"
// @Param        endDate   query string false "Last day (YYYY-MM-DD)"
// @Success      200 {object} APIResponse[[]stock.Purchase]
// @Failure      400 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /purchases [get]
func (h *PurchaseHandler) List(c *gin.Context) {
	rng, ok := h.queryRange(c, "startDate", "endDate")
	if !ok {
		return
	}
	purchases, err := h.ledger.ListPurchases(c.Request.Context(), listFilter(rng))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, purchases)
}

// Get godoc
// @Summary      Get a purchase
// @Tags         purchases
// @Produce      json
// @Param        id path string true "Purchase ID" format(uuid)
// @Success      200 {object} APIResponse[stock.Purchase]
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /purchases/{id} [get]
func (h *PurchaseHandler) Get(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	purchase, err := h.ledger.GetPurchase(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, purchase)
}

// Delete godoc
// @Summary      Delete a purchase
// @Description  Remove a purchase and take its quantity back out of the product when it still exists
// @Tags         purchases
// @Produce      json
// @Param        id path string true "Purchase ID" format(uuid)
// @Success      200 {object} APIResponse[ledger.DeleteResult]
// @Failure      404 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /purchases/{id} [delete]
func (h *PurchaseHandler) Delete(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	result, err := h.ledger.DeletePurchase(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}
