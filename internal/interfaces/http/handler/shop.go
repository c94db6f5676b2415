package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stockledger/backend/internal/application/ledger"
	stockapp "github.com/stockledger/backend/internal/application/stock"
)

// ShopHandler handles shop batches: transfers in from the store, listing
// and corrections
type ShopHandler struct {
	BaseHandler
	catalog *stockapp.CatalogService
	ledger  *ledger.LedgerService
}

// NewShopHandler creates a new ShopHandler
func NewShopHandler(catalog *stockapp.CatalogService, ledgerService *ledger.LedgerService) *ShopHandler {
	return &ShopHandler{catalog: catalog, ledger: ledgerService}
}

// TransferRequest moves stock from a store product into a new shop batch
// @Description Request body for moving stock to the shop
type TransferRequest struct {
	ProductID   string `json:"product_id" binding:"required,uuid" example:"550e8400-e29b-41d4-a716-446655440000"`
	BatchNumber string `json:"batch_number" binding:"max=100" example:"B-2024-03"`
	Quantity    int64  `json:"quantity" binding:"required,gte=1" example:"5"`
	// UserName defaults to the caller's name
	UserName string `json:"user_name" binding:"max=200" example:"Alice"`
}

// UpdateShopRequest carries optional changes to a shop batch
// @Description Request body for updating a shop batch
type UpdateShopRequest struct {
	ProductName  *string          `json:"product_name" binding:"omitempty,max=200" example:"Rice 5kg"`
	BatchNumber  *string          `json:"batch_number" binding:"omitempty,max=100" example:"B-2024-04"`
	Quantity     *int64           `json:"quantity" binding:"omitempty,gte=1" example:"3"`
	SellingPrice *decimal.Decimal `json:"selling_price" swaggertype:"number" example:"11.00"`
	UserName     *string          `json:"user_name" binding:"omitempty,max=200" example:"Bob"`
}

// Transfer godoc
// @Summary      Move stock to the shop
// @Description  Deduct quantity from a store product and create a shop batch carrying its name and selling price
// @Tags         shop
// @Accept       json
// @Produce      json
// @Param        request body TransferRequest true "Transfer"
// @Success      201 {object} APIResponse[ledger.TransferResult]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /shop [post]
func (h *ShopHandler) Transfer(c *gin.Context) {
	caller, ok := h.principal(c)
	if !ok {
		return
	}
	var req TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	userName := req.UserName
	if userName == "" {
		userName = caller.Name
	}

	result, err := h.ledger.TransferToShop(c.Request.Context(), ledger.TransferRequest{
		ProductID:   uuid.MustParse(req.ProductID),
		BatchNumber: req.BatchNumber,
		Quantity:    req.Quantity,
		UserName:    userName,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, result)
}

// List godoc
// @Summary      List shop batches
// @Description  List live shop batches, optionally limited to those added within a day range
// @Tags         shop
// @Produce      json
// @Param        start query string false "First day (YYYY-MM-DD)"
// @Param        end   query string false "Last day (YYYY-MM-DD)"
// @Success      200 {object} APIResponse[[]stock.Shop]
// @Failure      400 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /shop [get]
func (h *ShopHandler) List(c *gin.Context) {
	rng, ok := h.queryRange(c, "start", "end")
	if !ok {
		return
	}
	shops, err := h.catalog.ListShops(c.Request.Context(), listFilter(rng))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, shops)
}

// Update godoc
// @Summary      Update a shop batch
// @Tags         shop
// @Accept       json
// @Produce      json
// @Param        id path string true "Shop batch ID" format(uuid)
// @Param        request body UpdateShopRequest true "Changes"
// @Success      200 {object} APIResponse[stock.Shop]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /shop/{id} [put]
func (h *ShopHandler) Update(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	var req UpdateShopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	shop, err := h.catalog.UpdateShop(c.Request.Context(), id, stockapp.UpdateShopRequest{
		ProductName:  req.ProductName,
		BatchNumber:  req.BatchNumber,
		Quantity:     req.Quantity,
		SellingPrice: req.SellingPrice,
		UserName:     req.UserName,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, shop)
}

// Delete godoc
// @Summary      Delete a shop batch
// @Tags         shop
// @Produce      json
// @Param        id path string true "Shop batch ID" format(uuid)
// @Success      200 {object} APIResponse[MessageResponse]
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /shop/{id} [delete]
func (h *ShopHandler) Delete(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	if err := h.catalog.DeleteShop(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, MessageResponse{Message: "Product removed"})
}
