package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	stockapp "github.com/stockledger/backend/internal/application/stock"
)

// ProductHandler handles store products
type ProductHandler struct {
	BaseHandler
	catalog *stockapp.CatalogService
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(catalog *stockapp.CatalogService) *ProductHandler {
	return &ProductHandler{catalog: catalog}
}

// CreateProductRequest represents a request to create a new product. Stock
// only arrives through purchases, so a new product always starts at zero.
// @Description Request body for creating a new product
type CreateProductRequest struct {
	Name         string          `json:"name" binding:"required,max=200" example:"Rice 5kg"`
	BuyingPrice  decimal.Decimal `json:"buying_price" swaggertype:"number" example:"8.50"`
	SellingPrice decimal.Decimal `json:"selling_price" swaggertype:"number" example:"10.00"`
}

// UpdateProductRequest represents a request to update a product; omitted
// fields keep their value
// @Description Request body for updating a product
type UpdateProductRequest struct {
	Name         *string          `json:"name" binding:"omitempty,max=200" example:"Rice 10kg"`
	Quantity     *int64           `json:"quantity" binding:"omitempty,gte=1" example:"12"`
	BuyingPrice  *decimal.Decimal `json:"buying_price" swaggertype:"number" example:"16.00"`
	SellingPrice *decimal.Decimal `json:"selling_price" swaggertype:"number" example:"19.50"`
}

// Create godoc
// @Summary      Create a product
// @Description  Create an empty store product; quantity is always 0
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        request body CreateProductRequest true "Product"
// @Success      201 {object} APIResponse[stock.Product]
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /products [post]
func (h *ProductHandler) Create(c *gin.Context) {
	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	product, err := h.catalog.CreateProduct(c.Request.Context(), stockapp.CreateProductRequest{
		Name:         req.Name,
		BuyingPrice:  req.BuyingPrice,
		SellingPrice: req.SellingPrice,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, product)
}

// List godoc
// @Summary      List products
// @Description  List products in the store, optionally limited to those added within a day range
// @Tags         products
// @Produce      json
// @Param        startDate query string false "First day (YYYY-MM-DD)"
// @Param        endDate   query string false "Last day (YYYY-MM-DD)"
// @Success      200 {object} APIResponse[[]stock.Product]
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /products [get]
func (h *ProductHandler) List(c *gin.Context) {
	rng, ok := h.queryRange(c, "startDate", "endDate")
	if !ok {
		return
	}
	products, err := h.catalog.ListProducts(c.Request.Context(), listFilter(rng))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, products)
}

// Get godoc
// @Summary      Get a product
// @Tags         products
// @Produce      json
// @Param        id path string true "Product ID" format(uuid)
// @Success      200 {object} APIResponse[stock.Product]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /products/{id} [get]
func (h *ProductHandler) Get(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	product, err := h.catalog.GetProduct(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, product)
}

// Update godoc
// @Summary      Update a product
// @Description  Change name, prices or correct the quantity; omitted fields keep their value
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id path string true "Product ID" format(uuid)
// @Param        request body UpdateProductRequest true "Changes"
// @Success      200 {object} APIResponse[stock.Product]
// @Failure      400 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /products/{id} [put]
func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	var req UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	product, err := h.catalog.UpdateProduct(c.Request.Context(), id, stockapp.UpdateProductRequest{
		Name:         req.Name,
		Quantity:     req.Quantity,
		BuyingPrice:  req.BuyingPrice,
		SellingPrice: req.SellingPrice,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, product)
}

// Delete godoc
// @Summary      Delete a product
// @Description  Permanently remove a product; sales and purchases keep their snapshots
// @Tags         products
// @Produce      json
// @Param        id path string true "Product ID" format(uuid)
// @Success      200 {object} APIResponse[MessageResponse]
// @Failure      403 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /products/{id} [delete]
func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	if err := h.catalog.DeleteProduct(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, MessageResponse{Message: "Product removed"})
}
