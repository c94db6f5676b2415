package handler

import (
	"github.com/gin-gonic/gin"
	requestapp "github.com/stockledger/backend/internal/application/request"
)

// RequestedProductHandler handles products customers asked for
type RequestedProductHandler struct {
	BaseHandler
	requests *requestapp.Service
}

// NewRequestedProductHandler creates a new RequestedProductHandler
func NewRequestedProductHandler(requests *requestapp.Service) *RequestedProductHandler {
	return &RequestedProductHandler{requests: requests}
}

// CreateRequestedProductRequest records a product request
// @Description Request body for a product request
type CreateRequestedProductRequest struct {
	Product     string `json:"product" binding:"required,max=200" example:"Oat milk"`
	Description string `json:"description" binding:"required" example:"Asked for by three customers this week"`
	// Quantity defaults to 1
	Quantity int64 `json:"quantity" binding:"omitempty,gte=1" example:"2"`
}

// UpdateRequestedProductRequest carries optional changes
// @Description Request body for updating a product request
type UpdateRequestedProductRequest struct {
	Product     *string `json:"product" binding:"omitempty,max=200" example:"Oat milk 1L"`
	Description *string `json:"description" example:"Now five customers"`
	Quantity    *int64  `json:"quantity" binding:"omitempty,gte=1" example:"5"`
}

// Create godoc
// @Summary      Request a product
// @Tags         requested-products
// @Accept       json
// @Produce      json
// @Param        request body CreateRequestedProductRequest true "Request"
// @Success      201 {object} APIResponse[request.RequestedProduct]
// @Failure      400 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /requested-products [post]
func (h *RequestedProductHandler) Create(c *gin.Context) {
	caller, ok := h.principal(c)
	if !ok {
		return
	}
	var req CreateRequestedProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	rp, err := h.requests.Create(c.Request.Context(), caller, requestapp.CreateRequest{
		Product:     req.Product,
		Description: req.Description,
		Quantity:    req.Quantity,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, rp)
}

// List godoc
// @Summary      List product requests
// @Tags         requested-products
// @Produce      json
// @Success      200 {object} APIResponse[[]request.RequestedProduct]
// @Security     BearerAuth
// @Router       /requested-products [get]
func (h *RequestedProductHandler) List(c *gin.Context) {
	list, err := h.requests.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, list)
}

// Update godoc
// @Summary      Update a product request
// @Description  Only the creator or a request manager may change a request
// @Tags         requested-products
// @Accept       json
// @Produce      json
// @Param        id path string true "Request ID" format(uuid)
// @Param        request body UpdateRequestedProductRequest true "Changes"
// @Success      200 {object} APIResponse[request.RequestedProduct]
// @Failure      400 {object} ErrorResponse
// @Failure      403 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /requested-products/{id} [put]
func (h *RequestedProductHandler) Update(c *gin.Context) {
	caller, ok := h.principal(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	var req UpdateRequestedProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	rp, err := h.requests.Update(c.Request.Context(), caller, id, requestapp.UpdateRequest{
		Product:     req.Product,
		Description: req.Description,
		Quantity:    req.Quantity,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, rp)
}

// Delete godoc
// @Summary      Delete a product request
// @Description  Only the creator or a request manager may delete a request
// @Tags         requested-products
// @Produce      json
// @Param        id path string true "Request ID" format(uuid)
// @Success      200 {object} APIResponse[MessageResponse]
// @Failure      403 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /requested-products/{id} [delete]
func (h *RequestedProductHandler) Delete(c *gin.Context) {
	caller, ok := h.principal(c)
	if !ok {
		return
	}
	id, ok := h.pathID(c)
	if !ok {
		return
	}
	if err := h.requests.Delete(c.Request.Context(), caller, id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, MessageResponse{Message: "Requested product removed"})
}
