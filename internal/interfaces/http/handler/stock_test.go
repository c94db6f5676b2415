package handler

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stockledger/backend/internal/application/ledger"
	"github.com/stockledger/backend/internal/domain/request"
	"github.com/stockledger/backend/internal/domain/stock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductHandler_CreateStartsEmpty(t *testing.T) {
	api := newTestAPI(t, stock.SourceProduct)

	status, env := api.do(t, http.MethodPost, "/api/v1/products", gin.H{
		"name": "Rice 5kg", "buying_price": 8.5, "selling_price": 10,
	})
	require.Equal(t, http.StatusCreated, status)
	product := decodeData[stock.Product](t, env)
	assert.Equal(t, "Rice 5kg", product.Name)
	assert.Zero(t, product.Quantity)

	status, env = api.do(t, http.MethodGet, "/api/v1/products/"+product.ID.String(), nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, product.ID, decodeData[stock.Product](t, env).ID)
}

func TestProductHandler_Errors(t *testing.T) {
	api := newTestAPI(t, stock.SourceProduct)

	tests := []struct {
		name   string
		method string
		path   string
		body   any
		status int
		code   string
	}{
		{"missing name", http.MethodPost, "/api/v1/products", gin.H{"buying_price": 1}, http.StatusBadRequest, "VALIDATION_ERROR"},
		{"negative price", http.MethodPost, "/api/v1/products", gin.H{"name": "x", "buying_price": -1}, http.StatusBadRequest, "VALIDATION_ERROR"},
		{"bad id", http.MethodGet, "/api/v1/products/not-a-uuid", nil, http.StatusBadRequest, "INVALID_INPUT"},
		{"unknown id", http.MethodGet, "/api/v1/products/" + uuid.NewString(), nil, http.StatusNotFound, "NOT_FOUND"},
		{"half range", http.MethodGet, "/api/v1/products?startDate=2024-01-01", nil, http.StatusBadRequest, "INVALID_INPUT"},
		{"inverted range", http.MethodGet, "/api/v1/products?startDate=2024-02-01&endDate=2024-01-01", nil, http.StatusBadRequest, "VALIDATION_ERROR"},
		{"zero quantity correction", http.MethodPut, "/api/v1/products/" + uuid.NewString(), gin.H{"quantity": 0}, http.StatusBadRequest, "VALIDATION_ERROR"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, env := api.do(t, tt.method, tt.path, tt.body)
			assert.Equal(t, tt.status, status)
			require.NotNil(t, env.Error)
			assert.Equal(t, tt.code, env.Error.Code)
		})
	}
}

func TestPurchaseHandler_CreateAndDelete(t *testing.T) {
	api := newTestAPI(t, stock.SourceProduct)
	product := api.seedProduct(t, "Beans", 0)

	status, env := api.do(t, http.MethodPost, "/api/v1/purchases", gin.H{
		"product_id": product.ID, "quantity": 20,
	})
	require.Equal(t, http.StatusCreated, status)
	purchase := decodeData[stock.Purchase](t, env)
	assert.Equal(t, "Beans", purchase.ProductName)
	assert.Equal(t, "8.5", purchase.BuyingPrice.String())

	_, env = api.do(t, http.MethodGet, "/api/v1/products/"+product.ID.String(), nil)
	assert.Equal(t, int64(20), decodeData[stock.Product](t, env).Quantity)

	status, env = api.do(t, http.MethodDelete, "/api/v1/purchases/"+purchase.ID.String(), nil)
	require.Equal(t, http.StatusOK, status)
	assert.True(t, decodeData[ledger.DeleteResult](t, env).StockAdjusted)

	status, _ = api.do(t, http.MethodGet, "/api/v1/purchases/"+purchase.ID.String(), nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestPurchaseHandler_UnknownProduct(t *testing.T) {
	api := newTestAPI(t, stock.SourceProduct)
	status, env := api.do(t, http.MethodPost, "/api/v1/purchases", gin.H{
		"product_id": uuid.NewString(), "quantity": 1,
	})
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "NOT_FOUND", env.Error.Code)
}

func TestSaleHandler_ProductSource(t *testing.T) {
	api := newTestAPI(t, stock.SourceProduct)
	product := api.seedProduct(t, "Sugar", 10)

	status, env := api.do(t, http.MethodPost, "/api/v1/sales", gin.H{
		"stock_id": product.ID, "quantity_sold": 4,
	})
	require.Equal(t, http.StatusCreated, status)
	result := decodeData[ledger.SaleResult](t, env)
	assert.Equal(t, int64(6), result.RemainingQuantity)
	assert.Equal(t, "Sugar", result.Sale.ProductName)
	assert.Equal(t, "Alice", result.Sale.UserName)
	assert.Equal(t, "10", result.Sale.SellingPrice.String())

	t.Run("overselling is refused", func(t *testing.T) {
		status, env := api.do(t, http.MethodPost, "/api/v1/sales", gin.H{
			"stock_id": product.ID, "quantity_sold": 7,
		})
		assert.Equal(t, http.StatusUnprocessableEntity, status)
		assert.Equal(t, "INSUFFICIENT_STOCK", env.Error.Code)
	})

	t.Run("edit moves the difference", func(t *testing.T) {
		status, env := api.do(t, http.MethodPut, "/api/v1/sales/"+result.Sale.ID.String(), gin.H{"quantity_sold": 2})
		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, int64(2), decodeData[stock.Sale](t, env).QuantitySold)

		_, env = api.do(t, http.MethodGet, "/api/v1/products/"+product.ID.String(), nil)
		assert.Equal(t, int64(8), decodeData[stock.Product](t, env).Quantity)
	})

	t.Run("listing by day", func(t *testing.T) {
		status, env := api.do(t, http.MethodGet, "/api/v1/sales/range", nil)
		require.Equal(t, http.StatusOK, status)
		assert.Len(t, decodeData[[]stock.Sale](t, env), 1)

		status, env = api.do(t, http.MethodGet, "/api/v1/sales?date=2000-01-01", nil)
		require.Equal(t, http.StatusOK, status)
		assert.Empty(t, decodeData[[]stock.Sale](t, env))

		status, env = api.do(t, http.MethodGet, "/api/v1/sales?date=", nil)
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "Date is required", env.Error.Message)
	})

	t.Run("delete returns the quantity", func(t *testing.T) {
		status, _ := api.do(t, http.MethodDelete, "/api/v1/sales/"+result.Sale.ID.String(), nil)
		require.Equal(t, http.StatusOK, status)

		_, env := api.do(t, http.MethodGet, "/api/v1/products/"+product.ID.String(), nil)
		assert.Equal(t, int64(10), decodeData[stock.Product](t, env).Quantity)
	})
}

func TestSaleHandler_DepletingSaleHidesProductUntilReversed(t *testing.T) {
	api := newTestAPI(t, stock.SourceProduct)
	product := api.seedProduct(t, "Salt", 3)

	status, env := api.do(t, http.MethodPost, "/api/v1/sales", gin.H{
		"stock_id": product.ID, "quantity_sold": 3,
	})
	require.Equal(t, http.StatusCreated, status)
	result := decodeData[ledger.SaleResult](t, env)
	assert.True(t, result.HolderDepleted)

	status, _ = api.do(t, http.MethodGet, "/api/v1/products/"+product.ID.String(), nil)
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = api.do(t, http.MethodDelete, "/api/v1/sales/"+result.Sale.ID.String(), nil)
	require.Equal(t, http.StatusOK, status)

	status, env = api.do(t, http.MethodGet, "/api/v1/products/"+product.ID.String(), nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, int64(3), decodeData[stock.Product](t, env).Quantity)
}

func TestShopHandler_TransferThenSell(t *testing.T) {
	api := newTestAPI(t, stock.SourceShop)
	product := api.seedProduct(t, "Flour", 10)

	status, env := api.do(t, http.MethodPost, "/api/v1/shop", gin.H{
		"product_id": product.ID, "batch_number": "B-1", "quantity": 4, "user_name": "Carol",
	})
	require.Equal(t, http.StatusCreated, status)
	transfer := decodeData[ledger.TransferResult](t, env)
	assert.Equal(t, int64(6), transfer.RemainingQuantity)
	assert.Equal(t, "Flour", transfer.Shop.ProductName)
	assert.Equal(t, "Carol", transfer.Shop.UserName)

	status, env = api.do(t, http.MethodPost, "/api/v1/sales", gin.H{
		"stock_id": transfer.Shop.ID, "quantity_sold": 1,
	})
	require.Equal(t, http.StatusCreated, status)
	sale := decodeData[ledger.SaleResult](t, env)
	assert.Equal(t, stock.SourceShop, sale.Sale.StockSource)
	assert.Equal(t, "B-1", sale.Sale.BatchNumber)
	assert.Equal(t, int64(3), sale.RemainingQuantity)

	t.Run("product ids are not shop stock", func(t *testing.T) {
		status, env := api.do(t, http.MethodPost, "/api/v1/sales", gin.H{
			"stock_id": product.ID, "quantity_sold": 1,
		})
		assert.Equal(t, http.StatusNotFound, status)
		assert.Equal(t, "NOT_FOUND", env.Error.Code)
	})

	t.Run("transfer beyond store stock", func(t *testing.T) {
		status, env := api.do(t, http.MethodPost, "/api/v1/shop", gin.H{
			"product_id": product.ID, "quantity": 100,
		})
		assert.Equal(t, http.StatusUnprocessableEntity, status)
		assert.Equal(t, "INSUFFICIENT_STOCK", env.Error.Code)
	})

	t.Run("list and update batch", func(t *testing.T) {
		status, env := api.do(t, http.MethodGet, "/api/v1/shop", nil)
		require.Equal(t, http.StatusOK, status)
		assert.Len(t, decodeData[[]stock.Shop](t, env), 1)

		status, env = api.do(t, http.MethodPut, "/api/v1/shop/"+transfer.Shop.ID.String(), gin.H{"selling_price": 12})
		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, "12", decodeData[stock.Shop](t, env).SellingPrice.String())
	})
}

func TestTransfer_MissingFieldsAreValidationErrors(t *testing.T) {
	api := newTestAPI(t, stock.SourceShop)
	status, env := api.do(t, http.MethodPost, "/api/v1/shop", gin.H{"quantity": 0})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
}

func TestRequestedProductHandler_Ownership(t *testing.T) {
	api := newTestAPI(t, stock.SourceProduct)

	status, env := api.do(t, http.MethodPost, "/api/v1/requested-products", gin.H{
		"product": "Oat milk", "description": "three customers asked",
	}, "X-Test-User", "bob")
	require.Equal(t, http.StatusCreated, status)
	rp := decodeData[request.RequestedProduct](t, env)
	assert.Equal(t, bobID, rp.UserID)
	assert.Equal(t, int64(1), rp.Quantity)

	path := "/api/v1/requested-products/" + rp.ID.String()

	// alice demoted to a plain user is neither owner nor manager
	status, env = api.do(t, http.MethodPut, path, gin.H{"quantity": 3}, roleHeader, "user")
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, "FORBIDDEN", env.Error.Code)

	status, env = api.do(t, http.MethodPut, path, gin.H{"quantity": 3})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, int64(3), decodeData[request.RequestedProduct](t, env).Quantity)

	status, _ = api.do(t, http.MethodDelete, path, nil, "X-Test-User", "bob")
	assert.Equal(t, http.StatusOK, status)

	status, _ = api.do(t, http.MethodDelete, path, nil, "X-Test-User", "bob")
	assert.Equal(t, http.StatusNotFound, status)
}
