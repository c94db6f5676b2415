package stock

import (
	"github.com/shopspring/decimal"
)

// CreateProductRequest creates an empty product; stock arrives through purchases
type CreateProductRequest struct {
	Name         string
	BuyingPrice  decimal.Decimal
	SellingPrice decimal.Decimal
}

// UpdateProductRequest carries optional changes. A quantity correction must be at least 1.
type UpdateProductRequest struct {
	Name         *string
	Quantity     *int64
	BuyingPrice  *decimal.Decimal
	SellingPrice *decimal.Decimal
}

// UpdateShopRequest carries optional changes to a shop batch
type UpdateShopRequest struct {
	ProductName  *string
	BatchNumber  *string
	Quantity     *int64
	SellingPrice *decimal.Decimal
	UserName     *string
}
