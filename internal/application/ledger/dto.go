package ledger

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stockledger/backend/internal/domain/stock"
)

// RecordPurchaseRequest is the input of RecordPurchase. A nil BuyingPrice takes
// the product's current buying price.
type RecordPurchaseRequest struct {
	ProductID   uuid.UUID
	Quantity    int64
	BuyingPrice *decimal.Decimal
}

// TransferRequest moves quantity from a product into a new shop batch
type TransferRequest struct {
	ProductID   uuid.UUID
	BatchNumber string
	Quantity    int64
	UserName    string
}

// TransferResult reports the shop batch created and what is left in the store
type TransferResult struct {
	Shop              *stock.Shop `json:"shop"`
	RemainingQuantity int64       `json:"remaining_quantity"`
	ProductDepleted   bool        `json:"product_depleted"`
}

// RecordSaleRequest sells from the configured stock holder
type RecordSaleRequest struct {
	StockID      uuid.UUID
	QuantitySold int64
	UserName     string
}

// SaleResult reports the sale and the holder's state after it
type SaleResult struct {
	Sale              *stock.Sale `json:"sale"`
	RemainingQuantity int64       `json:"remaining_quantity"`
	HolderDepleted    bool        `json:"holder_depleted"`
}

// DeleteResult reports whether the reversed quantity reached a stock holder
type DeleteResult struct {
	ID            uuid.UUID `json:"id"`
	StockAdjusted bool      `json:"stock_adjusted"`
}
