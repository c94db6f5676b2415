package stock

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stockledger/backend/internal/domain/shared"
)

// Purchase records stock acquired into a product. It is never edited; removing
// it reverses its effect on the product.
type Purchase struct {
	shared.BaseEntity
	ProductID    uuid.UUID       `gorm:"type:uuid;not null;index" json:"product_id"`
	ProductName  string          `gorm:"type:varchar(200);not null" json:"product_name"`
	Quantity     int64           `gorm:"not null;check:chk_purchases_quantity,quantity > 0" json:"quantity"`
	BuyingPrice  decimal.Decimal `gorm:"type:decimal(18,4);not null" json:"buying_price"`
	PurchaseDate time.Time       `gorm:"not null;index" json:"purchase_date"`
}

// TableName returns the table name for GORM
func (Purchase) TableName() string {
	return "purchases"
}

// NewPurchase builds a purchase of product. A nil buyingPrice takes the
// product's current buying price.
func NewPurchase(product *Product, quantity int64, buyingPrice *decimal.Decimal) (*Purchase, error) {
	if err := ValidateQuantity("Quantity", quantity); err != nil {
		return nil, err
	}
	price := product.BuyingPrice
	if buyingPrice != nil {
		if buyingPrice.IsNegative() {
			return nil, shared.Validation("Buying price cannot be negative")
		}
		price = *buyingPrice
	}
	p := &Purchase{
		BaseEntity:  shared.NewBaseEntity(),
		ProductID:   product.ID,
		ProductName: product.Name,
		Quantity:    quantity,
		BuyingPrice: price,
	}
	p.PurchaseDate = p.CreatedAt
	return p, nil
}

// Amount is buying price times quantity
func (p *Purchase) Amount() decimal.Decimal {
	return p.BuyingPrice.Mul(decimal.NewFromInt(p.Quantity))
}
