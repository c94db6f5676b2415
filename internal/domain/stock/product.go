package stock

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stockledger/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// Product is store-held stock of a named item
type Product struct {
	shared.BaseEntity
	Name         string          `gorm:"type:varchar(200);not null;index" json:"name"`
	Quantity     int64           `gorm:"not null;default:0;check:chk_products_quantity,quantity >= 0" json:"quantity"`
	BuyingPrice  decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0" json:"buying_price"`
	SellingPrice decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0" json:"selling_price"`
	Date         time.Time       `gorm:"not null;index" json:"date"`
	// DeletedAt is set when a sale or transfer depletes the product. Depleted
	// rows are invisible to normal queries but can be restored by a reversal.
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// NewProduct creates a product with zero quantity; stock only arrives through
// purchases.
func NewProduct(name string, buyingPrice, sellingPrice decimal.Decimal) (*Product, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.Validation("Product name is required")
	}
	if buyingPrice.IsNegative() || sellingPrice.IsNegative() {
		return nil, shared.Validation("Prices cannot be negative")
	}
	p := &Product{
		BaseEntity:   shared.NewBaseEntity(),
		Name:         name,
		Quantity:     0,
		BuyingPrice:  buyingPrice,
		SellingPrice: sellingPrice,
	}
	p.Date = p.CreatedAt
	return p, nil
}

// ProductUpdate carries optional field changes; nil fields keep their value
type ProductUpdate struct {
	Name         *string
	Quantity     *int64
	BuyingPrice  *decimal.Decimal
	SellingPrice *decimal.Decimal
}

// Apply validates and applies the update
func (p *Product) Apply(u ProductUpdate) error {
	if u.Name != nil {
		name := strings.TrimSpace(*u.Name)
		if name == "" {
			return shared.Validation("Product name cannot be empty")
		}
		p.Name = name
	}
	if u.Quantity != nil {
		if *u.Quantity < 0 {
			return shared.Validation("Quantity cannot be negative")
		}
		p.Quantity = *u.Quantity
	}
	if u.BuyingPrice != nil {
		if u.BuyingPrice.IsNegative() {
			return shared.Validation("Buying price cannot be negative")
		}
		p.BuyingPrice = *u.BuyingPrice
	}
	if u.SellingPrice != nil {
		if u.SellingPrice.IsNegative() {
			return shared.Validation("Selling price cannot be negative")
		}
		p.SellingPrice = *u.SellingPrice
	}
	p.Touch()
	return nil
}

func (p *Product) HolderID() uuid.UUID               { return p.ID }
func (p *Product) HolderSource() Source              { return SourceProduct }
func (p *Product) DisplayName() string               { return p.Name }
func (p *Product) Batch() string                     { return "" }
func (p *Product) UnitSellingPrice() decimal.Decimal { return p.SellingPrice }
func (p *Product) Available() int64                  { return p.Quantity }

var _ Holder = (*Product)(nil)
